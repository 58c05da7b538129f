package flaterror

// DefaultMaxDepth is the number of chain nodes a capture keeps before
// truncating. It is far deeper than any sane error chain while keeping
// malformed, cyclic chains from being walked forever.
const DefaultMaxDepth = 256

// Option configures how Flatten and Wrap capture a source error.
// Options apply to a single capture and do not affect the resulting value
// afterwards.
type Option func(*captureOptions)

// captureOptions is the per-call capture configuration.
type captureOptions struct {
	maxDepth int
	scrub    func(string) string
}

// applyOptions builds the effective configuration for one capture.
func applyOptions(opts []Option) captureOptions {
	cfg := captureOptions{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// scrubbed applies the configured scrubber, if any.
func (c captureOptions) scrubbed(msg string) string {
	if c.scrub == nil {
		return msg
	}
	return c.scrub(msg)
}

// WithMaxDepth overrides DefaultMaxDepth for one capture. Chains longer than
// n nodes are truncated at n. Values below one are ignored.
func WithMaxDepth(n int) Option {
	return func(c *captureOptions) {
		if n > 0 {
			c.maxDepth = n
		}
	}
}

// WithScrubber transforms every captured message before it is stored, for
// example to redact addresses or credentials that third-party errors embed
// in their text. Messages authored with New, Newf, or as Wrap heads are not
// scrubbed; the caller already controls those. A nil scrub function is
// ignored.
func WithScrubber(scrub func(string) string) Option {
	return func(c *captureOptions) {
		if scrub != nil {
			c.scrub = scrub
		}
	}
}
