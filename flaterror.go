package flaterror

import (
	"errors"
	"fmt"
)

// Compile-time check that FlatError satisfies the contract it anchors.
var _ Error[*FlatError] = (*FlatError)(nil)

// FlatError is an immutable capture of an error and its cause chain as plain
// text. Each node holds one message; nodes are linked in capture order, head
// first, and every node owns its tail exclusively. A FlatError keeps no
// references to the error it was captured from.
//
// The zero value is not meaningful. Use New, Newf, Flatten, Wrap, or Wrapf.
type FlatError struct {
	message      string
	originalType string
	cause        *FlatError
}

// New returns a flat error with the given message and no cause.
func New(message string) *FlatError {
	return &FlatError{message: message}
}

// Newf returns a flat error with a formatted message and no cause.
func Newf(format string, args ...any) *FlatError {
	return &FlatError{message: fmt.Sprintf(format, args...)}
}

// Flatten captures err and its errors.Unwrap chain as a FlatError.
//
// Every node of the chain contributes its message, in order, together with
// its dynamic type name (see OriginalType). Traversal is iterative and stops
// at the configured depth bound (DefaultMaxDepth unless overridden with
// WithMaxDepth), so chains deeper than the bound, and malformed chains whose
// Unwrap cycles, are truncated rather than walked forever.
//
// Flatten(nil) returns nil. Flattening a FlatError deep-copies it under the
// same options: the scrubber runs on every copied message, the depth bound
// truncates, and the type names captured the first time around are kept.
// Without a scrubber the copy is Equal to its source for any chain within
// the bound, so re-flattening is idempotent.
func Flatten(err error, opts ...Option) *FlatError {
	if err == nil {
		return nil
	}
	cfg := applyOptions(opts)
	if flat, ok := err.(*FlatError); ok {
		return flat.recapture(cfg)
	}
	head := capture(err, cfg)
	tail := head
	for depth := 1; depth < cfg.maxDepth; depth++ {
		err = errors.Unwrap(err)
		if err == nil {
			break
		}
		tail.cause = capture(err, cfg)
		tail = tail.cause
	}
	return head
}

// Wrap returns a flat error with the given message whose cause is the
// flattened form of err. It returns nil when err is nil, so call sites can
// wrap unconditionally. The head message is taken as written; capture
// options apply to the flattened cause only.
func Wrap(err error, message string, opts ...Option) *FlatError {
	if err == nil {
		return nil
	}
	return &FlatError{message: message, cause: Flatten(err, opts...)}
}

// Wrapf is Wrap with a formatted message and default capture options.
func Wrapf(err error, format string, args ...any) *FlatError {
	if err == nil {
		return nil
	}
	return &FlatError{message: fmt.Sprintf(format, args...), cause: Flatten(err)}
}

// capture copies a single node out of a source error.
func capture(err error, cfg captureOptions) *FlatError {
	return &FlatError{message: cfg.scrubbed(err.Error()), originalType: fmt.Sprintf("%T", err)}
}

// recapture deep-copies an already-flattened chain under the capture
// configuration: the scrubber runs on every copied message and the depth
// bound truncates, exactly as on a fresh capture. Type names recorded by
// the first capture pass through untouched.
func (e *FlatError) recapture(cfg captureOptions) *FlatError {
	head := &FlatError{message: cfg.scrubbed(e.message), originalType: e.originalType}
	dst := head
	for src, n := e.cause, 1; src != nil && n < cfg.maxDepth; src, n = src.cause, n+1 {
		dst.cause = &FlatError{message: cfg.scrubbed(src.message), originalType: src.originalType}
		dst = dst.cause
	}
	return head
}

// Error returns the top message only. Walk Source, or format with %+v, for
// the rest of the chain. A nil FlatError reads as "<nil>".
func (e *FlatError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.message
}

// Unwrap returns the next node of the chain for errors.Is and errors.As
// compatibility. It returns an untyped nil when there is no cause.
func (e *FlatError) Unwrap() error {
	if e == nil || e.cause == nil {
		return nil
	}
	return e.cause
}

// Source returns the next node of the chain with its concrete type, or nil
// at the end of the chain. It is the typed counterpart of Unwrap: flattened
// causes are only ever other FlatErrors, never the original values.
func (e *FlatError) Source() *FlatError {
	if e == nil {
		return nil
	}
	return e.cause
}

// OriginalType returns the dynamic type name of the error this node was
// captured from, as rendered by the %T verb. It is empty for nodes authored
// with New, Newf, or as Wrap heads. The name is diagnostic only; it carries
// no behavior and Equal ignores it.
func (e *FlatError) OriginalType() string {
	if e == nil {
		return ""
	}
	return e.originalType
}

// Messages returns every message of the chain in order, head first.
// It returns nil for a nil FlatError.
func (e *FlatError) Messages() []string {
	if e == nil {
		return nil
	}
	var msgs []string
	for node := e; node != nil; node = node.cause {
		msgs = append(msgs, node.message)
	}
	return msgs
}

// Clone returns a deep copy of the whole chain. The copy shares no nodes
// with the receiver and is Equal to it. Cloning nil returns nil.
func (e *FlatError) Clone() *FlatError {
	return e.clone(0)
}

// clone copies up to limit nodes of the chain; limit zero or below means no
// limit. Chains are finite by construction, so the unbounded walk terminates.
func (e *FlatError) clone(limit int) *FlatError {
	if e == nil {
		return nil
	}
	head := &FlatError{message: e.message, originalType: e.originalType}
	dst := head
	for src, n := e.cause, 1; src != nil && (limit <= 0 || n < limit); src, n = src.cause, n+1 {
		dst.cause = &FlatError{message: src.message, originalType: src.originalType}
		dst = dst.cause
	}
	return head
}

// Equal reports whether two chains have the same length and carry the same
// message at every depth. Original type names are not compared: captures of
// different source types that read the same are equal. A nil FlatError
// equals only another nil.
func (e *FlatError) Equal(other *FlatError) bool {
	a, b := e, other
	for a != nil && b != nil {
		if a.message != b.message {
			return false
		}
		a, b = a.cause, b.cause
	}
	return a == nil && b == nil
}

// Is reports whether target is a FlatError structurally equal to e. It lets
// errors.Is treat independent captures of the same failure as matches:
//
//	errors.Is(flaterror.Flatten(err), flaterror.Flatten(err)) // true
func (e *FlatError) Is(target error) bool {
	t, ok := target.(*FlatError)
	return ok && e.Equal(t)
}
