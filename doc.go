// Package flaterror reduces errors to plain, owned text.
//
// Flattening captures an error's message, and the message of every cause in
// its errors.Unwrap chain, into a single FlatError value that keeps no
// references to the source. The capture is cloneable, structurally
// comparable, and safe to store, log, or report long after the machinery
// that produced the original error is gone.
//
// # Features
//
//   - Whole-chain capture into one immutable value
//   - Deep cloning and structural equality over captured chains
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Bounded iterative traversal (cyclic or runaway chains terminate)
//   - Optional scrubbing of captured messages
//   - Generic contract (Error) for well-behaved error types
//   - Zero dependencies (Layer 0 library)
//
// # Design Principles
//
//   - Lossy on purpose (message text survives, concrete types do not)
//   - Immutability (captures never change after construction)
//   - Infallible construction (flattening an error cannot itself fail)
//   - Simplicity (minimal API surface, easy to use correctly)
//
// # Quick Start
//
// Capturing an error:
//
//	if err := run(); err != nil {
//		flat := flaterror.Flatten(err)
//		report(flat) // flat outlives err and everything it referenced
//	}
//
// Display shows the top message; %+v shows the whole chain:
//
//	flat := flaterror.Wrap(err, "connect failed")
//	fmt.Println(flat)
//	// connect failed
//	fmt.Printf("%+v\n", flat)
//	// connect failed (source: dial tcp 10.0.0.1:443: i/o timeout (original type: `*net.OpError`))
//
// Comparing and cloning:
//
//	a := flaterror.Flatten(err)
//	b := a.Clone()
//	fmt.Println(a.Equal(b)) // true
//
// # The Error Contract
//
// Error[E] names the capability set of a well-behaved error: it displays as
// text, clones deeply, compares structurally, and participates in cause
// chains. Debug formatting needs no method of its own because fmt's %+v and
// %#v verbs work on every Go value. Satisfaction is implicit; any type with
// the method set can instantiate an Error bound with no declaration:
//
//	func retain[E flaterror.Error[E]](e E) E {
//		return e.Clone()
//	}
//
// FlatError satisfies the contract, and the errtest subpackage provides a
// conformance suite for other implementations.
//
// # What Flattening Discards
//
// Flattening keeps message text and chain shape, nothing else. Concrete
// types, wrapped sentinels, codes, stack traces, and other metadata are
// gone, and errors.Is against the original sentinels no longer matches.
// Callers that need typed inspection must do it before flattening. The
// dynamic type name of each captured node is retained as a diagnostic
// string (see OriginalType), but it carries no behavior and does not
// participate in equality.
//
// # Depth Bound
//
// Chains are traversed iteratively and capped at DefaultMaxDepth nodes,
// overridable per capture with WithMaxDepth. Deeper chains, and malformed
// chains whose Unwrap cycles, are truncated at the bound rather than walked
// forever.
package flaterror
