package flaterror

// Error is the contract satisfied by well-behaved error types: errors that
// display as text, clone deeply, compare structurally, and participate in
// cause chains. The type parameter is the implementing type itself, which
// keeps Clone and Equal fully typed:
//
//	type parseError struct{ ... }
//
//	func (e *parseError) Error() string              { ... }
//	func (e *parseError) Clone() *parseError         { ... }
//	func (e *parseError) Equal(o *parseError) bool   { ... }
//	func (e *parseError) Unwrap() error              { ... }
//
//	var _ flaterror.Error[*parseError] = (*parseError)(nil)
//
// Satisfaction is implicit. Any type with the method set instantiates an
// Error bound with no declaration, and a type missing a capability is
// rejected at compile time. The interface declares no operations of its own;
// it exists so generic code can require the whole capability set at once:
//
//	func keep[E flaterror.Error[E]](e E) E {
//		return e.Clone()
//	}
//
// Structured debug output is part of the capability set but needs no method:
// fmt's %+v and %#v verbs render every Go value, and implementations may
// refine them through fmt.Formatter as FlatError does.
type Error[E any] interface {
	error

	// Clone returns a deep copy that shares no state with the receiver.
	Clone() E

	// Equal reports whether the receiver and other are structurally equal.
	Equal(other E) bool

	// Unwrap returns the underlying cause, or nil for leaf errors.
	// It is the hook errors.Is and errors.As use to walk cause chains.
	Unwrap() error
}
