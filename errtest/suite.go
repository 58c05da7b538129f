// Package errtest provides a conformance test suite for validating error
// types against the flaterror.Error contract.
//
// This package contains test functions that can be imported and executed by
// packages that define their own well-behaved error types, to verify the
// types honor the contract: stable display, deep cloning, structural
// equality, and a terminating cause chain.
//
// The suite validates the contract, not implementation details. The factory
// passed to each test must return a fresh value on every call, all factory
// values must be structurally equal to one another, and their chains must be
// shorter than flaterror.DefaultMaxDepth.
//
// Example usage:
//
//	func TestParseError(t *testing.T) {
//	    errtest.TestSuite(t, func() *parseError {
//	        return newParseError("bad input")
//	    })
//	}
package errtest

import (
	"errors"
	"testing"

	"github.com/input-output-hk/catalyst-forge-libs/flaterror"
)

// chainBound caps how far the suite walks a cause chain before declaring it
// non-terminating.
const chainBound = 10000

// TestSuite runs all conformance tests against an error type. The newErr
// function should return a fresh, equivalent value for each call.
func TestSuite[E flaterror.Error[E]](t *testing.T, newErr func() E) {
	TestSuiteWithSkip(t, newErr, nil)
}

// TestSuiteWithSkip runs conformance tests with optional test skipping.
// The skipTests parameter is a slice of test names to skip (e.g., "Flatten").
// This is useful for types with documented deviations from the full contract.
func TestSuiteWithSkip[E flaterror.Error[E]](t *testing.T, newErr func() E, skipTests []string) {
	shouldSkip := func(testName string) bool {
		for _, skip := range skipTests {
			if skip == testName {
				return true
			}
		}
		return false
	}

	t.Run("Display", func(t *testing.T) {
		if shouldSkip("Display") {
			t.Skip("Skipped by caller configuration")
			return
		}
		TestDisplay(t, newErr)
	})

	t.Run("Clone", func(t *testing.T) {
		if shouldSkip("Clone") {
			t.Skip("Skipped by caller configuration")
			return
		}
		TestClone(t, newErr)
	})

	t.Run("Equality", func(t *testing.T) {
		if shouldSkip("Equality") {
			t.Skip("Skipped by caller configuration")
			return
		}
		TestEquality(t, newErr)
	})

	t.Run("Chain", func(t *testing.T) {
		if shouldSkip("Chain") {
			t.Skip("Skipped by caller configuration")
			return
		}
		TestChain(t, newErr)
	})

	t.Run("Flatten", func(t *testing.T) {
		if shouldSkip("Flatten") {
			t.Skip("Skipped by caller configuration")
			return
		}
		TestFlatten(t, newErr)
	})
}

// TestDisplay verifies that Error() is stable across calls and unchanged by
// cloning.
func TestDisplay[E flaterror.Error[E]](t *testing.T, newErr func() E) {
	e := newErr()
	want := e.Error()
	if got := e.Error(); got != want {
		t.Errorf("Error() second call: got %q, want %q", got, want)
	}
	if got := e.Clone().Error(); got != want {
		t.Errorf("Clone().Error(): got %q, want %q", got, want)
	}
}

// TestClone verifies that Clone produces an equal value with the same chain
// length, and that clones of clones stay equal.
func TestClone[E flaterror.Error[E]](t *testing.T, newErr func() E) {
	e := newErr()
	c := e.Clone()
	if !e.Equal(c) {
		t.Errorf("original.Equal(Clone()): got false, want true")
	}
	if !c.Equal(e) {
		t.Errorf("Clone().Equal(original): got false, want true")
	}
	if got, want := chainLen(c), chainLen(e); got != want {
		t.Errorf("Clone() chain length: got %d, want %d", got, want)
	}
	if cc := c.Clone(); !e.Equal(cc) {
		t.Errorf("original.Equal(Clone().Clone()): got false, want true")
	}
}

// TestEquality verifies Equal is reflexive and symmetric, and that two
// independently built values from the same factory are equal.
func TestEquality[E flaterror.Error[E]](t *testing.T, newErr func() E) {
	a, b := newErr(), newErr()
	if !a.Equal(a) {
		t.Errorf("Equal(self): got false, want true")
	}
	if !a.Equal(b) {
		t.Errorf("Equal(fresh factory value): got false, want true")
	}
	if !b.Equal(a) {
		t.Errorf("Equal is not symmetric: b.Equal(a) got false, want true")
	}
}

// TestChain verifies the cause chain terminates and has at least the head
// node.
func TestChain[E flaterror.Error[E]](t *testing.T, newErr func() E) {
	e := newErr()
	n := chainLen(e)
	if n >= chainBound {
		t.Errorf("Unwrap chain did not terminate within %d nodes", chainBound)
	}
	if n < 1 {
		t.Errorf("chain length: got %d, want at least 1", n)
	}
}

// TestFlatten verifies the type flattens faithfully: display text is
// preserved, the whole chain is captured, and re-flattening is idempotent.
func TestFlatten[E flaterror.Error[E]](t *testing.T, newErr func() E) {
	e := newErr()
	flat := flaterror.Flatten(e)
	if flat == nil {
		t.Fatalf("Flatten(): got nil for a non-nil error")
	}
	if got, want := flat.Error(), e.Error(); got != want {
		t.Errorf("Flatten().Error(): got %q, want %q", got, want)
	}
	if got, want := len(flat.Messages()), chainLen(e); got != want {
		t.Errorf("Flatten() chain length: got %d, want %d", got, want)
	}
	if again := flaterror.Flatten(flat); !flat.Equal(again) {
		t.Errorf("Flatten(Flatten(e)).Equal(Flatten(e)): got false, want true")
	}
}

// chainLen counts the nodes reachable through errors.Unwrap, including err
// itself, up to chainBound.
func chainLen(err error) int {
	n := 0
	for cur := err; cur != nil && n < chainBound; cur = errors.Unwrap(cur) {
		n++
	}
	return n
}
