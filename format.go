package flaterror

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Format implements fmt.Formatter.
//
//	%s, %v   the top message, same as Error()
//	%q       the top message, double-quoted
//	%+v      the whole chain, nested:
//	         message (source: ..., original type: `pkg.Type`)
//	%#v      the whole chain as a composite literal, via GoString
//
// In the %+v form the source part is omitted on the last node and the
// original type part is omitted on authored nodes, so a chain built purely
// with New and Wrap renders as
//
//	outer (source: middle (source: inner))
func (e *FlatError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			e.formatChain(s)
			return
		}
		if s.Flag('#') {
			_, _ = io.WriteString(s, e.GoString())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(e.Error()))
	}
}

// GoString implements fmt.GoStringer, backing the %#v verb. The chain is
// rendered as a nested composite literal with every message and type name
// visible, instead of the pointer address the reflected form would show for
// the cause. Empty fields are omitted.
func (e *FlatError) GoString() string {
	if e == nil {
		return "(*flaterror.FlatError)(nil)"
	}
	var b strings.Builder
	depth := 0
	for node := e; node != nil; node = node.cause {
		b.WriteString(`&flaterror.FlatError{message:`)
		b.WriteString(strconv.Quote(node.message))
		if node.originalType != "" {
			b.WriteString(`, originalType:`)
			b.WriteString(strconv.Quote(node.originalType))
		}
		if node.cause != nil {
			b.WriteString(`, cause:`)
		}
		depth++
	}
	for ; depth > 0; depth-- {
		b.WriteByte('}')
	}
	return b.String()
}

// formatChain writes the detailed rendering of the whole chain. The walk is
// iterative; suffixes that close each node's annotation are stacked and
// written innermost first.
func (e *FlatError) formatChain(w io.Writer) {
	if e == nil {
		_, _ = io.WriteString(w, "<nil>")
		return
	}
	var closers []string
	node := e
	for {
		_, _ = io.WriteString(w, node.message)
		if node.cause != nil {
			_, _ = io.WriteString(w, " (source: ")
			if node.originalType != "" {
				closers = append(closers, ", original type: `"+node.originalType+"`)")
			} else {
				closers = append(closers, ")")
			}
			node = node.cause
			continue
		}
		if node.originalType != "" {
			_, _ = io.WriteString(w, " (original type: `")
			_, _ = io.WriteString(w, node.originalType)
			_, _ = io.WriteString(w, "`)")
		}
		break
	}
	for i := len(closers) - 1; i >= 0; i-- {
		_, _ = io.WriteString(w, closers[i])
	}
}
