package nfa

import (
	"fmt"
	"strings"
)

// Dot renders the NFA as a Graphviz digraph, one line per state and per
// labeled transition. Accepting states use doublecircle shape and carry
// their rule priority in the label. Epsilon edges are labeled "eps".
//
// The dump is a debugging aid for external visualization and conformance
// checking; nothing in this module parses it back.
func (n *NFA) Dot() string {
	var b strings.Builder
	b.WriteString("digraph NFA {\n")
	fmt.Fprintf(&b, "\tstart -> N%d;\n", n.start)
	for i := range n.states {
		s := &n.states[i]
		if s.accept {
			fmt.Fprintf(&b, "\tN%d[label=\"%d r%d\", shape=doublecircle];\n", i, i, s.rule)
		} else {
			fmt.Fprintf(&b, "\tN%d[label=\"%d\", shape=circle];\n", i, i)
		}
	}
	for i := range n.states {
		for _, e := range n.states[i].edges {
			if e.Epsilon {
				fmt.Fprintf(&b, "\tN%d -> N%d[label=\"eps\"];\n", i, e.To)
			} else {
				fmt.Fprintf(&b, "\tN%d -> N%d[label=\"%s\"];\n", i, e.To, FormatRanges([]ByteRange{{Lo: e.Lo, Hi: e.Hi}}))
			}
		}
	}
	b.WriteString("}\n")
	return b.String()
}

// FormatRanges renders a set of byte ranges in the dump label format:
// single bytes as decimal values, wider ranges as "[lo,hi]", comma-joined.
// For example {1-5, 9, 11-13} renders as "[1,5], 9, [11,13]".
func FormatRanges(ranges []ByteRange) string {
	parts := make([]string, 0, len(ranges))
	for _, r := range Normalize(ranges) {
		if r.Lo == r.Hi {
			parts = append(parts, fmt.Sprintf("%d", r.Lo))
		} else {
			parts = append(parts, fmt.Sprintf("[%d,%d]", r.Lo, r.Hi))
		}
	}
	return strings.Join(parts, ", ")
}
