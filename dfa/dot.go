package dfa

import (
	"fmt"
	"strings"

	"github.com/coregx/lexgen/nfa"
)

// Dot renders the DFA as a Graphviz digraph in the same format as
// nfa.(*NFA).Dot: one line per state and per labeled transition, accepting
// states as doublecircle with their rule priority in the label, byte ranges
// in "[lo,hi]" decimal form.
//
// The dump is line-oriented and regular enough for an external harness to
// re-parse into a transition table for conformance checking; the module
// itself never parses it back.
func (d *DFA) Dot() string {
	var b strings.Builder
	b.WriteString("digraph DFA {\n")
	fmt.Fprintf(&b, "\tstart -> N%d;\n", d.start)
	for i := range d.states {
		s := &d.states[i]
		if s.accept {
			fmt.Fprintf(&b, "\tN%d[label=\"%d r%d\", shape=doublecircle];\n", i, i, s.rule)
		} else {
			fmt.Fprintf(&b, "\tN%d[label=\"%d\", shape=circle];\n", i, i)
		}
	}
	for i := range d.states {
		// One edge line per target, with all its ranges on a single label.
		byTarget := make(map[StateID][]nfa.ByteRange)
		var targets []StateID
		for _, t := range d.states[i].transitions {
			if _, ok := byTarget[t.To]; !ok {
				targets = append(targets, t.To)
			}
			byTarget[t.To] = append(byTarget[t.To], nfa.ByteRange{Lo: t.Lo, Hi: t.Hi})
		}
		for _, to := range targets {
			fmt.Fprintf(&b, "\tN%d -> N%d[label=\"%s\"];\n", i, to, nfa.FormatRanges(byTarget[to]))
		}
	}
	b.WriteString("}\n")
	return b.String()
}
