package nfa

// Algebraic composition of NFAs.
//
// Every combinator consumes its operands (receiver included) and returns a
// new NFA. The operand arenas are spliced together with an index bias rather
// than copied edge-by-edge, so composition is linear in the number of states.

// absorb appends other's states onto n's arena, rebasing every edge target,
// and returns the bias that was applied to other's state IDs.
func (n *NFA) absorb(other *NFA) StateID {
	bias := StateID(len(n.states))
	for _, s := range other.states {
		cs := s
		cs.edges = make([]Edge, len(s.edges))
		for i, e := range s.edges {
			e.To += bias
			cs.edges[i] = e
		}
		n.states = append(n.states, cs)
	}
	return bias
}

// Concat returns the sequential composition of n followed by b.
//
// Every accepting state of n loses its accept marker and gains an epsilon
// edge to b's start; the result accepts where b accepts. Both operands are
// consumed.
func (n *NFA) Concat(b *NFA) *NFA {
	n.take()
	b.take()

	// Record n's accepts before splicing; b's states keep their markers.
	var accepts []StateID
	for i := range n.states {
		if n.states[i].accept {
			accepts = append(accepts, StateID(i))
		}
	}

	bias := n.absorb(b)
	target := b.start + bias
	for _, id := range accepts {
		n.states[id].accept = false
		n.states[id].rule = NoRule
		n.states[id].edges = append(n.states[id].edges, Edge{Epsilon: true, To: target})
	}

	out := &NFA{states: n.states, start: n.start}
	return out
}

// Union returns an NFA accepting the union of both languages.
//
// A fresh start state gets epsilon edges to both operand starts; accepting
// states from either side survive, each retaining its rule priority.
// Both operands are consumed.
func (n *NFA) Union(b *NFA) *NFA {
	n.take()
	b.take()

	out := &NFA{states: n.states}
	bias := out.absorb(b)
	start := out.addState()
	out.states[start].edges = append(out.states[start].edges,
		Edge{Epsilon: true, To: n.start},
		Edge{Epsilon: true, To: b.start + bias},
	)
	out.start = start
	return out
}

// Star returns the Kleene closure of n (zero or more repetitions).
//
// A single fresh state serves as both start and accept; it has an epsilon
// edge into n's body, and every old accept of n feeds back into it, closing
// the repetition loop. The operand is consumed.
func (n *NFA) Star() *NFA {
	n.take()

	out := &NFA{states: n.states}
	hub := out.addState()
	out.states[hub].accept = true
	out.states[hub].edges = append(out.states[hub].edges, Edge{Epsilon: true, To: n.start})
	for i := range out.states {
		if StateID(i) != hub && out.states[i].accept {
			out.states[i].accept = false
			out.states[i].rule = NoRule
			out.states[i].edges = append(out.states[i].edges, Edge{Epsilon: true, To: hub})
		}
	}
	out.start = hub
	return out
}

// Plus returns one-or-more repetition: Concat(n, Star(copy of n)).
// The operand is consumed.
func (n *NFA) Plus() *NFA {
	tail := n.Clone()
	return n.Concat(tail.Star())
}

// Optional returns zero-or-one repetition: Union(n, Empty()).
// The operand is consumed.
func (n *NFA) Optional() *NFA {
	return n.Union(Empty())
}

// ComplementClass returns an NFA accepting exactly the single bytes NOT
// accepted by n.
//
// It is only legal when n is a single-symbol class: one start state whose
// byte-range edges all lead directly to accepting states, with no epsilon
// structure anywhere (the shape FromRange, FromByte and FromRanges produce).
// Anything else returns ErrUnsupportedComplement; complementing a general
// automaton is out of scope for a lexing alphabet.
// The operand is consumed on success and untouched on error.
func (n *NFA) ComplementClass() (*NFA, error) {
	var ranges []ByteRange
	for i, s := range n.states {
		if StateID(i) != n.start {
			if len(s.edges) != 0 {
				return nil, ErrUnsupportedComplement
			}
			continue
		}
		for _, e := range s.edges {
			if e.Epsilon || !n.states[e.To].accept {
				return nil, ErrUnsupportedComplement
			}
			ranges = append(ranges, ByteRange{Lo: e.Lo, Hi: e.Hi})
		}
	}
	if n.states[n.start].accept || len(ranges) == 0 {
		return nil, ErrUnsupportedComplement
	}
	n.take()
	return FromRanges(Complement(ranges)), nil
}

// MergeRules combines one NFA per lexer rule into a single automaton:
// a fresh start state with an epsilon edge to each rule's start. Accepting
// states keep the rule priorities previously assigned with SetRule.
// All operands are consumed.
func MergeRules(rules []*NFA) *NFA {
	out := &NFA{}
	starts := make([]StateID, 0, len(rules))
	for _, r := range rules {
		r.take()
		bias := out.absorb(r)
		starts = append(starts, r.start+bias)
	}
	start := out.addState()
	for _, s := range starts {
		out.states[start].edges = append(out.states[start].edges, Edge{Epsilon: true, To: s})
	}
	out.start = start
	return out
}
