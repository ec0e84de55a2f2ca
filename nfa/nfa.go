// Package nfa provides the nondeterministic finite automaton at the heart of
// the lexer construction pipeline.
//
// An NFA is built bottom-up, either by the regex compiler (compile.go) or by
// calling the algebraic combinators directly (combinators.go). States live in
// an arena indexed by StateID; edges are stored as index pairs, so the whole
// automaton is a self-contained movable value even though the underlying
// graph is cyclic.
//
// Combinators consume their operands: once an NFA has been passed to Concat,
// Union, Star, Plus or Optional it must not be used again. This models
// exclusive ownership transfer and rules out aliased mutable graphs; reusing
// a consumed NFA is a programming error and panics.
package nfa

import (
	"fmt"
	"unicode/utf8"
)

// StateID uniquely identifies an NFA state within its arena.
type StateID uint32

// InvalidState represents an invalid/uninitialized state ID.
const InvalidState StateID = 0xFFFFFFFF

// NoRule marks an accepting state whose rule priority has not been assigned.
// MergeRules and SetRule replace it with a real priority before the NFA is
// handed to subset construction.
const NoRule = -1

// Edge is a single transition out of a state.
//
// An epsilon edge consumes no input. A byte-range edge consumes exactly one
// byte when it falls inside [Lo, Hi].
type Edge struct {
	Epsilon bool
	Lo, Hi  byte
	To      StateID
}

type state struct {
	edges  []Edge
	accept bool
	rule   int // priority label, valid when accept
}

// NFA is a nondeterministic finite automaton over the byte alphabet.
//
// It has exactly one start state and any number of accepting states, each
// optionally carrying a rule priority (lower value = earlier-defined rule).
type NFA struct {
	states   []state
	start    StateID
	consumed bool
}

// Empty returns an NFA accepting exactly the empty string: a single state
// that is both start and accept.
func Empty() *NFA {
	return &NFA{
		states: []state{{accept: true, rule: NoRule}},
	}
}

// FromRange returns an NFA accepting any single byte in [lo, hi]:
// two states connected by one consuming edge.
func FromRange(lo, hi byte) *NFA {
	return FromRanges([]ByteRange{{Lo: lo, Hi: hi}})
}

// FromByte returns an NFA accepting exactly the byte b.
func FromByte(b byte) *NFA {
	return FromRange(b, b)
}

// FromRanges returns a single-symbol class NFA: one start state with a
// byte-range edge per (normalized) range, all leading to one accept state.
// This is the only shape ComplementClass accepts.
func FromRanges(ranges []ByteRange) *NFA {
	norm := Normalize(ranges)
	n := &NFA{states: make([]state, 2)}
	n.states[1] = state{accept: true, rule: NoRule}
	for _, r := range norm {
		n.states[0].edges = append(n.states[0].edges, Edge{Lo: r.Lo, Hi: r.Hi, To: 1})
	}
	return n
}

// FromString returns an NFA accepting exactly the string s,
// one consuming edge per byte of its UTF-8 encoding.
func FromString(s string) *NFA {
	n := &NFA{states: make([]state, len(s)+1)}
	for i := 0; i < len(s); i++ {
		b := s[i]
		n.states[i].edges = append(n.states[i].edges, Edge{Lo: b, Hi: b, To: StateID(i + 1)})
	}
	n.states[len(s)].accept = true
	n.states[len(s)].rule = NoRule
	return n
}

// FromRune returns an NFA accepting exactly the rune r, as a chain of 1-4
// byte edges matching its UTF-8 encoding.
func FromRune(r rune) *NFA {
	var buf [4]byte
	w := utf8.EncodeRune(buf[:], r)
	return FromString(string(buf[:w]))
}

// FromRuneRange returns an NFA accepting any single rune in [lo, hi].
//
// Each UTF-8 encoding length in the range becomes a fixed-length path of
// byte-range edges whose ranges encode valid UTF-8 continuation-byte
// constraints; the paths are merged on a shared start and accept state.
// The surrogate block U+D800-U+DFFF is excluded (not encodable as UTF-8).
// Returns ErrInvalidRuneRange when the range covers no encodable rune.
func FromRuneRange(lo, hi rune) (*NFA, error) {
	seqs := utf8Sequences(lo, hi)
	if len(seqs) == 0 {
		return nil, ErrInvalidRuneRange
	}

	n := &NFA{states: make([]state, 2)}
	n.states[1] = state{accept: true, rule: NoRule}
	const acceptID = StateID(1)
	for _, seq := range seqs {
		// Chain interior states for multi-byte sequences; the last byte
		// range of every sequence lands on the shared accept state.
		from := StateID(0)
		for i, r := range seq {
			to := acceptID
			if i < len(seq)-1 {
				to = n.addState()
			}
			n.states[from].edges = append(n.states[from].edges, Edge{Lo: r.Lo, Hi: r.Hi, To: to})
			from = to
		}
	}
	return n, nil
}

// AnyRune returns an NFA accepting any single Unicode scalar value,
// including '\n'. This is the automaton behind '.' in the regex compiler.
func AnyRune() *NFA {
	n, err := FromRuneRange(0, 0x10FFFF)
	if err != nil {
		panic("nfa: AnyRune construction failed: " + err.Error())
	}
	return n
}

func (n *NFA) addState() StateID {
	id := StateID(len(n.states))
	n.states = append(n.states, state{rule: NoRule})
	return id
}

// take claims exclusive ownership of n's arena for a combinator.
// Reuse of a consumed NFA is a defect in the caller, not a recoverable
// condition, so it fails loudly.
func (n *NFA) take() {
	if n.consumed {
		panic("nfa: use of consumed NFA")
	}
	n.consumed = true
}

// Start returns the ID of the start state.
func (n *NFA) Start() StateID {
	return n.start
}

// Len returns the number of states in the arena.
func (n *NFA) Len() int {
	return len(n.states)
}

// IsAccept returns true if the given state is accepting.
func (n *NFA) IsAccept(id StateID) bool {
	return n.states[id].accept
}

// Rule returns the rule priority attached to an accepting state,
// or NoRule if none was assigned. Meaningless for non-accepting states.
func (n *NFA) Rule(id StateID) int {
	return n.states[id].rule
}

// Edges returns the outgoing edges of the given state.
// The returned slice is owned by the NFA and must not be modified.
func (n *NFA) Edges(id StateID) []Edge {
	return n.states[id].edges
}

// SetRule assigns the given rule priority to every accepting state.
//
// Call this once per rule NFA, right before merging rule NFAs with
// MergeRules; combining NFAs after the call mixes up the labeling.
func (n *NFA) SetRule(priority int) {
	for i := range n.states {
		if n.states[i].accept {
			n.states[i].rule = priority
		}
	}
}

// Clone returns a deep copy of the NFA. The copy is independent and
// unconsumed, even when n itself has already been consumed.
func (n *NFA) Clone() *NFA {
	c := &NFA{
		states: make([]state, len(n.states)),
		start:  n.start,
	}
	for i, s := range n.states {
		cs := s
		cs.edges = make([]Edge, len(s.edges))
		copy(cs.edges, s.edges)
		c.states[i] = cs
	}
	return c
}

// String returns a short human-readable summary of the NFA.
func (n *NFA) String() string {
	accepts := 0
	for i := range n.states {
		if n.states[i].accept {
			accepts++
		}
	}
	return fmt.Sprintf("NFA{states: %d, start: %d, accepting: %d}", len(n.states), n.start, accepts)
}
