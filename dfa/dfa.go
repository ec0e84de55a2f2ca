// Package dfa provides the deterministic half of the lexer construction
// pipeline: subset construction from an NFA, and Hopcroft minimization.
//
// A DFA here is a plain transition-table automaton over the byte alphabet.
// Each state stores a sorted list of disjoint byte-range transitions; bytes
// not covered by any range go to an implicit dead state. Accepting states
// carry the priority of the winning lexer rule, so one DFA can drive a whole
// multi-rule scanner.
//
// A DFA is immutable after construction and safe for concurrent readers.
package dfa

import (
	"fmt"
)

// StateID uniquely identifies a DFA state.
type StateID uint32

// Dead is the implicit reject state: the result of stepping on a byte with
// no outgoing transition. It never appears inside a transition table.
const Dead StateID = 0xFFFFFFFF

// NoRule labels a state that does not accept.
const NoRule = -1

// Transition is one byte-range edge: bytes in [Lo, Hi] lead to To.
type Transition struct {
	Lo, Hi byte
	To     StateID
}

type state struct {
	transitions []Transition // sorted by Lo, disjoint
	accept      bool
	rule        int // priority of the winning rule, NoRule when unlabeled
}

// DFA is a deterministic finite automaton over the byte alphabet.
type DFA struct {
	states []state
	start  StateID
}

// Start returns the ID of the start state.
func (d *DFA) Start() StateID {
	return d.start
}

// Len returns the number of states.
func (d *DFA) Len() int {
	return len(d.states)
}

// IsAccept returns true if the given state is accepting.
func (d *DFA) IsAccept(id StateID) bool {
	return d.states[id].accept
}

// Rule returns the rule priority of an accepting state. For states produced
// from a multi-rule NFA this is the minimum (highest-precedence) priority
// among the constituent accepting NFA states. Returns NoRule for
// non-accepting or unlabeled states.
func (d *DFA) Rule(id StateID) int {
	return d.states[id].rule
}

// Transitions returns the outgoing byte-range transitions of a state,
// sorted by Lo. The slice is owned by the DFA and must not be modified.
func (d *DFA) Transitions(id StateID) []Transition {
	return d.states[id].transitions
}

// Next steps the automaton: it returns the successor of state id on input
// byte b, or Dead when no transition covers b.
func (d *DFA) Next(id StateID, b byte) StateID {
	trs := d.states[id].transitions
	// Binary search over disjoint sorted ranges.
	lo, hi := 0, len(trs)
	for lo < hi {
		mid := (lo + hi) / 2
		t := trs[mid]
		switch {
		case b < t.Lo:
			hi = mid
		case b > t.Hi:
			lo = mid + 1
		default:
			return t.To
		}
	}
	return Dead
}

// Match reports whether the DFA accepts the whole input, along with the rule
// priority of the accepting state. Mostly a testing convenience; the lexer
// runtime drives the DFA byte by byte itself.
func (d *DFA) Match(input []byte) (rule int, ok bool) {
	id := d.start
	for _, b := range input {
		id = d.Next(id, b)
		if id == Dead {
			return NoRule, false
		}
	}
	if !d.states[id].accept {
		return NoRule, false
	}
	return d.states[id].rule, true
}

// String returns a short human-readable summary of the DFA.
func (d *DFA) String() string {
	accepts := 0
	for i := range d.states {
		if d.states[i].accept {
			accepts++
		}
	}
	return fmt.Sprintf("DFA{states: %d, start: %d, accepting: %d}", len(d.states), d.start, accepts)
}

// coalesce merges adjacent transitions that are contiguous and share a
// target. The input must be sorted by Lo with disjoint ranges.
func coalesce(trs []Transition) []Transition {
	if len(trs) == 0 {
		return nil
	}
	out := trs[:1]
	for _, t := range trs[1:] {
		last := &out[len(out)-1]
		if t.To == last.To && last.Hi < 255 && t.Lo == last.Hi+1 {
			last.Hi = t.Hi
			continue
		}
		out = append(out, t)
	}
	return out
}
