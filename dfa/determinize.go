package dfa

import (
	"sort"

	"github.com/coregx/lexgen/internal/conv"
	"github.com/coregx/lexgen/internal/sparse"
	"github.com/coregx/lexgen/nfa"
)

// FromNFA converts an NFA into an equivalent DFA using powerset construction
// over epsilon closures.
//
// Each DFA state corresponds to a set of NFA states. The successor of a set
// on byte b is the epsilon closure of the targets of consuming edges
// matching b. Instead of probing all 256 byte values, the byte alphabet is
// segmented at the boundaries of the member states' edge ranges: bytes
// inside one segment hit exactly the same edges, so one successor
// computation covers the whole segment. Adjacent segments with identical
// successors are then coalesced into single range transitions, which keeps
// the tables compact despite the 256-way alphabet.
//
// A DFA state is accepting iff its set contains an accepting NFA state; when
// several accepting NFA states with different rule priorities are present
// (the normal case for merged rule NFAs), the minimum priority wins. This is
// the formal tie-break for rules matching the same text.
//
// Construction cannot fail on a well-formed NFA; termination is bounded by
// the number of distinct reachable subsets.
func FromNFA(n *nfa.NFA) *DFA {
	capacity := conv.IntToUint32(n.Len())
	set := sparse.NewSet(capacity)

	set.Insert(uint32(n.Start()))
	epsilonClosure(n, set)
	members := canonical(set)

	d := &DFA{}
	index := map[string]StateID{setKey(members): 0}
	d.states = append(d.states, stateFor(n, members))
	work := [][]uint32{members}

	for next := 0; next < len(work); next++ {
		members := work[next]
		var trs []Transition
		for _, seg := range segments(n, members) {
			set.Clear()
			move(n, members, seg.Lo, set)
			if set.Len() == 0 {
				continue
			}
			epsilonClosure(n, set)
			succ := canonical(set)
			key := setKey(succ)
			id, ok := index[key]
			if !ok {
				id = StateID(conv.IntToUint32(len(d.states)))
				index[key] = id
				d.states = append(d.states, stateFor(n, succ))
				work = append(work, succ)
			}
			trs = append(trs, Transition{Lo: seg.Lo, Hi: seg.Hi, To: id})
		}
		d.states[next].transitions = coalesce(trs)
	}
	return d
}

// epsilonClosure expands set in place with every state reachable through
// epsilon edges. The sparse set's dense array serves as the work queue:
// states inserted during the scan are themselves scanned.
func epsilonClosure(n *nfa.NFA, set *sparse.Set) {
	for i := 0; i < set.Len(); i++ {
		id := nfa.StateID(set.Values()[i])
		for _, e := range n.Edges(id) {
			if e.Epsilon {
				set.Insert(uint32(e.To))
			}
		}
	}
}

// move inserts into set the targets of all consuming edges out of members
// that match byte b.
func move(n *nfa.NFA, members []uint32, b byte, set *sparse.Set) {
	for _, m := range members {
		for _, e := range n.Edges(nfa.StateID(m)) {
			if !e.Epsilon && e.Lo <= b && b <= e.Hi {
				set.Insert(uint32(e.To))
			}
		}
	}
}

// canonical returns the set's members as a sorted slice, the canonical form
// used for subset identity.
func canonical(set *sparse.Set) []uint32 {
	members := make([]uint32, set.Len())
	copy(members, set.Values())
	sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })
	return members
}

// setKey encodes a sorted member list as a map key.
func setKey(members []uint32) string {
	buf := make([]byte, 0, len(members)*4)
	for _, m := range members {
		buf = append(buf, byte(m>>24), byte(m>>16), byte(m>>8), byte(m))
	}
	return string(buf)
}

// stateFor computes the accept marker and rule label for a subset: accepting
// iff any member accepts, labeled with the minimum assigned priority.
func stateFor(n *nfa.NFA, members []uint32) state {
	s := state{rule: NoRule}
	for _, m := range members {
		id := nfa.StateID(m)
		if !n.IsAccept(id) {
			continue
		}
		s.accept = true
		if r := n.Rule(id); r != nfa.NoRule && (s.rule == NoRule || r < s.rule) {
			s.rule = r
		}
	}
	return s
}

// segments partitions the byte alphabet at the range boundaries of the
// member states' consuming edges. Every byte within one segment matches
// exactly the same set of edges, so the successor subset is constant across
// the segment. Segments not overlapping any edge produce an empty move and
// are skipped by the caller.
func segments(n *nfa.NFA, members []uint32) []nfa.ByteRange {
	var bounds [256]bool
	covered := false
	for _, m := range members {
		for _, e := range n.Edges(nfa.StateID(m)) {
			if e.Epsilon {
				continue
			}
			covered = true
			if e.Lo > 0 {
				bounds[e.Lo-1] = true
			}
			bounds[e.Hi] = true
		}
	}
	if !covered {
		return nil
	}
	var segs []nfa.ByteRange
	start := 0
	for b := 0; b < 256; b++ {
		if bounds[b] || b == 255 {
			segs = append(segs, nfa.ByteRange{Lo: byte(start), Hi: byte(b)})
			start = b + 1
		}
	}
	return segs
}
