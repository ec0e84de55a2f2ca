package dfa

import (
	"sort"

	"github.com/coregx/lexgen/internal/sparse"
)

// Minimize returns an equivalent DFA with the minimum number of states,
// using Hopcroft's partition refinement.
//
// The initial partition groups states by accept label (one group per
// distinct rule priority, one for non-accepting states), so states accepting
// different rules are never merged. Refinement then splits any group whose
// members disagree, on some input, about which group they transition into,
// driven by a work list of splitter groups to stay near-linear.
//
// Two reductions keep the inner loops small:
//
//   - The byte alphabet is reduced to equivalence classes derived from the
//     boundaries of all transition ranges; bytes in the same class behave
//     identically in every state, so refinement runs per class, not per byte.
//   - Missing transitions are modeled with one virtual dead state so that
//     partial transition tables refine correctly; states indistinguishable
//     from it (non-accepting traps) dissolve back into the implicit reject.
//
// The result is canonical: surviving groups are numbered by their lowest
// original state ID, so identical inputs always minimize to identical
// automata. Minimization never fails; merged groups with conflicting accept
// labels would indicate a construction bug and panic.
func (d *DFA) Minimize() *DFA {
	n := len(d.states)
	if n == 0 {
		return &DFA{states: []state{{rule: NoRule}}}
	}

	_, reps := d.alphabetClasses()
	numClasses := len(reps)

	dead := uint32(n)
	total := n + 1

	nextOf := func(s uint32, c int) uint32 {
		if s == dead {
			return dead
		}
		to := d.Next(StateID(s), reps[c])
		if to == Dead {
			return dead
		}
		return uint32(to)
	}

	// Reverse transitions per class, with the virtual dead state absorbing
	// every missing edge.
	rev := make([][]uint32, numClasses*total)
	for s := uint32(0); s < uint32(total); s++ {
		for c := 0; c < numClasses; c++ {
			to := nextOf(s, c)
			rev[c*total+int(to)] = append(rev[c*total+int(to)], s)
		}
	}

	// Initial partition: one group per accept label, discovered in state-ID
	// order for determinism. The virtual dead state lands in the
	// non-accepting group and is separated by refinement when it matters.
	type label struct {
		accept bool
		rule   int
	}
	groupIdx := make(map[label]int)
	var groups [][]uint32
	groupOf := make([]int, total)
	for s := 0; s < total; s++ {
		var lb label
		if s < n {
			lb = label{accept: d.states[s].accept, rule: d.states[s].rule}
		} else {
			lb = label{accept: false, rule: NoRule}
		}
		g, ok := groupIdx[lb]
		if !ok {
			g = len(groups)
			groupIdx[lb] = g
			groups = append(groups, nil)
		}
		groups[g] = append(groups[g], uint32(s))
		groupOf[s] = g
	}

	// Work list of splitter groups, seeded with every initial group.
	worklist := make([]int, 0, len(groups))
	inWork := make([]bool, 0, len(groups))
	for g := range groups {
		worklist = append(worklist, g)
		inWork = append(inWork, true)
	}

	x := sparse.NewSet(uint32(total))
	for len(worklist) > 0 {
		splitter := worklist[0]
		worklist = worklist[1:]
		inWork[splitter] = false
		// Snapshot: the splitter's membership at pop time is what refines.
		members := make([]uint32, len(groups[splitter]))
		copy(members, groups[splitter])

		for c := 0; c < numClasses; c++ {
			// X = all states transitioning into the splitter on class c.
			x.Clear()
			for _, m := range members {
				for _, pred := range rev[c*total+int(m)] {
					x.Insert(pred)
				}
			}
			if x.Len() == 0 {
				continue
			}

			// Collect groups touched by X, in deterministic order.
			var touched []int
			seen := make(map[int]bool)
			for _, s := range x.Values() {
				g := groupOf[s]
				if !seen[g] {
					seen[g] = true
					touched = append(touched, g)
				}
			}
			sort.Ints(touched)

			for _, g := range touched {
				var in, out []uint32
				for _, s := range groups[g] {
					if x.Contains(s) {
						in = append(in, s)
					} else {
						out = append(out, s)
					}
				}
				if len(in) == 0 || len(out) == 0 {
					continue
				}
				// Split: the old index keeps the complement, the
				// intersection becomes a new group.
				groups[g] = out
				ng := len(groups)
				groups = append(groups, in)
				inWork = append(inWork, false)
				for _, s := range in {
					groupOf[s] = ng
				}
				if inWork[g] {
					worklist = append(worklist, ng)
					inWork[ng] = true
				} else {
					// Push the smaller half; refining with either
					// suffices, the smaller keeps the total work low.
					smaller := ng
					if len(out) < len(in) {
						smaller = g
					}
					worklist = append(worklist, smaller)
					inWork[smaller] = true
				}
			}
		}
	}

	return d.rebuild(groups, groupOf, int(dead))
}

// rebuild assembles the minimized DFA from the final partition.
func (d *DFA) rebuild(groups [][]uint32, groupOf []int, dead int) *DFA {
	deadGroup := groupOf[dead]

	if groupOf[int(d.start)] == deadGroup {
		// The automaton accepts nothing at all.
		return &DFA{states: []state{{rule: NoRule}}}
	}

	// Canonical numbering: surviving groups ordered by lowest original
	// state ID. The start state is original ID 0, so its group becomes
	// state 0.
	type groupInfo struct {
		idx int
		min uint32
	}
	var order []groupInfo
	for g, members := range groups {
		if g == deadGroup || len(members) == 0 {
			continue
		}
		min := members[0]
		for _, m := range members[1:] {
			if m < min {
				min = m
			}
		}
		order = append(order, groupInfo{idx: g, min: min})
	}
	sort.Slice(order, func(i, j int) bool { return order[i].min < order[j].min })

	newID := make(map[int]StateID, len(order))
	for i, gi := range order {
		newID[gi.idx] = StateID(i)
	}

	out := &DFA{states: make([]state, len(order))}
	for i, gi := range order {
		rep := d.states[gi.min]
		for _, m := range groups[gi.idx] {
			s := d.states[m]
			if s.accept != rep.accept || s.rule != rep.rule {
				panic("dfa: minimization merged states with distinct accept labels")
			}
		}
		var trs []Transition
		for _, t := range rep.transitions {
			g := groupOf[t.To]
			if g == deadGroup {
				continue
			}
			trs = append(trs, Transition{Lo: t.Lo, Hi: t.Hi, To: newID[g]})
		}
		out.states[i] = state{
			transitions: coalesce(trs),
			accept:      rep.accept,
			rule:        rep.rule,
		}
	}
	out.start = newID[groupOf[int(d.start)]]
	return out
}

// alphabetClasses reduces the byte alphabet to equivalence classes.
//
// Boundaries are collected from every transition range in the DFA: bytes
// between two boundaries are covered by exactly the same set of ranges in
// every state, so they always transition identically and one representative
// byte per class suffices for refinement.
func (d *DFA) alphabetClasses() (classOf [256]int, reps []byte) {
	var bounds [256]bool
	for i := range d.states {
		for _, t := range d.states[i].transitions {
			if t.Lo > 0 {
				bounds[t.Lo-1] = true
			}
			bounds[t.Hi] = true
		}
	}
	class := 0
	reps = append(reps, 0)
	for b := 0; b < 256; b++ {
		classOf[b] = class
		if bounds[b] && b < 255 {
			class++
			reps = append(reps, byte(b+1))
		}
	}
	return classOf, reps
}
