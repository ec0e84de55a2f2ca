package dfa

import (
	"testing"

	"github.com/coregx/lexgen/nfa"
)

// sameLanguage checks both automata against every corpus string.
func sameLanguage(t *testing.T, a, b *DFA) {
	t.Helper()
	for _, in := range corpus() {
		ar, aok := a.Match([]byte(in))
		br, bok := b.Match([]byte(in))
		if aok != bok || ar != br {
			t.Errorf("input %q: (%d, %v) vs (%d, %v)", in, ar, aok, br, bok)
		}
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	patterns := []string{
		"abc",
		"(a|b)*abb",
		"[a-z]+",
		"a+b*c?",
		"(ab)+|(ba)+",
		"[^a-z]",
		".*",
		"z(a|b(c|a)*)*",
	}
	for _, pattern := range patterns {
		t.Run(pattern, func(t *testing.T) {
			d := compileDFA(t, pattern)
			m := d.Minimize()
			sameLanguage(t, d, m)
			if m.Len() > d.Len() {
				t.Errorf("minimized has %d states, input had %d", m.Len(), d.Len())
			}
		})
	}
}

func TestMinimizeReachesKnownMinimum(t *testing.T) {
	tests := []struct {
		pattern string
		states  int
	}{
		// Strings over {a,b} ending in "abb": the textbook 4-state DFA.
		{"(a|b)*abb", 4},
		{"[a-z]+", 2},
		{"a|b|c", 2},
		{"abc", 4},
		{"a*", 1},
	}
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			m := compileDFA(t, tt.pattern).Minimize()
			if m.Len() != tt.states {
				t.Errorf("minimized to %d states, want %d", m.Len(), tt.states)
			}
		})
	}
}

func TestMinimizeIdempotent(t *testing.T) {
	m := compileDFA(t, "(a|b)*abb|[0-9]+").Minimize()
	again := m.Minimize()
	if again.Len() != m.Len() {
		t.Fatalf("second minimization changed state count: %d -> %d", m.Len(), again.Len())
	}
	sameLanguage(t, m, again)
}

func TestMinimizeCanonicalNumbering(t *testing.T) {
	a := compileDFA(t, "(ab|cd)+").Minimize()
	b := compileDFA(t, "(ab|cd)+").Minimize()
	if a.Len() != b.Len() || a.Start() != b.Start() {
		t.Fatalf("same pattern minimized differently: %v vs %v", a, b)
	}
	for id := StateID(0); id < StateID(a.Len()); id++ {
		at, bt := a.Transitions(id), b.Transitions(id)
		if len(at) != len(bt) {
			t.Fatalf("state %d transition counts differ", id)
		}
		for i := range at {
			if at[i] != bt[i] {
				t.Fatalf("state %d transition %d differs", id, i)
			}
		}
	}
}

func TestMinimizeKeepsDistinctRules(t *testing.T) {
	// Two rules with overlapping languages: their accepting states carry
	// different priorities and must not merge.
	kw, err := nfa.Compile("if|for")
	if err != nil {
		t.Fatal(err)
	}
	kw.SetRule(0)
	ident, err := nfa.Compile("[a-z]+")
	if err != nil {
		t.Fatal(err)
	}
	ident.SetRule(1)

	d := FromNFA(nfa.MergeRules([]*nfa.NFA{kw, ident}))
	m := d.Minimize()
	sameLanguage(t, d, m)

	tests := []struct {
		in       string
		wantRule int
	}{
		{"if", 0},
		{"for", 0},
		{"fork", 1},
		{"i", 1},
		{"q", 1},
	}
	for _, tt := range tests {
		rule, ok := m.Match([]byte(tt.in))
		if !ok || rule != tt.wantRule {
			t.Errorf("Match(%q) = %d, %v; want rule %d", tt.in, rule, ok, tt.wantRule)
		}
	}
}

func TestMinimizeEmptyAutomaton(t *testing.T) {
	m := (&DFA{}).Minimize()
	if m.Len() != 1 {
		t.Fatalf("empty automaton should minimize to one state, got %d", m.Len())
	}
	if _, ok := m.Match([]byte("")); ok {
		t.Error("empty automaton should reject the empty string")
	}
	if _, ok := m.Match([]byte("a")); ok {
		t.Error("empty automaton should reject everything")
	}
}

func TestMinimizeDissolvesTrapStates(t *testing.T) {
	// A hand-built DFA with an explicit non-accepting trap: minimization
	// folds it into the implicit dead state.
	d := &DFA{
		states: []state{
			{transitions: []Transition{{Lo: 'a', Hi: 'a', To: 1}, {Lo: 'b', Hi: 'b', To: 2}}, rule: NoRule},
			{accept: true, rule: 0},
			{transitions: []Transition{{Lo: 'a', Hi: 'z', To: 2}}, rule: NoRule}, // trap
		},
	}
	m := d.Minimize()
	if m.Len() != 2 {
		t.Fatalf("trap should dissolve, got %d states", m.Len())
	}
	if rule, ok := m.Match([]byte("a")); !ok || rule != 0 {
		t.Errorf("Match(\"a\") = %d, %v; want 0, true", rule, ok)
	}
	if _, ok := m.Match([]byte("b")); ok {
		t.Error("\"b\" leads to the trap and must reject")
	}
}
