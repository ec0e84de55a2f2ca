// Package lexgen builds lexical analyzers at run time from declarative
// pattern rules: no grammar files, no code generation step.
//
// A lexer is declared as an ordered list of regex rules, each paired with an
// action that converts the matched text into the caller's token type. The
// rules are compiled through a single automaton pipeline - regex to NFA,
// subset construction to DFA, Hopcroft minimization - and scanning runs the
// minimized DFA with maximal-munch semantics: the longest match wins, and
// ties at equal length go to the earliest-defined rule.
//
// Basic usage:
//
//	type Token struct {
//	    Kind string
//	    Text string
//	}
//
//	lex, err := lexgen.New([]lexgen.Rule[Token]{
//	    lexgen.Discard[Token](`[ \t\n]+`),
//	    lexgen.NewRule(`[0-9]+`, func(text string, span lexgen.Span) Token {
//	        return Token{Kind: "int", Text: text}
//	    }),
//	    lexgen.NewRule(`[a-z]+`, func(text string, span lexgen.Span) Token {
//	        return Token{Kind: "ident", Text: text}
//	    }),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	st := lexgen.NewState("12 ab")
//	for !st.EOF() {
//	    tok, err := lex.Next(st)
//	    ...
//	}
//
// A compiled Lexer is immutable and safe for concurrent scans, provided
// each scan owns its own State.
package lexgen

import (
	"fmt"

	"github.com/coregx/ahocorasick"

	"github.com/coregx/lexgen/dfa"
	"github.com/coregx/lexgen/literal"
	"github.com/coregx/lexgen/nfa"
)

// Action converts a matched slice of input into the caller's token type.
// The core never inspects the produced value; it only hands it back from
// Next.
type Action[T any] func(text string, span Span) T

// Rule pairs a regex pattern with the action to run on a match.
//
// Priority is implicit in definition order: earlier rules beat later ones
// when both match text of the same length. A discard rule participates in
// matching like any other but emits no token; the scanner silently moves
// past its matches (whitespace and comments, typically).
type Rule[T any] struct {
	Pattern string
	Discard bool
	Action  Action[T]
}

// NewRule declares a token-producing rule.
func NewRule[T any](pattern string, action Action[T]) Rule[T] {
	return Rule[T]{Pattern: pattern, Action: action}
}

// Discard declares a rule whose matches are consumed and dropped.
func Discard[T any](pattern string) Rule[T] {
	return Rule[T]{Pattern: pattern, Discard: true}
}

// Lexer is a compiled, immutable scanner for one rule set.
type Lexer[T any] struct {
	dfa    *dfa.DFA
	rules  []Rule[T]
	resync *ahocorasick.Automaton // exact-literal rule patterns, may be nil
}

// New compiles an ordered rule set into a Lexer.
//
// Each pattern is compiled to an NFA (through the shared pattern cache),
// labeled with its rule's priority, merged into one combined automaton,
// determinized and, by default, minimized. Compilation is all-or-nothing:
// any pattern error aborts construction and no partial lexer is produced.
//
// A rule matching the empty string is rejected with ErrEmptyMatch: it would
// produce zero-length tokens and stall the scan loop.
func New[T any](rules []Rule[T], opts ...Option) (*Lexer[T], error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("lexgen: no rules given")
	}
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	compiled := make([]*nfa.NFA, len(rules))
	for i, r := range rules {
		n, err := compilePattern(r.Pattern)
		if err != nil {
			return nil, err
		}
		n.SetRule(i)
		compiled[i] = n
	}

	combined := dfa.FromNFA(nfa.MergeRules(compiled))
	if cfg.Minimize {
		combined = combined.Minimize()
	}
	if combined.IsAccept(combined.Start()) {
		rule := combined.Rule(combined.Start())
		return nil, fmt.Errorf("lexgen: rule %d (%q): %w", rule, rules[rule].Pattern, ErrEmptyMatch)
	}

	l := &Lexer[T]{
		dfa:   combined,
		rules: rules,
	}
	if cfg.Resync {
		l.resync = buildResync(rules)
	}
	return l, nil
}

// MustNew is like New but panics on error, for rule sets known to be valid.
func MustNew[T any](rules []Rule[T], opts ...Option) *Lexer[T] {
	l, err := New(rules, opts...)
	if err != nil {
		panic(err)
	}
	return l
}

// buildResync collects the rules whose patterns are exact literals and
// compiles them into an Aho-Corasick automaton for Resync. Rule sets
// without literal patterns simply lack resynchronization support.
func buildResync[T any](rules []Rule[T]) *ahocorasick.Automaton {
	builder := ahocorasick.NewBuilder()
	found := 0
	for _, r := range rules {
		if lit, ok := literal.Exact(r.Pattern); ok && len(lit) > 0 {
			builder.AddPattern([]byte(lit))
			found++
		}
	}
	if found == 0 {
		return nil
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return auto
}

// DFA exposes the combined minimized automaton, mainly for its Dot dump.
func (l *Lexer[T]) DFA() *dfa.DFA {
	return l.dfa
}

// Next scans one token starting at the cursor's current position.
//
// Scanning feeds input characters into the DFA one at a time (each
// character atomically, byte by byte through its UTF-8 encoding) and
// records the last position where the automaton was in an accepting state.
// When the automaton dies or input ends, the cursor rewinds to that last
// accepting boundary: the longest match wins, and among rules matching that
// same longest text the DFA's accept label already encodes the
// earliest-defined rule.
//
// Matches of discard rules advance the cursor and scanning continues with
// the next token. At EOF Next returns ErrEndOfInput. If no rule ever
// accepted, Next returns a *LexError carrying the position where the
// attempt began; the cursor is left there untouched, so the caller chooses
// the recovery strategy (give up, skip a character, or Resync).
func (l *Lexer[T]) Next(st *State) (T, error) {
	var zero T
	for {
		if st.EOF() {
			return zero, ErrEndOfInput
		}

		start := *st
		cur := *st
		id := l.dfa.Start()
		markRule := dfa.NoRule
		var mark State

		for !cur.EOF() {
			_, w := cur.peek()
			next := id
			alive := true
			for i := 0; i < w; i++ {
				next = l.dfa.Next(next, cur.input[cur.pos+i])
				if next == dfa.Dead {
					alive = false
					break
				}
			}
			if !alive {
				break
			}
			cur.advance()
			id = next
			if l.dfa.IsAccept(id) {
				// Strictly later position: overwrite the mark. At the
				// same position the DFA cannot accept twice.
				markRule = l.dfa.Rule(id)
				mark = cur
			}
		}

		if markRule == dfa.NoRule {
			return zero, &LexError{Pos: start.Position(), Err: ErrNoRuleMatched}
		}

		text := st.input[start.pos:mark.pos]
		span := Span{Start: start.Position(), End: mark.Position()}
		*st = mark

		rule := l.rules[markRule]
		if rule.Discard {
			continue
		}
		return rule.Action(text, span), nil
	}
}

// Tokens scans the whole input, collecting every produced token.
// It stops cleanly at EOF and returns the tokens gathered so far alongside
// any lexical error.
func (l *Lexer[T]) Tokens(input string) ([]T, error) {
	st := NewState(input)
	var out []T
	for {
		tok, err := l.Next(st)
		if err == ErrEndOfInput {
			return out, nil
		}
		if err != nil {
			return out, err
		}
		out = append(out, tok)
	}
}

// Resync advances the cursor past an error position to the next occurrence
// of any exact-literal rule pattern, as located by the Aho-Corasick
// automaton built at construction time.
//
// This is a recovery heuristic, not part of the matching semantics: it only
// knows about rules whose patterns are plain literals (keywords,
// punctuation), and reports false - leaving the cursor where it was - when
// no such rule exists or no further occurrence is found. The caller is free
// to fall back to skipping a single character instead.
func (l *Lexer[T]) Resync(st *State) bool {
	if l.resync == nil || st.EOF() {
		return false
	}
	m := l.resync.Find([]byte(st.input), st.pos+1)
	if m == nil {
		return false
	}
	for st.pos < m.Start {
		st.advance()
	}
	return true
}
