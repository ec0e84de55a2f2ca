package lexgen

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/coregx/lexgen/nfa"
)

// patternCacheSize bounds the shared pattern cache. Rule sets in practice
// reuse a small vocabulary of patterns ("[0-9]+", "[a-z_][a-z0-9_]*", ...),
// so a modest bound captures nearly all hits.
const patternCacheSize = 256

// patternCache memoizes pattern compilation across lexer constructions.
// Tools that rebuild a lexer per file or per session would otherwise
// recompile identical patterns every time.
//
// Cached NFAs are never handed out directly: combinators consume their
// operands, so every hit is cloned before use and the cached master copy
// stays pristine. The cache itself is safe for concurrent use.
var patternCache = func() *lru.Cache[string, *nfa.NFA] {
	c, err := lru.New[string, *nfa.NFA](patternCacheSize)
	if err != nil {
		panic(err)
	}
	return c
}()

// compilePattern compiles a rule pattern, consulting the cache first.
// The returned NFA is exclusively owned by the caller.
func compilePattern(pattern string) (*nfa.NFA, error) {
	if cached, ok := patternCache.Get(pattern); ok {
		return cached.Clone(), nil
	}
	n, err := nfa.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patternCache.Add(pattern, n)
	return n.Clone(), nil
}
