package lexgen

// Config controls lexer construction. The zero value is not meaningful;
// start from DefaultConfig.
type Config struct {
	// Minimize runs Hopcroft minimization on the combined DFA. Disabling it
	// trades a larger automaton for faster construction, which can pay off
	// for short-lived lexers over large rule sets.
	Minimize bool

	// Resync builds the Aho-Corasick automaton over exact-literal rule
	// patterns that backs Lexer.Resync. Disabling it skips the build for
	// callers that never recover from lexical errors.
	Resync bool
}

// DefaultConfig returns the standard construction configuration:
// minimization and resynchronization support both enabled.
func DefaultConfig() Config {
	return Config{
		Minimize: true,
		Resync:   true,
	}
}

// Option adjusts the construction Config.
type Option func(*Config)

// WithMinimization enables or disables DFA minimization.
func WithMinimization(enabled bool) Option {
	return func(c *Config) { c.Minimize = enabled }
}

// WithResync enables or disables building the resynchronization automaton.
func WithResync(enabled bool) Option {
	return func(c *Config) { c.Resync = enabled }
}
