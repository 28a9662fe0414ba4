package automaton

import "errors"

var (
	ErrStateNotFound       = errors.New("state not found")
	ErrSymbolNotInAlphabet = errors.New("symbol not in alphabet")
	ErrMalformedAutomaton  = errors.New("malformed automaton")
	ErrNoTransitionDefined = errors.New("no transition defined")

	// ErrStateLimitExceeded is returned when subset construction discovers
	// more states than the configured budget allows.
	ErrStateLimitExceeded = errors.New("DFA state limit exceeded during construction")
)
