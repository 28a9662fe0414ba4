package automaton

import (
	"fmt"

	u "github.com/araddon/gou"
)

// DefaultMaxDFAStates bounds subset construction unless overridden.
const DefaultMaxDFAStates = 1 << 16

type options struct {
	maxStates int
}

// Option tunes operations that determinize an automaton.
type Option func(*options)

// WithMaxStates caps the number of DFA states subset construction may
// discover. Zero or a negative value removes the cap.
func WithMaxStates(n int) Option {
	return func(o *options) { o.maxStates = n }
}

func newOptions(opts []Option) options {
	o := options{maxStates: DefaultMaxDFAStates}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToDFA determinizes a. See Determinize.
func (a *NFA) ToDFA(opts ...Option) (*DFA, error) { return Determinize(a, opts...) }

// Determinize converts a into an equivalent DFA by subset construction.
//
// DFA state i stands for the i-th discovered ε-closed subset of NFA states,
// the initial subset being the closure of the initial state. Subsets are
// identified by set equality. A symbol leading to the empty subset leaves
// the transition undefined, so the result may be partial.
func Determinize(a *NFA, opts ...Option) (*DFA, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	o := newOptions(opts)

	type edge struct {
		from, to int
		sym      rune
	}
	start := a.closure(stateMap{a.initial: {}})
	subsets := []StateSet{start}
	index := map[string]int{start.key(): 0}
	var edges []edge

	// subsets grows while it is walked; every appended subset gets expanded.
	for i := 0; i < len(subsets); i++ {
		for _, r := range a.alphabet {
			next := a.moveSet(subsets[i], r)
			if len(next) == 0 {
				continue
			}
			k := next.key()
			j, ok := index[k]
			if !ok {
				j = len(subsets)
				if o.maxStates > 0 && j >= o.maxStates {
					return nil, fmt.Errorf("%w: more than %d states", ErrStateLimitExceeded, o.maxStates)
				}
				index[k] = j
				subsets = append(subsets, next)
			}
			edges = append(edges, edge{from: i, to: j, sym: r})
		}
	}

	var accepting []int
	for i, s := range subsets {
		if s.intersects(a.accepting) {
			accepting = append(accepting, i)
		}
	}
	d, err := NewDFA(len(subsets), a.alphabet, accepting, 0)
	if err != nil {
		return nil, err
	}
	for _, e := range edges {
		d.table.addEdge(e.from, Symbol(e.sym), e.to)
	}
	d.subsets = subsets
	u.Debugf("determinized %d NFA states into %d DFA states (%d edges)", a.numStates, len(subsets), len(edges))
	return d, nil
}
