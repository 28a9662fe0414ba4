package automaton

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"
)

// NFA is a nondeterministic finite automaton with ε-transitions.
//
// States are the dense indices 0..NumStates()-1. The number of states, the
// alphabet, the accepting set and the initial state are fixed at
// construction; transitions are added afterwards. Operations combining
// automata never modify their operands.
type NFA struct {
	numStates int
	alphabet  Alphabet
	accepting []bool
	initial   int
	trans     []map[Label]StateSet
}

// Transition is a single labelled edge.
type Transition struct {
	From  int
	Label Label
	To    int
}

func (t Transition) String() string {
	return fmt.Sprintf("%d -%s-> %d", t.From, t.Label, t.To)
}

// NewNFA creates an automaton without transitions.
func NewNFA(numStates int, alphabet Alphabet, accepting []int, initial int) (*NFA, error) {
	if numStates < 1 {
		return nil, fmt.Errorf("%w: state count %d, need at least 1", ErrMalformedAutomaton, numStates)
	}
	a := &NFA{
		numStates: numStates,
		alphabet:  NewAlphabet(alphabet...),
		accepting: make([]bool, numStates),
		initial:   initial,
		trans:     make([]map[Label]StateSet, numStates),
	}
	if err := a.checkState(initial); err != nil {
		return nil, fmt.Errorf("%w: initial %w", ErrMalformedAutomaton, err)
	}
	for _, q := range accepting {
		if err := a.checkState(q); err != nil {
			return nil, fmt.Errorf("%w: accepting %w", ErrMalformedAutomaton, err)
		}
		a.accepting[q] = true
	}
	return a, nil
}

// empty returns a one-state automaton over alphabet that accepts nothing.
func empty(alphabet Alphabet) *NFA {
	a, _ := NewNFA(1, alphabet, nil, 0)
	return a
}

func (a *NFA) NumStates() int     { return a.numStates }
func (a *NFA) InitialState() int  { return a.initial }
func (a *NFA) Alphabet() Alphabet { return slices.Clone(a.alphabet) }

// AcceptingStates returns the accepting states in ascending order.
func (a *NFA) AcceptingStates() []int {
	var out []int
	for q, ok := range a.accepting {
		if ok {
			out = append(out, q)
		}
	}
	return out
}

func (a *NFA) IsAccepting(q int) (bool, error) {
	if err := a.checkState(q); err != nil {
		return false, err
	}
	return a.accepting[q], nil
}

// SetTransition adds the edge from -l-> to. Adding an existing edge is a no-op.
func (a *NFA) SetTransition(from int, l Label, to int) error {
	if err := a.checkState(from); err != nil {
		return err
	}
	if err := a.checkState(to); err != nil {
		return err
	}
	if err := a.checkLabel(l); err != nil {
		return err
	}
	a.addEdge(from, l, to)
	return nil
}

// ClearTransitions removes every edge leaving from with label l.
func (a *NFA) ClearTransitions(from int, l Label) error {
	if err := a.checkState(from); err != nil {
		return err
	}
	if err := a.checkLabel(l); err != nil {
		return err
	}
	if a.trans[from] != nil {
		delete(a.trans[from], l)
	}
	return nil
}

// Targets returns the direct successors of q on l, without any closure.
func (a *NFA) Targets(q int, l Label) (StateSet, error) {
	if err := a.checkState(q); err != nil {
		return nil, err
	}
	if err := a.checkLabel(l); err != nil {
		return nil, err
	}
	return slices.Clone(a.targets(q, l)), nil
}

// Transitions lists all edges ordered by source, label (ε first) and target.
func (a *NFA) Transitions() []Transition {
	var out []Transition
	for q := range a.trans {
		labels := maps.Keys(a.trans[q])
		slices.SortFunc(labels, compareLabels)
		for _, l := range labels {
			for _, to := range a.trans[q][l] {
				out = append(out, Transition{From: q, Label: l, To: to})
			}
		}
	}
	return out
}

// Validate checks the structural invariants of the automaton.
func (a *NFA) Validate() error {
	if a == nil {
		return fmt.Errorf("%w: nil automaton", ErrMalformedAutomaton)
	}
	if a.numStates < 1 || len(a.accepting) != a.numStates || len(a.trans) != a.numStates {
		return fmt.Errorf("%w: inconsistent state count %d", ErrMalformedAutomaton, a.numStates)
	}
	if err := a.checkState(a.initial); err != nil {
		return fmt.Errorf("%w: initial %w", ErrMalformedAutomaton, err)
	}
	for q, edges := range a.trans {
		for l, targets := range edges {
			if err := a.checkLabel(l); err != nil {
				return fmt.Errorf("%w: state %d: %w", ErrMalformedAutomaton, q, err)
			}
			for _, to := range targets {
				if err := a.checkState(to); err != nil {
					return fmt.Errorf("%w: edge from %d: %w", ErrMalformedAutomaton, q, err)
				}
			}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (a *NFA) Clone() *NFA {
	return a.withAlphabet(a.alphabet)
}

// withAlphabet copies a over a superset of its alphabet. The language is
// unchanged since no edge uses the new symbols.
func (a *NFA) withAlphabet(alphabet Alphabet) *NFA {
	c := &NFA{
		numStates: a.numStates,
		alphabet:  slices.Clone(alphabet),
		accepting: slices.Clone(a.accepting),
		initial:   a.initial,
		trans:     make([]map[Label]StateSet, a.numStates),
	}
	a.copyEdges(c, 0)
	return c
}

// copyEdges adds every edge of a to dst with states shifted by offset.
func (a *NFA) copyEdges(dst *NFA, offset int) {
	for q, edges := range a.trans {
		for l, targets := range edges {
			for _, to := range targets {
				dst.addEdge(q+offset, l, to+offset)
			}
		}
	}
}

func (a *NFA) addEdge(from int, l Label, to int) {
	if a.trans[from] == nil {
		a.trans[from] = make(map[Label]StateSet)
	}
	a.trans[from][l] = insertState(a.trans[from][l], to)
}

func (a *NFA) targets(q int, l Label) StateSet {
	if a.trans[q] == nil {
		return nil
	}
	return a.trans[q][l]
}

func (a *NFA) checkState(q int) error {
	if q < 0 || q >= a.numStates {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrStateNotFound, q, a.numStates)
	}
	return nil
}

func (a *NFA) checkLabel(l Label) error {
	if l.IsEpsilon() {
		return nil
	}
	return a.checkSymbol(l.Rune())
}

func (a *NFA) checkSymbol(r rune) error {
	if !a.alphabet.Contains(r) {
		return fmt.Errorf("%w: %q not in %s", ErrSymbolNotInAlphabet, r, a.alphabet)
	}
	return nil
}

func (a *NFA) String() string {
	return fmt.Sprintf("NFA(states=%d alphabet=%s start=%d accept=%v)",
		a.numStates, a.alphabet, a.initial, a.AcceptingStates())
}
