package automaton

import (
	"fmt"
	"slices"

	u "github.com/araddon/gou"
)

// Stepper is the runtime view of a deterministic automaton: a cursor that
// walks one symbol at a time.
type Stepper interface {
	Reset()
	Step(r rune) (int, error)
	CurrentState() int
	InAcceptingState() bool
}

// Run resets s, feeds it word symbol by symbol and reports whether it ends
// in an accepting state.
func Run(s Stepper, word string) (bool, error) {
	s.Reset()
	for _, r := range word {
		if _, err := s.Step(r); err != nil {
			return false, err
		}
	}
	return s.InAcceptingState(), nil
}

// DFA is a deterministic automaton: no ε-edges and at most one successor per
// state and symbol. The transition function may be partial; Totalize makes
// it total. A DFA carries a cursor used by Step and is therefore not safe
// for concurrent stepping. Accepts does not touch the cursor.
type DFA struct {
	table   *NFA
	current int

	// subsets[i] is the set of NFA states DFA state i stands for, when the
	// DFA came out of Determinize.
	subsets []StateSet
}

// NewDFA creates a DFA without transitions, its cursor on the initial state.
func NewDFA(numStates int, alphabet Alphabet, accepting []int, initial int) (*DFA, error) {
	table, err := NewNFA(numStates, alphabet, accepting, initial)
	if err != nil {
		return nil, err
	}
	return &DFA{table: table, current: initial}, nil
}

func (d *DFA) NumStates() int                  { return d.table.NumStates() }
func (d *DFA) InitialState() int               { return d.table.InitialState() }
func (d *DFA) Alphabet() Alphabet              { return d.table.Alphabet() }
func (d *DFA) AcceptingStates() []int          { return d.table.AcceptingStates() }
func (d *DFA) IsAccepting(q int) (bool, error) { return d.table.IsAccepting(q) }
func (d *DFA) Transitions() []Transition       { return d.table.Transitions() }

// SetTransition defines the successor of from on r, replacing any previous
// one. On error d is left unchanged.
func (d *DFA) SetTransition(from int, r rune, to int) error {
	if err := d.table.checkState(from); err != nil {
		return err
	}
	if err := d.table.checkState(to); err != nil {
		return err
	}
	if err := d.table.checkSymbol(r); err != nil {
		return err
	}
	l := Symbol(r)
	delete(d.table.trans[from], l)
	d.table.addEdge(from, l, to)
	return nil
}

func (d *DFA) AcceptsNothing() bool     { return d.table.AcceptsNothing() }
func (d *DFA) AcceptsEpsilon() bool     { return d.table.AcceptsEpsilon() }
func (d *DFA) AcceptsEpsilonOnly() bool { return d.table.AcceptsEpsilonOnly() }

// SubsetOf reports whether L(d) ⊆ L(e).
func (d *DFA) SubsetOf(e *DFA, opts ...Option) (bool, error) {
	return SubsetOf(d.table, e.table, opts...)
}

func (d *DFA) Equivalent(e *DFA, opts ...Option) (bool, error) {
	return Equivalent(d.table, e.table, opts...)
}

// NextState returns the successor of q on r, or ErrNoTransitionDefined.
func (d *DFA) NextState(q int, r rune) (int, error) {
	if err := d.table.checkState(q); err != nil {
		return 0, err
	}
	if err := d.table.checkSymbol(r); err != nil {
		return 0, err
	}
	targets := d.table.targets(q, Symbol(r))
	if len(targets) == 0 {
		return 0, fmt.Errorf("%w: state %d on %q", ErrNoTransitionDefined, q, r)
	}
	return targets[0], nil
}

// Reset moves the cursor back to the initial state.
func (d *DFA) Reset() { d.current = d.table.initial }

func (d *DFA) CurrentState() int { return d.current }

// Step advances the cursor on r and returns the new state. On error the
// cursor stays where it was.
func (d *DFA) Step(r rune) (int, error) {
	next, err := d.NextState(d.current, r)
	if err != nil {
		return d.current, err
	}
	d.current = next
	return next, nil
}

func (d *DFA) InAcceptingState() bool { return d.table.accepting[d.current] }

// Accepts runs word from the initial state. A missing transition rejects.
func (d *DFA) Accepts(word string) (bool, error) {
	for _, r := range word {
		if err := d.table.checkSymbol(r); err != nil {
			return false, err
		}
	}
	q := d.table.initial
	for _, r := range word {
		targets := d.table.targets(q, Symbol(r))
		if len(targets) == 0 {
			return false, nil
		}
		q = targets[0]
	}
	return d.table.accepting[q], nil
}

// IsTotal reports whether every state has a successor on every symbol.
func (d *DFA) IsTotal() bool {
	for q := 0; q < d.table.numStates; q++ {
		for _, r := range d.table.alphabet {
			if len(d.table.targets(q, Symbol(r))) == 0 {
				return false
			}
		}
	}
	return true
}

// Totalize returns a total copy of d. When d is partial, a non-accepting
// trap state looping on every symbol is appended and all missing
// transitions lead to it.
func (d *DFA) Totalize() *DFA {
	if d.IsTotal() {
		return d.clone()
	}
	n := d.table.numStates
	t, _ := NewDFA(n+1, d.table.alphabet, d.table.AcceptingStates(), d.table.initial)
	d.table.copyEdges(t.table, 0)
	trap := n
	for q := 0; q <= n; q++ {
		for _, r := range t.table.alphabet {
			if len(t.table.targets(q, Symbol(r))) == 0 {
				t.table.addEdge(q, Symbol(r), trap)
			}
		}
	}
	if d.subsets != nil {
		t.subsets = append(slices.Clone(d.subsets), StateSet{})
	}
	u.Debugf("totalized DFA with trap state %d", trap)
	return t
}

// NFA returns a copy of the transition table as an NFA.
func (d *DFA) NFA() *NFA { return d.table.Clone() }

// Subset returns the NFA states that determinized state q stands for. It
// reports false for DFAs not built by Determinize or an unknown state.
func (d *DFA) Subset(q int) (StateSet, bool) {
	if d.subsets == nil || d.table.checkState(q) != nil {
		return nil, false
	}
	return slices.Clone(d.subsets[q]), true
}

func (d *DFA) clone() *DFA {
	return &DFA{
		table:   d.table.Clone(),
		current: d.table.initial,
		subsets: slices.Clone(d.subsets),
	}
}

func (d *DFA) String() string {
	return fmt.Sprintf("DFA(states=%d alphabet=%s start=%d accept=%v current=%d)",
		d.table.numStates, d.table.alphabet, d.table.initial, d.table.AcceptingStates(), d.current)
}
