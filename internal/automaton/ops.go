package automaton

import (
	u "github.com/araddon/gou"
)

/* ----------- Thompson-style constructions ---------------------------- */

// Union accepts L(a) ∪ L(b). State 0 is a fresh start with ε-edges into
// copies of a (shifted by 1) and b (shifted by 1+|a|).
func Union(a, b *NFA) (*NFA, error) {
	if err := validateAll(a, b); err != nil {
		return nil, err
	}
	offB := 1 + a.numStates
	var accepting []int
	for _, q := range a.AcceptingStates() {
		accepting = append(accepting, q+1)
	}
	for _, q := range b.AcceptingStates() {
		accepting = append(accepting, q+offB)
	}
	out, err := NewNFA(offB+b.numStates, a.alphabet.Union(b.alphabet), accepting, 0)
	if err != nil {
		return nil, err
	}
	a.copyEdges(out, 1)
	b.copyEdges(out, offB)
	out.addEdge(0, Epsilon, a.initial+1)
	out.addEdge(0, Epsilon, b.initial+offB)
	return out, nil
}

// Concat accepts L(a)·L(b). Every accepting state of a gets an ε-edge into
// b's start; only b's accepting states remain accepting.
func Concat(a, b *NFA) (*NFA, error) {
	if err := validateAll(a, b); err != nil {
		return nil, err
	}
	offB := a.numStates
	var accepting []int
	for _, q := range b.AcceptingStates() {
		accepting = append(accepting, q+offB)
	}
	out, err := NewNFA(offB+b.numStates, a.alphabet.Union(b.alphabet), accepting, a.initial)
	if err != nil {
		return nil, err
	}
	a.copyEdges(out, 0)
	b.copyEdges(out, offB)
	for _, q := range a.AcceptingStates() {
		out.addEdge(q, Epsilon, b.initial+offB)
	}
	return out, nil
}

// KleeneStar accepts L(a)*. The fresh accepting start state 0 leads into a
// and every accepting state of a returns to it.
func KleeneStar(a *NFA) (*NFA, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	accepting := []int{0}
	for _, q := range a.AcceptingStates() {
		accepting = append(accepting, q+1)
	}
	out, err := NewNFA(a.numStates+1, a.alphabet, accepting, 0)
	if err != nil {
		return nil, err
	}
	a.copyEdges(out, 1)
	out.addEdge(0, Epsilon, a.initial+1)
	for _, q := range a.AcceptingStates() {
		out.addEdge(q+1, Epsilon, 0)
	}
	return out, nil
}

// Plus accepts L(a)+ as a·a*.
func Plus(a *NFA) (*NFA, error) {
	star, err := KleeneStar(a)
	if err != nil {
		return nil, err
	}
	return Concat(a, star)
}

/* ----------- constructions through determinization ------------------- */

// Complement accepts every word over a's alphabet that a rejects. The
// determinized automaton is totalized before accepting and non-accepting
// states are swapped; a missing transition would otherwise reject words
// that belong to the complement.
func Complement(a *NFA, opts ...Option) (*NFA, error) {
	d, err := Determinize(a, opts...)
	if err != nil {
		return nil, err
	}
	t := d.Totalize()
	var accepting []int
	for q, ok := range t.table.accepting {
		if !ok {
			accepting = append(accepting, q)
		}
	}
	out, err := NewNFA(t.table.numStates, t.table.alphabet, accepting, t.table.initial)
	if err != nil {
		return nil, err
	}
	t.table.copyEdges(out, 0)
	return out, nil
}

// Intersection accepts L(a) ∩ L(b), computed as ¬(¬a ∪ ¬b) over the union
// of both alphabets.
func Intersection(a, b *NFA, opts ...Option) (*NFA, error) {
	a, b, err := widen(a, b)
	if err != nil {
		return nil, err
	}
	if a.AcceptsNothing() {
		u.Debugf("intersection: left operand is empty")
		return a, nil
	}
	na, err := Complement(a, opts...)
	if err != nil {
		return nil, err
	}
	nb, err := Complement(b, opts...)
	if err != nil {
		return nil, err
	}
	un, err := Union(na, nb)
	if err != nil {
		return nil, err
	}
	return Complement(un, opts...)
}

// Minus accepts L(a) \ L(b), computed as ¬(¬a ∪ b) over the union of both
// alphabets.
func Minus(a, b *NFA, opts ...Option) (*NFA, error) {
	a, b, err := widen(a, b)
	if err != nil {
		return nil, err
	}
	if a.AcceptsNothing() {
		u.Debugf("minus: left operand is empty")
		return a, nil
	}
	na, err := Complement(a, opts...)
	if err != nil {
		return nil, err
	}
	un, err := Union(na, b)
	if err != nil {
		return nil, err
	}
	return Complement(un, opts...)
}

// widen returns copies of a and b sharing the union of their alphabets.
// Complements taken afterwards are relative to that common alphabet.
func widen(a, b *NFA) (*NFA, *NFA, error) {
	if err := validateAll(a, b); err != nil {
		return nil, nil, err
	}
	sigma := a.alphabet.Union(b.alphabet)
	return a.withAlphabet(sigma), b.withAlphabet(sigma), nil
}

func validateAll(automata ...*NFA) error {
	for _, a := range automata {
		if err := a.Validate(); err != nil {
			return err
		}
	}
	return nil
}

/* ----------- method forms -------------------------------------------- */

func (a *NFA) Union(b *NFA) (*NFA, error)  { return Union(a, b) }
func (a *NFA) Concat(b *NFA) (*NFA, error) { return Concat(a, b) }
func (a *NFA) KleeneStar() (*NFA, error)   { return KleeneStar(a) }
func (a *NFA) Plus() (*NFA, error)         { return Plus(a) }

func (a *NFA) Complement(opts ...Option) (*NFA, error) { return Complement(a, opts...) }

func (a *NFA) Intersection(b *NFA, opts ...Option) (*NFA, error) {
	return Intersection(a, b, opts...)
}

func (a *NFA) Minus(b *NFA, opts ...Option) (*NFA, error) { return Minus(a, b, opts...) }
