package automaton

import (
	"slices"
	"strings"
)

// Label is a transition label: either ε or a single alphabet symbol.
type Label struct {
	sym     rune
	epsilon bool
}

// Epsilon labels a spontaneous transition that consumes no input.
var Epsilon = Label{epsilon: true}

// Symbol returns the label for the input symbol r.
func Symbol(r rune) Label { return Label{sym: r} }

func (l Label) IsEpsilon() bool { return l.epsilon }

// Rune returns the symbol of a non-ε label.
func (l Label) Rune() rune { return l.sym }

func (l Label) String() string {
	if l.epsilon {
		return "ε"
	}
	return string(l.sym)
}

// compareLabels orders ε before every symbol, symbols by code point.
func compareLabels(a, b Label) int {
	switch {
	case a.epsilon && b.epsilon:
		return 0
	case a.epsilon:
		return -1
	case b.epsilon:
		return 1
	}
	return int(a.sym) - int(b.sym)
}

// Alphabet is a sorted, duplicate-free set of input symbols.
type Alphabet []rune

// NewAlphabet builds an alphabet from the given symbols.
func NewAlphabet(symbols ...rune) Alphabet {
	a := slices.Clone(symbols)
	slices.Sort(a)
	return Alphabet(slices.Compact(a))
}

// AlphabetOf returns the alphabet made of the runes of s.
func AlphabetOf(s string) Alphabet { return NewAlphabet([]rune(s)...) }

func (a Alphabet) Contains(r rune) bool {
	_, ok := slices.BinarySearch(a, r)
	return ok
}

// Union returns a new alphabet holding the symbols of both.
func (a Alphabet) Union(b Alphabet) Alphabet {
	out := make([]rune, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return NewAlphabet(out...)
}

// Includes reports whether every symbol of b is in a.
func (a Alphabet) Includes(b Alphabet) bool {
	for _, r := range b {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}

func (a Alphabet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range a {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteRune(r)
	}
	sb.WriteByte('}')
	return sb.String()
}
