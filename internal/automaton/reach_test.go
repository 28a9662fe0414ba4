package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReachableStates(t *testing.T) {
	a := build(t, 5, "ab", []int{4}, 0, eps(0, 1), sym(1, 'b', 2), sym(3, 'a', 4))
	assert.Equal(t, StateSet{0, 1, 2}, a.ReachableStates())
}

func TestAcceptsNothing(t *testing.T) {
	tests := []struct {
		name string
		a    *NFA
		want bool
	}{
		{"no accepting states", build(t, 2, "ab", nil, 0, sym(0, 'a', 1)), true},
		{"unreachable accepting state", build(t, 3, "ab", []int{2}, 0, sym(0, 'a', 1), sym(2, 'a', 1)), true},
		{"accepting start", build(t, 1, "ab", []int{0}, 0), false},
		{"accepting via epsilon", build(t, 2, "ab", []int{1}, 0, eps(0, 1)), false},
		{"accepting via symbol", onlyB(t), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.AcceptsNothing())
		})
	}
}

func TestAcceptsEpsilon(t *testing.T) {
	a := build(t, 3, "ab", []int{2}, 0, sym(0, 'a', 1), eps(1, 2))
	assert.False(t, a.AcceptsEpsilon())
	assert.True(t, member(t, a, "a"))

	b := build(t, 3, "ab", []int{2}, 0, eps(0, 1), eps(1, 2))
	assert.True(t, b.AcceptsEpsilon())
}

func TestAcceptsEpsilonOnly(t *testing.T) {
	star, err := KleeneStar(onlyB(t))
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		a    *NFA
		want bool
	}{
		{"single accepting state", build(t, 1, "ab", []int{0}, 0), true},
		{"epsilon edge to accepting", build(t, 2, "ab", []int{1}, 0, eps(0, 1)), true},
		{"symbol edge into dead end", build(t, 2, "ab", []int{0}, 0, sym(0, 'a', 1)), true},
		{"self loop on accepting start", build(t, 1, "ab", []int{0}, 0, sym(0, 'a', 0)), false},
		{"second accepting state reachable", build(t, 2, "ab", []int{0, 1}, 0, sym(0, 'b', 1)), false},
		{"path back into epsilon closure", build(t, 3, "ab", []int{1}, 0, eps(0, 1), sym(1, 'a', 2), eps(2, 0)), false},
		{"other path only from unreachable state", build(t, 2, "ab", []int{0}, 0, sym(1, 'a', 0)), true},
		{"empty word rejected", onlyB(t), false},
		{"kleene star", star, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.a.AcceptsEpsilonOnly())
		})
	}
}
