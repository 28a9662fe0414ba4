package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireDeterministic(t *testing.T, d *DFA) {
	t.Helper()
	seen := map[[2]int]bool{}
	for _, e := range d.Transitions() {
		require.False(t, e.Label.IsEpsilon(), "ε-edge %v", e)
		key := [2]int{e.From, int(e.Label.Rune())}
		require.False(t, seen[key], "second successor %v", e)
		seen[key] = true
	}
}

func TestDeterminize_PreservesLanguage(t *testing.T) {
	star, err := KleeneStar(endsAB(t))
	require.NoError(t, err)
	tests := map[string]*NFA{
		"onlyB":    onlyB(t),
		"evenA":    evenA(t),
		"endsAB":   endsAB(t),
		"aPlusEps": aPlusEps(t),
		"star":     star,
		"empty":    build(t, 3, "ab", nil, 0, sym(0, 'a', 1)),
	}
	for name, a := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := Determinize(a)
			require.NoError(t, err)
			requireDeterministic(t, d)
			requireSameLanguage(t, a, d, a.Alphabet(), 6)
		})
	}
}

func TestDeterminize_CollapsesEqualSubsets(t *testing.T) {
	d, err := endsAB(t).ToDFA()
	require.NoError(t, err)
	assert.Equal(t, 3, d.NumStates())
	assert.Equal(t, []int{2}, d.AcceptingStates())

	want := []StateSet{{0}, {0, 1}, {0, 2}}
	for q, s := range want {
		got, ok := d.Subset(q)
		require.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := d.Subset(3)
	assert.False(t, ok)
	assert.True(t, d.IsTotal())
}

func TestDeterminize_InitialClosure(t *testing.T) {
	a := build(t, 3, "ab", []int{2}, 0, eps(0, 1), eps(1, 2), sym(2, 'a', 0))
	d, err := Determinize(a)
	require.NoError(t, err)
	s, _ := d.Subset(0)
	assert.Equal(t, StateSet{0, 1, 2}, s)
	ok, err := d.IsAccepting(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, d.NumStates())
}

func TestDeterminize_Partial(t *testing.T) {
	d, err := onlyB(t).ToDFA()
	require.NoError(t, err)
	assert.Equal(t, 2, d.NumStates())
	assert.False(t, d.IsTotal())
	_, err = d.NextState(0, 'a')
	assert.ErrorIs(t, err, ErrNoTransitionDefined)
}

func TestDeterminize_StateLimit(t *testing.T) {
	_, err := endsAB(t).ToDFA(WithMaxStates(2))
	assert.ErrorIs(t, err, ErrStateLimitExceeded)

	_, err = endsAB(t).ToDFA(WithMaxStates(0))
	assert.NoError(t, err)
}

func TestDeterminize_Idempotent(t *testing.T) {
	d, err := evenA(t).ToDFA()
	require.NoError(t, err)
	require.True(t, d.IsTotal())

	again, err := d.NFA().ToDFA()
	require.NoError(t, err)
	requireDeterministic(t, again)
	requireSameLanguage(t, d, again, d.Alphabet(), 6)
}

func TestDeterminize_Malformed(t *testing.T) {
	_, err := Determinize(&NFA{})
	assert.ErrorIs(t, err, ErrMalformedAutomaton)
}
