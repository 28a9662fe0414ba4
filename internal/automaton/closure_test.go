package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpsilonClosure(t *testing.T) {
	a := build(t, 5, "a", nil, 0, eps(0, 1), eps(1, 2), eps(2, 0), sym(2, 'a', 3), eps(3, 4))

	c, err := a.EpsilonClosure(0)
	require.NoError(t, err)
	assert.Equal(t, StateSet{0, 1, 2}, c)

	c, err = a.EpsilonClosure(4)
	require.NoError(t, err)
	assert.Equal(t, StateSet{4}, c)

	c, err = a.EpsilonClosureSet(StateSet{3, 1})
	require.NoError(t, err)
	assert.Equal(t, StateSet{0, 1, 2, 3, 4}, c)

	_, err = a.EpsilonClosure(5)
	assert.ErrorIs(t, err, ErrStateNotFound)
	_, err = a.EpsilonClosureSet(StateSet{0, 9})
	assert.ErrorIs(t, err, ErrStateNotFound)
}

func TestMove_ClosesBeforeAndAfter(t *testing.T) {
	a := aPlusEps(t)

	m, err := a.Move(0, 'a')
	require.NoError(t, err)
	assert.Equal(t, StateSet{0, 1, 2, 3}, m)

	m, err = a.Move(2, 'a')
	require.NoError(t, err)
	assert.Equal(t, StateSet{0, 1, 2, 3}, m)

	m, err = a.Move(0, 'b')
	require.NoError(t, err)
	assert.Empty(t, m)
}

func TestMove_Errors(t *testing.T) {
	a := aPlusEps(t)
	_, err := a.Move(4, 'a')
	assert.ErrorIs(t, err, ErrStateNotFound)
	_, err = a.Move(0, 'z')
	assert.ErrorIs(t, err, ErrSymbolNotInAlphabet)
}
