package automaton

import (
	"errors"
	"testing"

	u "github.com/araddon/gou"
	"github.com/stretchr/testify/require"
)

func init() {
	u.SetupLogging("warn")
	u.SetColorOutput()
}

func sym(from int, r rune, to int) Transition { return Transition{From: from, Label: Symbol(r), To: to} }
func eps(from, to int) Transition             { return Transition{From: from, Label: Epsilon, To: to} }

func build(t testing.TB, n int, alphabet string, accepting []int, initial int, edges ...Transition) *NFA {
	t.Helper()
	a, err := NewNFA(n, AlphabetOf(alphabet), accepting, initial)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, a.SetTransition(e.From, e.Label, e.To))
	}
	return a
}

// onlyB accepts exactly "b".
func onlyB(t testing.TB) *NFA {
	return build(t, 2, "ab", []int{1}, 0, sym(0, 'b', 1))
}

// evenA accepts words over {a,b} with an even number of a's.
func evenA(t testing.TB) *NFA {
	return build(t, 2, "ab", []int{0}, 0,
		sym(0, 'a', 1), sym(1, 'a', 0), sym(0, 'b', 0), sym(1, 'b', 1))
}

// endsAB accepts words over {a,b} ending in "ab".
func endsAB(t testing.TB) *NFA {
	return build(t, 3, "ab", []int{2}, 0,
		sym(0, 'a', 0), sym(0, 'b', 0), sym(0, 'a', 1), sym(1, 'b', 2))
}

// aPlusEps accepts a+ through ε-edges on both sides of every a-edge.
func aPlusEps(t testing.TB) *NFA {
	return build(t, 4, "ab", []int{3}, 0,
		eps(0, 1), sym(1, 'a', 2), eps(2, 3), eps(3, 0))
}

// words enumerates every word over alphabet of length at most maxLen.
func words(alphabet Alphabet, maxLen int) []string {
	out := []string{""}
	layer := []string{""}
	for n := 0; n < maxLen; n++ {
		var next []string
		for _, w := range layer {
			for _, r := range alphabet {
				next = append(next, w+string(r))
			}
		}
		out = append(out, next...)
		layer = next
	}
	return out
}

// member treats words with foreign symbols as rejected.
func member(t testing.TB, rec Recognizer, w string) bool {
	t.Helper()
	ok, err := rec.Accepts(w)
	if errors.Is(err, ErrSymbolNotInAlphabet) {
		return false
	}
	require.NoError(t, err)
	return ok
}

func requireSameLanguage(t *testing.T, want, got Recognizer, alphabet Alphabet, maxLen int) {
	t.Helper()
	for _, w := range words(alphabet, maxLen) {
		require.Equal(t, member(t, want, w), member(t, got, w), "word %q", w)
	}
}
