package automaton

import (
	"context"

	u "github.com/araddon/gou"
	"golang.org/x/sync/errgroup"
)

// Recognizer decides membership of words in a regular language. Both NFA
// and DFA implement it; Accepts must not mutate the receiver so a single
// Recognizer can serve concurrent callers.
type Recognizer interface {
	Alphabet() Alphabet
	Accepts(word string) (bool, error)
}

// Accepts runs word against the set of active states. Every rune of word
// must belong to the alphabet.
func (a *NFA) Accepts(word string) (bool, error) {
	for _, r := range word {
		if err := a.checkSymbol(r); err != nil {
			return false, err
		}
	}
	active := a.closure(stateMap{a.initial: {}})
	for _, r := range word {
		active = a.moveSet(active, r)
		if len(active) == 0 {
			return false, nil
		}
	}
	return active.intersects(a.accepting), nil
}

// AcceptsAll matches every word against rec using at most workers
// goroutines. Results are in input order; the first error cancels the rest.
func AcceptsAll(ctx context.Context, rec Recognizer, words []string, workers int) ([]bool, error) {
	out := make([]bool, len(words))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, w := range words {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ok, err := rec.Accepts(w)
			if err != nil {
				return err
			}
			out[i] = ok
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	u.Debugf("matched %d words with %d workers", len(words), workers)
	return out, nil
}
