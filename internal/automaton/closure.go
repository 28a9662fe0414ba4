package automaton

// EpsilonClosure returns every state reachable from q through zero or more
// ε-edges, q included.
func (a *NFA) EpsilonClosure(q int) (StateSet, error) {
	if err := a.checkState(q); err != nil {
		return nil, err
	}
	return a.closure(stateMap{q: {}}), nil
}

// EpsilonClosureSet returns the union of the closures of the given states.
func (a *NFA) EpsilonClosureSet(states StateSet) (StateSet, error) {
	seed := make(stateMap, len(states))
	for _, q := range states {
		if err := a.checkState(q); err != nil {
			return nil, err
		}
		seed.add(q)
	}
	return a.closure(seed), nil
}

// Move returns the states reached from q by ε*, one r-edge, then ε* again.
func (a *NFA) Move(q int, r rune) (StateSet, error) {
	if err := a.checkState(q); err != nil {
		return nil, err
	}
	if err := a.checkSymbol(r); err != nil {
		return nil, err
	}
	return a.moveSet(a.closure(stateMap{q: {}}), r), nil
}

// closure grows seed in place until no ε-edge leads outside of it.
func (a *NFA) closure(seed stateMap) StateSet {
	stack := make([]int, 0, len(seed))
	for q := range seed {
		stack = append(stack, q)
	}
	for len(stack) > 0 {
		q := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, to := range a.targets(q, Epsilon) {
			if seed.add(to) {
				stack = append(stack, to)
			}
		}
	}
	return seed.toSet()
}

// moveSet follows r from every state of the ε-closed set and closes the
// result again.
func (a *NFA) moveSet(closed StateSet, r rune) StateSet {
	next := make(stateMap)
	l := Symbol(r)
	for _, q := range closed {
		for _, to := range a.targets(q, l) {
			next.add(to)
		}
	}
	if len(next) == 0 {
		return nil
	}
	return a.closure(next)
}
