package automaton

// ReachableStates returns every state reachable from the initial state over
// ε-edges and symbol edges.
func (a *NFA) ReachableStates() StateSet {
	return a.reachable().toSet()
}

func (a *NFA) reachable() stateMap {
	seen := stateMap{a.initial: {}}
	queue := []int{a.initial}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, targets := range a.trans[q] {
			for _, to := range targets {
				if seen.add(to) {
					queue = append(queue, to)
				}
			}
		}
	}
	return seen
}

// coReachable returns the states from which some accepting state can be
// reached.
func (a *NFA) coReachable() stateMap {
	preds := make([][]int, a.numStates)
	for q, edges := range a.trans {
		for _, targets := range edges {
			for _, to := range targets {
				preds[to] = append(preds[to], q)
			}
		}
	}
	seen := make(stateMap)
	var queue []int
	for q, ok := range a.accepting {
		if ok {
			seen.add(q)
			queue = append(queue, q)
		}
	}
	for len(queue) > 0 {
		q := queue[0]
		queue = queue[1:]
		for _, p := range preds[q] {
			if seen.add(p) {
				queue = append(queue, p)
			}
		}
	}
	return seen
}

// AcceptsNothing reports whether the language is empty, i.e. no accepting
// state is reachable.
func (a *NFA) AcceptsNothing() bool {
	for q := range a.reachable() {
		if a.accepting[q] {
			return false
		}
	}
	return true
}

// AcceptsEpsilon reports whether the empty word is accepted.
func (a *NFA) AcceptsEpsilon() bool {
	return a.closure(stateMap{a.initial: {}}).intersects(a.accepting)
}

// AcceptsEpsilonOnly reports whether the empty word is the only accepted
// word.
func (a *NFA) AcceptsEpsilonOnly() bool {
	return a.AcceptsEpsilon() && !a.acceptsNonEmpty()
}

// acceptsNonEmpty reports whether some word of length >= 1 is accepted: a
// symbol edge must leave a reachable state towards a state that can still
// reach acceptance.
func (a *NFA) acceptsNonEmpty() bool {
	fwd := a.reachable()
	back := a.coReachable()
	for q := range fwd {
		for l, targets := range a.trans[q] {
			if l.IsEpsilon() {
				continue
			}
			for _, to := range targets {
				if _, ok := back[to]; ok {
					return true
				}
			}
		}
	}
	return false
}
