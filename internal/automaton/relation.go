package automaton

// SubsetOf reports whether L(a) ⊆ L(b), i.e. whether a \ b is empty.
func SubsetOf(a, b *NFA, opts ...Option) (bool, error) {
	diff, err := Minus(a, b, opts...)
	if err != nil {
		return false, err
	}
	return diff.AcceptsNothing(), nil
}

// Equivalent reports whether a and b accept the same language.
func Equivalent(a, b *NFA, opts ...Option) (bool, error) {
	ok, err := SubsetOf(a, b, opts...)
	if err != nil || !ok {
		return false, err
	}
	return SubsetOf(b, a, opts...)
}

func (a *NFA) SubsetOf(b *NFA, opts ...Option) (bool, error) { return SubsetOf(a, b, opts...) }

func (a *NFA) Equivalent(b *NFA, opts ...Option) (bool, error) {
	return Equivalent(a, b, opts...)
}
