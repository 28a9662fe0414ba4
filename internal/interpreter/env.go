package interpreter

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/maps"

	"automata/internal/automaton"
)

// Environment holds named automata

type Environment struct {
	vars map[string]*automaton.NFA
}

func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]*automaton.NFA)}
}

func (e *Environment) Get(name string) (*automaton.NFA, bool) {
	v, ok := e.vars[name]
	return v, ok
}

func (e *Environment) Set(name string, val *automaton.NFA) {
	e.vars[name] = val
}

// Names returns the bound names in sorted order.
func (e *Environment) Names() []string {
	names := maps.Keys(e.vars)
	slices.Sort(names)
	return names
}

func (e *Environment) lookup(name string) (*automaton.NFA, error) {
	v, ok := e.vars[name]
	if !ok {
		return nil, fmt.Errorf("undefined automaton %s", name)
	}
	return v, nil
}

func (e *Environment) String() string {
	var sb strings.Builder
	for _, n := range e.Names() {
		fmt.Fprintf(&sb, "%s = %s\n", n, e.vars[n])
	}
	return sb.String()
}
