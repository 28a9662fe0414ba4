package automaton

import (
	"bufio"
	"fmt"
	"io"
)

// ExportDOT writes a Graphviz description of an *NFA or *DFA to w.
func ExportDOT(w io.Writer, g any) error {
	var (
		table  *NFA
		prefix string
	)
	switch t := g.(type) {
	case *DFA:
		table, prefix = t.table, "q"
	case *NFA:
		table, prefix = t, "n"
	default:
		return fmt.Errorf("%w: cannot export %T", ErrMalformedAutomaton, g)
	}
	if err := table.Validate(); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "digraph G {")
	fmt.Fprintln(bw, "    rankdir=LR;")
	for q := 0; q < table.numStates; q++ {
		shape := "circle"
		if table.accepting[q] {
			shape = "doublecircle"
		}
		fmt.Fprintf(bw, "    %s%d [shape=%s];\n", prefix, q, shape)
	}
	for _, e := range table.Transitions() {
		fmt.Fprintf(bw, "    %s%d -> %s%d [label=%q];\n", prefix, e.From, prefix, e.To, e.Label.String())
	}
	fmt.Fprintf(bw, "    _start [shape=point]; _start -> %s%d;\n", prefix, table.initial)
	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
