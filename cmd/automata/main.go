package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	u "github.com/araddon/gou"

	"automata/internal/automaton"
	"automata/internal/config"
	"automata/internal/interpreter"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		u.Errorf("%v", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("automata", flag.ContinueOnError)
	configFile := fs.String("config", "", "confl config file")
	logLevel := fs.String("loglevel", "", "log level [debug|info|warn|error], overrides config")
	dotFile := fs.String("dot", "", "write the example DFA as Graphviz to this file")
	scriptFile := fs.String("script", "", "automaton script to execute")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: automata [-config file] [-loglevel lvl] [-dot file] [-script file] [word...]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}

	conf := config.Default()
	if *configFile != "" {
		c, err := config.LoadConfigFromFile(*configFile)
		if err != nil {
			return fmt.Errorf("could not load config: %w", err)
		}
		conf = c
	}
	if *logLevel != "" {
		conf.LogLevel = *logLevel
	}
	u.SetupLogging(conf.LogLevel)
	if conf.Color {
		u.SetColorIfTerminal()
	}
	u.Debugf("running with %s", conf)

	ctx := interpreter.NewContext(context.Background(), stdout, conf)
	if *scriptFile != "" {
		data, err := os.ReadFile(*scriptFile)
		if err != nil {
			return err
		}
		prog, err := interpreter.ParseFile(*scriptFile, string(data))
		if err != nil {
			return err
		}
		return prog.Exec(ctx)
	}

	d, err := exampleDFA(conf)
	if err != nil {
		return err
	}
	if *dotFile != "" {
		if err := writeDOT(*dotFile, d); err != nil {
			return err
		}
		u.Infof("dfa written to %s (run: dot -Tpng %s -o dfa.png)", *dotFile, *dotFile)
	}
	for _, w := range fs.Args() {
		if err := interpreter.Trace(ctx, "example", d, w); err != nil {
			return err
		}
	}
	return nil
}

func writeDOT(path string, d *automaton.DFA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := automaton.ExportDOT(f, d); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// exampleDFA builds b·a* over {a,b} as an NFA and determinizes it.
func exampleDFA(conf *config.Config) (*automaton.DFA, error) {
	a, err := automaton.NewNFA(2, automaton.AlphabetOf("ab"), []int{1}, 0)
	if err != nil {
		return nil, err
	}
	if err := a.SetTransition(0, automaton.Symbol('b'), 1); err != nil {
		return nil, err
	}
	if err := a.SetTransition(1, automaton.Symbol('a'), 1); err != nil {
		return nil, err
	}
	return a.ToDFA(conf.Options()...)
}
