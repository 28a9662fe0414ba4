package interpreter

import (
	"context"
	"io"

	"automata/internal/automaton"
	"automata/internal/config"
)

// Context stores environment, output and the settings statements run with

type Context struct {
	Ctx     context.Context
	Env     *Environment
	Out     io.Writer
	Options []automaton.Option
	Workers int
}

func NewContext(ctx context.Context, out io.Writer, conf *config.Config) *Context {
	return &Context{
		Ctx:     ctx,
		Env:     NewEnvironment(),
		Out:     out,
		Options: conf.Options(),
		Workers: conf.Workers,
	}
}
