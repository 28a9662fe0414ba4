package interpreter

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	u "github.com/araddon/gou"

	"automata/internal/automaton"
)

type Program struct {
	Statements []*Statement `parser:"@@*"`
}

type Statement struct {
	Pos lexer.Position

	Define *Define `parser:"  @@"`
	Let    *Let    `parser:"| @@ ';'"`
	Check  *Check  `parser:"| @@ ';'"`
	Query  *Query  `parser:"| @@ ';'"`
	Relate *Relate `parser:"| @@ ';'"`
	Run    *Run    `parser:"| @@ ';'"`
	Dot    *Dot    `parser:"| @@ ';'"`
}

type Define struct {
	Name     string  `parser:"'automaton' @Ident"`
	States   int     `parser:"'states' @Int"`
	Alphabet string  `parser:"'alphabet' @String"`
	Start    int     `parser:"'start' @Int"`
	Accept   []int   `parser:"'accept' '[' ( @Int ( ',' @Int )* )? ']'"`
	Edges    []*Edge `parser:"'{' @@* '}'"`
}

type Edge struct {
	Pos lexer.Position

	From  int        `parser:"'edge' @Int"`
	Label *EdgeLabel `parser:"@@"`
	To    int        `parser:"@Int ';'"`
}

type EdgeLabel struct {
	Epsilon bool    `parser:"  @'eps'"`
	Symbol  *string `parser:"| @String"`
}

type Let struct {
	Name string `parser:"'let' @Ident '='"`
	Expr *Expr  `parser:"@@"`
}

type Expr struct {
	Call *Call   `parser:"  @@"`
	Ref  *string `parser:"| @Ident"`
}

type Call struct {
	Op   string  `parser:"@('union'|'concat'|'star'|'plus'|'complement'|'intersection'|'minus'|'dfa') '('"`
	Args []*Expr `parser:"@@ ( ',' @@ )* ')'"`
}

type Check struct {
	Name  string   `parser:"'check' @Ident"`
	Words []string `parser:"@String+"`
}

type Query struct {
	Name string `parser:"'query' @Ident"`
	Kind string `parser:"@('empty'|'epsilon'|'epsonly')"`
}

type Relate struct {
	Left  string `parser:"'relate' @Ident"`
	Kind  string `parser:"@('subset'|'equals')"`
	Right string `parser:"@Ident"`
}

type Run struct {
	Name string `parser:"'run' @Ident"`
	Word string `parser:"@String"`
}

type Dot struct {
	Name string `parser:"'dot' @Ident"`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `[\[\](){},;=]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Elide("Comment", "Whitespace"),
	participle.Unquote("String"),
	participle.UseLookahead(2),
)

func Parse(data string) (*Program, error) {
	return parser.ParseString("input", data)
}

// ParseFile parses data, reporting positions against filename.
func ParseFile(filename, data string) (*Program, error) {
	return parser.ParseString(filename, data)
}

func (p *Program) Exec(ctx *Context) error {
	for _, stmt := range p.Statements {
		if err := stmt.Exec(ctx); err != nil {
			return fmt.Errorf("%s: %w", stmt.Pos, err)
		}
	}
	return nil
}

func (s *Statement) Exec(ctx *Context) error {
	switch {
	case s.Define != nil:
		return s.Define.Exec(ctx)
	case s.Let != nil:
		a, err := s.Let.Expr.Eval(ctx)
		if err != nil {
			return err
		}
		u.Debugf("let %s = %s", s.Let.Name, a)
		ctx.Env.Set(s.Let.Name, a)
	case s.Check != nil:
		return s.Check.Exec(ctx)
	case s.Query != nil:
		return s.Query.Exec(ctx)
	case s.Relate != nil:
		return s.Relate.Exec(ctx)
	case s.Run != nil:
		return s.Run.Exec(ctx)
	case s.Dot != nil:
		a, err := ctx.Env.lookup(s.Dot.Name)
		if err != nil {
			return err
		}
		return automaton.ExportDOT(ctx.Out, a)
	}
	return nil
}

func (d *Define) Exec(ctx *Context) error {
	a, err := automaton.NewNFA(d.States, automaton.AlphabetOf(d.Alphabet), d.Accept, d.Start)
	if err != nil {
		return fmt.Errorf("automaton %s: %w", d.Name, err)
	}
	for _, e := range d.Edges {
		l := automaton.Epsilon
		if !e.Label.Epsilon {
			sym := *e.Label.Symbol
			if utf8.RuneCountInString(sym) != 1 {
				return fmt.Errorf("%s: label %q must be a single symbol", e.Pos, sym)
			}
			r, _ := utf8.DecodeRuneInString(sym)
			l = automaton.Symbol(r)
		}
		if err := a.SetTransition(e.From, l, e.To); err != nil {
			return fmt.Errorf("%s: automaton %s: %w", e.Pos, d.Name, err)
		}
	}
	u.Debugf("defined %s = %s", d.Name, a)
	ctx.Env.Set(d.Name, a)
	return nil
}

func (e *Expr) Eval(ctx *Context) (*automaton.NFA, error) {
	switch {
	case e.Ref != nil:
		return ctx.Env.lookup(*e.Ref)
	case e.Call != nil:
		return e.Call.Eval(ctx)
	}
	return nil, fmt.Errorf("invalid expression")
}

func (c *Call) Eval(ctx *Context) (*automaton.NFA, error) {
	args := make([]*automaton.NFA, 0, len(c.Args))
	for _, arg := range c.Args {
		a, err := arg.Eval(ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, a)
	}
	want := 1
	switch c.Op {
	case "union", "concat", "intersection", "minus":
		want = 2
	}
	if len(args) != want {
		return nil, fmt.Errorf("%s takes %d argument(s), got %d", c.Op, want, len(args))
	}

	switch c.Op {
	case "union":
		return automaton.Union(args[0], args[1])
	case "concat":
		return automaton.Concat(args[0], args[1])
	case "intersection":
		return automaton.Intersection(args[0], args[1], ctx.Options...)
	case "minus":
		return automaton.Minus(args[0], args[1], ctx.Options...)
	case "star":
		return automaton.KleeneStar(args[0])
	case "plus":
		return automaton.Plus(args[0])
	case "complement":
		return automaton.Complement(args[0], ctx.Options...)
	case "dfa":
		d, err := automaton.Determinize(args[0], ctx.Options...)
		if err != nil {
			return nil, err
		}
		return d.NFA(), nil
	}
	return nil, fmt.Errorf("unknown operation %s", c.Op)
}

func (c *Check) Exec(ctx *Context) error {
	a, err := ctx.Env.lookup(c.Name)
	if err != nil {
		return err
	}
	results, err := automaton.AcceptsAll(ctx.Ctx, a, c.Words, ctx.Workers)
	if err != nil {
		return err
	}
	for i, w := range c.Words {
		fmt.Fprintf(ctx.Out, "%s %q: %s\n", c.Name, w, verdict(results[i]))
	}
	return nil
}

func (q *Query) Exec(ctx *Context) error {
	a, err := ctx.Env.lookup(q.Name)
	if err != nil {
		return err
	}
	var res bool
	switch q.Kind {
	case "empty":
		res = a.AcceptsNothing()
	case "epsilon":
		res = a.AcceptsEpsilon()
	case "epsonly":
		res = a.AcceptsEpsilonOnly()
	}
	fmt.Fprintf(ctx.Out, "%s %s: %v\n", q.Name, q.Kind, res)
	return nil
}

func (r *Relate) Exec(ctx *Context) error {
	left, err := ctx.Env.lookup(r.Left)
	if err != nil {
		return err
	}
	right, err := ctx.Env.lookup(r.Right)
	if err != nil {
		return err
	}
	var res bool
	switch r.Kind {
	case "subset":
		res, err = automaton.SubsetOf(left, right, ctx.Options...)
	case "equals":
		res, err = automaton.Equivalent(left, right, ctx.Options...)
	}
	if err != nil {
		return err
	}
	fmt.Fprintf(ctx.Out, "%s %s %s: %v\n", r.Left, r.Kind, r.Right, res)
	return nil
}

// Exec determinizes the automaton and walks the word through the DFA cursor,
// printing every state visited.
func (r *Run) Exec(ctx *Context) error {
	a, err := ctx.Env.lookup(r.Name)
	if err != nil {
		return err
	}
	d, err := automaton.Determinize(a, ctx.Options...)
	if err != nil {
		return err
	}
	return Trace(ctx, r.Name, d, r.Word)
}

// Trace resets s, steps it through word and prints the path and verdict.
// A missing transition rejects the word.
func Trace(ctx *Context, name string, s automaton.Stepper, word string) error {
	s.Reset()
	fmt.Fprintf(ctx.Out, "%s: %d", name, s.CurrentState())
	for _, sym := range word {
		q, err := s.Step(sym)
		if errors.Is(err, automaton.ErrNoTransitionDefined) {
			fmt.Fprintf(ctx.Out, " -%c-> ∅ reject\n", sym)
			return nil
		}
		if err != nil {
			fmt.Fprintln(ctx.Out)
			return err
		}
		fmt.Fprintf(ctx.Out, " -%c-> %d", sym, q)
	}
	fmt.Fprintf(ctx.Out, " %s\n", verdict(s.InAcceptingState()))
	return nil
}

func verdict(ok bool) string {
	if ok {
		return "accept"
	}
	return "reject"
}
