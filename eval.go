package rpn

import (
	"errors"
	"io"
	"strings"
)

// Context is a context for evaluating expressions. It holds only the scales
// to evaluate at, so it is safe to use a Context concurrently.
type Context struct {
	scale   int
	working int
}

// NewContext creates a new evaluation context. If no scales are given, the
// defaults are DefaultScale and DefaultWorkingScale.
func NewContext(opts ...Option) *Context {
	ctx := Context{scale: DefaultScale, working: DefaultWorkingScale}
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. Later options
// override earlier ones.
func (ctx *Context) Clone(opts ...Option) *Context {
	n := *ctx
	for _, opt := range opts {
		switch opt := opt.(type) {
		case nil:
			// do nothing
		case scaleopt:
			n.scale = int(opt)
		case workingopt:
			n.working = int(opt)
		default:
			panic("rpn: unknown option type")
		}
	}
	return &n
}

// Scale returns the number of fractional digits of results in the context.
func (ctx *Context) Scale() int {
	return ctx.scale
}

// WorkingScale returns the number of fractional digits kept after each
// operation in the context.
func (ctx *Context) WorkingScale() int {
	return ctx.working
}

// check validates the context's scales.
func (ctx *Context) check() error {
	if ctx.scale < 0 {
		return &ScaleError{Name: "scale", Scale: ctx.scale}
	}
	if ctx.working < 0 {
		return &ScaleError{Name: "working scale", Scale: ctx.working}
	}
	return nil
}

// Eval evaluates an expression and returns its value rounded to the
// context's scale.
func (ctx *Context) Eval(e *Expr) (Decimal, error) {
	if err := ctx.check(); err != nil {
		return Decimal{}, err
	}
	r, err := ctx.run(e)
	if err != nil {
		return Decimal{}, err
	}
	return r.Round(ctx.scale), nil
}

// run evaluates the postfix sequence at the working scale using a fresh
// operand stack.
func (ctx *Context) run(e *Expr) (Decimal, error) {
	stack := make([]Decimal, 0, len(e.postfix)/2+1)
	for _, tok := range e.postfix {
		switch tok.kind {
		case tokenNum:
			x, err := ParseDecimal(tok.text)
			if err != nil {
				return Decimal{}, &LexError{Text: tok.text, Kind: "number", Col: tok.pos}
			}
			stack = append(stack, x)
		case tokenOp:
			if len(stack) < 2 {
				return Decimal{}, &StackError{Col: tok.pos, Op: tok.text, Len: len(stack)}
			}
			// The first value popped is the right operand.
			y := stack[len(stack)-1]
			x := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			r, err := binop(tok.text).fn(x, y, ctx.working)
			if err != nil {
				var de *DivisionError
				if errors.As(err, &de) {
					de.Col = tok.pos
				}
				return Decimal{}, err
			}
			stack = append(stack, r)
		default:
			panic("rpn: invalid postfix token " + tok.String())
		}
	}
	if len(stack) != 1 {
		return Decimal{}, &StackError{Col: e.end, Len: len(stack)}
	}
	return stack[0], nil
}

// Eval is a shortcut to parse an expression and return its result.
func Eval(src io.RuneScanner, opts ...Option) (Decimal, error) {
	ctx := NewContext(opts...)
	a, err := Parse(src)
	if err != nil {
		return Decimal{}, err
	}
	return ctx.Eval(a)
}

// EvalString is a shortcut to parse and evaluate a string expression.
func EvalString(src string, opts ...Option) (Decimal, error) {
	return Eval(strings.NewReader(src), opts...)
}
