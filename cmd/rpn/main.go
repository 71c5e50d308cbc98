package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/zephyrtronium/rpn"
)

var version = "dev"

type cli struct {
	Version      kong.VersionFlag `help:"Print version and exit."`
	In           string           `short:"i" help:"Input file, or - for stdin (default stdin if no expressions are given)."`
	Lines        bool             `short:"n" help:"Evaluate separate input lines as separate expressions."`
	Scale        int              `short:"s" default:"2" env:"RPN_SCALE" help:"Fractional digits of results."`
	WorkingScale int              `short:"w" default:"10" env:"RPN_WORKING_SCALE" help:"Fractional digits kept after each operation."`
	Postfix      bool             `short:"p" help:"Inputs are whitespace-separated postfix expressions."`
	Echo         bool             `help:"Print the postfix form of each expression before its result."`
	Verbose      bool             `short:"v" help:"Log evaluation details to stderr."`
	NoColor      bool             `help:"Disable colored error output."`
	Exprs        []string         `arg:"" optional:"" help:"Expressions to evaluate."`
}

func main() {
	log.SetFlags(0)
	var c cli
	kctx := kong.Parse(&c,
		kong.Name("rpn"),
		kong.Description("Evaluate arithmetic expressions with exact decimal arithmetic."),
		kong.Vars{"version": version},
	)
	if c.Scale < 0 || c.WorkingScale < 0 {
		kctx.Fatalf("scales (%d, %d) must not be negative", c.Scale, c.WorkingScale)
	}
	if c.NoColor {
		color.NoColor = true
	}
	level := slog.LevelWarn
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	srcs, err := c.sources(os.Stdin)
	if err != nil {
		log.Fatal(err)
	}
	logger.Debug("evaluating", "expressions", len(srcs), "scale", c.Scale, "working_scale", c.WorkingScale)
	ev := evaluator{
		ctx:     rpn.NewContext(rpn.Scale(c.Scale), rpn.WorkingScale(c.WorkingScale)),
		postfix: c.Postfix,
		echo:    c.Echo,
		log:     logger,
		out:     os.Stdout,
		errw:    os.Stderr,
		errc:    color.New(color.FgRed),
	}
	if ev.run(srcs) > 0 {
		os.Exit(1)
	}
}

// sources collects the expressions to evaluate: the input file or stdin
// first, then the command-line arguments.
func (c *cli) sources(stdin io.Reader) ([]string, error) {
	var r io.Reader
	switch {
	case c.In != "" && c.In != "-":
		f, err := os.Open(c.In)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	case c.In == "-", len(c.Exprs) == 0:
		r = stdin
	}
	var srcs []string
	if r != nil {
		in, err := readSources(r, c.Lines)
		if err != nil {
			return nil, err
		}
		srcs = in
	}
	return append(srcs, c.Exprs...), nil
}

// readSources reads either one expression from all of r or, if lines is set,
// one expression per non-blank line.
func readSources(r io.Reader, lines bool) ([]string, error) {
	if !lines {
		b, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		if strings.TrimSpace(string(b)) == "" {
			return nil, nil
		}
		return []string{string(b)}, nil
	}
	var srcs []string
	scan := bufio.NewScanner(r)
	for scan.Scan() {
		if strings.TrimSpace(scan.Text()) == "" {
			continue
		}
		srcs = append(srcs, scan.Text())
	}
	return srcs, scan.Err()
}

type evaluator struct {
	ctx     *rpn.Context
	postfix bool
	echo    bool
	log     *slog.Logger
	out     io.Writer
	errw    io.Writer
	errc    *color.Color
}

// run evaluates each source, printing results to out and errors to errw. It
// returns the number of expressions that failed.
func (ev *evaluator) run(srcs []string) int {
	failed := 0
	for _, src := range srcs {
		r, a, err := ev.eval(src)
		if err != nil {
			failed++
			ev.log.Debug("evaluation failed", "src", src, "err", err)
			ev.errc.Fprintf(ev.errw, "%s: %v\n", strings.TrimSpace(src), err)
			continue
		}
		ev.log.Debug("evaluated", "src", src, "postfix", a.String(), "result", r.String())
		if ev.echo {
			fmt.Fprintf(ev.out, "%v : ", a)
		}
		fmt.Fprintln(ev.out, r)
	}
	return failed
}

func (ev *evaluator) eval(src string) (rpn.Decimal, *rpn.Expr, error) {
	var a *rpn.Expr
	var err error
	if ev.postfix {
		a, err = rpn.ParsePostfix(src)
	} else {
		a, err = rpn.ParseString(src)
	}
	if err != nil {
		return rpn.Decimal{}, nil, err
	}
	r, err := ev.ctx.Eval(a)
	return r, a, err
}
