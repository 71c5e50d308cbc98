package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/rpn"
)

func testEvaluator(postfix, echo bool) (*evaluator, *bytes.Buffer, *bytes.Buffer) {
	color.NoColor = true
	var out, errw bytes.Buffer
	return &evaluator{
		ctx:     rpn.NewContext(),
		postfix: postfix,
		echo:    echo,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		out:     &out,
		errw:    &errw,
		errc:    color.New(color.FgRed),
	}, &out, &errw
}

func TestRun(t *testing.T) {
	ev, out, errw := testEvaluator(false, false)
	failed := ev.run([]string{"2+3*4", "(1+2", "8-2*3\n"})
	assert.Equal(t, 1, failed)
	assert.Equal(t, "14.00\n2.00\n", out.String())
	assert.Equal(t, "(1+2: 1: open bracket ( with no close bracket\n", errw.String())
}

func TestRunEcho(t *testing.T) {
	ev, out, errw := testEvaluator(false, true)
	assert.Equal(t, 0, ev.run([]string{"(2+3)*4"}))
	assert.Equal(t, "2 3 + 4 * : 20.00\n", out.String())
	assert.Empty(t, errw.String())
}

func TestRunPostfix(t *testing.T) {
	ev, out, errw := testEvaluator(true, false)
	assert.Equal(t, 1, ev.run([]string{"5 -2 -", "1 0 /"}))
	assert.Equal(t, "7.00\n", out.String())
	assert.Equal(t, "1 0 /: 5: division of 1 by zero\n", errw.String())
}

func TestReadSources(t *testing.T) {
	in := "1+1\n\n  \n2*3\n"
	srcs, err := readSources(strings.NewReader(in), true)
	require.NoError(t, err)
	assert.Equal(t, []string{"1+1", "2*3"}, srcs)

	srcs, err = readSources(strings.NewReader(in), false)
	require.NoError(t, err)
	assert.Equal(t, []string{in}, srcs)

	srcs, err = readSources(strings.NewReader(" \n"), false)
	require.NoError(t, err)
	assert.Empty(t, srcs)
}

func TestSources(t *testing.T) {
	path := filepath.Join(t.TempDir(), "exprs.txt")
	require.NoError(t, os.WriteFile(path, []byte("1+2\n3*4\n"), 0o644))

	c := cli{In: path, Lines: true, Exprs: []string{"5/2"}}
	srcs, err := c.sources(strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1+2", "3*4", "5/2"}, srcs)

	c = cli{Exprs: []string{"5/2"}}
	srcs, err = c.sources(strings.NewReader("ignored"))
	require.NoError(t, err)
	assert.Equal(t, []string{"5/2"}, srcs)

	c = cli{}
	srcs, err = c.sources(strings.NewReader("7-1"))
	require.NoError(t, err)
	assert.Equal(t, []string{"7-1"}, srcs)

	c = cli{In: filepath.Join(t.TempDir(), "missing")}
	_, err = c.sources(nil)
	assert.Error(t, err)
}
