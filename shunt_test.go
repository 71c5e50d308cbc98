package rpn

import (
	"errors"
	"strings"
	"testing"

	"github.com/alecthomas/repr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShunt(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want string
	}{
		{"empty", "", ""},
		{"empty-parens", "()", ""},
		{"num", "1", "1"},
		{"add", "1+2", "1 2 +"},
		{"add-sub", "1-2+3", "1 2 - 3 +"},
		{"div-div", "8/2/2", "8 2 / 2 /"},
		{"mul-first", "2*3-8", "2 3 * 8 -"},
		{"mul-binds", "2+3*4", "2 3 4 * +"},
		{"paren", "(2+3)*4", "2 3 + 4 *"},
		{"low-flush", "8-2*3", "8 2 3 * -"},
		{"mixed", "1+2*3-4", "1 2 3 * + 4 -"},
		{"mul-div", "6*4/3", "6 4 * 3 /"},
		{"inner-paren", "2*(3+4)*5", "2 3 4 + * 5 *"},
		{"nested", "((1+2)*(3-4))/5", "1 2 + 3 4 - * 5 /"},
		{"neg", "-1+2", "-1 2 +"},
		{"neg-mul", "3*-2", "3 -2 *"},
		{"sub-neg", "5--2", "5 -2 -"},
		{"money", "10.05*3.05-(8.73/12.3)*7.5", "10.05 3.05 * 8.73 12.3 / 7.5 * -"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := tokenize(strings.NewReader(c.src))
			require.NoError(t, err)
			e, err := shunt(toks)
			require.NoError(t, err, "shunting %s", repr.String(toks))
			assert.Equal(t, c.want, e.String())
			for _, tok := range e.postfix {
				assert.NotContains(t, []tokenKind{tokenOpen, tokenClose, tokenEOF}, tok.kind, "postfix contains %v", tok)
			}
		})
	}
}

func TestShuntBrackets(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		left  string
		right string
		col   int
	}{
		{"unclosed", "(1+2", "(", "", 1},
		{"unopened", "1+2)", "", ")", 4},
		{"backward", ")(", "", ")", 1},
		{"outer-unclosed", "((1)", "(", "", 1},
		{"extra-close", "(1))", "", ")", 4},
		{"late-close", "1*(2+3))*4", "", ")", 8},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			toks, err := tokenize(strings.NewReader(c.src))
			require.NoError(t, err)
			_, err = shunt(toks)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMismatchedParen), "%v does not unwrap to ErrMismatchedParen", err)
			var be *BracketError
			require.True(t, errors.As(err, &be), "error was %#v, not BracketError", err)
			assert.Equal(t, c.left, be.Left)
			assert.Equal(t, c.right, be.Right)
			assert.Equal(t, c.col, be.Pos())
		})
	}
}

func TestYieldsTo(t *testing.T) {
	ops := []string{"+", "-", "*", "/"}
	for _, in := range ops {
		for _, top := range ops {
			want := in == "+" || in == "-" || top == "*" || top == "/"
			got := binop(in).yieldsTo(binop(top))
			assert.Equal(t, want, got, "%s arriving over %s", in, top)
		}
	}
}
