//go:build go1.18
// +build go1.18

package rpn_test

import (
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzEval(f *testing.F) {
	f.Add("1+2*3")
	f.Add("(1-2)/-3")
	f.Add("10.05*3.05-(8.73/12.3)*7.5")
	f.Add("5--2")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := rpn.EvalString(s)
		if err != nil {
			return
		}
		b, err := rpn.EvalString(s)
		if err != nil || a.String() != b.String() {
			t.Errorf("%q evaluated to %v then %v (%v)", s, a, b, err)
		}
	})
}
