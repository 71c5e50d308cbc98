//go:build go1.18
// +build go1.18

package rpn_test

import (
	"testing"

	"github.com/zephyrtronium/rpn"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("(((1)))")
	f.Add("1.2.3")
	f.Fuzz(func(t *testing.T, s string) {
		a, err := rpn.ParseString(s)
		if err != nil {
			return
		}
		b, err := rpn.ParsePostfix(a.String())
		if err != nil {
			t.Fatalf("postfix %q of %q does not reparse: %v", a, s, err)
		}
		if a.String() != b.String() {
			t.Errorf("postfix of %q changed from %q to %q", s, a, b)
		}
	})
}
