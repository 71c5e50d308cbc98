package rpn_test

import (
	"errors"
	"fmt"

	"github.com/zephyrtronium/rpn"
)

func ExampleEvalString() {
	r, err := rpn.EvalString("10.05 * 3.05 - (8.73 / 12.3) * 7.5")
	if err != nil {
		panic(err)
	}
	fmt.Println(r)

	r, _ = rpn.EvalString("1/3", rpn.Scale(6))
	fmt.Println(r)

	_, err = rpn.EvalString("5/0")
	fmt.Println(errors.Is(err, rpn.ErrDivisionByZero), err)

	// Output:
	// 25.33
	// 0.333333
	// true 2: division of 5 by zero
}

func ExampleExpr_String() {
	a, _ := rpn.ParseString("(2+3)*4 - 8/-2")
	fmt.Println(a)

	// Output:
	// 2 3 + 4 * 8 -2 / -
}

func ExampleContext_Sum() {
	ctx := rpn.NewContext()
	r, _ := ctx.Sum(rpn.MustParseDecimal("0.1"), rpn.MustParseDecimal("0.2"))
	fmt.Println(r)

	// Output:
	// 0.30
}
