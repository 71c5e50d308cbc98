package rpn

// opfunc computes a binary operation on decimals, truncating the result to
// scale. Only division can fail.
type opfunc func(x, y Decimal, scale int) (Decimal, error)

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// fn computes the operation.
	fn opfunc
}

// yieldsTo reports whether an incoming operator p pops top off the operator
// stack. Addition and subtraction pop every pending operator down to an open
// parenthesis; multiplication and division pop only multiplication and
// division.
func (p operator) yieldsTo(top operator) bool {
	return top.prec >= p.prec
}

func exact(f func(x, y Decimal, scale int) Decimal) opfunc {
	return func(x, y Decimal, scale int) (Decimal, error) {
		return f(x, y, scale), nil
	}
}

var (
	addop = operator{1, exact(Add)}
	subop = operator{1, exact(Sub)}
	mulop = operator{2, exact(Mul)}
	divop = operator{2, Div}
)

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has a nil fn.
func binop(text string) operator {
	switch text {
	case "+":
		return addop
	case "-":
		return subop
	case "*":
		return mulop
	case "/":
		return divop
	default:
		return operator{}
	}
}
