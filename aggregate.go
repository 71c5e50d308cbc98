package rpn

// Sum adds any number of values at the context's working scale and rounds the
// total to the context's scale. The sum of no values is zero.
func (ctx *Context) Sum(xs ...Decimal) (Decimal, error) {
	if err := ctx.check(); err != nil {
		return Decimal{}, err
	}
	var r Decimal
	for _, x := range xs {
		r = Add(r, x, ctx.working)
	}
	return r.Round(ctx.scale), nil
}

// Difference subtracts each of ys from x in turn.
func (ctx *Context) Difference(x Decimal, ys ...Decimal) (Decimal, error) {
	return ctx.fold(subop.fn, x, ys)
}

// Product multiplies x by each of ys in turn.
func (ctx *Context) Product(x Decimal, ys ...Decimal) (Decimal, error) {
	return ctx.fold(mulop.fn, x, ys)
}

// Quotient divides x by each of ys in turn. If any divisor is zero, the error
// is a *DivisionError.
func (ctx *Context) Quotient(x Decimal, ys ...Decimal) (Decimal, error) {
	return ctx.fold(divop.fn, x, ys)
}

// fold applies f left to right at the working scale and rounds the result to
// the context's scale.
func (ctx *Context) fold(f opfunc, x Decimal, ys []Decimal) (Decimal, error) {
	if err := ctx.check(); err != nil {
		return Decimal{}, err
	}
	r := x
	for _, y := range ys {
		var err error
		r, err = f(r, y, ctx.working)
		if err != nil {
			return Decimal{}, err
		}
	}
	return r.Round(ctx.scale), nil
}

// ToMinor converts an amount in major currency units to a whole number of
// minor units, where one major unit is 10^digits minor units, e.g. 12.345
// dollars with digits 2 is 1235 cents. The result is rounded half away from
// zero. Panics if digits is negative.
func ToMinor(amount Decimal, digits int) Decimal {
	if digits < 0 {
		panic("rpn: negative minor unit digits")
	}
	return Mul(amount, Decimal{u: pow10(digits)}, amount.scale).Round(0)
}

// FromMinor converts a count of minor currency units to major units with
// digits fractional digits, e.g. 1235 cents with digits 2 is 12.35 dollars.
// Fractions of a minor unit are truncated. Panics if digits is negative.
func FromMinor(units Decimal, digits int) Decimal {
	if digits < 0 {
		panic("rpn: negative minor unit digits")
	}
	r, _ := Div(units, Decimal{u: pow10(digits)}, digits)
	return r
}
