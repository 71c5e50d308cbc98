package rpn

import (
	"math/big"
	"strconv"
	"strings"
)

// Decimal is an exact decimal number: an unscaled integer and a scale giving
// the number of digits after the decimal point. The value is
// unscaled × 10^-scale. Decimals are immutable; every operation returns a new
// value. The zero Decimal is 0 with scale 0.
type Decimal struct {
	// u is the unscaled value. nil means zero.
	u     *big.Int
	scale int
}

var (
	bigOne = big.NewInt(1)
	bigTen = big.NewInt(10)
)

// pow10 returns 10^n. n must be non-negative.
func pow10(n int) *big.Int {
	return new(big.Int).Exp(bigTen, big.NewInt(int64(n)), nil)
}

// NewDecimal creates the Decimal unscaled × 10^-scale. Panics if scale is
// negative.
func NewDecimal(unscaled int64, scale int) Decimal {
	if scale < 0 {
		panic("rpn: negative scale " + strconv.Itoa(scale))
	}
	return Decimal{u: big.NewInt(unscaled), scale: scale}
}

// ParseDecimal parses a decimal literal: an optional sign, then digits with at
// most one decimal point. At least one digit is required. The scale of the
// result is the number of digits written after the point.
func ParseDecimal(s string) (Decimal, error) {
	t := s
	neg := false
	if t != "" && (t[0] == '-' || t[0] == '+') {
		neg = t[0] == '-'
		t = t[1:]
	}
	intpart, frac := t, ""
	if k := strings.IndexByte(t, '.'); k >= 0 {
		intpart, frac = t[:k], t[k+1:]
	}
	if intpart == "" && frac == "" || !digits(intpart) || !digits(frac) {
		return Decimal{}, &NumberError{Text: s}
	}
	u, ok := new(big.Int).SetString(intpart+frac, 10)
	if !ok {
		return Decimal{}, &NumberError{Text: s}
	}
	if neg {
		u.Neg(u)
	}
	return Decimal{u: u, scale: len(frac)}, nil
}

// digits reports whether s consists only of ASCII digits. The empty string is
// all digits.
func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// MustParseDecimal is like ParseDecimal but panics on error.
func MustParseDecimal(s string) Decimal {
	d, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return d
}

// unscaled returns d's unscaled value. The result must not be modified.
func (d Decimal) unscaled() *big.Int {
	if d.u == nil {
		return new(big.Int)
	}
	return d.u
}

// Scale returns the number of fractional digits d carries.
func (d Decimal) Scale() int {
	return d.scale
}

// Sign returns -1, 0, or 1 according to the sign of d.
func (d Decimal) Sign() int {
	if d.u == nil {
		return 0
	}
	return d.u.Sign()
}

// IsZero reports whether d is zero at any scale.
func (d Decimal) IsZero() bool {
	return d.Sign() == 0
}

// Neg returns -d at the same scale.
func (d Decimal) Neg() Decimal {
	return Decimal{u: new(big.Int).Neg(d.unscaled()), scale: d.scale}
}

// Cmp compares the values of d and e regardless of scale, returning -1, 0, or
// 1.
func (d Decimal) Cmp(e Decimal) int {
	s := d.scale
	if e.scale > s {
		s = e.scale
	}
	return d.widen(s).Cmp(e.widen(s))
}

// widen returns d's unscaled value at scale s >= d.scale.
func (d Decimal) widen(s int) *big.Int {
	if s == d.scale {
		return d.unscaled()
	}
	return new(big.Int).Mul(d.unscaled(), pow10(s-d.scale))
}

// Truncate returns d with exactly scale fractional digits, discarding excess
// digits toward zero or appending zeros as needed. Panics if scale is
// negative.
func (d Decimal) Truncate(scale int) Decimal {
	if scale < 0 {
		panic("rpn: negative scale " + strconv.Itoa(scale))
	}
	if scale >= d.scale {
		return Decimal{u: d.widen(scale), scale: scale}
	}
	// Quo truncates toward zero.
	u := new(big.Int).Quo(d.unscaled(), pow10(d.scale-scale))
	return Decimal{u: u, scale: scale}
}

// Round returns d with exactly scale fractional digits, rounding half away
// from zero. Panics if scale is negative.
func (d Decimal) Round(scale int) Decimal {
	if scale < 0 {
		panic("rpn: negative scale " + strconv.Itoa(scale))
	}
	if scale >= d.scale {
		return Decimal{u: d.widen(scale), scale: scale}
	}
	m := pow10(d.scale - scale)
	q, r := new(big.Int).QuoRem(d.unscaled(), m, new(big.Int))
	// Compare 2|r| against the divisor to decide the half.
	r.Abs(r).Lsh(r, 1)
	if r.Cmp(m) >= 0 {
		if d.Sign() < 0 {
			q.Sub(q, bigOne)
		} else {
			q.Add(q, bigOne)
		}
	}
	return Decimal{u: q, scale: scale}
}

// Add returns x+y truncated to scale.
func Add(x, y Decimal, scale int) Decimal {
	s := maxScale(x, y)
	u := new(big.Int).Add(x.widen(s), y.widen(s))
	return Decimal{u: u, scale: s}.Truncate(scale)
}

// Sub returns x-y truncated to scale.
func Sub(x, y Decimal, scale int) Decimal {
	s := maxScale(x, y)
	u := new(big.Int).Sub(x.widen(s), y.widen(s))
	return Decimal{u: u, scale: s}.Truncate(scale)
}

// Mul returns x×y truncated to scale.
func Mul(x, y Decimal, scale int) Decimal {
	u := new(big.Int).Mul(x.unscaled(), y.unscaled())
	return Decimal{u: u, scale: x.scale + y.scale}.Truncate(scale)
}

// Div returns x/y truncated to scale. The result is exact up to the truncated
// digits. If y is zero, the error is a *DivisionError.
func Div(x, y Decimal, scale int) (Decimal, error) {
	if y.IsZero() {
		return Decimal{}, &DivisionError{Dividend: x}
	}
	if scale < 0 {
		panic("rpn: negative scale " + strconv.Itoa(scale))
	}
	// x/y × 10^scale = xu × 10^(ys+scale) / (yu × 10^xs)
	n := new(big.Int).Mul(x.unscaled(), pow10(y.scale+scale))
	d := new(big.Int).Mul(y.unscaled(), pow10(x.scale))
	return Decimal{u: n.Quo(n, d), scale: scale}, nil
}

func maxScale(x, y Decimal) int {
	if x.scale > y.scale {
		return x.scale
	}
	return y.scale
}

// String formats d with exactly d.Scale() fractional digits, e.g. "-0.50".
func (d Decimal) String() string {
	u := d.unscaled()
	s := new(big.Int).Abs(u).String()
	var b strings.Builder
	if u.Sign() < 0 {
		b.WriteByte('-')
	}
	if d.scale == 0 {
		b.WriteString(s)
		return b.String()
	}
	if len(s) <= d.scale {
		s = strings.Repeat("0", d.scale-len(s)+1) + s
	}
	k := len(s) - d.scale
	b.WriteString(s[:k])
	b.WriteByte('.')
	b.WriteString(s[k:])
	return b.String()
}

// MarshalText implements encoding.TextMarshaler.
func (d Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Decimal) UnmarshalText(text []byte) error {
	v, err := ParseDecimal(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
