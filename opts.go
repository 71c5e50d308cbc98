package rpn

// Default scales used when a context is created without options.
const (
	// DefaultScale is the number of fractional digits in results.
	DefaultScale = 2
	// DefaultWorkingScale is the number of fractional digits kept after each
	// intermediate operation.
	DefaultWorkingScale = 10
)

// Option is an option used when creating a context.
type Option interface {
	ctxOption()
}

type (
	scaleopt   int
	workingopt int
)

func (scaleopt) ctxOption()   {}
func (workingopt) ctxOption() {}

// Scale sets the number of fractional digits of results. Results are rounded
// half away from zero to this scale.
func Scale(n int) Option {
	return scaleopt(n)
}

// WorkingScale sets the number of fractional digits kept after each
// arithmetic operation. Digits beyond it are truncated.
func WorkingScale(n int) Option {
	return workingopt(n)
}
