package forms

import "fmt"

// Option is a functional option for configuring a Context.
type Option func(*Context) error

// WithDebugMode draws a depth-colored outline around every painted
// component. Useful when diagnosing layout resolution.
func WithDebugMode(enabled bool) Option {
	return func(ctx *Context) error {
		ctx.debugMode = enabled
		return nil
	}
}

// WithLayoutCorrection sets the default layout-compensation multiplier
// applied to Relative size resolution. Default is 1. Must be positive.
func WithLayoutCorrection(f float64) Option {
	return func(ctx *Context) error {
		if f <= 0 {
			return fmt.Errorf("layout correction must be positive, got %v", f)
		}
		ctx.correction = f
		return nil
	}
}

// WithoutWarnings suppresses framework misuse warnings.
func WithoutWarnings() Option {
	return func(ctx *Context) error {
		ctx.warnings = false
		return nil
	}
}
