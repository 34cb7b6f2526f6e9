// ============================================================================
// zunder - object graph command lines
// ============================================================================
//
// Package:     demo
// Description: Calculator graph built from registered functions
// License:     MIT
// ============================================================================

package demo

import (
	"context"
	"errors"
	"math"
	"time"

	"github.com/msto63/zunder/foundation/ocl/component"
)

// ErrDivisionByZero is returned by calc div
var ErrDivisionByZero = errors.New("division by zero")

// Calc returns the calculator graph
func Calc() *component.Object {
	return component.NewObject("calc").
		WithDoc("A small calculator.\n\nEvery operation takes its operands by position or as flags.").
		Add("add", component.MustFunc("add", func(x, y float64) float64 { return x + y },
			component.WithArgs("x", "y"), component.WithDefault("y", 1.0),
			component.WithDoc("Add two numbers.\n\nArgs:\n  x: First operand.\n  y: Second operand."))).
		Add("sub", component.MustFunc("sub", func(x, y float64) float64 { return x - y },
			component.WithArgs("x", "y"),
			component.WithDoc("Subtract y from x."))).
		Add("mul", component.MustFunc("mul", func(x, y float64) float64 { return x * y },
			component.WithArgs("x", "y"),
			component.WithDoc("Multiply two numbers."))).
		Add("div", component.MustFunc("div", div,
			component.WithArgs("x", "y"),
			component.WithDoc("Divide x by y."))).
		Add("power", component.MustFunc("power", math.Pow,
			component.WithArgs("base", "exp"), component.WithDefault("exp", 2.0),
			component.WithDoc("Raise base to exp."))).
		Add("sum", component.MustFunc("sum", sum,
			component.WithVarArgs("values"),
			component.WithDoc("Add all values."))).
		Add("wait", component.MustFunc("wait", wait,
			component.WithArgs("ms"), component.WithDefault("ms", 100),
			component.WithDoc("Wait ms milliseconds, then report the time waited."))).
		Add("pi", math.Pi)
}

func div(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

func sum(values ...float64) float64 {
	total := 0.0
	for _, v := range values {
		total += v
	}
	return total
}

func wait(ctx context.Context, ms int) (string, error) {
	d := time.Duration(ms) * time.Millisecond
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-time.After(d):
		return "waited " + d.String(), nil
	}
}
