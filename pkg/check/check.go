// Package check compares symbolic derivatives with numeric ones.
//
// The numeric derivative is computed with the central finite difference
// formula of gonum.org/v1/gonum/diff/fd.
package check

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"

	"src.dx.sh/pkg/expr"
	"src.dx.sh/pkg/logutil"
)

var logger = logutil.GetLogger("[check] ")

// Default settings.
const (
	DefaultStep      = 1e-6
	DefaultTolerance = 1e-4
)

// Settings controls a check. Zero fields take their default values.
type Settings struct {
	// Step of the finite difference formula.
	Step float64 `json:"step" yaml:"step"`
	// Maximum error, relative to the magnitude of the symbolic value, or
	// absolute when that magnitude is below 1.
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`
}

func (s Settings) withDefaults() Settings {
	if s.Step == 0 {
		s.Step = DefaultStep
	}
	if s.Tolerance == 0 {
		s.Tolerance = DefaultTolerance
	}
	return s
}

// Sample is the result of checking a derivative at one point.
type Sample struct {
	X        float64 `json:"x" yaml:"x"`
	Symbolic float64 `json:"symbolic" yaml:"symbolic"`
	Numeric  float64 `json:"numeric" yaml:"numeric"`
	AbsErr   float64 `json:"abs_err" yaml:"abs_err"`
	OK       bool    `json:"ok" yaml:"ok"`
	// Set when either value is not finite, in which case OK is meaningless.
	Skipped bool `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Derivative checks [expr.Derive](e) against a numeric derivative of e at
// each of the given points.
func Derivative(e expr.Expr, points []float64, s Settings) []Sample {
	s = s.withDefaults()
	d := expr.Derive(e)
	f := expr.Func(e)
	fs := &fd.Settings{Formula: fd.Central, Step: s.Step}

	samples := make([]Sample, len(points))
	for i, x := range points {
		sym := expr.Evaluate(d, x)
		num := fd.Derivative(f, x, fs)
		sample := Sample{X: x, Symbolic: sym, Numeric: num}
		if !finite(sym) || !finite(num) {
			sample.Skipped = true
		} else {
			sample.AbsErr = math.Abs(sym - num)
			sample.OK = sample.AbsErr <= s.Tolerance*math.Max(1, math.Abs(sym))
		}
		if !sample.OK && !sample.Skipped {
			logger.Printf("%v: d/dx at %v is %v symbolically, %v numerically",
				e, x, sym, num)
		}
		samples[i] = sample
	}
	return samples
}

// AllOK reports whether every sample that was not skipped is OK.
func AllOK(samples []Sample) bool {
	for _, s := range samples {
		if !s.Skipped && !s.OK {
			return false
		}
	}
	return true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
