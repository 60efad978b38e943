package calc

import (
	"encoding/json"
	"math"
	"strconv"

	"src.dx.sh/pkg/check"
	"src.dx.sh/pkg/expr"
	"src.dx.sh/pkg/parse"
)

// Result is the outcome of processing one expression.
type Result struct {
	Input string `json:"input" yaml:"input"`
	// The parsed expression, printed back.
	Parsed     string       `json:"parsed" yaml:"parsed"`
	Order      int          `json:"order" yaml:"order"`
	Derivative string       `json:"derivative" yaml:"derivative"`
	Tree       *expr.Node   `json:"tree" yaml:"tree"`
	Values     []Point      `json:"values,omitempty" yaml:"values,omitempty"`
	Check      []CheckPoint `json:"check,omitempty" yaml:"check,omitempty"`
}

// Point is the value of the derivative at one point.
type Point struct {
	X Number `json:"x" yaml:"x"`
	Y Number `json:"y" yaml:"y"`
}

// CheckPoint is a [check.Sample] that can always be encoded.
type CheckPoint struct {
	X        Number `json:"x" yaml:"x"`
	Symbolic Number `json:"symbolic" yaml:"symbolic"`
	Numeric  Number `json:"numeric" yaml:"numeric"`
	AbsErr   Number `json:"abs_err" yaml:"abs_err"`
	OK       bool   `json:"ok" yaml:"ok"`
	Skipped  bool   `json:"skipped,omitempty" yaml:"skipped,omitempty"`
}

// Number is a float64 that encodes NaN and infinities as the JSON strings
// "NaN", "+Inf" and "-Inf".
type Number float64

func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(strconv.FormatFloat(f, 'g', -1, 64))
	}
	return json.Marshal(f)
}

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

// Compute parses the source, derives it opts.Order times and evaluates the
// derivative at opts.Points. If the error is not nil, it is a *parse.Error.
func Compute(src parse.Source, opts *Options) (*Result, error) {
	e, err := parse.Parse(src)
	if err != nil {
		return nil, err
	}
	d := expr.DeriveN(e, opts.Order)
	r := &Result{
		Input: src.Code, Parsed: e.String(), Order: opts.Order,
		Derivative: d.String(), Tree: expr.ToNode(d),
	}
	for _, x := range opts.Points {
		r.Values = append(r.Values, Point{Number(x), Number(expr.Evaluate(d, x))})
	}
	if opts.Check && opts.Order > 0 {
		// The last derivative is checked against the one before it.
		samples := check.Derivative(expr.DeriveN(e, opts.Order-1), opts.Points, opts.Settings)
		for _, s := range samples {
			r.Check = append(r.Check, CheckPoint{
				Number(s.X), Number(s.Symbolic), Number(s.Numeric), Number(s.AbsErr),
				s.OK, s.Skipped})
		}
	}
	return r, nil
}

// CheckOK reports whether every check that was done passed.
func (r *Result) CheckOK() bool {
	for _, c := range r.Check {
		if !c.Skipped && !c.OK {
			return false
		}
	}
	return true
}
