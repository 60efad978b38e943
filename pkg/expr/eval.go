package expr

import "math"

// Evaluate computes the value of e with x bound to v. It never fails;
// undefined results are NaN or ±Inf as IEEE 754 dictates.
func Evaluate(e Expr, v float64) float64 {
	switch e := e.(type) {
	case Var:
		return v
	case Num:
		return float64(e)
	case *Bin:
		a, b := Evaluate(e.A, v), Evaluate(e.B, v)
		switch e.Op {
		case OpAdd:
			return a + b
		case OpSub:
			return a - b
		case OpMul:
			return a * b
		case OpDiv:
			return a / b
		case OpPow:
			return math.Pow(a, b)
		case OpLog:
			return math.Log(b) / math.Log(a)
		}
	case *Trig:
		sin, cos := math.Sincos(Evaluate(e.Arg, v))
		switch e.Fn {
		case Sin:
			return sin
		case Cos:
			return cos
		case Tan:
			return sin / cos
		case Csc:
			return 1 / sin
		case Sec:
			return 1 / cos
		case Cot:
			return cos / sin
		}
	}
	return math.NaN()
}

// Func returns e as a function of x.
func Func(e Expr) func(float64) float64 {
	return func(v float64) float64 { return Evaluate(e, v) }
}
