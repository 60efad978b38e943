package expr

// Derive returns the derivative of e with respect to x.
//
// The result is not simplified: shapes like 1 * f, 0 + g or f^1 are kept as
// the rules produce them. Sub-terms of e that occur in the result are copied,
// so the result shares no nodes with e.
//
// Rules are tried in this order: a product with a numeric factor, sum and
// difference, quotient, general product, power, logarithm, trigonometric
// functions and finally leaves. Within powers and logarithms, cases on
// specific operand shapes precede the general case.
func Derive(e Expr) Expr {
	switch e := e.(type) {
	case Var:
		return Num(1)
	case Num:
		return Num(0)
	case *Trig:
		return deriveTrig(e.Fn, e.Arg)
	case *Bin:
		f, g := e.A, e.B
		switch e.Op {
		case OpMul:
			if a, ok := f.(Num); ok {
				return Mul(a, Derive(g))
			}
			if a, ok := g.(Num); ok {
				return Mul(a, Derive(f))
			}
			// (fg)' = f'g + g'f
			return Add(Mul(Derive(f), Clone(g)), Mul(Derive(g), Clone(f)))
		case OpAdd:
			return Add(Derive(f), Derive(g))
		case OpSub:
			return Sub(Derive(f), Derive(g))
		case OpDiv:
			// (f/g)' = (f'g - g'f) / g^2
			return Div(
				Sub(Mul(Derive(f), Clone(g)), Mul(Derive(g), Clone(f))),
				Pow(Clone(g), Num(2)))
		case OpPow:
			return derivePow(f, g)
		case OpLog:
			return deriveLog(f, g)
		}
	}
	panic("expr: unknown expression")
}

func derivePow(f, g Expr) Expr {
	if n, ok := g.(Num); ok {
		// x^n -> n x^(n-1)
		// f^n -> n f^(n-1) f'
		var coef Expr
		switch n - 1 {
		case 0:
			coef = n
		case 1:
			coef = Mul(n, Clone(f))
		default:
			coef = Mul(n, Pow(Clone(f), n-1))
		}
		if IsVar(f) {
			return coef
		}
		return Mul(coef, Derive(f))
	}
	if a, ok := f.(Num); ok {
		// e^x -> e^x
		// e^g -> e^g g'
		// a^x -> a^x ln a
		// a^g -> a^g ln a g'
		var d Expr = Pow(a, Clone(g))
		if !IsE(a) {
			d = Mul(d, Ln(a))
		}
		if IsVar(g) {
			return d
		}
		return Mul(d, Derive(g))
	}
	// f^g -> f^g (g' ln f + f' g / f)
	return Mul(
		Pow(Clone(f), Clone(g)),
		Add(
			Mul(Derive(g), Ln(Clone(f))),
			Div(Mul(Derive(f), Clone(g)), Clone(f))))
}

func deriveLog(f, g Expr) Expr {
	if a, ok := f.(Num); ok {
		if IsE(a) {
			if IsVar(g) {
				// ln x -> 1/x
				return Div(Num(1), X)
			}
			// ln g -> g'/g
			return Div(Derive(g), Clone(g))
		}
		if IsVar(g) {
			// log_a x -> 1/(x ln a)
			return Div(Num(1), Mul(X, Ln(a)))
		}
		// log_a g -> g'/(g ln a)
		return Div(Derive(g), Mul(Clone(g), Ln(a)))
	}
	if a, ok := g.(Num); ok {
		// log_x a -> -ln a / (x (ln x)^2)
		// log_f a -> -ln a / (f (ln f)^2) f'
		d := Div(Ln(a), Mul(Clone(f), Pow(Ln(Clone(f)), Num(2))))
		if IsVar(f) {
			return Neg(d)
		}
		return Neg(Mul(d, Derive(f)))
	}
	// log_f g = ln g / ln f
	// -> (g' ln f / g - f' ln g / f) / (ln f)^2
	return Div(
		Sub(
			Div(Mul(Derive(g), Ln(Clone(f))), Clone(g)),
			Div(Mul(Derive(f), Ln(Clone(g))), Clone(f))),
		Pow(Ln(Clone(f)), Num(2)))
}

func deriveTrig(fn TrigFn, f Expr) Expr {
	var outer Expr
	switch fn {
	case Sin:
		outer = Apply(Cos, Clone(f))
	case Cos:
		outer = Neg(Apply(Sin, Clone(f)))
	case Tan:
		outer = Pow(Apply(Sec, Clone(f)), Num(2))
	case Cot:
		outer = Neg(Pow(Apply(Csc, Clone(f)), Num(2)))
	case Sec:
		outer = Mul(Apply(Sec, Clone(f)), Apply(Tan, Clone(f)))
	case Csc:
		outer = Neg(Mul(Apply(Csc, Clone(f)), Apply(Cot, Clone(f))))
	default:
		panic("expr: unknown trigonometric function")
	}
	return Mul(outer, Derive(f))
}

// DeriveN returns the n-th derivative of e. DeriveN(e, 0) is a copy of e.
func DeriveN(e Expr, n int) Expr {
	e = Clone(e)
	for i := 0; i < n; i++ {
		e = Derive(e)
	}
	return e
}
