package expr

import (
	"math"
	"testing"

	"src.dx.sh/pkg/tt"
)

func TestEqual(t *testing.T) {
	tt.Test(t, Equal,
		Args(X, X).Rets(true),
		Args(X, Num(1)).Rets(false),
		Args(Num(1), Num(1)).Rets(true),
		Args(Num(math.NaN()), Num(math.NaN())).Rets(true),
		Args(Num(0), Num(math.Copysign(0, -1))).Rets(false),
		Args(Add(X, Num(1)), Add(X, Num(1))).Rets(true),
		// Same precedence, different structure.
		Args(Add(X, Num(1)), Sub(X, Num(1))).Rets(false),
		Args(Add(X, Num(1)), Add(Num(1), X)).Rets(false),
		Args(Apply(Sin, X), Apply(Sin, X)).Rets(true),
		Args(Apply(Sin, X), Apply(Cos, X)).Rets(false),
		Args(Apply(Sin, X), Apply(Sin, Num(0))).Rets(false),
		Args(Ln(X), Log(Num(math.E), X)).Rets(true),
		Args(Ln(X), Log(Num(2.718281828459045), X)).Rets(true),
		Args(Ln(X), Log(Num(2.7182818), X)).Rets(false),
	)
}

func TestComparePrecedence(t *testing.T) {
	tt.Test(t, ComparePrecedence,
		Args(Add(X, X), Sub(X, X)).Rets(0),
		Args(Add(X, X), Mul(X, X)).Rets(-1),
		Args(Div(X, X), Sub(X, X)).Rets(1),
		Args(Pow(X, X), Apply(Tan, X)).Rets(0),
		Args(Log(X, X), Mul(X, X)).Rets(1),
		Args(Num(1), X).Rets(0),
		Args(Apply(Sin, X), Num(1)).Rets(-1),
	)
}

func TestClone(t *testing.T) {
	e := Mul(Apply(Sin, Add(X, Num(1))), Pow(X, Num(2)))
	c := Clone(e).(*Bin)
	if !Equal(c, e) {
		t.Errorf("Clone(%v) -> %v, not equal", e, c)
	}
	if c == e || c.A == e.A || c.B == e.B || c.A.(*Trig).Arg == e.A.(*Trig).Arg {
		t.Errorf("Clone(%v) shares nodes with its input", e)
	}
}

func TestCombinators(t *testing.T) {
	tt.Test(t, Sqrt,
		Args(X).Rets(Pow(X, Num(0.5))),
	)
	tt.Test(t, RootN,
		Args(X, 4.0).Rets(Pow(X, Num(0.25))),
		Args(X, 3.0).Rets(Pow(X, Num(1.0/3))),
	)
	tt.Test(t, Ln,
		Args(X).Rets(Log(E, X)),
	)
	tt.Test(t, Neg,
		Args(X).Rets(Mul(X, Num(-1))),
	)
}

func TestCombinators_PanicOnNil(t *testing.T) {
	for name, f := range map[string]func(){
		"Add":   func() { Add(X, nil) },
		"Log":   func() { Log(nil, X) },
		"Apply": func() { Apply(Sin, nil) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s with a nil operand does not panic", name)
				}
			}()
			f()
		}()
	}
}

var inf = math.Inf(1)

func TestEvaluate(t *testing.T) {
	tt.Test(t, Evaluate,
		Args(Num(3), 0.0).Rets(3.0),
		Args(X, 2.5).Rets(2.5),
		Args(Add(X, Num(1)), 2.0).Rets(3.0),
		Args(Sub(X, Num(1)), 2.0).Rets(1.0),
		Args(Mul(X, Num(3)), 2.0).Rets(6.0),
		Args(Div(X, Num(4)), 2.0).Rets(0.5),
		Args(Pow(X, Num(0.5)), 4.0).Rets(2.0),
		Args(Div(Num(1), X), 0.0).Rets(inf),
		Args(Ln(E), 0.0).Rets(1.0),
		Args(Ln(X), -1.0).Rets(math.NaN()),

		Args(Apply(Sin, X), 0.0).Rets(0.0),
		Args(Apply(Cos, X), 0.0).Rets(1.0),
		Args(Apply(Tan, X), 0.0).Rets(0.0),
		Args(Apply(Sec, X), 0.0).Rets(1.0),
		Args(Apply(Csc, X), 0.0).Rets(inf),
		Args(Apply(Cot, X), 0.0).Rets(inf),
	)
}

func TestEvaluate_Log(t *testing.T) {
	// Log(b, a) is the logarithm of a to the base b.
	for _, test := range []struct {
		base, arg, want float64
	}{
		{2, 8, 3},
		{10, 1000, 3},
		{10, 0.01, -2},
		{9, 3, 0.5},
		{math.E, math.E * math.E, 2},
	} {
		got := Evaluate(Log(Num(test.base), X), test.arg)
		if math.Abs(got-test.want) > 1e-12 {
			t.Errorf("log_%v %v -> %v, want %v", test.base, test.arg, got, test.want)
		}
	}
}

func TestFunc(t *testing.T) {
	f := Func(Add(Pow(X, Num(2)), Num(1)))
	tt.Test(t, tt.Fn(f).Named("f"),
		Args(0.0).Rets(1.0),
		Args(3.0).Rets(10.0),
	)
}
