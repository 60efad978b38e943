package expr

// Combinators. Each returns a new node owning its operands; operands must not
// be nil.

func bin(op Op, a, b Expr) *Bin {
	if a == nil || b == nil {
		panic("expr: nil operand")
	}
	return &Bin{op, a, b}
}

// Add returns a + b.
func Add(a, b Expr) *Bin { return bin(OpAdd, a, b) }

// Sub returns a - b.
func Sub(a, b Expr) *Bin { return bin(OpSub, a, b) }

// Mul returns a * b.
func Mul(a, b Expr) *Bin { return bin(OpMul, a, b) }

// Div returns a / b.
func Div(a, b Expr) *Bin { return bin(OpDiv, a, b) }

// Pow returns base^exp.
func Pow(base, exp Expr) *Bin { return bin(OpPow, base, exp) }

// RootN returns the n-th root of base, as base^(1/n) with 1/n computed
// eagerly.
func RootN(base Expr, n float64) *Bin { return Pow(base, Num(1/n)) }

// Sqrt returns the square root of base, as base^0.5.
func Sqrt(base Expr) *Bin { return Pow(base, Num(0.5)) }

// Log returns the logarithm of arg to the given base. The argument order
// follows the surface syntax log_base arg. There is no method form such as
// arg.Log(base); all constructors are plain functions.
func Log(base, arg Expr) *Bin { return bin(OpLog, base, arg) }

// Ln returns the natural logarithm of arg.
func Ln(arg Expr) *Bin { return Log(E, arg) }

// Apply applies a trigonometric function to arg.
func Apply(fn TrigFn, arg Expr) *Trig {
	if arg == nil {
		panic("expr: nil operand")
	}
	return &Trig{fn, arg}
}

// Neg returns a * -1.
func Neg(a Expr) *Bin { return Mul(a, Num(-1)) }
