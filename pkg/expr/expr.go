// Package expr implements expressions of a single real variable x.
//
// An expression is an immutable tree built from four kinds of nodes: the
// variable ([Var]), numeric constants ([Num]), binary operations ([*Bin]) and
// trigonometric functions ([*Trig]). Trees are built with the combinators in
// this package or by the parser in src.dx.sh/pkg/parse, and can be rendered
// (String), evaluated ([Evaluate]) and differentiated ([Derive]).
//
// All functions in this package are pure and safe for concurrent use.
package expr

import "math"

// Expr is an expression node. It is implemented by [Var], [Num], [*Bin] and
// [*Trig]; no other implementations exist.
type Expr interface {
	// Precedence returns the binding strength of the node. Higher binds
	// tighter.
	Precedence() int
	// String renders the node in the surface syntax.
	String() string
	isExpr()
}

// Precedence levels.
const (
	PrecAdditive       = 1
	PrecMultiplicative = 2
	PrecFunction       = 3
	PrecAtom           = 100
)

// Var is the free variable x.
type Var struct{}

// X is the free variable.
var X = Var{}

// Num is a numeric constant.
type Num float64

// E is the base of the natural logarithm. Nodes equal to E in every bit are
// treated specially by the printer and the differentiator.
const E Num = math.E

// Op is the operator of a [Bin] node.
type Op int

// Binary operators. For OpPow, the first operand is the base and the second
// the exponent. For OpLog, the first operand is the base and the second the
// argument.
const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
	OpLog
)

// Precedence returns the precedence of a binary node with this operator.
func (op Op) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return PrecAdditive
	case OpMul, OpDiv:
		return PrecMultiplicative
	default:
		return PrecFunction
	}
}

// Bin is a binary operation.
type Bin struct {
	Op Op
	A  Expr
	B  Expr
}

// TrigFn is the function of a [Trig] node.
type TrigFn int

// Trigonometric functions.
const (
	Sin TrigFn = iota
	Cos
	Tan
	Csc
	Sec
	Cot
)

// Trig is a trigonometric function applied to an argument.
type Trig struct {
	Fn  TrigFn
	Arg Expr
}

func (Var) isExpr()   {}
func (Num) isExpr()   {}
func (*Bin) isExpr()  {}
func (*Trig) isExpr() {}

func (Var) Precedence() int    { return PrecAtom }
func (Num) Precedence() int    { return PrecAtom }
func (b *Bin) Precedence() int { return b.Op.Precedence() }
func (*Trig) Precedence() int  { return PrecFunction }

// IsNum reports whether e is a [Num].
func IsNum(e Expr) bool {
	_, ok := e.(Num)
	return ok
}

// IsVar reports whether e is the variable.
func IsVar(e Expr) bool {
	_, ok := e.(Var)
	return ok
}

// IsUnit reports whether e is a leaf, either a number or the variable.
func IsUnit(e Expr) bool { return IsNum(e) || IsVar(e) }

// IsE reports whether e is a [Num] bitwise equal to [E].
func IsE(e Expr) bool {
	n, ok := e.(Num)
	return ok && sameBits(n, E)
}

func sameBits(a, b Num) bool {
	return math.Float64bits(float64(a)) == math.Float64bits(float64(b))
}

// ComparePrecedence compares the precedence of two expressions, returning -1,
// 0 or 1. It says nothing about the structure of the expressions; use [Equal]
// for that.
func ComparePrecedence(a, b Expr) int {
	pa, pb := a.Precedence(), b.Precedence()
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	default:
		return 0
	}
}

// Equal reports whether two expressions have the same structure. Numbers are
// compared by their bits, so NaN equals NaN and 0 does not equal -0.
func Equal(a, b Expr) bool {
	switch a := a.(type) {
	case Var:
		return IsVar(b)
	case Num:
		b, ok := b.(Num)
		return ok && sameBits(a, b)
	case *Bin:
		b, ok := b.(*Bin)
		return ok && a.Op == b.Op && Equal(a.A, b.A) && Equal(a.B, b.B)
	case *Trig:
		b, ok := b.(*Trig)
		return ok && a.Fn == b.Fn && Equal(a.Arg, b.Arg)
	}
	return false
}

// Clone returns a deep copy of e.
func Clone(e Expr) Expr {
	switch e := e.(type) {
	case *Bin:
		return &Bin{e.Op, Clone(e.A), Clone(e.B)}
	case *Trig:
		return &Trig{e.Fn, Clone(e.Arg)}
	default:
		// Var and Num are values.
		return e
	}
}
