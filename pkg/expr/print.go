package expr

import (
	"strconv"
	"strings"
)

// The printed form reparses to the same tree: left operands are
// parenthesized when they bind looser than their parent, right operands when
// they do not bind tighter, and operands of ^, log, ln and trig functions when
// the parser's unit or power rule would not accept them bare.

var opGlyphs = [...]string{
	OpAdd: "+",
	OpSub: "-",
	OpMul: "*",
	OpDiv: "/",
	OpPow: "^",
	OpLog: "log",
}

// String returns the glyph of the operator.
func (op Op) String() string {
	if 0 <= op && int(op) < len(opGlyphs) {
		return opGlyphs[op]
	}
	return "Op(" + strconv.Itoa(int(op)) + ")"
}

var trigNames = [...]string{
	Sin: "sin",
	Cos: "cos",
	Tan: "tan",
	Csc: "csc",
	Sec: "sec",
	Cot: "cot",
}

// String returns the name of the function, as accepted by the parser.
func (fn TrigFn) String() string {
	if 0 <= fn && int(fn) < len(trigNames) {
		return trigNames[fn]
	}
	return "TrigFn(" + strconv.Itoa(int(fn)) + ")"
}

func (Var) String() string { return "x" }

func (n Num) String() string {
	if sameBits(n, E) {
		return "e"
	}
	return strconv.FormatFloat(float64(n), 'f', -1, 64)
}

func (b *Bin) String() string {
	var sb strings.Builder
	switch b.Op {
	case OpPow:
		writePowBase(&sb, b.A)
		sb.WriteByte('^')
		writeUnit(&sb, b.B)
	case OpLog:
		if IsE(b.A) {
			sb.WriteString("ln ")
		} else {
			sb.WriteString("log_")
			writePower(&sb, b.A)
			sb.WriteByte(' ')
		}
		writePower(&sb, b.B)
	default:
		prec := b.Precedence()
		writeParen(&sb, b.A, b.A.Precedence() < prec)
		sb.WriteString(" " + b.Op.String() + " ")
		writeParen(&sb, b.B, b.B.Precedence() <= prec)
	}
	return sb.String()
}

func (t *Trig) String() string {
	var sb strings.Builder
	sb.WriteString(t.Fn.String())
	sb.WriteByte(' ')
	writePower(&sb, t.Arg)
	return sb.String()
}

func writeParen(sb *strings.Builder, e Expr, paren bool) {
	if paren {
		sb.WriteByte('(')
	}
	sb.WriteString(e.String())
	if paren {
		sb.WriteByte(')')
	}
}

// Writes e where the parser expects a unit.
func writeUnit(sb *strings.Builder, e Expr) {
	writeParen(sb, e, !IsUnit(e))
}

// Writes e where the parser expects a power, i.e. a chain of units joined by ^.
func writePower(sb *strings.Builder, e Expr) {
	writeParen(sb, e, !IsUnit(e) && !isPow(e))
}

// Writes the base of a power. Since ^ is parsed left-associatively, a power
// can be written bare, but a negative literal gets parenthesized for
// legibility.
func writePowBase(sb *strings.Builder, e Expr) {
	if n, ok := e.(Num); ok {
		writeParen(sb, e, n < 0)
		return
	}
	writePower(sb, e)
}

func isPow(e Expr) bool {
	b, ok := e.(*Bin)
	return ok && b.Op == OpPow
}
