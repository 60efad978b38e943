// Package parse implements the lexer and parser of the expression language.
//
// The language has one free variable x, number literals (with '.' or ',' as
// the decimal separator), the operators + - * / ^, parentheses, the constant
// e, logarithms (log_base arg, log arg for base 10, ln arg) and the
// trigonometric functions sin cos tan csc sec cot. An expression must fit on
// one line.
//
// The grammar, from loosest to tightest binding:
//
//	Expr  = Mul { ('+' | '-') Mul }
//	Mul   = Func { ('*' | '/') Func }
//	Func  = Trig Pow | 'log' [ '_' Pow ] Pow | 'ln' Pow | Pow
//	Pow   = Unit { '^' Unit }
//	Unit  = '(' Expr ')' | Number | '-' Number | 'x' | 'e'
//
// Note that ^ is left-associative, and that a trigonometric function or a
// logarithm applies to a whole power, so sin x^2 is sin (x^2).
package parse

import (
	"src.dx.sh/pkg/diag"
	"src.dx.sh/pkg/expr"
)

// Source describes a piece of source code.
type Source struct {
	Name string
	Code string
}

// DefaultName is the name used for sources given as plain strings.
const DefaultName = "[expr]"

// Parse parses the given source. If the error is not nil, it always has type
// *Error.
func Parse(src Source) (expr.Expr, error) {
	tokens, err := lex(src)
	if err != nil {
		return nil, err
	}
	return parseTokens(src, tokens)
}

// ParseString is like Parse, with the source named [DefaultName].
func ParseString(code string) (expr.Expr, error) {
	return Parse(Source{Name: DefaultName, Code: code})
}

// ParseTokens parses a token stream, as returned by [Lex]. Errors carry
// positions but no source text.
func ParseTokens(tokens []Token) (expr.Expr, error) {
	return parseTokens(Source{Name: DefaultName}, tokens)
}

func parseTokens(src Source, tokens []Token) (expr.Expr, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != End {
		tokens = append(tokens, Token{Type: End, Pos: len(src.Code)})
	}
	ps := &parser{src: src, tokens: tokens}
	e, err := ps.parseExpr()
	if err != nil {
		return nil, err
	}
	if t := ps.peek(); t.Type != End {
		return nil, ps.errorAt(UnexpectedToken, t)
	}
	return e, nil
}

// parser maintains the state of parsing a token stream.
type parser struct {
	src    Source
	tokens []Token
	pos    int
}

// Returns the current token. The End token is never consumed.
func (ps *parser) peek() Token {
	return ps.tokens[ps.pos]
}

func (ps *parser) next() Token {
	t := ps.tokens[ps.pos]
	if t.Type != End {
		ps.pos++
	}
	return t
}

func (ps *parser) errorAt(kind ErrorKind, t Token) *Error {
	r := diag.PointRanging(t.Pos)
	if r.To < len(ps.src.Code) {
		r.To++
	}
	return newError(ps.src, kind, r)
}

func (ps *parser) parseExpr() (expr.Expr, error) {
	left, err := ps.parseMul()
	if err != nil {
		return nil, err
	}
	for {
		op := ps.peek().Type
		if op != Plus && op != Minus {
			return left, nil
		}
		ps.next()
		right, err := ps.parseMul()
		if err != nil {
			return nil, err
		}
		if op == Plus {
			left = expr.Add(left, right)
		} else {
			left = expr.Sub(left, right)
		}
	}
}

func (ps *parser) parseMul() (expr.Expr, error) {
	left, err := ps.parseFunc()
	if err != nil {
		return nil, err
	}
	for {
		op := ps.peek().Type
		if op != Star && op != Slash {
			return left, nil
		}
		ps.next()
		right, err := ps.parseFunc()
		if err != nil {
			return nil, err
		}
		if op == Star {
			left = expr.Mul(left, right)
		} else {
			left = expr.Div(left, right)
		}
	}
}

var trigFns = map[TokenType]expr.TrigFn{
	Sin: expr.Sin,
	Cos: expr.Cos,
	Tan: expr.Tan,
	Csc: expr.Csc,
	Sec: expr.Sec,
	Cot: expr.Cot,
}

func (ps *parser) parseFunc() (expr.Expr, error) {
	t := ps.peek()
	if fn, ok := trigFns[t.Type]; ok {
		ps.next()
		arg, err := ps.parsePow()
		if err != nil {
			return nil, err
		}
		return expr.Apply(fn, arg), nil
	}
	switch t.Type {
	case Log:
		ps.next()
		var base expr.Expr = expr.Num(10)
		if ps.peek().Type == Underscore {
			ps.next()
			var err error
			base, err = ps.parsePow()
			if err != nil {
				return nil, err
			}
		}
		arg, err := ps.parsePow()
		if err != nil {
			return nil, err
		}
		return expr.Log(base, arg), nil
	case Ln:
		ps.next()
		arg, err := ps.parsePow()
		if err != nil {
			return nil, err
		}
		return expr.Ln(arg), nil
	}
	return ps.parsePow()
}

func (ps *parser) parsePow() (expr.Expr, error) {
	left, err := ps.parseUnit()
	if err != nil {
		return nil, err
	}
	for ps.peek().Type == Caret {
		ps.next()
		right, err := ps.parseUnit()
		if err != nil {
			return nil, err
		}
		left = expr.Pow(left, right)
	}
	return left, nil
}

func (ps *parser) parseUnit() (expr.Expr, error) {
	t := ps.next()
	switch t.Type {
	case OpenParen:
		e, err := ps.parseExpr()
		if err != nil {
			return nil, err
		}
		if closing := ps.next(); closing.Type != CloseParen {
			return nil, ps.errorAt(UnclosedParen, closing)
		}
		return e, nil
	case Number:
		return expr.Num(t.Num), nil
	case Minus:
		if n := ps.peek(); n.Type == Number {
			ps.next()
			return expr.Num(-n.Num), nil
		}
	case Var:
		return expr.X, nil
	case E:
		return expr.E, nil
	}
	return nil, ps.errorAt(UnexpectedToken, t)
}
