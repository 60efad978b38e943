package parse

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"src.dx.sh/pkg/diag"
)

// TokenType is the type of a [Token].
type TokenType int

// Token types.
const (
	OpenParen TokenType = iota
	CloseParen

	Number
	Var
	E

	Plus
	Minus
	Star
	Slash
	Caret
	Underscore

	Log
	Ln
	Sin
	Cos
	Tan
	Csc
	Sec
	Cot

	End
)

var tokenTypeNames = [...]string{
	OpenParen:  "'('",
	CloseParen: "')'",
	Number:     "number",
	Var:        "'x'",
	E:          "'e'",
	Plus:       "'+'",
	Minus:      "'-'",
	Star:       "'*'",
	Slash:      "'/'",
	Caret:      "'^'",
	Underscore: "'_'",
	Log:        "'log'",
	Ln:         "'ln'",
	Sin:        "'sin'",
	Cos:        "'cos'",
	Tan:        "'tan'",
	Csc:        "'csc'",
	Sec:        "'sec'",
	Cot:        "'cot'",
	End:        "end of input",
}

func (t TokenType) String() string {
	if 0 <= t && int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "TokenType(" + strconv.Itoa(int(t)) + ")"
}

// Token is a lexical token.
type Token struct {
	Type TokenType
	// Value of a Number token.
	Num float64
	// Byte offset of the start of the token. For the End token, this is the
	// length of the source.
	Pos int
}

var symbols = map[rune]TokenType{
	'(': OpenParen,
	')': CloseParen,
	'+': Plus,
	'-': Minus,
	'*': Star,
	'/': Slash,
	'^': Caret,
	'_': Underscore,
}

var words = map[string]TokenType{
	"x":   Var,
	"e":   E,
	"log": Log,
	"ln":  Ln,
	"sin": Sin,
	"cos": Cos,
	"tan": Tan,
	"csc": Csc,
	"sec": Sec,
	"cot": Cot,
}

// Lex splits a single-line expression into tokens. The last token always has
// type End. If the error is not nil, it always has type *Error.
func Lex(code string) ([]Token, error) {
	return lex(Source{Name: DefaultName, Code: code})
}

func lex(src Source) ([]Token, error) {
	code := src.Code
	if countLines(code) > 1 {
		i := strings.IndexByte(code, '\n')
		return nil, newError(src, MultiLine, diag.Ranging{From: i, To: i + 1})
	}

	var tokens []Token
	for pos := 0; pos < len(code); {
		r, size := utf8.DecodeRuneInString(code[pos:])
		switch {
		case unicode.IsSpace(r):
			pos += size
		case isDigit(r):
			end := scan(code, pos, isNumberRune)
			lit := code[pos:end]
			if strings.Count(lit, ".")+strings.Count(lit, ",") > 1 {
				return nil, newError(src, InvalidFloatFormat, diag.Ranging{From: pos, To: end})
			}
			// Only out-of-range literals fail here.
			v, err := strconv.ParseFloat(strings.Replace(lit, ",", ".", 1), 64)
			if err != nil {
				return nil, newError(src, InvalidFloatFormat, diag.Ranging{From: pos, To: end})
			}
			tokens = append(tokens, Token{Type: Number, Num: v, Pos: pos})
			pos = end
		case unicode.IsLetter(r):
			end := scan(code, pos, unicode.IsLetter)
			word := code[pos:end]
			t, ok := words[word]
			if !ok {
				err := newError(src, InvalidWord, diag.Ranging{From: pos, To: end})
				err.Word = word
				return nil, err
			}
			tokens = append(tokens, Token{Type: t, Pos: pos})
			pos = end
		default:
			t, ok := symbols[r]
			if !ok {
				err := newError(src, InvalidSymbol, diag.Ranging{From: pos, To: pos + size})
				err.Symbol = r
				return nil, err
			}
			tokens = append(tokens, Token{Type: t, Pos: pos})
			pos += size
		}
	}
	return append(tokens, Token{Type: End, Pos: len(code)}), nil
}

// Counts lines the way a text editor does: a trailing newline does not start
// a new line.
func countLines(s string) int {
	if s == "" {
		return 0
	}
	n := strings.Count(s, "\n")
	if !strings.HasSuffix(s, "\n") {
		n++
	}
	return n
}

func isDigit(r rune) bool { return '0' <= r && r <= '9' }

func isNumberRune(r rune) bool { return isDigit(r) || r == '.' || r == ',' }

// Returns the end of the run of runes satisfying f that starts at pos.
func scan(s string, pos int, f func(rune) bool) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !f(r) {
			break
		}
		pos += size
	}
	return pos
}
