package parse

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func tok(t TokenType, pos int) Token { return Token{Type: t, Pos: pos} }

func num(v float64, pos int) Token { return Token{Type: Number, Num: v, Pos: pos} }

var lexTests = []struct {
	name string
	code string
	want []Token
}{
	{
		name: "arithmetic",
		code: "1 + 2 * 3",
		want: []Token{num(1, 0), tok(Plus, 2), num(2, 4), tok(Star, 6), num(3, 8), tok(End, 9)},
	},
	{
		name: "floats",
		code: "0.4 - 0.1",
		want: []Token{num(0.4, 0), tok(Minus, 4), num(0.1, 6), tok(End, 9)},
	},
	{
		name: "comma as decimal separator",
		code: "2,5",
		want: []Token{num(2.5, 0), tok(End, 3)},
	},
	{
		name: "trailing separator",
		code: "3.",
		want: []Token{num(3, 0), tok(End, 2)},
	},
	{
		name: "functions",
		code: "log sin cos tan",
		want: []Token{tok(Log, 0), tok(Sin, 4), tok(Cos, 8), tok(Tan, 12), tok(End, 15)},
	},
	{
		name: "reciprocal functions, ln and e",
		code: "csc sec cot ln e",
		want: []Token{tok(Csc, 0), tok(Sec, 4), tok(Cot, 8), tok(Ln, 12), tok(E, 15), tok(End, 16)},
	},
	{
		name: "symbols",
		code: "+-/*()^_",
		want: []Token{
			tok(Plus, 0), tok(Minus, 1), tok(Slash, 2), tok(Star, 3),
			tok(OpenParen, 4), tok(CloseParen, 5), tok(Caret, 6), tok(Underscore, 7),
			tok(End, 8)},
	},
	{
		name: "log with base",
		code: "log_2 x",
		want: []Token{tok(Log, 0), tok(Underscore, 3), num(2, 4), tok(Var, 6), tok(End, 7)},
	},
	{
		name: "number followed by variable",
		code: "2x",
		want: []Token{num(2, 0), tok(Var, 1), tok(End, 2)},
	},
	{
		name: "offsets are in bytes",
		code: "x\u00a0+ 1",
		want: []Token{tok(Var, 0), tok(Plus, 3), num(1, 5), tok(End, 6)},
	},
	{
		name: "trailing newline is one line",
		code: "x\n",
		want: []Token{tok(Var, 0), tok(End, 2)},
	},
	{
		name: "largest literal",
		code: "179769313486231570000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000000",
		want: []Token{num(math.MaxFloat64, 0), tok(End, 309)},
	},
	{
		name: "empty",
		code: "",
		want: []Token{tok(End, 0)},
	},
}

func TestLex(t *testing.T) {
	for _, test := range lexTests {
		t.Run(test.name, func(t *testing.T) {
			tokens, err := Lex(test.code)
			if err != nil {
				t.Fatalf("Lex(%q) -> error %v", test.code, err)
			}
			if diff := cmp.Diff(test.want, tokens); diff != "" {
				t.Errorf("Lex(%q) (-want +got):\n%s", test.code, diff)
			}
		})
	}
}

// Compares errors without their context.
var errorCmpOpt = cmpopts.IgnoreFields(Error{}, "Context")

var lexErrorTests = []struct {
	name string
	code string
	want *Error
}{
	{"two lines", "1\n2", &Error{Kind: MultiLine, Pos: 1}},
	{"three lines", "1\n\n", &Error{Kind: MultiLine, Pos: 1}},
	{"too many dots", "1.1.1.2", &Error{Kind: InvalidFloatFormat, Pos: 0}},
	{"dot and comma", "x + 1.2,3", &Error{Kind: InvalidFloatFormat, Pos: 4}},
	{"too large", "x * 1" + strings.Repeat("0", 400), &Error{Kind: InvalidFloatFormat, Pos: 4}},
	{"quote", "\"", &Error{Kind: InvalidSymbol, Pos: 0, Symbol: '"'}},
	{"non-ASCII digit", "x + ٣", &Error{Kind: InvalidSymbol, Pos: 4, Symbol: '٣'}},
	{"unknown word", "1 + y", &Error{Kind: InvalidWord, Pos: 4, Word: "y"}},
	{"word glued to x", "xsin", &Error{Kind: InvalidWord, Pos: 0, Word: "xsin"}},
}

func TestLex_Errors(t *testing.T) {
	for _, test := range lexErrorTests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Lex(test.code)
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("Lex(%q) -> error %v, want *Error", test.code, err)
			}
			if diff := cmp.Diff(test.want, perr, errorCmpOpt); diff != "" {
				t.Errorf("Lex(%q) error (-want +got):\n%s", test.code, diff)
			}
		})
	}
}

func TestCountLines(t *testing.T) {
	for code, want := range map[string]int{
		"": 0, "x": 1, "x\n": 1, "\n": 1, "\n\n": 2, "1\n2": 2, "1\r\n": 1,
	} {
		if got := countLines(code); got != want {
			t.Errorf("countLines(%q) -> %d, want %d", code, got, want)
		}
	}
}
