package parse

import (
	"fmt"
	"strconv"

	"src.dx.sh/pkg/diag"
)

// ErrorKind classifies parse errors.
type ErrorKind int

// Kinds of errors. The first four are found by the lexer, the rest by the
// parser.
const (
	// The source contains more than one line.
	MultiLine ErrorKind = iota
	// A number literal contains more than one decimal separator.
	InvalidFloatFormat
	// A character that does not start any token.
	InvalidSymbol
	// A word that is not one of the reserved words.
	InvalidWord
	// A '(' whose matching ')' is missing.
	UnclosedParen
	// A token where the grammar does not allow it.
	UnexpectedToken
)

var errorKindNames = [...]string{
	MultiLine:          "multiple lines",
	InvalidFloatFormat: "invalid number format",
	InvalidSymbol:      "invalid symbol",
	InvalidWord:        "invalid word",
	UnclosedParen:      "unclosed parenthesis",
	UnexpectedToken:    "unexpected token",
}

func (k ErrorKind) String() string {
	if 0 <= k && int(k) < len(errorKindNames) {
		return errorKindNames[k]
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// Error is a parse error. The first error found aborts lexing or parsing.
type Error struct {
	Kind ErrorKind
	// Byte offset of the offending character or token.
	Pos int
	// The offending character, for InvalidSymbol.
	Symbol rune
	// The offending word, for InvalidWord.
	Word    string
	Context diag.Context
}

func newError(src Source, kind ErrorKind, r diag.Ranging) *Error {
	return &Error{Kind: kind, Pos: r.From,
		Context: diag.Context{Name: src.Name, Source: src.Code, Ranging: r}}
}

// Message describes the error without its position.
func (e *Error) Message() string {
	switch e.Kind {
	case InvalidSymbol:
		return fmt.Sprintf("%s %q", e.Kind, e.Symbol)
	case InvalidWord:
		return fmt.Sprintf("%s %q", e.Kind, e.Word)
	default:
		return e.Kind.String()
	}
}

// Error returns a plain text representation of the error.
func (e *Error) Error() string {
	return fmt.Sprintf("parse error: %d-%d in %s: %s",
		e.Context.From, e.Context.To, e.Context.Name, e.Message())
}

// Range returns the range of the error.
func (e *Error) Range() diag.Ranging {
	return e.Context.Range()
}

// Show shows the error.
func (e *Error) Show(indent string) string {
	return "Parse error: " + diag.Message(e.Message()) + "\n" +
		indent + "  " + e.Context.ShowCompact()
}
