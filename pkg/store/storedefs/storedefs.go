// Package storedefs contains definitions of the store API.
//
// It is a separate package so that packages that only depend on the store API
// do not need to depend on the concrete implementation.
package storedefs

import "errors"

// ErrNoMatchingExpr is the error returned when a query for a history entry
// completes with no result.
var ErrNoMatchingExpr = errors.New("no matching expression")

// Store is an interface satisfied by the storage service.
type Store interface {
	NextExprSeq() (int, error)
	AddExpr(text string) (int, error)
	DelExpr(seq int) error
	Expr(seq int) (string, error)
	Exprs(from, upto int) ([]Expr, error)
	LastExprs(n int) ([]Expr, error)
}

// Expr is an entry in the expression history.
type Expr struct {
	Text string `json:"text" yaml:"text"`
	Seq  int    `json:"seq" yaml:"seq"`
}
