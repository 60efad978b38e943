// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.dx.sh/pkg/store/storedefs"
)

var exprsToAdd = []string{"x^2", "sin x", "log_2 x", "x * -1"}

// TestExpr tests the expression history functionality of a Store. The store
// must be empty.
func TestExpr(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextExprSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextExprSeq() -> %v, %v, want %v, nil", startSeq, err, 1)
	}

	// AddExpr
	for i, text := range exprsToAdd {
		wantSeq := startSeq + i
		seq, err := store.AddExpr(text)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddExpr(%q) -> %v, %v, want %v, nil",
				text, seq, err, wantSeq)
		}
	}

	endSeq, err := store.NextExprSeq()
	wantedEndSeq := startSeq + len(exprsToAdd)
	if endSeq != wantedEndSeq || err != nil {
		t.Errorf("store.NextExprSeq() -> %v, %v, want %v, nil",
			endSeq, err, wantedEndSeq)
	}

	// Expr
	for i, wantText := range exprsToAdd {
		seq := i + startSeq
		text, err := store.Expr(seq)
		if text != wantText || err != nil {
			t.Errorf("store.Expr(%v) -> %q, %v, want %q, nil",
				seq, text, err, wantText)
		}
	}
	if _, err := store.Expr(endSeq); err != storedefs.ErrNoMatchingExpr {
		t.Errorf("store.Expr(%v) -> error %v, want %v",
			endSeq, err, storedefs.ErrNoMatchingExpr)
	}

	// Exprs
	exprs, err := store.Exprs(startSeq+1, startSeq+3)
	wantExprs := []storedefs.Expr{{Text: "sin x", Seq: 2}, {Text: "log_2 x", Seq: 3}}
	if diff := cmp.Diff(wantExprs, exprs); diff != "" || err != nil {
		t.Errorf("store.Exprs -> error %v, diff (-want +got):\n%s", err, diff)
	}

	// LastExprs
	exprs, err = store.LastExprs(2)
	wantExprs = []storedefs.Expr{{Text: "log_2 x", Seq: 3}, {Text: "x * -1", Seq: 4}}
	if diff := cmp.Diff(wantExprs, exprs); diff != "" || err != nil {
		t.Errorf("store.LastExprs(2) -> error %v, diff (-want +got):\n%s", err, diff)
	}
	exprs, err = store.LastExprs(100)
	if len(exprs) != len(exprsToAdd) || err != nil {
		t.Errorf("store.LastExprs(100) -> %v, %v, want all entries", exprs, err)
	}

	// DelExpr
	if err := store.DelExpr(2); err != nil {
		t.Errorf("store.DelExpr(2) -> %v, want nil", err)
	}
	if _, err := store.Expr(2); err != storedefs.ErrNoMatchingExpr {
		t.Errorf("store.Expr(2) after deletion -> error %v, want %v",
			err, storedefs.ErrNoMatchingExpr)
	}
	exprs, err = store.Exprs(startSeq, endSeq)
	if len(exprs) != len(exprsToAdd)-1 || err != nil {
		t.Errorf("store.Exprs after deletion -> %v, %v", exprs, err)
	}
	// Sequence numbers are not reused.
	if seq, _ := store.NextExprSeq(); seq != endSeq {
		t.Errorf("store.NextExprSeq() after deletion -> %v, want %v", seq, endSeq)
	}
}
