package store

import (
	"encoding/binary"

	bolt "go.etcd.io/bbolt"

	. "src.dx.sh/pkg/store/storedefs"
)

func init() {
	initDB["initialize expression history bucket"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketExpr))
		return err
	}
}

// NextExprSeq returns the next sequence number of the expression history.
func (s *dbStore) NextExprSeq() (int, error) {
	var seq uint64
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketExpr))
		seq = b.Sequence() + 1
		return nil
	})
	return int(seq), err
}

// AddExpr adds a new expression to the history and returns its sequence
// number.
func (s *dbStore) AddExpr(text string) (int, error) {
	var seq uint64
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketExpr))
		var err error
		seq, err = b.NextSequence()
		if err != nil {
			return err
		}
		return b.Put(marshalSeq(seq), []byte(text))
	})
	return int(seq), err
}

// DelExpr deletes the history entry with the given sequence number. Deleting
// an entry that does not exist is not an error.
func (s *dbStore) DelExpr(seq int) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketExpr))
		return b.Delete(marshalSeq(uint64(seq)))
	})
}

// Expr queries the history entry with the given sequence number.
func (s *dbStore) Expr(seq int) (string, error) {
	var text string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketExpr))
		v := b.Get(marshalSeq(uint64(seq)))
		if v == nil {
			return ErrNoMatchingExpr
		}
		text = string(v)
		return nil
	})
	return text, err
}

// Exprs returns all entries with sequence numbers in [from, upto).
func (s *dbStore) Exprs(from, upto int) ([]Expr, error) {
	var exprs []Expr
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketExpr)).Cursor()
		for k, v := c.Seek(marshalSeq(uint64(from))); k != nil && unmarshalSeq(k) < uint64(upto); k, v = c.Next() {
			exprs = append(exprs, Expr{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	return exprs, err
}

// LastExprs returns the last n entries, oldest first.
func (s *dbStore) LastExprs(n int) ([]Expr, error) {
	var exprs []Expr
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(bucketExpr)).Cursor()
		for k, v := c.Last(); k != nil && len(exprs) < n; k, v = c.Prev() {
			exprs = append(exprs, Expr{Text: string(v), Seq: int(unmarshalSeq(k))})
		}
		return nil
	})
	for i, j := 0, len(exprs)-1; i < j; i, j = i+1, j-1 {
		exprs[i], exprs[j] = exprs[j], exprs[i]
	}
	return exprs, err
}

func marshalSeq(seq uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, seq)
	return b
}

func unmarshalSeq(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
