// Package store keeps the expression history of dx in a bbolt database.
package store

import (
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"src.dx.sh/pkg/logutil"
	. "src.dx.sh/pkg/store/storedefs"
)

var logger = logutil.GetLogger("[store] ")

const bucketExpr = "expr"

// DBStore is the permanent storage backend for dx.
type DBStore interface {
	Store
	Close() error
}

var initDB = map[string](func(*bolt.Tx) error){}

type dbStore struct {
	db *bolt.DB
}

// NewStore creates a new Store from the given file. The file is created if it
// does not exist.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dbname, err)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	st := &dbStore{db: db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			if err := fn(tx); err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
