// ABOUTME: Badger-backed registry of generated filenames
// ABOUTME: Primary key by global ID, prefix-scannable country/year index

package registry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/nainya/lexname/pkg/storage"
)

// Key layout. The index rows carry no value; the global ID suffix of the
// index key is enough to chase the primary record.
const (
	prefixRecord = "reg/gid/"
	prefixIndex  = "reg/cy/"
)

// Store records every generated filename for the collaborating
// indexing/search layers.
type Store struct {
	db *storage.DB
}

// NewStore wraps an open database.
func NewStore(db *storage.DB) *Store {
	return &Store{db: db}
}

func recordKey(gid string) []byte {
	return []byte(prefixRecord + gid)
}

func indexKey(country string, year int, gid string) []byte {
	return []byte(fmt.Sprintf("%s%s/%04d/%s", prefixIndex, country, year, gid))
}

// Put writes a record and its country/year index row in one transaction.
// Re-registering a global ID overwrites the previous record.
func (s *Store) Put(rec *Record) error {
	if rec.GlobalID == "" {
		return errors.New("record requires a global ID")
	}
	if rec.Components == nil {
		return errors.New("record requires components")
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encode registry record: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set(recordKey(rec.GlobalID), data); err != nil {
			return err
		}
		return txn.Set(indexKey(rec.Components.Country, rec.Components.Year, rec.GlobalID), nil)
	})
	if err != nil {
		return fmt.Errorf("put registry record %s: %w", rec.GlobalID, err)
	}
	return nil
}

// Get fetches the record for a global ID.
func (s *Store) Get(gid string) (*Record, error) {
	var rec *Record
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(recordKey(gid))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			rec = &Record{}
			return json.Unmarshal(val, rec)
		})
	})
	if err != nil {
		return nil, err
	}
	return rec, nil
}

// ListByCountryYear scans the secondary index and returns records for one
// country and year, in global-ID order. limit <= 0 means unlimited.
func (s *Store) ListByCountryYear(country string, year, limit int) ([]*Record, error) {
	prefix := []byte(fmt.Sprintf("%s%s/%04d/", prefixIndex, country, year))

	var gids []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			if limit > 0 && len(gids) >= limit {
				break
			}
			key := it.Item().Key()
			gids = append(gids, string(key[len(prefix):]))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan registry index %s/%04d: %w", country, year, err)
	}

	records := make([]*Record, 0, len(gids))
	for _, gid := range gids {
		rec, err := s.Get(gid)
		if errors.Is(err, ErrNotFound) {
			// Index row outlived its record; skip rather than fail the scan.
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Count returns the total number of registered records.
func (s *Store) Count() (int, error) {
	count := 0
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = []byte(prefixRecord)

		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count registry records: %w", err)
	}
	return count, nil
}
