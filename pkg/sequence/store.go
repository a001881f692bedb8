// ABOUTME: Badger-backed durable counter store and an in-memory fake
// ABOUTME: Increments run read-modify-write inside one serialized transaction

package sequence

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/dgraph-io/badger/v4"

	"github.com/nainya/lexname/pkg/storage"
)

// BadgerStore persists counters in an embedded Badger database.
//
// A single mutex serializes increments. Counter traffic is a tiny fraction
// of ingestion work, so the simple exclusion beats retry loops on
// transaction conflicts.
type BadgerStore struct {
	mu     sync.Mutex
	db     *storage.DB
	closed bool
}

// NewBadgerStore wraps an open database. The caller keeps ownership of db
// unless it passes lifecycle to Close via OpenBadgerStore.
func NewBadgerStore(db *storage.DB) *BadgerStore {
	return &BadgerStore{db: db}
}

// OpenBadgerStore opens a database at path with durable defaults and wraps
// it. Closing the store closes the database.
func OpenBadgerStore(path string) (*BadgerStore, error) {
	db, err := storage.Open(storage.DefaultConfig(path))
	if err != nil {
		return nil, fmt.Errorf("open sequence store: %w", err)
	}
	return NewBadgerStore(db), nil
}

// Next increments the counter for key and returns the new value.
func (s *BadgerStore) Next(key Key) (uint64, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}

	var next uint64
	err := s.db.Update(func(txn *badger.Txn) error {
		current, err := readCounter(txn, key)
		if err != nil {
			return err
		}
		next = current + 1
		return txn.Set(key.Bytes(), encodeCounter(next))
	})
	if err != nil {
		return 0, fmt.Errorf("increment sequence %s: %w", key.Bytes(), err)
	}
	return next, nil
}

// Peek returns the current counter value without incrementing.
func (s *BadgerStore) Peek(key Key) (uint64, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}

	var current uint64
	err := s.db.View(func(txn *badger.Txn) error {
		var err error
		current, err = readCounter(txn, key)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("read sequence %s: %w", key.Bytes(), err)
	}
	return current, nil
}

// Reset forces the counter to value. Administrative repair only; normal
// operation never rewinds a counter.
func (s *BadgerStore) Reset(key Key, value uint64) error {
	if err := key.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key.Bytes(), encodeCounter(value))
	})
	if err != nil {
		return fmt.Errorf("reset sequence %s: %w", key.Bytes(), err)
	}
	return nil
}

// Close closes the underlying database.
func (s *BadgerStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}

func readCounter(txn *badger.Txn, key Key) (uint64, error) {
	item, err := txn.Get(key.Bytes())
	if errors.Is(err, badger.ErrKeyNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	var current uint64
	err = item.Value(func(val []byte) error {
		if len(val) != 8 {
			return fmt.Errorf("corrupt counter value of %d bytes", len(val))
		}
		current = binary.BigEndian.Uint64(val)
		return nil
	})
	return current, err
}

func encodeCounter(v uint64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return buf
}

// MemoryStore is a map-backed Store for tests and ephemeral tooling.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]uint64
	closed   bool
}

// NewMemoryStore creates an empty in-memory counter store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]uint64)}
}

// Next increments the counter for key and returns the new value.
func (s *MemoryStore) Next(key Key) (uint64, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	k := string(key.Bytes())
	s.counters[k]++
	return s.counters[k], nil
}

// Peek returns the current counter value without incrementing.
func (s *MemoryStore) Peek(key Key) (uint64, error) {
	if err := key.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, ErrStoreClosed
	}
	return s.counters[string(key.Bytes())], nil
}

// Reset forces the counter to value.
func (s *MemoryStore) Reset(key Key, value uint64) error {
	if err := key.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrStoreClosed
	}
	s.counters[string(key.Bytes())] = value
	return nil
}

// Close marks the store closed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}
