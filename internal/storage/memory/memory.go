// Package memory provides an in-memory implementation of storage.KV.
// Nothing survives the process; it backs tests and STORE_BACKEND=memory.
package memory

import (
	"context"
	"sync"

	"github.com/mmynk/roomease/internal/storage"
)

// Ensure Store implements storage.KV
var _ storage.KV = (*Store)(nil)

// Store is a map-backed KV. Failures can be injected to exercise the
// persistence fallbacks.
type Store struct {
	mu      sync.RWMutex
	data    map[string][]byte
	history []string // keys in write order

	getErr error
	putErr error
}

// New creates an empty Store.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get returns a copy of the stored value.
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.getErr != nil {
		return nil, s.getErr
	}
	v, ok := s.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

// Put stores a copy of value.
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.putErr != nil {
		return s.putErr
	}
	s.data[key] = append([]byte(nil), value...)
	s.history = append(s.history, key)
	return nil
}

// Close is a no-op.
func (s *Store) Close() error {
	return nil
}

// FailReads makes every Get return err until cleared with nil.
func (s *Store) FailReads(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.getErr = err
}

// FailWrites makes every Put return err until cleared with nil.
func (s *Store) FailWrites(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putErr = err
}

// Writes returns the keys of successful writes in order.
func (s *Store) Writes() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.history...)
}
