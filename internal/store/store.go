// Package store owns the in-memory transaction collection and its
// persistence. The pipeline stays pure; this is the single writer path.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/Whitekid123/finance-tracker/internal/domain"
)

// StorageKey is the single key the transaction collection is persisted
// under in the key-value store.
const StorageKey = "finance-tracker-storage"

// KV is the storage port injected into the store. Implementations persist
// one opaque blob per key; no schema migration logic.
type KV interface {
	// Load returns the blob for key, or ErrNotFound.
	Load(ctx context.Context, key string) ([]byte, error)
	// Save writes the blob for key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// ErrNotFound is returned by KV.Load when the key has never been saved.
var ErrNotFound = errors.New("key not found")

// Store holds the current transaction collection. Replacement is atomic:
// readers always observe a complete snapshot, never a partial import.
type Store struct {
	mu   sync.RWMutex
	txns []domain.Transaction
	kv   KV
}

// New creates a store backed by the given KV port and loads any previously
// persisted collection. A missing key means a fresh store; a corrupt blob is
// an error so the operator can decide rather than silently losing data.
func New(ctx context.Context, kv KV) (*Store, error) {
	if kv == nil {
		return nil, fmt.Errorf("kv port cannot be nil")
	}

	s := &Store{kv: kv}

	blob, err := kv.Load(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to load persisted transactions: %w", err)
	}

	var txns []domain.Transaction
	if err := json.Unmarshal(blob, &txns); err != nil {
		return nil, fmt.Errorf("persisted transaction blob is corrupt: %w", err)
	}
	s.txns = txns

	return s, nil
}

// Get returns a defensive copy of the current collection.
func (s *Store) Get() []domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Transaction(nil), s.txns...)
}

// Len returns the current collection size.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.txns)
}

// Replace installs a new collection in one step and persists it. On a
// persistence failure the in-memory collection is left unchanged so memory
// and disk never diverge.
func (s *Store) Replace(ctx context.Context, txns []domain.Transaction) error {
	snapshot := append([]domain.Transaction(nil), txns...)

	blob, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := s.kv.Save(ctx, StorageKey, blob); err != nil {
		return fmt.Errorf("failed to persist transactions: %w", err)
	}

	s.mu.Lock()
	s.txns = snapshot
	s.mu.Unlock()
	return nil
}

// Clear discards the collection and removes the persisted blob.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, StorageKey); err != nil {
		return fmt.Errorf("failed to clear persisted transactions: %w", err)
	}

	s.mu.Lock()
	s.txns = nil
	s.mu.Unlock()
	return nil
}
