package storage

import (
	"context"
	"sync"

	"ledgerbot/internal/core"
	"ledgerbot/internal/ledger"
)

// MemoryStore is an in-process transaction store. It backs the default
// zero-configuration backend and the test suite. Data does not survive a
// restart.
type MemoryStore struct {
	mu     sync.Mutex
	nextID int64
	txs    []core.Transaction
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{nextID: 1}
}

func (s *MemoryStore) InsertTransaction(_ context.Context, tx core.Transaction) (int64, error) {
	if err := tx.Validate(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	tx.ID = s.nextID
	s.nextID++
	s.txs = append(s.txs, tx)
	return tx.ID, nil
}

// ListTransactions implements ledger.TransactionReader.
func (s *MemoryStore) ListTransactions(_ context.Context, phone string, p ledger.Period) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []core.Transaction
	for _, tx := range s.txs {
		if tx.Phone == phone && p.Contains(tx.OccurredOn) {
			out = append(out, tx)
		}
	}
	return out, nil
}

func (s *MemoryStore) GetTransaction(_ context.Context, id int64) (core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, tx := range s.txs {
		if tx.ID == id {
			return tx, nil
		}
	}
	return core.Transaction{}, ErrNotFound
}

func (s *MemoryStore) Close() error { return nil }
