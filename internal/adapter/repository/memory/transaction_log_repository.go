package memory

import (
	"context"
	"iter"
	"sync"

	"github.com/api-sage/branch-ledger/internal/domain"
)

// TransactionLogRepository is the append-only ledger log. Append trusts
// the caller and never rejects an entry.
type TransactionLogRepository struct {
	mu      sync.Mutex
	entries []domain.Transaction
}

func NewTransactionLogRepository() *TransactionLogRepository {
	return &TransactionLogRepository{}
}

func (r *TransactionLogRepository) Append(_ context.Context, transaction domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, transaction)
	return nil
}

// All yields log entries in insertion order. The sequence ranges over a
// snapshot, so it stays finite and can be restarted while new entries
// are appended.
func (r *TransactionLogRepository) All(_ context.Context) iter.Seq[domain.Transaction] {
	r.mu.Lock()
	snapshot := make([]domain.Transaction, len(r.entries))
	copy(snapshot, r.entries)
	r.mu.Unlock()

	return func(yield func(domain.Transaction) bool) {
		for _, entry := range snapshot {
			if !yield(entry) {
				return
			}
		}
	}
}
