package repo_interfaces

import (
	"context"
	"iter"

	"github.com/api-sage/branch-ledger/internal/domain"
)

// TransactionLogRepository is an append-only log. Entries are never
// updated or removed once appended.
type TransactionLogRepository interface {
	Append(ctx context.Context, transaction domain.Transaction) error
	// All returns a restartable, insertion-ordered view of the log.
	All(ctx context.Context) iter.Seq[domain.Transaction]
}
