package service_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
)

// LedgerService appends to and reads the append-only transaction log.
// Record trusts the caller and never validates the entry.
type LedgerService interface {
	Record(ctx context.Context, transaction domain.Transaction) error
	ReadLog(ctx context.Context) (commons.Response[models.TransactionLogResponse], error)
}
