package repo_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/internal/domain"
)

type TellerRepository interface {
	Create(ctx context.Context, teller domain.Teller) (domain.Teller, error)
	GetByID(ctx context.Context, tellerID string) (domain.Teller, error)
	ListByBranch(ctx context.Context, branchCode string) ([]domain.Teller, error)
}
