package repo_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type BranchRepository interface {
	Create(ctx context.Context, branch domain.Branch) (domain.Branch, error)
	GetByCode(ctx context.Context, branchCode string) (domain.Branch, error)
	Credit(ctx context.Context, branchCode string, amount decimal.Decimal) (decimal.Decimal, error)
	Debit(ctx context.Context, branchCode string, amount decimal.Decimal) (decimal.Decimal, error)
	// MoveReserve transfers cash between two branch reserves. It either
	// applies both sides or neither.
	MoveReserve(ctx context.Context, fromCode, toCode string, amount decimal.Decimal) error
}
