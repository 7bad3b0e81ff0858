package service_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountService owns account balances. Open, Deposit and Withdraw are
// the plain operations the branch service coordinates; GetAccount is
// the controller-facing lookup.
type AccountService interface {
	Open(ctx context.Context, ownerName, branchCode string) (domain.Account, error)
	Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error)
	Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error)
	GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.GetAccountResponse], error)
}
