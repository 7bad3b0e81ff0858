package service_interfaces

import (
	"context"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/commons"
)

type BranchService interface {
	CreateBranch(ctx context.Context, req models.CreateBranchRequest) (commons.Response[models.CreateBranchResponse], error)
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.AccountMovementResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.AccountMovementResponse], error)
	TransferReserve(ctx context.Context, req models.ReserveTransferRequest) (commons.Response[models.ReserveTransferResponse], error)
}
