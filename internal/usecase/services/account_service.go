package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/api-sage/branch-ledger/internal/logger"
	"github.com/api-sage/branch-ledger/internal/usecase/service_interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Verify that AccountService implements the service_interfaces.AccountService interface
var _ service_interfaces.AccountService = (*AccountService)(nil)

type AccountService struct {
	accountRepo repo_interfaces.AccountRepository
}

func NewAccountService(accountRepo repo_interfaces.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

var accountNumberCounter uint64

// Open creates an account with a zero balance. Accounts are never
// closed or destroyed afterwards.
func (s *AccountService) Open(ctx context.Context, ownerName, branchCode string) (domain.Account, error) {
	ownerName = strings.TrimSpace(ownerName)
	if ownerName == "" {
		return domain.Account{}, fmt.Errorf("ownerName is required")
	}

	account := domain.Account{
		ID:            uuid.NewString(),
		AccountNumber: generateAccountNumber(),
		OwnerName:     ownerName,
		BranchCode:    strings.TrimSpace(branchCode),
		Balance:       decimal.Zero,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"ownerName": ownerName,
		})
		return domain.Account{}, err
	}

	logger.Info("account service open account success", logger.Fields{
		"accountNumber": created.AccountNumber,
		"branchCode":    created.BranchCode,
	})

	return created, nil
}

// Deposit adds amount to the account balance and returns the new
// balance. The amount must be strictly positive.
func (s *AccountService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, commons.ErrInvalidAmount
	}

	return s.accountRepo.Deposit(ctx, strings.TrimSpace(accountNumber), amount)
}

// Withdraw subtracts amount from the account balance and returns the
// new balance. A withdrawal exceeding the balance is rejected with
// commons.ErrInsufficientFunds and changes nothing.
func (s *AccountService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, commons.ErrInvalidAmount
	}

	return s.accountRepo.Withdraw(ctx, strings.TrimSpace(accountNumber), amount)
}

func (s *AccountService) GetAccount(ctx context.Context, accountNumber string) (commons.Response[models.GetAccountResponse], error) {
	logger.Info("account service get account request", logger.Fields{
		"accountNumber": accountNumber,
	})

	accountNumber = strings.TrimSpace(accountNumber)
	if accountNumber == "" {
		err := fmt.Errorf("accountNumber is required")
		return commons.ErrorResponse[models.GetAccountResponse]("validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByAccountNumber(ctx, accountNumber)
	if err != nil {
		logger.Error("account service get account failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.GetAccountResponse]("Account not found"), err
		}
		return commons.ErrorResponse[models.GetAccountResponse]("failed to get account", "Unable to fetch account right now"), err
	}

	response := models.GetAccountResponse{
		AccountNumber: account.AccountNumber,
		OwnerName:     account.OwnerName,
		BranchCode:    account.BranchCode,
		Balance:       account.Balance,
		OpenedAt:      account.OpenedAt.Format(time.RFC3339),
		UpdatedAt:     account.UpdatedAt.Format(time.RFC3339),
	}

	return commons.SuccessResponse("account fetched successfully", response), nil
}

func generateAccountNumber() string {
	return fmt.Sprintf("%010d", 2_000_000_000+atomic.AddUint64(&accountNumberCounter, 1))
}
