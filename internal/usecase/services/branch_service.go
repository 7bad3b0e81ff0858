package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
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

// Verify that BranchService implements the service_interfaces.BranchService interface
var _ service_interfaces.BranchService = (*BranchService)(nil)

// BranchService coordinates the account and ledger services for every
// account-mutating operation: the account operation runs first, and on
// success exactly one corresponding transaction is recorded.
type BranchService struct {
	branchRepo     repo_interfaces.BranchRepository
	tellerRepo     repo_interfaces.TellerRepository
	accountService service_interfaces.AccountService
	ledgerService  service_interfaces.LedgerService
	bankCode       string

	// Teller selection uses an explicitly seeded source so runs are
	// reproducible.
	rngMu sync.Mutex
	rng   *rand.Rand
}

func NewBranchService(
	branchRepo repo_interfaces.BranchRepository,
	tellerRepo repo_interfaces.TellerRepository,
	accountService service_interfaces.AccountService,
	ledgerService service_interfaces.LedgerService,
	bankCode string,
	tellerSeed int64,
) *BranchService {
	return &BranchService{
		branchRepo:     branchRepo,
		tellerRepo:     tellerRepo,
		accountService: accountService,
		ledgerService:  ledgerService,
		bankCode:       strings.TrimSpace(bankCode),
		rng:            rand.New(rand.NewSource(tellerSeed)),
	}
}

var branchCodeCounter uint64

func (s *BranchService) CreateBranch(ctx context.Context, req models.CreateBranchRequest) (commons.Response[models.CreateBranchResponse], error) {
	logger.Info("branch service create branch request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("branch service create branch validation failed", err, nil)
		return commons.ErrorResponse[models.CreateBranchResponse]("validation failed", err.Error()), err
	}

	branch := domain.Branch{
		Code:        s.generateBranchCode(),
		Address:     strings.TrimSpace(req.Address),
		CashReserve: req.InitialReserve,
	}

	created, err := s.branchRepo.Create(ctx, branch)
	if err != nil {
		logger.Error("branch service create branch repository failed", err, nil)
		return commons.ErrorResponse[models.CreateBranchResponse]("failed to create branch", "Unable to create branch right now"), err
	}

	response := models.CreateBranchResponse{
		BranchCode:  created.Code,
		Address:     created.Address,
		CashReserve: created.CashReserve,
		CreatedAt:   created.CreatedAt.Format(time.RFC3339),
	}

	logger.Info("branch service create branch success", logger.Fields{
		"branchCode": response.BranchCode,
	})

	return commons.SuccessResponse("branch created successfully", response), nil
}

func (s *BranchService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("branch service open account request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("branch service open account validation failed", err, nil)
		return commons.ErrorResponse[models.OpenAccountResponse]("validation failed", err.Error()), err
	}

	branchCode := strings.TrimSpace(req.BranchCode)
	if _, err := s.branchRepo.GetByCode(ctx, branchCode); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.OpenAccountResponse]("Branch not found"), err
		}
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	tellerID, err := s.pickTeller(ctx, branchCode)
	if err != nil {
		return commons.ErrorResponse[models.OpenAccountResponse]("No teller available", err.Error()), err
	}

	account, err := s.accountService.Open(ctx, req.OwnerName, branchCode)
	if err != nil {
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to open account right now"), err
	}

	if err := s.ledgerService.Record(ctx, s.newTransaction(domain.TransactionKindOpenAccount, account.AccountNumber, branchCode, tellerID, decimal.Zero)); err != nil {
		return commons.ErrorResponse[models.OpenAccountResponse]("failed to open account", "Unable to record transaction right now"), err
	}

	response := models.OpenAccountResponse{
		AccountNumber: account.AccountNumber,
		OwnerName:     account.OwnerName,
		BranchCode:    account.BranchCode,
		Balance:       account.Balance,
		TellerID:      tellerID,
		OpenedAt:      account.OpenedAt.Format(time.RFC3339),
	}

	logger.Info("branch service open account success", logger.Fields{
		"accountNumber": response.AccountNumber,
		"branchCode":    response.BranchCode,
		"tellerId":      response.TellerID,
	})

	return commons.SuccessResponse("account opened successfully", response), nil
}

func (s *BranchService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.AccountMovementResponse], error) {
	logger.Info("branch service deposit request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("branch service deposit validation failed", err, nil)
		return commons.ErrorResponse[models.AccountMovementResponse]("validation failed", err.Error()), err
	}

	branchCode := strings.TrimSpace(req.BranchCode)
	accountNumber := strings.TrimSpace(req.AccountNumber)

	if _, err := s.branchRepo.GetByCode(ctx, branchCode); err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountMovementResponse]("Branch not found"), err
		}
		return commons.ErrorResponse[models.AccountMovementResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	tellerID, err := s.pickTeller(ctx, branchCode)
	if err != nil {
		return commons.ErrorResponse[models.AccountMovementResponse]("No teller available", err.Error()), err
	}

	balance, err := s.accountService.Deposit(ctx, accountNumber, req.Amount)
	if err != nil {
		return s.movementError(err, "deposit")
	}

	// Cash taken over the counter joins the branch reserve.
	if _, err := s.branchRepo.Credit(ctx, branchCode, req.Amount); err != nil {
		return commons.ErrorResponse[models.AccountMovementResponse]("failed to deposit funds", "Unable to deposit funds right now"), err
	}

	if err := s.ledgerService.Record(ctx, s.newTransaction(domain.TransactionKindDeposit, accountNumber, branchCode, tellerID, req.Amount)); err != nil {
		return commons.ErrorResponse[models.AccountMovementResponse]("failed to deposit funds", "Unable to record transaction right now"), err
	}

	response := models.AccountMovementResponse{
		AccountNumber: accountNumber,
		BranchCode:    branchCode,
		Amount:        req.Amount,
		Balance:       balance,
		TellerID:      tellerID,
	}

	logger.Info("branch service deposit success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        req.Amount,
		"balance":       balance,
	})

	return commons.SuccessResponse("funds deposited successfully", response), nil
}

func (s *BranchService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.AccountMovementResponse], error) {
	logger.Info("branch service withdraw request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("branch service withdraw validation failed", err, nil)
		return commons.ErrorResponse[models.AccountMovementResponse]("validation failed", err.Error()), err
	}

	branchCode := strings.TrimSpace(req.BranchCode)
	accountNumber := strings.TrimSpace(req.AccountNumber)

	branch, err := s.branchRepo.GetByCode(ctx, branchCode)
	if err != nil {
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.AccountMovementResponse]("Branch not found"), err
		}
		return commons.ErrorResponse[models.AccountMovementResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	// Cash leaves the branch reserve, so the branch must hold at least
	// the requested amount before the account is touched.
	if branch.CashReserve.LessThan(req.Amount) {
		err := commons.ErrInsufficientReserve
		return commons.ErrorResponse[models.AccountMovementResponse]("Branch does not have enough cash", err.Error()), err
	}

	tellerID, err := s.pickTeller(ctx, branchCode)
	if err != nil {
		return commons.ErrorResponse[models.AccountMovementResponse]("No teller available", err.Error()), err
	}

	balance, err := s.accountService.Withdraw(ctx, accountNumber, req.Amount)
	if err != nil {
		return s.movementError(err, "withdraw")
	}

	if _, err := s.branchRepo.Debit(ctx, branchCode, req.Amount); err != nil {
		return commons.ErrorResponse[models.AccountMovementResponse]("failed to withdraw funds", "Unable to withdraw funds right now"), err
	}

	if err := s.ledgerService.Record(ctx, s.newTransaction(domain.TransactionKindWithdrawal, accountNumber, branchCode, tellerID, req.Amount)); err != nil {
		return commons.ErrorResponse[models.AccountMovementResponse]("failed to withdraw funds", "Unable to record transaction right now"), err
	}

	response := models.AccountMovementResponse{
		AccountNumber: accountNumber,
		BranchCode:    branchCode,
		Amount:        req.Amount,
		Balance:       balance,
		TellerID:      tellerID,
	}

	logger.Info("branch service withdraw success", logger.Fields{
		"accountNumber": accountNumber,
		"amount":        req.Amount,
		"balance":       balance,
	})

	return commons.SuccessResponse("funds withdrawn successfully", response), nil
}

func (s *BranchService) TransferReserve(ctx context.Context, req models.ReserveTransferRequest) (commons.Response[models.ReserveTransferResponse], error) {
	logger.Info("branch service transfer reserve request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("branch service transfer reserve validation failed", err, nil)
		return commons.ErrorResponse[models.ReserveTransferResponse]("validation failed", err.Error()), err
	}

	fromCode := strings.TrimSpace(req.FromBranchCode)
	toCode := strings.TrimSpace(req.ToBranchCode)

	if err := s.branchRepo.MoveReserve(ctx, fromCode, toCode, req.Amount); err != nil {
		logger.Error("branch service transfer reserve failed", err, logger.Fields{
			"fromBranchCode": fromCode,
			"toBranchCode":   toCode,
			"amount":         req.Amount,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.ReserveTransferResponse]("Branch not found"), err
		}
		if errors.Is(err, commons.ErrInsufficientReserve) {
			return commons.ErrorResponse[models.ReserveTransferResponse]("Insufficient branch reserve", err.Error()), err
		}
		return commons.ErrorResponse[models.ReserveTransferResponse]("failed to transfer reserve", "Unable to transfer reserve right now"), err
	}

	from, err := s.branchRepo.GetByCode(ctx, fromCode)
	if err != nil {
		return commons.ErrorResponse[models.ReserveTransferResponse]("failed to transfer reserve", "Unable to fetch branch right now"), err
	}
	to, err := s.branchRepo.GetByCode(ctx, toCode)
	if err != nil {
		return commons.ErrorResponse[models.ReserveTransferResponse]("failed to transfer reserve", "Unable to fetch branch right now"), err
	}

	response := models.ReserveTransferResponse{
		FromBranchCode: fromCode,
		ToBranchCode:   toCode,
		Amount:         req.Amount,
		FromReserve:    from.CashReserve,
		ToReserve:      to.CashReserve,
	}

	logger.Info("branch service transfer reserve success", logger.Fields{
		"fromBranchCode": fromCode,
		"toBranchCode":   toCode,
		"amount":         req.Amount,
	})

	return commons.SuccessResponse("reserve transferred successfully", response), nil
}

func (s *BranchService) pickTeller(ctx context.Context, branchCode string) (string, error) {
	tellers, err := s.tellerRepo.ListByBranch(ctx, branchCode)
	if err != nil {
		return "", err
	}
	if len(tellers) == 0 {
		return "", commons.ErrNoTellerAvailable
	}

	s.rngMu.Lock()
	picked := tellers[s.rng.Intn(len(tellers))]
	s.rngMu.Unlock()

	return picked.ID, nil
}

func (s *BranchService) newTransaction(kind domain.TransactionKind, accountNumber, branchCode, tellerID string, amount decimal.Decimal) domain.Transaction {
	return domain.Transaction{
		ID:            uuid.NewString(),
		Kind:          kind,
		AccountNumber: accountNumber,
		BranchCode:    branchCode,
		TellerID:      tellerID,
		Amount:        amount,
		RecordedAt:    time.Now().UTC(),
	}
}

func (s *BranchService) movementError(err error, operation string) (commons.Response[models.AccountMovementResponse], error) {
	switch {
	case errors.Is(err, commons.ErrRecordNotFound):
		return commons.ErrorResponse[models.AccountMovementResponse]("Account not found"), err
	case errors.Is(err, commons.ErrInvalidAmount):
		return commons.ErrorResponse[models.AccountMovementResponse]("validation failed", err.Error()), err
	case errors.Is(err, commons.ErrInsufficientFunds):
		return commons.ErrorResponse[models.AccountMovementResponse]("Insufficient funds", err.Error()), err
	default:
		return commons.ErrorResponse[models.AccountMovementResponse](fmt.Sprintf("failed to %s funds", operation), fmt.Sprintf("Unable to %s funds right now", operation)), err
	}
}

func (s *BranchService) generateBranchCode() string {
	prefix := s.bankCode
	if len(prefix) >= 3 {
		prefix = prefix[:3]
	} else {
		prefix = "200"
	}
	return fmt.Sprintf("%s%03d", prefix, atomic.AddUint64(&branchCodeCounter, 1)%1000)
}
