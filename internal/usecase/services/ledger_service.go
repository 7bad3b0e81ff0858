package services

import (
	"context"
	"time"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/api-sage/branch-ledger/internal/logger"
	"github.com/api-sage/branch-ledger/internal/usecase/service_interfaces"
)

// Verify that LedgerService implements the service_interfaces.LedgerService interface
var _ service_interfaces.LedgerService = (*LedgerService)(nil)

type LedgerService struct {
	logRepo repo_interfaces.TransactionLogRepository
}

func NewLedgerService(logRepo repo_interfaces.TransactionLogRepository) *LedgerService {
	return &LedgerService{logRepo: logRepo}
}

// Record appends the transaction unconditionally. Validation is the
// caller's responsibility; the log itself rejects nothing.
func (s *LedgerService) Record(ctx context.Context, transaction domain.Transaction) error {
	if err := s.logRepo.Append(ctx, transaction); err != nil {
		logger.Error("ledger service record failed", err, logger.Fields{
			"transactionId": transaction.ID,
			"kind":          string(transaction.Kind),
		})
		return err
	}

	logger.Info("ledger service recorded transaction", logger.Fields{
		"transactionId": transaction.ID,
		"kind":          string(transaction.Kind),
		"accountNumber": transaction.AccountNumber,
	})

	return nil
}

func (s *LedgerService) ReadLog(ctx context.Context) (commons.Response[models.TransactionLogResponse], error) {
	logger.Info("ledger service read log request", nil)

	entries := make([]models.TransactionEntry, 0)
	for transaction := range s.logRepo.All(ctx) {
		entries = append(entries, models.TransactionEntry{
			ID:            transaction.ID,
			Kind:          string(transaction.Kind),
			AccountNumber: transaction.AccountNumber,
			BranchCode:    transaction.BranchCode,
			TellerID:      transaction.TellerID,
			Amount:        transaction.Amount,
			Description:   transaction.Description(),
			RecordedAt:    transaction.RecordedAt.Format(time.RFC3339),
		})
	}

	response := models.TransactionLogResponse{
		Count:        len(entries),
		Transactions: entries,
	}

	return commons.SuccessResponse("transaction log fetched successfully", response), nil
}
