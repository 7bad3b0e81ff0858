package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/api-sage/branch-ledger/internal/logger"
	"github.com/api-sage/branch-ledger/internal/usecase/service_interfaces"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Verify that TellerService implements the service_interfaces.TellerService interface
var _ service_interfaces.TellerService = (*TellerService)(nil)

type TellerService struct {
	tellerRepo repo_interfaces.TellerRepository
	branchRepo repo_interfaces.BranchRepository
}

func NewTellerService(tellerRepo repo_interfaces.TellerRepository, branchRepo repo_interfaces.BranchRepository) *TellerService {
	return &TellerService{tellerRepo: tellerRepo, branchRepo: branchRepo}
}

func (s *TellerService) RegisterTeller(ctx context.Context, req models.RegisterTellerRequest) (commons.Response[models.RegisterTellerResponse], error) {
	logger.Info("teller service register teller request", logger.Fields{
		"payload": logger.SanitizePayload(req),
	})

	if err := req.Validate(); err != nil {
		logger.Error("teller service register teller validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterTellerResponse]("validation failed", err.Error()), err
	}

	branchCode := strings.TrimSpace(req.BranchCode)
	if _, err := s.branchRepo.GetByCode(ctx, branchCode); err != nil {
		logger.Error("teller service register teller branch lookup failed", err, logger.Fields{
			"branchCode": branchCode,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.RegisterTellerResponse]("Branch not found"), err
		}
		return commons.ErrorResponse[models.RegisterTellerResponse]("failed to register teller", "Unable to register teller right now"), err
	}

	pinHash, err := hashAccessPIN(strings.TrimSpace(req.AccessPIN))
	if err != nil {
		logger.Error("teller service register teller hash failed", err, nil)
		return commons.ErrorResponse[models.RegisterTellerResponse]("failed to register teller", "Unable to register teller right now"), err
	}

	teller := domain.Teller{
		ID:            uuid.NewString(),
		Name:          strings.TrimSpace(req.Name),
		BranchCode:    branchCode,
		AccessPINHash: pinHash,
	}

	created, err := s.tellerRepo.Create(ctx, teller)
	if err != nil {
		logger.Error("teller service register teller repository failed", err, nil)
		return commons.ErrorResponse[models.RegisterTellerResponse]("failed to register teller", "Unable to register teller right now"), err
	}

	response := models.RegisterTellerResponse{
		TellerID:   created.ID,
		Name:       created.Name,
		BranchCode: created.BranchCode,
	}

	logger.Info("teller service register teller success", logger.Fields{
		"tellerId":   response.TellerID,
		"branchCode": response.BranchCode,
	})

	return commons.SuccessResponse("teller registered successfully", response), nil
}

func (s *TellerService) VerifyAccessPIN(ctx context.Context, req models.VerifyTellerPINRequest) (commons.Response[models.VerifyTellerPINResponse], error) {
	logger.Info("teller service verify pin request", logger.Fields{
		"tellerId": req.TellerID,
	})

	tellerID := strings.TrimSpace(req.TellerID)
	pin := strings.TrimSpace(req.AccessPIN)

	if tellerID == "" {
		err := fmt.Errorf("tellerId is required")
		return commons.ErrorResponse[models.VerifyTellerPINResponse]("validation failed", err.Error()), err
	}
	if pin == "" {
		err := fmt.Errorf("accessPIN is required")
		return commons.ErrorResponse[models.VerifyTellerPINResponse]("validation failed", err.Error()), err
	}

	teller, err := s.tellerRepo.GetByID(ctx, tellerID)
	if err != nil {
		logger.Error("teller service verify pin lookup failed", err, logger.Fields{
			"tellerId": tellerID,
		})
		if errors.Is(err, commons.ErrRecordNotFound) {
			return commons.ErrorResponse[models.VerifyTellerPINResponse]("Teller not found"), err
		}
		return commons.ErrorResponse[models.VerifyTellerPINResponse]("failed to verify pin", "Unable to verify pin right now"), err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(teller.AccessPINHash), []byte(pin)); err != nil {
		if err == bcrypt.ErrMismatchedHashAndPassword {
			logger.Info("teller service verify pin mismatch", logger.Fields{
				"tellerId": tellerID,
			})
			return commons.ErrorResponse[models.VerifyTellerPINResponse]("invalid pin", "provided pin does not match"), fmt.Errorf("invalid pin")
		}
		wrappedErr := fmt.Errorf("verify teller pin: %w", err)
		logger.Error("teller service verify pin compare failed", wrappedErr, logger.Fields{
			"tellerId": tellerID,
		})
		return commons.ErrorResponse[models.VerifyTellerPINResponse]("failed to verify pin", "Unable to verify pin right now"), wrappedErr
	}

	response := models.VerifyTellerPINResponse{
		TellerID:   tellerID,
		IsValidPIN: true,
	}

	return commons.SuccessResponse("pin verified successfully", response), nil
}

func hashAccessPIN(pin string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash access pin: %w", err)
	}

	return string(hashed), nil
}
