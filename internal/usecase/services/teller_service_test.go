package services_test

import (
	"context"
	"testing"

	"github.com/api-sage/branch-ledger/internal/adapter/http/models"
	"github.com/api-sage/branch-ledger/internal/adapter/repository/memory"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/api-sage/branch-ledger/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newTellerFixture(t *testing.T) (*services.TellerService, string) {
	t.Helper()

	branchRepo := memory.NewBranchRepository()
	branch, err := branchRepo.Create(context.Background(), domain.Branch{
		Code:        "200001",
		Address:     "123 Main St",
		CashReserve: decimal.NewFromInt(1000),
	})
	if err != nil {
		t.Fatalf("create branch: %v", err)
	}

	return services.NewTellerService(memory.NewTellerRepository(), branchRepo), branch.Code
}

func TestTellerServiceRegisterAndVerifyPIN(t *testing.T) {
	svc, branchCode := newTellerFixture(t)

	registered, err := svc.RegisterTeller(context.Background(), models.RegisterTellerRequest{
		Name:       "Jane Doe",
		BranchCode: branchCode,
		AccessPIN:  "4321",
	})
	if err != nil {
		t.Fatalf("register teller: %v", err)
	}

	verified, err := svc.VerifyAccessPIN(context.Background(), models.VerifyTellerPINRequest{
		TellerID:  registered.Data.TellerID,
		AccessPIN: "4321",
	})
	if err != nil {
		t.Fatalf("verify pin: %v", err)
	}
	if !verified.Data.IsValidPIN {
		t.Fatal("expected pin to verify")
	}
}

func TestTellerServiceVerifyWrongPIN(t *testing.T) {
	svc, branchCode := newTellerFixture(t)

	registered, err := svc.RegisterTeller(context.Background(), models.RegisterTellerRequest{
		Name:       "Jane Doe",
		BranchCode: branchCode,
		AccessPIN:  "4321",
	})
	if err != nil {
		t.Fatalf("register teller: %v", err)
	}

	resp, err := svc.VerifyAccessPIN(context.Background(), models.VerifyTellerPINRequest{
		TellerID:  registered.Data.TellerID,
		AccessPIN: "1234",
	})
	if err == nil {
		t.Fatal("expected error for mismatched pin")
	}
	if resp.Success {
		t.Fatal("expected failed response for mismatched pin")
	}
}

func TestTellerServiceRegisterUnknownBranch(t *testing.T) {
	svc := services.NewTellerService(memory.NewTellerRepository(), memory.NewBranchRepository())

	_, err := svc.RegisterTeller(context.Background(), models.RegisterTellerRequest{
		Name:       "Jane Doe",
		BranchCode: "999999",
		AccessPIN:  "4321",
	})
	if err == nil {
		t.Fatal("expected error for unknown branch")
	}
}

func TestTellerServiceRegisterValidationError(t *testing.T) {
	svc := services.NewTellerService(nil, nil)

	_, err := svc.RegisterTeller(context.Background(), models.RegisterTellerRequest{})
	if err == nil {
		t.Fatal("expected validation error for empty register teller request")
	}
}
