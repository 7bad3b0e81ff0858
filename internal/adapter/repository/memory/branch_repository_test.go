package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

func seedBranches(t *testing.T, repo *BranchRepository) {
	t.Helper()

	for _, branch := range []domain.Branch{
		{Code: "200001", Address: "123 Main St", CashReserve: decimal.NewFromInt(1000)},
		{Code: "200002", Address: "456 Elm St", CashReserve: decimal.NewFromInt(500)},
	} {
		if _, err := repo.Create(context.Background(), branch); err != nil {
			t.Fatalf("create branch %s: %v", branch.Code, err)
		}
	}
}

func TestBranchRepositoryMoveReserve(t *testing.T) {
	repo := NewBranchRepository()
	seedBranches(t, repo)

	if err := repo.MoveReserve(context.Background(), "200001", "200002", decimal.NewFromInt(300)); err != nil {
		t.Fatalf("move reserve: %v", err)
	}

	from, _ := repo.GetByCode(context.Background(), "200001")
	to, _ := repo.GetByCode(context.Background(), "200002")
	if !from.CashReserve.Equal(decimal.NewFromInt(700)) {
		t.Fatalf("expected source reserve 700, got %s", from.CashReserve)
	}
	if !to.CashReserve.Equal(decimal.NewFromInt(800)) {
		t.Fatalf("expected destination reserve 800, got %s", to.CashReserve)
	}
}

func TestBranchRepositoryMoveReserveInsufficientLeavesBothUnchanged(t *testing.T) {
	repo := NewBranchRepository()
	seedBranches(t, repo)

	err := repo.MoveReserve(context.Background(), "200002", "200001", decimal.NewFromInt(501))
	if !errors.Is(err, commons.ErrInsufficientReserve) {
		t.Fatalf("expected ErrInsufficientReserve, got %v", err)
	}

	from, _ := repo.GetByCode(context.Background(), "200002")
	to, _ := repo.GetByCode(context.Background(), "200001")
	if !from.CashReserve.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected source reserve unchanged at 500, got %s", from.CashReserve)
	}
	if !to.CashReserve.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected destination reserve unchanged at 1000, got %s", to.CashReserve)
	}
}

func TestBranchRepositoryDebitInsufficientReserve(t *testing.T) {
	repo := NewBranchRepository()
	seedBranches(t, repo)

	_, err := repo.Debit(context.Background(), "200002", decimal.NewFromInt(1000))
	if !errors.Is(err, commons.ErrInsufficientReserve) {
		t.Fatalf("expected ErrInsufficientReserve, got %v", err)
	}

	branch, _ := repo.GetByCode(context.Background(), "200002")
	if !branch.CashReserve.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("expected reserve unchanged at 500, got %s", branch.CashReserve)
	}
}
