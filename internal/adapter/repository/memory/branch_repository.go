package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

type BranchRepository struct {
	mu       sync.Mutex
	branches map[string]*domain.Branch
}

func NewBranchRepository() *BranchRepository {
	return &BranchRepository{branches: make(map[string]*domain.Branch)}
}

func (r *BranchRepository) Create(_ context.Context, branch domain.Branch) (domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	branch.CreatedAt = now
	branch.UpdatedAt = now
	r.branches[branch.Code] = &branch

	return branch, nil
}

func (r *BranchRepository) GetByCode(_ context.Context, branchCode string) (domain.Branch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	branch, ok := r.branches[branchCode]
	if !ok {
		return domain.Branch{}, commons.ErrRecordNotFound
	}

	return *branch, nil
}

func (r *BranchRepository) Credit(_ context.Context, branchCode string, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	branch, ok := r.branches[branchCode]
	if !ok {
		return decimal.Zero, commons.ErrRecordNotFound
	}

	branch.CashReserve = branch.CashReserve.Add(amount)
	branch.UpdatedAt = time.Now().UTC()

	return branch.CashReserve, nil
}

func (r *BranchRepository) Debit(_ context.Context, branchCode string, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	branch, ok := r.branches[branchCode]
	if !ok {
		return decimal.Zero, commons.ErrRecordNotFound
	}

	if branch.CashReserve.LessThan(amount) {
		return branch.CashReserve, commons.ErrInsufficientReserve
	}

	branch.CashReserve = branch.CashReserve.Sub(amount)
	branch.UpdatedAt = time.Now().UTC()

	return branch.CashReserve, nil
}

// MoveReserve applies the debit and credit under one lock. A short
// source reserve fails the whole move and leaves both branches as they
// were.
func (r *BranchRepository) MoveReserve(_ context.Context, fromCode, toCode string, amount decimal.Decimal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	from, ok := r.branches[fromCode]
	if !ok {
		return commons.ErrRecordNotFound
	}
	to, ok := r.branches[toCode]
	if !ok {
		return commons.ErrRecordNotFound
	}

	if from.CashReserve.LessThan(amount) {
		return commons.ErrInsufficientReserve
	}

	now := time.Now().UTC()
	from.CashReserve = from.CashReserve.Sub(amount)
	to.CashReserve = to.CashReserve.Add(amount)
	from.UpdatedAt = now
	to.UpdatedAt = now

	return nil
}
