package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

// AccountRepository keeps accounts in a mutex-guarded map. Balance
// mutations happen entirely under the lock so a balance can never be
// observed negative.
type AccountRepository struct {
	mu       sync.Mutex
	accounts map[string]*domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[string]*domain.Account)}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	account.OpenedAt = now
	account.UpdatedAt = now
	r.accounts[account.AccountNumber] = &account

	return account, nil
}

func (r *AccountRepository) GetByAccountNumber(_ context.Context, accountNumber string) (domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return domain.Account{}, commons.ErrRecordNotFound
	}

	return *account, nil
}

func (r *AccountRepository) Deposit(_ context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return decimal.Zero, commons.ErrRecordNotFound
	}

	account.Balance = account.Balance.Add(amount)
	account.UpdatedAt = time.Now().UTC()

	return account.Balance, nil
}

func (r *AccountRepository) Withdraw(_ context.Context, accountNumber string, amount decimal.Decimal) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[accountNumber]
	if !ok {
		return decimal.Zero, commons.ErrRecordNotFound
	}

	if account.Balance.LessThan(amount) {
		return account.Balance, commons.ErrInsufficientFunds
	}

	account.Balance = account.Balance.Sub(amount)
	account.UpdatedAt = time.Now().UTC()

	return account.Balance, nil
}
