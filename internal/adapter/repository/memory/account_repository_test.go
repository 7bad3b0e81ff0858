package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
	"github.com/shopspring/decimal"
)

func newTestAccount(t *testing.T, repo *AccountRepository, balance decimal.Decimal) domain.Account {
	t.Helper()

	account, err := repo.Create(context.Background(), domain.Account{
		ID:            "acc-1",
		AccountNumber: "2000000001",
		OwnerName:     "John Doe",
		BranchCode:    "200001",
		Balance:       balance,
	})
	if err != nil {
		t.Fatalf("create account: %v", err)
	}
	return account
}

func TestAccountRepositoryWithdrawExceedingBalanceLeavesBalanceUnchanged(t *testing.T) {
	repo := NewAccountRepository()
	account := newTestAccount(t, repo, decimal.NewFromInt(100))

	_, err := repo.Withdraw(context.Background(), account.AccountNumber, decimal.NewFromInt(101))
	if !errors.Is(err, commons.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	got, err := repo.GetByAccountNumber(context.Background(), account.AccountNumber)
	if err != nil {
		t.Fatalf("get account: %v", err)
	}
	if !got.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected balance 100, got %s", got.Balance)
	}
}

func TestAccountRepositoryDepositWithdrawRoundTrip(t *testing.T) {
	repo := NewAccountRepository()
	account := newTestAccount(t, repo, decimal.NewFromInt(50))

	amount := decimal.RequireFromString("12.34")
	if _, err := repo.Deposit(context.Background(), account.AccountNumber, amount); err != nil {
		t.Fatalf("deposit: %v", err)
	}
	balance, err := repo.Withdraw(context.Background(), account.AccountNumber, amount)
	if err != nil {
		t.Fatalf("withdraw: %v", err)
	}

	if !balance.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected balance back at 50, got %s", balance)
	}
}

func TestAccountRepositoryBalanceNeverNegative(t *testing.T) {
	repo := NewAccountRepository()
	account := newTestAccount(t, repo, decimal.Zero)

	steps := []struct {
		deposit bool
		amount  int64
	}{
		{true, 10}, {false, 4}, {false, 7}, {true, 1}, {false, 7}, {false, 1}, {true, 3},
	}

	for i, step := range steps {
		var err error
		if step.deposit {
			_, err = repo.Deposit(context.Background(), account.AccountNumber, decimal.NewFromInt(step.amount))
			if err != nil {
				t.Fatalf("step %d deposit: %v", i, err)
			}
		} else {
			_, err = repo.Withdraw(context.Background(), account.AccountNumber, decimal.NewFromInt(step.amount))
			if err != nil && !errors.Is(err, commons.ErrInsufficientFunds) {
				t.Fatalf("step %d withdraw: %v", i, err)
			}
		}

		got, err := repo.GetByAccountNumber(context.Background(), account.AccountNumber)
		if err != nil {
			t.Fatalf("step %d get account: %v", i, err)
		}
		if got.Balance.IsNegative() {
			t.Fatalf("step %d left balance negative: %s", i, got.Balance)
		}
	}
}

func TestAccountRepositoryUnknownAccount(t *testing.T) {
	repo := NewAccountRepository()

	_, err := repo.GetByAccountNumber(context.Background(), "0000000000")
	if !errors.Is(err, commons.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}
