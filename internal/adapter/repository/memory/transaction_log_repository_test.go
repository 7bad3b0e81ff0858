package memory

import (
	"context"
	"fmt"
	"testing"

	"github.com/api-sage/branch-ledger/internal/domain"
)

func TestTransactionLogRepositoryKeepsInsertionOrder(t *testing.T) {
	repo := NewTransactionLogRepository()

	for i := 0; i < 5; i++ {
		err := repo.Append(context.Background(), domain.Transaction{
			ID:   fmt.Sprintf("txn-%d", i),
			Kind: domain.TransactionKindDeposit,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	i := 0
	for transaction := range repo.All(context.Background()) {
		want := fmt.Sprintf("txn-%d", i)
		if transaction.ID != want {
			t.Fatalf("position %d: expected %s, got %s", i, want, transaction.ID)
		}
		i++
	}
	if i != 5 {
		t.Fatalf("expected 5 entries, got %d", i)
	}
}

func TestTransactionLogRepositoryAllIsRestartable(t *testing.T) {
	repo := NewTransactionLogRepository()
	for i := 0; i < 3; i++ {
		_ = repo.Append(context.Background(), domain.Transaction{ID: fmt.Sprintf("txn-%d", i)})
	}

	entries := repo.All(context.Background())

	first := 0
	for range entries {
		first++
		if first == 2 {
			break
		}
	}

	second := 0
	for range entries {
		second++
	}

	if second != 3 {
		t.Fatalf("expected restarted iteration to see 3 entries, got %d", second)
	}
}
