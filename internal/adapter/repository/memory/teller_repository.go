package memory

import (
	"context"
	"sync"
	"time"

	"github.com/api-sage/branch-ledger/internal/commons"
	"github.com/api-sage/branch-ledger/internal/domain"
)

type TellerRepository struct {
	mu      sync.Mutex
	tellers map[string]*domain.Teller
	order   []string
}

func NewTellerRepository() *TellerRepository {
	return &TellerRepository{tellers: make(map[string]*domain.Teller)}
}

func (r *TellerRepository) Create(_ context.Context, teller domain.Teller) (domain.Teller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teller.CreatedAt = time.Now().UTC()
	r.tellers[teller.ID] = &teller
	r.order = append(r.order, teller.ID)

	return teller, nil
}

func (r *TellerRepository) GetByID(_ context.Context, tellerID string) (domain.Teller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	teller, ok := r.tellers[tellerID]
	if !ok {
		return domain.Teller{}, commons.ErrRecordNotFound
	}

	return *teller, nil
}

// ListByBranch returns tellers in registration order so branch-level
// teller selection stays deterministic for a fixed seed.
func (r *TellerRepository) ListByBranch(_ context.Context, branchCode string) ([]domain.Teller, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]domain.Teller, 0, len(r.order))
	for _, id := range r.order {
		teller := r.tellers[id]
		if teller.BranchCode == branchCode {
			out = append(out, *teller)
		}
	}

	return out, nil
}
