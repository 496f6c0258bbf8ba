package memory

import (
	"context"
	"errors"
	"sort"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

var errPaymentExists = errors.New("payment already exists")

type BillingPaymentRepository struct {
	s *Store
}

var _ interfaces.IBillingPaymentRepository = (*BillingPaymentRepository)(nil)

func NewBillingPaymentRepository(s *Store) *BillingPaymentRepository {
	return &BillingPaymentRepository{s: s}
}

func (r *BillingPaymentRepository) Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.payments[p.ID]; ok {
		return entities.BillingPayment{}, errPaymentExists
	}
	r.s.payments[p.ID] = p
	return p, nil
}

func (r *BillingPaymentRepository) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.payments[id], nil
}

func (r *BillingPaymentRepository) ListByOccurrenceID(ctx context.Context, occurrenceID int64) ([]entities.BillingPayment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.BillingPayment, 0)
	for _, p := range r.s.payments {
		if p.OcorrenciaID == occurrenceID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}
