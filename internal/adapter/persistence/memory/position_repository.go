package memory

import (
	"context"
	"sort"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// PositionRepository keeps samples in insertion order; readers sort by
// RecordedAt so a late-arriving older sample never becomes the latest.
type PositionRepository struct {
	s *Store
}

var _ interfaces.IPositionRepository = (*PositionRepository)(nil)

func NewPositionRepository(s *Store) *PositionRepository {
	return &PositionRepository{s: s}
}

func (r *PositionRepository) Append(ctx context.Context, p entities.PositionSample) (entities.PositionSample, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.positions = append(r.s.positions, p)
	return p, nil
}

func (r *PositionRepository) LatestByOccurrence(ctx context.Context, occurrenceID int64) (entities.PositionSample, error) {
	list := r.newestFirst(byOccurrence(occurrenceID))
	if len(list) == 0 {
		return entities.PositionSample{}, nil
	}
	return list[0], nil
}

func (r *PositionRepository) LatestByProvider(ctx context.Context, providerID int64) (entities.PositionSample, error) {
	list := r.newestFirst(func(p entities.PositionSample) bool { return p.PrestadorID == providerID })
	if len(list) == 0 {
		return entities.PositionSample{}, nil
	}
	return list[0], nil
}

func (r *PositionRepository) RecentByOccurrence(ctx context.Context, occurrenceID int64, limit int) ([]entities.PositionSample, error) {
	list := r.newestFirst(byOccurrence(occurrenceID))
	if limit > 0 && len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}

func (r *PositionRepository) ByOccurrenceSince(ctx context.Context, occurrenceID int64, since time.Time) ([]entities.PositionSample, error) {
	match := byOccurrence(occurrenceID)
	return r.newestFirst(func(p entities.PositionSample) bool {
		return match(p) && !p.RecordedAt.Before(since)
	}), nil
}

func (r *PositionRepository) newestFirst(match func(entities.PositionSample) bool) []entities.PositionSample {
	r.s.mu.RLock()
	var out []entities.PositionSample
	// Walk backwards so same-instant samples keep newest-inserted first.
	for i := len(r.s.positions) - 1; i >= 0; i-- {
		if p := r.s.positions[i]; match(p) {
			out = append(out, p)
		}
	}
	r.s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
	return out
}

func byOccurrence(id int64) func(entities.PositionSample) bool {
	return func(p entities.PositionSample) bool {
		return p.OcorrenciaID != nil && *p.OcorrenciaID == id
	}
}
