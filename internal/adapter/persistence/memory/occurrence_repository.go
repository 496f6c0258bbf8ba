package memory

import (
	"context"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

type OccurrenceRepository struct {
	s *Store
}

var _ interfaces.IOccurrenceRepository = (*OccurrenceRepository)(nil)

func NewOccurrenceRepository(s *Store) *OccurrenceRepository {
	return &OccurrenceRepository{s: s}
}

func (r *OccurrenceRepository) NextID(ctx context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.next("occurrences"), nil
}

func (r *OccurrenceRepository) Create(ctx context.Context, w interfaces.OccurrenceWrite) (entities.Occurrence, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, exists := r.s.occurrences[w.Occurrence.ID]; exists {
		return entities.Occurrence{}, interfaces.ErrVersionConflict
	}
	if err := r.checkAcquire(w.AcquireProvider, w.Occurrence.ID); err != nil {
		return entities.Occurrence{}, err
	}
	r.s.occurrences[w.Occurrence.ID] = copyOccurrence(w.Occurrence)
	if w.AcquireProvider != 0 {
		r.s.assignments[w.AcquireProvider] = w.Occurrence.ID
	}
	return copyOccurrence(w.Occurrence), nil
}

func (r *OccurrenceRepository) Save(ctx context.Context, w interfaces.OccurrenceWrite) (entities.Occurrence, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkVersion(w); err != nil {
		return entities.Occurrence{}, err
	}
	if err := r.checkRelease(w.ReleaseProvider, w.Occurrence.ID); err != nil {
		return entities.Occurrence{}, err
	}
	if err := r.checkAcquire(w.AcquireProvider, w.Occurrence.ID); err != nil {
		return entities.Occurrence{}, err
	}

	r.s.occurrences[w.Occurrence.ID] = copyOccurrence(w.Occurrence)
	if w.ReleaseProvider != 0 {
		delete(r.s.assignments, w.ReleaseProvider)
	}
	if w.AcquireProvider != 0 {
		r.s.assignments[w.AcquireProvider] = w.Occurrence.ID
	}
	return copyOccurrence(w.Occurrence), nil
}

func (r *OccurrenceRepository) Delete(ctx context.Context, w interfaces.OccurrenceWrite) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkVersion(w); err != nil {
		return err
	}
	if err := r.checkRelease(w.ReleaseProvider, w.Occurrence.ID); err != nil {
		return err
	}
	delete(r.s.occurrences, w.Occurrence.ID)
	if w.ReleaseProvider != 0 {
		delete(r.s.assignments, w.ReleaseProvider)
	}
	return nil
}

func (r *OccurrenceRepository) checkVersion(w interfaces.OccurrenceWrite) error {
	current, ok := r.s.occurrences[w.Occurrence.ID]
	if !ok || current.Version != w.ExpectedVersion {
		return interfaces.ErrVersionConflict
	}
	return nil
}

func (r *OccurrenceRepository) checkRelease(providerID, occurrenceID int64) error {
	if providerID == 0 {
		return nil
	}
	if held, ok := r.s.assignments[providerID]; ok && held != occurrenceID {
		return interfaces.ErrVersionConflict
	}
	return nil
}

func (r *OccurrenceRepository) checkAcquire(providerID, occurrenceID int64) error {
	if providerID == 0 {
		return nil
	}
	if held, ok := r.s.assignments[providerID]; ok && held != occurrenceID {
		return interfaces.ErrProviderLockHeld
	}
	return nil
}

func (r *OccurrenceRepository) GetByID(ctx context.Context, id int64) (entities.Occurrence, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	o, ok := r.s.occurrences[id]
	if !ok {
		return entities.Occurrence{}, nil
	}
	return copyOccurrence(o), nil
}

func (r *OccurrenceRepository) GetByTrackingHash(ctx context.Context, hash string) (entities.Occurrence, error) {
	if hash == "" {
		return entities.Occurrence{}, nil
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, o := range r.s.occurrences {
		if o.TrackingHash == hash {
			return copyOccurrence(o), nil
		}
	}
	return entities.Occurrence{}, nil
}

func (r *OccurrenceRepository) List(ctx context.Context, f interfaces.OccurrenceFilter) ([]entities.Occurrence, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]entities.Occurrence, 0)
	for _, o := range r.s.occurrences {
		if f.Cliente != "" && o.Cliente != f.Cliente {
			continue
		}
		if f.Prestador != "" && o.Prestador != f.Prestador {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		if f.Inicio != nil && o.CriadoEm.Before(*f.Inicio) {
			continue
		}
		if f.Fim != nil && o.CriadoEm.After(*f.Fim) {
			continue
		}
		if f.Placa != "" && !o.HasPlate(f.Placa) {
			continue
		}
		out = append(out, copyOccurrence(o))
	}
	sortOccurrences(out, f.OrderByClosure)
	return out, nil
}

func (r *OccurrenceRepository) ListByProviderID(ctx context.Context, providerID int64, statuses []entities.OccurrenceStatus) ([]entities.Occurrence, error) {
	return r.listBy(func(o entities.Occurrence) bool { return o.PrestadorID == providerID }, statuses), nil
}

func (r *OccurrenceRepository) ListByClientID(ctx context.Context, clientID int64, statuses []entities.OccurrenceStatus) ([]entities.Occurrence, error) {
	return r.listBy(func(o entities.Occurrence) bool { return o.ClienteID == clientID }, statuses), nil
}

func (r *OccurrenceRepository) listBy(match func(entities.Occurrence) bool, statuses []entities.OccurrenceStatus) []entities.Occurrence {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var out []entities.Occurrence
	for _, o := range r.s.occurrences {
		if match(o) && statusIn(o.Status, statuses) {
			out = append(out, copyOccurrence(o))
		}
	}
	sortOccurrences(out, false)
	return out
}
