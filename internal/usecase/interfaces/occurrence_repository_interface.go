package interfaces

import (
	"context"
	"errors"
	"time"

	"ocorrencias_api/internal/domain/entities"
)

var (
	// ErrVersionConflict means the stored version no longer matches the one
	// the write was computed from.
	ErrVersionConflict = errors.New("occurrence version conflict")
	// ErrProviderLockHeld means the provider already holds a trackable
	// assignment on another occurrence.
	ErrProviderLockHeld = errors.New("provider already assigned to an active occurrence")
)

// OccurrenceFilter is the back-office search. Zero values are ignored.
type OccurrenceFilter struct {
	Cliente   string
	Prestador string
	Status    entities.OccurrenceStatus
	Placa     string
	Inicio    *time.Time
	Fim       *time.Time
	// OrderByClosure sorts by EncerradaEm instead of CriadoEm (both desc).
	OrderByClosure bool
}

// OccurrenceWrite is one atomic write: the new state, the version it was
// computed from and the provider assignment changes that must land with it.
type OccurrenceWrite struct {
	Occurrence      entities.Occurrence
	ExpectedVersion int64
	AcquireProvider int64
	ReleaseProvider int64
}

// IOccurrenceRepository abstracts DynamoDB persistence for Occurrence.
//
// Lookups report "not found" as a zero Occurrence (ID == 0). Writes of an
// existing occurrence are conditional on ExpectedVersion; Create is
// conditional on the id being new. Provider assignment locks are acquired
// and released inside the same transaction as the occurrence write.
type IOccurrenceRepository interface {
	NextID(ctx context.Context) (int64, error)
	Create(ctx context.Context, w OccurrenceWrite) (entities.Occurrence, error)
	GetByID(ctx context.Context, id int64) (entities.Occurrence, error)
	GetByTrackingHash(ctx context.Context, hash string) (entities.Occurrence, error)
	List(ctx context.Context, f OccurrenceFilter) ([]entities.Occurrence, error)
	ListByProviderID(ctx context.Context, providerID int64, statuses []entities.OccurrenceStatus) ([]entities.Occurrence, error)
	ListByClientID(ctx context.Context, clientID int64, statuses []entities.OccurrenceStatus) ([]entities.Occurrence, error)
	Save(ctx context.Context, w OccurrenceWrite) (entities.Occurrence, error)
	Delete(ctx context.Context, w OccurrenceWrite) error
}
