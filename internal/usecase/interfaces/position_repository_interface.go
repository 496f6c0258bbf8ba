package interfaces

import (
	"context"
	"time"

	"ocorrencias_api/internal/domain/entities"
)

// IPositionRepository stores append-only position samples. Every listing is
// newest-first by server time; not found is a zero sample (ID == "").
type IPositionRepository interface {
	Append(ctx context.Context, s entities.PositionSample) (entities.PositionSample, error)
	LatestByOccurrence(ctx context.Context, occurrenceID int64) (entities.PositionSample, error)
	LatestByProvider(ctx context.Context, providerID int64) (entities.PositionSample, error)
	RecentByOccurrence(ctx context.Context, occurrenceID int64, limit int) ([]entities.PositionSample, error)
	ByOccurrenceSince(ctx context.Context, occurrenceID int64, since time.Time) ([]entities.PositionSample, error)
}
