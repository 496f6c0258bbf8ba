package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

var (
	ErrInvalidCoordinates = errors.New("latitude must be within [-90,90] and longitude within [-180,180]")
	ErrPositionNotFound   = errors.New("position not found")
	ErrInvalidWindow      = errors.New("invalid time window")
)

const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 500
	MaxLiveWindow      = 24 * time.Hour
)

// PositionInput is a GPS fix as submitted by a provider device.
type PositionInput struct {
	PrestadorID  int64
	OcorrenciaID *int64
	Latitude     float64
	Longitude    float64
	Velocidade   *float64
	Direcao      *float64
	Altitude     *float64
	Precisao     *float64
	Bateria      *float64
	Status       string
	Timestamp    *time.Time
}

// IPositionUseCase ingests and serves provider position samples.
type IPositionUseCase interface {
	Submit(ctx context.Context, identity entities.AuthIdentity, in PositionInput) (entities.PositionSample, error)
	Latest(ctx context.Context, occurrenceID int64) (entities.PositionSample, error)
	LatestByProvider(ctx context.Context, providerID int64) (entities.PositionSample, error)
	Recent(ctx context.Context, occurrenceID int64, limit int) ([]entities.PositionSample, error)
	RecentWindow(ctx context.Context, occurrenceID int64, window time.Duration) ([]entities.LivePosition, error)
}

type PositionUseCase struct {
	positions   interfaces.IPositionRepository
	occurrences interfaces.IOccurrenceRepository
	providers   interfaces.IProviderRepository
	assignments IAssignmentUseCase
	now         func() time.Time
}

var _ IPositionUseCase = (*PositionUseCase)(nil)

func NewPositionUseCase(
	positions interfaces.IPositionRepository,
	occurrences interfaces.IOccurrenceRepository,
	providers interfaces.IProviderRepository,
	assignments IAssignmentUseCase,
) *PositionUseCase {
	return &PositionUseCase{
		positions:   positions,
		occurrences: occurrences,
		providers:   providers,
		assignments: assignments,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Submit validates and stores one sample. When no occurrence is named the
// sample is attached to the provider's current assignment, if it has one.
// Closed occurrences never accept samples.
func (u *PositionUseCase) Submit(ctx context.Context, identity entities.AuthIdentity, in PositionInput) (entities.PositionSample, error) {
	if !entities.ValidCoordinates(in.Latitude, in.Longitude) {
		return entities.PositionSample{}, fmt.Errorf("%w: got (%v, %v)", ErrInvalidCoordinates, in.Latitude, in.Longitude)
	}

	provider, err := u.assignments.ResolveProvider(ctx, identity)
	if err != nil {
		return entities.PositionSample{}, err
	}
	if in.PrestadorID != 0 && in.PrestadorID != provider.ID {
		log.Printf("[position][usecase] provider mismatch token_prestador_id=%d body_prestador_id=%d", provider.ID, in.PrestadorID)
		return entities.PositionSample{}, ErrForbidden
	}

	var occurrenceID *int64
	if in.OcorrenciaID != nil && *in.OcorrenciaID != 0 {
		o, err := u.occurrences.GetByID(ctx, *in.OcorrenciaID)
		if err != nil {
			return entities.PositionSample{}, err
		}
		if o.ID == 0 || o.PrestadorID != provider.ID {
			return entities.PositionSample{}, ErrOccurrenceNotFound
		}
		if o.Status.IsTerminal() {
			return entities.PositionSample{}, fmt.Errorf("%w: occurrence %d is %s", ErrOccurrenceTerminal, o.ID, o.Status)
		}
		id := o.ID
		occurrenceID = &id
	} else {
		o, ok, err := u.assignments.CurrentAssignment(ctx, provider.ID)
		if err != nil {
			return entities.PositionSample{}, err
		}
		if ok {
			id := o.ID
			occurrenceID = &id
		}
	}

	status := strings.ToLower(strings.TrimSpace(in.Status))
	if status == "" {
		status = entities.PositionStatusAtivo
	}

	sample := entities.PositionSample{
		PrestadorID:  provider.ID,
		OcorrenciaID: occurrenceID,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Velocidade:   copyFloat(in.Velocidade),
		Direcao:      copyFloat(in.Direcao),
		Altitude:     copyFloat(in.Altitude),
		Precisao:     copyFloat(in.Precisao),
		Bateria:      copyFloat(in.Bateria),
		Status:       status,
		DeviceTime:   in.Timestamp,
		RecordedAt:   u.now(),
	}

	stored, err := u.positions.Append(ctx, sample)
	if err != nil {
		log.Printf("[position][usecase] append failed prestador_id=%d err=%v", provider.ID, err)
		return entities.PositionSample{}, err
	}
	return stored, nil
}

func (u *PositionUseCase) Latest(ctx context.Context, occurrenceID int64) (entities.PositionSample, error) {
	if occurrenceID <= 0 {
		return entities.PositionSample{}, ErrInvalidOccurrenceID
	}
	s, err := u.positions.LatestByOccurrence(ctx, occurrenceID)
	if err != nil {
		return entities.PositionSample{}, err
	}
	if s.ID == "" {
		return entities.PositionSample{}, ErrPositionNotFound
	}
	return s, nil
}

func (u *PositionUseCase) LatestByProvider(ctx context.Context, providerID int64) (entities.PositionSample, error) {
	if providerID <= 0 {
		return entities.PositionSample{}, ErrProviderNotFound
	}
	s, err := u.positions.LatestByProvider(ctx, providerID)
	if err != nil {
		return entities.PositionSample{}, err
	}
	if s.ID == "" {
		return entities.PositionSample{}, ErrPositionNotFound
	}
	return s, nil
}

func (u *PositionUseCase) Recent(ctx context.Context, occurrenceID int64, limit int) ([]entities.PositionSample, error) {
	if occurrenceID <= 0 {
		return nil, ErrInvalidOccurrenceID
	}
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	return u.positions.RecentByOccurrence(ctx, occurrenceID, limit)
}

// RecentWindow is the live feed: ativo samples of the occurrence recorded
// within window of now, newest first, with provider display fields.
func (u *PositionUseCase) RecentWindow(ctx context.Context, occurrenceID int64, window time.Duration) ([]entities.LivePosition, error) {
	if occurrenceID <= 0 {
		return nil, ErrInvalidOccurrenceID
	}
	if window <= 0 || window > MaxLiveWindow {
		return nil, ErrInvalidWindow
	}

	since := u.now().Add(-window)
	samples, err := u.positions.ByOccurrenceSince(ctx, occurrenceID, since)
	if err != nil {
		return nil, err
	}

	names := map[int64]entities.Provider{}
	out := make([]entities.LivePosition, 0, len(samples))
	for _, s := range samples {
		if s.Status != entities.PositionStatusAtivo || s.RecordedAt.Before(since) {
			continue
		}
		p, ok := names[s.PrestadorID]
		if !ok {
			p, err = u.providers.GetByID(ctx, s.PrestadorID)
			if err != nil {
				return nil, err
			}
			names[s.PrestadorID] = p
		}
		out = append(out, entities.LivePosition{
			PositionSample:    s,
			PrestadorNome:     p.Nome,
			PrestadorTelefone: p.Telefone,
		})
	}
	return out, nil
}
