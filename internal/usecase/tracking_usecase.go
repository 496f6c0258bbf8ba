package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

var (
	// ErrTrackingNotFound is the only failure Resolve reports for a bad,
	// revoked or no-longer-trackable token.
	ErrTrackingNotFound = errors.New("tracking link not found")
	ErrNotTrackable     = errors.New("occurrence is not in a trackable state")
)

const trackingHashBytes = 32

// ITrackingUseCase is the public tracking gateway.
type ITrackingUseCase interface {
	Issue(ctx context.Context, occurrenceID int64) (entities.Occurrence, error)
	Revoke(ctx context.Context, occurrenceID int64) (entities.Occurrence, error)
	Resolve(ctx context.Context, hash string) (entities.TrackingSnapshot, error)
}

type TrackingUseCase struct {
	occurrences interfaces.IOccurrenceRepository
	providers   interfaces.IProviderRepository
	positions   interfaces.IPositionRepository
	newHash     func() (string, error)
	now         func() time.Time
}

var _ ITrackingUseCase = (*TrackingUseCase)(nil)

func NewTrackingUseCase(
	occurrences interfaces.IOccurrenceRepository,
	providers interfaces.IProviderRepository,
	positions interfaces.IPositionRepository,
) *TrackingUseCase {
	return &TrackingUseCase{
		occurrences: occurrences,
		providers:   providers,
		positions:   positions,
		newHash:     randomTrackingHash,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Issue replaces any existing hash with a fresh one. Old links stop
// working. A version conflict is returned as-is and must not be retried
// blindly, since a retry would replace the hash a concurrent caller got.
func (u *TrackingUseCase) Issue(ctx context.Context, occurrenceID int64) (entities.Occurrence, error) {
	current, err := u.load(ctx, occurrenceID)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if !current.Status.IsTrackable() {
		return entities.Occurrence{}, fmt.Errorf("%w: status is %s", ErrNotTrackable, current.Status)
	}

	hash, err := u.newHash()
	if err != nil {
		return entities.Occurrence{}, err
	}

	next := cloneOccurrence(current)
	next.TrackingHash = hash
	saved, err := u.write(ctx, current, next)
	if err != nil {
		log.Printf("[tracking][usecase] issue failed id=%d err=%v", occurrenceID, err)
		return entities.Occurrence{}, err
	}
	log.Printf("[tracking][usecase] issued id=%d hash=%s replaced=%t", occurrenceID, hashPrefix(hash), current.TrackingHash != "")
	return saved, nil
}

func (u *TrackingUseCase) Revoke(ctx context.Context, occurrenceID int64) (entities.Occurrence, error) {
	current, err := u.load(ctx, occurrenceID)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if current.TrackingHash == "" {
		return current, nil
	}

	next := cloneOccurrence(current)
	next.TrackingHash = ""
	saved, err := u.write(ctx, current, next)
	if err != nil {
		log.Printf("[tracking][usecase] revoke failed id=%d err=%v", occurrenceID, err)
		return entities.Occurrence{}, err
	}
	log.Printf("[tracking][usecase] revoked id=%d hash=%s", occurrenceID, hashPrefix(current.TrackingHash))
	return saved, nil
}

// Resolve fails closed: unknown tokens and tokens of occurrences that are
// no longer trackable look exactly the same to the caller.
func (u *TrackingUseCase) Resolve(ctx context.Context, hash string) (entities.TrackingSnapshot, error) {
	hash = strings.TrimSpace(hash)
	if hash == "" {
		return entities.TrackingSnapshot{}, ErrTrackingNotFound
	}

	o, err := u.occurrences.GetByTrackingHash(ctx, hash)
	if err != nil {
		return entities.TrackingSnapshot{}, err
	}
	if o.ID == 0 || o.TrackingHash != hash || !o.Status.IsTrackable() {
		return entities.TrackingSnapshot{}, ErrTrackingNotFound
	}

	snap := entities.TrackingSnapshot{
		OcorrenciaID: o.ID,
		Tipo:         o.Tipo,
		Placa:        o.Placa1,
		Modelo:       o.Modelo,
		Cor:          o.Cor,
		Status:       o.Status,
		Inicio:       o.Inicio,
		Chegada:      o.Chegada,
		Rastreavel:   true,
	}

	if o.PrestadorID != 0 {
		p, err := u.providers.GetByID(ctx, o.PrestadorID)
		if err != nil {
			return entities.TrackingSnapshot{}, err
		}
		snap.PrestadorNome = p.Nome
		snap.PrestadorTelefone = p.Telefone
	}

	last, err := u.positions.LatestByOccurrence(ctx, o.ID)
	if err != nil {
		return entities.TrackingSnapshot{}, err
	}
	if last.ID != "" {
		snap.UltimaPosicao = &last
	}
	return snap, nil
}

func (u *TrackingUseCase) load(ctx context.Context, occurrenceID int64) (entities.Occurrence, error) {
	if occurrenceID <= 0 {
		return entities.Occurrence{}, ErrInvalidOccurrenceID
	}
	o, err := u.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		return entities.Occurrence{}, err
	}
	if o.ID == 0 {
		return entities.Occurrence{}, ErrOccurrenceNotFound
	}
	return o, nil
}

func (u *TrackingUseCase) write(ctx context.Context, current, next entities.Occurrence) (entities.Occurrence, error) {
	next.Version = current.Version + 1
	next.AtualizadoEm = u.now()
	saved, err := u.occurrences.Save(ctx, interfaces.OccurrenceWrite{
		Occurrence:      next,
		ExpectedVersion: current.Version,
	})
	if err != nil {
		return entities.Occurrence{}, mapWriteError(err)
	}
	return saved, nil
}

func randomTrackingHash() (string, error) {
	b := make([]byte, trackingHashBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func hashPrefix(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
