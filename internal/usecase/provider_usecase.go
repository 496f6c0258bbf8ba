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

var ErrProviderNameTaken = errors.New("provider name already in use")

// IProviderUseCase is the small provider registry the dispatch flow needs.
type IProviderUseCase interface {
	Create(ctx context.Context, p entities.Provider) (entities.Provider, error)
	GetByID(ctx context.Context, id int64) (entities.Provider, error)
	List(ctx context.Context) ([]entities.Provider, error)
}

type ProviderUseCase struct {
	repo interfaces.IProviderRepository
	now  func() time.Time
}

var _ IProviderUseCase = (*ProviderUseCase)(nil)

func NewProviderUseCase(repo interfaces.IProviderRepository) *ProviderUseCase {
	return &ProviderUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

// Create enforces unique names: the name is still what staff type when
// dispatching, so two providers sharing one would make that ambiguous.
func (u *ProviderUseCase) Create(ctx context.Context, p entities.Provider) (entities.Provider, error) {
	p.Nome = strings.TrimSpace(p.Nome)
	if p.Nome == "" {
		return entities.Provider{}, fmt.Errorf("%w: nome", ErrMissingField)
	}
	for _, v := range []float64{p.ValorAcionamento, p.ValorHoraAdicional, p.ValorKmAdicional, p.FranquiaHoras, p.FranquiaKm} {
		if v < 0 {
			return entities.Provider{}, ErrInvalidAmount
		}
	}

	existing, err := u.repo.GetByName(ctx, p.Nome)
	if err != nil {
		return entities.Provider{}, err
	}
	if existing.ID != 0 {
		return entities.Provider{}, ErrProviderNameTaken
	}

	p.ID = 0
	p.CriadoEm = u.now()
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		return entities.Provider{}, err
	}
	log.Printf("[provider][usecase] created prestador_id=%d aprovado=%t", created.ID, created.Aprovado)
	return created, nil
}

func (u *ProviderUseCase) GetByID(ctx context.Context, id int64) (entities.Provider, error) {
	if id <= 0 {
		return entities.Provider{}, ErrProviderNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Provider{}, err
	}
	if p.ID == 0 {
		return entities.Provider{}, ErrProviderNotFound
	}
	return p, nil
}

func (u *ProviderUseCase) List(ctx context.Context) ([]entities.Provider, error) {
	return u.repo.List(ctx)
}
