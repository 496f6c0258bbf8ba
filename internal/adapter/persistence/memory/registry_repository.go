package memory

import (
	"context"
	"sort"
	"strings"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

type ProviderRepository struct {
	s *Store
}

var _ interfaces.IProviderRepository = (*ProviderRepository)(nil)

func NewProviderRepository(s *Store) *ProviderRepository {
	return &ProviderRepository{s: s}
}

func (r *ProviderRepository) Create(ctx context.Context, p entities.Provider) (entities.Provider, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p.ID = r.s.next("providers")
	r.s.providers[p.ID] = p
	return p, nil
}

func (r *ProviderRepository) GetByID(ctx context.Context, id int64) (entities.Provider, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.providers[id], nil
}

func (r *ProviderRepository) GetByName(ctx context.Context, name string) (entities.Provider, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.providers {
		if p.Nome == name {
			return p, nil
		}
	}
	return entities.Provider{}, nil
}

func (r *ProviderRepository) List(ctx context.Context) ([]entities.Provider, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]entities.Provider, 0, len(r.s.providers))
	for _, p := range r.s.providers {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, nil
}

type ClientRepository struct {
	s *Store
}

var _ interfaces.IClientRepository = (*ClientRepository)(nil)

func NewClientRepository(s *Store) *ClientRepository {
	return &ClientRepository{s: s}
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (entities.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.clients[id], nil
}

func (r *ClientRepository) GetByName(ctx context.Context, name string) (entities.Client, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, c := range r.s.clients {
		if c.Nome == name {
			return c, nil
		}
	}
	return entities.Client{}, nil
}

type AccountRepository struct {
	s *Store
}

var _ interfaces.IAccountRepository = (*AccountRepository)(nil)

func NewAccountRepository(s *Store) *AccountRepository {
	return &AccountRepository{s: s}
}

func (r *AccountRepository) GetByID(ctx context.Context, id int64) (entities.Account, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.s.accounts[id], nil
}

func (r *AccountRepository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, a := range r.s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return entities.Account{}, nil
}
