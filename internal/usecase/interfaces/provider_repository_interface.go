package interfaces

import (
	"context"

	"ocorrencias_api/internal/domain/entities"
)

// IProviderRepository abstracts persistence for Provider. Not found is a
// zero Provider.
type IProviderRepository interface {
	Create(ctx context.Context, p entities.Provider) (entities.Provider, error)
	GetByID(ctx context.Context, id int64) (entities.Provider, error)
	GetByName(ctx context.Context, name string) (entities.Provider, error)
	List(ctx context.Context) ([]entities.Provider, error)
}

// IClientRepository is the read side of the client registry.
type IClientRepository interface {
	GetByID(ctx context.Context, id int64) (entities.Client, error)
	GetByName(ctx context.Context, name string) (entities.Client, error)
}

// IAccountRepository resolves login accounts.
type IAccountRepository interface {
	GetByID(ctx context.Context, id int64) (entities.Account, error)
	GetByEmail(ctx context.Context, email string) (entities.Account, error)
}
