package interfaces

import (
	"context"
	"errors"
	"time"

	"ocorrencias_api/internal/domain/entities"
)

// ErrInvalidToken covers every verification failure: bad signature,
// expired, malformed or missing subject. Callers must not distinguish them.
var ErrInvalidToken = errors.New("invalid token")

// ITokenService signs and verifies bearer tokens.
type ITokenService interface {
	Issue(account entities.Account) (token string, expiresAt time.Time, err error)
	Verify(token string) (entities.AuthIdentity, error)
}

// IPasswordHasher hides the hashing scheme.
type IPasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// ILoginThrottle counts failed logins per key.
type ILoginThrottle interface {
	Allowed(ctx context.Context, key string) (bool, error)
	RegisterFailure(ctx context.Context, key string) error
	Reset(ctx context.Context, key string) error
}
