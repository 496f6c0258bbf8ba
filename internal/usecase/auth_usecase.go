package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTooManyAttempts    = errors.New("too many failed login attempts")
	ErrUnauthorized       = errors.New("unauthorized")
)

// LoginResult is what a successful login hands back to the caller.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  entities.AuthIdentity
}

// IAuthUseCase authenticates accounts and verifies bearer tokens.
type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	Authenticate(ctx context.Context, token string) (entities.AuthIdentity, error)
}

type AuthUseCase struct {
	accounts interfaces.IAccountRepository
	tokens   interfaces.ITokenService
	hasher   interfaces.IPasswordHasher
	throttle interfaces.ILoginThrottle
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(
	accounts interfaces.IAccountRepository,
	tokens interfaces.ITokenService,
	hasher interfaces.IPasswordHasher,
	throttle interfaces.ILoginThrottle,
) *AuthUseCase {
	return &AuthUseCase{accounts: accounts, tokens: tokens, hasher: hasher, throttle: throttle}
}

// Login throttles by email rather than by client IP, so the counter follows
// the account under attack and survives across processes when backed by
// Redis.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (LoginResult, error) {
	key := strings.ToLower(strings.TrimSpace(email))
	if key == "" || password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	if u.throttle != nil {
		allowed, err := u.throttle.Allowed(ctx, key)
		if err != nil {
			log.Printf("[auth][usecase] throttle check failed; allowing login err=%v", err)
		} else if !allowed {
			return LoginResult{}, ErrTooManyAttempts
		}
	}

	acc, err := u.accounts.GetByEmail(ctx, key)
	if err != nil {
		return LoginResult{}, err
	}
	if acc.ID == 0 || !acc.Ativo || u.hasher.Compare(acc.SenhaHash, password) != nil {
		u.registerFailure(ctx, key)
		return LoginResult{}, ErrInvalidCredentials
	}

	if u.throttle != nil {
		if err := u.throttle.Reset(ctx, key); err != nil {
			log.Printf("[auth][usecase] throttle reset failed account_id=%d err=%v", acc.ID, err)
		}
	}

	token, exp, err := u.tokens.Issue(acc)
	if err != nil {
		return LoginResult{}, err
	}
	log.Printf("[auth][usecase] login account_id=%d tipo=%s", acc.ID, acc.Tipo)
	return LoginResult{
		Token:     token,
		ExpiresAt: exp,
		Identity: entities.AuthIdentity{
			SubjectID:   acc.ID,
			Kind:        acc.Tipo,
			Permissions: acc.Permissoes,
			ExpiresAt:   exp,
		},
	}, nil
}

func (u *AuthUseCase) Authenticate(_ context.Context, token string) (entities.AuthIdentity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.AuthIdentity{}, ErrUnauthorized
	}
	identity, err := u.tokens.Verify(token)
	if err != nil {
		return entities.AuthIdentity{}, ErrUnauthorized
	}
	return identity, nil
}

func (u *AuthUseCase) registerFailure(ctx context.Context, key string) {
	if u.throttle == nil {
		return
	}
	if err := u.throttle.RegisterFailure(ctx, key); err != nil {
		log.Printf("[auth][usecase] throttle register failed err=%v", err)
	}
}
