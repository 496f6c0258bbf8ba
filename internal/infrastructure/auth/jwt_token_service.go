package auth

import (
	"errors"
	"strconv"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "ocorrencias-api"

var errEmptySecret = errors.New("jwt secret must not be empty")

// claims is the bearer token body. sub carries the account id.
type claims struct {
	Tipo       string   `json:"tipo"`
	Permissoes []string `json:"permissoes,omitempty"`
	jwt.RegisteredClaims
}

// JWTTokenService signs HS256 tokens with a single shared secret.
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenService = (*JWTTokenService)(nil)

func NewJWTTokenService(secret string, ttl time.Duration) (*JWTTokenService, error) {
	if secret == "" {
		return nil, errEmptySecret
	}
	return &JWTTokenService{
		secret: []byte(secret),
		ttl:    ttl,
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *JWTTokenService) Issue(account entities.Account) (string, time.Time, error) {
	now := s.now()
	exp := now.Add(s.ttl)
	c := claims{
		Tipo:       string(account.Tipo),
		Permissoes: account.Permissoes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(account.ID, 10),
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
			ID:        uuid.NewString(),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Verify accepts only HS256 tokens signed with the configured secret that
// carry an expiry, a numeric subject and a known kind.
func (s *JWTTokenService) Verify(token string) (entities.AuthIdentity, error) {
	var c claims
	parsed, err := jwt.ParseWithClaims(token, &c, func(*jwt.Token) (interface{}, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return entities.AuthIdentity{}, interfaces.ErrInvalidToken
	}

	subject, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || subject <= 0 {
		return entities.AuthIdentity{}, interfaces.ErrInvalidToken
	}
	kind := entities.IdentityKind(c.Tipo)
	if !kind.Valid() {
		return entities.AuthIdentity{}, interfaces.ErrInvalidToken
	}

	return entities.AuthIdentity{
		SubjectID:   subject,
		Kind:        kind,
		Permissions: c.Permissoes,
		ExpiresAt:   c.ExpiresAt.Time,
	}, nil
}
