package auth

import (
	"errors"
	"testing"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTTokenService_RoundTrip(t *testing.T) {
	svc, err := NewJWTTokenService("secret", time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	token, exp, err := svc.Issue(entities.Account{ID: 42, Tipo: entities.IdentityKindStaff, Permissoes: []string{entities.PermissionOccurrencesRead}})
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	id, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if id.SubjectID != 42 || id.Kind != entities.IdentityKindStaff || !id.HasPermission(entities.PermissionOccurrencesRead) {
		t.Fatalf("unexpected identity %+v", id)
	}
	if !id.ExpiresAt.Equal(exp.Truncate(time.Second)) {
		t.Fatalf("expiry mismatch: %v vs %v", id.ExpiresAt, exp)
	}
}

func TestJWTTokenService_Rejects(t *testing.T) {
	svc, _ := NewJWTTokenService("secret", time.Hour)
	other, _ := NewJWTTokenService("other", time.Hour)
	valid, _, _ := other.Issue(entities.Account{ID: 1, Tipo: entities.IdentityKindCliente})

	expired, _ := NewJWTTokenService("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, _ := expired.Issue(entities.Account{ID: 1, Tipo: entities.IdentityKindCliente})

	sign := func(c jwt.Claims, method jwt.SigningMethod, key interface{}) string {
		s, err := jwt.NewWithClaims(method, c).SignedString(key)
		if err != nil {
			t.Fatalf("sign: %v", err)
		}
		return s
	}
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))

	cases := map[string]string{
		"garbage":       "not-a-token",
		"wrong secret":  valid,
		"expired":       old,
		"unsigned":      sign(claims{Tipo: "staff", RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: issuer, ExpiresAt: future}}, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType),
		"no expiry":     sign(claims{Tipo: "staff", RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: issuer}}, jwt.SigningMethodHS256, []byte("secret")),
		"no subject":    sign(claims{Tipo: "staff", RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer, ExpiresAt: future}}, jwt.SigningMethodHS256, []byte("secret")),
		"unknown kind":  sign(claims{Tipo: "root", RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: issuer, ExpiresAt: future}}, jwt.SigningMethodHS256, []byte("secret")),
		"wrong issuer":  sign(claims{Tipo: "staff", RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: "elsewhere", ExpiresAt: future}}, jwt.SigningMethodHS256, []byte("secret")),
		"other hs algo": sign(claims{Tipo: "staff", RegisteredClaims: jwt.RegisteredClaims{Subject: "1", Issuer: issuer, ExpiresAt: future}}, jwt.SigningMethodHS512, []byte("secret")),
	}
	for name, token := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := svc.Verify(token); !errors.Is(err, interfaces.ErrInvalidToken) {
				t.Fatalf("expected ErrInvalidToken, got %v", err)
			}
		})
	}
}

func TestNewJWTTokenService_EmptySecret(t *testing.T) {
	if _, err := NewJWTTokenService("", time.Hour); err == nil {
		t.Fatalf("expected error")
	}
}

func TestBcryptHasher(t *testing.T) {
	h := &BcryptHasher{cost: 4}
	hash, err := h.Hash("s3nha")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if err := h.Compare(hash, "s3nha"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := h.Compare(hash, "wrong"); err == nil {
		t.Fatalf("expected mismatch")
	}
}
