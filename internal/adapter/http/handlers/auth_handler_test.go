package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"ocorrencias_api/internal/adapter/http/handlers/mocks"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		body string
		err  error
		want int
	}{
		{"missing fields", `{"email":"a@b.com"}`, nil, http.StatusBadRequest},
		{"wrong password", `{"email":"a@b.com","senha":"x"}`, usecase.ErrInvalidCredentials, http.StatusUnauthorized},
		{"throttled", `{"email":"a@b.com","senha":"x"}`, usecase.ErrTooManyAttempts, http.StatusTooManyRequests},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockIAuthUseCase(ctrl)
			h := NewAuthHandler(uc)

			r := gin.New()
			r.POST("/v1/auth/login", h.Login)

			if tc.err != nil {
				uc.EXPECT().Login(gomock.Any(), "a@b.com", "x").Return(usecase.LoginResult{}, tc.err)
			}

			w := doJSON(r, http.MethodPost, "/v1/auth/login", tc.body)
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIAuthUseCase(ctrl)
		h := NewAuthHandler(uc)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		exp := time.Now().Add(time.Hour).UTC()
		uc.EXPECT().Login(gomock.Any(), "a@b.com", "pw").Return(usecase.LoginResult{
			Token: "tok", ExpiresAt: exp, Identity: entities.AuthIdentity{SubjectID: 5, Kind: entities.IdentityKindCliente},
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/auth/login", `{"email":"a@b.com","senha":"pw"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["token"] != "tok" || body["tipo"] != "cliente" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	h := NewAuthHandler(mocks.NewMockIAuthUseCase(ctrl))

	r := routerAs(staffIdentity)
	r.GET("/v1/auth/me", h.Me)

	w := doJSON(r, http.MethodGet, "/v1/auth/me", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["tipo"] != "staff" || body["id"] != float64(1) {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}
