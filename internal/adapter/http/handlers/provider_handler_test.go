package handlers

import (
	"net/http"
	"testing"

	"ocorrencias_api/internal/adapter/http/handlers/mocks"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestProviderHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create duplicate name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProviderUseCase(ctrl)
		h := NewProviderHandler(uc)

		r := routerAs(staffIdentity)
		r.POST("/v1/prestadores", h.Create)

		uc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Provider{}, usecase.ErrProviderNameTaken)

		w := doJSON(r, http.MethodPost, "/v1/prestadores", `{"nome":"João"}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("create without name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		h := NewProviderHandler(mocks.NewMockIProviderUseCase(ctrl))

		r := routerAs(staffIdentity)
		r.POST("/v1/prestadores", h.Create)

		w := doJSON(r, http.MethodPost, "/v1/prestadores", `{"telefone":"11"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIProviderUseCase(ctrl)
		h := NewProviderHandler(uc)

		r := routerAs(staffIdentity)
		r.GET("/v1/prestadores", h.List)

		uc.EXPECT().List(gomock.Any()).Return([]entities.Provider{{ID: 1, Nome: "João", Aprovado: true}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/prestadores", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}
