package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"ocorrencias_api/internal/adapter/http/handlers/mocks"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestPortalHandler_Provider(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("current hides tracking hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assignments := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewPortalHandler(assignments, mocks.NewMockIOccurrenceUseCase(ctrl))

		r := routerAs(providerIdentity)
		r.GET("/v1/prestador/ocorrencias", h.ProviderCurrent)

		assignments.EXPECT().CurrentAssignments(gomock.Any(), providerIdentity).
			Return([]entities.Occurrence{{ID: 1, PrestadorID: 2, TrackingHash: "secret", Status: entities.OccurrenceStatusEmAndamento}}, nil)

		w := doJSON(r, http.MethodGet, "/v1/prestador/ocorrencias", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
		if _, ok := body[0]["tracking_hash"]; ok {
			t.Fatalf("tracking hash leaked to provider: %s", w.Body.String())
		}
	})

	t.Run("arrival uses the resolved provider id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assignments := mocks.NewMockIAssignmentUseCase(ctrl)
		occurrences := mocks.NewMockIOccurrenceUseCase(ctrl)
		h := NewPortalHandler(assignments, occurrences)

		r := routerAs(providerIdentity)
		r.POST("/v1/prestador/ocorrencias/:id/chegada", h.ProviderArrival)

		assignments.EXPECT().ResolveProvider(gomock.Any(), providerIdentity).Return(entities.Provider{ID: 2, Nome: "João"}, nil)
		occurrences.EXPECT().RegisterArrival(gomock.Any(), int64(11), int64(2)).Return(entities.Occurrence{}, usecase.ErrArrivalAlreadySet)

		w := doJSON(r, http.MethodPost, "/v1/prestador/ocorrencias/11/chegada", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assignments := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewPortalHandler(assignments, mocks.NewMockIOccurrenceUseCase(ctrl))

		r := routerAs(providerIdentity)
		r.GET("/v1/prestador/ocorrencias/historico", h.ProviderHistory)

		assignments.EXPECT().AssignmentHistory(gomock.Any(), providerIdentity).Return(nil, usecase.ErrAccountNotFound)

		w := doJSON(r, http.MethodGet, "/v1/prestador/ocorrencias/historico", "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestPortalHandler_Client(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list forwards the status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assignments := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewPortalHandler(assignments, mocks.NewMockIOccurrenceUseCase(ctrl))

		r := routerAs(clientIdentity)
		r.GET("/v1/cliente/ocorrencias", h.ClientList)

		assignments.EXPECT().ClientOccurrences(gomock.Any(), clientIdentity, "concluida").Return([]entities.Occurrence{}, nil)

		w := doJSON(r, http.MethodGet, "/v1/cliente/ocorrencias?status=concluida", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("detail of another tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		assignments := mocks.NewMockIAssignmentUseCase(ctrl)
		h := NewPortalHandler(assignments, mocks.NewMockIOccurrenceUseCase(ctrl))

		r := routerAs(clientIdentity)
		r.GET("/v1/cliente/ocorrencias/:id", h.ClientDetail)

		assignments.EXPECT().VisibleOccurrence(gomock.Any(), clientIdentity, int64(77)).Return(entities.Occurrence{}, usecase.ErrOccurrenceNotFound)

		w := doJSON(r, http.MethodGet, "/v1/cliente/ocorrencias/77", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
