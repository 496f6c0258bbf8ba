package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"ocorrencias_api/internal/adapter/http/handlers/mocks"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestTrackingHandler_Resolve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found and no longer trackable look the same", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc, "/v1/monitoramento")

		r := gin.New()
		r.GET("/v1/monitoramento/:hash", h.Resolve)

		uc.EXPECT().Resolve(gomock.Any(), "garbage").Return(entities.TrackingSnapshot{}, usecase.ErrTrackingNotFound)
		uc.EXPECT().Resolve(gomock.Any(), "closed").Return(entities.TrackingSnapshot{}, usecase.ErrTrackingNotFound)

		a := doJSON(r, http.MethodGet, "/v1/monitoramento/garbage", "")
		b := doJSON(r, http.MethodGet, "/v1/monitoramento/closed", "")
		if a.Code != http.StatusNotFound || b.Code != http.StatusNotFound {
			t.Fatalf("expected 404s, got %d and %d", a.Code, b.Code)
		}
		if a.Body.String() != b.Body.String() {
			t.Fatalf("responses differ: %s vs %s", a.Body.String(), b.Body.String())
		}
	})

	t.Run("store failure is a 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc, "/v1/monitoramento")

		r := gin.New()
		r.GET("/v1/monitoramento/:hash", h.Resolve)

		uc.EXPECT().Resolve(gomock.Any(), "x").Return(entities.TrackingSnapshot{}, errors.New("boom"))

		w := doJSON(r, http.MethodGet, "/v1/monitoramento/x", "")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc, "/v1/monitoramento")

		r := gin.New()
		r.GET("/v1/monitoramento/:hash", h.Resolve)

		uc.EXPECT().Resolve(gomock.Any(), "ok").Return(entities.TrackingSnapshot{
			OcorrenciaID: 3, Placa: "ABC1234", Status: entities.OccurrenceStatusEmAndamento, Rastreavel: true,
		}, nil)

		w := doJSON(r, http.MethodGet, "/v1/monitoramento/ok", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Header().Get("Cache-Control") != "no-store" {
			t.Fatalf("public snapshot must not be cached")
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["placa"] != "ABC1234" || body["rastreavel"] != true {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestTrackingHandler_IssueRevoke(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("issue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc, "/v1/monitoramento")

		r := routerAs(staffIdentity)
		r.POST("/v1/ocorrencias/:id/rastreamento", h.Issue)

		uc.EXPECT().Issue(gomock.Any(), int64(8)).Return(entities.Occurrence{ID: 8, TrackingHash: "abc123"}, nil)

		w := doJSON(r, http.MethodPost, "/v1/ocorrencias/8/rastreamento", "")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["url"] != "/v1/monitoramento/abc123" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("issue on closed occurrence", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc, "/v1/monitoramento")

		r := routerAs(staffIdentity)
		r.POST("/v1/ocorrencias/:id/rastreamento", h.Issue)

		uc.EXPECT().Issue(gomock.Any(), int64(8)).Return(entities.Occurrence{}, usecase.ErrNotTrackable)

		w := doJSON(r, http.MethodPost, "/v1/ocorrencias/8/rastreamento", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("revoke", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockITrackingUseCase(ctrl)
		h := NewTrackingHandler(uc, "/v1/monitoramento")

		r := routerAs(staffIdentity)
		r.DELETE("/v1/ocorrencias/:id/rastreamento", h.Revoke)

		uc.EXPECT().Revoke(gomock.Any(), int64(8)).Return(entities.Occurrence{ID: 8}, nil)

		w := doJSON(r, http.MethodDelete, "/v1/ocorrencias/8/rastreamento", "")
		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})
}
