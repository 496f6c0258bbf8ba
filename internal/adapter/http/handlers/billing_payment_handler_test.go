package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ocorrencias_api/internal/adapter/http/handlers/mocks"
	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestBillingPaymentHandler_ChargeOccurrence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/ocorrencias/:id/cobranca", h.ChargeOccurrence)

		req := httptest.NewRequest(http.MethodPost, "/v1/ocorrencias/abc/cobranca", bytes.NewBufferString("{}"))
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload is handed to the usecase as nil", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/ocorrencias/:id/cobranca", h.ChargeOccurrence)

		uc.EXPECT().ChargeOccurrence(gomock.Any(), int64(12), gomock.Nil()).Return(entities.BillingPayment{}, usecase.ErrInvalidMPPayload)

		req := httptest.NewRequest(http.MethodPost, "/v1/ocorrencias/12/cobranca", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("not billable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/ocorrencias/:id/cobranca", h.ChargeOccurrence)

		uc.EXPECT().ChargeOccurrence(gomock.Any(), int64(12), gomock.Any()).Return(entities.BillingPayment{}, usecase.ErrOccurrenceNotBillable)

		req := httptest.NewRequest(http.MethodPost, "/v1/ocorrencias/12/cobranca", bytes.NewBufferString(`{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)

		r := gin.New()
		r.POST("/v1/ocorrencias/:id/cobranca", h.ChargeOccurrence)

		now := time.Now().UTC()
		uc.EXPECT().ChargeOccurrence(gomock.Any(), int64(12), gomock.Any()).
			DoAndReturn(func(_ any, _ int64, payload json.RawMessage) (entities.BillingPayment, error) {
				if string(payload) != `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}` {
					t.Fatalf("envelope not unwrapped: %s", payload)
				}
				return entities.BillingPayment{ID: "pay-1", OcorrenciaID: 12, Valor: 300, Date: now, Status: entities.PaymentStatusAprovado}, nil
			})

		req := httptest.NewRequest(http.MethodPost, "/v1/ocorrencias/12/cobranca", bytes.NewBufferString(`{"mp_payload":{"payment_method_id":"pix","payer":{"email":"x@test.com"}}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["payment_id"] != "pay-1" || body["ocorrencia_id"] != float64(12) {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestBillingPaymentHandler_ListAndGet(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list returns empty array", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/ocorrencias/:id/cobrancas", h.ListByOccurrence)

		uc.EXPECT().ListByOccurrenceID(gomock.Any(), int64(5)).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/ocorrencias/5/cobrancas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "[]" {
			t.Fatalf("expected 200 [], got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIBillingPaymentUseCase(ctrl)
		h := NewBillingPaymentHandler(uc)

		r := gin.New()
		r.GET("/v1/cobrancas/:payment_id", h.GetByID)

		uc.EXPECT().GetByID(gomock.Any(), "pay-x").Return(entities.BillingPayment{}, usecase.ErrBillingPaymentNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/cobrancas/pay-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}
