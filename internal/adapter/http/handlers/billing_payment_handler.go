package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	response "ocorrencias_api/internal/adapter/http/dto/response"
	"ocorrencias_api/internal/usecase"

	"github.com/gin-gonic/gin"
)

// BillingPaymentHandler handles HTTP requests for occurrence charges.
type BillingPaymentHandler struct {
	usecase usecase.IBillingPaymentUseCase
}

func NewBillingPaymentHandler(uc usecase.IBillingPaymentUseCase) *BillingPaymentHandler {
	return &BillingPaymentHandler{usecase: uc}
}

// ChargeOccurrence godoc
// @Summary  Charge the client for a closed occurrence's expenses
// @Tags     cobranca
// @Accept   json
// @Produce  json
// @Param    id   path int                                 true "occurrence id"
// @Param    body body request.BillingPaymentCreateRequest true "Mercado Pago payload (wrapped or raw)"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Security Bearer
// @Router   /ocorrencias/{id}/cobranca [post]
func (h *BillingPaymentHandler) ChargeOccurrence(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	log.Printf("[billing][handler] charge start ocorrencia_id=%d", id)

	mpPayload, err := readMPPayload(c)
	if err != nil {
		// The use case decides whether an unreadable payload is fatal.
		log.Printf("[billing][handler] payload unreadable ocorrencia_id=%d err=%v", id, err)
		mpPayload = nil
	}

	created, err := h.usecase.ChargeOccurrence(c.Request.Context(), id, mpPayload)
	if err != nil {
		log.Printf("[billing][handler] charge failed ocorrencia_id=%d err=%v", id, err)
		writeError(c, err)
		return
	}
	log.Printf("[billing][handler] charge success ocorrencia_id=%d payment_id=%s status=%s", id, created.ID, created.Status)

	c.JSON(http.StatusOK, response.FromBillingPayment(created))
}

// ListByOccurrence godoc
// @Summary  Charges of an occurrence, newest first
// @Tags     cobranca
// @Produce  json
// @Param    id path int true "occurrence id"
// @Success  200 {array} response.BillingPaymentResponse
// @Security Bearer
// @Router   /ocorrencias/{id}/cobrancas [get]
func (h *BillingPaymentHandler) ListByOccurrence(c *gin.Context) {
	id, ok := occurrenceIDParam(c)
	if !ok {
		return
	}
	payments, err := h.usecase.ListByOccurrenceID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[billing][handler] list failed ocorrencia_id=%d err=%v", id, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayments(payments))
}

// GetByID godoc
// @Summary  One charge
// @Tags     cobranca
// @Produce  json
// @Param    payment_id path string true "payment id"
// @Success  200 {object} response.BillingPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Security Bearer
// @Router   /cobrancas/{payment_id} [get]
func (h *BillingPaymentHandler) GetByID(c *gin.Context) {
	paymentID := c.Param("payment_id")
	p, err := h.usecase.GetByID(c.Request.Context(), paymentID)
	if err != nil {
		log.Printf("[billing][handler] get failed payment_id=%s err=%v", paymentID, err)
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromBillingPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}
