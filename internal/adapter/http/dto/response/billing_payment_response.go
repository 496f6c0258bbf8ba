package response

import (
	"time"

	"ocorrencias_api/internal/domain/entities"
)

type BillingPaymentResponse struct {
	PaymentID    string    `json:"payment_id"`
	ID           string    `json:"id"`
	OcorrenciaID int64     `json:"ocorrencia_id"`
	ClienteID    int64     `json:"cliente_id,omitempty"`
	Cliente      string    `json:"cliente,omitempty"`
	Referencia   string    `json:"referencia"`
	Metodo       string    `json:"metodo,omitempty"`
	Aprovado     bool      `json:"aprovado"`
	Valor        float64   `json:"valor"`
	PaymentDate  time.Time `json:"payment_date"`
	Date         time.Time `json:"date"`
	Status       string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromBillingPayment(p entities.BillingPayment) BillingPaymentResponse {
	return BillingPaymentResponse{
		PaymentID:    p.ID,
		ID:           p.ID,
		OcorrenciaID: p.OcorrenciaID,
		ClienteID:    p.ClienteID,
		Cliente:      p.Cliente,
		Referencia:   p.Referencia,
		Metodo:       p.Metodo,
		Aprovado:     p.IsApproved(),
		Valor:        p.Valor,
		PaymentDate:  p.Date,
		Date:         p.Date,
		Status:       string(p.Status),
		MPPayloadRaw: string(p.MPPayloadRaw),
		MPPayload:    p.MPPayload,
	}
}

func FromBillingPayments(list []entities.BillingPayment) []BillingPaymentResponse {
	out := make([]BillingPaymentResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromBillingPayment(p))
	}
	return out
}
