package entities

import (
	"encoding/json"
	"time"
)

type PaymentStatus string

const (
	PaymentStatusPendente PaymentStatus = "pendente"
	PaymentStatusAprovado PaymentStatus = "aprovado"
	PaymentStatusNegado   PaymentStatus = "negado"
)

// BillingPayment is a charge issued to the client for the expenses of a
// closed occurrence.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI ocorrencia_id-index: ocorrencia_id
//
// Referencia is the external_reference sent to Mercado Pago, derived from
// the occurrence id so a charge can be reconciled from either side.
// MPPayloadRaw keeps the Mercado Pago response body as received; MPPayload
// is the parsed form kept for querying.
type BillingPayment struct {
	ID           string        `json:"id"`
	OcorrenciaID int64         `json:"ocorrencia_id"`
	ClienteID    int64         `json:"cliente_id"`
	Cliente      string        `json:"cliente"`
	Referencia   string        `json:"referencia"`
	Metodo       string        `json:"metodo"`
	Valor        float64       `json:"valor"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func (p BillingPayment) IsApproved() bool { return p.Status == PaymentStatusAprovado }
