package request

import "encoding/json"

// BillingPaymentCreateRequest documents the body of POST
// /ocorrencias/:id/cobranca. The Mercado Pago payload may also be sent
// unwrapped.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.
type BillingPaymentCreateRequest struct {
	MPPayload json.RawMessage `json:"mp_payload" swaggertype:"object"`
}
