package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway abstracts the payment provider used to charge clients
// for occurrence expenses. The raw provider response is kept for audit.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
