package interfaces

import (
	"context"

	"ocorrencias_api/internal/domain/entities"
)

// IBillingPaymentRepository abstracts persistence for BillingPayment.
type IBillingPaymentRepository interface {
	Create(ctx context.Context, p entities.BillingPayment) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByOccurrenceID(ctx context.Context, occurrenceID int64) ([]entities.BillingPayment, error)
}
