package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"ocorrencias_api/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

const defaultChargeTimeout = 30 * time.Second

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
	ErrInvalidCharge                   = errors.New("charge needs a positive amount and an external reference")
)

// MercadoPagoGateway charges a client for the expenses of one occurrence.
// Mock mode lives in the billing use case; this type always calls the API.
type MercadoPagoGateway struct {
	client  payment.Client
	timeout time.Duration
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	accessToken = strings.TrimSpace(accessToken)
	if accessToken == "" {
		log.Printf("[billing][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[billing][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[billing][gateway] Mercado Pago client initialized")
	return &MercadoPagoGateway{client: payment.NewClient(cfg), timeout: defaultChargeTimeout}, nil
}

// CreatePayment submits the charge built by the billing use case. The
// amount and external_reference are set from the stored occurrence, so a
// request missing either never reaches Mercado Pago.
func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, requestPayload json.RawMessage) (string, string, json.RawMessage, error) {
	if g == nil || g.client == nil {
		log.Printf("[billing][gateway] gateway not configured")
		return "", "", nil, ErrMercadoPagoGatewayNotConfigured
	}

	var req payment.Request
	if err := json.Unmarshal(requestPayload, &req); err != nil {
		log.Printf("[billing][gateway] payload unmarshal failed err=%v", err)
		return "", "", nil, err
	}
	if req.TransactionAmount <= 0 || strings.TrimSpace(req.ExternalReference) == "" {
		log.Printf("[billing][gateway] refusing charge amount=%.2f external_reference=%q", req.TransactionAmount, req.ExternalReference)
		return "", "", nil, ErrInvalidCharge
	}
	log.Printf("[billing][gateway] create start external_reference=%s amount=%.2f method=%s", req.ExternalReference, req.TransactionAmount, req.PaymentMethodID)

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	resp, err := g.client.Create(ctx, req)
	if err != nil {
		log.Printf("[billing][gateway] sdk create failed external_reference=%s err=%v", req.ExternalReference, err)
		return "", "", nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[billing][gateway] response marshal failed err=%v", err)
		return "", "", nil, err
	}
	log.Printf("[billing][gateway] create success external_reference=%s provider_payment_id=%d provider_status=%s", req.ExternalReference, resp.ID, resp.Status)
	return fmt.Sprintf("%d", resp.ID), resp.Status, b, nil
}
