package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"ocorrencias_api/internal/domain/entities"
	"ocorrencias_api/internal/usecase/interfaces"
)

var (
	ErrBillingPaymentNotFound         = errors.New("billing payment not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrOccurrenceNotBillable          = errors.New("occurrence is not billable")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)

// BillingOptions tunes the Mercado Pago integration.
type BillingOptions struct {
	// MockMode skips the gateway and records an approved payment.
	MockMode bool
	// SandboxPayerEmail fills payer.email when the request has no payer.
	SandboxPayerEmail string
}

// IBillingPaymentUseCase charges the client for a closed occurrence's
// expenses.
type IBillingPaymentUseCase interface {
	ChargeOccurrence(ctx context.Context, occurrenceID int64, mpPayload json.RawMessage) (entities.BillingPayment, error)
	GetByID(ctx context.Context, id string) (entities.BillingPayment, error)
	ListByOccurrenceID(ctx context.Context, occurrenceID int64) ([]entities.BillingPayment, error)
}

type BillingPaymentUseCase struct {
	repo        interfaces.IBillingPaymentRepository
	occurrences interfaces.IOccurrenceRepository
	gateway     interfaces.IPaymentGateway
	opts        BillingOptions
	now         func() time.Time
}

var _ IBillingPaymentUseCase = (*BillingPaymentUseCase)(nil)

func NewBillingPaymentUseCase(
	repo interfaces.IBillingPaymentRepository,
	occurrences interfaces.IOccurrenceRepository,
	gateway interfaces.IPaymentGateway,
	opts BillingOptions,
) *BillingPaymentUseCase {
	return &BillingPaymentUseCase{
		repo:        repo,
		occurrences: occurrences,
		gateway:     gateway,
		opts:        opts,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// ChargeOccurrence only bills terminal occurrences with a known, positive
// expense total. The amount always comes from the stored record, never from
// the request payload.
func (u *BillingPaymentUseCase) ChargeOccurrence(ctx context.Context, occurrenceID int64, mpPayload json.RawMessage) (entities.BillingPayment, error) {
	log.Printf("[billing][usecase] charge start ocorrencia_id=%d payload_len=%d", occurrenceID, len(mpPayload))
	if occurrenceID <= 0 {
		return entities.BillingPayment{}, ErrInvalidOccurrenceID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.MockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if !u.opts.MockMode && u.gateway == nil {
		return entities.BillingPayment{}, ErrPaymentGatewayNotConfigured
	}

	o, err := u.occurrences.GetByID(ctx, occurrenceID)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if o.ID == 0 {
		return entities.BillingPayment{}, ErrOccurrenceNotFound
	}
	if !o.Status.IsTerminal() {
		return entities.BillingPayment{}, fmt.Errorf("%w: status is %s", ErrOccurrenceNotBillable, o.Status)
	}
	if o.Despesas == nil || *o.Despesas <= 0 {
		return entities.BillingPayment{}, fmt.Errorf("%w: no expense total", ErrOccurrenceNotBillable)
	}
	amount := *o.Despesas

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		if !u.opts.MockMode {
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		reqMap = map[string]any{}
	}
	if !u.opts.MockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Printf("[billing][usecase] missing payment_method_id ocorrencia_id=%d", occurrenceID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			log.Printf("[billing][usecase] missing/invalid payer ocorrencia_id=%d", occurrenceID)
			return entities.BillingPayment{}, ErrInvalidMPPayload
		}
	}
	reqMap["external_reference"] = externalReference(o.ID)
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Ocorrência %d - %s %s", o.ID, o.Tipo, o.Placa1)
	}
	reqMap["transaction_amount"] = amount
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.BillingPayment{}, err
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if u.opts.MockMode {
		providerPaymentID, providerStatus, providerResp, err = mockPayment(reqMap, u.now())
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
	}
	if err != nil {
		log.Printf("[billing][usecase] payment gateway failed ocorrencia_id=%d err=%v", occurrenceID, err)
		return entities.BillingPayment{}, classifyGatewayError(err)
	}
	log.Printf("[billing][usecase] payment gateway success ocorrencia_id=%d provider_payment_id=%s provider_status=%s", occurrenceID, providerPaymentID, providerStatus)

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Printf("[billing][usecase] provider response unmarshal failed ocorrencia_id=%d err=%v", occurrenceID, err)
	}

	p := entities.BillingPayment{
		ID:           providerPaymentID,
		OcorrenciaID: o.ID,
		ClienteID:    o.ClienteID,
		Cliente:      o.Cliente,
		Referencia:   externalReference(o.ID),
		Metodo:       stringField(reqMap, "payment_method_id"),
		Valor:        amount,
		Date:         u.now(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[billing][usecase] repository create failed ocorrencia_id=%d payment_id=%s err=%v", occurrenceID, p.ID, err)
		return entities.BillingPayment{}, err
	}
	log.Printf("[billing][usecase] charge success ocorrencia_id=%d payment_id=%s status=%s", occurrenceID, created.ID, created.Status)
	return created, nil
}

func (u *BillingPaymentUseCase) GetByID(ctx context.Context, id string) (entities.BillingPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.BillingPayment{}, err
	}
	if p.ID == "" {
		return entities.BillingPayment{}, ErrBillingPaymentNotFound
	}
	return p, nil
}

func (u *BillingPaymentUseCase) ListByOccurrenceID(ctx context.Context, occurrenceID int64) ([]entities.BillingPayment, error) {
	if occurrenceID <= 0 {
		return nil, ErrInvalidOccurrenceID
	}
	return u.repo.ListByOccurrenceID(ctx, occurrenceID)
}

func (u *BillingPaymentUseCase) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && u.opts.SandboxPayerEmail != "" {
		payer["email"] = u.opts.SandboxPayerEmail
	}
}

func mockPayment(req map[string]any, now time.Time) (string, string, json.RawMessage, error) {
	id := strconv.FormatInt(now.UnixNano(), 10)
	resp := make(map[string]any, len(req)+5)
	for k, v := range req {
		resp[k] = v
	}
	resp["id"] = id
	resp["status"] = "approved"
	resp["status_detail"] = "accredited"
	resp["date_created"] = now.Format(time.RFC3339Nano)
	resp["date_approved"] = now.Format(time.RFC3339Nano)
	b, err := json.Marshal(resp)
	if err != nil {
		return "", "", nil, err
	}
	return id, "approved", b, nil
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusAprovado
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusNegado
	}
	return entities.PaymentStatusPendente
}

func stringField(m map[string]any, key string) string {
	v, _ := m[key].(string)
	return strings.TrimSpace(v)
}

func externalReference(occurrenceID int64) string {
	return "ocorrencia-" + strconv.FormatInt(occurrenceID, 10)
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}
