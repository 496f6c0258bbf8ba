package handlers

import (
	"errors"
	"net/http"

	"ocorrencias_api/internal/infrastructure/storage"
	"ocorrencias_api/internal/usecase"
	"ocorrencias_api/pkg"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	code    string
	message string
	status  int
}

// errorTable is checked in order with errors.Is. Causes never reach the
// response body; they stay in AppError.Err for the logs.
var errorTable = []errorMapping{
	// 400
	{usecase.ErrInvalidOccurrenceID, "INVALID_OCCURRENCE_ID", "Invalid occurrence id", http.StatusBadRequest},
	{usecase.ErrMissingField, "MISSING_FIELD", "A required field is missing", http.StatusBadRequest},
	{usecase.ErrInvalidStatus, "INVALID_STATUS", "Invalid occurrence status", http.StatusBadRequest},
	{usecase.ErrInvalidAmount, "INVALID_AMOUNT", "Amounts must not be negative", http.StatusBadRequest},
	{usecase.ErrInvalidDateRange, "INVALID_DATE_RANGE", "Invalid date range", http.StatusBadRequest},
	{usecase.ErrUnknownClient, "UNKNOWN_CLIENT", "Client not found", http.StatusBadRequest},
	{usecase.ErrUnknownProvider, "UNKNOWN_PROVIDER", "Provider not found", http.StatusBadRequest},
	{usecase.ErrProviderNotApproved, "PROVIDER_NOT_APPROVED", "Provider is not approved", http.StatusBadRequest},
	{usecase.ErrProviderRequired, "PROVIDER_REQUIRED", "An assigned provider is required to dispatch", http.StatusBadRequest},
	{usecase.ErrOutcomeRequired, "OUTCOME_REQUIRED", "resultado is required to close an occurrence", http.StatusBadRequest},
	{usecase.ErrNoPhotos, "NO_PHOTOS", "No photos provided", http.StatusBadRequest},
	{storage.ErrUnsupportedExtension, "UNSUPPORTED_PHOTO", "Unsupported photo format", http.StatusBadRequest},
	{usecase.ErrInvalidCoordinates, "INVALID_COORDINATES", "latitude must be within [-90,90] and longitude within [-180,180]", http.StatusBadRequest},
	{usecase.ErrInvalidWindow, "INVALID_WINDOW", "Invalid time window", http.StatusBadRequest},
	{usecase.ErrInvalidMPPayload, "INVALID_REQUEST", "Invalid request", http.StatusBadRequest},
	{usecase.ErrPaymentGatewayBadRequest, "INVALID_REQUEST", "Invalid request", http.StatusBadRequest},
	{usecase.ErrPaymentGatewayCustomerNotFound, "PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest},
	{usecase.ErrPaymentGatewayInvalidUsers, "PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest},

	// 401
	{usecase.ErrInvalidCredentials, "INVALID_CREDENTIALS", "Invalid email or password", http.StatusUnauthorized},
	{usecase.ErrUnauthorized, "UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized},
	{usecase.ErrAccountNotFound, "UNAUTHORIZED", "Unauthorized", http.StatusUnauthorized},

	// 403
	{usecase.ErrForbidden, "FORBIDDEN", "Forbidden", http.StatusForbidden},

	// 404
	{usecase.ErrOccurrenceNotFound, "OCCURRENCE_NOT_FOUND", "Occurrence not found", http.StatusNotFound},
	{usecase.ErrProviderNotFound, "PROVIDER_NOT_FOUND", "Provider not found", http.StatusNotFound},
	{usecase.ErrClientNotFound, "CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound},
	{usecase.ErrPositionNotFound, "POSITION_NOT_FOUND", "Position not found", http.StatusNotFound},
	{usecase.ErrTrackingNotFound, "TRACKING_NOT_FOUND", "Tracking link not found", http.StatusNotFound},
	{usecase.ErrBillingPaymentNotFound, "PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound},

	// 409
	{usecase.ErrOccurrenceTerminal, "OCCURRENCE_CLOSED", "Occurrence is closed", http.StatusConflict},
	{usecase.ErrIllegalTransition, "ILLEGAL_TRANSITION", "Illegal status transition", http.StatusConflict},
	{usecase.ErrOutcomeAppendOnly, "OUTCOME_APPEND_ONLY", "The outcome of a closed occurrence can only be appended to", http.StatusConflict},
	{usecase.ErrArrivalAlreadySet, "ARRIVAL_ALREADY_SET", "Arrival already recorded", http.StatusConflict},
	{usecase.ErrProviderBusy, "PROVIDER_BUSY", "Provider already has an active occurrence", http.StatusConflict},
	{usecase.ErrConcurrentModification, "CONCURRENT_MODIFICATION", "Occurrence was modified concurrently, reload and retry", http.StatusConflict},
	{usecase.ErrNotTrackable, "NOT_TRACKABLE", "Occurrence is not in a trackable state", http.StatusConflict},
	{usecase.ErrProviderNameTaken, "PROVIDER_NAME_TAKEN", "Provider name already in use", http.StatusConflict},
	{usecase.ErrOccurrenceNotBillable, "OCCURRENCE_NOT_BILLABLE", "Only closed occurrences with a positive expense total can be billed", http.StatusConflict},

	// 429
	{usecase.ErrTooManyAttempts, "TOO_MANY_ATTEMPTS", "Too many failed login attempts, try again later", http.StatusTooManyRequests},

	// payment provider
	{usecase.ErrPaymentGatewayUnauthorized, "PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway},
	{usecase.ErrPaymentGatewayNotConfigured, "PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable},
}

func mapError(err error) *pkg.AppError {
	for _, m := range errorTable {
		if errors.Is(err, m.target) {
			return pkg.NewDomainError(m.code, m.message, err, m.status)
		}
	}
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func writeError(c *gin.Context, err error) {
	appErr := mapError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeBadRequest(c *gin.Context, message string) {
	appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", message, http.StatusBadRequest)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
