package apperrors

import (
	"net/http"
)

/*
Factories and predefined variables for the payment domain.
*/

// =========================================================================
// Factory functions (used to wrap lower-level errors)
// =========================================================================

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound)
// into a 404 AppError.
func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

// ErrRazorpayError wraps a failed call to the payment gateway.
// The gateway message is surfaced to the caller; there is no local retry.
func ErrRazorpayError(err error) *AppError {
	return Wrap(err, CodeExternalServiceError, "payment", "Payment provider error: "+err.Error(), http.StatusInternalServerError)
}

// ErrWebhookProcessing wraps an unexpected failure while handling a webhook
// delivery (malformed body, store unavailable). The gateway's own retry
// policy is the only recovery mechanism.
func ErrWebhookProcessing(err error) *AppError {
	return Wrap(err, CodeInternalError, "webhook", "Webhook processing error", http.StatusInternalServerError)
}

// =========================================================================
// Predefined variables (frequent, static errors)
// =========================================================================

// ErrInvalidSignature - the submitted payment or webhook signature does not
// match the expected HMAC. Security-critical check, always a client error.
var ErrInvalidSignature = New(
	CodeInvalidSignature,
	"payment",
	"Invalid signature",
	http.StatusBadRequest, // 400
)

// ErrBookingNotFound - no booking exists for the submitted docId.
var ErrBookingNotFound = New(
	CodeNotFound,
	"booking",
	"Booking not found",
	http.StatusNotFound, // 404
)

// ErrMissingFields - required request fields are absent.
var ErrMissingFields = New(
	CodeValidationFailed,
	"request",
	"Missing required fields",
	http.StatusBadRequest, // 400
)
