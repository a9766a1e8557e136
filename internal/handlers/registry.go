package handlers

// AppHandlers aggregates every handler for route registration.
type AppHandlers struct {
	PaymentHandler *PaymentHandler
}
