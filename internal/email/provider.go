package email

// Provider sends transactional mail for the booking flow.
type Provider interface {
	// SendPaymentConfirmation notifies the customer that their booking
	// payment was confirmed. Best-effort: callers log failures and move on,
	// a payment must never fail because mail did.
	SendPaymentConfirmation(to, bookingID, orderID string) error
}
