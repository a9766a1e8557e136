package models

// Payment sub-record statuses. The state machine is UNPAID -> PAID only;
// re-applying PAID refreshes timestamps but never transitions back.
const (
	PaymentStatusPaid = "paid"
)

// Webhook event types the gateway pushes. Only captured triggers
// reconciliation; every other event is acknowledged and ignored.
const (
	WebhookEventPaymentCaptured = "payment.captured"
)

// BookingExpiryDays is how long a paid booking stays valid after creation.
const BookingExpiryDays = 30
