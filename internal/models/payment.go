package models

// --- Request / response DTOs for the payment endpoints ---

// CreateOrderRequest is the order-creation payload from the booking front.
// Amount is in rupees; the gateway wants minor units (x100).
type CreateOrderRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
	DocID  string  `json:"docId" validate:"required"`
}

// CreateOrderResponse echoes the gateway order plus the public key id the
// browser needs to open the checkout UI. The key id is not a secret.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest is the client-submitted payment confirmation.
// Field names follow Razorpay's checkout callback verbatim.
type VerifyPaymentRequest struct {
	DocID             string `json:"docId" validate:"required"`
	RazorpayPaymentID string `json:"razorpay_payment_id" validate:"required"`
	RazorpayOrderID   string `json:"razorpay_order_id" validate:"required"`
	RazorpaySignature string `json:"razorpay_signature" validate:"required"`
}

// --- Webhook event envelope ---

// WebhookEvent is the gateway-pushed event body. Only the fields the
// reconciliation path reads are mapped; signature verification happens on
// the raw bytes before this struct ever exists.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity WebhookPaymentEntity `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// WebhookPaymentEntity is the payment entity inside a payment.* event.
type WebhookPaymentEntity struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Amount  int64  `json:"amount"`
}
