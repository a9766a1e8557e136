package razorpay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	razorpaygo "github.com/razorpay/razorpay-go"
)

// RazorpayService talks to the Razorpay API and owns both HMAC checks.
// Create one per credential set at process start and reuse it across
// requests; it holds no per-request state.
type RazorpayService struct {
	keyID         string
	keySecret     string
	webhookSecret string
	client        *razorpaygo.Client
}

func NewRazorpayService(keyID, keySecret, webhookSecret string) *RazorpayService {
	return &RazorpayService{
		keyID:         keyID,
		keySecret:     keySecret,
		webhookSecret: webhookSecret,
		client:        razorpaygo.NewClient(keyID, keySecret),
	}
}

// Order is the subset of the gateway's order entity the service needs.
type Order struct {
	ID       string
	Amount   int64
	Currency string
}

// PublicKeyID returns the key id that is safe to hand to a browser client
// for initializing the checkout UI.
func (s *RazorpayService) PublicKeyID() string {
	return s.keyID
}

// CreateOrder creates a remote order. Amount is in minor units; receipt is
// the booking id, which is how the webhook later finds its way back.
// No explicit timeout beyond the SDK default, and no retry - any failure
// surfaces to the caller as-is.
func (s *RazorpayService) CreateOrder(amount int64, currency, receipt string) (*Order, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}

	body, err := s.client.Order.Create(data, nil)
	if err != nil {
		return nil, err
	}

	order := &Order{Currency: currency}
	if id, ok := body["id"].(string); ok {
		order.ID = id
	}
	if order.ID == "" {
		return nil, fmt.Errorf("gateway returned an order without an id")
	}
	if amt, ok := body["amount"].(float64); ok {
		order.Amount = int64(amt)
	} else {
		order.Amount = amount
	}
	if cur, ok := body["currency"].(string); ok {
		order.Currency = cur
	}

	return order, nil
}

// VerifyPaymentSignature checks a client-submitted checkout confirmation.
// The scheme is fixed by the gateway: HMAC-SHA256 over
// "<orderId>|<paymentId>" with the key secret, lowercase hex.
func (s *RazorpayService) VerifyPaymentSignature(orderID, paymentID, signature string) bool {
	expected := signPayload([]byte(orderID+"|"+paymentID), s.keySecret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhookSignature checks a gateway-pushed event against the
// webhook-specific shared secret (distinct from the key secret). body MUST
// be the raw request bytes - re-serializing a parsed body is not guaranteed
// to reproduce them and would reject legitimate deliveries.
func (s *RazorpayService) VerifyWebhookSignature(body []byte, signature string) bool {
	expected := signPayload(body, s.webhookSecret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

func signPayload(payload []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}
