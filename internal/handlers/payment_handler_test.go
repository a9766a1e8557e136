package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ruandri_backend/internal/handlers"
	"ruandri_backend/internal/middleware"
	"ruandri_backend/internal/models"
	"ruandri_backend/internal/validator"
	"ruandri_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubPaymentService lets each test script the service outcome and inspect
// what the handler forwarded.
type stubPaymentService struct {
	createResp *models.CreateOrderResponse
	createErr  error
	verifyErr  error
	webhookErr error

	gotCreate    *models.CreateOrderRequest
	gotVerify    *models.VerifyPaymentRequest
	gotBody      []byte
	gotSignature string
}

func (s *stubPaymentService) CreateOrder(db *gorm.DB, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	s.gotCreate = req
	return s.createResp, s.createErr
}

func (s *stubPaymentService) VerifyPayment(db *gorm.DB, req *models.VerifyPaymentRequest) error {
	s.gotVerify = req
	return s.verifyErr
}

func (s *stubPaymentService) ProcessWebhook(db *gorm.DB, body []byte, signature string) error {
	s.gotBody = body
	s.gotSignature = signature
	return s.webhookErr
}

func newTestRouter(svc *stubPaymentService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(middleware.DBMiddleware(&gorm.DB{}))

	base := handlers.NewBaseHandler(validator.New())
	appHandlers := &handlers.AppHandlers{
		PaymentHandler: handlers.NewPaymentHandler(base, svc),
	}

	api := router.Group("/api/v1")
	appHandlers.PaymentHandler.RegisterRoutes(api)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// --- Order creation ---

func TestCreateOrderEndpoint_Success(t *testing.T) {
	svc := &stubPaymentService{
		createResp: &models.CreateOrderResponse{
			OrderID:  "order_123",
			Amount:   49900,
			Currency: "INR",
			KeyID:    "rzp_live_key",
		},
	}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/orders", gin.H{"amount": 499, "docId": "bk_1"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"orderId":"order_123","amount":49900,"currency":"INR","keyId":"rzp_live_key"}`, w.Body.String())

	require.NotNil(t, svc.gotCreate)
	assert.Equal(t, "bk_1", svc.gotCreate.DocID)
}

func TestCreateOrderEndpoint_MissingAmount(t *testing.T) {
	svc := &stubPaymentService{}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/orders", gin.H{"docId": "bk_1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "amount")
	assert.Nil(t, svc.gotCreate, "service must not be reached on a validation failure")
}

func TestCreateOrderEndpoint_MissingDocID(t *testing.T) {
	router := newTestRouter(&stubPaymentService{})

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/orders", gin.H{"amount": 499})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "docId")
}

func TestCreateOrderEndpoint_MethodNotAllowed(t *testing.T) {
	router := newTestRouter(&stubPaymentService{})

	w := doJSON(t, router, http.MethodGet, "/api/v1/razorpay/orders", nil)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestCreateOrderEndpoint_GatewayFailure(t *testing.T) {
	svc := &stubPaymentService{createErr: apperrors.ErrRazorpayError(assert.AnError)}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/orders", gin.H{"amount": 499, "docId": "bk_1"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Payment provider error")
}

// --- Payment verification ---

func TestVerifyEndpoint_Success(t *testing.T) {
	svc := &stubPaymentService{}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/verify", gin.H{
		"docId":               "bk_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  "deadbeef",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())

	require.NotNil(t, svc.gotVerify)
	assert.Equal(t, "pay_1", svc.gotVerify.RazorpayPaymentID)
}

func TestVerifyEndpoint_MissingFields(t *testing.T) {
	svc := &stubPaymentService{}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/verify", gin.H{"docId": "bk_1"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "razorpay_payment_id")
	assert.Nil(t, svc.gotVerify)
}

func TestVerifyEndpoint_InvalidSignature(t *testing.T) {
	svc := &stubPaymentService{verifyErr: apperrors.ErrInvalidSignature}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/verify", gin.H{
		"docId":               "bk_1",
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  "wrong",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid signature")
}

func TestVerifyEndpoint_BookingNotFound(t *testing.T) {
	svc := &stubPaymentService{verifyErr: apperrors.ErrBookingNotFound}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/verify", gin.H{
		"docId":               "missing",
		"razorpay_payment_id": "pay_1",
		"razorpay_order_id":   "order_1",
		"razorpay_signature":  "deadbeef",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Booking not found")
}

// --- Webhook ---

func TestWebhookEndpoint_ForwardsRawBodyAndSignature(t *testing.T) {
	svc := &stubPaymentService{}
	router := newTestRouter(svc)

	// Whitespace and key order must reach the service byte-for-byte.
	rawBody := `{ "event" : "payment.captured", "payload": {} }`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/razorpay/webhook", bytes.NewReader([]byte(rawBody)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Razorpay-Signature", "abc123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, rawBody, string(svc.gotBody))
	assert.Equal(t, "abc123", svc.gotSignature)
}

func TestWebhookEndpoint_InvalidSignature(t *testing.T) {
	svc := &stubPaymentService{webhookErr: apperrors.ErrInvalidSignature}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/webhook", gin.H{"event": "payment.captured"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookEndpoint_InternalError(t *testing.T) {
	svc := &stubPaymentService{webhookErr: apperrors.ErrWebhookProcessing(assert.AnError)}
	router := newTestRouter(svc)

	w := doJSON(t, router, http.MethodPost, "/api/v1/razorpay/webhook", gin.H{"event": "payment.captured"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
