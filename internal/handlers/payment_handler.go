package handlers

import (
	"net/http"

	"ruandri_backend/internal/logger"
	"ruandri_backend/internal/models"
	"ruandri_backend/internal/services"
	"ruandri_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Header the gateway signs its webhook deliveries with.
const webhookSignatureHeader = "X-Razorpay-Signature"

type PaymentHandler struct {
	*BaseHandler
	paymentService services.PaymentService
}

func NewPaymentHandler(base *BaseHandler, paymentService services.PaymentService) *PaymentHandler {
	return &PaymentHandler{
		BaseHandler:    base,
		paymentService: paymentService,
	}
}

func (h *PaymentHandler) RegisterRoutes(r *gin.RouterGroup) {
	// Razorpay integration routes. No auth middleware: the signature checks
	// are the authentication on /verify and /webhook, and /orders only
	// exposes what the checkout UI needs anyway.
	razorpay := r.Group("/razorpay")
	{
		razorpay.POST("/orders", h.CreateOrder)
		razorpay.POST("/verify", h.VerifyPayment)
		razorpay.POST("/webhook", h.HandleWebhook)
	}
}

// CreateOrder registers a gateway order for a booking.
// POST /api/v1/razorpay/orders {amount, docId}
// -> 200 {orderId, amount, currency, keyId}
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	order, err := h.paymentService.CreateOrder(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, order)
}

// VerifyPayment checks a client-submitted checkout confirmation and marks
// the booking paid.
// POST /api/v1/razorpay/verify {docId, razorpay_payment_id, razorpay_order_id, razorpay_signature}
// -> 200 {success:true} | 400 bad signature | 404 unknown booking
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	var req models.VerifyPaymentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.paymentService.VerifyPayment(h.GetDB(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// HandleWebhook processes gateway-pushed events. The body is read raw and
// handed to the service untouched - the signature covers the exact bytes on
// the wire.
// POST /api/v1/razorpay/webhook -> 200 {status:"ok"} | 400 bad signature
func (h *PaymentHandler) HandleWebhook(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		logger.CtxWithError(c.Request.Context(), "Failed to read webhook body", err)
		apperrors.HandleError(c, apperrors.ErrWebhookProcessing(err))
		return
	}

	signature := c.GetHeader(webhookSignatureHeader)

	if err := h.paymentService.ProcessWebhook(h.GetDB(c), body, signature); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
