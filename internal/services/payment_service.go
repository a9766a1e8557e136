package services

import (
	"encoding/json"
	"math"
	"time"

	"ruandri_backend/internal/email"
	"ruandri_backend/internal/logger"
	"ruandri_backend/internal/models"
	"ruandri_backend/internal/repositories"
	"ruandri_backend/internal/services/razorpay"
	"ruandri_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// PaymentGateway is what the service needs from the Razorpay adapter.
// Injected so tests can substitute a fake (no hidden process-wide client).
type PaymentGateway interface {
	PublicKeyID() string
	CreateOrder(amount int64, currency, receipt string) (*razorpay.Order, error)
	VerifyPaymentSignature(orderID, paymentID, signature string) bool
	VerifyWebhookSignature(body []byte, signature string) bool
}

type PaymentService interface {
	CreateOrder(db *gorm.DB, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error)
	VerifyPayment(db *gorm.DB, req *models.VerifyPaymentRequest) error
	ProcessWebhook(db *gorm.DB, body []byte, signature string) error
}

type paymentService struct {
	bookingRepo repositories.BookingRepository
	gateway     PaymentGateway
	currency    string
	mailer      email.Provider // nil when SMTP is not configured
}

func NewPaymentService(
	bookingRepo repositories.BookingRepository,
	gateway PaymentGateway,
	currency string,
	mailer email.Provider,
) PaymentService {
	return &paymentService{
		bookingRepo: bookingRepo,
		gateway:     gateway,
		currency:    currency,
		mailer:      mailer,
	}
}

// CreateOrder registers a remote order with the gateway. The booking id goes
// in as the receipt reference; the response carries everything the browser
// needs to open the checkout UI.
func (s *paymentService) CreateOrder(db *gorm.DB, req *models.CreateOrderRequest) (*models.CreateOrderResponse, error) {
	// Rupees -> paise.
	minorUnits := int64(math.Round(req.Amount * 100))

	order, err := s.gateway.CreateOrder(minorUnits, s.currency, req.DocID)
	if err != nil {
		return nil, apperrors.ErrRazorpayError(err)
	}

	return &models.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		KeyID:    s.gateway.PublicKeyID(),
	}, nil
}

// VerifyPayment handles the client-submitted checkout confirmation.
// The signature is checked before any store access.
func (s *paymentService) VerifyPayment(db *gorm.DB, req *models.VerifyPaymentRequest) error {
	if !s.gateway.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature) {
		return apperrors.ErrInvalidSignature
	}

	booking, err := s.bookingRepo.FindByID(db, req.DocID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrBookingNotFound
		}
		return apperrors.InternalError(err)
	}

	wasPaid := booking.IsPaid()

	payment := &models.PaymentInfo{
		ID:         req.RazorpayPaymentID,
		OrderID:    req.RazorpayOrderID,
		Status:     models.PaymentStatusPaid,
		VerifiedAt: time.Now().UnixMilli(),
	}
	if err := s.bookingRepo.MergePayment(db, booking.ID, payment, nil); err != nil {
		return apperrors.InternalError(err)
	}

	if !wasPaid {
		s.sendConfirmation(booking, req.RazorpayOrderID)
	}

	return nil
}

// ProcessWebhook handles a gateway-pushed event. The signature is computed
// over the raw body bytes exactly as delivered; body must not be
// re-serialized before reaching here.
func (s *paymentService) ProcessWebhook(db *gorm.DB, body []byte, signature string) error {
	if !s.gateway.VerifyWebhookSignature(body, signature) {
		return apperrors.ErrInvalidSignature
	}

	var event models.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return apperrors.ErrWebhookProcessing(err)
	}

	// Every event type other than a capture is acknowledged and ignored,
	// otherwise the gateway keeps retrying the delivery.
	if event.Event != models.WebhookEventPaymentCaptured {
		logger.Info("webhook event ignored", "event", event.Event)
		return nil
	}

	entity := event.Payload.Payment.Entity

	booking, err := s.bookingRepo.FindByPaymentOrderID(db, entity.OrderID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			// The webhook can race ahead of the client confirmation, or
			// reference a booking this service does not track. Silent no-op;
			// the 200 stops the gateway from retrying indefinitely.
			logger.Info("webhook order matched no booking", "order_id", entity.OrderID)
			return nil
		}
		return apperrors.ErrWebhookProcessing(err)
	}

	wasPaid := booking.IsPaid()

	createdAt := booking.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	expireAt := createdAt.Add(models.BookingExpiryDays * 24 * time.Hour)

	payment := &models.PaymentInfo{
		ID:                entity.ID,
		Status:            models.PaymentStatusPaid,
		WebhookVerifiedAt: time.Now().UnixMilli(),
	}
	if err := s.bookingRepo.MergePayment(db, booking.ID, payment, &expireAt); err != nil {
		return apperrors.ErrWebhookProcessing(err)
	}

	if !wasPaid {
		s.sendConfirmation(booking, entity.OrderID)
	}

	return nil
}

func (s *paymentService) sendConfirmation(booking *models.Booking, orderID string) {
	if s.mailer == nil || booking.Email == "" {
		return
	}
	if err := s.mailer.SendPaymentConfirmation(booking.Email, booking.ID, orderID); err != nil {
		logger.Warn("failed to send payment confirmation email",
			"booking_id", booking.ID,
			"error", err.Error(),
		)
	}
}
