package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"ruandri_backend/internal/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type BookingRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Booking, error)
	FindByPaymentOrderID(db *gorm.DB, orderID string) (*models.Booking, error)
	MergePayment(db *gorm.DB, id string, payment *models.PaymentInfo, expireAt *time.Time) error
}

type bookingRepository struct{}

func NewBookingRepository() BookingRepository {
	return &bookingRepository{}
}

func (r *bookingRepository) FindByID(db *gorm.DB, id string) (*models.Booking, error) {
	var booking models.Booking
	if err := db.Where("id = ?", id).First(&booking).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// FindByPaymentOrderID locates the booking whose payment sub-record carries
// the given gateway order id, limited to a single match. The webhook path
// uses this because the gateway only echoes its own order id back.
func (r *bookingRepository) FindByPaymentOrderID(db *gorm.DB, orderID string) (*models.Booking, error) {
	var booking models.Booking
	err := db.
		Where(datatypes.JSONQuery("payment").Equals(orderID, "orderId")).
		Limit(1).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// MergePayment applies the paid state in a single UPDATE:
//
//	payment   = COALESCE(payment, '{}') || <new keys>   (jsonb shallow merge)
//	is_closed = true
//	expire_at = <value>                                 (webhook path only)
//
// The jsonb concatenation merges field-by-field, so a late-arriving duplicate
// from the other confirmation path only refreshes the keys it carries and the
// write stays idempotent on status. Columns not listed here are untouched.
// There is no compare-and-swap: whichever write lands last wins on
// overlapping keys, which is the accepted race for this record.
func (r *bookingRepository) MergePayment(db *gorm.DB, id string, payment *models.PaymentInfo, expireAt *time.Time) error {
	raw, err := json.Marshal(payment)
	if err != nil {
		return fmt.Errorf("failed to encode payment sub-record: %w", err)
	}

	updates := map[string]interface{}{
		"payment":   gorm.Expr("COALESCE(payment, '{}'::jsonb) || ?::jsonb", string(raw)),
		"is_closed": true,
	}
	if expireAt != nil {
		updates["expire_at"] = *expireAt
	}

	result := db.Model(&models.Booking{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
