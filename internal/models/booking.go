package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Booking is the booking/session record the payment flow reconciles into.
// The id is externally assigned by the booking front (it doubles as the
// Razorpay receipt reference); creation of the row itself happens outside
// this service.
type Booking struct {
	ID        string         `gorm:"primaryKey" json:"id"`
	Email     string         `json:"email,omitempty"`
	Payment   datatypes.JSON `gorm:"type:jsonb" json:"payment,omitempty"`
	IsClosed  bool           `json:"isClosed"`
	CreatedAt time.Time      `json:"createdAt"`
	ExpireAt  *time.Time     `json:"expireAt,omitempty"`
}

// PaymentInfo is the payment sub-record stored inside the booking's jsonb
// column. Every field carries omitempty so that a merge-write only touches
// the keys the writer actually set: the client-confirmation path writes
// {id, orderId, status, verifiedAt}, the webhook path writes
// {id, status, webhookVerifiedAt}, and neither clobbers the other's fields.
// Timestamps are Unix milliseconds.
type PaymentInfo struct {
	ID                string `json:"id,omitempty"`
	OrderID           string `json:"orderId,omitempty"`
	Status            string `json:"status,omitempty"`
	VerifiedAt        int64  `json:"verifiedAt,omitempty"`
	WebhookVerifiedAt int64  `json:"webhookVerifiedAt,omitempty"`
}

// PaymentStatus decodes the current payment sub-record. Returns the zero
// value when the booking has no payment yet or the column is malformed.
func (b *Booking) PaymentStatus() PaymentInfo {
	var info PaymentInfo
	if len(b.Payment) == 0 {
		return info
	}
	_ = json.Unmarshal(b.Payment, &info)
	return info
}

// IsPaid reports whether either confirmation path already marked the booking.
func (b *Booking) IsPaid() bool {
	return b.PaymentStatus().Status == PaymentStatusPaid
}
