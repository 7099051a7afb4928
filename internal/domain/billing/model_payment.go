package billing

import (
	"time"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

// PointPack is a purchasable bundle of points, mirrored from Stripe prices.
type PointPack struct {
	ID            uint `gorm:"primaryKey"`
	Name          string
	Points        int
	PriceEUR      float64
	StripePriceID string `gorm:"column:stripe_price_id;not null;uniqueIndex:idx_point_packs_stripe_price_id"`
}

type Payment struct {
	ID              uint `gorm:"primaryKey"`
	UserID          uint
	User            users.User
	PointPackID     *uint
	PointPack       *PointPack
	StripeSessionID string `gorm:"uniqueIndex"`
	PointsDelta     int
	AmountEUR       float64
	Status          string
	InvoiceID       *string
	ReceiptURL      *string
	CreatedAt       time.Time
}
