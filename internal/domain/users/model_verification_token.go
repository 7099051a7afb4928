package users

import "time"

// VerificationToken backs both email verification and password resets,
// distinguished by Type ("" for email verification, "password_reset").
type VerificationToken struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"uniqueIndex"`
	User      User   `gorm:"constraint:OnDelete:CASCADE"`
	Token     string `gorm:"uniqueIndex"`
	Type      string `gorm:"index"`
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Expired reports whether the token's deadline has passed. A zero ExpiresAt
// (email verification tokens) never expires.
func (t VerificationToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && t.ExpiresAt.Before(now)
}
