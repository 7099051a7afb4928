package events

import (
	"time"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

type Event struct {
	ID          uint `gorm:"primaryKey"`
	Title       string
	Description string
	Location    string
	StartsAt    time.Time `gorm:"index"`
	Capacity    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type RSVP struct {
	ID        uint       `gorm:"primaryKey"`
	EventID   uint       `gorm:"not null;uniqueIndex:idx_rsvps_event_user"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_rsvps_event_user"`
	Event     Event      `gorm:"constraint:OnDelete:CASCADE"`
	User      users.User `gorm:"constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}
