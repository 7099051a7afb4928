package matches

import (
	"time"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

// Like is one directed like. A pair of opposite likes forms a match.
type Like struct {
	ID        uint       `gorm:"primaryKey"`
	UserID    uint       `gorm:"not null;uniqueIndex:idx_likes_pair"`
	TargetID  uint       `gorm:"not null;uniqueIndex:idx_likes_pair"`
	User      users.User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Target    users.User `gorm:"foreignKey:TargetID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

type Match struct {
	ID        uint       `gorm:"primaryKey"`
	UserAID   uint       `gorm:"column:user_a_id;not null;uniqueIndex:idx_matches_pair"`
	UserBID   uint       `gorm:"column:user_b_id;not null;uniqueIndex:idx_matches_pair"`
	UserA     users.User `gorm:"foreignKey:UserAID;constraint:OnDelete:CASCADE"`
	UserB     users.User `gorm:"foreignKey:UserBID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
}

type Message struct {
	ID          uint       `gorm:"primaryKey"`
	SenderID    uint       `gorm:"not null;index"`
	RecipientID uint       `gorm:"not null;index"`
	Sender      users.User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Recipient   users.User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE"`
	Body        string     `gorm:"not null"`
	CreatedAt   time.Time
}

// DateRequest is a scheduled-date proposal between two matched users.
type DateRequest struct {
	ID          uint       `gorm:"primaryKey"`
	RequesterID uint       `gorm:"not null;index"`
	InviteeID   uint       `gorm:"not null;index"`
	Requester   users.User `gorm:"foreignKey:RequesterID;constraint:OnDelete:CASCADE"`
	Invitee     users.User `gorm:"foreignKey:InviteeID;constraint:OnDelete:CASCADE"`
	Venue       string
	ScheduledAt time.Time
	Status      string `gorm:"not null;default:'proposed'"` // proposed | accepted | declined
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
