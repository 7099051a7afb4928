package users

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/membership"
)

type User struct {
	ID           uint `gorm:"primaryKey"`
	Name         string
	FirstName    string  `gorm:"column:first_name"`
	LastName     string  `gorm:"column:last_name"`
	UserName     *string `gorm:"column:user_name;uniqueIndex:idx_users_user_name"`
	Email        string  `gorm:"not null;uniqueIndex:idx_users_email"`
	Password     *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_users_google_sub"`
	Role         string
	IsVerified   bool

	// Membership currency. Tier is derived from Points and must be rewritten
	// in the same update whenever Points changes.
	Points int    `gorm:"not null;default:0"`
	Tier   string `gorm:"type:varchar(20);not null;default:'Bronze'"`

	TrialStartAt *time.Time `gorm:"column:trial_start_at"`
	TrialEndAt   *time.Time `gorm:"column:trial_end_at"`
	TrialUsed    bool       `gorm:"column:trial_used;not null;default:false"`

	StripeCustomerID *string `gorm:"column:stripe_customer_id;uniqueIndex:idx_users_stripe_customer_id"`

	// Profile fields, search/filter targets only.
	Age          *int   `gorm:"column:age"`
	Gender       string `gorm:"type:varchar(20)"`
	Denomination string
	Bio          string
	Career       string
	ChurchName   string `gorm:"column:church_name"`
	ChurchBranch string `gorm:"column:church_branch"`
	City         string
	Country      string
	LookingFor   string      `gorm:"column:looking_for"`
	Interests    StringSlice `gorm:"type:jsonb;default:'[]'"`
	Likes        int         `gorm:"not null;default:0"`
	Distance     string      // display string like "3.2 km", set by the listing layer

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == "admin"
}

// TrialWindow extracts the trial fields for membership.TrialStatus.
func (u User) TrialWindow() membership.TrialWindow {
	return membership.TrialWindow{
		Start: u.TrialStartAt,
		End:   u.TrialEndAt,
		Used:  u.TrialUsed,
	}
}

// StringSlice stores a list of tags as a jsonb column.
type StringSlice []string

func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	b, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type for StringSlice: %T", value)
	}
	return json.Unmarshal(data, s)
}
