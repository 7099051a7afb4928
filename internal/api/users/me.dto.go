package users

import "time"

type MeResponse struct {
	User       UserDTO       `json:"user"`
	Membership MembershipDTO `json:"membership"`
	Access     AccessDTO     `json:"access"`
}

/* ---------- USER ---------- */

type UserDTO struct {
	ID           uint     `json:"id"`
	Email        string   `json:"email"`
	Name         string   `json:"name"`
	FirstName    string   `json:"first_name"`
	LastName     string   `json:"last_name"`
	UserName     *string  `json:"user_name"`
	Role         string   `json:"role"`
	IsVerified   bool     `json:"is_verified"`
	Age          *int     `json:"age,omitempty"`
	Gender       string   `json:"gender,omitempty"`
	Denomination string   `json:"denomination,omitempty"`
	Bio          string   `json:"bio,omitempty"`
	Career       string   `json:"career,omitempty"`
	ChurchName   string   `json:"church_name,omitempty"`
	ChurchBranch string   `json:"church_branch,omitempty"`
	City         string   `json:"city,omitempty"`
	Country      string   `json:"country,omitempty"`
	LookingFor   string   `json:"looking_for,omitempty"`
	Interests    []string `json:"interests,omitempty"`
}

/* ---------- MEMBERSHIP ---------- */

type MembershipDTO struct {
	Points         int       `json:"points"`
	Tier           string    `json:"tier"`
	AccountAgeDays int       `json:"account_age_days"`
	Trial          *TrialDTO `json:"trial"`
}

type TrialDTO struct {
	StartsAt *time.Time `json:"starts_at"`
	EndsAt   *time.Time `json:"ends_at"`
	Active   bool       `json:"active"`
	Expired  bool       `json:"expired"`
	DaysLeft int        `json:"days_left"`
}

/* ---------- ACCESS ---------- */

type AccessDTO struct {
	CanMessage           bool `json:"can_message"`
	CanScheduleDates     bool `json:"can_schedule_dates"`
	CanViewFullDiscovery bool `json:"can_view_full_discovery"`
	DiscoveryCap         *int `json:"discovery_cap,omitempty"`
}
