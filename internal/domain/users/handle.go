package users

import (
	"fmt"
	"regexp"
	"strings"

	"gorm.io/gorm"
)

/*
	User handle helpers
	-------------------
	- Responsible ONLY for:
	  • generating display handles
	  • persisting them
	- No access logic, no billing logic here
*/

var (
	nonHandle = regexp.MustCompile(`[^a-z0-9\-]+`)
	multiDash = regexp.MustCompile(`-+`)
)

// MakeHandle generates a URL-safe base handle from a user's name.
// Example: "Grace Adeyemi" -> "grace-adeyemi"
func MakeHandle(first, last string) string {
	base := strings.ToLower(strings.TrimSpace(first + " " + last))
	base = strings.ReplaceAll(base, " ", "-")
	base = nonHandle.ReplaceAllString(base, "")
	base = multiDash.ReplaceAllString(base, "-")
	base = strings.Trim(base, "-")

	if base == "" {
		base = "member"
	}
	return base
}

// EnsureHandle ensures user.UserName exists and is persisted.
// Must be called AFTER the user has an ID (after Create).
//
// Pass db in, do NOT import the database package here (avoids import cycle).
func EnsureHandle(db *gorm.DB, user *User) (string, error) {
	if user == nil {
		return "", fmt.Errorf("user is nil")
	}
	if db == nil {
		return "", fmt.Errorf("db is nil")
	}

	if user.UserName != nil && strings.TrimSpace(*user.UserName) != "" {
		return strings.TrimSpace(*user.UserName), nil
	}

	if user.ID == 0 {
		return "", fmt.Errorf("user ID missing (call EnsureHandle after Create)")
	}

	base := MakeHandle(user.FirstName, user.LastName)
	handle := fmt.Sprintf("%s-%d", base, user.ID)

	user.UserName = &handle

	if err := db.
		Model(&User{}).
		Where("id = ?", user.ID).
		Update("user_name", handle).Error; err != nil {
		return "", err
	}

	return handle, nil
}
