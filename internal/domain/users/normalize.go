package users

import (
	"strings"
	"time"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/membership"
)

// Normalize converts a raw external payload into the canonical User shape.
// Upstream services disagree on casing (PascalCase vs snake_case vs
// camelCase) and on which fields they bother to send, so every lookup walks
// the alias list and every absence defaults safely: points 0, tier recomputed
// from points, trial inactive. The rest of the codebase only ever sees the
// canonical shape.
func Normalize(raw map[string]interface{}) User {
	u := User{
		Name:         pickString(raw, "name", "Name", "full_name", "fullName"),
		FirstName:    pickString(raw, "first_name", "FirstName", "firstName"),
		LastName:     pickString(raw, "last_name", "LastName", "lastName"),
		Email:        pickString(raw, "email", "Email"),
		Gender:       pickString(raw, "gender", "Gender"),
		Denomination: pickString(raw, "denomination", "Denomination"),
		Bio:          pickString(raw, "bio", "Bio"),
		Career:       pickString(raw, "career", "Career"),
		ChurchName:   pickString(raw, "church_name", "ChurchName", "churchName"),
		ChurchBranch: pickString(raw, "church_branch", "ChurchBranch", "churchBranch"),
		City:         pickString(raw, "city", "City"),
		Country:      pickString(raw, "country", "Country"),
		LookingFor:   pickString(raw, "looking_for", "LookingFor", "lookingFor"),
		Distance:     pickString(raw, "distance", "Distance"),
		Role:         "user",
	}

	if handle := pickString(raw, "user_name", "UserName", "username"); handle != "" {
		u.UserName = &handle
	}
	if role := strings.ToLower(pickString(raw, "role", "Role")); role == "admin" {
		u.Role = "admin"
	}

	u.Points = pickInt(raw, "points", "Points")
	if u.Points < 0 {
		u.Points = 0
	}
	// Tier is never trusted from the wire; it is a function of points.
	u.Tier = membership.ResolveTier(u.Points)

	if age := pickInt(raw, "age", "Age"); age > 0 {
		u.Age = &age
	}
	u.Likes = pickInt(raw, "likes", "Likes")

	u.Interests = pickStrings(raw, "interests", "Interests")

	if t, ok := pickTime(raw, "created_at", "CreatedAt", "account_created_at", "accountCreatedAt"); ok {
		u.CreatedAt = t
	}
	start, okStart := pickTime(raw, "trial_start_at", "TrialStartAt", "trial_start_date", "trialStartDate")
	end, okEnd := pickTime(raw, "trial_end_at", "TrialEndAt", "trial_end_date", "trialEndDate")
	// Trial fields are both-or-neither; a lone timestamp means no trial.
	if okStart && okEnd {
		u.TrialStartAt = &start
		u.TrialEndAt = &end
	}
	u.TrialUsed = pickBool(raw, "trial_used", "TrialUsed", "trialUsed")

	return u
}

func pickString(raw map[string]interface{}, keys ...string) string {
	for _, k := range keys {
		if v, ok := raw[k].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func pickInt(raw map[string]interface{}, keys ...string) int {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case float64:
			return int(v)
		case int:
			return v
		}
	}
	return 0
}

func pickBool(raw map[string]interface{}, keys ...string) bool {
	for _, k := range keys {
		if v, ok := raw[k].(bool); ok {
			return v
		}
	}
	return false
}

func pickStrings(raw map[string]interface{}, keys ...string) []string {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case []string:
			return v
		case []interface{}:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			return out
		}
	}
	return nil
}

func pickTime(raw map[string]interface{}, keys ...string) (time.Time, bool) {
	for _, k := range keys {
		switch v := raw[k].(type) {
		case time.Time:
			return v, true
		case string:
			if t, err := time.Parse(time.RFC3339, v); err == nil {
				return t, true
			}
		}
	}
	return time.Time{}, false
}
