package discover

import (
	"strings"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

// FilterAll is the sentinel meaning "do not filter on this field".
// An empty string behaves the same way, as does any value we don't recognize:
// filters fail open rather than reject.
const FilterAll = "all"

// FilterState is per page view; built from query params, never persisted.
// Zero AgeMin/AgeMax disable the corresponding bound.
type FilterState struct {
	AgeMin       int
	AgeMax       int
	Gender       string
	Denomination string
	Tier         string
	Category     string
}

func isAll(v string) bool {
	return v == "" || strings.EqualFold(v, FilterAll)
}

// Matches reports whether a user passes every active filter clause.
// Clauses are AND-composed; each is skipped when its filter is "all"/unset.
func (f FilterState) Matches(u users.User) bool {
	if f.AgeMin > 0 || f.AgeMax > 0 {
		// Users without an age are not excluded by the age clause.
		if u.Age != nil {
			if f.AgeMin > 0 && *u.Age < f.AgeMin {
				return false
			}
			if f.AgeMax > 0 && *u.Age > f.AgeMax {
				return false
			}
		}
	}

	if !isAll(f.Gender) && !strings.EqualFold(u.Gender, f.Gender) {
		return false
	}

	if !isAll(f.Denomination) &&
		!strings.Contains(strings.ToLower(u.Denomination), strings.ToLower(f.Denomination)) {
		return false
	}

	// An unrecognized tier value behaves as "all" rather than matching nobody.
	if !isAll(f.Tier) && knownTier(f.Tier) && !strings.EqualFold(u.Tier, f.Tier) {
		return false
	}

	if !isAll(f.Category) && !categoryMatch(u, f.Category) {
		return false
	}

	return true
}

// categoryMatch checks the category against what the user is looking for and
// their interest tags.
func categoryMatch(u users.User, category string) bool {
	if strings.EqualFold(u.LookingFor, category) {
		return true
	}
	for _, tag := range u.Interests {
		if strings.EqualFold(tag, category) {
			return true
		}
	}
	return false
}

func knownTier(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "bronze", "silver", "gold", "platinum", "diamond":
		return true
	}
	return false
}
