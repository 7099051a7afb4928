package discover

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

// Sort keys accepted by Search. Anything else falls back to SortRecent.
const (
	SortRecent  = "recent"
	SortPopular = "popular"
	SortNearest = "nearest"
	SortName    = "name"
)

// missingDistance ranks users with no parseable distance after everyone else.
const missingDistance = 999

var nameCollator = collate.New(language.English, collate.IgnoreCase)

// sortUsers orders the slice in place. Sorts are stable so equal keys keep
// their relative input order across runs.
func sortUsers(list []users.User, sortBy string) {
	switch sortBy {
	case SortPopular:
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].Likes > list[j].Likes
		})
	case SortNearest:
		sort.SliceStable(list, func(i, j int) bool {
			return parseDistance(list[i].Distance) < parseDistance(list[j].Distance)
		})
	case SortName:
		sort.SliceStable(list, func(i, j int) bool {
			return nameCollator.CompareString(displayName(list[i]), displayName(list[j])) < 0
		})
	default: // SortRecent
		sort.SliceStable(list, func(i, j int) bool {
			return list[i].CreatedAt.After(list[j].CreatedAt)
		})
	}
}

func displayName(u users.User) string {
	if u.Name != "" {
		return u.Name
	}
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// parseDistance pulls the leading numeric part out of a display string like
// "3.2 km away". Missing or unparseable distances sort last.
func parseDistance(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return missingDistance
	}
	end := 0
	for end < len(s) && (s[end] >= '0' && s[end] <= '9' || s[end] == '.') {
		end++
	}
	if end == 0 {
		return missingDistance
	}
	v, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return missingDistance
	}
	return v
}
