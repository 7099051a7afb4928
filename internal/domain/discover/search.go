package discover

import (
	"strings"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

// Filter runs the text-match and structured-filter stages and preserves the
// source order. This is the dashboard variant; Search adds the sort stage.
func Filter(list []users.User, query string, f FilterState) []users.User {
	query = strings.ToLower(strings.TrimSpace(query))

	out := make([]users.User, 0, len(list))
	for _, u := range list {
		if query != "" && !textMatch(u, query) {
			continue
		}
		if !f.Matches(u) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Search is the full pipeline used on the browse page: text match, structured
// filters, then sort. An empty or unknown sort key falls back to "recent".
func Search(list []users.User, query string, f FilterState, sortBy string) []users.User {
	out := Filter(list, query, f)
	sortUsers(out, sortBy)
	return out
}

// textMatch checks the lowercased query as a substring of a fixed, ordered
// field set. A user matches if any field contains it.
func textMatch(u users.User, query string) bool {
	fields := []string{
		u.Name,
		u.FirstName,
		u.LastName,
		derefStr(u.UserName),
		u.Bio,
		u.Career,
		u.Denomination,
		u.ChurchName,
		u.ChurchBranch,
		u.City,
		u.Country,
		u.LookingFor,
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	for _, tag := range u.Interests {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func derefStr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
