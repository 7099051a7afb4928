package access

import (
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

// ApplyDiscoveryCap trims the discover feed for restricted viewers.
// Binary, not gradual: full discovery sees everything, capped viewers see
// only the leading DiscoveryCap records of the already-filtered list.
func ApplyDiscoveryCap(caps Capabilities, list []users.User) []users.User {
	if caps.CanViewFullDiscovery || len(list) <= DiscoveryCap {
		return list
	}
	return list[:DiscoveryCap]
}
