package access

const (
	// MinAccountAgeDays is how old an account must be before date
	// scheduling unlocks. Flat threshold, no trial or points shortcut.
	MinAccountAgeDays = 21

	// DiscoveryCap bounds the discover feed for zero-point users without
	// an active trial. Any positive balance lifts the cap entirely.
	DiscoveryCap = 15
)

// Capabilities are derived per evaluation from (now, user) and never stored;
// "now" advances, so a cached flag goes stale immediately.
type Capabilities struct {
	CanMessage           bool `json:"can_message"`
	CanScheduleDates     bool `json:"can_schedule_dates"`
	CanViewFullDiscovery bool `json:"can_view_full_discovery"`
}
