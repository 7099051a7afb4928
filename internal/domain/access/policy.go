package access

import (
	"time"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/membership"
	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

// Evaluate computes the capability flags for a user at the given instant.
//
// Pass "now" in from the caller and capture it once per request; calling a
// wall clock inside each check can report a trial active in one flag and
// expired in the next.
//
// CanScheduleDates is the flat account-age rule only. Admin bypass for date
// scheduling is applied at the call sites that want it, not here.
func Evaluate(now time.Time, u users.User) Capabilities {
	trial := membership.TrialStatus(now, u.TrialWindow())
	unlocked := u.IsAdmin() || u.Points > 0 || trial.InTrial

	return Capabilities{
		CanMessage:           unlocked,
		CanScheduleDates:     membership.AccountAgeDays(u.CreatedAt, now) >= MinAccountAgeDays,
		CanViewFullDiscovery: unlocked,
	}
}
