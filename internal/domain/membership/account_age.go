package membership

import (
	"time"

	"github.com/rs/zerolog/log"
)

// AccountAgeDays returns whole days elapsed since the account was created.
// A negative raw difference (clock skew, bad import) is absolute-valued so
// callers never see a negative age, but it is worth a diagnostic.
func AccountAgeDays(createdAt, now time.Time) int {
	elapsed := now.Sub(createdAt)
	if elapsed < 0 {
		log.Warn().
			Time("created_at", createdAt).
			Time("now", now).
			Msg("account created in the future, using absolute elapsed time")
		elapsed = -elapsed
	}
	return int(elapsed / (24 * time.Hour))
}
