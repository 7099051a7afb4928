package membership

import "time"

// TrialWindow is the slice of a user record the trial machine reads. Keeping
// it here, rather than taking the full user type, keeps this package a leaf:
// the users package depends on membership for tier resolution, not the other
// way around.
type TrialWindow struct {
	Start *time.Time
	End   *time.Time
	Used  bool
}

// TrialState describes where a user stands relative to their trial window.
type TrialState struct {
	InTrial       bool
	DaysRemaining int
	Expired       bool
}

// TrialStatus computes the trial state at the given instant. The window is
// half-open: [Start, End).
//
// This is the single canonical trial predicate: a trial counts as active only
// while now is inside the window AND the account has not already consumed its
// one trial (Used). A used trial is reported the same as an expired one when
// the window is over, and as inactive while the window would otherwise be
// open.
func TrialStatus(now time.Time, w TrialWindow) TrialState {
	if w.Start == nil || w.End == nil {
		return TrialState{}
	}
	if now.Before(*w.Start) {
		// Not yet begun; not expired either.
		return TrialState{}
	}
	if !now.Before(*w.End) {
		return TrialState{Expired: true}
	}
	if w.Used {
		return TrialState{}
	}
	return TrialState{
		InTrial:       true,
		DaysRemaining: ceilDays(w.End.Sub(now)),
	}
}

// ceilDays rounds a positive duration up to whole days, so any fractional
// day left still reports at least 1.
func ceilDays(d time.Duration) int {
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}
