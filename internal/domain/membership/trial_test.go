package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func window(start, end time.Time, used bool) TrialWindow {
	return TrialWindow{Start: &start, End: &end, Used: used}
}

func TestTrialStatus_NoWindow(t *testing.T) {
	state := TrialStatus(time.Now(), TrialWindow{})
	assert.False(t, state.InTrial)
	assert.False(t, state.Expired)
	assert.Equal(t, 0, state.DaysRemaining)
}

func TestTrialStatus_LoneTimestampIsNoWindow(t *testing.T) {
	start := time.Now()
	state := TrialStatus(time.Now(), TrialWindow{Start: &start})
	assert.False(t, state.InTrial)
	assert.False(t, state.Expired)
}

func TestTrialStatus_WindowClosure(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	w := window(start, end, false)

	// One second before the window opens: inactive, not expired.
	state := TrialStatus(start.Add(-time.Second), w)
	assert.False(t, state.InTrial)
	assert.False(t, state.Expired)

	// Exactly at start: active, full window left.
	state = TrialStatus(start, w)
	assert.True(t, state.InTrial)
	assert.Equal(t, 14, state.DaysRemaining)

	// Exactly at end: half-open interval excludes it.
	state = TrialStatus(end, w)
	assert.False(t, state.InTrial)
	assert.True(t, state.Expired)
}

func TestTrialStatus_DaysRemainingCeiling(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	w := window(start, end, false)

	// 13.5 days in: half a day left still reports 1.
	state := TrialStatus(start.Add(13*24*time.Hour+12*time.Hour), w)
	assert.True(t, state.InTrial)
	assert.Equal(t, 1, state.DaysRemaining)

	// 10 days exactly remain: no rounding up of a whole number.
	state = TrialStatus(start.Add(4*24*time.Hour), w)
	assert.Equal(t, 10, state.DaysRemaining)
}

func TestTrialStatus_UsedVoidsActiveWindow(t *testing.T) {
	start := time.Now().Add(-24 * time.Hour)
	end := start.AddDate(0, 0, 14)
	w := window(start, end, true)

	state := TrialStatus(time.Now(), w)
	assert.False(t, state.InTrial, "a consumed trial never reactivates inside the window")
	assert.False(t, state.Expired)
}
