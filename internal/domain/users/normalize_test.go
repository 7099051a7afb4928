package users

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_CasingAliases(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]interface{}
	}{
		{
			name: "snake_case",
			raw: map[string]interface{}{
				"first_name": "Grace", "last_name": "Okoro",
				"email": "grace@example.com", "church_name": "Hillside Chapel",
			},
		},
		{
			name: "PascalCase",
			raw: map[string]interface{}{
				"FirstName": "Grace", "LastName": "Okoro",
				"Email": "grace@example.com", "ChurchName": "Hillside Chapel",
			},
		},
		{
			name: "camelCase",
			raw: map[string]interface{}{
				"firstName": "Grace", "lastName": "Okoro",
				"email": "grace@example.com", "churchName": "Hillside Chapel",
			},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := Normalize(tc.raw)
			assert.Equal(t, "Grace", u.FirstName)
			assert.Equal(t, "Okoro", u.LastName)
			assert.Equal(t, "grace@example.com", u.Email)
			assert.Equal(t, "Hillside Chapel", u.ChurchName)
		})
	}
}

func TestNormalize_PointsClampedAndTierRecomputed(t *testing.T) {
	u := Normalize(map[string]interface{}{"points": float64(-40)})
	assert.Equal(t, 0, u.Points)
	assert.Equal(t, "Bronze", u.Tier)

	// An upstream tier claim is ignored; tier follows points.
	u = Normalize(map[string]interface{}{
		"points": float64(2000),
		"tier":   "Diamond",
	})
	assert.Equal(t, 2000, u.Points)
	assert.Equal(t, "Gold", u.Tier)
}

func TestNormalize_MissingFieldsDefaultSafely(t *testing.T) {
	u := Normalize(map[string]interface{}{"email": "empty@example.com"})

	assert.Equal(t, 0, u.Points)
	assert.Equal(t, "Bronze", u.Tier)
	assert.Nil(t, u.Age)
	assert.Nil(t, u.TrialStartAt)
	assert.Nil(t, u.TrialEndAt)
	assert.False(t, u.TrialUsed)
	assert.Equal(t, "user", u.Role)
}

func TestNormalize_TrialWindowBothOrNeither(t *testing.T) {
	u := Normalize(map[string]interface{}{
		"trial_start_at": "2026-03-01T00:00:00Z",
	})
	assert.Nil(t, u.TrialStartAt, "a lone start timestamp means no trial")
	assert.Nil(t, u.TrialEndAt)

	u = Normalize(map[string]interface{}{
		"trialStartDate": "2026-03-01T00:00:00Z",
		"trialEndDate":   "2026-03-15T00:00:00Z",
	})
	require.NotNil(t, u.TrialStartAt)
	require.NotNil(t, u.TrialEndAt)
	assert.True(t, u.TrialEndAt.Equal(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)))
}

func TestNormalize_RoleOnlyAdminHonored(t *testing.T) {
	assert.Equal(t, "admin", Normalize(map[string]interface{}{"role": "ADMIN"}).Role)
	assert.Equal(t, "user", Normalize(map[string]interface{}{"role": "superuser"}).Role)
	assert.Equal(t, "user", Normalize(map[string]interface{}{}).Role)
}

func TestNormalize_Interests(t *testing.T) {
	u := Normalize(map[string]interface{}{
		"interests": []interface{}{"hiking", "worship", 42, "cooking"},
	})
	assert.Equal(t, StringSlice{"hiking", "worship", "cooking"}, u.Interests)
}

func TestTrialWindowExtraction(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	u := User{TrialStartAt: &start, TrialEndAt: &end, TrialUsed: true}

	w := u.TrialWindow()
	require.NotNil(t, w.Start)
	require.NotNil(t, w.End)
	assert.True(t, w.Start.Equal(start))
	assert.True(t, w.End.Equal(end))
	assert.True(t, w.Used)

	empty := User{}.TrialWindow()
	assert.Nil(t, empty.Start)
	assert.Nil(t, empty.End)
	assert.False(t, empty.Used)
}

func TestNormalize_AgeZeroTreatedAsMissing(t *testing.T) {
	u := Normalize(map[string]interface{}{"age": float64(0)})
	assert.Nil(t, u.Age)

	u = Normalize(map[string]interface{}{"Age": float64(29)})
	require.NotNil(t, u.Age)
	assert.Equal(t, 29, *u.Age)
}
