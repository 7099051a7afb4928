package membership

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAccountAgeDays(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 0, AccountAgeDays(created, created))
	assert.Equal(t, 0, AccountAgeDays(created, created.Add(23*time.Hour)))
	assert.Equal(t, 1, AccountAgeDays(created, created.Add(24*time.Hour)))
	assert.Equal(t, 25, AccountAgeDays(created, created.AddDate(0, 0, 25)))
}

func TestAccountAgeDays_ClockSkew(t *testing.T) {
	created := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	// Creation timestamp ahead of "now": absolute-valued, never negative.
	age := AccountAgeDays(created, created.Add(-48*time.Hour))
	assert.Equal(t, 2, age)
}
