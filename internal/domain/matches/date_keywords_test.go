package matches

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsDateKeyword(t *testing.T) {
	tests := []struct {
		body string
		want bool
	}{
		{"Would you like to grab coffee this weekend?", true},
		{"LET'S MEET after church on Sunday", true},
		{"lets meet by the riverside", true},
		{"Hoping to see you in person soon", true},
		{"I love your profile, how was your week?", false},
		{"The coffee at that place is great", false},
		{"", false},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ContainsDateKeyword(tc.body), "body: %q", tc.body)
	}
}
