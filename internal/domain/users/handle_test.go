package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// gormStub covers the paths that return before touching the connection.
func gormStub() *gorm.DB { return &gorm.DB{} }

func TestMakeHandle(t *testing.T) {
	tests := []struct {
		first, last string
		want        string
	}{
		{"Grace", "Adeyemi", "grace-adeyemi"},
		{"  Mary Jane ", "O'Brien", "mary-jane-obrien"},
		{"Jean--Luc", "Picard", "jean-luc-picard"},
		{"", "", "member"},
		{"!!!", "???", "member"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, MakeHandle(tc.first, tc.last))
	}
}

func TestEnsureHandle_KeepsExisting(t *testing.T) {
	existing := "grace-adeyemi-7"
	u := &User{ID: 7, UserName: &existing}

	// An existing handle short-circuits before any DB work, so a nil-safe
	// placeholder is enough here.
	got, err := EnsureHandle(gormStub(), u)
	assert.NoError(t, err)
	assert.Equal(t, "grace-adeyemi-7", got)
}

func TestEnsureHandle_RequiresPersistedUser(t *testing.T) {
	_, err := EnsureHandle(gormStub(), &User{FirstName: "Grace"})
	assert.Error(t, err)

	_, err = EnsureHandle(gormStub(), nil)
	assert.Error(t, err)

	_, err = EnsureHandle(nil, &User{ID: 1})
	assert.Error(t, err)
}
