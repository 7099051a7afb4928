package discover

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

func TestExcludeViewer(t *testing.T) {
	list := []users.User{{ID: 1}, {ID: 2}, {ID: 3}}

	out := excludeViewer(list, 2)
	require.Len(t, out, 2)
	assert.Equal(t, uint(1), out[0].ID)
	assert.Equal(t, uint(3), out[1].ID)

	// Viewer not in the list: everything passes through in order.
	out = excludeViewer(list, 99)
	assert.Len(t, out, 3)

	assert.Empty(t, excludeViewer(nil, 1))
}

func TestRosterStoreServesCachedCollection(t *testing.T) {
	// The roster mirror is what keeps discover serving when a refresh fails;
	// a populated store must hand back the collection viewer-filtered.
	roster.SetRoster([]users.User{{ID: 5, Name: "Grace"}, {ID: 6, Name: "Ruth"}})
	defer roster.Clear()

	cached := roster.Roster()
	require.Len(t, cached, 2)

	out := excludeViewer(cached, 5)
	require.Len(t, out, 1)
	assert.Equal(t, "Ruth", out[0].Name)
}
