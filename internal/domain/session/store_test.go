package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

func sessionUser() users.User {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 14)
	return users.User{
		ID:           7,
		Name:         "Ruth Adeyemi",
		Email:        "ruth@example.com",
		Points:       1200,
		Tier:         "Silver",
		TrialStartAt: &start,
		TrialEndAt:   &end,
		CreatedAt:    start,
	}
}

func TestStore_RoundTripThroughKV(t *testing.T) {
	kv := NewMemoryKV()

	first := NewStore(kv)
	first.SetCurrent(sessionUser())

	// A fresh store over the same KV restores the persisted session.
	second := NewStore(kv)
	got := second.Current()
	require.NotNil(t, got)
	assert.Equal(t, uint(7), got.ID)
	assert.Equal(t, "ruth@example.com", got.Email)
	assert.Equal(t, 1200, got.Points)
	require.NotNil(t, got.TrialEndAt)
	assert.True(t, got.TrialEndAt.Equal(got.TrialStartAt.AddDate(0, 0, 14)))

	_, ok := kv.Get("session.is_authenticated")
	assert.True(t, ok)
}

func TestStore_CorruptPayloadClearsBothKeys(t *testing.T) {
	kv := NewMemoryKV()
	kv.Set(keyUser, `{"id": not-json`)
	kv.Set(keyAuth, "true")

	s := NewStore(kv)
	assert.Nil(t, s.Current(), "corrupt session must start logged out")

	_, ok := kv.Get(keyUser)
	assert.False(t, ok)
	_, ok = kv.Get(keyAuth)
	assert.False(t, ok)
}

func TestStore_ClearDropsKeys(t *testing.T) {
	kv := NewMemoryKV()
	s := NewStore(kv)
	s.SetCurrent(sessionUser())
	s.SetRoster([]users.User{sessionUser()})

	s.Clear()

	assert.Nil(t, s.Current())
	assert.Empty(t, s.Roster())
	_, ok := kv.Get(keyUser)
	assert.False(t, ok)
	_, ok = kv.Get(keyAuth)
	assert.False(t, ok)
}

func TestStore_CurrentReturnsCopy(t *testing.T) {
	s := NewStore(nil)
	s.SetCurrent(sessionUser())

	got := s.Current()
	require.NotNil(t, got)
	got.Points = 0

	again := s.Current()
	assert.Equal(t, 1200, again.Points, "mutating the returned copy must not touch the store")
}

func TestStore_RosterIsCopied(t *testing.T) {
	s := NewStore(nil)
	list := []users.User{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	s.SetRoster(list)

	list[0].Name = "mutated"
	got := s.Roster()
	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Name)
}
