package session

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/eklipse1999/dating-platform-sub000/internal/domain/users"
)

const (
	keyUser = "session.current_user"
	keyAuth = "session.is_authenticated"
)

// KV is the string key-value store the session round-trips through.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Delete(key string)
}

// Store owns the session's mutable state: the authenticated user and the
// user collection the discover pipeline reads. Build one per session with
// NewStore; there is no package-level singleton so the derived computations
// stay testable.
type Store struct {
	mu      sync.RWMutex
	kv      KV
	current *users.User
	roster  []users.User
}

func NewStore(kv KV) *Store {
	if kv == nil {
		kv = NewMemoryKV()
	}
	s := &Store{kv: kv}
	s.load()
	return s
}

// Current returns the authenticated user, or nil when logged out.
func (s *Store) Current() *users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return nil
	}
	u := *s.current
	return &u
}

// SetCurrent replaces the session user wholesale and mirrors it to the
// backing store. The session user is refreshed this way on login, logout and
// profile update rather than field by field.
func (s *Store) SetCurrent(u users.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &u

	buf, err := json.Marshal(u)
	if err != nil {
		log.Error().Err(err).Msg("failed to serialize session user")
		return
	}
	s.kv.Set(keyUser, string(buf))
	s.kv.Set(keyAuth, "true")
}

// Clear logs the session out and drops both persisted keys.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.roster = nil
	s.kv.Delete(keyUser)
	s.kv.Delete(keyAuth)
}

// Roster returns the session's user collection (a copy).
func (s *Store) Roster() []users.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]users.User, len(s.roster))
	copy(out, s.roster)
	return out
}

// SetRoster replaces the user collection for the session. Held in memory
// only; the roster is refetched, never persisted.
func (s *Store) SetRoster(list []users.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roster = make([]users.User, len(list))
	copy(s.roster, list)
}

// load restores the persisted session. A corrupt payload is recoverable:
// both keys are cleared and the session starts logged out.
func (s *Store) load() {
	raw, ok := s.kv.Get(keyUser)
	if !ok || raw == "" {
		return
	}

	var u users.User
	if err := decodeWithDates([]byte(raw), &u); err != nil {
		log.Warn().Err(err).Msg("corrupt persisted session, clearing")
		s.kv.Delete(keyUser)
		s.kv.Delete(keyAuth)
		return
	}
	s.current = &u
}

// MemoryKV is the in-process KV used by default and in tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]string
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: map[string]string{}}
}

func (m *MemoryKV) Get(key string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *MemoryKV) Set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *MemoryKV) Delete(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
}
