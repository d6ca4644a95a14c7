// Package session holds the in-process admin sessions and their
// idle-timeout policy.
package session

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// CookieName is the name of the browser cookie carrying the session token.
const CookieName = "bc_session"

// Session is the authentication state of one browser.
type Session struct {
	ID           string
	IsAdmin      bool
	LastActivity time.Time
}

// Manager owns every live session. Sessions live in process memory only;
// a restart logs every admin out, which is acceptable for a single shared
// credential pair.
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	secret   []byte
	idle     time.Duration
}

// NewManager creates a Manager with the given cookie-signing secret and
// idle timeout.
func NewManager(secret string, idle time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		secret:   []byte(secret),
		idle:     idle,
	}
}

// Create registers a new authenticated session stamped with now.
func (m *Manager) Create(now time.Time) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.create(now)
}

func (m *Manager) create(now time.Time) *Session {
	s := &Session{
		ID:           uuid.NewString(),
		IsAdmin:      true,
		LastActivity: now,
	}
	m.sessions[s.ID] = s
	return s
}

// Validate checks that the session exists, is authenticated and was active
// within the idle window. A valid session has its LastActivity refreshed
// to now; an expired one is destroyed.
func (m *Manager) Validate(id string, now time.Time) (*Session, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok || !s.IsAdmin {
		return nil, false
	}
	if now.Sub(s.LastActivity) >= m.idle {
		delete(m.sessions, id)
		return nil, false
	}

	s.LastActivity = now
	return s, true
}

// Regenerate destroys the old session (if any) and issues a fresh one with
// a new identity, so a pre-login session id can never become an
// authenticated one.
func (m *Manager) Regenerate(oldID string, now time.Time) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, oldID)
	return m.create(now)
}

// Destroy removes the session. Destroying an unknown id is a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}

// Token returns the cookie value for a session id: the id bound to an
// HMAC-SHA256 tag, so forged ids never reach the session table.
func (m *Manager) Token(id string) string {
	return id + "." + m.sign(id)
}

// ParseToken verifies a cookie value and returns the session id it holds.
func (m *Manager) ParseToken(token string) (string, bool) {
	id, tag, ok := strings.Cut(token, ".")
	if !ok || id == "" {
		return "", false
	}
	if !hmac.Equal([]byte(tag), []byte(m.sign(id))) {
		return "", false
	}
	return id, true
}

func (m *Manager) sign(id string) string {
	mac := hmac.New(sha256.New, m.secret)
	mac.Write([]byte(id))
	return hex.EncodeToString(mac.Sum(nil))
}
