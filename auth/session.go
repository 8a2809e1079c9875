package auth

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"

	"sketchtostitch-me/models"
)

// SessionManager holds the mock logged-in users. Sessions are in-memory
// only: restarting the process signs everyone out. There is no password
// and no account store; any non-empty name/email pair signs in.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]models.User
}

// NewSessionManager creates an empty session manager
func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]models.User),
	}
}

// newToken generates an opaque session token
func newToken() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// SignIn creates a session for the given user. Name and email must be
// non-empty; nothing else is checked.
func (m *SessionManager) SignIn(name, email string) (string, models.User, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(email) == "" {
		return "", models.User{}, fmt.Errorf("name and email are required")
	}

	token, err := newToken()
	if err != nil {
		return "", models.User{}, err
	}

	user := models.User{Name: name, Email: email}

	m.mu.Lock()
	m.sessions[token] = user
	m.mu.Unlock()

	log.Printf("✅ SignIn: Session created for %s", email)
	return token, user, nil
}

// Lookup returns the user for a token, if the session exists
func (m *SessionManager) Lookup(token string) (models.User, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	user, ok := m.sessions[token]
	return user, ok
}

// SignOut removes the session for a token. Unknown tokens are a no-op.
func (m *SessionManager) SignOut(token string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, token)
}

// tokenFromRequest extracts the session token from the Authorization
// header ("Bearer <token>") or the X-Session-Token header.
func tokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.Header.Get("X-Session-Token")
}

// RequireSession wraps a handler so it only runs with a valid session.
// Every route except home, ping and auth is gated this way.
func (m *SessionManager) RequireSession(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			http.Error(w, "Authentication required", http.StatusUnauthorized)
			return
		}
		if _, ok := m.Lookup(token); !ok {
			http.Error(w, "Invalid or expired session", http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

// SignOutRequest removes the session carried by the request, if any
func (m *SessionManager) SignOutRequest(r *http.Request) {
	if token := tokenFromRequest(r); token != "" {
		m.SignOut(token)
	}
}

// UserFromRequest resolves the request's session to its user
func (m *SessionManager) UserFromRequest(r *http.Request) (models.User, bool) {
	return m.Lookup(tokenFromRequest(r))
}
