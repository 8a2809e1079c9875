package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionManager_SignInAndLookup(t *testing.T) {
	m := NewSessionManager()

	token, user, err := m.SignIn("Juan Pérez", "juan@example.com")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "Juan Pérez", user.Name)

	found, ok := m.Lookup(token)
	assert.True(t, ok)
	assert.Equal(t, user, found)
}

func TestSessionManager_SignIn_RequiresNameAndEmail(t *testing.T) {
	m := NewSessionManager()

	_, _, err := m.SignIn("", "juan@example.com")
	assert.Error(t, err)
	_, _, err = m.SignIn("Juan", "")
	assert.Error(t, err)
	_, _, err = m.SignIn("   ", "juan@example.com")
	assert.Error(t, err)
}

func TestSessionManager_SignOut(t *testing.T) {
	m := NewSessionManager()
	token, _, err := m.SignIn("Juan", "juan@example.com")
	require.NoError(t, err)

	m.SignOut(token)
	_, ok := m.Lookup(token)
	assert.False(t, ok)

	// Unknown token is a no-op
	m.SignOut("nope")
}

func TestSessionManager_TokensAreUnique(t *testing.T) {
	m := NewSessionManager()
	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		token, _, err := m.SignIn("Juan", "juan@example.com")
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}

func TestRequireSession_RejectsMissingAndInvalidTokens(t *testing.T) {
	m := NewSessionManager()
	handler := m.RequireSession(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// No token at all
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/design", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Unknown token
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/design", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	handler(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireSession_AllowsValidToken(t *testing.T) {
	m := NewSessionManager()
	token, _, err := m.SignIn("Juan", "juan@example.com")
	require.NoError(t, err)

	handler := m.RequireSession(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Authorization header
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/design", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// X-Session-Token header
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/design", nil)
	req.Header.Set("X-Session-Token", token)
	handler(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserFromRequest(t *testing.T) {
	m := NewSessionManager()
	token, user, err := m.SignIn("Juan", "juan@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	found, ok := m.UserFromRequest(req)
	assert.True(t, ok)
	assert.Equal(t, user, found)
}

func TestSignOutRequest(t *testing.T) {
	m := NewSessionManager()
	token, _, err := m.SignIn("Juan", "juan@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/signout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.SignOutRequest(req)

	_, ok := m.Lookup(token)
	assert.False(t, ok)
}
