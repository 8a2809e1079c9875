package controller

import (
	"encoding/json"
	"log"
	"net/http"

	"sketchtostitch-me/auth"
	"sketchtostitch-me/models"
)

// AuthController handles HTTP requests for the mock sign-in flow
type AuthController struct {
	sessions *auth.SessionManager
}

// NewAuthController creates a new AuthController
func NewAuthController(sessions *auth.SessionManager) *AuthController {
	return &AuthController{sessions: sessions}
}

// SignIn handles POST /auth/signin
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ SignIn: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Printf("❌ SignIn: Invalid request body: %v", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	token, user, err := c.sessions.SignIn(req.Name, req.Email)
	if err != nil {
		log.Printf("❌ SignIn: %v", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.SessionResponse{Token: token, User: user}); err != nil {
		log.Printf("❌ SignIn: Error encoding response: %v", err)
	}
}

// SignOut handles POST /auth/signout
func (c *AuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		log.Printf("❌ SignOut: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.sessions.SignOutRequest(r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"signed out"}`))
}

// Session handles GET /auth/session
func (c *AuthController) Session(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		log.Printf("❌ Session: Method not allowed: %s", r.Method)
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	user, ok := c.sessions.UserFromRequest(r)
	if !ok {
		http.Error(w, "No active session", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(user); err != nil {
		log.Printf("❌ Session: Error encoding response: %v", err)
	}
}
