package models

// User represents the mock logged-in user. There is no account store;
// sessions live only in memory for the lifetime of the process.
type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SignInRequest represents the mock sign-in form
// Example: {"name": "Juan Pérez", "email": "juan@example.com"}
type SignInRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionResponse represents the response after sign-in or a session lookup
type SessionResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
