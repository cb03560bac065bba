// Package models defines the data the client exchanges with the Smart Auto
// Rental API and keeps in its local state. Server-authoritative enumerations
// (booking status, payment status, roles other than ADMIN) are carried as
// opaque strings and never interpreted beyond display.
package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// RoleAdmin is the one role the client reacts to: it gates the admin panel.
const RoleAdmin = "ADMIN"

// User is the identity returned by the login endpoint.
type User struct {
	ID    int64  `json:"id,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session is the authenticated identity plus bearer token. Token and User
// are always set and cleared together; a session with only one of them is
// never persisted.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Active reports whether the session carries both a token and a user.
func (s Session) Active() bool {
	return s.Token != "" && s.User != nil
}

// IsAdmin reports whether the session belongs to an ADMIN user.
func (s Session) IsAdmin() bool {
	return s.Active() && s.User.Role == RoleAdmin
}

// TokenExpiry extracts the expiry instant from the bearer token's exp claim
// without verifying the signature (the client has no key and does not need
// one; expiry is display-only and enforcement stays server-side).
// Returns false when the token is absent, not a JWT, or has no exp claim.
func (s Session) TokenExpiry() (time.Time, bool) {
	if s.Token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(s.Token, claims); err != nil {
		return time.Time{}, false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// AuthResponse is the payload of POST /api/v1/auth/login.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}
