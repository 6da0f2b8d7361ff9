// Package models defines the case-management records exchanged with the
// Judix backend: users, cases, and the request payloads that mutate them.
package models

import "time"

// User is the account profile as reported by the backend. The client keeps a
// cached copy for display only; the server remains the source of truth.
type User struct {
	ID        string    `json:"_id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Registration is the payload for creating a new account.
type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Bio      string `json:"bio,omitempty"`
}

// ProfileUpdate patches the mutable profile fields. Nil fields are omitted
// from the request and left unchanged by the server.
type ProfileUpdate struct {
	Username *string `json:"username,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}
