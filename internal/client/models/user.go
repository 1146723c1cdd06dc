// Package models defines the wire types exchanged with the remindme backend
// and the client-side views derived from them.
package models

import "github.com/google/uuid"

// User is the authenticated account as returned by /auth/login and /auth/signup.
type User struct {
	ID    uuid.UUID `json:"uuid"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
