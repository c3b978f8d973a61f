// Package models contains the persistent record types of the server.
package models

import "time"

// User is an identity record. The store assigns the ID; exactly one user
// exists per email (enforced by a unique index, see migrations).
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
