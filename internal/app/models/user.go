package models

import (
	"time"
)

// User defines the user model based on the 'users' table. The password hash
// never serializes to JSON. InstitutionID is derived from the email domain
// at creation, never supplied by the caller.
type User struct {
	ID            string    `json:"id" db:"id"`
	Name          string    `json:"name" db:"name"`
	Email         string    `json:"email" db:"email"` // unique
	Role          RoleType  `json:"role" db:"role"`
	Password      string    `json:"-" db:"password"` // bcrypt hash, excluded from JSON
	InstitutionID string    `json:"institution" db:"institution_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	Institution *Institution `json:"institutionRecord,omitempty"` // relation, no db tag
}
