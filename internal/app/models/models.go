package models

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// RoleType represents a user's role inside their institution
type RoleType string

const (
	RoleStudent       RoleType = "student"
	RoleAcademic      RoleType = "academic"
	RoleAdministrator RoleType = "administrator"
)

// Roles lists the accepted role values, in the order they are reported in
// validation messages.
func Roles() []string {
	return []string{string(RoleStudent), string(RoleAcademic), string(RoleAdministrator)}
}

// NewID generates a 24-character lowercase-hex record identifier.
func NewID() string {
	b := make([]byte, 12)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return hex.EncodeToString(b)
}

// Now returns the server-clock creation timestamp, UTC, second precision.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}
