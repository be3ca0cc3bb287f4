package models

import (
	"time"
)

// Institution is the tenant root. Every author, book and user belongs to
// exactly one institution; users are bound through their email domain.
type Institution struct {
	ID        string    `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	URL       string    `json:"url" db:"url"`
	Domain    string    `json:"domain" db:"domain"` // unique across institutions
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}
