package models

import (
	"time"
)

// Book defines the book model based on the 'books' table. AuthorID and
// InstitutionID are references; single-record fetches expand them into the
// Author and Institution fields, collection fetches leave them nil.
type Book struct {
	ID            string    `json:"id" db:"id"`
	ISBN          string    `json:"isbn" db:"isbn"` // unique, checksum-verified
	Title         string    `json:"title" db:"title"`
	AuthorID      string    `json:"author" db:"author_id"`
	InstitutionID string    `json:"institution" db:"institution_id"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`

	Author      *Author      `json:"authorRecord,omitempty"`      // relation, no db tag
	Institution *Institution `json:"institutionRecord,omitempty"` // relation, no db tag
}
