package models

import (
	"encoding/json"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewID(t *testing.T) {
	hexID := regexp.MustCompile(`^[0-9a-f]{24}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Regexp(t, hexID, id)
		assert.False(t, seen[id], "ids must not repeat")
		seen[id] = true
	}
}

func TestNow(t *testing.T) {
	now := Now()

	assert.Equal(t, time.UTC, now.Location())
	assert.Zero(t, now.Nanosecond())
}

func TestUserJSONRedactsPassword(t *testing.T) {
	user := &User{
		ID:            NewID(),
		Name:          "Alice",
		Email:         "alice@mit.edu",
		Role:          RoleStudent,
		Password:      "$2a$10$secret-hash",
		InstitutionID: "5f2b8c9d4e1a7b3c6d9e0f1a",
		CreatedAt:     Now(),
	}

	raw, err := json.Marshal(user)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.NotContains(t, decoded, "password")
	assert.Equal(t, "5f2b8c9d4e1a7b3c6d9e0f1a", decoded["institution"])
	assert.NotContains(t, decoded, "institutionRecord")
}

func TestBookJSONReferences(t *testing.T) {
	book := &Book{
		ID:            NewID(),
		ISBN:          "9780306406157",
		Title:         "Gravitation",
		AuthorID:      "aaaaaaaaaaaaaaaaaaaaaaaa",
		InstitutionID: "bbbbbbbbbbbbbbbbbbbbbbbb",
		CreatedAt:     Now(),
	}

	raw, err := json.Marshal(book)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaa", decoded["author"])
	assert.Equal(t, "bbbbbbbbbbbbbbbbbbbbbbbb", decoded["institution"])
	assert.NotContains(t, decoded, "authorRecord")
	assert.NotContains(t, decoded, "institutionRecord")
}

func TestBookJSONExpandedRelations(t *testing.T) {
	book := &Book{
		ID:            NewID(),
		ISBN:          "9780306406157",
		Title:         "Gravitation",
		AuthorID:      "aaaaaaaaaaaaaaaaaaaaaaaa",
		InstitutionID: "bbbbbbbbbbbbbbbbbbbbbbbb",
		CreatedAt:     Now(),
		Author:        &Author{ID: "aaaaaaaaaaaaaaaaaaaaaaaa", Name: "Misner", CreatedAt: Now()},
		Institution:   &Institution{ID: "bbbbbbbbbbbbbbbbbbbbbbbb", Name: "MIT", CreatedAt: Now()},
	}

	raw, err := json.Marshal(book)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))

	assert.Contains(t, decoded, "authorRecord")
	assert.Contains(t, decoded, "institutionRecord")
	assert.Equal(t, "aaaaaaaaaaaaaaaaaaaaaaaa", decoded["author"])
}

func TestRoles(t *testing.T) {
	assert.Equal(t, []string{"student", "academic", "administrator"}, Roles())
}
