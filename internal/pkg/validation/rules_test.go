package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
)

func TestStringRulesLength(t *testing.T) {
	rules := String().Min(1).Max(5)

	assert.NoError(t, rules.validate("name", "abc"))
	assert.EqualError(t, rules.validate("name", ""), `"name" is required`)
	assert.EqualError(t, rules.validate("name", "abcdef"), `"name" length must be at most 5 characters`)

	long := String().Min(3)
	assert.EqualError(t, long.validate("name", "ab"), `"name" length must be at least 3 characters`)
}

func TestStringRulesOptional(t *testing.T) {
	rules := String().Optional().Email()

	assert.NoError(t, rules.validate("email", ""))
	assert.Error(t, rules.validate("email", "not-an-email"))
}

func TestStringRulesEmail(t *testing.T) {
	rules := String().Email()

	assert.NoError(t, rules.validate("email", "alice@mit.edu"))
	assert.NoError(t, rules.validate("email", "bob.smith+tag@sub.example.com"))
	assert.EqualError(t, rules.validate("email", "not-an-email"), `"email" must be a valid email`)
	assert.Error(t, rules.validate("email", "missing@tld"))
	assert.Error(t, rules.validate("email", "@example.com"))
}

func TestStringRulesURI(t *testing.T) {
	rules := String().URI()

	assert.NoError(t, rules.validate("url", "https://library.mit.edu"))
	assert.NoError(t, rules.validate("url", "http://example.com/path"))
	assert.EqualError(t, rules.validate("url", "library.mit.edu"), `"url" must be a valid uri`)
	assert.Error(t, rules.validate("url", "://broken"))
}

func TestStringRulesDomain(t *testing.T) {
	rules := String().Domain()

	assert.NoError(t, rules.validate("domain", "mit.edu"))
	assert.NoError(t, rules.validate("domain", "sub.example.co.uk"))
	assert.EqualError(t, rules.validate("domain", "https://mit.edu"), `"domain" must contain a valid domain name`)
	assert.Error(t, rules.validate("domain", "no-dots"))
	assert.Error(t, rules.validate("domain", "-leading.edu"))
}

func TestStringRulesEnum(t *testing.T) {
	rules := String().Enum("student", "academic", "administrator")

	assert.NoError(t, rules.validate("role", "student"))
	assert.NoError(t, rules.validate("role", "administrator"))
	assert.EqualError(t, rules.validate("role", "librarian"),
		`"role" must be one of [student, academic, administrator]`)
}

func TestStringRulesPassword(t *testing.T) {
	rules := String().Password()
	weak := `"password" too weak, needs 1 lowercase, 1 uppercase, 1 number, 1 special character and between 8-32`

	assert.NoError(t, rules.validate("password", "Passw0rd!"))
	assert.NoError(t, rules.validate("password", "Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!"))

	tests := []struct {
		name  string
		value string
	}{
		{"no uppercase", "passw0rd!"},
		{"no lowercase", "PASSW0RD!"},
		{"no digit", "Password!"},
		{"no symbol", "Passw0rd1"},
		{"too short", "Pw0!abc"},
		{"too long", "Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!Aa1!X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.EqualError(t, rules.validate("password", tt.value), weak)
		})
	}
}

func TestStringRulesISBN(t *testing.T) {
	rules := String().Min(1).Max(36).ISBN()

	assert.NoError(t, rules.validate("isbn", "9780306406157"))
	assert.EqualError(t, rules.validate("isbn", "1234567890123"), `"isbn" must be a valid ISBN`)
}

func TestStringRulesID(t *testing.T) {
	rules := String().ID()

	assert.NoError(t, rules.validate("id", "5f2b8c9d4e1a7b3c6d9e0f1a"))
	assert.Error(t, rules.validate("id", "short"))
	assert.Error(t, rules.validate("id", "5f2b8c9d4e1a7b3c6d9e0f1a77"))
	assert.Error(t, rules.validate("id", "5f2b8c9d4e1a7b3c6d9e0f1-"))
}

func TestSchemaShortCircuits(t *testing.T) {
	err := NewSchema().
		Field("name", "", String().Min(1).Max(36)).
		Field("email", "also-invalid", String().Email()).
		Validate()

	require.Error(t, err)
	assert.EqualError(t, err, `"name" is required`)
	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))

	var verr *apperrors.ValidationError
	assert.True(t, errors.As(err, &verr))
}

func TestSchemaAllFieldsPass(t *testing.T) {
	err := NewSchema().
		Field("name", "MIT Libraries", String().Min(1).Max(36)).
		Field("url", "https://libraries.mit.edu", String().URI()).
		Field("domain", "mit.edu", String().Domain()).
		Validate()

	assert.NoError(t, err)
}
