package validation

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `(?i)^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Domain validation pattern (bare domain, no scheme)
	DomainPattern = `(?i)^(?:[a-z0-9](?:[a-z0-9\-]{0,61}[a-z0-9])?\.)+[a-z]{2,}$`

	// Record identifier pattern - 24 alphanumeric characters
	IDPattern = `^[a-zA-Z0-9]{24}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email  *regexp.Regexp
	Domain *regexp.Regexp
	ID     *regexp.Regexp
}{
	Email:  regexp.MustCompile(EmailPattern),
	Domain: regexp.MustCompile(DomainPattern),
	ID:     regexp.MustCompile(IDPattern),
}

// passwordSymbols is the set counted as special characters
const passwordSymbols = "!@#$%^&*"

// StringRules is a builder describing the checks applied to one string field.
type StringRules struct {
	required bool
	minLen   int
	maxLen   int
	pattern  *regexp.Regexp
	enum     []string
	email    bool
	uri      bool
	domain   bool
	password bool
	isbn     bool
}

// String creates a new rule set. Fields are required unless Optional is set.
func String() *StringRules {
	return &StringRules{required: true}
}

// Optional marks the field as allowed to be empty
func (r *StringRules) Optional() *StringRules {
	r.required = false
	return r
}

// Min sets minimum length
func (r *StringRules) Min(min int) *StringRules {
	r.minLen = min
	return r
}

// Max sets maximum length
func (r *StringRules) Max(max int) *StringRules {
	r.maxLen = max
	return r
}

// Pattern sets a regex the value must match
func (r *StringRules) Pattern(pattern *regexp.Regexp) *StringRules {
	r.pattern = pattern
	return r
}

// Enum restricts the value to one of the given members
func (r *StringRules) Enum(values ...string) *StringRules {
	r.enum = values
	return r
}

// Email requires a valid email address
func (r *StringRules) Email() *StringRules {
	r.email = true
	return r
}

// URI requires an absolute URI with scheme and host
func (r *StringRules) URI() *StringRules {
	r.uri = true
	return r
}

// Domain requires a bare domain name
func (r *StringRules) Domain() *StringRules {
	r.domain = true
	return r
}

// Password requires the password-strength policy: at least one lowercase,
// one uppercase, one digit, one of !@#$%^&*, length 8-32.
func (r *StringRules) Password() *StringRules {
	r.password = true
	return r
}

// ISBN requires a checksum-valid ISBN-10 or ISBN-13
func (r *StringRules) ISBN() *StringRules {
	r.isbn = true
	return r
}

// ID requires a 24-character alphanumeric record identifier
func (r *StringRules) ID() *StringRules {
	return r.Pattern(CompiledPatterns.ID)
}

// validate applies the rules in declaration order and returns the first
// failure as a field-labelled message.
func (r *StringRules) validate(field, value string) error {
	if value == "" {
		if r.required {
			return fmt.Errorf("%q is required", field)
		}
		return nil
	}

	if r.minLen > 0 && len(value) < r.minLen {
		return fmt.Errorf("%q length must be at least %d characters", field, r.minLen)
	}
	if r.maxLen > 0 && len(value) > r.maxLen {
		return fmt.Errorf("%q length must be at most %d characters", field, r.maxLen)
	}

	if r.pattern != nil && !r.pattern.MatchString(value) {
		return fmt.Errorf("%q fails to match the required pattern", field)
	}

	if len(r.enum) > 0 {
		found := false
		for _, v := range r.enum {
			if value == v {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("%q must be one of [%s]", field, strings.Join(r.enum, ", "))
		}
	}

	if r.email && !CompiledPatterns.Email.MatchString(value) {
		return fmt.Errorf("%q must be a valid email", field)
	}

	if r.uri {
		parsed, err := url.Parse(value)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("%q must be a valid uri", field)
		}
	}

	if r.domain && !CompiledPatterns.Domain.MatchString(value) {
		return fmt.Errorf("%q must contain a valid domain name", field)
	}

	if r.password {
		if err := checkPasswordStrength(field, value); err != nil {
			return err
		}
	}

	if r.isbn && !IsISBN(value) {
		return fmt.Errorf("%q must be a valid ISBN", field)
	}

	return nil
}

// checkPasswordStrength scans character classes instead of using regex
// lookaheads, which RE2 does not support.
func checkPasswordStrength(field, value string) error {
	weak := fmt.Errorf("%q too weak, needs 1 lowercase, 1 uppercase, 1 number, 1 special character and between 8-32", field)

	if len(value) < 8 || len(value) > 32 {
		return weak
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range value {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSymbols, r):
			hasSymbol = true
		}
	}

	if !hasLower || !hasUpper || !hasDigit || !hasSymbol {
		return weak
	}
	return nil
}
