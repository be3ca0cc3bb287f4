package validation

import (
	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
)

// Schema validates an ordered set of fields. The first failing field
// short-circuits: later fields are not evaluated and the resulting error
// carries that field's message.
type Schema struct {
	err error
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{}
}

// Field applies the given rules to a named value.
func (s *Schema) Field(name, value string, rules *StringRules) *Schema {
	if s.err != nil {
		return s
	}
	if err := rules.validate(name, value); err != nil {
		s.err = apperrors.NewValidationError(err.Error())
	}
	return s
}

// Validate returns the first validation failure, or nil when every field
// passed.
func (s *Schema) Validate() error {
	return s.err
}
