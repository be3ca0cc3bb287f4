package dto

import (
	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
)

// Envelope status values
const (
	StatusSuccess = "success"
	StatusFail    = "fail"
)

// Result is the uniform envelope returned by every core operation. Failure
// is data: resource operations answer HTTP 200 with a fail envelope, the
// only transport-level error is 401 for missing or invalid bearer tokens.
type Result struct {
	Status  string `json:"status"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

// Success wraps data in a success envelope.
func Success(data any) *Result {
	return &Result{Status: StatusSuccess, Data: data}
}

// Fail creates a fail envelope carrying only a message. Used for
// collaborator failures, which keep their raw message and carry no code.
func Fail(message string) *Result {
	return &Result{Status: StatusFail, Message: message}
}

// FailCode creates a fail envelope with a taxonomy code.
func FailCode(code int, message string) *Result {
	return &Result{Status: StatusFail, Message: message, Code: code}
}

// FailErr maps an error to a fail envelope: coded taxonomy errors carry
// their code, anything else surfaces its message verbatim.
func FailErr(err error) *Result {
	if code, ok := apperrors.CodeFor(err); ok {
		return FailCode(code, err.Error())
	}
	return Fail(err.Error())
}
