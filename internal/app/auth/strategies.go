// Package auth implements the authentication strategies consumed by the
// request-handling boundary. Each strategy is a pure function over its
// collaborators returning a discriminated Outcome; control flow stays
// explicit and no session state survives the request.
package auth

import (
	"context"
	"errors"

	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/app/models/dto"
	pkgauth "github.com/biblio-hq/biblio/internal/pkg/auth"
)

// OutcomeStatus discriminates the result of a strategy. Both end states are
// terminal for the request.
type OutcomeStatus int

const (
	StatusAuthenticated OutcomeStatus = iota
	StatusRejected
	StatusFailed
)

// Identity is the authenticated caller, with credential material stripped.
type Identity struct {
	UserID string
	Role   models.RoleType
}

// Outcome is the discriminated result of an authentication attempt:
// Authenticated carries the identity, Rejected carries the reason shown to
// the caller, Failed carries an infrastructure cause.
type Outcome struct {
	Status   OutcomeStatus
	Identity *Identity
	Reason   string
	Cause    error
}

func authenticated(identity *Identity) Outcome {
	return Outcome{Status: StatusAuthenticated, Identity: identity}
}

func rejected(reason string) Outcome {
	return Outcome{Status: StatusRejected, Reason: reason}
}

func failed(cause error) Outcome {
	return Outcome{Status: StatusFailed, Cause: cause}
}

// CredentialChecker is the user-service operation the password strategy
// consumes.
type CredentialChecker interface {
	Authenticate(ctx context.Context, email, password string) *dto.Result
}

// PasswordStrategy authenticates with email and password. It never issues
// tokens; that stays with the route layer.
type PasswordStrategy struct {
	users CredentialChecker
}

// NewPasswordStrategy creates a new PasswordStrategy
func NewPasswordStrategy(users CredentialChecker) *PasswordStrategy {
	return &PasswordStrategy{
		users: users,
	}
}

// Authenticate runs the credential check and maps its envelope onto an
// Outcome.
func (s *PasswordStrategy) Authenticate(ctx context.Context, email, password string) Outcome {
	if email == "" || password == "" {
		return rejected("missing credentials")
	}

	result := s.users.Authenticate(ctx, email, password)
	if result.Status == dto.StatusFail {
		return rejected(result.Message)
	}

	identity, ok := result.Data.(*dto.AuthenticatedUser)
	if !ok {
		return failed(errors.New("unexpected authenticate payload"))
	}

	return authenticated(&Identity{
		UserID: identity.ID,
		Role:   identity.Role,
	})
}

// BearerStrategy authenticates with a signed bearer token from the
// Authorization header.
type BearerStrategy struct {
	tokens *pkgauth.JWTService
}

// NewBearerStrategy creates a new BearerStrategy
func NewBearerStrategy(tokens *pkgauth.JWTService) *BearerStrategy {
	return &BearerStrategy{
		tokens: tokens,
	}
}

// Verify checks signature and expiry and exposes the token subject as the
// caller's identity.
func (s *BearerStrategy) Verify(authHeader string) Outcome {
	tokenString, err := pkgauth.ExtractBearerToken(authHeader)
	if err != nil {
		return rejected(err.Error())
	}

	claims, err := s.tokens.ValidateToken(tokenString)
	if err != nil {
		if errors.Is(err, pkgauth.ErrExpiredToken) || errors.Is(err, pkgauth.ErrInvalidToken) {
			return rejected(err.Error())
		}
		return rejected("invalid token")
	}

	return authenticated(&Identity{UserID: claims.Subject})
}
