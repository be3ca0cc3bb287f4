package dto

import (
	"github.com/biblio-hq/biblio/internal/app/models"
)

// SignInRequest carries sign-in credentials
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse carries the issued bearer token
type TokenResponse struct {
	Token string `json:"token"`
}

// AuthenticatedUser is the identity returned by a successful credential
// check. It deliberately excludes the password hash.
type AuthenticatedUser struct {
	ID   string          `json:"id"`
	Role models.RoleType `json:"role"`
}
