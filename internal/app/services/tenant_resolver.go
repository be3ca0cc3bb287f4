package services

import (
	"context"
	"strings"

	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/app/repositories"
)

// TenantResolver binds an email address to its owning institution. The
// domain part of the email is the sole binding mechanism.
type TenantResolver struct {
	institutions repositories.IInstitutionRepository
}

// NewTenantResolver creates a new TenantResolver
func NewTenantResolver(institutions repositories.IInstitutionRepository) *TenantResolver {
	return &TenantResolver{
		institutions: institutions,
	}
}

// ResolveInstitutionForEmail extracts the substring after the first '@' and
// looks the institution up by exact domain match. A miss returns
// apperrors.ErrInstitutionNotFound; a lookup failure keeps its own message
// and is never rewritten into the not-found error.
func (r *TenantResolver) ResolveInstitutionForEmail(ctx context.Context, email string) (*models.Institution, error) {
	domain := email[strings.Index(email, "@")+1:]
	return r.institutions.GetByDomain(ctx, domain)
}
