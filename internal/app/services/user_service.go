package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/app/models/dto"
	"github.com/biblio-hq/biblio/internal/app/repositories"
	"github.com/biblio-hq/biblio/internal/pkg/auth"
	"github.com/biblio-hq/biblio/internal/pkg/validation"
)

// UserService handles user creation, lookup and credential checks
type UserService struct {
	users   repositories.IUserRepository
	tenants *TenantResolver
	logger  zerolog.Logger
}

// NewUserService creates a new UserService
func NewUserService(users repositories.IUserRepository, tenants *TenantResolver, logger zerolog.Logger) *UserService {
	return &UserService{
		users:   users,
		tenants: tenants,
		logger:  logger,
	}
}

// CreateUser validates the input, hashes the password, binds the user to
// the institution owning the email domain and persists the record. An email
// whose domain matches no institution fails with code 1000 and nothing is
// persisted; a resolver failure keeps its own message.
func (s *UserService) CreateUser(ctx context.Context, req *dto.CreateUserRequest) *dto.Result {
	err := validation.NewSchema().
		Field("name", req.Name, validation.String().Min(1).Max(36)).
		Field("email", req.Email, validation.String().Email()).
		Field("role", req.Role, validation.String().Enum(models.Roles()...)).
		Field("password", req.Password, validation.String().Password()).
		Validate()
	if err != nil {
		return dto.FailErr(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		s.logger.Error().Err(err).Msg("password hashing failed")
		return dto.Fail(err.Error())
	}

	institution, err := s.tenants.ResolveInstitutionForEmail(ctx, req.Email)
	if err != nil {
		return dto.FailErr(err)
	}

	user := &models.User{
		ID:            models.NewID(),
		Name:          req.Name,
		Email:         req.Email,
		Role:          models.RoleType(req.Role),
		Password:      hash,
		InstitutionID: institution.ID,
		CreatedAt:     models.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.logger.Warn().Err(err).Str("email", req.Email).Msg("user create failed")
		return dto.FailErr(err)
	}

	return dto.Success(user)
}

// FindUser fetches a single user by id with the institution expanded
func (s *UserService) FindUser(ctx context.Context, id string) *dto.Result {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return dto.FailErr(err)
	}
	return dto.Success(user)
}

// FindUsers lists all users
func (s *UserService) FindUsers(ctx context.Context) *dto.Result {
	users, err := s.users.GetAll(ctx)
	if err != nil {
		return dto.FailErr(err)
	}
	return dto.Success(users)
}

// Authenticate checks credentials against the stored hash. The lookup
// projects only id, hash and role; the hash is stripped from the returned
// identity.
func (s *UserService) Authenticate(ctx context.Context, email, password string) *dto.Result {
	user, err := s.users.GetCredentialsByEmail(ctx, email)
	if err != nil {
		return dto.Fail(err.Error())
	}

	if !auth.CheckPassword(user.Password, password) {
		return dto.Fail("invalid password")
	}

	return dto.Success(&dto.AuthenticatedUser{
		ID:   user.ID,
		Role: user.Role,
	})
}
