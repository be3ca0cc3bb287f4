package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
	"github.com/biblio-hq/biblio/internal/pkg/dberrors"
)

// IUserRepository defines the interface for user persistence
type IUserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetAll(ctx context.Context) ([]*models.User, error)
	// GetCredentialsByEmail projects only id, password hash and role.
	GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error)
}

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

// Create inserts a new user. Unique violations on the email index are
// returned unwrapped so the constraint message reaches the caller's fail
// envelope verbatim.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, role, password, institution_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.Role, user.Password, user.InstitutionID, user.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("error creating user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID with the institution expanded
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `
		SELECT u.id, u.name, u.email, u.role, u.password, u.institution_id, u.created_at,
		       i.id, i.name, i.url, i.domain, i.created_at
		FROM users u
		JOIN institutions i ON i.id = u.institution_id
		WHERE u.id = $1
	`

	var user models.User
	var institution models.Institution
	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.Email, &user.Role, &user.Password, &user.InstitutionID, &user.CreatedAt,
		&institution.ID, &institution.Name, &institution.URL, &institution.Domain, &institution.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	user.Institution = &institution
	return &user, nil
}

// GetAll retrieves all users, institutions unexpanded
func (r *UserRepository) GetAll(ctx context.Context) ([]*models.User, error) {
	query := `
		SELECT id, name, email, role, password, institution_id, created_at
		FROM users
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(
			&user.ID,
			&user.Name,
			&user.Email,
			&user.Role,
			&user.Password,
			&user.InstitutionID,
			&user.CreatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return users, nil
}

// GetCredentialsByEmail retrieves the credential projection used by the
// sign-in flow.
func (r *UserRepository) GetCredentialsByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, password, role
		FROM users
		WHERE email = $1
	`

	var user models.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Password,
		&user.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}

	return &user, nil
}
