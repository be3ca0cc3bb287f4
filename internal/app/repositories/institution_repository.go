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

// IInstitutionRepository defines the interface for institution persistence
type IInstitutionRepository interface {
	Create(ctx context.Context, institution *models.Institution) error
	GetByID(ctx context.Context, id string) (*models.Institution, error)
	GetByDomain(ctx context.Context, domain string) (*models.Institution, error)
	GetAll(ctx context.Context) ([]*models.Institution, error)
}

// InstitutionRepository handles database operations for institutions
type InstitutionRepository struct {
	db *pgxpool.Pool
}

// NewInstitutionRepository creates a new institution repository
func NewInstitutionRepository(db *pgxpool.Pool) *InstitutionRepository {
	return &InstitutionRepository{
		db: db,
	}
}

// Create inserts a new institution. Unique violations on the domain index
// are returned unwrapped so the constraint message reaches the caller's
// fail envelope verbatim.
func (r *InstitutionRepository) Create(ctx context.Context, institution *models.Institution) error {
	query := `
		INSERT INTO institutions (id, name, url, domain, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		institution.ID, institution.Name, institution.URL, institution.Domain, institution.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("error creating institution: %w", err)
	}

	return nil
}

// GetByID retrieves an institution by ID
func (r *InstitutionRepository) GetByID(ctx context.Context, id string) (*models.Institution, error) {
	return r.getOne(ctx, "id", id)
}

// GetByDomain retrieves an institution by its unique email domain
func (r *InstitutionRepository) GetByDomain(ctx context.Context, domain string) (*models.Institution, error) {
	return r.getOne(ctx, "domain", domain)
}

func (r *InstitutionRepository) getOne(ctx context.Context, column, value string) (*models.Institution, error) {
	query := fmt.Sprintf(`
		SELECT id, name, url, domain, created_at
		FROM institutions
		WHERE %s = $1
	`, column)

	var institution models.Institution
	err := r.db.QueryRow(ctx, query, value).Scan(
		&institution.ID,
		&institution.Name,
		&institution.URL,
		&institution.Domain,
		&institution.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrInstitutionNotFound
		}
		return nil, fmt.Errorf("error retrieving institution: %w", err)
	}

	return &institution, nil
}

// GetAll retrieves all institutions
func (r *InstitutionRepository) GetAll(ctx context.Context) ([]*models.Institution, error) {
	query := `
		SELECT id, name, url, domain, created_at
		FROM institutions
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var institutions []*models.Institution
	for rows.Next() {
		var institution models.Institution
		if err := rows.Scan(
			&institution.ID,
			&institution.Name,
			&institution.URL,
			&institution.Domain,
			&institution.CreatedAt,
		); err != nil {
			return nil, err
		}
		institutions = append(institutions, &institution)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return institutions, nil
}
