package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
)

// IAuthorRepository defines the interface for author persistence
type IAuthorRepository interface {
	Create(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, id string) (*models.Author, error)
}

// AuthorRepository handles database operations for authors
type AuthorRepository struct {
	db *pgxpool.Pool
}

// NewAuthorRepository creates a new author repository
func NewAuthorRepository(db *pgxpool.Pool) *AuthorRepository {
	return &AuthorRepository{
		db: db,
	}
}

// Create inserts a new author
func (r *AuthorRepository) Create(ctx context.Context, author *models.Author) error {
	query := `
		INSERT INTO authors (id, name, created_at)
		VALUES ($1, $2, $3)
	`

	_, err := r.db.Exec(ctx, query, author.ID, author.Name, author.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating author: %w", err)
	}

	return nil
}

// GetByID retrieves an author by ID
func (r *AuthorRepository) GetByID(ctx context.Context, id string) (*models.Author, error) {
	query := `
		SELECT id, name, created_at
		FROM authors
		WHERE id = $1
	`

	var author models.Author
	err := r.db.QueryRow(ctx, query, id).Scan(
		&author.ID,
		&author.Name,
		&author.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("error retrieving author: %w", err)
	}

	return &author, nil
}
