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

// IBookRepository defines the interface for book persistence
type IBookRepository interface {
	Create(ctx context.Context, book *models.Book) error
	GetByID(ctx context.Context, id string) (*models.Book, error)
	GetAll(ctx context.Context) ([]*models.Book, error)
	GetByInstitutionID(ctx context.Context, institutionID string) ([]*models.Book, error)
}

// BookRepository handles database operations for books
type BookRepository struct {
	db *pgxpool.Pool
}

// NewBookRepository creates a new book repository
func NewBookRepository(db *pgxpool.Pool) *BookRepository {
	return &BookRepository{
		db: db,
	}
}

// Create inserts a new book. Unique violations on the isbn index are
// returned unwrapped so the constraint message reaches the caller's fail
// envelope verbatim.
func (r *BookRepository) Create(ctx context.Context, book *models.Book) error {
	query := `
		INSERT INTO books (id, isbn, title, author_id, institution_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		book.ID, book.ISBN, book.Title, book.AuthorID, book.InstitutionID, book.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return err
		}
		return fmt.Errorf("error creating book: %w", err)
	}

	return nil
}

// GetByID retrieves a book by ID with its author and institution expanded
func (r *BookRepository) GetByID(ctx context.Context, id string) (*models.Book, error) {
	query := `
		SELECT b.id, b.isbn, b.title, b.author_id, b.institution_id, b.created_at,
		       a.id, a.name, a.created_at,
		       i.id, i.name, i.url, i.domain, i.created_at
		FROM books b
		JOIN authors a ON a.id = b.author_id
		JOIN institutions i ON i.id = b.institution_id
		WHERE b.id = $1
	`

	var book models.Book
	var author models.Author
	var institution models.Institution
	err := r.db.QueryRow(ctx, query, id).Scan(
		&book.ID, &book.ISBN, &book.Title, &book.AuthorID, &book.InstitutionID, &book.CreatedAt,
		&author.ID, &author.Name, &author.CreatedAt,
		&institution.ID, &institution.Name, &institution.URL, &institution.Domain, &institution.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBookNotFound
		}
		return nil, fmt.Errorf("error retrieving book: %w", err)
	}

	book.Author = &author
	book.Institution = &institution
	return &book, nil
}

// GetAll retrieves all books, references unexpanded
func (r *BookRepository) GetAll(ctx context.Context) ([]*models.Book, error) {
	return r.getMany(ctx, `
		SELECT id, isbn, title, author_id, institution_id, created_at
		FROM books
	`)
}

// GetByInstitutionID retrieves all books belonging to one institution
func (r *BookRepository) GetByInstitutionID(ctx context.Context, institutionID string) ([]*models.Book, error) {
	return r.getMany(ctx, `
		SELECT id, isbn, title, author_id, institution_id, created_at
		FROM books
		WHERE institution_id = $1
	`, institutionID)
}

func (r *BookRepository) getMany(ctx context.Context, query string, args ...any) ([]*models.Book, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*models.Book
	for rows.Next() {
		var book models.Book
		if err := rows.Scan(
			&book.ID,
			&book.ISBN,
			&book.Title,
			&book.AuthorID,
			&book.InstitutionID,
			&book.CreatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}
