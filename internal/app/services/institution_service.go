package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/app/models/dto"
	"github.com/biblio-hq/biblio/internal/app/repositories"
	"github.com/biblio-hq/biblio/internal/pkg/validation"
)

// InstitutionService handles institution, author and book operations
type InstitutionService struct {
	institutions repositories.IInstitutionRepository
	authors      repositories.IAuthorRepository
	books        repositories.IBookRepository
	logger       zerolog.Logger
}

// NewInstitutionService creates a new InstitutionService
func NewInstitutionService(
	institutions repositories.IInstitutionRepository,
	authors repositories.IAuthorRepository,
	books repositories.IBookRepository,
	logger zerolog.Logger,
) *InstitutionService {
	return &InstitutionService{
		institutions: institutions,
		authors:      authors,
		books:        books,
		logger:       logger,
	}
}

// CreateInstitution validates and persists a new institution. A duplicate
// domain fails with the collaborator's constraint message.
func (s *InstitutionService) CreateInstitution(ctx context.Context, req *dto.CreateInstitutionRequest) *dto.Result {
	err := validation.NewSchema().
		Field("name", req.Name, validation.String().Min(1).Max(36)).
		Field("url", req.URL, validation.String().URI()).
		Field("domain", req.Domain, validation.String().Domain()).
		Validate()
	if err != nil {
		return dto.FailErr(err)
	}

	institution := &models.Institution{
		ID:        models.NewID(),
		Name:      req.Name,
		URL:       req.URL,
		Domain:    req.Domain,
		CreatedAt: models.Now(),
	}

	if err := s.institutions.Create(ctx, institution); err != nil {
		s.logger.Warn().Err(err).Str("domain", req.Domain).Msg("institution create failed")
		return dto.FailErr(err)
	}

	return dto.Success(institution)
}

// FindInstitution fetches a single institution by id
func (s *InstitutionService) FindInstitution(ctx context.Context, id string) *dto.Result {
	institution, err := s.institutions.GetByID(ctx, id)
	if err != nil {
		return dto.FailErr(err)
	}
	return dto.Success(institution)
}

// FindInstitutions lists all institutions
func (s *InstitutionService) FindInstitutions(ctx context.Context) *dto.Result {
	institutions, err := s.institutions.GetAll(ctx)
	if err != nil {
		return dto.FailErr(err)
	}
	return dto.Success(institutions)
}

// CreateAuthor validates and persists a new author
func (s *InstitutionService) CreateAuthor(ctx context.Context, req *dto.CreateAuthorRequest) *dto.Result {
	err := validation.NewSchema().
		Field("name", req.Name, validation.String().Min(1).Max(36)).
		Validate()
	if err != nil {
		return dto.FailErr(err)
	}

	author := &models.Author{
		ID:        models.NewID(),
		Name:      req.Name,
		CreatedAt: models.Now(),
	}

	if err := s.authors.Create(ctx, author); err != nil {
		s.logger.Warn().Err(err).Msg("author create failed")
		return dto.FailErr(err)
	}

	return dto.Success(author)
}

// CreateBook validates and persists a new book. Both references are
// checked: a dangling institution fails with code 1000, a dangling author
// with code 4000. A duplicate isbn fails with the collaborator's
// constraint message.
func (s *InstitutionService) CreateBook(ctx context.Context, req *dto.CreateBookRequest) *dto.Result {
	err := validation.NewSchema().
		Field("institution", req.Institution, validation.String().ID()).
		Field("isbn", req.ISBN, validation.String().Min(1).Max(36).ISBN()).
		Field("title", req.Title, validation.String().Min(1).Max(36)).
		Field("author", req.Author, validation.String().Min(1).Max(36)).
		Validate()
	if err != nil {
		return dto.FailErr(err)
	}

	if _, err := s.institutions.GetByID(ctx, req.Institution); err != nil {
		return dto.FailErr(err)
	}
	if _, err := s.authors.GetByID(ctx, req.Author); err != nil {
		return dto.FailErr(err)
	}

	book := &models.Book{
		ID:            models.NewID(),
		ISBN:          req.ISBN,
		Title:         req.Title,
		AuthorID:      req.Author,
		InstitutionID: req.Institution,
		CreatedAt:     models.Now(),
	}

	if err := s.books.Create(ctx, book); err != nil {
		s.logger.Warn().Err(err).Str("isbn", req.ISBN).Msg("book create failed")
		return dto.FailErr(err)
	}

	return dto.Success(book)
}

// FindBook fetches a single book by id with author and institution expanded
func (s *InstitutionService) FindBook(ctx context.Context, id string) *dto.Result {
	book, err := s.books.GetByID(ctx, id)
	if err != nil {
		return dto.FailErr(err)
	}
	return dto.Success(book)
}

// FindBooks lists all books
func (s *InstitutionService) FindBooks(ctx context.Context) *dto.Result {
	books, err := s.books.GetAll(ctx)
	if err != nil {
		return dto.FailErr(err)
	}
	return dto.Success(books)
}

// FindBooksForInstitution lists the books belonging to one institution
func (s *InstitutionService) FindBooksForInstitution(ctx context.Context, institutionID string) *dto.Result {
	books, err := s.books.GetByInstitutionID(ctx, institutionID)
	if err != nil {
		return dto.FailErr(err)
	}
	return dto.Success(books)
}
