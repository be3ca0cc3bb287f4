package services

// In-memory repository fakes shared by the service tests. Misses map to the
// same coded errors the postgres repositories return, duplicate inserts can
// be simulated through createErr.

import (
	"context"

	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
)

type fakeInstitutionRepo struct {
	records   map[string]*models.Institution
	createErr error
}

func newFakeInstitutionRepo(seed ...*models.Institution) *fakeInstitutionRepo {
	repo := &fakeInstitutionRepo{records: make(map[string]*models.Institution)}
	for _, institution := range seed {
		repo.records[institution.ID] = institution
	}
	return repo
}

func (r *fakeInstitutionRepo) Create(_ context.Context, institution *models.Institution) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.records[institution.ID] = institution
	return nil
}

func (r *fakeInstitutionRepo) GetByID(_ context.Context, id string) (*models.Institution, error) {
	if institution, ok := r.records[id]; ok {
		return institution, nil
	}
	return nil, apperrors.ErrInstitutionNotFound
}

func (r *fakeInstitutionRepo) GetByDomain(_ context.Context, domain string) (*models.Institution, error) {
	for _, institution := range r.records {
		if institution.Domain == domain {
			return institution, nil
		}
	}
	return nil, apperrors.ErrInstitutionNotFound
}

func (r *fakeInstitutionRepo) GetAll(_ context.Context) ([]*models.Institution, error) {
	var institutions []*models.Institution
	for _, institution := range r.records {
		institutions = append(institutions, institution)
	}
	return institutions, nil
}

type fakeAuthorRepo struct {
	records map[string]*models.Author
}

func newFakeAuthorRepo(seed ...*models.Author) *fakeAuthorRepo {
	repo := &fakeAuthorRepo{records: make(map[string]*models.Author)}
	for _, author := range seed {
		repo.records[author.ID] = author
	}
	return repo
}

func (r *fakeAuthorRepo) Create(_ context.Context, author *models.Author) error {
	r.records[author.ID] = author
	return nil
}

func (r *fakeAuthorRepo) GetByID(_ context.Context, id string) (*models.Author, error) {
	if author, ok := r.records[id]; ok {
		return author, nil
	}
	return nil, apperrors.ErrAuthorNotFound
}

type fakeBookRepo struct {
	records   map[string]*models.Book
	createErr error
}

func newFakeBookRepo(seed ...*models.Book) *fakeBookRepo {
	repo := &fakeBookRepo{records: make(map[string]*models.Book)}
	for _, book := range seed {
		repo.records[book.ID] = book
	}
	return repo
}

func (r *fakeBookRepo) Create(_ context.Context, book *models.Book) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.records[book.ID] = book
	return nil
}

func (r *fakeBookRepo) GetByID(_ context.Context, id string) (*models.Book, error) {
	if book, ok := r.records[id]; ok {
		return book, nil
	}
	return nil, apperrors.ErrBookNotFound
}

func (r *fakeBookRepo) GetAll(_ context.Context) ([]*models.Book, error) {
	var books []*models.Book
	for _, book := range r.records {
		books = append(books, book)
	}
	return books, nil
}

func (r *fakeBookRepo) GetByInstitutionID(_ context.Context, institutionID string) ([]*models.Book, error) {
	var books []*models.Book
	for _, book := range r.records {
		if book.InstitutionID == institutionID {
			books = append(books, book)
		}
	}
	return books, nil
}

type fakeUserRepo struct {
	records   map[string]*models.User
	createErr error
}

func newFakeUserRepo(seed ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{records: make(map[string]*models.User)}
	for _, user := range seed {
		repo.records[user.ID] = user
	}
	return repo
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.records[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if user, ok := r.records[id]; ok {
		return user, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	var users []*models.User
	for _, user := range r.records {
		users = append(users, user)
	}
	return users, nil
}

func (r *fakeUserRepo) GetCredentialsByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.records {
		if user.Email == email {
			return &models.User{ID: user.ID, Password: user.Password, Role: user.Role}, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}
