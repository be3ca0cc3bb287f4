package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	InstitutionRepository *InstitutionRepository
	AuthorRepository      *AuthorRepository
	BookRepository        *BookRepository
	UserRepository        *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		InstitutionRepository: NewInstitutionRepository(db),
		AuthorRepository:      NewAuthorRepository(db),
		BookRepository:        NewBookRepository(db),
		UserRepository:        NewUserRepository(db),
	}
}
