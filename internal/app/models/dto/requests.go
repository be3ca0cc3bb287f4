package dto

// CreateInstitutionRequest carries the parameters for institution creation
type CreateInstitutionRequest struct {
	Name   string `json:"name"`
	URL    string `json:"url"`
	Domain string `json:"domain"`
}

// CreateAuthorRequest carries the parameters for author creation
type CreateAuthorRequest struct {
	Name string `json:"name"`
}

// CreateBookRequest carries the parameters for book creation. Institution
// and Author are record identifiers.
type CreateBookRequest struct {
	Institution string `json:"institution"`
	ISBN        string `json:"isbn"`
	Title       string `json:"title"`
	Author      string `json:"author"`
}

// CreateUserRequest carries the parameters for user creation. The owning
// institution is not supplied; it is resolved from the email domain.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Password string `json:"password"`
}
