package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appauth "github.com/biblio-hq/biblio/internal/app/auth"
	"github.com/biblio-hq/biblio/internal/app/controllers"
	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/app/services"
	"github.com/biblio-hq/biblio/internal/middleware"
	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
	pkgauth "github.com/biblio-hq/biblio/internal/pkg/auth"
)

// envelope mirrors the wire shape of dto.Result for response assertions.
type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Code    int             `json:"code"`
}

type memInstitutionRepo struct{ records map[string]*models.Institution }

func (r *memInstitutionRepo) Create(_ context.Context, i *models.Institution) error {
	r.records[i.ID] = i
	return nil
}

func (r *memInstitutionRepo) GetByID(_ context.Context, id string) (*models.Institution, error) {
	if i, ok := r.records[id]; ok {
		return i, nil
	}
	return nil, apperrors.ErrInstitutionNotFound
}

func (r *memInstitutionRepo) GetByDomain(_ context.Context, domain string) (*models.Institution, error) {
	for _, i := range r.records {
		if i.Domain == domain {
			return i, nil
		}
	}
	return nil, apperrors.ErrInstitutionNotFound
}

func (r *memInstitutionRepo) GetAll(_ context.Context) ([]*models.Institution, error) {
	var out []*models.Institution
	for _, i := range r.records {
		out = append(out, i)
	}
	return out, nil
}

type memAuthorRepo struct{ records map[string]*models.Author }

func (r *memAuthorRepo) Create(_ context.Context, a *models.Author) error {
	r.records[a.ID] = a
	return nil
}

func (r *memAuthorRepo) GetByID(_ context.Context, id string) (*models.Author, error) {
	if a, ok := r.records[id]; ok {
		return a, nil
	}
	return nil, apperrors.ErrAuthorNotFound
}

type memBookRepo struct{ records map[string]*models.Book }

func (r *memBookRepo) Create(_ context.Context, b *models.Book) error {
	r.records[b.ID] = b
	return nil
}

func (r *memBookRepo) GetByID(_ context.Context, id string) (*models.Book, error) {
	if b, ok := r.records[id]; ok {
		return b, nil
	}
	return nil, apperrors.ErrBookNotFound
}

func (r *memBookRepo) GetAll(_ context.Context) ([]*models.Book, error) {
	var out []*models.Book
	for _, b := range r.records {
		out = append(out, b)
	}
	return out, nil
}

func (r *memBookRepo) GetByInstitutionID(_ context.Context, institutionID string) ([]*models.Book, error) {
	var out []*models.Book
	for _, b := range r.records {
		if b.InstitutionID == institutionID {
			out = append(out, b)
		}
	}
	return out, nil
}

type memUserRepo struct{ records map[string]*models.User }

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	r.records[u.ID] = u
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.records[id]; ok {
		return u, nil
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *memUserRepo) GetAll(_ context.Context) ([]*models.User, error) {
	var out []*models.User
	for _, u := range r.records {
		out = append(out, u)
	}
	return out, nil
}

func (r *memUserRepo) GetCredentialsByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range r.records {
		if u.Email == email {
			return &models.User{ID: u.ID, Password: u.Password, Role: u.Role}, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

type testEnv struct {
	router       *gin.Engine
	institutions *memInstitutionRepo
	authors      *memAuthorRepo
	books        *memBookRepo
	users        *memUserRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	env := &testEnv{
		institutions: &memInstitutionRepo{records: make(map[string]*models.Institution)},
		authors:      &memAuthorRepo{records: make(map[string]*models.Author)},
		books:        &memBookRepo{records: make(map[string]*models.Book)},
		users:        &memUserRepo{records: make(map[string]*models.User)},
	}

	tokens := pkgauth.NewJWTService(pkgauth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "biblio",
	})

	resolver := services.NewTenantResolver(env.institutions)
	institutionService := services.NewInstitutionService(env.institutions, env.authors, env.books, zerolog.Nop())
	userService := services.NewUserService(env.users, resolver, zerolog.Nop())

	passwordStrategy := appauth.NewPasswordStrategy(userService)
	bearerStrategy := appauth.NewBearerStrategy(tokens)
	authMiddleware := middleware.NewAuthMiddleware(bearerStrategy)

	institutionController := controllers.NewInstitutionController(institutionService)
	userController := controllers.NewUserController(userService, institutionService, passwordStrategy, tokens, zerolog.Nop())

	env.router = gin.New()
	SetupRouter(env.router, institutionController, userController, authMiddleware)
	return env
}

func (e *testEnv) do(t *testing.T, method, path string, body any, headers map[string]string) (*httptest.ResponseRecorder, *envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, &env
}

func TestCreateAndFetchInstitution(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodPost, "/institutions", gin.H{
		"name":   "MIT Libraries",
		"url":    "https://libraries.mit.edu",
		"domain": "mit.edu",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "success", resp.Status)

	var created models.Institution
	require.NoError(t, json.Unmarshal(resp.Data, &created))
	assert.Regexp(t, `^[0-9a-f]{24}$`, created.ID)

	rec, resp = env.do(t, http.MethodGet, "/institutions/"+created.ID, nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "success", resp.Status)
}

func TestCreateInstitutionInvalidPayload(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodPost, "/institutions", gin.H{
		"name":   "MIT",
		"url":    "https://libraries.mit.edu",
		"domain": "https://mit.edu",
	}, nil)

	assert.Equal(t, http.StatusOK, rec.Code, "validation failure is data, not a transport error")
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, apperrors.CodeValidation, resp.Code)
}

func TestGetInstitutionBadID(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/institutions/not-a-valid-id", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, apperrors.CodeValidation, resp.Code)
}

func TestGetInstitutionMiss(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/institutions/5f2b8c9d4e1a7b3c6d9e0f1a", nil, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, apperrors.CodeInstitutionNotFound, resp.Code)
}

func TestBooksRequiresBearer(t *testing.T) {
	env := newTestEnv(t)

	rec, resp := env.do(t, http.MethodGet, "/books", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "fail", resp.Status)

	rec, resp = env.do(t, http.MethodGet, "/books", nil, map[string]string{
		"Authorization": "Bearer garbage",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "fail", resp.Status)
}

func TestSignInAndListInstitutionBooks(t *testing.T) {
	env := newTestEnv(t)

	// Seed two tenants with one book each.
	_, resp := env.do(t, http.MethodPost, "/institutions", gin.H{
		"name": "MIT Libraries", "url": "https://libraries.mit.edu", "domain": "mit.edu",
	}, nil)
	require.Equal(t, "success", resp.Status)
	var mit models.Institution
	require.NoError(t, json.Unmarshal(resp.Data, &mit))

	_, resp = env.do(t, http.MethodPost, "/institutions", gin.H{
		"name": "Harvard Library", "url": "https://library.harvard.edu", "domain": "harvard.edu",
	}, nil)
	require.Equal(t, "success", resp.Status)
	var harvard models.Institution
	require.NoError(t, json.Unmarshal(resp.Data, &harvard))

	_, resp = env.do(t, http.MethodPost, "/institutions/authors", gin.H{"name": "Misner"}, nil)
	require.Equal(t, "success", resp.Status)
	var author models.Author
	require.NoError(t, json.Unmarshal(resp.Data, &author))

	_, resp = env.do(t, http.MethodPost, "/institutions/books", gin.H{
		"institution": mit.ID, "isbn": "9780306406157", "title": "Gravitation", "author": author.ID,
	}, nil)
	require.Equal(t, "success", resp.Status)

	_, resp = env.do(t, http.MethodPost, "/institutions/books", gin.H{
		"institution": harvard.ID, "isbn": "0306406152", "title": "Other", "author": author.ID,
	}, nil)
	require.Equal(t, "success", resp.Status)

	// Register a user bound to MIT through the email domain.
	_, resp = env.do(t, http.MethodPost, "/users", gin.H{
		"name": "Alice", "email": "alice@mit.edu", "role": "student", "password": "Passw0rd!",
	}, nil)
	require.Equal(t, "success", resp.Status)

	// Sign in and fetch the tenant-scoped book list.
	rec, resp := env.do(t, http.MethodPost, "/users/signin", gin.H{
		"email": "alice@mit.edu", "password": "Passw0rd!",
	}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "success", resp.Status)

	var tokenResp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(resp.Data, &tokenResp))
	require.NotEmpty(t, tokenResp.Token)

	rec, resp = env.do(t, http.MethodGet, "/books", nil, map[string]string{
		"Authorization": "Bearer " + tokenResp.Token,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "success", resp.Status)

	var books []*models.Book
	require.NoError(t, json.Unmarshal(resp.Data, &books))
	require.Len(t, books, 1)
	assert.Equal(t, mit.ID, books[0].InstitutionID)
	assert.Equal(t, "9780306406157", books[0].ISBN)
}

func TestSignInWrongPassword(t *testing.T) {
	env := newTestEnv(t)

	_, resp := env.do(t, http.MethodPost, "/institutions", gin.H{
		"name": "MIT Libraries", "url": "https://libraries.mit.edu", "domain": "mit.edu",
	}, nil)
	require.Equal(t, "success", resp.Status)

	_, resp = env.do(t, http.MethodPost, "/users", gin.H{
		"name": "Alice", "email": "alice@mit.edu", "role": "student", "password": "Passw0rd!",
	}, nil)
	require.Equal(t, "success", resp.Status)

	rec, resp := env.do(t, http.MethodPost, "/users/signin", gin.H{
		"email": "alice@mit.edu", "password": "wrong-password",
	}, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "fail", resp.Status)
	assert.Equal(t, "invalid password", resp.Message)
}

func TestCreateUserResponseRedactsPassword(t *testing.T) {
	env := newTestEnv(t)

	_, resp := env.do(t, http.MethodPost, "/institutions", gin.H{
		"name": "MIT Libraries", "url": "https://libraries.mit.edu", "domain": "mit.edu",
	}, nil)
	require.Equal(t, "success", resp.Status)

	_, resp = env.do(t, http.MethodPost, "/users", gin.H{
		"name": "Alice", "email": "alice@mit.edu", "role": "student", "password": "Passw0rd!",
	}, nil)
	require.Equal(t, "success", resp.Status)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(resp.Data, &decoded))
	assert.NotContains(t, decoded, "password")
}
