package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biblio-hq/biblio/internal/app/models/dto"
	"github.com/biblio-hq/biblio/internal/app/services"
	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
	"github.com/biblio-hq/biblio/internal/pkg/validation"
)

// InstitutionController handles institution, author and book endpoints.
// Every response is HTTP 200 carrying the result envelope; failure is data.
type InstitutionController struct {
	institutions *services.InstitutionService
}

// NewInstitutionController creates a new InstitutionController
func NewInstitutionController(institutions *services.InstitutionService) *InstitutionController {
	return &InstitutionController{
		institutions: institutions,
	}
}

// validateIDParam checks the 24-character alphanumeric id path parameter
// before any service is reached.
func validateIDParam(id string) error {
	return validation.NewSchema().
		Field("id", id, validation.String().ID()).
		Validate()
}

// GetInstitutions handles GET /institutions
func (c *InstitutionController) GetInstitutions(ctx *gin.Context) {
	result := c.institutions.FindInstitutions(ctx.Request.Context())
	ctx.JSON(http.StatusOK, result)
}

// GetInstitution handles GET /institutions/:id
func (c *InstitutionController) GetInstitution(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := validateIDParam(id); err != nil {
		ctx.JSON(http.StatusOK, dto.FailErr(err))
		return
	}

	result := c.institutions.FindInstitution(ctx.Request.Context(), id)
	ctx.JSON(http.StatusOK, result)
}

// CreateInstitution handles POST /institutions
func (c *InstitutionController) CreateInstitution(ctx *gin.Context) {
	var req dto.CreateInstitutionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusOK, dto.FailCode(apperrors.CodeValidation, err.Error()))
		return
	}

	result := c.institutions.CreateInstitution(ctx.Request.Context(), &req)
	ctx.JSON(http.StatusOK, result)
}

// CreateAuthor handles POST /institutions/authors
func (c *InstitutionController) CreateAuthor(ctx *gin.Context) {
	var req dto.CreateAuthorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusOK, dto.FailCode(apperrors.CodeValidation, err.Error()))
		return
	}

	result := c.institutions.CreateAuthor(ctx.Request.Context(), &req)
	ctx.JSON(http.StatusOK, result)
}

// CreateBook handles POST /institutions/books
func (c *InstitutionController) CreateBook(ctx *gin.Context) {
	var req dto.CreateBookRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusOK, dto.FailCode(apperrors.CodeValidation, err.Error()))
		return
	}

	result := c.institutions.CreateBook(ctx.Request.Context(), &req)
	ctx.JSON(http.StatusOK, result)
}

// GetInstitutionBooks handles GET /institutions/:id/books
func (c *InstitutionController) GetInstitutionBooks(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := validateIDParam(id); err != nil {
		ctx.JSON(http.StatusOK, dto.FailErr(err))
		return
	}

	result := c.institutions.FindBooksForInstitution(ctx.Request.Context(), id)
	ctx.JSON(http.StatusOK, result)
}

// GetBook handles GET /institutions/books/:id
func (c *InstitutionController) GetBook(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := validateIDParam(id); err != nil {
		ctx.JSON(http.StatusOK, dto.FailErr(err))
		return
	}

	result := c.institutions.FindBook(ctx.Request.Context(), id)
	ctx.JSON(http.StatusOK, result)
}
