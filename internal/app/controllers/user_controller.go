package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	appauth "github.com/biblio-hq/biblio/internal/app/auth"
	"github.com/biblio-hq/biblio/internal/app/models"
	"github.com/biblio-hq/biblio/internal/app/models/dto"
	"github.com/biblio-hq/biblio/internal/app/services"
	"github.com/biblio-hq/biblio/internal/middleware"
	"github.com/biblio-hq/biblio/internal/pkg/apperrors"
	pkgauth "github.com/biblio-hq/biblio/internal/pkg/auth"
)

// UserController handles user and sign-in endpoints
type UserController struct {
	users        *services.UserService
	institutions *services.InstitutionService
	password     *appauth.PasswordStrategy
	tokens       *pkgauth.JWTService
	logger       zerolog.Logger
}

// NewUserController creates a new UserController
func NewUserController(
	users *services.UserService,
	institutions *services.InstitutionService,
	password *appauth.PasswordStrategy,
	tokens *pkgauth.JWTService,
	logger zerolog.Logger,
) *UserController {
	return &UserController{
		users:        users,
		institutions: institutions,
		password:     password,
		tokens:       tokens,
		logger:       logger,
	}
}

// GetUsers handles GET /users
func (c *UserController) GetUsers(ctx *gin.Context) {
	result := c.users.FindUsers(ctx.Request.Context())
	ctx.JSON(http.StatusOK, result)
}

// GetUser handles GET /users/:id
func (c *UserController) GetUser(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := validateIDParam(id); err != nil {
		ctx.JSON(http.StatusOK, dto.FailErr(err))
		return
	}

	result := c.users.FindUser(ctx.Request.Context(), id)
	ctx.JSON(http.StatusOK, result)
}

// CreateUser handles POST /users
func (c *UserController) CreateUser(ctx *gin.Context) {
	var req dto.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusOK, dto.FailCode(apperrors.CodeValidation, err.Error()))
		return
	}

	result := c.users.CreateUser(ctx.Request.Context(), &req)
	ctx.JSON(http.StatusOK, result)
}

// SignIn handles POST /users/signin. The password strategy checks the
// credentials; the token is issued here, never inside the strategy.
func (c *UserController) SignIn(ctx *gin.Context) {
	var req dto.SignInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusOK, dto.FailCode(apperrors.CodeValidation, err.Error()))
		return
	}

	outcome := c.password.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	switch outcome.Status {
	case appauth.StatusAuthenticated:
		token, err := c.tokens.GenerateToken(outcome.Identity.UserID)
		if err != nil {
			c.logger.Error().Err(err).Msg("token signing failed")
			ctx.JSON(http.StatusOK, dto.Fail(err.Error()))
			return
		}
		ctx.JSON(http.StatusOK, dto.Success(&dto.TokenResponse{Token: token}))
	case appauth.StatusRejected:
		ctx.JSON(http.StatusUnauthorized, dto.Fail(outcome.Reason))
	default:
		c.logger.Error().Err(outcome.Cause).Msg("sign-in failed")
		ctx.JSON(http.StatusOK, dto.Fail(outcome.Cause.Error()))
	}
}

// Books handles GET /books, listing the books of the authenticated user's
// institution.
func (c *UserController) Books(ctx *gin.Context) {
	userID := ctx.GetString(middleware.ContextUserID)
	if err := validateIDParam(userID); err != nil {
		ctx.JSON(http.StatusOK, dto.FailErr(err))
		return
	}

	userResult := c.users.FindUser(ctx.Request.Context(), userID)
	if userResult.Status == dto.StatusFail {
		ctx.JSON(http.StatusOK, userResult)
		return
	}

	user, ok := userResult.Data.(*models.User)
	if !ok {
		ctx.JSON(http.StatusOK, dto.Fail("unexpected user payload"))
		return
	}

	result := c.institutions.FindBooksForInstitution(ctx.Request.Context(), user.InstitutionID)
	ctx.JSON(http.StatusOK, result)
}
