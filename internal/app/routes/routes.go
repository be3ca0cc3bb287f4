package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/biblio-hq/biblio/internal/app/controllers"
	"github.com/biblio-hq/biblio/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	institutionController *controllers.InstitutionController,
	userController *controllers.UserController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Biblio")
	})

	// --- Institution routes (public) ---
	institutions := router.Group("/institutions")
	{
		institutions.GET("", institutionController.GetInstitutions)
		institutions.POST("", institutionController.CreateInstitution)
		institutions.POST("/authors", institutionController.CreateAuthor)
		institutions.POST("/books", institutionController.CreateBook)
		institutions.GET("/books/:id", institutionController.GetBook)
		institutions.GET("/:id", institutionController.GetInstitution)
		institutions.GET("/:id/books", institutionController.GetInstitutionBooks)
	}

	// --- User routes (public) ---
	users := router.Group("/users")
	{
		users.GET("", userController.GetUsers)
		users.POST("", userController.CreateUser)
		users.POST("/signin", userController.SignIn)
		users.GET("/:id", userController.GetUser)
	}

	// --- Protected routes ---
	router.GET("/books", authMiddleware.RequireBearer(), userController.Books)
}
