package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appAuth "github.com/biblio-hq/biblio/internal/app/auth"
	appControllers "github.com/biblio-hq/biblio/internal/app/controllers"
	appMigrations "github.com/biblio-hq/biblio/internal/app/migrations"
	appRepos "github.com/biblio-hq/biblio/internal/app/repositories"
	appRoutes "github.com/biblio-hq/biblio/internal/app/routes"
	appServices "github.com/biblio-hq/biblio/internal/app/services"
	"github.com/biblio-hq/biblio/internal/config"
	"github.com/biblio-hq/biblio/internal/db"
	appMiddleware "github.com/biblio-hq/biblio/internal/middleware"
	pkgAuth "github.com/biblio-hq/biblio/internal/pkg/auth"
	"github.com/biblio-hq/biblio/internal/pkg/logger"
)

// Dependencies holds all the application dependencies. Every component is
// constructed here with explicit references to its collaborators; there
// are no ambient globals.
type Dependencies struct {
	Repos                 *appRepos.Repositories
	TenantResolver        *appServices.TenantResolver
	InstitutionService    *appServices.InstitutionService
	UserService           *appServices.UserService
	JWTService            *pkgAuth.JWTService
	PasswordStrategy      *appAuth.PasswordStrategy
	BearerStrategy        *appAuth.BearerStrategy
	AuthMiddleware        *appMiddleware.AuthMiddleware
	InstitutionController *appControllers.InstitutionController
	UserController        *appControllers.UserController
	Logger                zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return dbPool, nil
}

// BuildDependencies initializes application repositories, services and
// controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.TenantResolver = appServices.NewTenantResolver(deps.Repos.InstitutionRepository)
	deps.InstitutionService = appServices.NewInstitutionService(
		deps.Repos.InstitutionRepository,
		deps.Repos.AuthorRepository,
		deps.Repos.BookRepository,
		lgr,
	)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.TenantResolver, lgr)

	deps.PasswordStrategy = appAuth.NewPasswordStrategy(deps.UserService)
	deps.BearerStrategy = appAuth.NewBearerStrategy(deps.JWTService)
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.BearerStrategy)

	deps.InstitutionController = appControllers.NewInstitutionController(deps.InstitutionService)
	deps.UserController = appControllers.NewUserController(
		deps.UserService,
		deps.InstitutionService,
		deps.PasswordStrategy,
		deps.JWTService,
		lgr,
	)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.InstitutionController,
		deps.UserController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
