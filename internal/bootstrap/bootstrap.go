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

	appAuth "github.com/altan/coursehub/internal/app/auth"
	appControllers "github.com/altan/coursehub/internal/app/controllers"
	appMigrations "github.com/altan/coursehub/internal/app/migrations"
	appRepos "github.com/altan/coursehub/internal/app/repositories"
	appRoutes "github.com/altan/coursehub/internal/app/routes"
	appServices "github.com/altan/coursehub/internal/app/services"
	"github.com/altan/coursehub/internal/config"
	"github.com/altan/coursehub/internal/db"
	appMiddleware "github.com/altan/coursehub/internal/middleware"
	"github.com/altan/coursehub/internal/pkg/logger"
	"github.com/altan/coursehub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	UserService      *appServices.UserService
	CourseService    *appServices.CourseService
	UserController   *appControllers.UserController
	CourseController *appControllers.CourseController
	AuthMiddleware   *appMiddleware.AuthMiddleware
	AuthzService     *appAuth.AuthorizationService
	Repos            *appRepos.Repositories
	Logger           zerolog.Logger
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
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Demo data only makes sense outside production.
	if !cfg.IsProduction() {
		if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.AuthzService = appAuth.NewAuthorizationService()

	deps.UserService = appServices.NewUserService(
		deps.Repos.UserRepository,
		deps.Repos.CourseRepository,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.AuthzService,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Repos.UserRepository, lgr)

	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.Recovery(cfg.IsProduction()))

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	// Friendly greeting on the root route
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Welcome to the Courses REST API"})
	})

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
