package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/colegio-app/colegio-backend/docs" // generated swagger docs
	appControllers "github.com/colegio-app/colegio-backend/internal/app/controllers"
	appMigrations "github.com/colegio-app/colegio-backend/internal/app/migrations"
	appRepos "github.com/colegio-app/colegio-backend/internal/app/repositories"
	appRoutes "github.com/colegio-app/colegio-backend/internal/app/routes"
	appServices "github.com/colegio-app/colegio-backend/internal/app/services"
	"github.com/colegio-app/colegio-backend/internal/config"
	"github.com/colegio-app/colegio-backend/internal/db"
	appMiddleware "github.com/colegio-app/colegio-backend/internal/middleware"
	pkgAuth "github.com/colegio-app/colegio-backend/internal/pkg/auth"
	"github.com/colegio-app/colegio-backend/internal/pkg/helpers"
	"github.com/colegio-app/colegio-backend/internal/pkg/logger"
	"github.com/colegio-app/colegio-backend/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos      *appRepos.Repositories
	Services   *appServices.Services
	JWTService *pkgAuth.JWTService

	AuthController                 *appControllers.AuthController
	GradeController                *appControllers.GradeController
	GroupController                *appControllers.GroupController
	MeController                   *appControllers.MeController
	StudentController              *appControllers.StudentController
	PaymentMethodController        *appControllers.PaymentMethodController
	StudentPaymentMethodController *appControllers.StudentPaymentMethodController
	TypeScholarshipController      *appControllers.TypeScholarshipController
	EvaluationController           *appControllers.EvaluationController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger
// and the error reporter.
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

	if cfg.Sentry.DSN != "" {
		err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
		})
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize sentry, error reporting disabled")
		}
	}

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	dbPool, err := db.Connect(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.Services.AuthService)
	deps.GradeController = appControllers.NewGradeController(deps.Services.GradeService)
	deps.GroupController = appControllers.NewGroupController(deps.Services.GroupService)
	deps.MeController = appControllers.NewMeController(deps.Services.MeService)
	deps.StudentController = appControllers.NewStudentController(deps.Services.StudentService)
	deps.PaymentMethodController = appControllers.NewPaymentMethodController(deps.Services.PaymentMethodService)
	deps.StudentPaymentMethodController = appControllers.NewStudentPaymentMethodController(deps.Services.StudentPaymentMethodService)
	deps.TypeScholarshipController = appControllers.NewTypeScholarshipController(deps.Services.TypeScholarshipService)
	deps.EvaluationController = appControllers.NewEvaluationController(deps.Services.EvaluationService)

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

	router := gin.Default()

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.GradeController,
		deps.GroupController,
		deps.MeController,
		deps.StudentController,
		deps.PaymentMethodController,
		deps.StudentPaymentMethodController,
		deps.TypeScholarshipController,
		deps.EvaluationController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
