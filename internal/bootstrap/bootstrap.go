package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yigit/coursehub/internal/app/controllers"
	appMigrations "github.com/yigit/coursehub/internal/app/migrations"
	appRepos "github.com/yigit/coursehub/internal/app/repositories"
	appRoutes "github.com/yigit/coursehub/internal/app/routes"
	appServices "github.com/yigit/coursehub/internal/app/services"
	"github.com/yigit/coursehub/internal/config"
	"github.com/yigit/coursehub/internal/db"
	appMiddleware "github.com/yigit/coursehub/internal/middleware"
	pkgAuth "github.com/yigit/coursehub/internal/pkg/auth"
	"github.com/yigit/coursehub/internal/pkg/logger"
	"github.com/yigit/coursehub/internal/pkg/metrics"
	"github.com/yigit/coursehub/internal/seed"
)

const poolStatsInterval = 15 * time.Second

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	Services          *appServices.Services
	JWTService        *pkgAuth.JWTService
	AuthMiddleware    *appMiddleware.AuthMiddleware
	StudentController *appControllers.StudentController
	TeacherController *appControllers.TeacherController
	StatusController  *appControllers.StatusController
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads .env and the YAML config, then configures the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	// A missing .env is normal outside local development
	if err := godotenv.Load(); err != nil {
		logger.Debug().Err(err).Msg("No .env file loaded")
	}

	cfg, err := config.LoadConfig(config.DefaultPath)
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
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Str("authMode", cfg.Auth.Mode).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase connects the pool, applies pending migrations and seeds development data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(ctx, cfg, lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Pool, lgr).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if cfg.Seed.Enabled && !cfg.IsProduction() {
		if err := seed.CreateDefaultData(ctx, appRepos.NewUserRepository(database.Pool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
		}
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)
	deps.Services = appServices.NewServices(deps.Repos)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Auth.JWTSecret,
		TokenTTL:    cfg.TokenTTLDuration(),
		TokenIssuer: cfg.Auth.Issuer,
	})
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(cfg.Auth.Mode, cfg.Auth.HeaderName, deps.JWTService, deps.Repos.UserRepository)

	deps.StudentController = appControllers.NewStudentController(deps.Services.Catalog, deps.Services.Enrollment)
	deps.TeacherController = appControllers.NewTeacherController(deps.Services.Authoring)
	deps.StatusController = appControllers.NewStatusController(database.Pool)

	return deps
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
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(), metrics.PrometheusMiddleware())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, appRoutes.Controllers{
		Student: deps.StudentController,
		Teacher: deps.TeacherController,
		Status:  deps.StatusController,
	}, deps.AuthMiddleware)

	return router
}

// StartPoolMetrics samples pool statistics into Prometheus until ctx is cancelled
func StartPoolMetrics(ctx context.Context, database *db.PostgresDB) {
	metrics.WatchPool(ctx, database.Pool, poolStatsInterval)
}
