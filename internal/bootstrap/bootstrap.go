package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/yassine/schoolhub/internal/app/controllers"
	appMigrations "github.com/yassine/schoolhub/internal/app/migrations"
	appRepos "github.com/yassine/schoolhub/internal/app/repositories"
	appRoutes "github.com/yassine/schoolhub/internal/app/routes"
	appServices "github.com/yassine/schoolhub/internal/app/services"
	"github.com/yassine/schoolhub/internal/config"
	"github.com/yassine/schoolhub/internal/db"
	appMiddleware "github.com/yassine/schoolhub/internal/middleware"
	pkgAuth "github.com/yassine/schoolhub/internal/pkg/auth"
	"github.com/yassine/schoolhub/internal/pkg/filestorage"
	"github.com/yassine/schoolhub/internal/pkg/helpers"
	"github.com/yassine/schoolhub/internal/pkg/logger"
	"github.com/yassine/schoolhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           appServices.AuthService
	AdminService          appServices.AdminService
	TeacherService        appServices.TeacherService
	ParentService         appServices.ParentService
	StudentService        appServices.StudentService
	CycleService          appServices.CycleService
	FieldService          appServices.FieldService
	SpecializationService appServices.SpecializationService
	LevelService          appServices.LevelService
	GroupService          appServices.GroupService
	SubjectService        appServices.SubjectService
	CourseFileService     appServices.CourseFileService
	ReportService         appServices.ReportService

	AuthController           *appControllers.AuthController
	AdminController          *appControllers.AdminController
	TeacherController        *appControllers.TeacherController
	ParentController         *appControllers.ParentController
	StudentController        *appControllers.StudentController
	CycleController          *appControllers.CycleController
	FieldController          *appControllers.FieldController
	SpecializationController *appControllers.SpecializationController
	LevelController          *appControllers.LevelController
	GroupController          *appControllers.GroupController
	SubjectController        *appControllers.SubjectController
	CourseFileController     *appControllers.CourseFileController
	ReportController         *appControllers.ReportController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default admin.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), cfg, database.Pool, lgr); err != nil {
		// A missing default admin is recoverable, keep starting up.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Pool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.AccountRepository, deps.JWTService)
	deps.AdminService = appServices.NewAdminService(database, deps.Repos.AccountRepository, deps.Repos.AdminRepository)
	deps.TeacherService = appServices.NewTeacherService(database, deps.Repos.AccountRepository, deps.Repos.TeacherRepository)
	deps.ParentService = appServices.NewParentService(database, deps.Repos.AccountRepository, deps.Repos.ParentRepository)
	deps.StudentService = appServices.NewStudentService(database, deps.Repos.AccountRepository, deps.Repos.StudentRepository)
	deps.CycleService = appServices.NewCycleService(deps.Repos.CycleRepository)
	deps.FieldService = appServices.NewFieldService(deps.Repos.FieldRepository)
	deps.SpecializationService = appServices.NewSpecializationService(deps.Repos.SpecializationRepository)
	deps.LevelService = appServices.NewLevelService(deps.Repos.LevelRepository)
	deps.GroupService = appServices.NewGroupService(deps.Repos.GroupRepository)
	deps.SubjectService = appServices.NewSubjectService(deps.Repos.SubjectRepository, deps.Repos.TeacherRepository)
	deps.CourseFileService = appServices.NewCourseFileService(deps.Repos.CourseFileRepository, deps.Repos.TeacherRepository, deps.FileStorage)
	deps.ReportService = appServices.NewReportService(
		deps.Repos.StudentRepository,
		deps.Repos.CycleRepository,
		deps.Repos.FieldRepository,
		deps.Repos.SpecializationRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.ParentController = appControllers.NewParentController(deps.ParentService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CycleController = appControllers.NewCycleController(deps.CycleService)
	deps.FieldController = appControllers.NewFieldController(deps.FieldService)
	deps.SpecializationController = appControllers.NewSpecializationController(deps.SpecializationService)
	deps.LevelController = appControllers.NewLevelController(deps.LevelService)
	deps.GroupController = appControllers.NewGroupController(deps.GroupService)
	deps.SubjectController = appControllers.NewSubjectController(deps.SubjectService)
	deps.CourseFileController = appControllers.NewCourseFileController(deps.CourseFileService)
	deps.ReportController = appControllers.NewReportController(deps.ReportService)

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

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.AdminController,
		deps.TeacherController,
		deps.ParentController,
		deps.StudentController,
		deps.CycleController,
		deps.FieldController,
		deps.SpecializationController,
		deps.LevelController,
		deps.GroupController,
		deps.SubjectController,
		deps.CourseFileController,
		deps.ReportController,
		deps.AuthMiddleware,
	)

	return router
}
