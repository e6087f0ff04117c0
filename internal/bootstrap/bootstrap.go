package bootstrap

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/ulule/limiter/v3"

	appAuth "github.com/Aman-Kr09/OrganicClasses/internal/app/auth"
	appControllers "github.com/Aman-Kr09/OrganicClasses/internal/app/controllers"
	appMigrations "github.com/Aman-Kr09/OrganicClasses/internal/app/migrations"
	appRepos "github.com/Aman-Kr09/OrganicClasses/internal/app/repositories"
	appRoutes "github.com/Aman-Kr09/OrganicClasses/internal/app/routes"
	appServices "github.com/Aman-Kr09/OrganicClasses/internal/app/services"
	"github.com/Aman-Kr09/OrganicClasses/internal/config"
	"github.com/Aman-Kr09/OrganicClasses/internal/db"
	appMiddleware "github.com/Aman-Kr09/OrganicClasses/internal/middleware"
	pkgAuth "github.com/Aman-Kr09/OrganicClasses/internal/pkg/auth"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/email"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/helpers"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/logger"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/ratelimit"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/validation"
	"github.com/Aman-Kr09/OrganicClasses/internal/pkg/websocket"
	"github.com/Aman-Kr09/OrganicClasses/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	CourseService     appServices.CourseService
	InquiryService    appServices.InquiryService
	StatsService      appServices.StatsService
	AuthController    *appControllers.AuthController
	CourseController  *appControllers.CourseController
	InquiryController *appControllers.InquiryController
	StatsController   *appControllers.StatsController
	SystemController  *appControllers.SystemController
	LiveHandler       *websocket.Handler
	Hub               *websocket.Hub
	AuthMiddleware    *appMiddleware.AuthMiddleware
	GeneralLimiter    *appMiddleware.RateLimiter
	InquiryLimiter    *appMiddleware.RateLimiter
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	AuthzService      *appAuth.AuthorizationService
	EmailService      email.EmailService
	Logger            zerolog.Logger
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

// SetupDatabase connects to MongoDB, applies the index migrations and
// creates the default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	lgr.Info().Msg("Running database migrations...")
	if err := appMigrations.NewMigrator(database.Database).Migrate(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		_ = database.Close(context.Background())
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	repos := appRepos.NewRepositories(database.Database)
	if err := seed.CreateDefaultData(ctx, seed.StoresFrom(repos), cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// SetupRateLimitStore connects to Redis when an address is configured. The
// returned client is nil when the in-process store is used instead.
func SetupRateLimitStore(cfg *config.Config, lgr zerolog.Logger) (limiter.Store, *redis.Client) {
	if cfg.Redis.Addr == "" {
		lgr.Info().Msg("No Redis address configured, rate limits are kept in memory")
		return ratelimit.NewMemoryStore(), nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis unreachable, rate limits are kept in memory")
		_ = client.Close()
		return ratelimit.NewMemoryStore(), nil
	}

	store, err := ratelimit.NewRedisStore(client)
	if err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis store unavailable, rate limits are kept in memory")
		_ = client.Close()
		return ratelimit.NewMemoryStore(), nil
	}

	lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Rate limits are stored in Redis")
	return store, client
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, store limiter.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.Expiration, 168*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})
	deps.AuthzService = appAuth.NewAuthorizationService(deps.Repos.UserRepository)

	deps.EmailService = email.NewEmailService(email.SMTPConfig{
		Host:        cfg.SMTP.Host,
		Port:        cfg.SMTP.Port,
		Username:    cfg.SMTP.Username,
		Password:    cfg.SMTP.Password,
		FromName:    cfg.SMTP.FromName,
		FromEmail:   cfg.SMTP.FromEmail,
		NotifyEmail: cfg.SMTP.NotifyEmail,
	}, logger.ForComponent("email"))

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, deps.EmailService, lgr)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository, deps.Repos.UserRepository, lgr)
	deps.InquiryService = appServices.NewInquiryService(deps.Repos.InquiryRepository, deps.Repos.UserRepository, deps.EmailService, lgr)
	deps.StatsService = appServices.NewStatsService(deps.Repos.StatsRepository, deps.Repos.UserRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService, deps.AuthzService)
	deps.GeneralLimiter = appMiddleware.NewRateLimiter(store, appMiddleware.RateLimitConfig{
		Name:    "general",
		Limit:   int64(cfg.RateLimit.GeneralRequests),
		Window:  helpers.ParseDuration(cfg.RateLimit.GeneralWindow, 15*time.Minute),
		Message: appMiddleware.MsgTooManyRequests,
	}, lgr)
	deps.InquiryLimiter = appMiddleware.NewRateLimiter(store, appMiddleware.RateLimitConfig{
		Name:    "inquiry",
		Limit:   int64(cfg.RateLimit.InquiryRequests),
		Window:  helpers.ParseDuration(cfg.RateLimit.InquiryWindow, time.Hour),
		Message: appMiddleware.MsgTooManyInquirySubmission,
	}, lgr)

	deps.Hub = websocket.NewHub(logger.ForComponent("live"))
	deps.LiveHandler = websocket.NewHandler(deps.Hub, cfg.Server.AllowedOrigins, logger.ForComponent("live"))

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService, deps.StatsService, deps.Hub, lgr)
	deps.InquiryController = appControllers.NewInquiryController(deps.InquiryService, deps.StatsService, deps.Hub, lgr)
	deps.StatsController = appControllers.NewStatsController(deps.StatsService, lgr)
	deps.SystemController = appControllers.NewSystemController(database, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.RegisterGinValidators()

	router := gin.New()

	// ClientIP keys the rate limits; forwarded headers are honoured only
	// from these proxies, none when the list is empty
	if err := router.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	lgr.Info().Strs("trustedProxies", cfg.Server.TrustedProxies).Msg("Trusted proxies configured")

	router.Use(
		appMiddleware.CustomRecovery(),
		appMiddleware.RequestLogger(lgr),
		appMiddleware.SecurityHeaders(),
		appMiddleware.CORS(cfg.Server.AllowedOrigins),
		appMiddleware.BodyLimit(int64(cfg.Server.BodyLimitMB)<<20),
		deps.GeneralLimiter.Handler(),
	)

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		appRoutes.Controllers{
			Auth:    deps.AuthController,
			Course:  deps.CourseController,
			Inquiry: deps.InquiryController,
			Stats:   deps.StatsController,
			System:  deps.SystemController,
			Live:    deps.LiveHandler,
		},
		deps.AuthMiddleware,
		deps.InquiryLimiter.Handler(),
	)

	return router, nil
}
