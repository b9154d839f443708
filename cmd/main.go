package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/lnbits-gallery/internal/facades"
	"github.com/sbilibin2017/lnbits-gallery/internal/handlers"
	"github.com/sbilibin2017/lnbits-gallery/internal/jwt"
	"github.com/sbilibin2017/lnbits-gallery/internal/logger"
	"github.com/sbilibin2017/lnbits-gallery/internal/middlewares"
	"github.com/sbilibin2017/lnbits-gallery/internal/migrations"
	"github.com/sbilibin2017/lnbits-gallery/internal/models"
	"github.com/sbilibin2017/lnbits-gallery/internal/repositories"
	"github.com/sbilibin2017/lnbits-gallery/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title lnbits-gallery API
// @version 1.0.0
// @description Photo gallery service with pay-to-unlock images via LNbits paywalls
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, blurCacheTTL,
		kafkaBroker, kafkaTopic,
		cloudName, cloudAPIKey, cloudAPISecret, cloudFolder,
		lnbitsURL, lnbitsAPIKey, paywallAmount,
		jwtSecretKey, jwtExpSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, blurCacheTTL,
		kafkaBroker, kafkaTopic,
		cloudName, cloudAPIKey, cloudAPISecret, cloudFolder,
		lnbitsURL, lnbitsAPIKey, paywallAmount,
		jwtSecretKey, jwtExpSecond,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, media host, payment host, logging,
// and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, blurCacheTTL int,
	kafkaBroker, kafkaTopic string,
	cloudName, cloudAPIKey, cloudAPISecret, cloudFolder string,
	lnbitsURL, lnbitsAPIKey string, paywallAmount int,
	jwtSecretKey string, jwtExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "gallery")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if blurCacheTTL, err = strconv.Atoi(getEnv("BLUR_CACHE_TTL_SECOND", "86400")); err != nil {
		return
	}

	// Kafka config, events disabled when broker is empty
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "paywall-events")

	// Media host config
	cloudName = getEnv("CLOUDINARY_CLOUD_NAME", "")
	cloudAPIKey = getEnv("CLOUDINARY_API_KEY", "")
	cloudAPISecret = getEnv("CLOUDINARY_API_SECRET", "")
	cloudFolder = getEnv("CLOUDINARY_FOLDER", "gallery")

	// Payment host config
	lnbitsURL = getEnv("LNBITS_URL", "https://legend.lnbits.com")
	lnbitsAPIKey = getEnv("LNBITS_API_KEY", "")
	if paywallAmount, err = strconv.Atoi(getEnv("PAYWALL_AMOUNT", "1000")); err != nil {
		return
	}

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "86400")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, external facades,
// and HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, blurCacheTTL int,
	kafkaBroker, kafkaTopic string,
	cloudName, cloudAPIKey, cloudAPISecret, cloudFolder string,
	lnbitsURL, lnbitsAPIKey string, paywallAmount int,
	jwtSecretKey string, jwtExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect error: %w", err)
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer for paywall events, optional
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infof("Kafka events enabled, broker %s topic %s", kafkaBroker, kafkaTopic)
	}

	// Initialize JWT service
	jwtSvc := jwt.New(
		jwt.WithSecretKey(jwtSecretKey),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize external facades
	cloudinaryFacade := facades.NewCloudinaryFacade(cloudName, cloudAPIKey, cloudAPISecret, cloudFolder)
	lnbitsFacade := facades.NewLNBitsFacade(lnbitsURL, lnbitsAPIKey)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	paywallReadRepo := repositories.NewPaywallReadRepository(db)
	paywallWriteRepo := repositories.NewPaywallWriteRepository(db)
	blurCacheRepo := repositories.NewBlurCacheRepository(rdb, time.Duration(blurCacheTTL)*time.Second)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	galleryService := services.NewGalleryService(cloudinaryFacade, paywallReadRepo, blurCacheRepo)
	paywallService := services.NewPaywallService(lnbitsFacade, paywallReadRepo, paywallWriteRepo, kafkaWriter, int64(paywallAmount))

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	setupAdminHandler := handlers.NewSetupAdminHandler(authService)
	imagesHandler := handlers.NewImagesHandler(galleryService)
	paywallHandler := handlers.NewPaywallHandler(paywallService)
	listUsersHandler := handlers.NewListUsersHandler(authService)
	updateUserHandler := handlers.NewUpdateUserHandler(authService)
	deleteUserHandler := handlers.NewDeleteUserHandler(authService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	adminOnly := middlewares.AuthMiddleware(jwtSvc, middlewares.WithRequiredRole(models.RoleAdmin))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/register", registerHandler)
		r.Post("/login", loginHandler)
		r.Post("/setup/admin", setupAdminHandler)
		r.Get("/images", imagesHandler)

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(adminOnly)
			r.Post("/paywalls", paywallHandler)
			r.Get("/users", listUsersHandler)
			r.Put("/users/{username}", updateUserHandler)
			r.Delete("/users/{username}", deleteUserHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))
	r.Handle("/metrics", promhttp.Handler())

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
