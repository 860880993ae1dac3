// File: cmd/service/main.go
// @title        EsporteAgenda API
// @version      1.0
// @description  Court booking backend: accounts, court management and slot reservations
// @host         localhost:8080
// @BasePath     /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"esporteagenda/internal/cache"
	"esporteagenda/internal/database"
	"esporteagenda/internal/email"
	"esporteagenda/internal/router"
	"esporteagenda/internal/upload"
	"esporteagenda/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "esporteagenda/docs" // swag-generated API docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

var (
	newPgxPool      = database.NewPgxPool
	newRedisClient  = cache.NewRedisClient
	runMigrationsFn = database.RunMigrations
	newSESClient    = func(key, secret, region, sender string) (email.Sender, error) {
		return email.NewSESClient(key, secret, region, sender)
	}
	startServer   = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	newWorkerPool = worker.NewPool
	exitFunc      = os.Exit
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func run() error {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found")
	}
	if getEnv("ENVIRONMENT", "development") == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL not set")
	}

	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		return fmt.Errorf("REDIS_ADDR not set")
	}
	redisIndex, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return fmt.Errorf("invalid REDIS_DB: %v", err)
	}
	redisPassword := os.Getenv("REDIS_PASSWORD")

	workerCount, err := strconv.Atoi(getEnv("WORKER_COUNT", "1"))
	if err != nil || workerCount <= 0 {
		return fmt.Errorf("invalid WORKER_COUNT")
	}

	db, err := newPgxPool(context.Background(), dbURL)
	if err != nil {
		return fmt.Errorf("database connection failed: %v", err)
	}
	defer db.Close()

	redis, err := newRedisClient(redisAddr, redisPassword, redisIndex)
	if err != nil {
		return fmt.Errorf("redis connection failed: %v", err)
	}
	defer redis.Close()

	if err := runMigrationsFn(dbURL); err != nil {
		return fmt.Errorf("migrations failed: %v", err)
	}

	// Mail is optional: without SES credentials, password-recovery links are
	// stored but not delivered.
	var mailer email.Sender
	if key := os.Getenv("SES_ACCESS_KEY_ID"); key != "" {
		mailer, err = newSESClient(
			key,
			os.Getenv("SES_SECRET_ACCESS_KEY"),
			getEnv("SES_REGION", "us-east-1"),
			os.Getenv("SES_SENDER"),
		)
		if err != nil {
			return fmt.Errorf("ses client failed: %v", err)
		}
	} else {
		log.Warn().Msg("SES not configured, reset mails disabled")
	}

	files := upload.NewStore(getEnv("UPLOAD_DIR", "public/uploads"))

	wp := newWorkerPool(workerCount)
	defer wp.Stop()

	e := echo.New()
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Static("/", "public")

	router.Setup(e, db, redis, mailer, files, wp)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	addr := ":" + getEnv("PORT", "8080")
	log.Info().Str("addr", addr).Msg("starting server")
	return startServer(e, addr)
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("service failed")
		exitFunc(1)
	}
}
