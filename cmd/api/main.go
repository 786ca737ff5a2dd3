package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/lushlooksbeauty/studio-api/internal/config"
	dbpkg "github.com/lushlooksbeauty/studio-api/internal/db"
	"github.com/lushlooksbeauty/studio-api/internal/idempotency"
	"github.com/lushlooksbeauty/studio-api/internal/mailer"
	"github.com/lushlooksbeauty/studio-api/internal/middleware"
	"github.com/lushlooksbeauty/studio-api/internal/payments"
	"github.com/lushlooksbeauty/studio-api/internal/routes"
	"github.com/lushlooksbeauty/studio-api/internal/storage"
)

func main() {

	_ = godotenv.Load()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	dbpkg.EnsureAdmin(db, cfg)
	dbpkg.EnsureSettings(db)

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})

	verifier, err := payments.NewMercadoPagoVerifier(cfg.MercadoPagoToken)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure payment verifier")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, routes.Deps{
		DB:       db,
		Config:   cfg,
		Log:      log,
		Verifier: verifier,
		Guard:    idempotency.NewRedisGuard(rdb),
		Uploader: storage.NewUploader(cfg),
		Mailer:   mailer.NewSMTPMailer(cfg, log),
	})

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
