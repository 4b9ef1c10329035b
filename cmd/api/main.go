package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GabrielAraujo027/Kalenner/internal/config"
	"github.com/GabrielAraujo027/Kalenner/internal/db"
	"github.com/GabrielAraujo027/Kalenner/internal/middleware"
	"github.com/GabrielAraujo027/Kalenner/internal/observability"
	"github.com/GabrielAraujo027/Kalenner/internal/routes"
)

func main() {
	cfg := config.Load()

	setupLogger(cfg.LogLevel)

	database := db.NewDB(cfg)

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid REDIS_URL")
		}
		rdb = redis.NewClient(opts)
	}

	metrics := observability.NewMetrics()

	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())
	r.Use(metrics.Middleware())

	routes.Setup(r, database, cfg, rdb, metrics)

	log.Info().Str("addr", cfg.Addr()).Msg("starting server")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
