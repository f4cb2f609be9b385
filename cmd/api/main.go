package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/angiescolor/salon-agenda/internal/config"
	dbpkg "github.com/angiescolor/salon-agenda/internal/db"
	"github.com/angiescolor/salon-agenda/internal/routes"
)

func main() {

	cfg := config.Load()
	setupLogger(cfg.LogLevel)

	if err := dbpkg.Migrate(cfg.DBUrl); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	db := dbpkg.NewDB(cfg)

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg)

	log.Info().Str("addr", cfg.Addr()).Str("salon", cfg.SalonName).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func setupLogger(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if os.Getenv("LOG_PRETTY") == "true" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}
