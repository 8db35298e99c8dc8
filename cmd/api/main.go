package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/barber-crm/internal/cache"
	"github.com/BruksfildServices01/barber-crm/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-crm/internal/db"
	"github.com/BruksfildServices01/barber-crm/internal/logger"
	"github.com/BruksfildServices01/barber-crm/internal/middleware"
	"github.com/BruksfildServices01/barber-crm/internal/routes"
)

func main() {

	// .env é opcional; em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db := dbpkg.NewDB(cfg, log)

	rdb, err := cache.NewRedis(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect redis")
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := routes.RegisterRoutes(r, db, rdb, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("failed to register routes")
	}

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
