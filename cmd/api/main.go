package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/atlas/app"
	"github.com/joefazee/atlas/app/api"
	"github.com/joefazee/atlas/app/countries"
	"github.com/joefazee/atlas/app/database"
	"github.com/joefazee/atlas/internal/cache"
	"github.com/joefazee/atlas/internal/deps"
	"github.com/joefazee/atlas/internal/logger"
	"github.com/joefazee/atlas/internal/router"
	"github.com/joefazee/atlas/internal/sanitizer"
)

// @title Atlas API
// @version 1.0
// @description Country reference data aggregation service: pulls the country directory and exchange rates, derives per-country economic estimates and serves the merged records.

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	appLogger := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{
		"service": "atlas",
		"env":     cfg.Env,
	})

	artifactCache := newArtifactCache(cfg)

	container := deps.NewContainer(db, sanitizer.NewHTMLStripper(), appLogger, artifactCache)

	countries.InitRepositories(container)
	countries.InitServices(container, &cfg.Countries)

	r := gin.Default()
	r.Use(api.CorsMiddleware())
	r.GET("/healthz", api.HealthCheck)

	router.NewMounter(container).
		Public(r).
		Mount(countries.MountPublic)

	appLogger.Info("starting atlas API server", map[string]interface{}{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func newArtifactCache(cfg *app.Config) cache.Cache[[]byte] {
	if cfg.CacheBackend == cache.RedisBackend {
		return cache.NewCache[[]byte](cache.RedisBackend, &cache.RedisOptions{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			PoolSize:  10,
			OpTimeout: 500 * time.Millisecond,
		})
	}
	return cache.NewCache[[]byte](cache.MemoryBackend)
}
