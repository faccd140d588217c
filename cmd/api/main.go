package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/justsurfingit/longevity-jobs/internal/config"
	"github.com/justsurfingit/longevity-jobs/internal/database"
	"github.com/justsurfingit/longevity-jobs/internal/handlers"
	"github.com/justsurfingit/longevity-jobs/internal/services"
	"github.com/justsurfingit/longevity-jobs/internal/supabase"
	"github.com/justsurfingit/longevity-jobs/internal/web"
)

func main() {
	// 1. Configuration (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading configuration: ", err)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		log.Fatal("Error building logger: ", err)
	}
	defer logger.Sync() //nolint:errcheck
	sugar := logger.Sugar()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	// 2. Job source: Postgres when DATABASE_URL is set, else the REST API
	var source services.JobSource
	if cfg.UseDatabase() {
		db, err := database.Connect(cfg.DatabaseURL, sugar)
		if err != nil {
			sugar.Fatalw("Failed to connect to database", "error", err)
		}
		source = database.NewStore(db)
	} else {
		source = supabase.NewClient(cfg.SupabaseURL, cfg.SupabaseAnonKey)
		sugar.Infow("Using Supabase REST API", "url", cfg.SupabaseURL)
	}

	// 3. Services & handlers
	meta, err := web.NewMeta(cfg.BaseURL)
	if err != nil {
		sugar.Fatalw("Invalid base URL", "error", err)
	}
	jobService := services.NewJobService(source, sugar)
	jobHandler := handlers.NewJobHandler(jobService, meta, sugar)

	// 4. Router
	r, err := handlers.NewRouter(jobHandler, sugar)
	if err != nil {
		sugar.Fatalw("Failed to build router", "error", err)
	}

	sugar.Infow("Server starting", "port", cfg.Port, "base_url", cfg.BaseURL)
	if err := r.Run(":" + cfg.Port); err != nil {
		sugar.Fatalw("Server failed to start", "error", err)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}
