package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"matchstats/internal/config"
	cronrunner "matchstats/internal/cron"
	"matchstats/internal/db"
	"matchstats/internal/filter"
	"matchstats/internal/handler"
	"matchstats/internal/logger"
	gormrepository "matchstats/internal/repository/gorm"
	"matchstats/internal/service"

	_ "matchstats/docs"
)

func main() {
	cfgPath := os.Getenv("MS_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/config.yaml"
	}

	envOnly := false
	if envOnlyRaw := os.Getenv("MS_ENV_ONLY"); envOnlyRaw != "" {
		envOnly = strings.EqualFold(envOnlyRaw, "true") || envOnlyRaw == "1"
	}

	cfg, err := config.Load(cfgPath, envOnly)
	if err != nil {
		panic(err)
	}

	logger, err := logger.New(cfg.Log)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	dbConn, err := db.Open(cfg.DB)
	if err != nil {
		logger.Fatal("db open failed", zap.Error(err))
	}
	defer db.Close(dbConn)

	if err := db.SetTimezone(dbConn, cfg.DB.Timezone); err != nil {
		logger.Warn("failed to set timezone", zap.Error(err))
	}

	baseCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store := gormrepository.New(dbConn.Gorm, cfg.Query.Timeout)
	normalizer := filter.NewNormalizer(cfg.Odds.Tolerance)

	leagueCache := &service.LeagueCache{Repo: store, Logger: logger}
	if err := leagueCache.Refresh(baseCtx); err != nil {
		logger.Warn("initial league cache warm failed", zap.Error(err))
	}

	runner := cronrunner.New(logger, baseCtx)
	if cfg.Cron.Enabled {
		if _, err := runner.Add(cfg.Cron.LeagueCache, "league_cache", func(ctx context.Context) {
			_ = leagueCache.Refresh(ctx)
		}); err != nil {
			logger.Fatal("cron setup failed", zap.Error(err))
		}
		runner.Start()
		defer func() { <-runner.Stop().Done() }()
	}

	if strings.EqualFold(cfg.App.Env, "dev") {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(corsMiddleware())

	healthHandler := &handler.HealthHandler{DB: dbConn.Gorm}
	healthHandler.Register(engine)
	matchHandler := &handler.MatchHandler{Repo: store, Normalizer: normalizer, Logger: logger}
	matchHandler.Register(engine)
	leagueHandler := &handler.LeagueHandler{Repo: store, Cache: leagueCache, Logger: logger}
	leagueHandler.Register(engine)
	rollupHandler := &handler.RollupHandler{Repo: store, Normalizer: normalizer, Logger: logger}
	rollupHandler.Register(engine)
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: engine,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", cfg.Server.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-baseCtx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", zap.Error(err))
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
