package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salonq/internal/audit"
	"github.com/BruksfildServices01/salonq/internal/blobstore"
	"github.com/BruksfildServices01/salonq/internal/config"
	dbpkg "github.com/BruksfildServices01/salonq/internal/db"
	"github.com/BruksfildServices01/salonq/internal/infra/photos"
	"github.com/BruksfildServices01/salonq/internal/logger"
	"github.com/BruksfildServices01/salonq/internal/metrics"
	"github.com/BruksfildServices01/salonq/internal/routes"
	"github.com/BruksfildServices01/salonq/internal/timezone"
)

func main() {

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer func() { _ = log.Sync() }()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid configuration", zap.Error(err))
	}

	var collector *metrics.Collector
	if cfg.MetricsEnabled {
		collector = metrics.NewCollector("salonq")
	}

	ctx := context.Background()

	blobs, closeBlobs := openBlobStore(ctx, cfg, log)
	defer closeBlobs()
	blobs = blobstore.Instrument(blobs, collector)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal("database unavailable", zap.Error(err))
	}
	if err := dbpkg.Seed(ctx, db); err != nil {
		log.Fatal("seeding catalog failed", zap.Error(err))
	}

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	infra := routes.Infra{
		DB:      db,
		Blobs:   blobs,
		Audit:   auditDispatcher,
		Metrics: collector,
		Clock:   timezone.NewClock(cfg.Timezone),
		Log:     log,
	}
	if cfg.S3.Enabled() {
		infra.Photos = photos.NewS3Storage(cfg.S3)
	} else {
		log.Info("S3_BUCKET not set, photo uploads disabled")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	routes.RegisterRoutes(r, infra, cfg)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server running", zap.String("addr", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", zap.Error(err))
	}

	auditDispatcher.Close()
	closeDB(db, log)
	log.Info("server stopped")
}

func openBlobStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (blobstore.Store, func()) {
	if cfg.BlobBackend == config.BlobBackendMemory {
		log.Warn("using in-memory blob store, data is lost on restart")
		return blobstore.NewMemory(), func() {}
	}

	client, err := blobstore.DialRedis(ctx, blobstore.RedisOptions{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		log.Fatal("redis unavailable", zap.String("addr", cfg.RedisAddr), zap.Error(err))
	}
	return blobstore.NewRedis(client), func() { _ = client.Close() }
}

func closeDB(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Warn("closing database", zap.Error(err))
	}
}
