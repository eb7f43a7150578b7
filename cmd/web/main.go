package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ororso11/m-led/internal/config"
	apphttp "github.com/ororso11/m-led/internal/http"
	"github.com/ororso11/m-led/internal/modules/auth"
	"github.com/ororso11/m-led/internal/modules/products"
	"github.com/ororso11/m-led/internal/modules/schema"
	"github.com/ororso11/m-led/internal/modules/specsheet"
	"github.com/ororso11/m-led/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg := config.FromEnv()
	if cfg.DBDSN == "" {
		log.Fatal("DB_DSN environment variable is required")
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	ctx := context.Background()

	files, err := storage.FromEnv(ctx)
	if err != nil {
		log.Fatalf("failed to configure storage: %v", err)
	}
	logger.Info("storage configured", "driver", files.Driver)

	schemaStore := schema.NewStore(db)
	if err := schemaStore.Load(ctx); err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	repo := products.NewRepo(db)
	mirror := products.NewStore(repo, logger)
	if err := mirror.Reload(ctx); err != nil {
		// Serve with an empty catalog and let the reload loop recover.
		logger.Error("initial product load failed", "err", err)
	}
	go mirror.Run(ctx, cfg.MirrorReloadInterval)

	productSvc := products.NewService(repo, mirror, schemaStore, files.Storage)
	authSvc := auth.NewService(db)
	generator := specsheet.NewGenerator(specsheet.NewFetcher(cfg.SpecsheetImageProxy, cfg.SpecsheetImageTimeout))

	r := apphttp.NewRouter(apphttp.Deps{
		Logger:      logger,
		DB:          db,
		Cfg:         cfg,
		SchemaStore: schemaStore,
		Mirror:      mirror,
		ProductSvc:  productSvc,
		AuthSvc:     authSvc,
		Generator:   generator,
		Storage:     files.Storage,
	})

	logger.Info("listening", "addr", cfg.HTTPAddr)
	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
