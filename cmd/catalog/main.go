package main

import (
	"context"
	"database/sql"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"ShopCatalog/internal/catalog"
	"ShopCatalog/internal/docstore"
	"ShopCatalog/pkg/kit"
)

const schemaTimeout = 5 * time.Second

func main() {
	service := "catalog"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("load config failed", zap.Error(err))
	}

	store := openStore(cfg.DatabaseURL, log)

	s := catalog.NewServer(store, log)
	s.SeedLimiter = kit.NewIPRateLimiter(cfg.SeedLimit, int(cfg.SeedLimitWindow.Seconds()))

	reg := prometheus.NewRegistry()
	h := catalog.NewHandler(s, catalog.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       reg,
		MetricsEnabled: cfg.MetricsEnabled,
		MetricsToken:   cfg.MetricsToken,
	})

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

// openStore connects to PostgreSQL when a URL is configured. Absence of a
// URL is not an error: reads degrade to the sample catalog and seeding is
// rejected with 503.
func openStore(databaseURL string, log *zap.Logger) docstore.Store {
	if databaseURL == "" {
		log.Warn("DATABASE_URL not set, serving the sample catalog")
		return nil
	}

	db, err := sql.Open("pgx", databaseURL)
	if err != nil {
		log.Warn("database open failed, serving the sample catalog", zap.Error(err))
		return nil
	}

	ps := docstore.NewPostgresStore(db)

	ctx, cancel := context.WithTimeout(context.Background(), schemaTimeout)
	defer cancel()
	if err := ps.EnsureSchema(ctx); err != nil {
		// Reads still degrade per request; seeding will surface the error.
		log.Warn("schema setup failed", zap.Error(err))
	}

	return ps
}
