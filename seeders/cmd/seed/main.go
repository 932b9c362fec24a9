package main

import (
	"context"
	"flag"
	"os"

	"go.uber.org/zap"

	"freight-admin/pkg/config"
	"freight-admin/pkg/database/postgresql"
	applogger "freight-admin/pkg/logger"
	"freight-admin/seeders"
)

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func main() {
	runCatalog := flag.Bool("catalog", false, "upsert the permission catalog")
	runAdmin := flag.Bool("admin", false, "create the ADMIN role and the bootstrap admin user")
	runAll := flag.Bool("all", false, "run every seeder (same as -catalog -admin)")
	flag.Parse()

	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log)
	defer logger.Sync() //nolint:errcheck

	if !*runCatalog && !*runAdmin && !*runAll {
		flag.PrintDefaults()
		return
	}

	if err := postgresql.Migrate(cfg.Postgres.DSN, cfg.Postgres.Schema); err != nil {
		logger.Fatal("migrations failed", zap.Error(err))
	}

	ctx := context.Background()
	db, err := postgresql.ConnectDB(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("cannot connect to PostgreSQL", zap.Error(err))
	}
	defer db.Close()

	if *runAll || *runCatalog {
		if err := seeders.SeedCatalog(ctx, db, logger); err != nil {
			logger.Fatal("catalog seeding failed", zap.Error(err))
		}
	}

	if *runAll || *runAdmin {
		account := seeders.AdminAccount{
			UserName:  getEnv("ADMIN_USERNAME", "admin"),
			Email:     getEnv("ADMIN_EMAIL", "admin@example.com"),
			FirstName: getEnv("ADMIN_FIRST_NAME", "System"),
			LastName:  getEnv("ADMIN_LAST_NAME", "Administrator"),
			Password:  os.Getenv("ADMIN_PASSWORD"),
		}
		if len(account.Password) < 8 {
			logger.Fatal("ADMIN_PASSWORD must be set to at least 8 characters")
		}
		if err := seeders.SeedAdmin(ctx, db, account, logger); err != nil {
			logger.Fatal("admin seeding failed", zap.Error(err))
		}
	}
}
