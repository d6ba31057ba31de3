// Command seed loads the demo dataset into the configured database.
// Run it against a fresh or existing database; volatile demo data is
// cleared first and accounts are reused across runs.
package main

import (
	"context"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/justicerollon/go-justice-backend/internal/config"
	"github.com/justicerollon/go-justice-backend/internal/repo"
	"github.com/justicerollon/go-justice-backend/internal/seed"
	"github.com/justicerollon/go-justice-backend/internal/sysutil"
)

func main() {
	_ = godotenv.Load()
	cfg := config.MustLoad()
	sysutil.SetLogLevel(cfg.LogLevel)

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate schema")
	}
	if err := seed.Demo(context.Background(), db); err != nil {
		log.Fatal().Err(err).Msg("seed demo data")
	}
}
