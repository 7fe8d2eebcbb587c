package main

import (
	"context"
	"flag"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/go-accounts/internal/config"
	"github.com/MKhiriev/go-accounts/internal/crypto"
	"github.com/MKhiriev/go-accounts/internal/logger"
	"github.com/MKhiriev/go-accounts/internal/seed"
	"github.com/MKhiriev/go-accounts/internal/store"
)

type seedConfig struct {
	Storage          config.Storage `envPrefix:"STORAGE_"`
	PasswordHashCost int            `env:"APP_PASSWORD_HASH_COST"`

	// Password is given to every bootstrap account.
	Password string `env:"SEED_PASSWORD"`
}

func main() {
	log := logger.NewLogger("go-accounts-seed")

	var cfg seedConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal().Err(err).Msg("error getting env configs")
	}

	fs := flag.NewFlagSet("go-accounts-seed", flag.ExitOnError)
	dsn := fs.String("d", "", "Database DSN")
	password := fs.String("password", "", "Password of the bootstrap accounts")
	_ = fs.Parse(os.Args[1:])

	if *dsn != "" {
		cfg.Storage.DB.DSN = *dsn
	}
	if *password != "" {
		cfg.Password = *password
	}

	if err := seed.CheckDSN(cfg.Storage.DB.DSN); err != nil {
		log.Fatal().Err(err).Msg("set STORAGE_DB_DATABASE_URI or -d")
	}

	ctx := context.Background()
	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	seeder := seed.NewSeeder(storages, crypto.NewPasswordHasher(cfg.PasswordHashCost), log)
	created, err := seeder.Seed(ctx, cfg.Password, seed.DefaultAccounts...)
	if err != nil {
		log.Err(err).Msg("seeding failed")
		storages.Close()
		os.Exit(1)
	}

	log.Info().Int("created", len(created)).Msg("seeding done")
}
