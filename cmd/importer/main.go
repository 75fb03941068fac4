package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"geocoder/internal/config"
	"geocoder/internal/repository"
	"geocoder/internal/timezone"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to the CSV file to import")
	schema := flag.Bool("schema", true, "Create the addresses table if it does not exist")
	fillTimezones := flag.Bool("timezones", true, "Resolve missing timezones from coordinates")
	flag.Parse()

	if *file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file flag is required")
		os.Exit(1)
	}

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	log.Logger = cfg.NewLogger()

	if err := run(context.Background(), cfg, *file, *schema, *fillTimezones); err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("import failed")
	}
}

func run(ctx context.Context, cfg config.Config, path string, ensureSchema, fillTimezones bool) error {
	log.Info().Str("file", path).Msg("starting import")

	var tz TimezoneResolver
	if fillTimezones {
		svc, err := timezone.NewService()
		if err != nil {
			return err
		}
		tz = svc
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	addresses, err := parseCSV(f, tz)
	if err != nil {
		return fmt.Errorf("failed to parse CSV: %w", err)
	}
	log.Info().Int("records", len(addresses)).Msg("parsed records")

	pool, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	repo := repository.NewRepository(pool)
	if ensureSchema {
		if err := repo.EnsureSchema(ctx); err != nil {
			return err
		}
	}

	before, err := repo.CountAddresses(ctx)
	if err != nil {
		return err
	}

	inserted, err := repo.InsertAddresses(ctx, addresses)
	if err != nil {
		return err
	}

	after, err := repo.CountAddresses(ctx)
	if err != nil {
		return err
	}
	if after-before != inserted {
		return fmt.Errorf("record count mismatch: inserted %d, table grew by %d", inserted, after-before)
	}

	log.Info().Int64("inserted", inserted).Int64("total", after).Msg("import complete")
	return nil
}
