package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"traffic-analytics/internal/loaders"
	"traffic-analytics/internal/shared/configs"
	"traffic-analytics/internal/shared/loggers"
	"traffic-analytics/internal/shared/sqlitedb"
)

// The loader is a one-shot job: dedup and insert the reference CSVs, then
// fold the historical events file into the hourly counters. Each file
// commits or rolls back as a unit; a failing file leaves earlier files'
// commits intact.
func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to config file")
	dataDir := flag.String("data-dir", "./data", "directory containing the CSV files")
	skipEvents := flag.Bool("skip-events", false, "load reference data only")
	flag.Parse()

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := loggers.New(cfg.Log.Level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	logger = logger.With().Str(loggers.FieldApp, "traffic-analytics-loader").Logger()

	db, err := sqlitedb.Open(cfg.Database.Path)
	if err != nil {
		logger.Error().Err(err).Msg("failed to open database")
		os.Exit(1)
	}
	defer db.Close()

	ctx := logger.WithContext(context.Background())
	loader := loaders.NewBatchLoader(db)

	referenceFiles := []struct {
		name string
		load func(context.Context, string) (int, error)
	}{
		{"customers.csv", loader.LoadCustomers},
		{"ip_blacklist.csv", loader.LoadIPBlacklist},
		{"ua_blacklist.csv", loader.LoadUABlacklist},
	}

	for _, file := range referenceFiles {
		path := filepath.Join(*dataDir, file.name)
		inserted, err := file.load(ctx, path)
		if err != nil {
			logger.Error().Err(err).Str(loggers.FieldFile, path).Msg("reference load failed")
			os.Exit(1)
		}
		logger.Info().Str(loggers.FieldFile, path).Msgf("loaded %d rows", inserted)
	}

	if *skipEvents {
		return
	}

	path := filepath.Join(*dataDir, "requests.csv")
	buckets, err := loader.LoadEvents(ctx, path)
	if err != nil {
		logger.Error().Err(err).Str(loggers.FieldFile, path).Msg("event load failed")
		os.Exit(1)
	}
	logger.Info().Str(loggers.FieldFile, path).Msgf("updated %d hourly buckets", buckets)
}
