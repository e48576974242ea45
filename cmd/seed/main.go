package main

import (
	"context"
	"flag"
	"io"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/tally/internal/config"
	"github.com/MrJamesThe3rd/tally/internal/database"
	"github.com/MrJamesThe3rd/tally/internal/seed"
	seedStore "github.com/MrJamesThe3rd/tally/internal/seed/store"
)

func main() {
	_ = godotenv.Load()

	var (
		profilesPath  = flag.String("profiles", "seed/profiles.csv", "profiles CSV")
		contractsPath = flag.String("contracts", "seed/contracts.csv", "contracts CSV")
		jobsPath      = flag.String("jobs", "seed/jobs.csv", "jobs CSV")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	fx := seed.Fixture{
		Profiles:  parseFile(*profilesPath, seed.ParseProfiles),
		Contracts: parseFile(*contractsPath, seed.ParseContracts),
		Jobs:      parseFile(*jobsPath, seed.ParseJobs),
	}

	svc := seed.NewService(seedStore.New(db))

	if err := svc.Load(context.Background(), fx); err != nil {
		slog.Error("failed to load fixture", "error", err)
		os.Exit(1)
	}

	slog.Info("fixture loaded",
		"profiles", len(fx.Profiles),
		"contracts", len(fx.Contracts),
		"jobs", len(fx.Jobs),
	)
}

func parseFile[T any](path string, parse func(r io.Reader) ([]T, error)) []T {
	f, err := os.Open(path)
	if err != nil {
		slog.Error("failed to open file", "path", path, "error", err)
		os.Exit(1)
	}
	defer f.Close()

	items, err := parse(f)
	if err != nil {
		slog.Error("failed to parse file", "path", path, "error", err)
		os.Exit(1)
	}

	return items
}
