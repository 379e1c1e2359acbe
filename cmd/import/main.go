package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/futsal-stats/internal/app"
	"github.com/riskibarqy/futsal-stats/internal/config"
	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/repository/file"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/sheet"
	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	matchesPath := flag.String("matches", cfg.DatasetMatchesPath, "results sheet (.xlsx or .csv)")
	goalsPath := flag.String("goals", cfg.DatasetGoalsPath, "goal log sheet (.xlsx or .csv)")
	season := flag.String("season", "", "import only this season (yyyy)")
	dryRun := flag.Bool("dry-run", false, "decode and validate without writing")
	flag.Parse()

	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Fields: []any{"component", "import"},
	})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := sheet.DecodeOptions{StrictRosters: cfg.DatasetStrictRosters, Logger: logger}
	tables, err := loadTables(ctx, *matchesPath, *goalsPath, *season, opts)
	if err != nil {
		logger.Error("load sheets", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}

	overview := dataset.Summarize(tables)
	logger.Info("sheets decoded",
		"matches", overview.Matches,
		"goals", overview.Goals,
		"players", overview.Players,
		"seasons", dataset.Seasons(tables),
	)
	if *dryRun {
		return
	}

	db, err := app.OpenDB(ctx, cfg)
	if err != nil {
		logger.Error("open database", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	defer db.Close()

	if err := postgres.NewImporter(db).ReplaceSeasons(ctx, tables); err != nil {
		logger.Error("import seasons", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
	logger.Info("seasons imported", "seasons", dataset.Seasons(tables))
}

func loadTables(ctx context.Context, matchesPath, goalsPath, season string, opts sheet.DecodeOptions) (dataset.Tables, error) {
	if matchesPath == "" || goalsPath == "" {
		return dataset.Tables{}, fmt.Errorf("both -matches and -goals are required")
	}

	matches, err := file.NewMatchRepository(matchesPath, opts).List(ctx, season)
	if err != nil {
		return dataset.Tables{}, err
	}
	goals, err := file.NewGoalRepository(goalsPath, opts).List(ctx, season)
	if err != nil {
		return dataset.Tables{}, err
	}
	return dataset.New(matches, goals), nil
}
