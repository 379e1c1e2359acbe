package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/futsal-stats/internal/app"
	"github.com/riskibarqy/futsal-stats/internal/config"
	"github.com/riskibarqy/futsal-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
	"github.com/riskibarqy/futsal-stats/internal/usecase"
)

func main() {
	out := flag.String("out", "", "write reports to this file instead of stdout")
	season := flag.String("season", "", "restrict reports to one season (yyyy)")
	month := flag.String("month", "", "restrict reports to one month name")
	pretty := flag.Bool("pretty", false, "indent the JSON output")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	// Logs go to stderr so stdout stays valid JSON.
	logger := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: os.Stderr,
		Fields: []any{"component", "report"},
	})
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger, usecase.Query{Season: *season, Month: *month}, *out, *pretty); err != nil {
		logger.Error("build player reports", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *logging.Logger, q usecase.Query, outPath string, pretty bool) error {
	sources, err := app.NewSources(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() { _ = sources.Close() }()

	reports, err := app.NewServices(cfg, sources, logger).Reports.BuildPlayerReports(ctx, q)
	if err != nil {
		return err
	}

	var w io.Writer = os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	if err := httpapi.EncodePlayerReports(w, reports, pretty); err != nil {
		return err
	}
	logger.Info("player reports written", "players", len(reports), "out", outPath)
	return nil
}
