package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/futsal-stats/internal/config"
	"github.com/riskibarqy/futsal-stats/internal/interfaces/httpapi"
	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
	"github.com/riskibarqy/futsal-stats/internal/usecase"
)

// Services are the usecases shared by the API and the report binary.
type Services struct {
	Stats   *usecase.StatsService
	Players *usecase.PlayerService
	Reports *usecase.ReportService
}

func NewServices(cfg config.Config, sources *Sources, logger *logging.Logger) Services {
	return Services{
		Stats:   usecase.NewStatsService(sources.Matches, sources.Goals, cfg.VenueAbbreviations),
		Players: usecase.NewPlayerService(sources.Matches, sources.Goals),
		Reports: usecase.NewReportService(sources.Matches, sources.Goals, cfg.ReportMaxWorkers, logger),
	}
}

// Server is the part of an HTTP server the api binary drives.
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

func NewHTTPServer(cfg config.Config, services Services, logger *logging.Logger) (Server, error) {
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(services.Stats, services.Players, services.Reports, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	if cfg.HTTPEngine == config.HTTPEngineFastHTTP {
		return newFastHTTPServer(cfg, router), nil
	}

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
