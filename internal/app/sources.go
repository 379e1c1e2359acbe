package app

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/futsal-stats/internal/config"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/repository/file"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/repository/resilient"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/sheet"
	basecache "github.com/riskibarqy/futsal-stats/internal/platform/cache"
	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
	"github.com/riskibarqy/futsal-stats/internal/platform/resilience"
)

// Sources holds the repositories every service reads from and the
// resources behind them.
type Sources struct {
	Matches match.Repository
	Goals   goal.Repository
	DB      *sqlx.DB
	Cache   *basecache.Store
	Breaker *resilience.CircuitBreaker
}

func (s *Sources) Close() error {
	if s == nil || s.DB == nil {
		return nil
	}
	return s.DB.Close()
}

// NewSources opens the configured data source and stacks the breaker and the
// cache on top of it. The cache sits outermost so hits never touch the breaker.
func NewSources(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Sources, error) {
	if logger == nil {
		logger = logging.Default()
	}

	out := &Sources{}
	switch cfg.DataSource {
	case config.DataSourceFile:
		opts := sheet.DecodeOptions{StrictRosters: cfg.DatasetStrictRosters, Logger: logger}
		out.Matches = file.NewMatchRepository(cfg.DatasetMatchesPath, opts)
		out.Goals = file.NewGoalRepository(cfg.DatasetGoalsPath, opts)
	case config.DataSourcePostgres:
		db, err := OpenDB(ctx, cfg)
		if err != nil {
			return nil, err
		}
		out.DB = db
		out.Matches = postgres.NewMatchRepository(db)
		out.Goals = postgres.NewGoalRepository(db)
	default:
		out.Matches = memory.NewMatchRepository(memory.SeedMatches())
		out.Goals = memory.NewGoalRepository(memory.SeedGoals())
	}

	if cfg.SourceCircuit.Enabled {
		out.Breaker = resilience.NewNamedCircuitBreaker(cfg.DataSource, cfg.SourceCircuit, func(name string, from, to resilience.CircuitState) {
			logger.Warn("data source circuit changed", "source", name, "from", string(from), "to", string(to))
		})
		out.Matches = resilient.NewMatchRepository(out.Matches, out.Breaker)
		out.Goals = resilient.NewGoalRepository(out.Goals, out.Breaker)
	}

	if cfg.CacheEnabled {
		out.Cache = basecache.NewStore(cfg.CacheTTL)
		out.Matches = cache.NewMatchRepository(out.Matches, out.Cache)
		out.Goals = cache.NewGoalRepository(out.Goals, out.Cache)
	}

	logger.Info("data source ready",
		"source", cfg.DataSource,
		"circuit_enabled", cfg.SourceCircuit.Enabled,
		"cache_enabled", cfg.CacheEnabled,
		"cache_ttl", cfg.CacheTTL.String(),
	)
	return out, nil
}
