package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/domain/teammate"
	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
)

const defaultReportWorkers = 4

// PlayerReport bundles the profile and teammate tables of one player.
type PlayerReport struct {
	Player    string
	Profile   PlayerProfile
	Teammates teammate.Report
}

type ReportService struct {
	source  tableSource
	workers int
	logger  *logging.Logger
}

func NewReportService(matchRepo match.Repository, goalRepo goal.Repository, workers int, logger *logging.Logger) *ReportService {
	if workers < 1 {
		workers = defaultReportWorkers
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ReportService{
		source:  tableSource{matchRepo: matchRepo, goalRepo: goalRepo},
		workers: workers,
		logger:  logger,
	}
}

// BuildPlayerReports computes a report for every player in the filtered
// roster. Reports are returned in standings order.
func (s *ReportService) BuildPlayerReports(ctx context.Context, q Query) ([]PlayerReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ReportService.BuildPlayerReports")
	defer span.End()

	_, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return nil, err
	}

	view := newSeasonView(tables)
	out := make([]PlayerReport, len(view.standings))
	if len(out) == 0 {
		return out, nil
	}

	workerCount := s.workers
	if workerCount > len(out) {
		workerCount = len(out)
	}
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	start := time.Now()
	var workers sync.WaitGroup
	for i, row := range view.standings {
		i, player := i, row.Player
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			out[i] = PlayerReport{
				Player:    player,
				Profile:   buildProfile(player, view),
				Teammates: teammate.ForPlayer(player, view.tables.Matches),
			}
		}); err != nil {
			workers.Done()
			workers.Wait()
			return nil, fmt.Errorf("submit player report %s: %w", player, err)
		}
	}
	workers.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "player reports built",
		"players", len(out),
		"workers", workerCount,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}
