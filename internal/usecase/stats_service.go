package usecase

import (
	"context"

	"github.com/riskibarqy/futsal-stats/internal/domain/aggregate"
	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/goaltype"
	"github.com/riskibarqy/futsal-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
)

// StatsService computes the league-wide tables for a filter.
type StatsService struct {
	source        tableSource
	abbreviations map[string]string
}

func NewStatsService(matchRepo match.Repository, goalRepo goal.Repository, abbreviations map[string]string) *StatsService {
	if abbreviations == nil {
		abbreviations = aggregate.DefaultVenueAbbreviations()
	}
	return &StatsService{
		source:        tableSource{matchRepo: matchRepo, goalRepo: goalRepo},
		abbreviations: abbreviations,
	}
}

func (s *StatsService) Overview(ctx context.Context, q Query) (dataset.Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Overview")
	defer span.End()

	_, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return dataset.Overview{}, err
	}
	return dataset.Summarize(tables), nil
}

func (s *StatsService) Seasons(ctx context.Context) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Seasons")
	defer span.End()

	tables, err := s.source.load(ctx, "")
	if err != nil {
		return nil, err
	}
	return dataset.Seasons(tables), nil
}

// Venues lists the venues of the query's season, ignoring other filters.
func (s *StatsService) Venues(ctx context.Context, q Query) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Venues")
	defer span.End()

	season, _, err := s.source.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	return dataset.VenueNames(season), nil
}

func (s *StatsService) Players(ctx context.Context, q Query) ([]string, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Players")
	defer span.End()

	_, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	return dataset.Players(tables), nil
}

func (s *StatsService) Standings(ctx context.Context, q Query) ([]standing.Standing, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Standings")
	defer span.End()

	_, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	return standing.Build(tables.Matches), nil
}

func (s *StatsService) Leaderboard(ctx context.Context, q Query, kind leaderboard.Kind) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.Leaderboard")
	defer span.End()

	_, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	return leaderboard.For(kind, tables.Goals, standing.Build(tables.Matches)), nil
}

func (s *StatsService) GoalLeaderboard(ctx context.Context, q Query) ([]leaderboard.Entry, error) {
	return s.Leaderboard(ctx, q, leaderboard.KindGoals)
}

func (s *StatsService) AssistLeaderboard(ctx context.Context, q Query) ([]leaderboard.Entry, error) {
	return s.Leaderboard(ctx, q, leaderboard.KindAssists)
}

func (s *StatsService) VenueTable(ctx context.Context, q Query) ([]aggregate.VenueStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.VenueTable")
	defer span.End()

	_, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	return aggregate.ByVenue(tables.Matches, tables.Goals, s.abbreviations), nil
}

func (s *StatsService) MonthTable(ctx context.Context, q Query) ([]aggregate.MonthStat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MonthTable")
	defer span.End()

	_, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	return aggregate.ByMonth(tables.Matches, tables.Goals), nil
}

func (s *StatsService) ClassifiedGoals(ctx context.Context, q Query) ([]goaltype.Classified, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ClassifiedGoals")
	defer span.End()

	_, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return nil, err
	}
	return goaltype.Classify(tables.Goals), nil
}

func (s *StatsService) GoalTypeCounts(ctx context.Context, q Query) ([]goaltype.TypeCount, error) {
	rows, err := s.ClassifiedGoals(ctx, q)
	if err != nil {
		return nil, err
	}
	return goaltype.Count(rows), nil
}

func (s *StatsService) SegmentCounts(ctx context.Context, q Query) ([]goaltype.SegmentCount, error) {
	rows, err := s.ClassifiedGoals(ctx, q)
	if err != nil {
		return nil, err
	}
	return goaltype.SegmentCounts(rows), nil
}
