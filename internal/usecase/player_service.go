package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/goaltype"
	"github.com/riskibarqy/futsal-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/domain/playerinsight"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
	"github.com/riskibarqy/futsal-stats/internal/domain/teammate"
)

// PlayerProfile is everything the player page shows besides teammates.
type PlayerProfile struct {
	Card     playerinsight.Card
	Segments []playerinsight.SegmentShare
	Types    []playerinsight.TypeShare
	Partners playerinsight.Partners
}

type PlayerService struct {
	source tableSource
}

func NewPlayerService(matchRepo match.Repository, goalRepo goal.Repository) *PlayerService {
	return &PlayerService{
		source: tableSource{matchRepo: matchRepo, goalRepo: goalRepo},
	}
}

func (s *PlayerService) Profile(ctx context.Context, q Query, player string) (PlayerProfile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Profile")
	defer span.End()

	tables, player, err := s.playerTables(ctx, q, player)
	if err != nil {
		return PlayerProfile{}, err
	}
	return buildProfile(player, newSeasonView(tables)), nil
}

func (s *PlayerService) Teammates(ctx context.Context, q Query, player string) (teammate.Report, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Teammates")
	defer span.End()

	tables, player, err := s.playerTables(ctx, q, player)
	if err != nil {
		return teammate.Report{}, err
	}
	return teammate.ForPlayer(player, tables.Matches), nil
}

// playerTables rejects names that never played in the season. A known player
// with no matches under the other filters gets empty results.
func (s *PlayerService) playerTables(ctx context.Context, q Query, player string) (dataset.Tables, string, error) {
	player = strings.TrimSpace(player)
	if player == "" {
		return dataset.Tables{}, "", fmt.Errorf("%w: player is required", ErrInvalidInput)
	}

	season, tables, err := s.source.filtered(ctx, q)
	if err != nil {
		return dataset.Tables{}, "", err
	}
	if !match.ExtractRoster(season.Matches).Has(player) {
		return dataset.Tables{}, "", fmt.Errorf("%w: player=%s", ErrNotFound, player)
	}

	return tables, player, nil
}

// seasonView holds the league-wide tables a profile reads from.
type seasonView struct {
	tables     dataset.Tables
	standings  []standing.Standing
	goals      []leaderboard.Entry
	assists    []leaderboard.Entry
	classified []goaltype.Classified
}

func newSeasonView(tables dataset.Tables) seasonView {
	standings := standing.Build(tables.Matches)
	return seasonView{
		tables:     tables,
		standings:  standings,
		goals:      leaderboard.Goals(tables.Goals, standings),
		assists:    leaderboard.Assists(tables.Goals, standings),
		classified: goaltype.Classify(tables.Goals),
	}
}

func buildProfile(player string, view seasonView) PlayerProfile {
	return PlayerProfile{
		Card:     playerinsight.BuildCard(player, view.standings, view.goals, view.assists),
		Segments: playerinsight.SegmentParticipation(player, view.classified),
		Types:    playerinsight.TypeParticipation(player, view.classified),
		Partners: playerinsight.AssistPartners(player, view.tables.Goals),
	}
}
