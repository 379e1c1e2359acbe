package playerinsight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/goaltype"
	"github.com/riskibarqy/futsal-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
)

func sampleGoals(t *testing.T) []goal.Event {
	t.Helper()

	d, err := calendar.Parse("04/03/2023")
	require.NoError(t, err)

	mk := func(scorer, assist, score string, minute int) goal.Event {
		s, err := goal.ParseScore(score)
		require.NoError(t, err)
		m := minute
		return goal.Event{Date: d, Scorer: scorer, Assist: assist, RawScore: score, Score: &s, Minute: &m}
	}

	return []goal.Event{
		mk("Ana", "Bia", "1-0", 3),
		mk("Carla", "", "1-1", 12),
		mk("Ana", "", "2-1", 22),
		mk("Bia", "Ana", "3-1", 41),
		mk("Ana", "Bia", "4-1", 45),
	}
}

func TestBuildCard(t *testing.T) {
	t.Parallel()

	standings := []standing.Standing{{Rank: 2, Player: "Ana", Matches: 4, Wins: 2, Draws: 1, Losses: 1, Points: 7, Efficiency: 58.33}}
	goals := []leaderboard.Entry{{Rank: 1, Player: "Ana", Matches: 4, Count: 3}}
	assists := []leaderboard.Entry{{Rank: 3, Player: "Ana", Matches: 4, Count: 1}}

	card := BuildCard("Ana", standings, goals, assists)
	assert.Equal(t, Card{
		Player: "Ana", Rank: 2, Matches: 4, Points: 7, Wins: 2, Draws: 1, Losses: 1,
		Efficiency: 58.33, Goals: 3, Assists: 1, Participations: 4,
	}, card)

	assert.Equal(t, Card{Player: "Zoe"}, BuildCard("Zoe", standings, goals, assists))
}

func TestSegmentParticipation(t *testing.T) {
	t.Parallel()

	rows := goaltype.Classify(sampleGoals(t))
	got := SegmentParticipation("Ana", rows)

	require.Len(t, got, 3)
	assert.Equal(t, SegmentShare{Segment: goal.SegmentStart, Share: Share{Participations: 1, Goals: 1}}, got[0])
	assert.Equal(t, SegmentShare{Segment: goal.SegmentMiddle, Share: Share{Participations: 1, Goals: 1}}, got[1])
	assert.Equal(t, SegmentShare{Segment: goal.SegmentEnd, Share: Share{Participations: 2, Goals: 1, Assists: 1}}, got[2])
}

func TestTypeParticipation(t *testing.T) {
	t.Parallel()

	rows := goaltype.Classify(sampleGoals(t))
	got := TypeParticipation("Ana", rows)

	require.Len(t, got, 2)
	assert.Equal(t, goaltype.TypeTieBreaking, got[0].Type)
	assert.Equal(t, Share{Participations: 2, Goals: 2}, got[0].Share)
	assert.Equal(t, goaltype.TypeExtendingLead, got[1].Type)
	assert.Equal(t, Share{Participations: 2, Goals: 1, Assists: 1}, got[1].Share)
}

func TestAssistPartners(t *testing.T) {
	t.Parallel()

	got := AssistPartners("Ana", sampleGoals(t))
	assert.Equal(t, []PartnerCount{{Player: "Bia", Count: 2}}, got.Received)
	assert.Equal(t, 1, got.Unassisted)
	assert.Equal(t, []PartnerCount{{Player: "Bia", Count: 1}}, got.Given)

	none := AssistPartners("Zoe", sampleGoals(t))
	assert.Empty(t, none.Received)
	assert.Empty(t, none.Given)
	assert.Zero(t, none.Unassisted)
}
