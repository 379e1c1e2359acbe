package playerinsight

import (
	"github.com/riskibarqy/futsal-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
)

// Card is the headline summary shown for one player.
type Card struct {
	Player         string
	Rank           int
	Matches        int
	Points         int
	Wins           int
	Draws          int
	Losses         int
	Efficiency     float64
	Goals          int
	Assists        int
	Participations int
}

// BuildCard reads the player's rows from already computed tables. A player
// missing from a table contributes zeros.
func BuildCard(player string, standings []standing.Standing, goals, assists []leaderboard.Entry) Card {
	card := Card{Player: player}

	if row, ok := standing.Find(standings, player); ok {
		card.Rank = row.Rank
		card.Matches = row.Matches
		card.Points = row.Points
		card.Wins = row.Wins
		card.Draws = row.Draws
		card.Losses = row.Losses
		card.Efficiency = row.Efficiency
	}
	if e, ok := leaderboard.Find(goals, player); ok {
		card.Goals = e.Count
	}
	if e, ok := leaderboard.Find(assists, player); ok {
		card.Assists = e.Count
	}
	card.Participations = card.Goals + card.Assists

	return card
}
