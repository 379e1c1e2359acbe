package standing

import "fmt"

const (
	pointsPerWin  = 3
	pointsPerDraw = 1
)

// Standing is one ranked row of the player table.
type Standing struct {
	Rank       int
	Player     string
	Matches    int
	Wins       int
	Draws      int
	Losses     int
	Points     int
	Efficiency float64
}

// EfficiencyLabel renders the efficiency the way the league publishes it.
func (s Standing) EfficiencyLabel() string {
	return fmt.Sprintf("%.2f%%", s.Efficiency)
}

func Points(wins, draws int) int {
	return wins*pointsPerWin + draws*pointsPerDraw
}

// Efficiency is the share of available points won, as a percentage with two decimals.
func Efficiency(points, matches int) float64 {
	if matches <= 0 {
		return 0
	}
	return Round2(float64(points) / float64(matches*pointsPerWin) * 100)
}
