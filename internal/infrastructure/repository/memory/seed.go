package memory

import (
	"strconv"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
)

const (
	VenueGeraldoSantana = "Clube Geraldo Santana"
	VenueBomConselho    = "Colégio Bom Conselho"
	VenuePUCRS          = "Quadra Sintética PUCRS"
)

// seedMatchRows mirror the columns of the results sheet.
var seedMatchRows = [][6]string{
	{"04/03/2023", VenueGeraldoSantana, "Bruno, Caio, Diego, Edu, Felipe", "Gabriel, Heitor, Igor, João, Lucas", "nan", "nan"},
	{"11/03/2023", VenueGeraldoSantana, "nan", "nan", "Bruno, Gabriel, Igor, Lucas, Edu", "Caio, Diego, Heitor, João, Felipe"},
	{"18/03/2023", VenueBomConselho, "Gabriel, Heitor, Caio, Felipe, Lucas", "Bruno, Igor, Diego, João, Edu", "nan", "nan"},
	{"01/04/2023", VenueBomConselho, "Igor, João, Bruno, Caio, Heitor", "Diego, Edu, Felipe, Gabriel, Lucas", "nan", "nan"},
	{"15/04/2023", VenuePUCRS, "Diego, Lucas, Gabriel, Edu, João", "Bruno, Caio, Felipe, Heitor, Igor", "nan", "nan"},
	{"06/05/2023", VenueGeraldoSantana, "nan", "nan", "Bruno, Heitor, Edu, Lucas, Caio", "Diego, Felipe, Gabriel, Igor, João"},
}

// seedGoalRows mirror the columns of the goal log.
var seedGoalRows = [][5]string{
	{"04/03/2023", "Bruno", "Caio", "4", "1-0"},
	{"04/03/2023", "Igor", "-", "15", "1-1"},
	{"04/03/2023", "Diego", "Bruno", "22", "2-1"},
	{"04/03/2023", "Edu", "Felipe", "31", "3-1"},
	{"04/03/2023", "Caio", "-", "44", "4-1"},
	{"11/03/2023", "Heitor", "João", "7", "0-1"},
	{"11/03/2023", "Lucas", "Bruno", "19", "1-1"},
	{"11/03/2023", "Gabriel", "Edu", "26", "2-1"},
	{"11/03/2023", "Diego", "-", "47", "2-2"},
	{"18/03/2023", "Gabriel", "Heitor", "3", "1-0"},
	{"18/03/2023", "Bruno", "-", "12", "1-1"},
	{"18/03/2023", "Felipe", "Caio", "29", "2-1"},
	{"18/03/2023", "Lucas", "Gabriel", "38", "3-1"},
	{"18/03/2023", "João", "Diego", "41", "3-2"},
	{"01/04/2023", "Igor", "Bruno", "9", "1-0"},
	{"01/04/2023", "Caio", "Igor", "25", "2-0"},
	{"01/04/2023", "Edu", "-", "33", "2-1"},
	{"01/04/2023", "Heitor", "João", "45", "3-1"},
	{"15/04/2023", "Felipe", "-", "6", "0-1"},
	{"15/04/2023", "Lucas", "Diego", "17", "1-1"},
	{"15/04/2023", "Gabriel", "Lucas", "28", "2-1"},
	{"15/04/2023", "João", "Edu", "36", "3-1"},
	{"15/04/2023", "Igor", "-", "48", "3-2"},
	{"06/05/2023", "Bruno", "Heitor", "11", "1-0"},
	{"06/05/2023", "Gabriel", "-", "21", "1-1"},
	{"06/05/2023", "Edu", "Caio", "39", "2-1"},
	{"06/05/2023", "Igor", "João", "46", "2-2"},
}

// SeedMatches is a demo season used when no data source is configured.
func SeedMatches() []match.Match {
	out := make([]match.Match, 0, len(seedMatchRows))
	for _, row := range seedMatchRows {
		date, err := calendar.Parse(row[0])
		if err != nil {
			panic(err)
		}
		out = append(out, match.Match{
			Date:    date,
			Venue:   row[1],
			Winners: match.SplitRoster(row[2]),
			Losers:  match.SplitRoster(row[3]),
			DrawA:   match.SplitRoster(row[4]),
			DrawB:   match.SplitRoster(row[5]),
		})
	}
	return out
}

func SeedGoals() []goal.Event {
	out := make([]goal.Event, 0, len(seedGoalRows))
	for _, row := range seedGoalRows {
		date, err := calendar.Parse(row[0])
		if err != nil {
			panic(err)
		}
		e := goal.Event{
			Date:     date,
			Scorer:   goal.NormalizeName(row[1]),
			Assist:   goal.NormalizeName(row[2]),
			RawScore: row[4],
		}
		if minute, err := strconv.Atoi(row[3]); err == nil {
			e.Minute = &minute
		}
		if score, err := goal.ParseScore(row[4]); err == nil {
			e.Score = &score
		}
		out = append(out, e)
	}
	return out
}
