package httpapi

import (
	"github.com/riskibarqy/futsal-stats/internal/domain/aggregate"
	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
	"github.com/riskibarqy/futsal-stats/internal/domain/goaltype"
	"github.com/riskibarqy/futsal-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/futsal-stats/internal/domain/playerinsight"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
	"github.com/riskibarqy/futsal-stats/internal/domain/teammate"
	"github.com/riskibarqy/futsal-stats/internal/usecase"
)

type overviewDTO struct {
	Matches int `json:"matches"`
	Players int `json:"players"`
	Venues  int `json:"venues"`
	Goals   int `json:"goals"`
}

type standingDTO struct {
	Rank            int     `json:"rank"`
	Player          string  `json:"player"`
	Matches         int     `json:"matches"`
	Wins            int     `json:"wins"`
	Draws           int     `json:"draws"`
	Losses          int     `json:"losses"`
	Points          int     `json:"points"`
	Efficiency      float64 `json:"efficiency"`
	EfficiencyLabel string  `json:"efficiencyLabel"`
}

type leaderboardEntryDTO struct {
	Rank    int     `json:"rank"`
	Player  string  `json:"player"`
	Matches int     `json:"matches"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
}

type venueStatDTO struct {
	Venue        string  `json:"venue"`
	Abbreviation string  `json:"abbreviation"`
	Matches      int     `json:"matches"`
	Goals        int     `json:"goals"`
	Average      float64 `json:"average"`
}

type monthStatDTO struct {
	Year         string  `json:"year"`
	Month        int     `json:"month"`
	MonthName    string  `json:"monthName"`
	Abbreviation string  `json:"abbreviation"`
	Matches      int     `json:"matches"`
	Goals        int     `json:"goals"`
	Average      float64 `json:"average"`
}

type classifiedGoalDTO struct {
	Date      string `json:"date"`
	Venue     string `json:"venue,omitempty"`
	Scorer    string `json:"scorer,omitempty"`
	Assist    string `json:"assist,omitempty"`
	Minute    *int   `json:"minute,omitempty"`
	Score     string `json:"score,omitempty"`
	Diff      int    `json:"diff"`
	Leader    string `json:"leader,omitempty"`
	Type      string `json:"type"`
	TypeLabel string `json:"typeLabel"`
	Segment   string `json:"segment,omitempty"`
}

type typeCountDTO struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type segmentCountDTO struct {
	Segment string `json:"segment"`
	Label   string `json:"label"`
	Count   int    `json:"count"`
}

type shareDTO struct {
	Participations int `json:"participations"`
	Goals          int `json:"goals"`
	Assists        int `json:"assists"`
}

type segmentShareDTO struct {
	Segment string `json:"segment"`
	Label   string `json:"label"`
	shareDTO
}

type typeShareDTO struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	shareDTO
}

type partnerCountDTO struct {
	Player string `json:"player"`
	Count  int    `json:"count"`
}

type playerCardDTO struct {
	Player         string  `json:"player"`
	Rank           int     `json:"rank"`
	Matches        int     `json:"matches"`
	Points         int     `json:"points"`
	Wins           int     `json:"wins"`
	Draws          int     `json:"draws"`
	Losses         int     `json:"losses"`
	Efficiency     float64 `json:"efficiency"`
	Goals          int     `json:"goals"`
	Assists        int     `json:"assists"`
	Participations int     `json:"participations"`
}

type playerProfileDTO struct {
	Card           playerCardDTO     `json:"card"`
	Segments       []segmentShareDTO `json:"segments"`
	GoalTypes      []typeShareDTO    `json:"goalTypes"`
	AssistedBy     []partnerCountDTO `json:"assistedBy"`
	Unassisted     int               `json:"unassisted"`
	AssistsGivenTo []partnerCountDTO `json:"assistsGivenTo"`
}

type frequencyDTO struct {
	Teammate string `json:"teammate"`
	Count    int    `json:"count"`
}

type partnershipDTO struct {
	Teammate        string  `json:"teammate"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	Draws           int     `json:"draws"`
	Matches         int     `json:"matches"`
	Points          int     `json:"points"`
	Efficiency      float64 `json:"efficiency"`
	EfficiencyLabel string  `json:"efficiencyLabel"`
}

type teammateReportDTO struct {
	Player      string           `json:"player"`
	Frequencies []frequencyDTO   `json:"frequencies"`
	Breakdown   []partnershipDTO `json:"breakdown"`
}

type playerReportDTO struct {
	Player    string            `json:"player"`
	Profile   playerProfileDTO  `json:"profile"`
	Teammates teammateReportDTO `json:"teammates"`
}

func overviewToDTO(v dataset.Overview) overviewDTO {
	return overviewDTO{Matches: v.Matches, Players: v.Players, Venues: v.Venues, Goals: v.Goals}
}

func standingsToDTO(items []standing.Standing) []standingDTO {
	out := make([]standingDTO, 0, len(items))
	for _, s := range items {
		out = append(out, standingDTO{
			Rank:            s.Rank,
			Player:          s.Player,
			Matches:         s.Matches,
			Wins:            s.Wins,
			Draws:           s.Draws,
			Losses:          s.Losses,
			Points:          s.Points,
			Efficiency:      s.Efficiency,
			EfficiencyLabel: s.EfficiencyLabel(),
		})
	}
	return out
}

func leaderboardToDTO(items []leaderboard.Entry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(items))
	for _, e := range items {
		out = append(out, leaderboardEntryDTO{
			Rank:    e.Rank,
			Player:  e.Player,
			Matches: e.Matches,
			Count:   e.Count,
			Average: e.Average,
		})
	}
	return out
}

func venueStatsToDTO(items []aggregate.VenueStat) []venueStatDTO {
	out := make([]venueStatDTO, 0, len(items))
	for _, v := range items {
		out = append(out, venueStatDTO{
			Venue:        v.Venue,
			Abbreviation: v.Abbreviation,
			Matches:      v.Matches,
			Goals:        v.Goals,
			Average:      v.Average,
		})
	}
	return out
}

func monthStatsToDTO(items []aggregate.MonthStat) []monthStatDTO {
	out := make([]monthStatDTO, 0, len(items))
	for _, m := range items {
		out = append(out, monthStatDTO{
			Year:         m.Year,
			Month:        int(m.Month),
			MonthName:    m.MonthName,
			Abbreviation: m.Abbreviation,
			Matches:      m.Matches,
			Goals:        m.Goals,
			Average:      m.Average,
		})
	}
	return out
}

func classifiedToDTO(items []goaltype.Classified) []classifiedGoalDTO {
	out := make([]classifiedGoalDTO, 0, len(items))
	for _, c := range items {
		out = append(out, classifiedGoalDTO{
			Date:      c.Event.Date.String(),
			Venue:     c.Event.Venue,
			Scorer:    c.Event.Scorer,
			Assist:    c.Event.Assist,
			Minute:    c.Event.Minute,
			Score:     c.Event.RawScore,
			Diff:      c.Diff,
			Leader:    string(c.Leader),
			Type:      string(c.Type),
			TypeLabel: c.Type.Label(),
			Segment:   string(c.Segment),
		})
	}
	return out
}

func typeCountsToDTO(items []goaltype.TypeCount) []typeCountDTO {
	out := make([]typeCountDTO, 0, len(items))
	for _, c := range items {
		out = append(out, typeCountDTO{Type: string(c.Type), Label: c.Type.Label(), Count: c.Count})
	}
	return out
}

func segmentCountsToDTO(items []goaltype.SegmentCount) []segmentCountDTO {
	out := make([]segmentCountDTO, 0, len(items))
	for _, c := range items {
		out = append(out, segmentCountDTO{Segment: string(c.Segment), Label: c.Segment.Label(), Count: c.Count})
	}
	return out
}

func shareToDTO(s playerinsight.Share) shareDTO {
	return shareDTO{Participations: s.Participations, Goals: s.Goals, Assists: s.Assists}
}

func partnerCountsToDTO(items []playerinsight.PartnerCount) []partnerCountDTO {
	out := make([]partnerCountDTO, 0, len(items))
	for _, p := range items {
		out = append(out, partnerCountDTO{Player: p.Player, Count: p.Count})
	}
	return out
}

func profileToDTO(p usecase.PlayerProfile) playerProfileDTO {
	segments := make([]segmentShareDTO, 0, len(p.Segments))
	for _, s := range p.Segments {
		segments = append(segments, segmentShareDTO{Segment: string(s.Segment), Label: s.Segment.Label(), shareDTO: shareToDTO(s.Share)})
	}
	types := make([]typeShareDTO, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, typeShareDTO{Type: string(t.Type), Label: t.Type.Label(), shareDTO: shareToDTO(t.Share)})
	}

	c := p.Card
	return playerProfileDTO{
		Card: playerCardDTO{
			Player:         c.Player,
			Rank:           c.Rank,
			Matches:        c.Matches,
			Points:         c.Points,
			Wins:           c.Wins,
			Draws:          c.Draws,
			Losses:         c.Losses,
			Efficiency:     c.Efficiency,
			Goals:          c.Goals,
			Assists:        c.Assists,
			Participations: c.Participations,
		},
		Segments:       segments,
		GoalTypes:      types,
		AssistedBy:     partnerCountsToDTO(p.Partners.Received),
		Unassisted:     p.Partners.Unassisted,
		AssistsGivenTo: partnerCountsToDTO(p.Partners.Given),
	}
}

func teammatesToDTO(r teammate.Report) teammateReportDTO {
	freq := make([]frequencyDTO, 0, len(r.Frequencies))
	for _, f := range r.Frequencies {
		freq = append(freq, frequencyDTO{Teammate: f.Teammate, Count: f.Count})
	}
	breakdown := make([]partnershipDTO, 0, len(r.Breakdown))
	for _, p := range r.Breakdown {
		breakdown = append(breakdown, partnershipDTO{
			Teammate:        p.Teammate,
			Wins:            p.Wins,
			Losses:          p.Losses,
			Draws:           p.Draws,
			Matches:         p.Matches,
			Points:          p.Points,
			Efficiency:      p.Efficiency,
			EfficiencyLabel: p.EfficiencyLabel(),
		})
	}
	return teammateReportDTO{Player: r.Player, Frequencies: freq, Breakdown: breakdown}
}

func reportsToDTO(items []usecase.PlayerReport) []playerReportDTO {
	out := make([]playerReportDTO, 0, len(items))
	for _, r := range items {
		out = append(out, playerReportDTO{
			Player:    r.Player,
			Profile:   profileToDTO(r.Profile),
			Teammates: teammatesToDTO(r.Teammates),
		})
	}
	return out
}
