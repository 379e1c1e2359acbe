package playerinsight

import (
	"sort"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/goaltype"
)

// Share splits a player's direct participations into goals and assists.
type Share struct {
	Participations int
	Goals          int
	Assists        int
}

func (s *Share) add(player string, e goal.Event) {
	if e.Scorer == player {
		s.Goals++
		s.Participations++
	}
	if e.Assist == player {
		s.Assists++
		s.Participations++
	}
}

type SegmentShare struct {
	Segment goal.Segment
	Share
}

type TypeShare struct {
	Type goaltype.Type
	Share
}

// SegmentParticipation lists all three segments, zero filled.
func SegmentParticipation(player string, rows []goaltype.Classified) []SegmentShare {
	shares := make(map[goal.Segment]*Share)
	for _, s := range goal.Segments() {
		shares[s] = &Share{}
	}

	for _, row := range rows {
		if !row.HasSegment() || !row.Event.Involves(player) {
			continue
		}
		shares[row.Segment].add(player, row.Event)
	}

	out := make([]SegmentShare, 0, len(shares))
	for _, s := range goal.Segments() {
		out = append(out, SegmentShare{Segment: s, Share: *shares[s]})
	}
	return out
}

// TypeParticipation lists the goal types the player took part in, most frequent first.
func TypeParticipation(player string, rows []goaltype.Classified) []TypeShare {
	shares := make(map[goaltype.Type]*Share)
	for _, row := range rows {
		if row.Type == goaltype.TypeUnclassified || !row.Event.Involves(player) {
			continue
		}
		s, ok := shares[row.Type]
		if !ok {
			s = &Share{}
			shares[row.Type] = s
		}
		s.add(player, row.Event)
	}

	out := make([]TypeShare, 0, len(shares))
	for _, t := range goaltype.Types() {
		if s, ok := shares[t]; ok {
			out = append(out, TypeShare{Type: t, Share: *s})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Participations > out[j].Participations
	})
	return out
}
