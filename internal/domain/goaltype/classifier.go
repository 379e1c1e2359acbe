package goaltype

import (
	"sort"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
)

// matchState is the running score of one match day. The leader is sticky:
// it survives an equalizer until the other side goes ahead.
type matchState struct {
	started  bool
	prevDiff int
	leader   Side
}

// Classify labels every goal that has a score, in input order. Goals of the
// same day are assumed to be in the order they were scored.
func Classify(goals []goal.Event) []Classified {
	states := make(map[string]*matchState)
	out := make([]Classified, 0, len(goals))

	for _, e := range goals {
		if e.Score == nil {
			continue
		}

		key := e.Date.Key()
		st, ok := states[key]
		if !ok {
			st = &matchState{}
			states[key] = st
		}

		diff := e.Score.Diff()
		row := Classified{
			Event:   e,
			Diff:    diff,
			AbsDiff: abs(diff),
			Leader:  leaderAfter(diff, st.leader),
			Type:    label(st, diff),
		}
		if e.Minute != nil {
			row.Segment = goal.SegmentOf(*e.Minute)
		}
		out = append(out, row)

		st.started = true
		st.prevDiff = diff
		st.leader = row.Leader
	}

	return out
}

// label applies the rules in order; a later match overrides an earlier one.
func label(st *matchState, diff int) Type {
	first := !st.started
	cur, prev := abs(diff), abs(st.prevDiff)

	out := TypeUnclassified
	if first {
		out = TypeTieBreaking
	}
	if diff == 0 {
		out = TypeEqualizing
	}
	if cur > 1 && cur > prev {
		out = TypeExtendingLead
	}
	if cur > 0 && cur < prev {
		out = TypeReducingLead
	}
	if cur == 1 && st.prevDiff == 0 && !first {
		next := leaderAfter(diff, st.leader)
		if st.leader == SideNone || next == st.leader {
			out = TypeTieBreaking
		} else {
			out = TypeComeback
		}
	}
	if first {
		out = TypeTieBreaking
	}
	return out
}

func leaderAfter(diff int, prev Side) Side {
	switch {
	case diff > 0:
		return SideA
	case diff < 0:
		return SideB
	default:
		return prev
	}
}

// Count tallies classified goals by type, most frequent first.
func Count(rows []Classified) []TypeCount {
	counts := make(map[Type]int)
	for _, row := range rows {
		if row.Type != TypeUnclassified {
			counts[row.Type]++
		}
	}

	out := make([]TypeCount, 0, len(counts))
	for _, t := range Types() {
		if n := counts[t]; n > 0 {
			out = append(out, TypeCount{Type: t, Count: n})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}

// SegmentCounts tallies goals by game segment, always listing all three.
func SegmentCounts(rows []Classified) []SegmentCount {
	counts := make(map[goal.Segment]int)
	for _, row := range rows {
		if row.HasSegment() {
			counts[row.Segment]++
		}
	}

	out := make([]SegmentCount, 0, 3)
	for _, s := range goal.Segments() {
		out = append(out, SegmentCount{Segment: s, Count: counts[s]})
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
