package goaltype

import "github.com/riskibarqy/futsal-stats/internal/domain/goal"

// Type is the role a goal played in the running score.
type Type string

const (
	TypeTieBreaking   Type = "tie_breaking"
	TypeEqualizing    Type = "equalizing"
	TypeExtendingLead Type = "extending_lead"
	TypeReducingLead  Type = "reducing_lead"
	TypeComeback      Type = "comeback"
	TypeUnclassified  Type = "unclassified"
)

// Types lists the classified types in display order.
func Types() []Type {
	return []Type{TypeTieBreaking, TypeEqualizing, TypeExtendingLead, TypeReducingLead, TypeComeback}
}

func (t Type) Label() string {
	switch t {
	case TypeTieBreaking:
		return "Gol Desempate"
	case TypeEqualizing:
		return "Gol de Empate"
	case TypeExtendingLead:
		return "Gol de Vantagem"
	case TypeReducingLead:
		return "Gol de Desconto"
	case TypeComeback:
		return "Gol de Virada"
	default:
		return ""
	}
}

// Side is the team ahead on the scoreboard.
type Side string

const (
	SideNone Side = ""
	SideA    Side = "team_a"
	SideB    Side = "team_b"
)

// Classified is a goal with its running score analysis.
type Classified struct {
	Event   goal.Event
	Diff    int
	AbsDiff int
	Leader  Side
	Type    Type
	Segment goal.Segment
}

func (c Classified) HasSegment() bool {
	return c.Segment != ""
}

type TypeCount struct {
	Type  Type
	Count int
}

type SegmentCount struct {
	Segment goal.Segment
	Count   int
}
