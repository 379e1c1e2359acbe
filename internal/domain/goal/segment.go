package goal

// Segment is the part of the game a goal happened in.
type Segment string

const (
	SegmentStart  Segment = "start"
	SegmentMiddle Segment = "middle"
	SegmentEnd    Segment = "end"
)

const (
	middleFromMinute = 20
	endFromMinute    = 40
)

func Segments() []Segment {
	return []Segment{SegmentStart, SegmentMiddle, SegmentEnd}
}

func SegmentOf(minute int) Segment {
	switch {
	case minute < middleFromMinute:
		return SegmentStart
	case minute < endFromMinute:
		return SegmentMiddle
	default:
		return SegmentEnd
	}
}

func (s Segment) Label() string {
	switch s {
	case SegmentStart:
		return "Início"
	case SegmentMiddle:
		return "Meio"
	case SegmentEnd:
		return "Fim"
	default:
		return string(s)
	}
}
