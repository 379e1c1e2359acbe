package goal

import (
	"strconv"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var ErrMalformedScore = crerr.New("malformed score")

// Score is the running score after a goal, team A first.
type Score struct {
	A int
	B int
}

func (s Score) Diff() int {
	return s.A - s.B
}

// ParseScore reads "A-B" or "AxB".
func ParseScore(raw string) (Score, error) {
	value := strings.ToLower(strings.TrimSpace(raw))
	value = strings.ReplaceAll(value, "x", "-")

	parts := strings.Split(value, "-")
	if len(parts) != 2 {
		return Score{}, crerr.Wrapf(ErrMalformedScore, "parse score %q, expected A-B", raw)
	}

	a, errA := strconv.Atoi(strings.TrimSpace(parts[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(parts[1]))
	if errA != nil || errB != nil || a < 0 || b < 0 {
		return Score{}, crerr.Wrapf(ErrMalformedScore, "parse score %q, expected A-B", raw)
	}

	return Score{A: a, B: b}, nil
}

// IsAbsentScore reports an empty score cell, which is not an error.
func IsAbsentScore(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "nan", "none", "null":
		return true
	default:
		return false
	}
}
