package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
)

type GoalRepository struct {
	mu    sync.RWMutex
	goals []goal.Event
}

func NewGoalRepository(goals []goal.Event) *GoalRepository {
	return &GoalRepository{goals: append([]goal.Event(nil), goals...)}
}

func (r *GoalRepository) List(_ context.Context, season string) ([]goal.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]goal.Event, 0, len(r.goals))
	for _, e := range r.goals {
		if season != "" && e.Date.Year != season {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *GoalRepository) Replace(goals []goal.Event) {
	items := append([]goal.Event(nil), goals...)

	r.mu.Lock()
	r.goals = items
	r.mu.Unlock()
}
