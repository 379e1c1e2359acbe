package goal

import "context"

// Repository loads the goal log. An empty season returns every season.
type Repository interface {
	List(ctx context.Context, season string) ([]Event, error)
}
