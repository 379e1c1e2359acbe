package match

import "context"

// Repository loads match records. An empty season returns every season.
type Repository interface {
	List(ctx context.Context, season string) ([]Match, error)
}
