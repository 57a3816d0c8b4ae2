package deal

import "context"

// Repository describes deal persistence needs from use cases.
type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Deal, error)
}
