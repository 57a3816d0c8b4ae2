package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	// FindByName returns the player with the given name, or false when
	// no such player exists.
	FindByName(ctx context.Context, name string) (Player, bool, error)
	Create(ctx context.Context, name string) error
}
