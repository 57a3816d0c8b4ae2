package location

import "context"

// Repository describes location persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Location, error)
	Create(ctx context.Context, name string) error
}
