package match

import (
	"context"
	"time"

	"github.com/dkachur/poker-nights/internal/domain/deal"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Match, error)
	// ListAtDate returns matches whose start timestamp falls within
	// [date, date+24h).
	ListAtDate(ctx context.Context, date time.Time) ([]Match, error)
	// CreateWithDetails persists a match together with its participant and
	// deal rows in a single transaction, in referential order.
	CreateWithDetails(ctx context.Context, m Match, playerMatches []PlayerMatch, deals []deal.Deal) error
}
