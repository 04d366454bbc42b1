package history

import (
	"context"

	"github.com/google/uuid"

	"github.com/iamdbstjd/DC-TermProject3/pkg/pagination"
)

// System defines the public contract for history domain operations.
type System interface {
	Handler() *Handler

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Entry], error)

	Find(ctx context.Context, id uuid.UUID) (*Record, error)

	// Append stores a completed analysis and evicts the oldest entries
	// beyond the configured capacity.
	Append(ctx context.Context, cmd AppendCommand) error

	Delete(ctx context.Context, id uuid.UUID) error
	Clear(ctx context.Context) error
}
