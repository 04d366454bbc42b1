package contacts

import "context"

// System defines the public contract for contact directory operations.
type System interface {
	Handler() *Handler

	// GetAll returns every contact, falling back to the fixed core-agency
	// set when the directory is empty.
	GetAll(ctx context.Context) ([]Contact, error)

	// Get returns the contact for an organization, checking seeded rows
	// first and the fixed fallback set second.
	Get(ctx context.Context, organization string) (*Contact, error)

	Upsert(ctx context.Context, cmd UpsertCommand) (*Contact, error)
}
