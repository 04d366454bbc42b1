package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/iamdbstjd/DC-TermProject3/pkg/query"
	"github.com/iamdbstjd/DC-TermProject3/pkg/repository"
)

type repo struct {
	db     *sql.DB
	logger *slog.Logger
}

// New creates a contact repository implementing the System interface.
func New(db *sql.DB, logger *slog.Logger) System {
	return &repo{
		db:     db,
		logger: logger.With("system", "contacts"),
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger)
}

func (r *repo) GetAll(ctx context.Context) ([]Contact, error) {
	q, args := query.NewBuilder(projection, defaultSort).Build()

	contacts, err := repository.QueryMany(ctx, r.db, q, args, scanContact)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}

	if len(contacts) == 0 {
		return Defaults(), nil
	}

	return contacts, nil
}

func (r *repo) Get(ctx context.Context, organization string) (*Contact, error) {
	q, args := query.
		NewBuilder(projection).
		WhereEquals("Organization", &organization).
		BuildSingleOrNull()

	c, err := repository.QueryOne(ctx, r.db, q, args, scanContact)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			for _, fallback := range Defaults() {
				if fallback.Organization == organization {
					return &fallback, nil
				}
			}
			return nil, ErrNotFound
		}
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	return &c, nil
}

func (r *repo) Upsert(ctx context.Context, cmd UpsertCommand) (*Contact, error) {
	q := `
		INSERT INTO contacts(organization, phone, website, hours)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (organization) DO UPDATE SET
			phone = EXCLUDED.phone,
			website = EXCLUDED.website,
			hours = EXCLUDED.hours
		RETURNING id, organization, phone, website, hours`

	args := []any{cmd.Organization, cmd.Phone, cmd.Website, cmd.Hours}

	c, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (Contact, error) {
		return repository.QueryOne(ctx, tx, q, args, scanContact)
	})

	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("contact upserted", "organization", c.Organization, "phone", c.Phone)
	return &c, nil
}
