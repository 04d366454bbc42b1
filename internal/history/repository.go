package history

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/iamdbstjd/DC-TermProject3/pkg/pagination"
	"github.com/iamdbstjd/DC-TermProject3/pkg/query"
	"github.com/iamdbstjd/DC-TermProject3/pkg/repository"
)

type repo struct {
	db         *sql.DB
	logger     *slog.Logger
	pagination pagination.Config
	maxEntries int
}

// New creates a history repository implementing the System interface.
// maxEntries bounds the log; appends beyond it evict the oldest rows.
func New(
	db *sql.DB,
	logger *slog.Logger,
	pagination pagination.Config,
	maxEntries int,
) System {
	return &repo{
		db:         db,
		logger:     logger.With("system", "history"),
		pagination: pagination,
		maxEntries: maxEntries,
	}
}

func (r *repo) Handler() *Handler {
	return NewHandler(r, r.logger, r.pagination)
}

func (r *repo) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Entry], error) {
	page.Normalize(r.pagination)

	qb := query.
		NewBuilder(projection, defaultSort).
		WhereSearch(page.Search, "DocTypeName", "Summary")

	filters.Apply(qb)

	if len(page.Sort) > 0 {
		qb.OrderByFields(page.Sort)
	}

	countSQL, countArgs := qb.BuildCount()
	var total int
	if err := r.db.QueryRowContext(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, fmt.Errorf("count history: %w", err)
	}

	pageSQL, pageArgs := qb.BuildPage(page.Page, page.PageSize)
	entries, err := repository.QueryMany(ctx, r.db, pageSQL, pageArgs, scanEntry)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}

	result := pagination.NewPageResult(entries, total, page.Page, page.PageSize)
	return &result, nil
}

func (r *repo) Find(ctx context.Context, id uuid.UUID) (*Record, error) {
	q, args := query.NewBuilder(recordProjection).BuildSingle("ID", id)

	rec, err := repository.QueryOne(ctx, r.db, q, args, scanRecord)
	if err != nil {
		return nil, repository.MapError(err, ErrNotFound, ErrDuplicate)
	}
	return &rec, nil
}

func (r *repo) Append(ctx context.Context, cmd AppendCommand) error {
	insert := `
		INSERT INTO history(id, analyzed_at, doc_type, doc_type_name, summary, risk_level, result)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	evict := `
		DELETE FROM history
		WHERE id NOT IN (
			SELECT id FROM history
			ORDER BY analyzed_at DESC, id DESC
			LIMIT $1
		)`

	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if _, err := tx.ExecContext(
			ctx, insert,
			cmd.ID, cmd.AnalyzedAt, cmd.DocType, cmd.DocTypeName,
			cmd.Summary, cmd.RiskLevel, cmd.Result,
		); err != nil {
			return struct{}{}, fmt.Errorf("insert entry: %w", err)
		}

		if _, err := tx.ExecContext(ctx, evict, r.maxEntries); err != nil {
			return struct{}{}, fmt.Errorf("evict oldest: %w", err)
		}

		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("analysis recorded", "id", cmd.ID, "doc_type", cmd.DocType, "risk_level", cmd.RiskLevel)
	return nil
}

func (r *repo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := repository.WithTx(ctx, r.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(
			ctx, tx,
			"DELETE FROM history WHERE id = $1",
			id,
		); err != nil {
			return struct{}{}, err
		}
		return struct{}{}, nil
	})

	if err != nil {
		return repository.MapError(err, ErrNotFound, ErrDuplicate)
	}

	r.logger.Info("history entry deleted", "id", id)
	return nil
}

func (r *repo) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, "DELETE FROM history"); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}

	r.logger.Info("history cleared")
	return nil
}
