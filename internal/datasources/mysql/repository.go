package mysql

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/huandu/go-sqlbuilder"

	"github.com/empowerverse/personalized-feed/internal/datasources"
	"github.com/empowerverse/personalized-feed/internal/domain"
)

const interactionsTable = "user_interactions"

var _ datasources.InteractionArchive = (*Repository)(nil)

// Repository archives fetched interaction records per user and type, serving
// as the ranking fallback when the upstream API is unavailable.
type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// StoreUserInteractions replaces the archived records of one type for a user
// with the latest fetched snapshot.
func (r *Repository) StoreUserInteractions(
	ctx context.Context,
	userID string,
	interactionType domain.InteractionType,
	records []domain.InteractionRecord,
) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	db := sqlbuilder.DeleteFrom(interactionsTable)
	db.Where(
		db.Equal("user_id", userID),
		db.Equal("interaction_type", string(interactionType)),
	)
	query, args := db.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("clearing archived interactions: %w", err)
	}

	if len(records) > 0 {
		ib := sqlbuilder.InsertInto(interactionsTable)
		ib.Cols("user_id", "post_id", "interaction_type", "rating_value", "created_at")
		for _, rec := range records {
			var rating sql.NullFloat64
			if rec.RatingValue != nil {
				rating = sql.NullFloat64{Float64: *rec.RatingValue, Valid: true}
			}
			ib.Values(userID, rec.PostID, string(interactionType), rating, rec.CreatedAt)
		}
		query, args = ib.Build()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("inserting archived interactions: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// ListArchivedInteractions returns the archived records of one type for a user.
func (r *Repository) ListArchivedInteractions(
	ctx context.Context,
	userID string,
	interactionType domain.InteractionType,
) ([]domain.InteractionRecord, error) {
	sb := sqlbuilder.Select("user_id", "post_id", "rating_value", "created_at")
	sb.From(interactionsTable)
	sb.Where(
		sb.Equal("user_id", userID),
		sb.Equal("interaction_type", string(interactionType)),
	)
	sb.OrderBy("created_at").Desc()

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running archived interactions query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []domain.InteractionRecord
	for rows.Next() {
		var (
			rec       domain.InteractionRecord
			rating    sql.NullFloat64
			createdAt sql.NullString
		)
		if err := rows.Scan(&rec.UserID, &rec.PostID, &rating, &createdAt); err != nil {
			return nil, fmt.Errorf("scanning archived interaction: %w", err)
		}

		rec.InteractionType = interactionType
		if rating.Valid {
			v := rating.Float64
			rec.RatingValue = &v
		}
		rec.CreatedAt = createdAt.String

		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating archived interactions: %w", err)
	}

	return records, nil
}
