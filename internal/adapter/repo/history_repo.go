// Package repo contains PostgreSQL-backed repositories.
package repo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"server/internal/domain"
)

const defaultHistoryLimit = 50

// HistoryRepositoryPG implements domain.HistoryRepository.
type HistoryRepositoryPG struct {
	pool *pgxpool.Pool
}

// NewHistoryRepository creates a history repository backed by PostgreSQL.
func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepositoryPG {
	return &HistoryRepositoryPG{pool: pool}
}

// Insert records a finished generation.
func (r *HistoryRepositoryPG) Insert(ctx context.Context, item *domain.HistoryItem) error {
	copiesJSON, err := json.Marshal(item.Copies)
	if err != nil {
		return fmt.Errorf("marshal copies: %w", err)
	}
	query := `
INSERT INTO copy_history (id, created_at, value_proposition, request_json, copies_json, model, favorite)
VALUES ($1, $2, $3, $4, $5, $6, $7);
`
	_, err = r.pool.Exec(ctx, query,
		item.ID,
		item.CreatedAt,
		item.ValueProposition,
		item.RequestJSON,
		copiesJSON,
		item.Model,
		item.Favorite,
	)
	return err
}

// buildListQuery translates a filter into the SELECT statement and its
// positional arguments.
func buildListQuery(filter domain.HistoryFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		conds = append(conds, "value_proposition ILIKE "+arg("%"+search+"%"))
	}
	if filter.Platform != "" {
		conds = append(conds, "copies_json @> "+arg(fmt.Sprintf(`[{"platform":%q}]`, filter.Platform)))
	}
	if filter.FavoritesOnly {
		conds = append(conds, "favorite")
	}

	query := "SELECT id, created_at, value_proposition, request_json, copies_json, model, favorite FROM copy_history"
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	if filter.Sort == domain.HistorySortOldest {
		query += " ORDER BY created_at ASC"
	} else {
		query += " ORDER BY created_at DESC"
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	query += " LIMIT " + arg(limit)
	return query, args
}

// List returns history items matching the filter, newest first unless the
// filter asks for the oldest.
func (r *HistoryRepositoryPG) List(ctx context.Context, filter domain.HistoryFilter) ([]domain.HistoryItem, error) {
	query, args := buildListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.HistoryItem
	for rows.Next() {
		var (
			item       domain.HistoryItem
			copiesJSON []byte
		)
		if err := rows.Scan(
			&item.ID,
			&item.CreatedAt,
			&item.ValueProposition,
			&item.RequestJSON,
			&copiesJSON,
			&item.Model,
			&item.Favorite,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(copiesJSON, &item.Copies); err != nil {
			return nil, fmt.Errorf("unmarshal copies for %s: %w", item.ID, err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// SetFavorite toggles the favorite flag on one item.
func (r *HistoryRepositoryPG) SetFavorite(ctx context.Context, id string, favorite bool) error {
	tag, err := r.pool.Exec(ctx, "UPDATE copy_history SET favorite = $2 WHERE id = $1;", id, favorite)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes one item.
func (r *HistoryRepositoryPG) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM copy_history WHERE id = $1;", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

var _ domain.HistoryRepository = (*HistoryRepositoryPG)(nil)
