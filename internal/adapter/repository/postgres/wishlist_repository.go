package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/attraction_wishlist/internal/core/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS wishlist_items (
	id            UUID PRIMARY KEY,
	position      INTEGER NOT NULL,
	attraction_id TEXT NOT NULL UNIQUE,
	payload       JSONB NOT NULL
)
`

// WishlistRepository stores one row per wishlist entry. Save replaces every
// row inside a single transaction.
type WishlistRepository struct {
	db *sql.DB
}

func NewWishlistRepository(db *sql.DB) *WishlistRepository {
	return &WishlistRepository{db: db}
}

func (r *WishlistRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create wishlist_items table: %w", err)
	}
	return nil
}

func (r *WishlistRepository) Load(ctx context.Context) ([]domain.Attraction, error) {
	query := `
	SELECT payload FROM wishlist_items
	ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, domain.FileOperationFailed(err)
	}

	defer rows.Close()

	attractions := []domain.Attraction{}
	for rows.Next() {
		var payload []byte
		if err := rows.Scan(&payload); err != nil {
			return nil, domain.FileOperationFailed(err)
		}

		var attraction domain.Attraction
		if err := json.Unmarshal(payload, &attraction); err != nil {
			return nil, domain.DecodingFailed(err)
		}

		attractions = append(attractions, attraction)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.FileOperationFailed(err)
	}

	return attractions, nil
}

func (r *WishlistRepository) Save(ctx context.Context, attractions []domain.Attraction) error {
	payloads := make([][]byte, 0, len(attractions))
	for _, attraction := range attractions {
		payload, err := json.Marshal(attraction)
		if err != nil {
			return domain.EncodingFailed(err)
		}
		payloads = append(payloads, payload)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.FileOperationFailed(err)
	}

	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM wishlist_items`); err != nil {
		return domain.FileOperationFailed(fmt.Errorf("failed to clear wishlist: %w", err))
	}

	queryItem := `
	INSERT INTO wishlist_items (id, position, attraction_id, payload)
	VALUES ($1, $2, $3, $4)
	`

	stmt, err := tx.PrepareContext(ctx, queryItem)
	if err != nil {
		return domain.FileOperationFailed(fmt.Errorf("failed to prepare item statement: %w", err))
	}

	defer stmt.Close()

	for i, attraction := range attractions {
		_, err := stmt.ExecContext(ctx, uuid.New(), i, attraction.ID, payloads[i])
		if err != nil {
			return domain.FileOperationFailed(fmt.Errorf("failed to insert wishlist item %s: %w", attraction.ID, err))
		}
	}

	if err = tx.Commit(); err != nil {
		return domain.FileOperationFailed(fmt.Errorf("failed to commit transaction: %w", err))
	}

	return nil
}
