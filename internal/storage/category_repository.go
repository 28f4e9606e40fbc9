package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/event-manager/backend/internal/storage/models"
)

// CategoryRepository provides data access for the fixed category set.
type CategoryRepository struct {
	BaseRepository
}

// NewCategoryRepository creates a new category repository.
func NewCategoryRepository(db *DB) *CategoryRepository {
	return &CategoryRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// List retrieves all persisted categories.
func (r *CategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	rows, err := r.DB().QueryContext(ctx, "SELECT id, name FROM categories ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("querying categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// Seed inserts the default category set if the categories table is empty.
// The emptiness check makes it safe to call on every startup: a non-empty
// table is left untouched, so no duplicates are ever created. All inserts
// happen in a single transaction.
func (r *CategoryRepository) Seed(ctx context.Context) error {
	return r.Transaction(func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM categories").Scan(&count); err != nil {
			return fmt.Errorf("counting categories: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, name := range models.DefaultCategories {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO categories (id, name) VALUES (?, ?)",
				GenerateID(), name,
			); err != nil {
				return fmt.Errorf("seeding category %s: %w", name, err)
			}
		}

		return nil
	})
}
