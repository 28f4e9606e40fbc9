package storage

import (
	"context"
	"fmt"

	"github.com/event-manager/backend/internal/storage/models"
)

// CommentRepository provides data access for event comments.
type CommentRepository struct {
	BaseRepository
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *DB) *CommentRepository {
	return &CommentRepository{
		BaseRepository: NewBaseRepository(db),
	}
}

// Create inserts a new comment, assigning its ID and creation timestamp.
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = GenerateID()
	comment.Created = r.Now()

	_, err := r.DB().ExecContext(ctx, `
		INSERT INTO comments (id, event_id, author, content, created) VALUES (?, ?, ?, ?, ?)
	`, comment.ID, comment.EventID, comment.Author, comment.Content, formatTime(comment.Created))

	if err != nil {
		return fmt.Errorf("inserting comment: %w", err)
	}

	return nil
}

// ListByEvent retrieves all comments for one event, newest first.
func (r *CommentRepository) ListByEvent(ctx context.Context, eventID string) ([]models.Comment, error) {
	rows, err := r.DB().QueryContext(ctx, `
		SELECT id, event_id, author, content, created
		FROM comments WHERE event_id = ? ORDER BY created DESC
	`, eventID)
	if err != nil {
		return nil, fmt.Errorf("querying comments: %w", err)
	}
	defer rows.Close()

	var comments []models.Comment
	for rows.Next() {
		var c models.Comment
		var created string
		if err := rows.Scan(&c.ID, &c.EventID, &c.Author, &c.Content, &created); err != nil {
			return nil, fmt.Errorf("scanning comment: %w", err)
		}
		if c.Created, err = parseTime(created); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}
