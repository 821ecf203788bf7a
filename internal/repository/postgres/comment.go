package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wonjunee/essayblog/internal/model"
)

var _ model.CommentStore = (*CommentRepository)(nil)

type CommentRepository struct {
	db *Connection
}

func NewCommentRepository(db *Connection) *CommentRepository {
	return &CommentRepository{
		db: db,
	}
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	query := `INSERT INTO comments (post_id, comment, username, user_id)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, post_id, comment, username, user_id, created_at`

	var savedComment model.Comment
	err := r.db.QueryRow(ctx, query,
		comment.PostID, comment.Comment, comment.Username, comment.UserID,
	).Scan(
		&savedComment.ID, &savedComment.PostID, &savedComment.Comment,
		&savedComment.Username, &savedComment.UserID, &savedComment.CreatedAt,
	)
	if err != nil {
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	return savedComment, nil
}

// GetOwned fetches a comment scoped by its owner's name. A comment owned by
// a different user is reported as model.ErrNotFound.
func (r *CommentRepository) GetOwned(ctx context.Context, id int64, username string) (model.Comment, error) {
	var comment model.Comment
	query := `SELECT id, post_id, comment, username, user_id, created_at
			  FROM comments WHERE id = $1 AND username = $2`

	err := r.db.QueryRow(ctx, query, id, username).Scan(
		&comment.ID, &comment.PostID, &comment.Comment,
		&comment.Username, &comment.UserID, &comment.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Comment{}, model.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("failed to get comment by id: %w", err)
	}

	return comment, nil
}

func (r *CommentRepository) ListByPost(ctx context.Context, postID string) ([]model.Comment, error) {
	query := `SELECT id, post_id, comment, username, user_id, created_at
			  FROM comments WHERE post_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	comments := []model.Comment{}
	for rows.Next() {
		var comment model.Comment
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.Comment,
			&comment.Username, &comment.UserID, &comment.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comments: %w", err)
	}

	return comments, nil
}

func (r *CommentRepository) UpdateOwned(ctx context.Context, id int64, username, text string) error {
	query := `UPDATE comments SET comment = $1 WHERE id = $2 AND username = $3`

	tag, err := r.db.Exec(ctx, query, text, id, username)
	if err != nil {
		return fmt.Errorf("failed to update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *CommentRepository) DeleteOwned(ctx context.Context, id int64, username string) error {
	query := `DELETE FROM comments WHERE id = $1 AND username = $2`

	tag, err := r.db.Exec(ctx, query, id, username)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}
