package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wonjunee/essayblog/internal/model"
)

var _ model.PostStore = (*PostRepository)(nil)

type PostRepository struct {
	db *Connection
}

func NewPostRepository(db *Connection) *PostRepository {
	return &PostRepository{
		db: db,
	}
}

func (r *PostRepository) Create(ctx context.Context, post model.Post) (model.Post, error) {
	query := `INSERT INTO posts (subject, prompt, content, essay_type, username, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, subject, prompt, content, essay_type, username, user_id, created_at`

	var savedPost model.Post
	err := r.db.QueryRow(ctx, query,
		post.Subject, post.Prompt, post.Content, post.EssayType, post.Username, post.UserID,
	).Scan(
		&savedPost.ID, &savedPost.Subject, &savedPost.Prompt, &savedPost.Content,
		&savedPost.EssayType, &savedPost.Username, &savedPost.UserID, &savedPost.CreatedAt,
	)
	if err != nil {
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	return savedPost, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (model.Post, error) {
	var post model.Post
	query := `SELECT id, subject, prompt, content, essay_type, username, user_id, created_at
			  FROM posts WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.Subject, &post.Prompt, &post.Content,
		&post.EssayType, &post.Username, &post.UserID, &post.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Post{}, model.ErrNotFound
		}
		return model.Post{}, fmt.Errorf("failed to get post by id: %w", err)
	}

	return post, nil
}

func (r *PostRepository) List(ctx context.Context) ([]model.Post, error) {
	query := `SELECT id, subject, prompt, content, essay_type, username, user_id, created_at
			  FROM posts ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (r *PostRepository) ListByType(ctx context.Context, essayType model.EssayType) ([]model.Post, error) {
	query := `SELECT id, subject, prompt, content, essay_type, username, user_id, created_at
			  FROM posts WHERE essay_type = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, essayType)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts by type: %w", err)
	}
	defer rows.Close()

	return scanPosts(rows)
}

// UpdateOwned updates subject, prompt, content and the denormalized
// username in one owner-conditional statement. No matching row means the
// post is missing or owned by someone else.
func (r *PostRepository) UpdateOwned(ctx context.Context, post model.Post) error {
	query := `UPDATE posts SET subject = $1, prompt = $2, content = $3, username = $4
			  WHERE id = $5 AND username = $4`

	tag, err := r.db.Exec(ctx, query, post.Subject, post.Prompt, post.Content, post.Username, post.ID)
	if err != nil {
		return fmt.Errorf("failed to update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *PostRepository) DeleteOwned(ctx context.Context, id int64, username string) error {
	query := `DELETE FROM posts WHERE id = $1 AND username = $2`

	tag, err := r.db.Exec(ctx, query, id, username)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func scanPosts(rows pgx.Rows) ([]model.Post, error) {
	posts := []model.Post{}
	for rows.Next() {
		var post model.Post
		err := rows.Scan(
			&post.ID, &post.Subject, &post.Prompt, &post.Content,
			&post.EssayType, &post.Username, &post.UserID, &post.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read posts: %w", err)
	}

	return posts, nil
}
