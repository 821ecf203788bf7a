package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wonjunee/essayblog/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db *Connection
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) GetByName(ctx context.Context, name string) (model.User, error) {
	var user model.User
	query := `SELECT id, name, pw_hash, email, created_at
			  FROM users WHERE name = $1`

	err := r.db.QueryRow(ctx, query, name).Scan(
		&user.ID, &user.Name, &user.PasswordHash, &user.Email, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by name: %w", err)
	}

	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (model.User, error) {
	var user model.User
	query := `SELECT id, name, pw_hash, email, created_at
			  FROM users WHERE id = $1`

	err := r.db.QueryRow(ctx, query, id).Scan(
		&user.ID, &user.Name, &user.PasswordHash, &user.Email, &user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNotFound
		}
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// Create inserts the user, enforcing name uniqueness in the same statement.
// A conflicting name returns model.ErrNameTaken so concurrent registrations
// cannot both succeed.
func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	query := `INSERT INTO users (name, pw_hash, email)
			  VALUES ($1, $2, $3)
			  ON CONFLICT (name) DO NOTHING
			  RETURNING id, name, pw_hash, email, created_at`

	var savedUser model.User
	err := r.db.QueryRow(ctx, query,
		user.Name, user.PasswordHash, user.Email,
	).Scan(
		&savedUser.ID, &savedUser.Name, &savedUser.PasswordHash, &savedUser.Email, &savedUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, model.ErrNameTaken
		}
		return model.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return savedUser, nil
}
