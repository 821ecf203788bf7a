//go:build integration

package postgres_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/wonjunee/essayblog/internal/auth"
	"github.com/wonjunee/essayblog/internal/model"
	repo "github.com/wonjunee/essayblog/internal/repository/postgres"
)

var dsn string

func TestMain(m *testing.M) {
	ctx := context.Background()
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "password",
				"POSTGRES_DB":       "essayblog_test",
			},
			WaitingFor: wait.ForListeningPort("5432/tcp").WithStartupTimeout(2 * time.Minute),
		},
		Started: true,
	})
	if err != nil {
		panic(err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		panic(err)
	}
	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		panic(err)
	}
	dsn = fmt.Sprintf("postgres://postgres:password@%s:%s/essayblog_test?sslmode=disable", host, port.Port())

	code := m.Run()
	_ = container.Terminate(ctx)
	os.Exit(code)
}

func TestRepositories_CRUD(t *testing.T) {
	ctx := context.Background()
	conn, err := repo.NewConnection(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	users := repo.NewUserRepository(conn)
	posts := repo.NewPostRepository(conn)
	comments := repo.NewCommentRepository(conn)

	owner, err := users.Create(ctx, model.User{
		Name:         "wonjunee",
		PasswordHash: auth.HashPassword("wonjunee", "pw123"),
	})
	require.NoError(t, err)
	require.NotZero(t, owner.ID)

	t.Run("duplicate registration loses", func(t *testing.T) {
		_, err := users.Create(ctx, model.User{
			Name:         "wonjunee",
			PasswordHash: auth.HashPassword("wonjunee", "other"),
		})
		assert.ErrorIs(t, err, model.ErrNameTaken)

		got, err := users.GetByName(ctx, "wonjunee")
		require.NoError(t, err)
		assert.Equal(t, owner.ID, got.ID)
	})

	post, err := posts.Create(ctx, model.Post{
		Subject:   "S",
		Prompt:    "P",
		Content:   "C",
		EssayType: model.EssayTypeGRE,
		Username:  owner.Name,
		UserID:    owner.ID,
	})
	require.NoError(t, err)

	t.Run("list by type newest first", func(t *testing.T) {
		later, err := posts.Create(ctx, model.Post{
			Subject:   "S2",
			EssayType: model.EssayTypeGRE,
			Username:  owner.Name,
			UserID:    owner.ID,
		})
		require.NoError(t, err)

		listed, err := posts.ListByType(ctx, model.EssayTypeGRE)
		require.NoError(t, err)
		require.Len(t, listed, 2)
		assert.Equal(t, later.ID, listed[0].ID)
		assert.Equal(t, post.ID, listed[1].ID)

		other, err := posts.ListByType(ctx, model.EssayTypeNSF)
		require.NoError(t, err)
		assert.Empty(t, other)

		require.NoError(t, posts.DeleteOwned(ctx, later.ID, owner.Name))
	})

	t.Run("update requires owner", func(t *testing.T) {
		updated := post
		updated.Subject = "S updated"
		updated.Username = "otheruser"
		assert.ErrorIs(t, posts.UpdateOwned(ctx, updated), model.ErrNotFound)

		updated.Username = owner.Name
		require.NoError(t, posts.UpdateOwned(ctx, updated))

		got, err := posts.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "S updated", got.Subject)
	})

	t.Run("comments scoped by owner", func(t *testing.T) {
		comment, err := comments.Create(ctx, model.Comment{
			PostID:   fmt.Sprint(post.ID),
			Comment:  "nice essay",
			Username: owner.Name,
			UserID:   owner.ID,
		})
		require.NoError(t, err)

		_, err = comments.GetOwned(ctx, comment.ID, "otheruser")
		assert.ErrorIs(t, err, model.ErrNotFound)

		got, err := comments.GetOwned(ctx, comment.ID, owner.Name)
		require.NoError(t, err)
		assert.Equal(t, "nice essay", got.Comment)

		listed, err := comments.ListByPost(ctx, fmt.Sprint(post.ID))
		require.NoError(t, err)
		assert.Len(t, listed, 1)

		assert.ErrorIs(t, comments.DeleteOwned(ctx, comment.ID, "otheruser"), model.ErrNotFound)
		require.NoError(t, comments.DeleteOwned(ctx, comment.ID, owner.Name))
	})

	t.Run("delete requires owner", func(t *testing.T) {
		assert.ErrorIs(t, posts.DeleteOwned(ctx, post.ID, "otheruser"), model.ErrNotFound)
		require.NoError(t, posts.DeleteOwned(ctx, post.ID, owner.Name))

		_, err := posts.GetByID(ctx, post.ID)
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
