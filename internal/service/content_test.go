package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wonjunee/essayblog/internal/mocks"
	"github.com/wonjunee/essayblog/internal/model"
	"github.com/wonjunee/essayblog/internal/testutil"
)

var owner = model.User{ID: 1, Name: "wonjunee"}

func newContent(posts *mocks.PostStore, comments *mocks.CommentStore) *Content {
	return NewContent(posts, comments, testutil.MakeNoopLogger())
}

func TestContent_CreatePost_Success(t *testing.T) {
	posts := &mocks.PostStore{}
	posts.On("Create", mock.Anything, mock.MatchedBy(func(p model.Post) bool {
		return p.Subject == "S" && p.Username == "wonjunee" && p.UserID == int64(1) && p.EssayType == model.EssayTypeGRE
	})).Return(model.Post{ID: 5, Subject: "S", EssayType: model.EssayTypeGRE}, nil)

	s := newContent(posts, &mocks.CommentStore{})

	post, err := s.CreatePost(t.Context(), owner, "S", "P", "C", model.EssayTypeGRE)
	require.NoError(t, err)
	assert.Equal(t, int64(5), post.ID)
	assert.Equal(t, "GRE", post.EssayType.Label())
	posts.AssertExpectations(t)
}

func TestContent_CreatePost_EmptySubject(t *testing.T) {
	posts := &mocks.PostStore{}

	s := newContent(posts, &mocks.CommentStore{})

	_, err := s.CreatePost(t.Context(), owner, "", "P", "C", model.EssayTypeGRE)
	assert.ErrorIs(t, err, model.ErrSubjectRequired)
	posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContent_UpdatePost_NotOwner(t *testing.T) {
	posts := &mocks.PostStore{}
	posts.On("UpdateOwned", mock.Anything, mock.Anything).Return(model.ErrNotFound)

	s := newContent(posts, &mocks.CommentStore{})

	err := s.UpdatePost(t.Context(), owner, 5, "S", "P", "C")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestContent_UpdatePost_EmptySubject(t *testing.T) {
	posts := &mocks.PostStore{}

	s := newContent(posts, &mocks.CommentStore{})

	err := s.UpdatePost(t.Context(), owner, 5, "", "P", "C")
	assert.ErrorIs(t, err, model.ErrSubjectRequired)
	posts.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything)
}

func TestContent_DeletePost(t *testing.T) {
	posts := &mocks.PostStore{}
	posts.On("DeleteOwned", mock.Anything, int64(5), "wonjunee").Return(nil)

	s := newContent(posts, &mocks.CommentStore{})

	require.NoError(t, s.DeletePost(t.Context(), owner, 5))
	posts.AssertExpectations(t)
}

func TestContent_GetSummary(t *testing.T) {
	posts := &mocks.PostStore{}
	posts.On("ListByType", mock.Anything, model.EssayTypeGRE).Return([]model.Post{{ID: 1}}, nil)
	posts.On("ListByType", mock.Anything, model.EssayTypeNSF).Return([]model.Post{}, nil)
	posts.On("ListByType", mock.Anything, model.EssayTypeSOP).Return([]model.Post{{ID: 2}, {ID: 3}}, nil)

	s := newContent(posts, &mocks.CommentStore{})

	summary, err := s.GetSummary(t.Context())
	require.NoError(t, err)
	assert.Len(t, summary.GRE, 1)
	assert.Empty(t, summary.NSF)
	assert.Len(t, summary.SOP, 2)
}

func TestContent_CreateComment_Success(t *testing.T) {
	posts := &mocks.PostStore{}
	posts.On("GetByID", mock.Anything, int64(5)).Return(model.Post{ID: 5}, nil)
	comments := &mocks.CommentStore{}
	comments.On("Create", mock.Anything, mock.MatchedBy(func(c model.Comment) bool {
		return c.PostID == "5" && c.Comment == "nice" && c.Username == "wonjunee"
	})).Return(model.Comment{ID: 9, PostID: "5", Comment: "nice"}, nil)

	s := newContent(posts, comments)

	comment, err := s.CreateComment(t.Context(), owner, 5, "nice")
	require.NoError(t, err)
	assert.Equal(t, int64(9), comment.ID)
	comments.AssertExpectations(t)
}

func TestContent_CreateComment_EmptyText(t *testing.T) {
	comments := &mocks.CommentStore{}

	s := newContent(&mocks.PostStore{}, comments)

	_, err := s.CreateComment(t.Context(), owner, 5, "")
	assert.ErrorIs(t, err, model.ErrCommentRequired)
	comments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestContent_CreateComment_MissingPost(t *testing.T) {
	posts := &mocks.PostStore{}
	posts.On("GetByID", mock.Anything, int64(404)).Return(model.Post{}, model.ErrNotFound)

	s := newContent(posts, &mocks.CommentStore{})

	_, err := s.CreateComment(t.Context(), owner, 404, "nice")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestContent_GetComment_ScopedToOwner(t *testing.T) {
	comments := &mocks.CommentStore{}
	comments.On("GetOwned", mock.Anything, int64(9), "wonjunee").Return(model.Comment{}, model.ErrNotFound)

	s := newContent(&mocks.PostStore{}, comments)

	_, err := s.GetComment(t.Context(), owner, 9)
	assert.ErrorIs(t, err, model.ErrNotFound)
	comments.AssertExpectations(t)
}

func TestContent_UpdateComment_EmptyText(t *testing.T) {
	comments := &mocks.CommentStore{}

	s := newContent(&mocks.PostStore{}, comments)

	err := s.UpdateComment(t.Context(), owner, 9, "")
	assert.ErrorIs(t, err, model.ErrCommentRequired)
	comments.AssertNotCalled(t, "UpdateOwned", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestContent_DeleteComment(t *testing.T) {
	comments := &mocks.CommentStore{}
	comments.On("DeleteOwned", mock.Anything, int64(9), "wonjunee").Return(nil)

	s := newContent(&mocks.PostStore{}, comments)

	require.NoError(t, s.DeleteComment(t.Context(), owner, 9))
	comments.AssertExpectations(t)
}
