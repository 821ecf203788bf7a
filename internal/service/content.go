package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/wonjunee/essayblog/internal/logger"
	"github.com/wonjunee/essayblog/internal/model"
)

// Content manages the post and comment lifecycle. Ownership checks on
// mutation are pushed into the stores as conditional writes; the service
// validates input and translates store errors.
type Content struct {
	posts    model.PostStore
	comments model.CommentStore
	logger   *logger.Logger
}

// NewContent creates a new Content service.
func NewContent(posts model.PostStore, comments model.CommentStore, logger *logger.Logger) *Content {
	return &Content{
		posts:    posts,
		comments: comments,
		logger:   logger,
	}
}

// Summary groups posts by essay type for the summary page, each group
// newest first.
type Summary struct {
	GRE []model.Post
	NSF []model.Post
	SOP []model.Post
}

// CreatePost persists a new post. An empty subject fails with
// model.ErrSubjectRequired and persists nothing; prompt and content may be
// empty.
func (s *Content) CreatePost(ctx context.Context, owner model.User, subject, prompt, content string, essayType model.EssayType) (model.Post, error) {
	s.logger.Debug("Content service: creating post",
		"owner", owner.Name,
		"essay_type", essayType)

	if subject == "" {
		return model.Post{}, model.ErrSubjectRequired
	}

	post, err := s.posts.Create(ctx, model.Post{
		Subject:   subject,
		Prompt:    prompt,
		Content:   content,
		EssayType: essayType,
		Username:  owner.Name,
		UserID:    owner.ID,
	})
	if err != nil {
		s.logger.Error("Content service: failed to create post",
			"owner", owner.Name,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to create post: %w", err)
	}

	s.logger.Info("Content service: post created",
		"owner", owner.Name,
		"post_id", post.ID)

	return post, nil
}

// GetPost fetches a post by id.
func (s *Content) GetPost(ctx context.Context, id int64) (model.Post, error) {
	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, model.ErrNotFound
		}
		s.logger.Error("Content service: failed to get post",
			"post_id", id,
			"error", err.Error())
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	return post, nil
}

// ListPosts returns all posts, newest first.
func (s *Content) ListPosts(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		s.logger.Error("Content service: failed to list posts",
			"error", err.Error())
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// ListPostsByType returns posts of one essay type, newest first.
func (s *Content) ListPostsByType(ctx context.Context, essayType model.EssayType) ([]model.Post, error) {
	posts, err := s.posts.ListByType(ctx, essayType)
	if err != nil {
		s.logger.Error("Content service: failed to list posts by type",
			"essay_type", essayType,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list posts by type: %w", err)
	}

	return posts, nil
}

// GetSummary returns all posts grouped by essay type.
func (s *Content) GetSummary(ctx context.Context) (Summary, error) {
	var summary Summary
	var err error

	if summary.GRE, err = s.posts.ListByType(ctx, model.EssayTypeGRE); err != nil {
		return Summary{}, fmt.Errorf("failed to list posts by type: %w", err)
	}
	if summary.NSF, err = s.posts.ListByType(ctx, model.EssayTypeNSF); err != nil {
		return Summary{}, fmt.Errorf("failed to list posts by type: %w", err)
	}
	if summary.SOP, err = s.posts.ListByType(ctx, model.EssayTypeSOP); err != nil {
		return Summary{}, fmt.Errorf("failed to list posts by type: %w", err)
	}

	return summary, nil
}

// UpdatePost rewrites a post's subject, prompt and content. The write is
// conditional on owner still owning the post; model.ErrNotFound covers both
// a missing post and an ownership mismatch.
func (s *Content) UpdatePost(ctx context.Context, owner model.User, id int64, subject, prompt, content string) error {
	s.logger.Debug("Content service: updating post",
		"owner", owner.Name,
		"post_id", id)

	if subject == "" {
		return model.ErrSubjectRequired
	}

	err := s.posts.UpdateOwned(ctx, model.Post{
		ID:       id,
		Subject:  subject,
		Prompt:   prompt,
		Content:  content,
		Username: owner.Name,
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		s.logger.Error("Content service: failed to update post",
			"owner", owner.Name,
			"post_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to update post: %w", err)
	}

	s.logger.Info("Content service: post updated",
		"owner", owner.Name,
		"post_id", id)

	return nil
}

// DeletePost removes a post, conditional on ownership.
func (s *Content) DeletePost(ctx context.Context, owner model.User, id int64) error {
	s.logger.Debug("Content service: deleting post",
		"owner", owner.Name,
		"post_id", id)

	err := s.posts.DeleteOwned(ctx, id, owner.Name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		s.logger.Error("Content service: failed to delete post",
			"owner", owner.Name,
			"post_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete post: %w", err)
	}

	s.logger.Info("Content service: post deleted",
		"owner", owner.Name,
		"post_id", id)

	return nil
}

// CreateComment persists a comment on an existing post. Empty text fails
// with model.ErrCommentRequired; a missing post fails with
// model.ErrNotFound.
func (s *Content) CreateComment(ctx context.Context, owner model.User, postID int64, text string) (model.Comment, error) {
	s.logger.Debug("Content service: creating comment",
		"owner", owner.Name,
		"post_id", postID)

	if text == "" {
		return model.Comment{}, model.ErrCommentRequired
	}

	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Comment{}, model.ErrNotFound
		}
		return model.Comment{}, fmt.Errorf("failed to get post: %w", err)
	}

	comment, err := s.comments.Create(ctx, model.Comment{
		PostID:   strconv.FormatInt(postID, 10),
		Comment:  text,
		Username: owner.Name,
		UserID:   owner.ID,
	})
	if err != nil {
		s.logger.Error("Content service: failed to create comment",
			"owner", owner.Name,
			"post_id", postID,
			"error", err.Error())
		return model.Comment{}, fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Info("Content service: comment created",
		"owner", owner.Name,
		"post_id", postID,
		"comment_id", comment.ID)

	return comment, nil
}

// GetComment fetches a comment addressed through the current identity's
// scope. A comment authored by someone else reads as model.ErrNotFound.
func (s *Content) GetComment(ctx context.Context, owner model.User, id int64) (model.Comment, error) {
	comment, err := s.comments.GetOwned(ctx, id, owner.Name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Comment{}, model.ErrNotFound
		}
		s.logger.Error("Content service: failed to get comment",
			"owner", owner.Name,
			"comment_id", id,
			"error", err.Error())
		return model.Comment{}, fmt.Errorf("failed to get comment: %w", err)
	}

	return comment, nil
}

// ListComments returns a post's comments, newest first.
func (s *Content) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, strconv.FormatInt(postID, 10))
	if err != nil {
		s.logger.Error("Content service: failed to list comments",
			"post_id", postID,
			"error", err.Error())
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return comments, nil
}

// UpdateComment rewrites a comment's text within the owner's scope.
func (s *Content) UpdateComment(ctx context.Context, owner model.User, id int64, text string) error {
	s.logger.Debug("Content service: updating comment",
		"owner", owner.Name,
		"comment_id", id)

	if text == "" {
		return model.ErrCommentRequired
	}

	err := s.comments.UpdateOwned(ctx, id, owner.Name, text)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		s.logger.Error("Content service: failed to update comment",
			"owner", owner.Name,
			"comment_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to update comment: %w", err)
	}

	s.logger.Info("Content service: comment updated",
		"owner", owner.Name,
		"comment_id", id)

	return nil
}

// DeleteComment removes a comment within the owner's scope.
func (s *Content) DeleteComment(ctx context.Context, owner model.User, id int64) error {
	s.logger.Debug("Content service: deleting comment",
		"owner", owner.Name,
		"comment_id", id)

	err := s.comments.DeleteOwned(ctx, id, owner.Name)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.ErrNotFound
		}
		s.logger.Error("Content service: failed to delete comment",
			"owner", owner.Name,
			"comment_id", id,
			"error", err.Error())
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	s.logger.Info("Content service: comment deleted",
		"owner", owner.Name,
		"comment_id", id)

	return nil
}
