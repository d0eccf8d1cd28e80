package services

import (
	"fmt"

	"commboard/app/models"
	"commboard/app/repositories"
)

// CommentService handles business logic for comments, keeping the parent
// post's comment counter in step with comment creation and deletion.
type CommentService struct {
	comments repositories.CommentRepository
	posts    repositories.PostRepository
}

// NewCommentService creates a new CommentService.
func NewCommentService(comments repositories.CommentRepository, posts repositories.PostRepository) *CommentService {
	return &CommentService{comments: comments, posts: posts}
}

// CreateComment validates and stores a comment against an existing post,
// then bumps the post's comment counter.
func (s *CommentService) CreateComment(comment *models.Comment) error {
	if err := comment.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if _, err := s.posts.OwnerID(comment.PostID); err != nil {
		return err
	}
	if err := s.comments.Create(comment); err != nil {
		return err
	}
	return s.posts.AdjustCommentCount(comment.PostID, +1)
}

// ListPostComments retrieves all comments of an existing post, oldest first.
func (s *CommentService) ListPostComments(postID int64) ([]*models.Comment, error) {
	if _, err := s.posts.OwnerID(postID); err != nil {
		return nil, err
	}
	return s.comments.ListByPost(postID)
}

// UpdateComment edits a comment on behalf of userID; ownership lives in the
// statement's WHERE clause and zero affected rows is disambiguated by an
// owner lookup.
func (s *CommentService) UpdateComment(commentID, userID int64, content string) error {
	if content == "" {
		return fmt.Errorf("%w: content is required", ErrValidation)
	}
	rows, err := s.comments.Update(commentID, userID, content)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.ownership(commentID, userID)
	}
	return nil
}

// DeleteComment removes a comment on behalf of userID and decrements the
// parent post's comment counter. The path post must be the comment's actual
// parent; otherwise another post's counter would take the decrement.
func (s *CommentService) DeleteComment(commentID, postID, userID int64) error {
	parentID, err := s.comments.PostID(commentID)
	if err != nil {
		return err
	}
	if parentID != postID {
		return repositories.ErrNotFound
	}
	rows, err := s.comments.Delete(commentID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.ownership(commentID, userID)
	}
	return s.posts.AdjustCommentCount(parentID, -1)
}

func (s *CommentService) ownership(commentID, userID int64) error {
	ownerID, err := s.comments.OwnerID(commentID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrNotOwner
	}
	return repositories.ErrNotFound
}
