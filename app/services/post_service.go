package services

import (
	"fmt"

	"commboard/app/models"
	"commboard/app/repositories"
)

// PostService handles business logic for board posts.
type PostService struct {
	posts repositories.PostRepository
}

// NewPostService creates a new PostService.
func NewPostService(posts repositories.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// CreatePost validates and stores a new post. Counters start at zero.
func (s *PostService) CreatePost(post *models.Post) error {
	if err := post.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return s.posts.Create(post)
}

// GetPost retrieves a post with its author fields.
func (s *PostService) GetPost(id int64) (*models.Post, error) {
	return s.posts.GetByID(id)
}

// ListPosts retrieves all posts, oldest first, with author fields.
func (s *PostService) ListPosts() ([]*models.Post, error) {
	return s.posts.List()
}

// UpdatePost edits a post on behalf of userID. The repository enforces
// ownership in the statement itself; when nothing matches, a follow-up owner
// lookup distinguishes a missing post from somebody else's post.
func (s *PostService) UpdatePost(postID, userID int64, title, content string, image *string) error {
	draft := &models.Post{UserID: userID, Title: title, Content: content}
	if err := draft.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}

	rows, err := s.posts.Update(postID, userID, title, content, image)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.ownership(postID, userID)
	}
	return nil
}

// DeletePost deletes a post (with its likes and comments) on behalf of
// userID, with the same ownership disambiguation as UpdatePost.
func (s *PostService) DeletePost(postID, userID int64) error {
	rows, err := s.posts.Delete(postID, userID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return s.ownership(postID, userID)
	}
	return nil
}

// RegisterView increments a post's view counter and returns the new value.
// Every detail view counts; there is no per-user dedup.
func (s *PostService) RegisterView(postID int64) (int64, error) {
	return s.posts.IncrementView(postID)
}

// CommentCount reads a post's stored comment counter.
func (s *PostService) CommentCount(postID int64) (int64, error) {
	return s.posts.CommentCount(postID)
}

func (s *PostService) ownership(postID, userID int64) error {
	ownerID, err := s.posts.OwnerID(postID)
	if err != nil {
		return err
	}
	if ownerID != userID {
		return ErrNotOwner
	}
	// Owner but zero rows affected: the row vanished between statements.
	return repositories.ErrNotFound
}
