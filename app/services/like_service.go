package services

import "commboard/app/repositories"

// LikeService handles like toggling and like state reads.
type LikeService struct {
	likes repositories.LikeRepository
}

// NewLikeService creates a new LikeService.
func NewLikeService(likes repositories.LikeRepository) *LikeService {
	return &LikeService{likes: likes}
}

// Toggle flips the user's like on a post and returns the action taken
// ("added" or "removed") together with the resulting count.
func (s *LikeService) Toggle(postID, userID int64) (string, int64, error) {
	action, err := s.likes.Toggle(postID, userID)
	if err != nil {
		return "", 0, err
	}
	count, err := s.likes.Count(postID)
	if err != nil {
		return "", 0, err
	}
	return action, count, nil
}

// Status returns the post's like count and whether the user currently likes
// it.
func (s *LikeService) Status(postID, userID int64) (int64, bool, error) {
	count, err := s.likes.Count(postID)
	if err != nil {
		return 0, false, err
	}
	liked, err := s.likes.Liked(postID, userID)
	if err != nil {
		return 0, false, err
	}
	return count, liked, nil
}
