package repositories

import "commboard/app/models"

// UserRepository defines the interface for account data access.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int64) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	EmailExists(email string) (bool, error)
	NicknameExists(nickname string) (bool, error)
	UpdateProfile(id int64, email, nickname, profileImg *string) (int64, error)
	UpdatePassword(id int64, passwordHash string) (int64, error)
	Withdraw(id int64) error
}

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int64) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(postID, userID int64, title, content string, image *string) (int64, error)
	Delete(postID, userID int64) (int64, error)
	OwnerID(postID int64) (int64, error)
	IncrementView(postID int64) (int64, error)
	AdjustCommentCount(postID int64, delta int) error
	CommentCount(postID int64) (int64, error)
}

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(comment *models.Comment) error
	ListByPost(postID int64) ([]*models.Comment, error)
	Update(commentID, userID int64, content string) (int64, error)
	Delete(commentID, userID int64) (int64, error)
	OwnerID(commentID int64) (int64, error)
	PostID(commentID int64) (int64, error)
}

// LikeRepository defines the interface for the post/user like relation.
type LikeRepository interface {
	Toggle(postID, userID int64) (string, error)
	Count(postID int64) (int64, error)
	Liked(postID, userID int64) (bool, error)
}
