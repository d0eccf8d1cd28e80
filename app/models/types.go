package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered board member. Password always holds the
// bcrypt hash, never the plaintext, and is excluded from JSON responses.
type User struct {
	ID         int64     `json:"userId" validate:"-"`
	Email      string    `json:"email" validate:"required,email"`
	Nickname   string    `json:"nickname" validate:"required,min=2,max=20"`
	Password   string    `json:"-" validate:"required"`
	ProfileImg string    `json:"profileImage,omitempty" validate:"-"`
	CreatedAt  time.Time `json:"createdAt" validate:"-"`
}

// Post represents a board post. View, LikeCount and CommentCount are
// maintained server-side and never taken from a request body. Nickname and
// ProfileImg are the author's fields, joined in at read time.
type Post struct {
	ID           int64     `json:"postId" validate:"-"`
	UserID       int64     `json:"userId" validate:"required,gt=0"`
	Title        string    `json:"title" validate:"required,max=100"`
	Content      string    `json:"content" validate:"required"`
	Image        string    `json:"image,omitempty" validate:"-"`
	View         int64     `json:"view"`
	LikeCount    int64     `json:"like"`
	CommentCount int64     `json:"comment"`
	CreatedAt    time.Time `json:"createdAt" validate:"-"`
	Nickname     string    `json:"nickname,omitempty" validate:"-"`
	ProfileImg   string    `json:"profileImage,omitempty" validate:"-"`
}

// Comment represents a comment on a post.
type Comment struct {
	ID         int64     `json:"commentId" validate:"-"`
	PostID     int64     `json:"postId" validate:"required,gt=0"`
	UserID     int64     `json:"userId" validate:"required,gt=0"`
	Content    string    `json:"content" validate:"required,max=500"`
	CreatedAt  time.Time `json:"createdAt" validate:"-"`
	Nickname   string    `json:"nickname,omitempty" validate:"-"`
	ProfileImg string    `json:"profileImage,omitempty" validate:"-"`
}
