package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserValidate(t *testing.T) {
	valid := func() *User {
		return &User{
			Email:    "user@example.com",
			Nickname: "user",
			Password: "supersecret",
		}
	}

	t.Run("accepts a complete user", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		u := valid()
		u.Email = "not-an-email"
		require.Error(t, u.Validate())
	})

	t.Run("rejects a missing password", func(t *testing.T) {
		u := valid()
		u.Password = ""
		require.Error(t, u.Validate())
	})

	t.Run("rejects a missing nickname", func(t *testing.T) {
		u := valid()
		u.Nickname = ""
		require.Error(t, u.Validate())
	})

	t.Run("rejects an overlong nickname", func(t *testing.T) {
		u := valid()
		u.Nickname = "abcdefghijklmnopqrstu"
		require.Error(t, u.Validate())
	})
}

func TestPostValidate(t *testing.T) {
	t.Run("accepts a complete post", func(t *testing.T) {
		p := &Post{UserID: 1, Title: "hello", Content: "world"}
		require.NoError(t, p.Validate())
	})

	t.Run("rejects a missing title", func(t *testing.T) {
		p := &Post{UserID: 1, Content: "world"}
		require.Error(t, p.Validate())
	})

	t.Run("rejects an overlong title", func(t *testing.T) {
		title := make([]byte, 101)
		for i := range title {
			title[i] = 'a'
		}
		p := &Post{UserID: 1, Title: string(title), Content: "world"}
		require.Error(t, p.Validate())
	})

	t.Run("rejects a missing author", func(t *testing.T) {
		p := &Post{Title: "hello", Content: "world"}
		require.Error(t, p.Validate())
	})
}

func TestCommentValidate(t *testing.T) {
	t.Run("accepts a complete comment", func(t *testing.T) {
		c := &Comment{PostID: 1, UserID: 1, Content: "nice"}
		require.NoError(t, c.Validate())
	})

	t.Run("rejects empty content", func(t *testing.T) {
		c := &Comment{PostID: 1, UserID: 1}
		require.Error(t, c.Validate())
	})
}

func TestBeforeCreate(t *testing.T) {
	t.Run("post counters reset and timestamp set", func(t *testing.T) {
		p := &Post{UserID: 1, Title: "t", Content: "c", View: 9, LikeCount: 9, CommentCount: 9}
		p.BeforeCreate()
		require.False(t, p.CreatedAt.IsZero())
		require.Zero(t, p.View)
		require.Zero(t, p.LikeCount)
		require.Zero(t, p.CommentCount)
	})

	t.Run("user timestamp set", func(t *testing.T) {
		u := &User{}
		u.BeforeCreate()
		require.False(t, u.CreatedAt.IsZero())
	})

	t.Run("comment timestamp set", func(t *testing.T) {
		c := &Comment{}
		c.BeforeCreate()
		require.False(t, c.CreatedAt.IsZero())
	})
}
