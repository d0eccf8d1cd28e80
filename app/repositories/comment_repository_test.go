package repositories

import (
	"testing"

	"github.com/stretchr/testify/require"

	"commboard/app/models"
)

func TestCommentRepositoryCreateAndList(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLCommentRepository(db)
	author := seedUser(t, db, "a@x.com", "bob")
	post := seedPost(t, db, author.ID, "hello")

	first := &models.Comment{PostID: post.ID, UserID: author.ID, Content: "first"}
	second := &models.Comment{PostID: post.ID, UserID: author.ID, Content: "second"}
	require.NoError(t, repo.Create(first))
	require.NoError(t, repo.Create(second))
	require.NotZero(t, first.ID)

	t.Run("lists oldest first with author fields", func(t *testing.T) {
		list, err := repo.ListByPost(post.ID)
		require.NoError(t, err)
		require.Len(t, list, 2)
		require.Equal(t, "first", list[0].Content)
		require.Equal(t, "second", list[1].Content)
		require.Equal(t, "bob", list[0].Nickname)
	})

	t.Run("empty post lists nothing", func(t *testing.T) {
		other := seedPost(t, db, author.ID, "empty")
		list, err := repo.ListByPost(other.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}

func TestCommentRepositoryUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewSQLCommentRepository(db)
	author := seedUser(t, db, "a@x.com", "bob")
	stranger := seedUser(t, db, "s@x.com", "sue")
	post := seedPost(t, db, author.ID, "hello")

	comment := &models.Comment{PostID: post.ID, UserID: author.ID, Content: "original"}
	require.NoError(t, repo.Create(comment))

	t.Run("owner updates", func(t *testing.T) {
		rows, err := repo.Update(comment.ID, author.ID, "edited")
		require.NoError(t, err)
		require.EqualValues(t, 1, rows)

		list, err := repo.ListByPost(post.ID)
		require.NoError(t, err)
		require.Equal(t, "edited", list[0].Content)
	})

	t.Run("non-owner matches zero rows", func(t *testing.T) {
		rows, err := repo.Update(comment.ID, stranger.ID, "hijacked")
		require.NoError(t, err)
		require.Zero(t, rows)

		rows, err = repo.Delete(comment.ID, stranger.ID)
		require.NoError(t, err)
		require.Zero(t, rows)
	})

	t.Run("owner lookup", func(t *testing.T) {
		ownerID, err := repo.OwnerID(comment.ID)
		require.NoError(t, err)
		require.Equal(t, author.ID, ownerID)

		_, err = repo.OwnerID(9999)
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("owner deletes", func(t *testing.T) {
		rows, err := repo.Delete(comment.ID, author.ID)
		require.NoError(t, err)
		require.EqualValues(t, 1, rows)

		list, err := repo.ListByPost(post.ID)
		require.NoError(t, err)
		require.Empty(t, list)
	})
}
