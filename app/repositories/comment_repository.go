package repositories

import (
	"database/sql"

	"commboard/app/models"
)

// SQLCommentRepository implements CommentRepository on database/sql.
type SQLCommentRepository struct {
	db *sql.DB
}

// NewSQLCommentRepository creates a new SQLCommentRepository.
func NewSQLCommentRepository(db *sql.DB) *SQLCommentRepository {
	return &SQLCommentRepository{db: db}
}

// Create inserts a new comment. The parent post's comment counter is
// adjusted by the service layer, not here.
func (r *SQLCommentRepository) Create(comment *models.Comment) error {
	comment.BeforeCreate()
	res, err := r.db.Exec(
		`INSERT INTO comment (post_id, user_id, content, created_at)
		 VALUES (?, ?, ?, ?)`,
		comment.PostID, comment.UserID, comment.Content, comment.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	comment.ID = id
	return nil
}

// ListByPost retrieves a post's comments ascending by creation time, with
// author nickname and profile image joined in.
func (r *SQLCommentRepository) ListByPost(postID int64) ([]*models.Comment, error) {
	rows, err := r.db.Query(
		`SELECT c.comment_id, c.post_id, c.user_id, c.content, c.created_at,
		        u.nickname, u.profile_img
		 FROM comment c
		 LEFT JOIN users u ON c.user_id = u.user_id
		 WHERE c.post_id = ?
		 ORDER BY c.created_at ASC, c.comment_id ASC`, postID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []*models.Comment
	for rows.Next() {
		var c models.Comment
		var nickname, profileImg sql.NullString
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Content, &c.CreatedAt, &nickname, &profileImg); err != nil {
			return nil, err
		}
		c.Nickname = nickname.String
		c.ProfileImg = profileImg.String
		comments = append(comments, &c)
	}
	return comments, rows.Err()
}

// Update edits a comment's content with ownership enforced in the WHERE
// clause. Zero rows affected means not found or not the owner.
func (r *SQLCommentRepository) Update(commentID, userID int64, content string) (int64, error) {
	res, err := r.db.Exec(
		`UPDATE comment SET content = ? WHERE comment_id = ? AND user_id = ?`,
		content, commentID, userID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a comment with ownership enforced in the WHERE clause.
func (r *SQLCommentRepository) Delete(commentID, userID int64) (int64, error) {
	res, err := r.db.Exec(
		`DELETE FROM comment WHERE comment_id = ? AND user_id = ?`,
		commentID, userID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// PostID returns the parent post of a comment.
func (r *SQLCommentRepository) PostID(commentID int64) (int64, error) {
	var postID int64
	err := r.db.QueryRow(`SELECT post_id FROM comment WHERE comment_id = ?`, commentID).Scan(&postID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return postID, nil
}

// OwnerID returns the author of a comment.
func (r *SQLCommentRepository) OwnerID(commentID int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(`SELECT user_id FROM comment WHERE comment_id = ?`, commentID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}
