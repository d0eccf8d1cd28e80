package repositories

import (
	"database/sql"

	"commboard/app/models"
)

// SQLPostRepository implements PostRepository on database/sql.
type SQLPostRepository struct {
	db *sql.DB
}

// NewSQLPostRepository creates a new SQLPostRepository.
func NewSQLPostRepository(db *sql.DB) *SQLPostRepository {
	return &SQLPostRepository{db: db}
}

// Create inserts a new post with all counters at zero.
func (r *SQLPostRepository) Create(post *models.Post) error {
	post.BeforeCreate()
	res, err := r.db.Exec(
		`INSERT INTO post (user_id, title, content, image, view, like_count, comment_count, created_at)
		 VALUES (?, ?, ?, ?, 0, 0, 0, ?)`,
		post.UserID, post.Title, post.Content, nullable(optional(post.Image)), post.CreatedAt,
	)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	post.ID = id
	return nil
}

// GetByID retrieves a post with the author's nickname and profile image
// joined in at read time.
func (r *SQLPostRepository) GetByID(id int64) (*models.Post, error) {
	row := r.db.QueryRow(
		`SELECT p.post_id, p.user_id, p.title, p.content, p.image,
		        p.view, p.like_count, p.comment_count, p.created_at,
		        u.nickname, u.profile_img
		 FROM post p
		 LEFT JOIN users u ON p.user_id = u.user_id
		 WHERE p.post_id = ?`, id)
	post, err := scanPost(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return post, err
}

// List retrieves all posts ascending by creation time, denormalized with
// author fields.
func (r *SQLPostRepository) List() ([]*models.Post, error) {
	rows, err := r.db.Query(
		`SELECT p.post_id, p.user_id, p.title, p.content, p.image,
		        p.view, p.like_count, p.comment_count, p.created_at,
		        u.nickname, u.profile_img
		 FROM post p
		 LEFT JOIN users u ON p.user_id = u.user_id
		 ORDER BY p.created_at ASC, p.post_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	var image, nickname, profileImg sql.NullString
	err := row.Scan(&post.ID, &post.UserID, &post.Title, &post.Content, &image,
		&post.View, &post.LikeCount, &post.CommentCount, &post.CreatedAt,
		&nickname, &profileImg)
	if err != nil {
		return nil, err
	}
	post.Image = image.String
	post.Nickname = nickname.String
	post.ProfileImg = profileImg.String
	return &post, nil
}

// Update edits a post. Ownership is enforced in the WHERE clause: zero rows
// affected means not found or not the owner, and the caller disambiguates.
// A nil image preserves the stored one.
func (r *SQLPostRepository) Update(postID, userID int64, title, content string, image *string) (int64, error) {
	res, err := r.db.Exec(
		`UPDATE post
		 SET title = ?, content = ?, image = COALESCE(?, image)
		 WHERE post_id = ? AND user_id = ?`,
		title, content, nullable(image), postID, userID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a post with its likes and comments in one transaction.
// Children go first; the ownership-gated post delete decides whether the
// transaction commits, so a non-owner request rolls the child deletions back.
func (r *SQLPostRepository) Delete(postID, userID int64) (int64, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM likes WHERE post_id = ?`, postID); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(`DELETE FROM comment WHERE post_id = ?`, postID); err != nil {
		return 0, err
	}
	res, err := tx.Exec(`DELETE FROM post WHERE post_id = ? AND user_id = ?`, postID, userID)
	if err != nil {
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, nil
	}
	return rows, tx.Commit()
}

// OwnerID returns the author of a post.
func (r *SQLPostRepository) OwnerID(postID int64) (int64, error) {
	var ownerID int64
	err := r.db.QueryRow(`SELECT user_id FROM post WHERE post_id = ?`, postID).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	return ownerID, nil
}

// IncrementView bumps the view counter unconditionally and returns the new
// value. Repeat views and the author's own views all count.
func (r *SQLPostRepository) IncrementView(postID int64) (int64, error) {
	res, err := r.db.Exec(`UPDATE post SET view = view + 1 WHERE post_id = ?`, postID)
	if err != nil {
		return 0, err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if rows == 0 {
		return 0, ErrNotFound
	}
	var view int64
	err = r.db.QueryRow(`SELECT view FROM post WHERE post_id = ?`, postID).Scan(&view)
	return view, err
}

// AdjustCommentCount shifts the denormalized comment counter. Only a delta of
// exactly +1 or -1 is legal; anything else fails before touching the row.
func (r *SQLPostRepository) AdjustCommentCount(postID int64, delta int) error {
	if delta != 1 && delta != -1 {
		return ErrInvalidDelta
	}
	res, err := r.db.Exec(`UPDATE post SET comment_count = comment_count + ? WHERE post_id = ?`, delta, postID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// CommentCount reads the stored comment counter.
func (r *SQLPostRepository) CommentCount(postID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT comment_count FROM post WHERE post_id = ?`, postID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return count, err
}
