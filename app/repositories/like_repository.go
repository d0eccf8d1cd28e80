package repositories

import "database/sql"

// Toggle results.
const (
	LikeAdded   = "added"
	LikeRemoved = "removed"
)

// SQLLikeRepository implements LikeRepository on database/sql.
type SQLLikeRepository struct {
	db *sql.DB
}

// NewSQLLikeRepository creates a new SQLLikeRepository.
func NewSQLLikeRepository(db *sql.DB) *SQLLikeRepository {
	return &SQLLikeRepository{db: db}
}

// Toggle flips a user's like on a post inside one transaction: the membership
// row and the post's like counter always move together, so the counter never
// diverges from the cardinality of the likes relation. There is no retry on
// failure; the error surfaces and the user re-clicks.
func (r *SQLLikeRepository) Toggle(postID, userID int64) (string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRow(`SELECT 1 FROM likes WHERE post_id = ? AND user_id = ?`, postID, userID).Scan(&exists)
	liked := err == nil
	if err != nil && err != sql.ErrNoRows {
		return "", err
	}

	var action string
	if liked {
		if _, err := tx.Exec(`DELETE FROM likes WHERE post_id = ? AND user_id = ?`, postID, userID); err != nil {
			return "", err
		}
		if err := r.shiftCount(tx, postID, -1); err != nil {
			return "", err
		}
		action = LikeRemoved
	} else {
		if _, err := tx.Exec(`INSERT INTO likes (post_id, user_id) VALUES (?, ?)`, postID, userID); err != nil {
			return "", err
		}
		if err := r.shiftCount(tx, postID, +1); err != nil {
			return "", err
		}
		action = LikeAdded
	}

	if err := tx.Commit(); err != nil {
		return "", err
	}
	return action, nil
}

func (r *SQLLikeRepository) shiftCount(tx *sql.Tx, postID int64, delta int) error {
	res, err := tx.Exec(`UPDATE post SET like_count = like_count + ? WHERE post_id = ?`, delta, postID)
	if err != nil {
		return err
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	// No post row: the whole toggle rolls back, membership change included.
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// Count reads the stored like counter for a post.
func (r *SQLLikeRepository) Count(postID int64) (int64, error) {
	var count int64
	err := r.db.QueryRow(`SELECT like_count FROM post WHERE post_id = ?`, postID).Scan(&count)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	return count, err
}

// Liked reports whether the user currently likes the post.
func (r *SQLLikeRepository) Liked(postID, userID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(
		`SELECT EXISTS(SELECT 1 FROM likes WHERE post_id = ? AND user_id = ?)`,
		postID, userID,
	).Scan(&exists)
	return exists, err
}
