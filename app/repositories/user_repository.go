package repositories

import (
	"database/sql"

	"commboard/app/models"
)

// SQLUserRepository implements UserRepository on database/sql.
type SQLUserRepository struct {
	db *sql.DB
}

// NewSQLUserRepository creates a new SQLUserRepository.
func NewSQLUserRepository(db *sql.DB) *SQLUserRepository {
	return &SQLUserRepository{db: db}
}

// Create inserts a new user. A UNIQUE violation on email or nickname comes
// back as ErrDuplicateEmail or ErrDuplicateNickname.
func (r *SQLUserRepository) Create(user *models.User) error {
	user.BeforeCreate()
	res, err := r.db.Exec(
		`INSERT INTO users (email, nickname, password, profile_img, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		user.Email, user.Nickname, user.Password, nullable(optional(user.ProfileImg)), user.CreatedAt,
	)
	if err != nil {
		return mapConstraintErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	user.ID = id
	return nil
}

// GetByID retrieves a user by ID.
func (r *SQLUserRepository) GetByID(id int64) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(
		`SELECT user_id, email, nickname, password, profile_img, created_at
		 FROM users WHERE user_id = ?`, id))
}

// GetByEmail retrieves a user by exact email match.
func (r *SQLUserRepository) GetByEmail(email string) (*models.User, error) {
	return r.scanUser(r.db.QueryRow(
		`SELECT user_id, email, nickname, password, profile_img, created_at
		 FROM users WHERE email = ?`, email))
}

func (r *SQLUserRepository) scanUser(row *sql.Row) (*models.User, error) {
	var user models.User
	var profileImg sql.NullString
	err := row.Scan(&user.ID, &user.Email, &user.Nickname, &user.Password, &profileImg, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	user.ProfileImg = profileImg.String
	return &user, nil
}

// EmailExists reports whether the email is already registered.
func (r *SQLUserRepository) EmailExists(email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email).Scan(&exists)
	return exists, err
}

// NicknameExists reports whether the nickname is already taken.
func (r *SQLUserRepository) NicknameExists(nickname string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(`SELECT EXISTS(SELECT 1 FROM users WHERE nickname = ?)`, nickname).Scan(&exists)
	return exists, err
}

// UpdateProfile partially updates a user's profile. Nil fields preserve the
// stored values through COALESCE. Returns the number of rows matched.
func (r *SQLUserRepository) UpdateProfile(id int64, email, nickname, profileImg *string) (int64, error) {
	res, err := r.db.Exec(
		`UPDATE users
		 SET email = COALESCE(?, email),
		     nickname = COALESCE(?, nickname),
		     profile_img = COALESCE(?, profile_img)
		 WHERE user_id = ?`,
		nullable(email), nullable(nickname), nullable(profileImg), id,
	)
	if err != nil {
		return 0, mapConstraintErr(err)
	}
	return res.RowsAffected()
}

// UpdatePassword stores a new password hash. Session invalidation is the
// caller's obligation.
func (r *SQLUserRepository) UpdatePassword(id int64, passwordHash string) (int64, error) {
	res, err := r.db.Exec(`UPDATE users SET password = ? WHERE user_id = ?`, passwordHash, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Withdraw deletes the user and everything the user authored in a single
// transaction: likes and comments touching the user's posts, the user's own
// likes and comments elsewhere, the posts, then the user row. Any failure
// rolls the whole deletion back, leaving the account intact.
func (r *SQLUserRepository) Withdraw(id int64) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	steps := []struct {
		query string
		args  []interface{}
	}{
		// Surviving posts shed the user's like and comments from their
		// counters before the rows themselves go, so like_count and
		// comment_count keep matching the relation cardinality.
		{`UPDATE post SET like_count = like_count - 1
		    WHERE user_id != ?
		      AND post_id IN (SELECT post_id FROM likes WHERE user_id = ?)`, []interface{}{id, id}},
		{`UPDATE post SET comment_count = comment_count -
		      (SELECT COUNT(*) FROM comment c WHERE c.post_id = post.post_id AND c.user_id = ?)
		    WHERE user_id != ?
		      AND post_id IN (SELECT post_id FROM comment WHERE user_id = ?)`, []interface{}{id, id, id}},
		{`DELETE FROM likes WHERE user_id = ?
		    OR post_id IN (SELECT post_id FROM post WHERE user_id = ?)`, []interface{}{id, id}},
		{`DELETE FROM comment WHERE user_id = ?
		    OR post_id IN (SELECT post_id FROM post WHERE user_id = ?)`, []interface{}{id, id}},
		{`DELETE FROM post WHERE user_id = ?`, []interface{}{id}},
	}
	for _, step := range steps {
		if _, err := tx.Exec(step.query, step.args...); err != nil {
			return err
		}
	}

	res, err := tx.Exec(`DELETE FROM users WHERE user_id = ?`, id)
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
	return tx.Commit()
}

// optional maps the empty string to a nil pointer so Create can store NULL
// for users without a profile image.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
