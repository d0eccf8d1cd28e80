package mock

import (
	"sync"

	"commboard/app/models"
	"commboard/app/repositories"
)

// In-memory repository implementations for service and controller tests.

type UserRepository struct {
	users  map[int64]*models.User
	nextID int64
	mutex  sync.RWMutex
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[int64]*models.User), nextID: 1}
}

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, u := range m.users {
		if u.Email == user.Email {
			return repositories.ErrDuplicateEmail
		}
		if u.Nickname == user.Nickname {
			return repositories.ErrDuplicateNickname
		}
	}
	user.BeforeCreate()
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *UserRepository) GetByID(id int64) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (m *UserRepository) GetByEmail(email string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) EmailExists(email string) (bool, error) {
	_, err := m.GetByEmail(email)
	if err == repositories.ErrNotFound {
		return false, nil
	}
	return err == nil, err
}

func (m *UserRepository) NicknameExists(nickname string) (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, u := range m.users {
		if u.Nickname == nickname {
			return true, nil
		}
	}
	return false, nil
}

func (m *UserRepository) UpdateProfile(id int64, email, nickname, profileImg *string) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user, exists := m.users[id]
	if !exists {
		return 0, nil
	}
	if email != nil {
		user.Email = *email
	}
	if nickname != nil {
		user.Nickname = *nickname
	}
	if profileImg != nil {
		user.ProfileImg = *profileImg
	}
	return 1, nil
}

func (m *UserRepository) UpdatePassword(id int64, passwordHash string) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user, exists := m.users[id]
	if !exists {
		return 0, nil
	}
	user.Password = passwordHash
	return 1, nil
}

func (m *UserRepository) Withdraw(id int64) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

type PostRepository struct {
	posts  map[int64]*models.Post
	nextID int64
	mutex  sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{posts: make(map[int64]*models.Post), nextID: 1}
}

func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[int64]*models.Post)
	m.nextID = 1
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.BeforeCreate()
	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = post
	return nil
}

func (m *PostRepository) GetByID(id int64) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	copied := *post
	return &copied, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for id := int64(1); id < m.nextID; id++ {
		if post, exists := m.posts[id]; exists {
			copied := *post
			posts = append(posts, &copied)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(postID, userID int64, title, content string, image *string) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[postID]
	if !exists || post.UserID != userID {
		return 0, nil
	}
	post.Title = title
	post.Content = content
	if image != nil {
		post.Image = *image
	}
	return 1, nil
}

func (m *PostRepository) Delete(postID, userID int64) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[postID]
	if !exists || post.UserID != userID {
		return 0, nil
	}
	delete(m.posts, postID)
	return 1, nil
}

func (m *PostRepository) OwnerID(postID int64) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[postID]
	if !exists {
		return 0, repositories.ErrNotFound
	}
	return post.UserID, nil
}

func (m *PostRepository) IncrementView(postID int64) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[postID]
	if !exists {
		return 0, repositories.ErrNotFound
	}
	post.View++
	return post.View, nil
}

func (m *PostRepository) AdjustCommentCount(postID int64, delta int) error {
	if delta != 1 && delta != -1 {
		return repositories.ErrInvalidDelta
	}
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[postID]
	if !exists {
		return repositories.ErrNotFound
	}
	post.CommentCount += int64(delta)
	return nil
}

func (m *PostRepository) CommentCount(postID int64) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[postID]
	if !exists {
		return 0, repositories.ErrNotFound
	}
	return post.CommentCount, nil
}

type CommentRepository struct {
	comments map[int64]*models.Comment
	nextID   int64
	mutex    sync.RWMutex
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{comments: make(map[int64]*models.Comment), nextID: 1}
}

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.BeforeCreate()
	comment.ID = m.nextID
	m.nextID++
	m.comments[comment.ID] = comment
	return nil
}

func (m *CommentRepository) ListByPost(postID int64) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for id := int64(1); id < m.nextID; id++ {
		if c, exists := m.comments[id]; exists && c.PostID == postID {
			copied := *c
			comments = append(comments, &copied)
		}
	}
	return comments, nil
}

func (m *CommentRepository) Update(commentID, userID int64, content string) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	c, exists := m.comments[commentID]
	if !exists || c.UserID != userID {
		return 0, nil
	}
	c.Content = content
	return 1, nil
}

func (m *CommentRepository) Delete(commentID, userID int64) (int64, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	c, exists := m.comments[commentID]
	if !exists || c.UserID != userID {
		return 0, nil
	}
	delete(m.comments, commentID)
	return 1, nil
}

func (m *CommentRepository) PostID(commentID int64) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	c, exists := m.comments[commentID]
	if !exists {
		return 0, repositories.ErrNotFound
	}
	return c.PostID, nil
}

func (m *CommentRepository) OwnerID(commentID int64) (int64, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	c, exists := m.comments[commentID]
	if !exists {
		return 0, repositories.ErrNotFound
	}
	return c.UserID, nil
}

type LikeRepository struct {
	likes map[[2]int64]bool
	posts *PostRepository
	mutex sync.Mutex
}

// NewLikeRepository builds a like repository that keeps the given post
// repository's counters in sync, mirroring the transactional pairing the SQL
// implementation provides.
func NewLikeRepository(posts *PostRepository) *LikeRepository {
	return &LikeRepository{likes: make(map[[2]int64]bool), posts: posts}
}

func (m *LikeRepository) Toggle(postID, userID int64) (string, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.posts.mutex.Lock()
	defer m.posts.mutex.Unlock()

	post, exists := m.posts.posts[postID]
	if !exists {
		return "", repositories.ErrNotFound
	}
	key := [2]int64{postID, userID}
	if m.likes[key] {
		delete(m.likes, key)
		post.LikeCount--
		return repositories.LikeRemoved, nil
	}
	m.likes[key] = true
	post.LikeCount++
	return repositories.LikeAdded, nil
}

func (m *LikeRepository) Count(postID int64) (int64, error) {
	m.posts.mutex.RLock()
	defer m.posts.mutex.RUnlock()

	post, exists := m.posts.posts[postID]
	if !exists {
		return 0, repositories.ErrNotFound
	}
	return post.LikeCount, nil
}

func (m *LikeRepository) Liked(postID, userID int64) (bool, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	return m.likes[[2]int64{postID, userID}], nil
}
