// Package sessions holds server-side login state in an embedded Badger
// store. Each session is a snapshot of the authenticated user keyed by a
// random cookie token; Badger's entry TTL handles expiry.
package sessions

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const keyPrefix = "session:"

var ErrNotFound = errors.New("session not found")

// Session is the snapshot bound to a cookie token. It is written at login,
// rewritten on profile edits, and destroyed on logout, password change and
// account withdrawal.
type Session struct {
	UserID     int64  `json:"userId"`
	Email      string `json:"email"`
	Nickname   string `json:"nickname"`
	ProfileImg string `json:"profileImage,omitempty"`
}

// Store is a Badger-backed session store.
type Store struct {
	db  *badger.DB
	ttl time.Duration
}

// NewStore opens a session store at path. An empty path opens an in-memory
// store for tests.
func NewStore(path string, ttl time.Duration) (*Store, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db, ttl: ttl}, nil
}

// Close closes the underlying store.
func (s *Store) Close() error {
	return s.db.Close()
}

// TTL returns the configured session lifetime.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create stores a new session and returns its token.
func (s *Store) Create(session *Session) (string, error) {
	token := uuid.New().String()
	if err := s.put(token, session); err != nil {
		return "", err
	}
	return token, nil
}

// Get retrieves the session for a token. Expired entries surface as
// ErrNotFound because Badger drops them at read time.
func (s *Store) Get(token string) (*Session, error) {
	var session Session
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(keyPrefix + token))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &session)
		})
	})
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// Refresh rewrites the snapshot under the same token with a fresh TTL. Used
// after profile edits so the session reflects the new identity fields.
func (s *Store) Refresh(token string, session *Session) error {
	return s.put(token, session)
}

// Destroy removes a single session. Destroying a missing token is not an
// error.
func (s *Store) Destroy(token string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		err := txn.Delete([]byte(keyPrefix + token))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		return err
	})
}

// DestroyUser removes every session belonging to a user. Called on password
// change and account withdrawal so stale cookies cannot reuse the old
// credentials.
func (s *Store) DestroyUser(userID int64) error {
	return s.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(keyPrefix)
		var stale [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var session Session
			err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &session)
			})
			if err != nil {
				return err
			}
			if session.UserID == userID {
				stale = append(stale, item.KeyCopy(nil))
			}
		}
		for _, key := range stale {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *Store) put(token string, session *Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		entry := badger.NewEntry([]byte(keyPrefix+token), data).WithTTL(s.ttl)
		return txn.SetEntry(entry)
	})
}
