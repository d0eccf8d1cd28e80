package sessions

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore("", time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreCreateAndGet(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Create(&Session{UserID: 1, Email: "a@x.com", Nickname: "bob"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Get(token)
	require.NoError(t, err)
	require.EqualValues(t, 1, got.UserID)
	require.Equal(t, "bob", got.Nickname)

	t.Run("tokens are unique", func(t *testing.T) {
		other, err := store.Create(&Session{UserID: 1})
		require.NoError(t, err)
		require.NotEqual(t, token, other)
	})

	t.Run("unknown token yields ErrNotFound", func(t *testing.T) {
		_, err := store.Get("no-such-token")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestStoreRefresh(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Create(&Session{UserID: 1, Nickname: "bob"})
	require.NoError(t, err)

	require.NoError(t, store.Refresh(token, &Session{UserID: 1, Nickname: "bobby"}))

	got, err := store.Get(token)
	require.NoError(t, err)
	require.Equal(t, "bobby", got.Nickname)
}

func TestStoreDestroy(t *testing.T) {
	store := newTestStore(t)

	token, err := store.Create(&Session{UserID: 1})
	require.NoError(t, err)

	require.NoError(t, store.Destroy(token))
	_, err = store.Get(token)
	require.ErrorIs(t, err, ErrNotFound)

	t.Run("destroying a missing token is not an error", func(t *testing.T) {
		require.NoError(t, store.Destroy("no-such-token"))
	})
}

func TestStoreDestroyUser(t *testing.T) {
	store := newTestStore(t)

	first, err := store.Create(&Session{UserID: 1})
	require.NoError(t, err)
	second, err := store.Create(&Session{UserID: 1})
	require.NoError(t, err)
	foreign, err := store.Create(&Session{UserID: 2})
	require.NoError(t, err)

	require.NoError(t, store.DestroyUser(1))

	_, err = store.Get(first)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = store.Get(second)
	require.ErrorIs(t, err, ErrNotFound)

	got, err := store.Get(foreign)
	require.NoError(t, err)
	require.EqualValues(t, 2, got.UserID)
}

func TestStoreTTLExpiry(t *testing.T) {
	store, err := NewStore("", 50*time.Millisecond)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	token, err := store.Create(&Session{UserID: 1})
	require.NoError(t, err)

	time.Sleep(100 * time.Millisecond)
	_, err = store.Get(token)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestCookieRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	SetCookie(w, "token-123", time.Hour, false)

	res := w.Result()
	cookies := res.Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, CookieName, cookies[0].Name)
	require.True(t, cookies[0].HttpOnly)
	require.False(t, cookies[0].Secure)

	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(cookies[0])
	require.Equal(t, "token-123", TokenFrom(req))

	t.Run("no cookie means no token", func(t *testing.T) {
		bare := httptest.NewRequest("GET", "/", nil)
		require.Empty(t, TokenFrom(bare))
	})

	t.Run("clear expires the cookie", func(t *testing.T) {
		w := httptest.NewRecorder()
		ClearCookie(w)
		cleared := w.Result().Cookies()
		require.Len(t, cleared, 1)
		require.Equal(t, CookieName, cleared[0].Name)
		require.True(t, cleared[0].MaxAge < 0 || cleared[0].Expires.Before(time.Now()))
	})

	t.Run("secure flag is honored", func(t *testing.T) {
		w := httptest.NewRecorder()
		SetCookie(w, "t", time.Hour, true)
		require.True(t, w.Result().Cookies()[0].Secure)
	})
}
