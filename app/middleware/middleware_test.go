package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"commboard/app/sessions"
)

func TestRecoverer(t *testing.T) {
	handler := Recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	require.Contains(t, w.Body.String(), "internal server error")
}

func TestCORS(t *testing.T) {
	handler := CORS("http://localhost:3000")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("sets headers on normal requests", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("short-circuits preflight", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("OPTIONS", "/", nil))
		require.Equal(t, http.StatusNoContent, w.Code)
	})
}

func TestRequireAuth(t *testing.T) {
	store, err := sessions.NewStore("", time.Hour)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	var seen *sessions.Session
	handler := RequireAuth(store)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = SessionFrom(r)
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("no cookie is rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
		require.Equal(t, http.StatusUnauthorized, w.Code)
		require.Contains(t, w.Body.String(), "authentication required")
	})

	t.Run("stale token is rejected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: "stale"})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("live session reaches the handler", func(t *testing.T) {
		token, err := store.Create(&sessions.Session{UserID: 7, Nickname: "bob"})
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/", nil)
		req.AddCookie(&http.Cookie{Name: sessions.CookieName, Value: token})
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, seen)
		require.EqualValues(t, 7, seen.UserID)
	})
}

func TestSessionFromWithoutGate(t *testing.T) {
	require.Nil(t, SessionFrom(httptest.NewRequest("GET", "/", nil)))
}
