package controllers

import (
	"encoding/json"
	"net/http"

	"commboard/app/middleware"
	"commboard/app/services"
	"commboard/app/sessions"
	"commboard/app/uploads"
)

const maxUploadBytes = 10 << 20

// AuthController handles signup, login and the current-session lookup.
type AuthController struct {
	auth          *services.AuthService
	sessions      *sessions.Store
	uploads       *uploads.Saver
	secureCookies bool
}

// NewAuthController creates a new AuthController.
func NewAuthController(auth *services.AuthService, store *sessions.Store, saver *uploads.Saver, secureCookies bool) *AuthController {
	return &AuthController{auth: auth, sessions: store, uploads: saver, secureCookies: secureCookies}
}

// Signup handles POST /auth/signup. The body is multipart form data with an
// optional profileImage file part.
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		sendError(w, http.StatusBadRequest, "multipart form data required")
		return
	}

	profileImg := ""
	if f, fh, err := r.FormFile("profileImage"); err == nil {
		f.Close()
		path, err := c.uploads.Save(uploads.ProfileDir, fh)
		if err != nil {
			sendServiceError(w, err)
			return
		}
		profileImg = path
	}

	user, err := c.auth.Signup(
		r.FormValue("email"),
		r.FormValue("nickname"),
		r.FormValue("password"),
		profileImg,
	)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "signup complete",
		"user":    user,
	})
}

// Login handles POST /auth/login. On success it opens a server-side session
// and sets the session cookie.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Email == "" || body.Password == "" {
		sendError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := c.auth.Login(body.Email, body.Password)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	token, err := c.sessions.Create(&sessions.Session{
		UserID:     user.ID,
		Email:      user.Email,
		Nickname:   user.Nickname,
		ProfileImg: user.ProfileImg,
	})
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sessions.SetCookie(w, token, c.sessions.TTL(), c.secureCookies)

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "login success",
		"user":    user,
	})
}

// Current handles GET /auth/current. The account is re-read so the response
// reflects profile changes made after login.
func (c *AuthController) Current(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	user, err := c.auth.CurrentUser(session.UserID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
