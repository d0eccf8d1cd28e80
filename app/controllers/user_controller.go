package controllers

import (
	"encoding/json"
	"net/http"

	"commboard/app/middleware"
	"commboard/app/services"
	"commboard/app/sessions"
	"commboard/app/uploads"
)

// UserController handles profile management, logout and account withdrawal.
// Every mutation is self-only: the path userId must match the session.
type UserController struct {
	users    *services.UserService
	sessions *sessions.Store
	uploads  *uploads.Saver
}

// NewUserController creates a new UserController.
func NewUserController(users *services.UserService, store *sessions.Store, saver *uploads.Saver) *UserController {
	return &UserController{users: users, sessions: store, uploads: saver}
}

// Profile handles GET /users/profile/{userId}.
func (c *UserController) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	user, err := c.users.Profile(userID)
	if err != nil {
		sendServiceError(w, err)
		return
	}
	sendJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

// UpdateProfile handles PUT /users/profile/{userId}. The body is multipart
// form data; absent fields keep their stored value. On success the session
// snapshot is rewritten so the cookie reflects the new identity.
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	userID, err := pathID(r, "userId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if session.UserID != userID {
		sendError(w, http.StatusForbidden, "no permission for this resource")
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		sendError(w, http.StatusBadRequest, "multipart form data required")
		return
	}

	var email, nickname, profileImg *string
	if v := r.FormValue("email"); v != "" {
		email = &v
	}
	if v := r.FormValue("nickname"); v != "" {
		nickname = &v
	}
	if f, fh, err := r.FormFile("profileImage"); err == nil {
		f.Close()
		path, err := c.uploads.Save(uploads.ProfileDir, fh)
		if err != nil {
			sendServiceError(w, err)
			return
		}
		profileImg = &path
	}

	user, err := c.users.UpdateProfile(userID, email, nickname, profileImg)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	if token := sessions.TokenFrom(r); token != "" {
		err := c.sessions.Refresh(token, &sessions.Session{
			UserID:     user.ID,
			Email:      user.Email,
			Nickname:   user.Nickname,
			ProfileImg: user.ProfileImg,
		})
		if err != nil {
			sendServiceError(w, err)
			return
		}
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"message": "profile updated",
		"user":    user,
	})
}

// ChangePassword handles PATCH /users/password/{userId}. All of the user's
// sessions are destroyed, so the client must log in again.
func (c *UserController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	userID, err := pathID(r, "userId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if session.UserID != userID {
		sendError(w, http.StatusForbidden, "no permission for this resource")
		return
	}

	var body struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		sendError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := c.users.ChangePassword(userID, body.Password); err != nil {
		sendServiceError(w, err)
		return
	}

	sessions.ClearCookie(w)
	sendJSON(w, http.StatusOK, map[string]string{"message": "password updated"})
}

// Logout handles POST /users/logout.
func (c *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	if token := sessions.TokenFrom(r); token != "" {
		if err := c.sessions.Destroy(token); err != nil {
			sendServiceError(w, err)
			return
		}
	}
	sessions.ClearCookie(w)
	sendJSON(w, http.StatusOK, map[string]string{"message": "logout success"})
}

// Withdraw handles DELETE /users/{userId}. The account and everything it
// authored is removed, along with all of its sessions.
func (c *UserController) Withdraw(w http.ResponseWriter, r *http.Request) {
	session := middleware.SessionFrom(r)
	userID, err := pathID(r, "userId")
	if err != nil {
		sendError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	if session.UserID != userID {
		sendError(w, http.StatusForbidden, "no permission for this resource")
		return
	}

	if err := c.users.Withdraw(userID); err != nil {
		sendServiceError(w, err)
		return
	}

	sessions.ClearCookie(w)
	sendJSON(w, http.StatusOK, map[string]string{"message": "account withdrawn"})
}
