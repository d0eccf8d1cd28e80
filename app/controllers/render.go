// Package controllers translates HTTP requests into service calls and service
// results back into the JSON envelope the frontend expects.
package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"commboard/app/repositories"
	"commboard/app/services"
)

// sendJSON writes data as a JSON response with the given status.
func sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("encode response: %v", err)
		}
	}
}

// sendError writes a JSON error envelope with the given status.
func sendError(w http.ResponseWriter, status int, message string) {
	sendJSON(w, status, map[string]string{"message": message})
}

// sendServiceError maps service and repository errors onto HTTP statuses.
func sendServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		sendError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, repositories.ErrDuplicateEmail):
		sendError(w, http.StatusBadRequest, "email already registered")
	case errors.Is(err, repositories.ErrDuplicateNickname):
		sendError(w, http.StatusBadRequest, "nickname already taken")
	case errors.Is(err, services.ErrUnknownEmail):
		sendError(w, http.StatusUnauthorized, "email not registered")
	case errors.Is(err, services.ErrWrongPassword):
		sendError(w, http.StatusUnauthorized, "password does not match")
	case errors.Is(err, services.ErrNotOwner):
		sendError(w, http.StatusForbidden, "no permission for this resource")
	case errors.Is(err, repositories.ErrNotFound):
		sendError(w, http.StatusNotFound, "resource not found")
	default:
		log.Printf("internal error: %v", err)
		sendError(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(mux.Vars(r)[name], 10, 64)
}
