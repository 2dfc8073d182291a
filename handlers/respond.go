package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"Reelist/middleware"
	"Reelist/services"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

var errBadBody = errors.New("invalid request body")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"message": message})
}

// writeError maps service errors onto HTTP statuses. Anything unrecognised is
// logged and hidden behind a 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, errBadBody):
		status, message = http.StatusBadRequest, "Invalid request body"
	case errors.Is(err, services.ErrInvalidInput):
		status, message = http.StatusBadRequest, "Username and password are required"
	case errors.Is(err, services.ErrTitleRequired):
		status, message = http.StatusBadRequest, "Title is required"
	case errors.Is(err, services.ErrTaskAlreadyActive):
		status, message = http.StatusBadRequest, "Movie is already active"
	case errors.Is(err, services.ErrUserExists):
		status, message = http.StatusConflict, "User already exists"
	case errors.Is(err, services.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid username or password"
	case errors.Is(err, services.ErrInvalidToken):
		status, message = http.StatusUnauthorized, "Missing or invalid token"
	case errors.Is(err, services.ErrTaskNotFound):
		status, message = http.StatusNotFound, "Task not found"
	case errors.Is(err, services.ErrMovieNotFound):
		status, message = http.StatusNotFound, "Movie not found"
	case errors.Is(err, services.ErrUpstream):
		status, message = http.StatusBadGateway, "Movie provider unavailable"
	}

	if status >= http.StatusInternalServerError {
		slog.Error("Request failed", "method", r.Method, "path", r.URL.Path, "status", status, "error", err)
	}

	writeJSON(w, status, map[string]string{"error": message})
}

// decodeJSON reads a JSON body into v. An empty body leaves v untouched.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errBadBody
	}
	return nil
}

func currentUser(w http.ResponseWriter, r *http.Request) (int64, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, r, services.ErrInvalidToken)
		return 0, false
	}
	return userID, true
}

func taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, services.ErrTaskNotFound)
		return 0, false
	}
	return id, true
}
