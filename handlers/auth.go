package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"Reelist/models"
	"Reelist/services"
)

type authService interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

var _ authService = (*services.AuthService)(nil)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type AuthHandler struct {
	Auth authService
}

func NewAuthHandler(auth authService) *AuthHandler {
	return &AuthHandler{Auth: auth}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.Auth.Register(r.Context(), body.Username, body.Password); err != nil {
		slog.Warn("Registration failed", "username", body.Username, "error", err)
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated, "User created successfully")
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Debug("Login attempt", "username", body.Username)

	token, err := h.Auth.Login(r.Context(), body.Username, body.Password)
	if err != nil {
		slog.Warn("Login failed", "username", body.Username, "error", err)
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"access_token": token})
}
