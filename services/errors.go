package services

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrInvalidToken       = errors.New("invalid or missing token")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTaskAlreadyActive  = errors.New("movie is already active")
	ErrTitleRequired      = errors.New("title is required")
	ErrMovieNotFound      = errors.New("movie not found")
	ErrUpstream           = errors.New("upstream provider error")
)
