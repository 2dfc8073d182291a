package models

import "time"

const (
	StatusPending   = "pending"
	StatusWatched   = "watched"
	DefaultCategory = "General"
)

type MovieTask struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Year        *string    `json:"year" db:"year"`
	Plot        *string    `json:"plot" db:"plot"`
	Category    *string    `json:"category" db:"category"`
	Status      *string    `json:"status" db:"status"`
	IMDBRating  *string    `json:"imdb_rating" db:"imdb_rating"`
	PosterURL   *string    `json:"poster_url" db:"poster_url"`
	TrailerLink *string    `json:"trailer_link" db:"trailer_link"`
	UserID      int64      `json:"-" db:"user_id"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty" db:"deleted_at"`
}

func (t *MovieTask) IsTrashed() bool {
	return t.DeletedAt != nil
}

// NewMovieTask is the client-supplied part of a watchlist entry. The owner is
// never part of it.
type NewMovieTask struct {
	Title       string  `json:"title"`
	Year        *string `json:"year"`
	Plot        *string `json:"plot"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
	IMDBRating  *string `json:"imdb_rating"`
	PosterURL   *string `json:"poster_url"`
	TrailerLink *string `json:"trailer_link"`
}

type TaskUpdate struct {
	Status   *string `json:"status"`
	Category *string `json:"category"`
}

func (u TaskUpdate) IsEmpty() bool {
	return u.Status == nil && u.Category == nil
}

type TaskFilter struct {
	Status   string
	Category string
	Sort     string // "year" or empty
}
