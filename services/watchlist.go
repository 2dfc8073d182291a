package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"Reelist/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var taskColumns = []string{
	"id", "title", "year", "plot", "category", "status",
	"imdb_rating", "poster_url", "trailer_link", "user_id", "deleted_at",
}

// WatchlistStore manages movie tasks. Every query is scoped to the owning
// user, so a task belonging to someone else behaves as if it did not exist.
type WatchlistStore struct {
	db  *sqlx.DB
	now func() time.Time
}

func NewWatchlistStore(db *sqlx.DB) *WatchlistStore {
	return &WatchlistStore{db: db, now: func() time.Time { return time.Now().UTC() }}
}

func (s *WatchlistStore) Add(ctx context.Context, owner int64, in models.NewMovieTask) (*models.MovieTask, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	status := models.StatusPending
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}
	category := models.DefaultCategory
	if in.Category != nil && *in.Category != "" {
		category = *in.Category
	}

	query, args, err := psql.Insert("movie_tasks").
		Columns("title", "year", "plot", "category", "status", "imdb_rating", "poster_url", "trailer_link", "user_id").
		Values(title, in.Year, in.Plot, category, status, in.IMDBRating, in.PosterURL, in.TrailerLink, owner).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build insert: %w", err)
	}

	var task models.MovieTask
	if err := s.db.GetContext(ctx, &task, query, args...); err != nil {
		return nil, fmt.Errorf("failed to add task: %w", err)
	}
	return &task, nil
}

// List returns the owner's active tasks. Newest first unless sorting by year.
func (s *WatchlistStore) List(ctx context.Context, owner int64, filter models.TaskFilter) ([]models.MovieTask, error) {
	builder := psql.Select(taskColumns...).
		From("movie_tasks").
		Where(sq.Eq{"user_id": owner}).
		Where(sq.Eq{"deleted_at": nil})

	if filter.Status != "" {
		builder = builder.Where(sq.Eq{"status": filter.Status})
	}
	if filter.Category != "" {
		builder = builder.Where(sq.Eq{"category": filter.Category})
	}

	if filter.Sort == "year" {
		builder = builder.OrderBy("year DESC NULLS LAST", "id DESC")
	} else {
		builder = builder.OrderBy("id DESC")
	}

	return s.selectTasks(ctx, builder)
}

func (s *WatchlistStore) ListTrash(ctx context.Context, owner int64) ([]models.MovieTask, error) {
	builder := psql.Select(taskColumns...).
		From("movie_tasks").
		Where(sq.Eq{"user_id": owner}).
		Where(sq.NotEq{"deleted_at": nil}).
		OrderBy("id")

	return s.selectTasks(ctx, builder)
}

func (s *WatchlistStore) Get(ctx context.Context, owner, id int64) (*models.MovieTask, error) {
	query, args, err := psql.Select(taskColumns...).
		From("movie_tasks").
		Where(sq.Eq{"id": id, "user_id": owner}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	var task models.MovieTask
	if err := s.db.GetContext(ctx, &task, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to load task %d: %w", id, err)
	}
	return &task, nil
}

// Update overwrites only the fields present in upd.
func (s *WatchlistStore) Update(ctx context.Context, owner, id int64, upd models.TaskUpdate) (*models.MovieTask, error) {
	if upd.IsEmpty() {
		return s.Get(ctx, owner, id)
	}

	builder := psql.Update("movie_tasks")
	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
	}
	if upd.Category != nil {
		builder = builder.Set("category", *upd.Category)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id, "user_id": owner}).
		Suffix("RETURNING " + strings.Join(taskColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build update: %w", err)
	}

	var task models.MovieTask
	if err := s.db.GetContext(ctx, &task, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to update task %d: %w", id, err)
	}
	return &task, nil
}

// SoftDelete moves a task to the trash. Deleting an already trashed task
// refreshes its deleted_at timestamp.
func (s *WatchlistStore) SoftDelete(ctx context.Context, owner, id int64) error {
	return s.exec(ctx, id, psql.Update("movie_tasks").
		Set("deleted_at", s.now()).
		Where(sq.Eq{"id": id, "user_id": owner}))
}

func (s *WatchlistStore) Restore(ctx context.Context, owner, id int64) error {
	task, err := s.Get(ctx, owner, id)
	if err != nil {
		return err
	}
	if !task.IsTrashed() {
		return ErrTaskAlreadyActive
	}

	return s.exec(ctx, id, psql.Update("movie_tasks").
		Set("deleted_at", nil).
		Where(sq.Eq{"id": id, "user_id": owner}))
}

// PermanentDelete removes the task whether or not it is in the trash.
func (s *WatchlistStore) PermanentDelete(ctx context.Context, owner, id int64) error {
	return s.exec(ctx, id, psql.Delete("movie_tasks").
		Where(sq.Eq{"id": id, "user_id": owner}))
}

func (s *WatchlistStore) selectTasks(ctx context.Context, builder sq.SelectBuilder) ([]models.MovieTask, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	tasks := []models.MovieTask{}
	if err := s.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *WatchlistStore) exec(ctx context.Context, id int64, builder sq.Sqlizer) error {
	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build statement: %w", err)
	}

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to modify task %d: %w", id, err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrTaskNotFound
	}
	return nil
}
