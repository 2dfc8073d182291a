package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"Reelist/models"
	"Reelist/services"
)

type watchlistService interface {
	Add(ctx context.Context, owner int64, in models.NewMovieTask) (*models.MovieTask, error)
	List(ctx context.Context, owner int64, filter models.TaskFilter) ([]models.MovieTask, error)
	ListTrash(ctx context.Context, owner int64) ([]models.MovieTask, error)
	Update(ctx context.Context, owner, id int64, upd models.TaskUpdate) (*models.MovieTask, error)
	SoftDelete(ctx context.Context, owner, id int64) error
	Restore(ctx context.Context, owner, id int64) error
	PermanentDelete(ctx context.Context, owner, id int64) error
}

var _ watchlistService = (*services.WatchlistStore)(nil)

type statsService interface {
	Stats(ctx context.Context, owner int64) (*models.Stats, error)
}

var _ statsService = (*services.StatsAggregator)(nil)

type TaskHandler struct {
	Tasks watchlistService
	Stats statsService
}

func NewTaskHandler(tasks watchlistService, stats statsService) *TaskHandler {
	return &TaskHandler{Tasks: tasks, Stats: stats}
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}

	var body models.NewMovieTask
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.Tasks.Add(r.Context(), owner, body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("Movie added to watchlist", "user_id", owner, "task_id", task.ID, "title", task.Title)
	writeJSON(w, http.StatusCreated, task)
}

func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	tasks, err := h.Tasks.List(r.Context(), owner, models.TaskFilter{
		Status:   q.Get("status"),
		Category: q.Get("category"),
		Sort:     q.Get("sort"),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Trash(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}

	tasks, err := h.Tasks.ListTrash(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	var body models.TaskUpdate
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, err)
		return
	}

	task, err := h.Tasks.Update(r.Context(), owner, id, body)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.Tasks.SoftDelete(r.Context(), owner, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Task deleted successfully!")
}

func (h *TaskHandler) Restore(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.Tasks.Restore(r.Context(), owner, id); err != nil {
		writeError(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK, "Movie successfully restored to your watchlist!")
}

func (h *TaskHandler) PermanentDelete(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}
	id, ok := taskID(w, r)
	if !ok {
		return
	}

	if err := h.Tasks.PermanentDelete(r.Context(), owner, id); err != nil {
		writeError(w, r, err)
		return
	}

	slog.Info("Movie permanently deleted", "user_id", owner, "task_id", id)
	writeMessage(w, http.StatusOK, "Movie is permanently deleted from the database.")
}

func (h *TaskHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	owner, ok := currentUser(w, r)
	if !ok {
		return
	}

	stats, err := h.Stats.Stats(r.Context(), owner)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
