package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"time"

	"Reelist/middleware"
	"Reelist/models"
	"Reelist/services"

	"github.com/go-chi/chi/v5"
)

type fakeAuthService struct {
	users map[string]string
	token string
}

func (f *fakeAuthService) Register(_ context.Context, username, password string) (*models.User, error) {
	if username == "" || password == "" {
		return nil, services.ErrInvalidInput
	}
	if _, ok := f.users[username]; ok {
		return nil, services.ErrUserExists
	}
	f.users[username] = password
	return &models.User{ID: int64(len(f.users)), Username: username}, nil
}

func (f *fakeAuthService) Login(_ context.Context, username, password string) (string, error) {
	if pw, ok := f.users[username]; !ok || pw != password {
		return "", services.ErrInvalidCredentials
	}
	return f.token, nil
}

type fakeSearcher struct {
	movie *models.MovieRecord
	err   error
	title string
}

func (f *fakeSearcher) Search(_ context.Context, title string) (*models.MovieRecord, error) {
	f.title = title
	if strings.TrimSpace(title) == "" {
		return nil, services.ErrTitleRequired
	}
	return f.movie, f.err
}

// fakeWatchlist keeps tasks in memory with the same ownership and trash rules
// as the SQL store.
type fakeWatchlist struct {
	mu     sync.Mutex
	nextID int64
	tasks  map[int64]*models.MovieTask
}

func newFakeWatchlist() *fakeWatchlist {
	return &fakeWatchlist{tasks: make(map[int64]*models.MovieTask)}
}

func (f *fakeWatchlist) Add(_ context.Context, owner int64, in models.NewMovieTask) (*models.MovieTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, services.ErrTitleRequired
	}
	status, category := models.StatusPending, models.DefaultCategory
	if in.Status != nil && *in.Status != "" {
		status = *in.Status
	}
	if in.Category != nil && *in.Category != "" {
		category = *in.Category
	}

	f.nextID++
	task := &models.MovieTask{
		ID:          f.nextID,
		Title:       title,
		Year:        in.Year,
		Plot:        in.Plot,
		Category:    &category,
		Status:      &status,
		IMDBRating:  in.IMDBRating,
		PosterURL:   in.PosterURL,
		TrailerLink: in.TrailerLink,
		UserID:      owner,
	}
	f.tasks[task.ID] = task
	cp := *task
	return &cp, nil
}

func (f *fakeWatchlist) List(_ context.Context, owner int64, filter models.TaskFilter) ([]models.MovieTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []models.MovieTask{}
	for _, t := range f.tasks {
		if t.UserID != owner || t.IsTrashed() {
			continue
		}
		if filter.Status != "" && *t.Status != filter.Status {
			continue
		}
		if filter.Category != "" && *t.Category != filter.Category {
			continue
		}
		out = append(out, *t)
	}

	sort.Slice(out, func(i, j int) bool {
		if filter.Sort == "year" {
			yi, yj := out[i].Year, out[j].Year
			switch {
			case yi != nil && yj == nil:
				return true
			case yi == nil && yj != nil:
				return false
			case yi != nil && yj != nil && *yi != *yj:
				return *yi > *yj
			}
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (f *fakeWatchlist) ListTrash(_ context.Context, owner int64) ([]models.MovieTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	out := []models.MovieTask{}
	for _, t := range f.tasks {
		if t.UserID == owner && t.IsTrashed() {
			out = append(out, *t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakeWatchlist) get(owner, id int64) (*models.MovieTask, error) {
	t, ok := f.tasks[id]
	if !ok || t.UserID != owner {
		return nil, services.ErrTaskNotFound
	}
	return t, nil
}

func (f *fakeWatchlist) Update(_ context.Context, owner, id int64, upd models.TaskUpdate) (*models.MovieTask, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.get(owner, id)
	if err != nil {
		return nil, err
	}
	if upd.Status != nil {
		t.Status = upd.Status
	}
	if upd.Category != nil {
		t.Category = upd.Category
	}
	cp := *t
	return &cp, nil
}

func (f *fakeWatchlist) SoftDelete(_ context.Context, owner, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.get(owner, id)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	t.DeletedAt = &now
	return nil
}

func (f *fakeWatchlist) Restore(_ context.Context, owner, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	t, err := f.get(owner, id)
	if err != nil {
		return err
	}
	if !t.IsTrashed() {
		return services.ErrTaskAlreadyActive
	}
	t.DeletedAt = nil
	return nil
}

func (f *fakeWatchlist) PermanentDelete(_ context.Context, owner, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, err := f.get(owner, id); err != nil {
		return err
	}
	delete(f.tasks, id)
	return nil
}

// fakeStats summarizes whatever is active in the fake watchlist.
type fakeStats struct {
	tasks *fakeWatchlist
}

func (f *fakeStats) Stats(ctx context.Context, owner int64) (*models.Stats, error) {
	tasks, err := f.tasks.List(ctx, owner, models.TaskFilter{})
	if err != nil {
		return nil, err
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	stats := services.Summarize(tasks)
	return &stats, nil
}

// do runs a single request through a chi router so URL params resolve. A
// userID of zero sends the request unauthenticated.
func do(pattern string, h http.HandlerFunc, method, target, body string, userID int64) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.MethodFunc(method, pattern, h)

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != 0 {
		req = req.WithContext(middleware.WithUserID(req.Context(), userID))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
