package services

import (
	"context"
	"testing"

	"Reelist/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func task(status, category string, rating *string) models.MovieTask {
	return models.MovieTask{Status: &status, Category: &category, IMDBRating: rating}
}

func TestSummarizeEmpty(t *testing.T) {
	stats := Summarize(nil)

	assert.Equal(t, 0, stats.TotalSaved)
	assert.Equal(t, 0.0, stats.AverageIMDBScore)
	assert.Equal(t, "N/A", stats.FavouriteGenre)
	assert.Equal(t, models.StatusBreakdown{}, stats.Breakdown)
}

func TestSummarizeAverage(t *testing.T) {
	stats := Summarize([]models.MovieTask{
		task("pending", "General", strPtr("7.5")),
		task("watched", "General", strPtr("8.5")),
	})

	assert.Equal(t, 8.0, stats.AverageIMDBScore)
	assert.Equal(t, 2, stats.TotalSaved)
	assert.Equal(t, models.StatusBreakdown{Watched: 1, Pending: 1}, stats.Breakdown)
}

func TestSummarizeRoundsAndSkipsUnrated(t *testing.T) {
	stats := Summarize([]models.MovieTask{
		task("pending", "Drama", strPtr("7.1")),
		task("pending", "Drama", strPtr("8.0")),
		task("pending", "Drama", strPtr("6.0")),
		task("pending", "Drama", nil),
		task("pending", "Drama", strPtr("N/A")),
	})

	assert.Equal(t, 7.03, stats.AverageIMDBScore)
	assert.Equal(t, 5, stats.TotalSaved)
}

func TestSummarizeFavouriteGenre(t *testing.T) {
	stats := Summarize([]models.MovieTask{
		task("pending", "Comedy", nil),
		task("pending", "Horror", nil),
		task("pending", "Horror", nil),
		task("watched", "Comedy", nil),
		task("watched", "Sci-Fi", nil),
		task("watched", "Horror", nil),
	})

	assert.Equal(t, "Horror", stats.FavouriteGenre)
}

func TestSummarizeFavouriteGenreTieGoesToFirstInserted(t *testing.T) {
	stats := Summarize([]models.MovieTask{
		task("pending", "Comedy", nil),
		task("pending", "Horror", nil),
		task("pending", "Horror", nil),
		task("pending", "Comedy", nil),
	})

	assert.Equal(t, "Comedy", stats.FavouriteGenre)
}

func TestSummarizeIgnoresOtherStatuses(t *testing.T) {
	stats := Summarize([]models.MovieTask{task("abandoned", "General", nil)})

	assert.Equal(t, 1, stats.TotalSaved)
	assert.Equal(t, models.StatusBreakdown{}, stats.Breakdown)
}

func TestStatsAggregatorQueriesActiveTasks(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT id, status, category, imdb_rating FROM movie_tasks WHERE user_id = \$1 AND deleted_at IS NULL ORDER BY id`).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "status", "category", "imdb_rating"}).
			AddRow(1, "watched", "Drama", "7.5").
			AddRow(2, "pending", "General", "8.5"))

	stats, err := NewStatsAggregator(db).Stats(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSaved)
	assert.Equal(t, 8.0, stats.AverageIMDBScore)
	assert.Equal(t, "Drama", stats.FavouriteGenre)
	require.NoError(t, mock.ExpectationsWereMet())
}
