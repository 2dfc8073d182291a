package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"Reelist/models"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
)

const noFavouriteGenre = "N/A"

type StatsAggregator struct {
	db *sqlx.DB
}

func NewStatsAggregator(db *sqlx.DB) *StatsAggregator {
	return &StatsAggregator{db: db}
}

func (a *StatsAggregator) Stats(ctx context.Context, owner int64) (*models.Stats, error) {
	query, args, err := psql.Select("id", "status", "category", "imdb_rating").
		From("movie_tasks").
		Where(sq.Eq{"user_id": owner}).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build stats query: %w", err)
	}

	var tasks []models.MovieTask
	if err := a.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("failed to load stats: %w", err)
	}

	stats := Summarize(tasks)
	return &stats, nil
}

// Summarize aggregates active tasks given in insertion order. Category ties
// go to whichever category appeared first. Ratings that are not numbers,
// such as OMDb's "N/A", are left out of the average.
func Summarize(tasks []models.MovieTask) models.Stats {
	stats := models.Stats{
		TotalSaved:     len(tasks),
		FavouriteGenre: noFavouriteGenre,
	}

	var ratingSum float64
	var rated int
	counts := map[string]int{}
	var order []string

	for _, t := range tasks {
		if t.Status != nil {
			switch *t.Status {
			case models.StatusWatched:
				stats.Breakdown.Watched++
			case models.StatusPending:
				stats.Breakdown.Pending++
			}
		}

		if t.IMDBRating != nil {
			if r, err := strconv.ParseFloat(strings.TrimSpace(*t.IMDBRating), 64); err == nil {
				ratingSum += r
				rated++
			}
		}

		if t.Category != nil {
			if _, seen := counts[*t.Category]; !seen {
				order = append(order, *t.Category)
			}
			counts[*t.Category]++
		}
	}

	if rated > 0 {
		stats.AverageIMDBScore = math.Round(ratingSum/float64(rated)*100) / 100
	}

	best := 0
	for _, category := range order {
		if counts[category] > best {
			best = counts[category]
			stats.FavouriteGenre = category
		}
	}

	return stats
}
