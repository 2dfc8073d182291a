package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"Reelist/config"
	"Reelist/httpclient"
	"Reelist/models"

	"golang.org/x/sync/errgroup"
)

const youtubeWatchURL = "https://www.youtube.com/watch?v="

type omdbResponse struct {
	Response   string `json:"Response"`
	Error      string `json:"Error"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Plot       string `json:"Plot"`
	Genre      string `json:"Genre"`
	Poster     string `json:"Poster"`
	IMDBRating string `json:"imdbRating"`
}

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

// MetadataClient looks a title up on OMDb and finds a matching trailer on
// YouTube.
type MetadataClient struct {
	client     *http.Client
	omdbURL    string
	omdbKey    string
	youtubeURL string
	youtubeKey string
}

func NewMetadataClient(cfg *config.Config, client *http.Client) *MetadataClient {
	if client == nil {
		client = httpclient.DefaultClient
	}
	return &MetadataClient{
		client:     client,
		omdbURL:    cfg.OMDBBaseURL,
		omdbKey:    cfg.OMDBAPIKey,
		youtubeURL: strings.TrimRight(cfg.YouTubeBaseURL, "/"),
		youtubeKey: cfg.YouTubeAPIKey,
	}
}

// Search runs the movie and trailer lookups concurrently. A missing movie
// wins over any trailer error.
func (c *MetadataClient) Search(ctx context.Context, title string) (*models.MovieRecord, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrTitleRequired
	}

	var movie *omdbResponse
	var trailer string
	var trailerErr error

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		m, err := c.lookupMovie(gctx, title)
		if err != nil {
			return err
		}
		movie = m
		return nil
	})
	g.Go(func() error {
		trailer, trailerErr = c.lookupTrailer(gctx, title)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if trailerErr != nil {
		return nil, trailerErr
	}

	return &models.MovieRecord{
		Title:       movie.Title,
		Year:        movie.Year,
		Plot:        movie.Plot,
		Genre:       movie.Genre,
		PosterURL:   movie.Poster,
		TrailerLink: trailer,
		IMDBRating:  movie.IMDBRating,
	}, nil
}

func (c *MetadataClient) lookupMovie(ctx context.Context, title string) (*omdbResponse, error) {
	apiURL, err := httpclient.BuildQueryURL(c.omdbURL, map[string]string{
		"t":      title,
		"apikey": c.omdbKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: omdb: %v", ErrUpstream, err)
	}

	var resp omdbResponse
	if err := httpclient.GetJSON(ctx, c.client, apiURL, &resp); err != nil {
		slog.Warn("OMDb lookup failed", "title", title, "error", err)
		return nil, fmt.Errorf("%w: omdb: %v", ErrUpstream, err)
	}

	if resp.Response == "False" {
		slog.Debug("OMDb has no match", "title", title, "reason", resp.Error)
		return nil, ErrMovieNotFound
	}

	return &resp, nil
}

// lookupTrailer returns a watch URL for the first video result, or "" when
// there are none or YouTube answers with an error status.
func (c *MetadataClient) lookupTrailer(ctx context.Context, title string) (string, error) {
	apiURL, err := httpclient.BuildQueryURL(c.youtubeURL+"/search", map[string]string{
		"part":       "snippet",
		"q":          title + " official trailer",
		"type":       "video",
		"maxResults": "1",
		"key":        c.youtubeKey,
	})
	if err != nil {
		return "", fmt.Errorf("%w: youtube: %v", ErrUpstream, err)
	}

	var resp youtubeSearchResponse
	if err := httpclient.GetJSON(ctx, c.client, apiURL, &resp); err != nil {
		if errors.Is(err, context.Canceled) {
			return "", err
		}
		// Quota and key errors come back as 4xx; the movie is still worth returning.
		var statusErr *httpclient.StatusError
		if errors.As(err, &statusErr) {
			slog.Warn("YouTube rejected trailer lookup", "title", title, "status", statusErr.StatusCode)
			return "", nil
		}
		slog.Warn("YouTube trailer lookup failed", "title", title, "error", err)
		return "", fmt.Errorf("%w: youtube: %v", ErrUpstream, err)
	}

	if len(resp.Items) == 0 || resp.Items[0].ID.VideoID == "" {
		return "", nil
	}
	return youtubeWatchURL + resp.Items[0].ID.VideoID, nil
}
