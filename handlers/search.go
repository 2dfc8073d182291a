package handlers

import (
	"context"
	"net/http"

	"Reelist/models"
	"Reelist/services"
)

type movieSearcher interface {
	Search(ctx context.Context, title string) (*models.MovieRecord, error)
}

var _ movieSearcher = (*services.MetadataClient)(nil)

type SearchHandler struct {
	Movies movieSearcher
}

func NewSearchHandler(movies movieSearcher) *SearchHandler {
	return &SearchHandler{Movies: movies}
}

// Search looks up ?title= on the metadata providers.
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	movie, err := h.Movies.Search(r.Context(), r.URL.Query().Get("title"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, movie)
}
