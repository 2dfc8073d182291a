package models

// MovieRecord is a normalized search result merged from the metadata and
// video providers.
type MovieRecord struct {
	Title       string `json:"title"`
	Year        string `json:"year"`
	Plot        string `json:"plot"`
	Genre       string `json:"genre"`
	PosterURL   string `json:"poster_url"`
	TrailerLink string `json:"trailer_link"`
	IMDBRating  string `json:"imdb_rating"`
}
