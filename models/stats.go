package models

type StatusBreakdown struct {
	Watched int `json:"watched"`
	Pending int `json:"pending"`
}

type Stats struct {
	TotalSaved       int             `json:"total_saved"`
	Breakdown        StatusBreakdown `json:"breakdown"`
	AverageIMDBScore float64         `json:"average_imdb_score"`
	FavouriteGenre   string          `json:"favourite_genre"`
}
