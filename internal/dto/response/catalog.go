package response

import (
	"encoding/json"

	"movie-discovery/pkg/tmdb"
)

type MovieListResponse struct {
	Movies []tmdb.Movie `json:"movies"`
}

type MovieDetailsResponse struct {
	Movie json.RawMessage `json:"movie"`
}
