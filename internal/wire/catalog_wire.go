package wire

import (
	"movie-discovery/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCatalog(
	r chi.Router,
	catalogHandler *adaptor.CatalogHandler,
) {
	// ==================== PUBLIC ROUTES ====================
	// Search and detail lookups proxy the catalog; the API credential
	// stays server-side
	r.Post("/getMovies", catalogHandler.SearchMovies)
	r.Post("/getMovieDetails", catalogHandler.MovieDetails)
}
