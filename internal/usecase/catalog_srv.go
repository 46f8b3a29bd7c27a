package usecase

import (
	"context"
	"encoding/json"
	"sort"

	"movie-discovery/internal/dto/request"
	"movie-discovery/internal/dto/response"
	"movie-discovery/pkg/tmdb"

	"go.uber.org/zap"
)

// CatalogClient is the boundary to the external movie catalog.
type CatalogClient interface {
	SearchMovies(ctx context.Context, query string, page int) ([]tmdb.Movie, error)
	MovieDetails(ctx context.Context, id string) (json.RawMessage, error)
}

type CatalogService interface {
	SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*response.MovieListResponse, error)
	MovieDetails(ctx context.Context, req *request.MovieDetailsRequest) (*response.MovieDetailsResponse, error)
}

type catalogService struct {
	client CatalogClient
	log    *zap.Logger
}

func NewCatalogService(client CatalogClient, log *zap.Logger) CatalogService {
	return &catalogService{
		client: client,
		log:    log,
	}
}

// SearchMovies proxies the search and reshapes the page: entries with
// no release date are dropped and the rest sorted by popularity
// descending. Upstream failure propagates as tmdb.ErrUnavailable.
func (s *catalogService) SearchMovies(ctx context.Context, req *request.SearchMoviesRequest) (*response.MovieListResponse, error) {
	results, err := s.client.SearchMovies(ctx, req.Query, req.Page)
	if err != nil {
		s.log.Error("Catalog search failed",
			zap.Error(err),
			zap.String("query", req.Query),
			zap.Int("page", req.Page))
		return nil, err
	}

	movies := make([]tmdb.Movie, 0, len(results))
	for _, movie := range results {
		if movie.ReleaseDate == "" {
			continue
		}
		movies = append(movies, movie)
	}

	sort.Slice(movies, func(i, j int) bool {
		return movies[i].Popularity > movies[j].Popularity
	})

	return &response.MovieListResponse{Movies: movies}, nil
}

// MovieDetails passes the upstream detail document through untouched.
func (s *catalogService) MovieDetails(ctx context.Context, req *request.MovieDetailsRequest) (*response.MovieDetailsResponse, error) {
	movie, err := s.client.MovieDetails(ctx, req.ID)
	if err != nil {
		s.log.Error("Catalog detail lookup failed",
			zap.Error(err),
			zap.String("movie_id", req.ID))
		return nil, err
	}

	return &response.MovieDetailsResponse{Movie: movie}, nil
}
