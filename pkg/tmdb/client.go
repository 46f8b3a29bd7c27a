package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movie-discovery/pkg/utils"

	"go.uber.org/zap"
)

// ErrUnavailable is returned for any upstream failure: transport error,
// timeout, or a non-2xx status. Callers never see partial results.
var ErrUnavailable = errors.New("catalog unavailable")

// Movie mirrors one entry of a TMDB search result page.
type Movie struct {
	Adult            bool    `json:"adult"`
	BackdropPath     *string `json:"backdrop_path"`
	GenreIDs         []int   `json:"genre_ids"`
	ID               int64   `json:"id"`
	OriginalLanguage string  `json:"original_language"`
	OriginalTitle    string  `json:"original_title"`
	Overview         string  `json:"overview"`
	Popularity       float64 `json:"popularity"`
	PosterPath       *string `json:"poster_path"`
	ReleaseDate      string  `json:"release_date"`
	Title            string  `json:"title"`
	Video            bool    `json:"video"`
	VoteAverage      float64 `json:"vote_average"`
	VoteCount        int64   `json:"vote_count"`
}

type searchResponse struct {
	Page         int     `json:"page"`
	Results      []Movie `json:"results"`
	TotalPages   int     `json:"total_pages"`
	TotalResults int     `json:"total_results"`
}

// Client talks to the external movie catalog. The API credential is
// server-held and never reaches the browser.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *zap.Logger
}

func NewClient(config utils.TMDBConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		client: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		log: log.With(zap.String("client", "tmdb")),
	}
}

// SearchMovies queries the catalog's free-text search endpoint.
func (c *Client) SearchMovies(ctx context.Context, query string, page int) ([]Movie, error) {
	endpoint := fmt.Sprintf("%s/3/search/movie?query=%s&include_adult=false&language=en-US&page=%s",
		c.baseURL, url.QueryEscape(query), strconv.Itoa(page))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	var result searchResponse
	if err := json.Unmarshal(body, &result); err != nil {
		c.log.Error("Failed to decode search response", zap.Error(err))
		return nil, fmt.Errorf("%w: decode search response", ErrUnavailable)
	}

	return result.Results, nil
}

// MovieDetails fetches one movie's detail document. The upstream payload
// is passed through untouched.
func (c *Client) MovieDetails(ctx context.Context, id string) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/3/movie/%s", c.baseURL, url.PathEscape(id))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return nil, err
	}

	return json.RawMessage(body), nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Error("Catalog request failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.log.Error("Failed to read catalog response", zap.Error(err))
		return nil, fmt.Errorf("%w: read response", ErrUnavailable)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Warn("Catalog returned non-success status",
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: upstream status %d", ErrUnavailable, resp.StatusCode)
	}

	return body, nil
}
