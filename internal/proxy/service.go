package proxy

import (
	"context"
	"encoding/json"
	"log/slog"
	"regexp"
	"strings"

	"github.com/mmcdole/cinefind/internal/adapter/source/omdb"
	"github.com/mmcdole/cinefind/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_upstream.go -package=mocks github.com/mmcdole/cinefind/internal/proxy Upstream

// Upstream performs a single request against the movie API and returns the raw body
type Upstream interface {
	Fetch(ctx context.Context, q omdb.Query) ([]byte, error)
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// Service validates parameters and forwards them upstream.
// It holds no state between calls: no caching, no retry.
type Service struct {
	upstream Upstream
	picker   omdb.KeywordPicker
	logger   *slog.Logger
}

// NewService creates a new proxy service
func NewService(upstream Upstream, picker omdb.KeywordPicker, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if picker == nil {
		picker = omdb.NewRandomPicker()
	}
	return &Service{
		upstream: upstream,
		picker:   picker,
		logger:   logger,
	}
}

// SearchMovies forwards a title search restricted to movies
func (s *Service) SearchMovies(ctx context.Context, query string, page int) ([]byte, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalid("Search query is required")
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}

	body, err := s.upstream.Fetch(ctx, omdb.SearchQuery(query, page))
	if err != nil {
		s.logger.Error("search error", "query", query, "error", err)
		return nil, err
	}

	s.logger.Info("search complete", "query", query, "page", page, "results", countResults(body))
	return body, nil
}

// GetMovieDetail forwards a full-plot lookup by id
func (s *Service) GetMovieDetail(ctx context.Context, id string) ([]byte, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, invalid("Movie id is required")
	}

	body, err := s.upstream.Fetch(ctx, omdb.DetailQuery(id))
	if err != nil {
		s.logger.Error("error fetching movie details", "id", id, "error", err)
		return nil, err
	}
	return body, nil
}

// GetPopularMovies searches a keyword drawn from the popular vocabulary
func (s *Service) GetPopularMovies(ctx context.Context, page int) ([]byte, error) {
	if err := validatePage(page); err != nil {
		return nil, err
	}

	keyword := s.picker.Pick()
	body, err := s.upstream.Fetch(ctx, omdb.Query{Search: keyword, Page: page, Type: domain.MediaTypeMovie})
	if err != nil {
		s.logger.Error("error fetching popular movies", "keyword", keyword, "error", err)
		return nil, err
	}

	s.logger.Info("fetched popular movies", "keyword", keyword, "page", page, "results", countResults(body))
	return body, nil
}

// GetMoviesByYear lists movies released in year
func (s *Service) GetMoviesByYear(ctx context.Context, year string, page int) ([]byte, error) {
	if !yearPattern.MatchString(year) {
		return nil, invalid("Year must be a four digit number")
	}
	if err := validatePage(page); err != nil {
		return nil, err
	}

	body, err := s.upstream.Fetch(ctx, omdb.YearQuery(year, page))
	if err != nil {
		s.logger.Error("year filter error", "year", year, "error", err)
		return nil, err
	}
	return body, nil
}

// GetFilteredMovies lists movies narrowed by optional year and type
func (s *Service) GetFilteredMovies(ctx context.Context, f domain.Filter) ([]byte, error) {
	if f.Year != "" && !yearPattern.MatchString(f.Year) {
		return nil, invalid("Year must be a four digit number")
	}
	if f.Type != "" && !f.Type.Valid() {
		return nil, invalid("Type must be one of movie, series, episode")
	}
	if err := validatePage(f.Page); err != nil {
		return nil, err
	}

	body, err := s.upstream.Fetch(ctx, omdb.FilterQuery(f))
	if err != nil {
		s.logger.Error("filter error", "year", f.Year, "type", f.Type, "error", err)
		return nil, err
	}

	s.logger.Info("filtered movies", "year", orAny(f.Year), "type", orAny(string(f.Type)), "results", countResults(body))
	return body, nil
}

func validatePage(page int) error {
	if page < 1 {
		return invalid("Page must be a positive integer")
	}
	return nil
}

// countResults reports the size of the Search array for logging only
func countResults(body []byte) int {
	var payload struct {
		Search []json.RawMessage `json:"Search"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0
	}
	return len(payload.Search)
}

func orAny(s string) string {
	if s == "" {
		return "Any"
	}
	return s
}
