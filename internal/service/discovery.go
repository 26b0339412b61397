package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mmcdole/cinefind/internal/browse"
	"github.com/mmcdole/cinefind/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_source.go -package=mocks github.com/mmcdole/cinefind/internal/service MovieSource

// MovieSource is the movie backend the discovery service reads from
type MovieSource interface {
	domain.MovieRepository
	domain.FilteredRepository
}

// DiscoveryService turns browse requests into repository calls
type DiscoveryService struct {
	source MovieSource
	logger *slog.Logger
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(source MovieSource, logger *slog.Logger) *DiscoveryService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoveryService{source: source, logger: logger}
}

// Fetch performs the listing request described by req
func (s *DiscoveryService) Fetch(ctx context.Context, req browse.Request) (*domain.SearchPage, error) {
	var (
		page *domain.SearchPage
		err  error
	)

	switch req.Mode {
	case browse.ModeSearch:
		page, err = s.source.SearchMovies(ctx, req.Term, req.Page)
	case browse.ModePopular:
		page, err = s.source.GetPopularMovies(ctx, req.Page)
	case browse.ModeYear:
		page, err = s.source.GetMoviesByYear(ctx, req.Term, req.Page)
	case browse.ModeFiltered:
		f := req.Filter
		f.Page = req.Page
		page, err = s.source.GetFilteredMovies(ctx, f)
	default:
		return nil, fmt.Errorf("%w: mode %q cannot be fetched", domain.ErrInvalidRequest, req.Mode)
	}

	if err != nil {
		s.logger.Debug("listing failed", "mode", req.Mode, "term", req.Term, "page", req.Page, "error", err)
		return nil, err
	}

	s.logger.Debug("fetched listing", "mode", req.Mode, "term", req.Term, "page", req.Page, "count", len(page.Movies))
	return page, nil
}

// Detail loads the full record for a movie
func (s *DiscoveryService) Detail(ctx context.Context, id string) (*domain.MovieDetail, error) {
	detail, err := s.source.GetMovieDetail(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch movie details", "id", id, "error", err)
		return nil, err
	}
	return detail, nil
}
