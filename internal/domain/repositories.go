package domain

import (
	"context"
)

// MovieRepository provides read access to movie metadata.
// Implemented by the OMDb client (proxy side) and the proxy client (TUI side).
type MovieRepository interface {
	// SearchMovies returns one page of movies matching the query
	SearchMovies(ctx context.Context, query string, page int) (*SearchPage, error)

	// GetMovieDetail returns the full record for a movie
	GetMovieDetail(ctx context.Context, id string) (*MovieDetail, error)

	// GetPopularMovies returns one page of "popular" movies
	GetPopularMovies(ctx context.Context, page int) (*SearchPage, error)

	// GetMoviesByYear returns one page of movies released in the given year
	GetMoviesByYear(ctx context.Context, year string, page int) (*SearchPage, error)
}

// Filter narrows a generic movie listing by year and media type
type Filter struct {
	Year string    // Empty for any year
	Type MediaType // Empty for any type
	Page int
}

// FilteredRepository is implemented by repositories that support combined filters
type FilteredRepository interface {
	GetFilteredMovies(ctx context.Context, filter Filter) (*SearchPage, error)
}
