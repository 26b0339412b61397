package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/cinefind/internal/domain"
)

// Result is a filtered card with match metadata for highlighting
type Result struct {
	Movie          domain.MovieSummary
	Index          int   // Position in the unfiltered slice
	MatchedIndexes []int // Character positions in the title that matched
	Score          int   // Higher is better
}

// Index implements fuzzy.Source over movie titles
type Index struct {
	movies      []domain.MovieSummary
	lowerTitles []string // Pre-computed lowercase titles
}

// NewIndex builds a filter index over movies
func NewIndex(movies []domain.MovieSummary) *Index {
	idx := &Index{
		movies:      movies,
		lowerTitles: make([]string, len(movies)),
	}
	for i, m := range movies {
		idx.lowerTitles[i] = strings.ToLower(m.Title)
	}
	return idx
}

// String returns the lowercase title at index i (implements fuzzy.Source)
func (idx *Index) String(i int) string { return idx.lowerTitles[i] }

// Len returns the number of movies (implements fuzzy.Source)
func (idx *Index) Len() int { return len(idx.movies) }

// Filter returns the movies whose title fuzzily matches query, best first.
// A blank query matches everything in input order.
func (idx *Index) Filter(query string) []Result {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		results := make([]Result, len(idx.movies))
		for i, m := range idx.movies {
			results[i] = Result{Movie: m, Index: i}
		}
		return results
	}

	matches := fuzzy.FindFrom(query, idx)
	results := make([]Result, len(matches))
	for i, match := range matches {
		results[i] = Result{
			Movie:          idx.movies[match.Index],
			Index:          match.Index,
			MatchedIndexes: match.MatchedIndexes,
			Score:          match.Score,
		}
	}
	return results
}

// Filter is a convenience wrapper for one-off filtering
func Filter(query string, movies []domain.MovieSummary) []Result {
	return NewIndex(movies).Filter(query)
}
