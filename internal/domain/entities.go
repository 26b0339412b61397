package domain

import (
	"fmt"
	"strings"
)

// MediaType distinguishes upstream content types
type MediaType string

const (
	MediaTypeMovie   MediaType = "movie"
	MediaTypeSeries  MediaType = "series"
	MediaTypeEpisode MediaType = "episode"
)

// Valid reports whether t is one of the types the upstream API accepts as a filter
func (t MediaType) Valid() bool {
	switch t {
	case MediaTypeMovie, MediaTypeSeries, MediaTypeEpisode:
		return true
	default:
		return false
	}
}

// MovieSummary is a single search hit. Immutable once received.
type MovieSummary struct {
	ID        string    // Upstream identifier (IMDb id), unique
	Title     string    // Display title
	Year      string    // Release year as reported upstream ("1994", "2008–2013")
	PosterURL string    // Poster image URL, empty when upstream reports none
	Type      MediaType // movie, series, episode
}

// HasPoster returns true if the summary carries a poster URL
func (m MovieSummary) HasPoster() bool {
	return m.PosterURL != ""
}

// IMDbURL returns the title page for the movie
func (m MovieSummary) IMDbURL() string {
	if m.ID == "" {
		return ""
	}
	return "https://www.imdb.com/title/" + m.ID + "/"
}

// TypeLabel returns the media type for display, defaulting to "movie"
func (m MovieSummary) TypeLabel() string {
	if m.Type == "" {
		return string(MediaTypeMovie)
	}
	return string(m.Type)
}

// SearchPage is one page of search results
type SearchPage struct {
	Movies       []MovieSummary
	TotalResults int // Upstream total-count hint (0 if unknown)
}

// Empty returns true if the page holds no movies
func (p SearchPage) Empty() bool {
	return len(p.Movies) == 0
}

// Rating is a single third-party rating from the detail record
type Rating struct {
	Source string
	Value  string
}

// MovieDetail is the full record fetched on demand for the detail view
type MovieDetail struct {
	MovieSummary

	Plot      string
	Runtime   string  // e.g. "142 min"
	Rating    float64 // IMDb rating, 0 when unrated
	Votes     string
	Genres    []string
	Director  string
	Cast      []string
	Rated     string // e.g. "PG-13"
	Released  string
	Language  string
	Country   string
	Awards    string
	Metascore string
	Ratings   []Rating
}

// FormattedRating returns the IMDb rating for display
func (d MovieDetail) FormattedRating() string {
	if d.Rating <= 0 {
		return "N/A"
	}
	return fmt.Sprintf("%.1f", d.Rating)
}

// CastLine joins the cast list for display
func (d MovieDetail) CastLine() string {
	if len(d.Cast) == 0 {
		return "N/A"
	}
	return strings.Join(d.Cast, ", ")
}

// WatchlistEntry is the reduced projection of a MovieSummary kept in the watchlist.
// The ID is the dedup key.
type WatchlistEntry struct {
	ID        string    `json:"imdbID"`
	Title     string    `json:"Title"`
	Year      string    `json:"Year"`
	PosterURL string    `json:"Poster"`
	Type      MediaType `json:"Type"`
}

// NewWatchlistEntry projects a summary into a watchlist entry
func NewWatchlistEntry(m MovieSummary) WatchlistEntry {
	return WatchlistEntry{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		PosterURL: m.PosterURL,
		Type:      m.Type,
	}
}

// Summary converts the entry back into a summary so it can be rendered as a card
func (e WatchlistEntry) Summary() MovieSummary {
	return MovieSummary{
		ID:        e.ID,
		Title:     e.Title,
		Year:      e.Year,
		PosterURL: e.PosterURL,
		Type:      e.Type,
	}
}
