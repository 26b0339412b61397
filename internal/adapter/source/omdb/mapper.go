package omdb

import (
	"strconv"
	"strings"

	"github.com/mmcdole/cinefind/internal/domain"
)

// notAvailable is OMDb's placeholder for missing fields
const notAvailable = "N/A"

// MapSearchPage converts a search payload to a domain page
func MapSearchPage(resp *SearchResponse) *domain.SearchPage {
	page := &domain.SearchPage{
		Movies: make([]domain.MovieSummary, 0, len(resp.Search)),
	}
	for _, item := range resp.Search {
		page.Movies = append(page.Movies, mapSummary(item))
	}
	if total, err := strconv.Atoi(resp.TotalResults); err == nil {
		page.TotalResults = total
	}
	return page
}

func mapSummary(item SearchItem) domain.MovieSummary {
	return domain.MovieSummary{
		ID:        item.ImdbID,
		Title:     item.Title,
		Year:      item.Year,
		PosterURL: clean(item.Poster),
		Type:      domain.MediaType(item.Type),
	}
}

// MapDetail converts a lookup payload to a domain detail record
func MapDetail(resp *DetailResponse) *domain.MovieDetail {
	detail := &domain.MovieDetail{
		MovieSummary: domain.MovieSummary{
			ID:        resp.ImdbID,
			Title:     resp.Title,
			Year:      resp.Year,
			PosterURL: clean(resp.Poster),
			Type:      domain.MediaType(resp.Type),
		},
		Plot:      clean(resp.Plot),
		Runtime:   clean(resp.Runtime),
		Votes:     clean(resp.ImdbVotes),
		Genres:    splitList(resp.Genre),
		Director:  clean(resp.Director),
		Cast:      splitList(resp.Actors),
		Rated:     clean(resp.Rated),
		Released:  clean(resp.Released),
		Language:  clean(resp.Language),
		Country:   clean(resp.Country),
		Awards:    clean(resp.Awards),
		Metascore: clean(resp.Metascore),
	}

	if r, err := strconv.ParseFloat(resp.ImdbRating, 64); err == nil {
		detail.Rating = r
	}

	for _, r := range resp.Ratings {
		detail.Ratings = append(detail.Ratings, domain.Rating{Source: r.Source, Value: r.Value})
	}

	return detail
}

// clean maps OMDb's "N/A" placeholder to an empty string
func clean(s string) string {
	s = strings.TrimSpace(s)
	if s == notAvailable {
		return ""
	}
	return s
}

// splitList splits OMDb's comma separated fields ("Action, Crime, Drama")
func splitList(s string) []string {
	s = clean(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
