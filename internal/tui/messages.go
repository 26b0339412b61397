package tui

import (
	"github.com/mmcdole/cinefind/internal/browse"
	"github.com/mmcdole/cinefind/internal/domain"
)

// Message types for the TUI

// ListingLoadedMsg carries the outcome of a listing request
type ListingLoadedMsg struct {
	Req  browse.Request
	Page *domain.SearchPage
	Err  error
}

// DetailLoadedMsg carries the outcome of a detail lookup
type DetailLoadedMsg struct {
	ID     string
	Detail *domain.MovieDetail
	Err    error
}

// OpenedMsg reports the outcome of opening a page in the browser
type OpenedMsg struct {
	URL string
	Err error
}

// ClearNoticeMsg signals that a notice should be cleared. Only the notice
// with the matching ID is cleared so a newer one survives.
type ClearNoticeMsg struct {
	ID int
}
