package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/cinefind/internal/browse"
	"github.com/mmcdole/cinefind/internal/service"
)

// NoticeDuration is how long a transient notice stays visible
const NoticeDuration = 3 * time.Second

// Command factories for async operations

// FetchListingCmd performs a listing request
func FetchListingCmd(svc *service.DiscoveryService, req browse.Request) tea.Cmd {
	return func() tea.Msg {
		page, err := svc.Fetch(context.Background(), req)
		return ListingLoadedMsg{Req: req, Page: page, Err: err}
	}
}

// LoadDetailCmd fetches the full record of a movie
func LoadDetailCmd(svc *service.DiscoveryService, id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := svc.Detail(context.Background(), id)
		return DetailLoadedMsg{ID: id, Detail: detail, Err: err}
	}
}

// URLOpener opens a page outside the terminal
type URLOpener interface {
	Open(url string) error
}

// OpenURLCmd opens url with opener
func OpenURLCmd(opener URLOpener, url string) tea.Cmd {
	return func() tea.Msg {
		return OpenedMsg{URL: url, Err: opener.Open(url)}
	}
}

// ClearNoticeCmd clears the notice with the given ID after delay
func ClearNoticeCmd(id int, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return ClearNoticeMsg{ID: id}
	})
}
