package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application
type KeyMap struct {
	// Listings
	Search    key.Binding
	Popular   key.Binding
	Year      key.Binding
	Filters   key.Binding
	Watchlist key.Binding
	Find      key.Binding
	LoadMore  key.Binding

	// Actions
	Detail key.Binding
	Toggle key.Binding
	Open   key.Binding
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Search: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "search"),
		),
		Popular: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "popular"),
		),
		Year: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "by year"),
		),
		Filters: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "filters"),
		),
		Watchlist: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "watchlist"),
		),
		Find: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "find in watchlist"),
		),
		LoadMore: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "load more"),
		),
		Detail: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "details"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("a", " "),
			key.WithHelp("a", "toggle watchlist"),
		),
		Open: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "open on IMDb"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close/cancel"),
		),
	}
}

// Keys is the global key map instance
var Keys = DefaultKeyMap()
