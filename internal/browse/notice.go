package browse

// NoticeKind selects the styling of a transient notice
type NoticeKind int

const (
	NoticeInfo NoticeKind = iota
	NoticeSuccess
	NoticeWarning
	NoticeError
)

// User-facing notice texts
const (
	MsgAdded            = "Added to watchlist!"
	MsgRemoved          = "Removed from watchlist"
	MsgWatchlistEmpty   = "Your watchlist is empty!"
	MsgShowingWatchlist = "Showing %d movies in your watchlist"
	MsgLoadMoreFailed   = "Failed to load more movies"
	MsgDetailFailed     = "Failed to load movie details"
	MsgFiltersApplied   = "Filters applied!"
	MsgFiltersCleared   = "Filters cleared!"
)

// Notice is a transient status line message
type Notice struct {
	Text string
	Kind NoticeKind
}

// IsZero reports whether there is nothing to announce
func (n Notice) IsZero() bool { return n.Text == "" }

func InfoNotice(text string) Notice  { return Notice{Text: text, Kind: NoticeInfo} }
func ErrorNotice(text string) Notice { return Notice{Text: text, Kind: NoticeError} }

// ToggleNotice announces the result of a watchlist toggle
func ToggleNotice(added bool) Notice {
	if added {
		return Notice{Text: MsgAdded, Kind: NoticeSuccess}
	}
	return Notice{Text: MsgRemoved, Kind: NoticeWarning}
}
