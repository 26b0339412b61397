package browse

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmcdole/cinefind/internal/domain"
)

// Status is the lifecycle of the results area
type Status int

const (
	Idle Status = iota
	Loading
	Loaded
	Empty
	Errored
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Loaded:
		return "loaded"
	case Empty:
		return "empty"
	case Errored:
		return "errored"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Mode is the listing the results came from
type Mode string

const (
	ModePopular   Mode = "popular"
	ModeSearch    Mode = "search"
	ModeYear      Mode = "year"
	ModeFiltered  Mode = "filtered"
	ModeWatchlist Mode = "watchlist"
)

// Request describes one fetch the caller must perform and hand back to Resolve
type Request struct {
	Seq      uint64
	Mode     Mode
	Term     string // search term or year
	Filter   domain.Filter
	Page     int
	LoadMore bool
}

// State is everything the results area renders from. Methods return an
// updated copy and never mutate the receiver's slices.
type State struct {
	Status   Status
	Mode     Mode
	Term     string
	Filter   domain.Filter
	Page     int
	Movies   []domain.MovieSummary
	Total    int    // upstream total-count hint
	ErrorMsg string // set when Errored

	LoadMoreOffered  bool
	LoadMoreInFlight bool

	seq    uint64 // last issued request
	latest uint64 // only this request's response is applied
}

// New returns the initial idle state
func New() State {
	return State{Status: Idle, Mode: ModePopular, Page: 1}
}

func (s State) begin(mode Mode, term string, filter domain.Filter) (State, *Request) {
	s.seq++
	s.latest = s.seq
	s.Status = Loading
	s.Mode = mode
	s.Term = term
	s.Filter = filter
	s.Page = 1
	s.Movies = nil
	s.Total = 0
	s.ErrorMsg = ""
	s.LoadMoreOffered = false
	s.LoadMoreInFlight = false

	filter.Page = 1
	return s, &Request{Seq: s.seq, Mode: mode, Term: term, Filter: filter, Page: 1}
}

// StartSearch begins a title search. A blank term is ignored.
func (s State) StartSearch(term string) (State, *Request) {
	term = strings.TrimSpace(term)
	if term == "" {
		return s, nil
	}
	return s.begin(ModeSearch, term, domain.Filter{})
}

// StartPopular begins the popular listing
func (s State) StartPopular() (State, *Request) {
	return s.begin(ModePopular, "", domain.Filter{})
}

// StartYear begins the by-year listing. A blank year is ignored.
func (s State) StartYear(year string) (State, *Request) {
	year = strings.TrimSpace(year)
	if year == "" {
		return s, nil
	}
	return s.begin(ModeYear, year, domain.Filter{})
}

// StartFiltered begins the filtered listing. An empty filter falls back to popular.
func (s State) StartFiltered(year string, mediaType domain.MediaType) (State, *Request) {
	f := domain.Filter{Year: strings.TrimSpace(year), Type: mediaType}
	if f.Year == "" && f.Type == "" {
		return s.StartPopular()
	}
	return s.begin(ModeFiltered, "", f)
}

// StartLoadMore requests the next page of the current listing. The state
// becomes Loading with the current movies kept. It returns no request while
// a load-more is in flight or when load-more is not offered.
func (s State) StartLoadMore() (State, *Request) {
	if s.LoadMoreInFlight || !s.LoadMoreOffered || s.Mode == ModeWatchlist {
		return s, nil
	}

	s.seq++
	s.latest = s.seq
	s.Status = Loading
	s.LoadMoreInFlight = true

	filter := s.Filter
	filter.Page = s.Page + 1
	return s, &Request{
		Seq:      s.seq,
		Mode:     s.Mode,
		Term:     s.Term,
		Filter:   filter,
		Page:     s.Page + 1,
		LoadMore: true,
	}
}

// Stale reports whether req has been superseded by a later request
func (s State) Stale(req Request) bool {
	return req.Seq != s.latest
}

// Resolve applies the outcome of req. Responses to superseded requests
// leave the state unchanged. The returned notice is empty unless the
// outcome should be announced.
func (s State) Resolve(req Request, page *domain.SearchPage, err error) (State, Notice) {
	if s.Stale(req) {
		return s, Notice{}
	}
	if req.LoadMore {
		return s.resolveLoadMore(req, page, err)
	}

	switch {
	case err == nil && page != nil && !page.Empty():
		s.Status = Loaded
		s.Movies = page.Movies
		s.Total = page.TotalResults
		s.Page = req.Page
		s.LoadMoreOffered = true
	case err == nil || errors.Is(err, domain.ErrUpstreamNotFound):
		s.Status = Empty
		s.Movies = nil
		s.Total = 0
		s.LoadMoreOffered = false
	default:
		s.Status = Errored
		s.Movies = nil
		s.ErrorMsg = err.Error()
		s.LoadMoreOffered = false
	}
	return s, Notice{}
}

func (s State) resolveLoadMore(req Request, page *domain.SearchPage, err error) (State, Notice) {
	s.LoadMoreInFlight = false
	s.Status = Loaded

	switch {
	case err == nil && page != nil && !page.Empty():
		movies := make([]domain.MovieSummary, 0, len(s.Movies)+len(page.Movies))
		movies = append(movies, s.Movies...)
		movies = append(movies, page.Movies...)
		s.Movies = movies
		s.Page = req.Page
		s.Filter.Page = req.Page
		s.LoadMoreOffered = true
	case err == nil || errors.Is(err, domain.ErrUpstreamNotFound):
		// Listing exhausted
		s.LoadMoreOffered = false
	default:
		s.Status = Errored
		s.Movies = nil
		s.ErrorMsg = MsgLoadMoreFailed
		s.LoadMoreOffered = false
		return s, ErrorNotice(MsgLoadMoreFailed)
	}
	return s, Notice{}
}

// ShowWatchlist renders entries as the result grid. An empty watchlist
// leaves the view unchanged and only produces a notice. Any in-flight
// response is dropped.
func (s State) ShowWatchlist(entries []domain.WatchlistEntry) (State, Notice) {
	if len(entries) == 0 {
		return s, InfoNotice(MsgWatchlistEmpty)
	}

	movies := make([]domain.MovieSummary, len(entries))
	for i, e := range entries {
		movies[i] = e.Summary()
	}

	s.seq++
	s.latest = s.seq
	s.Status = Loaded
	s.Mode = ModeWatchlist
	s.Term = ""
	s.Filter = domain.Filter{}
	s.Page = 1
	s.Movies = movies
	s.Total = len(movies)
	s.ErrorMsg = ""
	s.LoadMoreOffered = false
	s.LoadMoreInFlight = false
	return s, InfoNotice(fmt.Sprintf(MsgShowingWatchlist, len(entries)))
}

// Busy reports whether a listing request is outstanding
func (s State) Busy() bool {
	return s.Status == Loading
}

// Title describes the current listing for the header
func (s State) Title() string {
	switch s.Mode {
	case ModeSearch:
		return fmt.Sprintf("Search: %q", s.Term)
	case ModeYear:
		return "Movies from " + s.Term
	case ModeFiltered:
		parts := []string{}
		if s.Filter.Year != "" {
			parts = append(parts, s.Filter.Year)
		}
		if s.Filter.Type != "" {
			parts = append(parts, string(s.Filter.Type))
		}
		return "Filtered: " + strings.Join(parts, ", ")
	case ModeWatchlist:
		return "My Watchlist"
	default:
		return "Popular Movies"
	}
}
