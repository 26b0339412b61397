package tui

import (
	"errors"
	"log/slog"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mmcdole/cinefind/internal/browse"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/service"
	"github.com/mmcdole/cinefind/internal/tui/components"
	"github.com/mmcdole/cinefind/internal/tui/styles"
	"github.com/mmcdole/cinefind/internal/watchlist"
)

// ApplicationState represents the current state of the application
type ApplicationState int

const (
	StateBrowsing ApplicationState = iota
	StateHelp
)

// Model is the main Bubble Tea model for the application
type Model struct {
	// Application state
	State ApplicationState
	Ready bool

	// Services
	Discovery *service.DiscoveryService
	Watchlist *watchlist.Store
	Opener    URLOpener
	logger    *slog.Logger

	// View state of the results area
	Browse browse.State

	// UI Components
	Grid       components.Grid
	Inspector  components.Inspector
	InputModal components.InputModal
	Spinner    spinner.Model

	// Dimensions
	Width  int
	Height int

	// Transient status line
	Notice   browse.Notice
	noticeID int

	// Popular listing issued on startup
	initial *browse.Request
}

// NewModel creates a new application model
func NewModel(discovery *service.DiscoveryService, wl *watchlist.Store, opener URLOpener, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SpinnerStyle

	m := Model{
		State:      StateBrowsing,
		Discovery:  discovery,
		Watchlist:  wl,
		Opener:     opener,
		logger:     logger,
		Grid:       components.NewGrid(wl.IsMember),
		Inspector:  components.NewInspector(),
		InputModal: components.NewInputModal(),
		Spinner:    s,
	}
	m.Browse, m.initial = browse.New().StartPopular()
	return m
}

// Init fetches the popular listing
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.fetch(m.initial), m.Spinner.Tick)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case spinner.TickMsg:
		var cmds []tea.Cmd
		if m.Browse.Busy() || m.Browse.LoadMoreInFlight {
			var cmd tea.Cmd
			m.Spinner, cmd = m.Spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
		var cmd tea.Cmd
		m.Inspector, cmd, _ = m.Inspector.Update(msg)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case ListingLoadedMsg:
		return m.handleListing(msg)

	case DetailLoadedMsg:
		return m.handleDetail(msg)

	case OpenedMsg:
		if msg.Err != nil {
			m.logger.Error("failed to open browser", "url", msg.URL, "error", msg.Err)
			cmd := m.setNotice(browse.ErrorNotice("Failed to open browser"))
			return m, cmd
		}
		return m, nil

	case ClearNoticeMsg:
		if msg.ID == m.noticeID {
			m.Notice = browse.Notice{}
		}
		return m, nil
	}

	return m, nil
}

// handleListing applies a listing response to the browse state
func (m Model) handleListing(msg ListingLoadedMsg) (tea.Model, tea.Cmd) {
	if m.Browse.Stale(msg.Req) {
		m.logger.Debug("dropping superseded response", "mode", msg.Req.Mode, "seq", msg.Req.Seq)
		return m, nil
	}

	if msg.Err != nil && !errors.Is(msg.Err, domain.ErrUpstreamNotFound) {
		m.logger.Error("listing request failed",
			"mode", msg.Req.Mode, "term", msg.Req.Term, "page", msg.Req.Page, "error", msg.Err)
	}

	next, notice := m.Browse.Resolve(msg.Req, msg.Page, msg.Err)
	m.Browse = next
	m.Grid.SetMovies(m.Browse.Movies, msg.Req.LoadMore)

	if notice.IsZero() {
		return m, nil
	}
	cmd := m.setNotice(notice)
	return m, cmd
}

// handleDetail fills the inspector, or closes it with a notice on failure
func (m Model) handleDetail(msg DetailLoadedMsg) (tea.Model, tea.Cmd) {
	if !m.Inspector.IsVisible() || m.Inspector.MovieID() != msg.ID {
		return m, nil
	}
	if msg.Err != nil {
		m.Inspector.Hide()
		cmd := m.setNotice(browse.ErrorNotice(browse.MsgDetailFailed))
		return m, cmd
	}
	m.Inspector.SetDetail(msg.Detail)
	return m, nil
}

// fetch turns a browse request into a command; nil requests yield nil
func (m Model) fetch(req *browse.Request) tea.Cmd {
	if req == nil {
		return nil
	}
	return FetchListingCmd(m.Discovery, *req)
}

// start applies a state transition and issues its request
func (m *Model) start(next browse.State, req *browse.Request) tea.Cmd {
	m.Browse = next
	if req == nil {
		return nil
	}
	if !req.LoadMore {
		m.Grid.SetMovies(nil, false)
	}
	return tea.Batch(m.fetch(req), m.Spinner.Tick)
}

// setNotice shows a transient notice and schedules its removal
func (m *Model) setNotice(n browse.Notice) tea.Cmd {
	m.noticeID++
	m.Notice = n
	return ClearNoticeCmd(m.noticeID, NoticeDuration)
}

// openIMDb opens the movie's IMDb page
func (m Model) openIMDb(movie domain.MovieSummary) tea.Cmd {
	if m.Opener == nil || movie.ID == "" {
		return nil
	}
	return OpenURLCmd(m.Opener, movie.IMDbURL())
}

// toggleWatchlist adds or removes movie and refreshes every view of membership
func (m *Model) toggleWatchlist(movie domain.MovieSummary) tea.Cmd {
	added, err := m.Watchlist.Toggle(movie)
	if err != nil {
		m.logger.Error("failed to save watchlist", "id", movie.ID, "error", err)
		return m.setNotice(browse.ErrorNotice("Failed to save watchlist"))
	}
	m.Inspector.SetMember(m.Watchlist.IsMember(movie.ID))
	return m.setNotice(browse.ToggleNotice(added))
}
