package watchlist

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/cinefind/internal/domain"
)

// Store is the user's watchlist: an ordered set of entries keyed by ID.
// Every mutation persists the complete resulting set.
type Store struct {
	repo   domain.WatchlistRepository
	logger *slog.Logger

	mu      sync.RWMutex
	entries []domain.WatchlistEntry
	index   map[string]int // ID -> position in entries
}

// Open loads the persisted watchlist once. Duplicate IDs in the
// persisted set are collapsed, keeping the first occurrence.
func Open(repo domain.WatchlistRepository, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	loaded, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}

	s := &Store{repo: repo, logger: logger}
	s.replace(dedupe(loaded))
	if dropped := len(loaded) - len(s.entries); dropped > 0 {
		logger.Warn("collapsed duplicate watchlist entries", "dropped", dropped)
	}
	logger.Debug("loaded watchlist", "count", len(s.entries))
	return s, nil
}

// IsMember reports whether id is in the watchlist
func (s *Store) IsMember(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[id]
	return ok
}

// Count returns the number of entries
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Entries returns a copy of the entries in insertion order
func (s *Store) Entries() []domain.WatchlistEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.WatchlistEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// Toggle adds the movie if absent, removes it if present, and persists.
// It reports whether the movie is now a member. If persisting fails the
// watchlist is left unchanged and the error is returned. A movie without
// an ID is rejected with domain.ErrInvalidRequest.
func (s *Store) Toggle(m domain.MovieSummary) (bool, error) {
	if m.ID == "" {
		return false, fmt.Errorf("%w: movie id is required", domain.ErrInvalidRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	prev := s.entries
	next := make([]domain.WatchlistEntry, 0, len(prev)+1)

	_, present := s.index[m.ID]
	if present {
		for _, e := range prev {
			if e.ID != m.ID {
				next = append(next, e)
			}
		}
	} else {
		next = append(next, prev...)
		next = append(next, domain.NewWatchlistEntry(m))
	}

	if err := s.repo.Save(next); err != nil {
		s.logger.Error("failed to save watchlist", "id", m.ID, "error", err)
		return present, fmt.Errorf("failed to save watchlist: %w", err)
	}

	s.replace(next)
	if present {
		s.logger.Info("removed from watchlist", "id", m.ID, "title", m.Title)
	} else {
		s.logger.Info("added to watchlist", "id", m.ID, "title", m.Title)
	}
	return !present, nil
}

// Find returns entries whose title fuzzily matches query, closest first.
// A blank query returns every entry.
func (s *Store) Find(query string) []domain.WatchlistEntry {
	entries := s.Entries()
	query = strings.TrimSpace(query)
	if query == "" {
		return entries
	}

	titles := make([]string, len(entries))
	for i, e := range entries {
		titles[i] = e.Title
	}

	ranks := fuzzy.RankFindFold(query, titles)
	sort.Stable(ranks)

	out := make([]domain.WatchlistEntry, len(ranks))
	for i, r := range ranks {
		out[i] = entries[r.OriginalIndex]
	}
	return out
}

// Import merges entries read as a JSON array (the browser export format)
// and persists once. Entries already present are skipped. It returns the
// number of entries added.
func (s *Store) Import(r io.Reader) (int, error) {
	var incoming []domain.WatchlistEntry
	if err := json.NewDecoder(r).Decode(&incoming); err != nil {
		return 0, fmt.Errorf("failed to decode watchlist: %w", err)
	}
	for i := range incoming {
		if incoming[i].PosterURL == "N/A" {
			incoming[i].PosterURL = ""
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := dedupe(append(append([]domain.WatchlistEntry{}, s.entries...), incoming...))
	added := len(merged) - len(s.entries)
	if added == 0 {
		return 0, nil
	}

	if err := s.repo.Save(merged); err != nil {
		return 0, fmt.Errorf("failed to save watchlist: %w", err)
	}
	s.replace(merged)
	s.logger.Info("imported watchlist", "added", added)
	return added, nil
}

// replace swaps in entries and rebuilds the ID index. Caller holds mu.
func (s *Store) replace(entries []domain.WatchlistEntry) {
	s.entries = entries
	s.index = make(map[string]int, len(entries))
	for i, e := range entries {
		s.index[e.ID] = i
	}
}

// dedupe drops entries without an ID and repeated IDs, first wins
func dedupe(entries []domain.WatchlistEntry) []domain.WatchlistEntry {
	seen := make(map[string]bool, len(entries))
	out := make([]domain.WatchlistEntry, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" || seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
