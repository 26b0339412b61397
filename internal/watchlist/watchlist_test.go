package watchlist

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/domain"
	"github.com/mmcdole/cinefind/internal/store"
)

var shawshank = domain.MovieSummary{
	ID:    "tt0111161",
	Title: "The Shawshank Redemption",
	Year:  "1994",
	Type:  domain.MediaTypeMovie,
}

var darkKnight = domain.MovieSummary{
	ID:        "tt0468569",
	Title:     "The Dark Knight",
	Year:      "2008",
	PosterURL: "https://img/dk.jpg",
	Type:      domain.MediaTypeMovie,
}

// memoryRepo records saves and can be told to fail
type memoryRepo struct {
	loaded  []domain.WatchlistEntry
	saved   [][]domain.WatchlistEntry
	failErr error
}

func (r *memoryRepo) Load() ([]domain.WatchlistEntry, error) { return r.loaded, nil }

func (r *memoryRepo) Save(entries []domain.WatchlistEntry) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.saved = append(r.saved, append([]domain.WatchlistEntry{}, entries...))
	return nil
}

func (r *memoryRepo) Close() error { return nil }

func openStore(t *testing.T, repo domain.WatchlistRepository) *Store {
	t.Helper()
	s, err := Open(repo, adapter.NullLogger())
	require.NoError(t, err)
	return s
}

func TestToggle_AddThenRemove(t *testing.T) {
	repo := &memoryRepo{}
	s := openStore(t, repo)

	added, err := s.Toggle(shawshank)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, s.IsMember("tt0111161"))
	assert.Equal(t, 1, s.Count())

	added, err = s.Toggle(shawshank)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, s.IsMember("tt0111161"))
	assert.Equal(t, 0, s.Count())

	// Every toggle persisted the whole resulting set
	require.Len(t, repo.saved, 2)
	assert.Equal(t, []domain.WatchlistEntry{domain.NewWatchlistEntry(shawshank)}, repo.saved[0])
	assert.Empty(t, repo.saved[1])
}

func TestToggle_KeepsInsertionOrder(t *testing.T) {
	s := openStore(t, &memoryRepo{})

	_, err := s.Toggle(shawshank)
	require.NoError(t, err)
	_, err = s.Toggle(darkKnight)
	require.NoError(t, err)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "tt0111161", entries[0].ID)
	assert.Equal(t, "tt0468569", entries[1].ID)
	assert.Equal(t, "https://img/dk.jpg", entries[1].PosterURL)
}

func TestToggle_SaveFailureRollsBack(t *testing.T) {
	repo := &memoryRepo{loaded: []domain.WatchlistEntry{domain.NewWatchlistEntry(darkKnight)}}
	s := openStore(t, repo)
	repo.failErr = errors.New("disk full")

	_, err := s.Toggle(shawshank)
	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	assert.False(t, s.IsMember("tt0111161"))
	assert.Equal(t, 1, s.Count())

	_, err = s.Toggle(darkKnight)
	require.Error(t, err)
	assert.True(t, s.IsMember("tt0468569"))
}

func TestToggle_SequenceNeverPersistsDuplicates(t *testing.T) {
	movies := map[string]domain.MovieSummary{
		"A": {ID: "tt0000001", Title: "A"},
		"B": {ID: "tt0000002", Title: "B"},
		"C": {ID: "tt0000003", Title: "C"},
	}

	tests := []struct {
		name     string
		sequence []string
		members  []string
	}{
		{"interleaved", []string{"A", "B", "A", "A", "C", "B"}, []string{"A", "C"}},
		{"all removed", []string{"A", "B", "C", "C", "B", "A"}, nil},
		{"repeated add", []string{"B", "B", "B"}, []string{"B"}},
		{"alternating", []string{"A", "C", "A", "C", "A"}, []string{"A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &memoryRepo{}
			s := openStore(t, repo)

			for _, key := range tt.sequence {
				_, err := s.Toggle(movies[key])
				require.NoError(t, err)
			}

			require.Len(t, repo.saved, len(tt.sequence))
			for i, snapshot := range repo.saved {
				seen := make(map[string]bool, len(snapshot))
				for _, e := range snapshot {
					assert.False(t, seen[e.ID], "save %d repeats %s", i, e.ID)
					seen[e.ID] = true
				}
			}

			assert.Equal(t, len(tt.members), s.Count())
			for _, key := range tt.members {
				assert.True(t, s.IsMember(movies[key].ID), key)
			}
		})
	}
}

func TestToggle_RejectsMissingID(t *testing.T) {
	repo := &memoryRepo{}
	s := openStore(t, repo)

	added, err := s.Toggle(domain.MovieSummary{Title: "no id"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidRequest))
	assert.False(t, added)
	assert.Equal(t, 0, s.Count())
	assert.Empty(t, repo.saved)
}

func TestOpen_CollapsesDuplicates(t *testing.T) {
	first := domain.NewWatchlistEntry(shawshank)
	later := first
	later.Title = "Shawshank (dup)"

	repo := &memoryRepo{loaded: []domain.WatchlistEntry{
		first,
		domain.NewWatchlistEntry(darkKnight),
		later,
		{Title: "no id"},
	}}
	s := openStore(t, repo)

	entries := s.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, "The Shawshank Redemption", entries[0].Title)
	assert.Equal(t, "tt0468569", entries[1].ID)

	// Toggling a collapsed ID removes it entirely
	added, err := s.Toggle(shawshank)
	require.NoError(t, err)
	assert.False(t, added)
	assert.False(t, s.IsMember(shawshank.ID))
}

func TestEntries_ReturnsCopy(t *testing.T) {
	s := openStore(t, &memoryRepo{})
	_, err := s.Toggle(shawshank)
	require.NoError(t, err)

	entries := s.Entries()
	entries[0].Title = "mutated"

	assert.Equal(t, "The Shawshank Redemption", s.Entries()[0].Title)
}

func TestFind(t *testing.T) {
	s := openStore(t, &memoryRepo{})
	for _, m := range []domain.MovieSummary{shawshank, darkKnight} {
		_, err := s.Toggle(m)
		require.NoError(t, err)
	}

	found := s.Find("knight")
	require.Len(t, found, 1)
	assert.Equal(t, "tt0468569", found[0].ID)

	assert.Len(t, s.Find(""), 2)
	assert.Empty(t, s.Find("godfather"))
}

func TestImport(t *testing.T) {
	repo := &memoryRepo{loaded: []domain.WatchlistEntry{domain.NewWatchlistEntry(shawshank)}}
	s := openStore(t, repo)

	export := `[
		{"imdbID":"tt0111161","Title":"The Shawshank Redemption","Year":"1994","Poster":"N/A","Type":"movie"},
		{"imdbID":"tt0468569","Title":"The Dark Knight","Year":"2008","Poster":"https://img/dk.jpg","Type":"movie"},
		{"imdbID":"tt0468569","Title":"The Dark Knight","Year":"2008","Poster":"https://img/dk.jpg","Type":"movie"}
	]`
	added, err := s.Import(strings.NewReader(export))
	require.NoError(t, err)
	assert.Equal(t, 1, added)
	assert.Equal(t, 2, s.Count())
	require.Len(t, repo.saved, 1)

	added, err = s.Import(strings.NewReader(export))
	require.NoError(t, err)
	assert.Zero(t, added)
	assert.Len(t, repo.saved, 1)

	_, err = s.Import(strings.NewReader("not json"))
	assert.Error(t, err)
}

func TestStore_SurvivesRestartWithBolt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "watchlist.db")

	repo, err := store.NewWatchlistStore(path)
	require.NoError(t, err)
	s := openStore(t, repo)
	_, err = s.Toggle(shawshank)
	require.NoError(t, err)
	require.NoError(t, repo.Close())

	repo, err = store.NewWatchlistStore(path)
	require.NoError(t, err)
	defer repo.Close()
	s = openStore(t, repo)

	assert.True(t, s.IsMember("tt0111161"))
	assert.Equal(t, []domain.WatchlistEntry{domain.NewWatchlistEntry(shawshank)}, s.Entries())
}
