package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/mmcdole/cinefind/internal/domain"
)

// Bucket and key names
var (
	bucketWatchlist = []byte("watchlist")
	keyWatchlist    = []byte("watchlist")
)

// WatchlistStore implements domain.WatchlistRepository using BoltDB.
// The whole watchlist is stored as one JSON array under a single key.
type WatchlistStore struct {
	db *bolt.DB
	mu sync.RWMutex // Protects cache

	// Last loaded or saved encoding; the only copy in memory-only mode
	cache []byte
}

// NewWatchlistStore opens (or creates) the database at path.
// An empty path yields a memory-only store.
func NewWatchlistStore(path string) (*WatchlistStore, error) {
	if path == "" {
		// Memory-only mode (no persistence)
		return &WatchlistStore{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketWatchlist)
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &WatchlistStore{db: db}, nil
}

// Close releases the database
func (s *WatchlistStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load returns the persisted entries in stored order. A missing or
// unreadable value yields an empty watchlist.
func (s *WatchlistStore) Load() ([]domain.WatchlistEntry, error) {
	s.mu.RLock()
	data := s.cache
	s.mu.RUnlock()

	if data == nil && s.db != nil {
		err := s.db.View(func(tx *bolt.Tx) error {
			b := tx.Bucket(bucketWatchlist)
			if b == nil {
				return nil
			}
			if v := b.Get(keyWatchlist); v != nil {
				data = make([]byte, len(v))
				copy(data, v)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to read watchlist: %w", err)
		}

		// Promote to memory cache
		s.mu.Lock()
		s.cache = data
		s.mu.Unlock()
	}

	if len(data) == 0 {
		return []domain.WatchlistEntry{}, nil
	}

	var entries []domain.WatchlistEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		// A corrupt value is treated like an empty list; the next Save overwrites it
		return []domain.WatchlistEntry{}, nil
	}
	if entries == nil {
		entries = []domain.WatchlistEntry{}
	}
	return entries, nil
}

// Save overwrites the persisted watchlist with entries
func (s *WatchlistStore) Save(entries []domain.WatchlistEntry) error {
	if entries == nil {
		entries = []domain.WatchlistEntry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to encode watchlist: %w", err)
	}

	if s.db != nil {
		err := s.db.Update(func(tx *bolt.Tx) error {
			b, err := tx.CreateBucketIfNotExists(bucketWatchlist)
			if err != nil {
				return err
			}
			return b.Put(keyWatchlist, data)
		})
		if err != nil {
			return fmt.Errorf("failed to write watchlist: %w", err)
		}
	}

	s.mu.Lock()
	s.cache = data
	s.mu.Unlock()
	return nil
}
