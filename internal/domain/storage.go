package domain

// WatchlistRepository persists the watchlist as a whole.
// Save overwrites the stored set; there are no incremental writes.
type WatchlistRepository interface {
	// Load returns the persisted entries in stored order.
	// A missing set is not an error and yields an empty slice.
	Load() ([]WatchlistEntry, error)

	// Save replaces the persisted set with entries
	Save(entries []WatchlistEntry) error

	// Close releases any underlying resources
	Close() error
}
