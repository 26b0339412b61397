package service

import "github.com/mmcdole/cinefind/internal/adapter"

// SessionService manages local user data
type SessionService struct {
	cfg *adapter.Config
}

// NewSessionService creates a new SessionService
func NewSessionService(cfg *adapter.Config) *SessionService {
	return &SessionService{cfg: cfg}
}

// Reset removes the persisted watchlist
func (s *SessionService) Reset() error {
	return adapter.ClearWatchlist(s.cfg)
}
