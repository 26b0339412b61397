package source

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/adapter/source/gateway"
	"github.com/mmcdole/cinefind/internal/adapter/source/omdb"
	"github.com/mmcdole/cinefind/internal/domain"
)

// MovieSource combines the repository interfaces a movie backend must implement
type MovieSource interface {
	domain.MovieRepository    // Search, detail, popular, by year
	domain.FilteredRepository // Year and type filters
}

// SourceConfig contains the configuration needed to create a MovieSource
type SourceConfig struct {
	Type     adapter.SourceType
	ProxyURL string        // Proxy only
	APIKey   string        // Direct only
	BaseURL  string        // Direct only
	Timeout  time.Duration
}

// NewClient creates a new MovieSource based on the source type.
// Both backends return identical domain values.
func NewClient(cfg *SourceConfig, logger *slog.Logger) (MovieSource, error) {
	if cfg == nil {
		return nil, fmt.Errorf("source config is nil")
	}

	switch cfg.Type {
	case adapter.SourceTypeProxy, "":
		if cfg.ProxyURL == "" {
			return nil, fmt.Errorf("proxy URL is required")
		}
		return gateway.NewClient(cfg.ProxyURL, cfg.Timeout, logger), nil

	case adapter.SourceTypeDirect:
		if cfg.APIKey == "" {
			return nil, fmt.Errorf("direct mode requires an OMDb API key")
		}
		return omdb.NewClient(cfg.BaseURL, cfg.APIKey, logger, omdb.WithTimeout(cfg.Timeout)), nil

	default:
		return nil, fmt.Errorf("unknown source type: %s", cfg.Type)
	}
}

// NewClientFromConfig creates a MovieSource from the application config
func NewClientFromConfig(cfg *adapter.Config, logger *slog.Logger) (MovieSource, error) {
	return NewClient(&SourceConfig{
		Type:     cfg.Client.Source,
		ProxyURL: cfg.Client.ProxyURL,
		APIKey:   cfg.OMDb.APIKey,
		BaseURL:  cfg.OMDb.BaseURL,
		Timeout:  cfg.Client.Timeout,
	}, logger)
}
