package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	Proxy   ProxyConfig   `mapstructure:"proxy"`
	OMDb    OMDbConfig    `mapstructure:"omdb"`
	Client  ClientConfig  `mapstructure:"client"`
	Storage StorageConfig `mapstructure:"storage"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ProxyConfig holds the HTTP proxy server configuration
type ProxyConfig struct {
	Listen  string `mapstructure:"listen"`   // Interface to bind, empty for all
	Port    int    `mapstructure:"port"`     // Listen port
	LogFile string `mapstructure:"log_file"` // "stdout" or a file path
	Service string `mapstructure:"service"`  // Name reported by /health
}

// OMDbConfig holds upstream movie API configuration
type OMDbConfig struct {
	APIKey  string        `mapstructure:"api_key"`
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SourceType selects how the TUI reaches movie data
type SourceType string

const (
	SourceTypeProxy  SourceType = "proxy"  // through cinefind-proxy
	SourceTypeDirect SourceType = "direct" // straight to OMDb with omdb.api_key
)

// ClientConfig holds TUI client configuration
type ClientConfig struct {
	Source      SourceType    `mapstructure:"source"`
	ProxyURL    string        `mapstructure:"proxy_url"` // Base URL of cinefind-proxy
	Timeout     time.Duration `mapstructure:"timeout"`
	Browser     string        `mapstructure:"browser"`      // Command for IMDb links, empty for system default
	BrowserArgs []string      `mapstructure:"browser_args"` // Additional browser arguments
}

// StorageConfig holds local persistence configuration
type StorageConfig struct {
	Path string `mapstructure:"path"` // bbolt file, empty for memory-only
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	File       string `mapstructure:"file"`
	Level      string `mapstructure:"level"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Proxy: ProxyConfig{
			Listen:  "",
			Port:    3000,
			LogFile: "stdout",
			Service: "Movie Discovery API (OMDb)",
		},
		OMDb: OMDbConfig{
			APIKey:  "",
			BaseURL: "http://www.omdbapi.com/",
			Timeout: 10 * time.Second,
		},
		Client: ClientConfig{
			Source:   SourceTypeProxy,
			ProxyURL: "http://localhost:3000",
			Timeout:  30 * time.Second,
		},
		Storage: StorageConfig{
			Path: filepath.Join(defaultDataPath(), "watchlist.db"),
		},
		Logging: LoggingConfig{
			File:       filepath.Join(defaultDataPath(), "cinefind.log"),
			Level:      "INFO",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// defaultDataPath returns the default data directory for the current OS
func defaultDataPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinefind")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".local", "share", "cinefind")
	}
}

// defaultConfigPath returns the default config file path for the current OS
func defaultConfigPath() string {
	switch runtime.GOOS {
	case "windows":
		return filepath.Join(os.Getenv("APPDATA"), "cinefind")
	default:
		home, _ := os.UserHomeDir()
		return filepath.Join(home, ".config", "cinefind")
	}
}

// LoadConfig loads configuration from file and environment
func LoadConfig() (*Config, error) {
	return loadConfig(viper.New(), defaultConfigPath(), ".")
}

func loadConfig(v *viper.Viper, paths ...string) (*Config, error) {
	cfg := DefaultConfig()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	// Environment variable overrides (CINEFIND_OMDB_API_KEY, ...)
	v.SetEnvPrefix("CINEFIND")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	registerDefaults(v, cfg)

	// Unprefixed names used by common OMDb deployments
	_ = v.BindEnv("omdb.api_key", "CINEFIND_OMDB_API_KEY", "OMDB_API_KEY")
	_ = v.BindEnv("proxy.port", "CINEFIND_PROXY_PORT", "PORT")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// registerDefaults makes every key known to viper so env overrides apply on Unmarshal
func registerDefaults(v *viper.Viper, cfg *Config) {
	v.SetDefault("proxy.listen", cfg.Proxy.Listen)
	v.SetDefault("proxy.port", cfg.Proxy.Port)
	v.SetDefault("proxy.log_file", cfg.Proxy.LogFile)
	v.SetDefault("proxy.service", cfg.Proxy.Service)

	v.SetDefault("omdb.api_key", cfg.OMDb.APIKey)
	v.SetDefault("omdb.base_url", cfg.OMDb.BaseURL)
	v.SetDefault("omdb.timeout", cfg.OMDb.Timeout)

	v.SetDefault("client.source", string(cfg.Client.Source))
	v.SetDefault("client.proxy_url", cfg.Client.ProxyURL)
	v.SetDefault("client.timeout", cfg.Client.Timeout)
	v.SetDefault("client.browser", cfg.Client.Browser)
	v.SetDefault("client.browser_args", cfg.Client.BrowserArgs)

	v.SetDefault("storage.path", cfg.Storage.Path)

	v.SetDefault("logging.file", cfg.Logging.File)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.SetDefault("logging.max_backups", cfg.Logging.MaxBackups)
}

// SaveConfig saves the current configuration to the default config file
func SaveConfig(cfg *Config) error {
	return saveConfig(cfg, defaultConfigPath())
}

func saveConfig(cfg *Config, configPath string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(configPath, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := viper.New()

	// Set fields individually to ensure correct key names (snake_case)
	v.Set("proxy.listen", cfg.Proxy.Listen)
	v.Set("proxy.port", cfg.Proxy.Port)
	v.Set("proxy.log_file", cfg.Proxy.LogFile)
	v.Set("proxy.service", cfg.Proxy.Service)

	v.Set("omdb.api_key", cfg.OMDb.APIKey)
	v.Set("omdb.base_url", cfg.OMDb.BaseURL)
	v.Set("omdb.timeout", cfg.OMDb.Timeout.String())

	v.Set("client.source", string(cfg.Client.Source))
	v.Set("client.proxy_url", cfg.Client.ProxyURL)
	v.Set("client.timeout", cfg.Client.Timeout.String())
	v.Set("client.browser", cfg.Client.Browser)
	v.Set("client.browser_args", cfg.Client.BrowserArgs)

	v.Set("storage.path", cfg.Storage.Path)

	v.Set("logging.file", cfg.Logging.File)
	v.Set("logging.level", cfg.Logging.Level)
	v.Set("logging.max_size_mb", cfg.Logging.MaxSizeMB)
	v.Set("logging.max_backups", cfg.Logging.MaxBackups)

	configFile := filepath.Join(configPath, "config.yaml")
	if err := v.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// HasAPIKey returns true if the upstream API key is set
func (c *Config) HasAPIKey() bool {
	return c.OMDb.APIKey != ""
}

// ListenAddr returns the proxy listen address
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Proxy.Listen, c.Proxy.Port)
}

// ClearWatchlist removes the persisted watchlist file
func ClearWatchlist(cfg *Config) error {
	if cfg.Storage.Path == "" {
		return nil
	}
	if err := os.Remove(cfg.Storage.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear watchlist: %w", err)
	}
	return nil
}
