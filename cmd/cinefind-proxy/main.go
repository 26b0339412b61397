package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/adapter/source/omdb"
	"github.com/mmcdole/cinefind/internal/proxy"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.Parse()

	if showVersion {
		fmt.Printf("cinefind-proxy %s\n", Version)
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// The proxy logs to proxy.log_file at the shared level
	logCfg := cfg.Logging
	logCfg.File = cfg.Proxy.LogFile
	logger, err := adapter.SetupLogger(&logCfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	slog.SetDefault(logger)

	if !cfg.HasAPIKey() {
		return errors.New("no OMDb API key configured (set OMDB_API_KEY or omdb.api_key)")
	}

	upstream := omdb.NewClient(cfg.OMDb.BaseURL, cfg.OMDb.APIKey, logger, omdb.WithTimeout(cfg.OMDb.Timeout))
	svc := proxy.NewService(upstream, omdb.NewRandomPicker(), logger)
	handler := proxy.NewHandler(svc, cfg.Proxy.Service, logger)
	server := proxy.NewServer(cfg.ListenAddr(), proxy.NewRouter(handler, logger), logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting cinefind-proxy", "version", Version, "addr", cfg.ListenAddr(), "upstream", cfg.OMDb.BaseURL)
	return server.Run(ctx)
}
