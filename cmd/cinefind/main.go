package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/cinefind/internal/adapter"
	"github.com/mmcdole/cinefind/internal/adapter/source"
	"github.com/mmcdole/cinefind/internal/adapter/source/gateway"
	"github.com/mmcdole/cinefind/internal/service"
	"github.com/mmcdole/cinefind/internal/store"
	"github.com/mmcdole/cinefind/internal/tui"
	"github.com/mmcdole/cinefind/internal/watchlist"
)

// Version is set at build time via -ldflags
var Version = "dev"

// clearSpinnerLine clears the spinner line from the terminal
const clearSpinnerLine = "\r                                                  \r"

type options struct {
	reset      bool
	importPath string
}

func main() {
	var showVersion bool
	var opts options
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.BoolVar(&opts.reset, "reset", false, "clear the saved watchlist and exit")
	flag.StringVar(&opts.importPath, "import", "", "merge a JSON watchlist export into the saved watchlist and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("cinefind %s\n", Version)
		return
	}

	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	// Load configuration
	cfg, err := adapter.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger; the TUI owns the terminal so logs always go to a file
	logCfg := cfg.Logging.WithFileOutput(adapter.DefaultConfig().Logging.File)
	logger, err := adapter.SetupLogger(&logCfg)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = adapter.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting cinefind", "version", Version, "source", cfg.Client.Source)

	if opts.reset {
		if err := service.NewSessionService(cfg).Reset(); err != nil {
			return err
		}
		fmt.Println("✓ Watchlist cleared")
		return nil
	}

	// Direct mode talks to OMDb itself and needs a key
	if cfg.Client.Source == adapter.SourceTypeDirect && !cfg.HasAPIKey() {
		if err := runSetupFlow(cfg); err != nil {
			return err
		}
	}

	// Open the watchlist
	repo, err := store.NewWatchlistStore(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer repo.Close()

	wl, err := watchlist.Open(repo, logger)
	if err != nil {
		return fmt.Errorf("failed to load watchlist: %w", err)
	}

	if opts.importPath != "" {
		return importWatchlist(wl, opts.importPath)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("cinefind must be run in an interactive terminal")
	}

	// Create movie source client
	src, err := source.NewClientFromConfig(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to create movie source: %w", err)
	}

	if gw, ok := src.(*gateway.Client); ok {
		if err := checkProxyWithSpinner(gw); err != nil {
			logger.Warn("proxy unreachable", "url", cfg.Client.ProxyURL, "error", err)
			fmt.Printf("✗ Could not reach cinefind-proxy at %s: %v\n", cfg.Client.ProxyURL, err)
			fmt.Println("  Start cinefind-proxy, or set client.source: direct with an OMDb API key.")
			fmt.Println()
		}
	}

	// Create TUI model
	discovery := service.NewDiscoveryService(src, logger)
	launcher := adapter.NewLauncher(cfg.Client.Browser, cfg.Client.BrowserArgs, logger)
	model := tui.NewModel(discovery, wl, launcher, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI", "watchlist", wl.Count())

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}

// runSetupFlow asks for the OMDb API key and saves it
func runSetupFlow(cfg *adapter.Config) error {
	fmt.Println()
	fmt.Println("Welcome to CineFind!")
	fmt.Println()
	fmt.Println("Direct mode needs an OMDb API key (https://www.omdbapi.com/apikey.aspx).")

	for {
		fmt.Print("Enter your OMDb API key: ")
		key, err := readSecret()
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}
		if key == "" {
			fmt.Println("API key cannot be empty. Please try again.")
			continue
		}
		cfg.OMDb.APIKey = key
		break
	}

	if err := adapter.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println("✓ Configuration saved!")
	fmt.Println()
	return nil
}

// readSecret reads a line without echo when stdin is a terminal
func readSecret() (string, error) {
	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		b, err := term.ReadPassword(fd)
		fmt.Println()
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(b)), nil
	}

	input, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// importWatchlist merges a JSON export into the saved watchlist
func importWatchlist(wl *watchlist.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	added, err := wl.Import(f)
	if err != nil {
		return fmt.Errorf("failed to import watchlist: %w", err)
	}

	fmt.Printf("✓ Imported %d movies (%d in watchlist)\n", added, wl.Count())
	return nil
}

// checkProxyWithSpinner pings the proxy with a visual spinner
func checkProxyWithSpinner(client *gateway.Client) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resultCh := make(chan error, 1)

	go func() {
		_, err := client.Health(ctx)
		resultCh <- err
	}()

	frames := spinner.MiniDot.Frames
	frame := 0

	fmt.Printf("\r%s Connecting to proxy...", frames[frame])

	ticker := time.NewTicker(spinner.MiniDot.FPS)
	defer ticker.Stop()

	for {
		select {
		case err := <-resultCh:
			fmt.Print(clearSpinnerLine)
			return err

		case <-ticker.C:
			frame++
			fmt.Printf("\r%s Connecting to proxy...", frames[frame%len(frames)])

		case <-ctx.Done():
			fmt.Print(clearSpinnerLine)
			return fmt.Errorf("connection timed out")
		}
	}
}
