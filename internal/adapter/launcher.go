package adapter

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Launcher opens web pages (IMDb titles, posters) in a browser
type Launcher struct {
	command string   // configured browser command, empty for system default
	args    []string // additional arguments for the browser
	logger  *slog.Logger

	// start runs the prepared command; replaced in tests
	start func(cmd *exec.Cmd) error
}

// NewLauncher creates a new Launcher
func NewLauncher(command string, args []string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command: command,
		args:    args,
		logger:  logger,
		start:   func(cmd *exec.Cmd) error { return cmd.Start() },
	}
}

// Open opens url in the configured browser or the system default
func (l *Launcher) Open(url string) error {
	if url == "" {
		return fmt.Errorf("nothing to open")
	}

	cmd := l.buildCommand(url)
	l.logger.Info("opening url", "command", cmd.Path, "args", cmd.Args[1:])

	if err := l.start(cmd); err != nil {
		l.logger.Error("failed to open url", "url", url, "error", err)
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

// buildCommand builds the launch command for url
func (l *Launcher) buildCommand(url string) *exec.Cmd {
	// User configured a specific browser
	if l.command != "" {
		args := append(append([]string{}, l.args...), url)

		// On macOS, launch GUI apps with 'open -a' if command not in PATH
		if runtime.GOOS == "darwin" {
			if _, err := exec.LookPath(l.command); err != nil {
				cmdArgs := []string{"-a", l.command}
				if len(l.args) > 0 {
					cmdArgs = append(cmdArgs, "--args")
					cmdArgs = append(cmdArgs, l.args...)
				}
				cmdArgs = append(cmdArgs, url)
				return exec.Command("open", cmdArgs...)
			}
		}
		return exec.Command(l.command, args...)
	}

	return defaultOpenCommand(runtime.GOOS, url)
}

// defaultOpenCommand opens url with the system default handler
func defaultOpenCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "darwin":
		return exec.Command("open", url)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", url)
	default:
		// Linux and other Unix-like systems
		return exec.Command("xdg-open", url)
	}
}
