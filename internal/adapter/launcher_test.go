package adapter

import (
	"errors"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultOpenCommand(t *testing.T) {
	url := "https://www.imdb.com/title/tt0133093/"

	tests := []struct {
		goos string
		want []string
	}{
		{goos: "darwin", want: []string{"open", url}},
		{goos: "windows", want: []string{"cmd", "/c", "start", "", url}},
		{goos: "linux", want: []string{"xdg-open", url}},
		{goos: "freebsd", want: []string{"xdg-open", url}},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultOpenCommand(tt.goos, url).Args)
		})
	}
}

func TestLauncher_ConfiguredCommand(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("macOS falls back to open -a for commands outside PATH")
	}

	var got *exec.Cmd
	l := NewLauncher("/bin/true", []string{"--new-tab"}, NullLogger())
	l.start = func(cmd *exec.Cmd) error {
		got = cmd
		return nil
	}

	require.NoError(t, l.Open("https://www.imdb.com/title/tt0133093/"))
	require.NotNil(t, got)
	assert.Equal(t, "true", filepath.Base(got.Args[0]))
	assert.Equal(t, []string{"--new-tab", "https://www.imdb.com/title/tt0133093/"}, got.Args[1:])
}

func TestLauncher_Errors(t *testing.T) {
	l := NewLauncher("", nil, NullLogger())
	l.start = func(*exec.Cmd) error { return errors.New("no browser") }

	assert.Error(t, l.Open(""))
	assert.ErrorContains(t, l.Open("https://example.com"), "no browser")
}
