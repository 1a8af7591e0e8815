package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thiagokokada/gitgui-go/internal/gui"
)

func captureRun(t *testing.T, args ...string) (gui.RunConfig, bool) {
	t.Helper()
	var (
		got    gui.RunConfig
		called bool
	)
	err := run(args, func(cfg gui.RunConfig) error {
		got = cfg
		called = true
		return nil
	})
	require.NoError(t, err)
	return got, called
}

func TestRunDefaults(t *testing.T) {
	cfg, called := captureRun(t)
	require.True(t, called)
	assert.Equal(t, gui.RunConfig{
		RepoPath:        ".",
		ThemePreference: gui.ThemeAuto,
		AutoReload:      true,
		SyntaxHighlight: true,
	}, cfg)
}

func TestRunFlags(t *testing.T) {
	cfg, called := captureRun(t,
		"-mode", "dark", "-nowatch", "-nosyntax", "-nativediff",
		"-amend", "-icon-theme", "Adwaita", "-verbose", "/tmp/repo",
	)
	require.True(t, called)
	assert.Equal(t, gui.RunConfig{
		RepoPath:        "/tmp/repo",
		ThemePreference: gui.ThemeDark,
		NativeDiff:      true,
		Amend:           true,
		IconTheme:       "Adwaita",
		Verbose:         true,
	}, cfg)
}

func TestRunVersionAndHelpDoNotStart(t *testing.T) {
	_, called := captureRun(t, "-version")
	assert.False(t, called)
	_, called = captureRun(t, "-h")
	assert.False(t, called)
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	err := run([]string{"-bogus"}, func(gui.RunConfig) error {
		t.Fatal("should not start")
		return nil
	})
	assert.Error(t, err)
}
