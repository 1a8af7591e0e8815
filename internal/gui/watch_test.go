package gui

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func TestWatchPaths(t *testing.T) {
	root := t.TempDir()
	gitDir := filepath.Join(root, ".git")
	if err := os.MkdirAll(filepath.Join(gitDir, "refs", "heads"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	got := slices.Sorted(watchPaths(root, gitDir))
	want := []string{root, gitDir, filepath.Join(gitDir, "refs", "heads")}
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("watchPaths = %v, want %v", got, want)
	}

	got = slices.Sorted(watchPaths(root, filepath.Join(root, "missing")))
	if !slices.Equal(got, []string{root}) {
		t.Fatalf("expected only the work tree, got %v", got)
	}
}

func TestShouldIgnoreWatchPath(t *testing.T) {
	tests := map[string]bool{
		"/repo/.git/index.lock":  true,
		"/repo/.git/GITGUI_MSG":  true,
		"/repo/.main.go.swp":     true,
		"/repo/notes.txt~":       true,
		"/repo/.git/index":       false,
		"/repo/.git/HEAD":        false,
		"/repo/internal/main.go": false,
	}
	for path, want := range tests {
		if got := shouldIgnoreWatchPath(path); got != want {
			t.Fatalf("shouldIgnoreWatchPath(%q) = %v, want %v", path, got, want)
		}
	}
}
