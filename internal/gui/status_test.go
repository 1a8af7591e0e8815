package gui

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/thiagokokada/gitgui-go/internal/git"
)

func TestBuildStatusRows(t *testing.T) {
	t.Parallel()

	status := git.Status{Entries: []git.StatusEntry{
		{Path: "main.c", Staged: true, Modified: true},
		{Path: "gone.txt", Staged: true, Deleted: true},
		{Path: "new.go", OrigPath: "old.go", Staged: true},
		{Path: "README", Modified: true},
		{Path: "conflict.c", Staged: true, Modified: true, Conflicted: true},
		{Path: "notes.txt", Modified: true, Untracked: true},
	}}
	got := buildStatusRows(t.TempDir(), status)
	want := []statusRow{
		{id: groupUnmerged, label: "Unmerged (1)"},
		{id: "unmerged:conflict.c", parent: groupUnmerged, label: "conflict.c", path: "conflict.c", icon: "modified.svg"},
		{id: groupStaged, label: "Staged (3)"},
		{id: "staged:main.c", parent: groupStaged, label: "main.c", path: "main.c", icon: "staged.svg"},
		{id: "staged:gone.txt", parent: groupStaged, label: "gone.txt", path: "gone.txt", icon: "circle-slash-red.svg"},
		{id: "staged:new.go", parent: groupStaged, label: "old.go -> new.go", path: "new.go", icon: "staged.svg"},
		{id: groupModified, label: "Modified (2)"},
		{id: "modified:main.c", parent: groupModified, label: "main.c", path: "main.c", icon: "file-code.svg"},
		{id: "modified:README", parent: groupModified, label: "README", path: "README", icon: "file-text.svg"},
		{id: groupUntracked, label: "Untracked (1)"},
		{id: "untracked:notes.txt", parent: groupUntracked, label: "notes.txt", path: "notes.txt", icon: "question-plain.svg"},
	}
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d: %+v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestBuildStatusRowsSniffsUnderRepoRoot(t *testing.T) {
	t.Parallel()

	// The repository is not the working directory, so "logo" only resolves
	// when joined with the root.
	root := t.TempDir()
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	if err := os.WriteFile(filepath.Join(root, "logo"), png, 0o644); err != nil {
		t.Fatalf("write logo: %v", err)
	}
	if _, err := os.Stat("logo"); err == nil {
		t.Skip("working directory has its own logo file")
	}

	rows := buildStatusRows(root, git.Status{Entries: []git.StatusEntry{
		{Path: "logo", Modified: true},
	}})
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2: %+v", len(rows), rows)
	}
	want := statusRow{id: "modified:logo", parent: groupModified, label: "logo", path: "logo", icon: "file-media.svg"}
	if rows[1] != want {
		t.Fatalf("row = %+v, want %+v", rows[1], want)
	}
}

func TestBuildStatusRowsClean(t *testing.T) {
	t.Parallel()

	if rows := buildStatusRows(t.TempDir(), git.Status{Branch: "main"}); len(rows) != 0 {
		t.Fatalf("expected no rows for a clean tree, got %+v", rows)
	}
}

func TestStatusRowIsGroup(t *testing.T) {
	t.Parallel()

	if !(statusRow{id: groupStaged}).isGroup() {
		t.Fatalf("expected group row")
	}
	if (statusRow{id: "staged:a", parent: groupStaged}).isGroup() {
		t.Fatalf("expected file row")
	}
}
