package gui

import (
	"testing"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/git"
)

func TestToggleLabel(t *testing.T) {
	if got := toggleLabel(true, "Amend"); got != "[x] Amend" {
		t.Fatalf("unexpected on label %q", got)
	}
	if got := toggleLabel(false, "Amend"); got != "[ ] Amend" {
		t.Fatalf("unexpected off label %q", got)
	}
}

func TestDateMenuLabel(t *testing.T) {
	if got := dateMenuLabel(""); got != "Set Commit Date..." {
		t.Fatalf("unexpected unarmed label %q", got)
	}
	want := "Commit Date: 2024-05-01T10:00:00+0200..."
	if got := dateMenuLabel("2024-05-01T10:00:00+0200"); got != want {
		t.Fatalf("dateMenuLabel = %q, want %q", got, want)
	}
}

func TestRecentCommits(t *testing.T) {
	entries := []git.Entry{
		{Hash: "aaaa", Summary: "first", Label: "aaaa first", When: time.Unix(10, 0)},
		{Hash: "bbbb", Summary: "second"},
	}
	got := recentCommits(entries)
	if len(got) != 2 {
		t.Fatalf("expected 2 commits, got %d", len(got))
	}
	if got[0].OID != "aaaa" || got[0].Summary != "first" || got[1].OID != "bbbb" {
		t.Fatalf("unexpected commits: %+v", got)
	}
	if len(recentCommits(nil)) != 0 {
		t.Fatalf("expected no commits for nil input")
	}
}
