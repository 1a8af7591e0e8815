package gui

import (
	"testing"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/commitdate"
	"github.com/thiagokokada/gitgui-go/internal/commitmsg"
)

func TestAcceptCommitDateRemembersPick(t *testing.T) {
	t.Parallel()

	a := &Controller{editor: commitmsg.NewEditor(nil)}
	picked := time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)
	picker := commitdate.NewPicker(picked, time.UTC)

	got := a.acceptCommitDate(picker)
	if want := commitdate.FormatGitDate(picked); got != want {
		t.Fatalf("acceptCommitDate = %q, want %q", got, want)
	}
	if armed := a.editor.Session.PeekDate(); armed != got {
		t.Fatalf("armed date = %q, want %q", armed, got)
	}
	// The dialog reopens from the pick without a commit in between.
	last, ok := a.dates.Last()
	if !ok || !last.Equal(commitdate.TickTime(picked)) {
		t.Fatalf("remembered date = %v (%v), want %v", last, ok, commitdate.TickTime(picked))
	}
}

func TestGrabScript(t *testing.T) {
	t.Parallel()

	if got := grabScript(".top1", true); got != "grab set {.top1}" {
		t.Fatalf("grab on = %q", got)
	}
	if got := grabScript(".top1", false); got != "grab release {.top1}" {
		t.Fatalf("grab off = %q", got)
	}
}
