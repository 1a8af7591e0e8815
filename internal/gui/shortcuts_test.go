package gui

import (
	"strings"
	"testing"
)

func TestFormatShortcutsHelpText(t *testing.T) {
	bindings := []shortcutBinding{
		{category: "Commit", display: "Ctrl+Return", description: "Commit staged changes"},
		{category: "Commit", display: "Ctrl+S", description: "Add a Signed-off-by trailer"},
		{category: "", display: "x", description: "ignored (no category)"},
		{category: "Other", display: "", description: "ignored (no display)"},
		{category: "General", display: "F5", description: "Refresh"},
	}
	got := formatShortcutsHelpText(bindings)

	want := strings.Join([]string{
		"Commit",
		"  Ctrl+Return      Commit staged changes",
		"  Ctrl+S           Add a Signed-off-by trailer",
		"",
		"General",
		"  F5               Refresh",
	}, "\n")
	if got != want {
		t.Fatalf("unexpected help text:\n%s\nwant:\n%s", got, want)
	}
	if strings.Contains(got, "ignored") {
		t.Fatalf("expected ignored bindings to be absent, got %q", got)
	}
}

func TestShortcutBindingsComplete(t *testing.T) {
	a := &Controller{}
	seen := map[string]bool{}
	for _, sc := range a.shortcutBindings() {
		if sc.handler == nil || len(sc.sequences) == 0 {
			t.Fatalf("binding %q has no handler or sequence", sc.display)
		}
		seen[sc.display] = true
	}
	for _, display := range []string{"Ctrl+Return", "Ctrl+M", "Ctrl+S", "F5", "F1", "Ctrl+Q"} {
		if !seen[display] {
			t.Fatalf("missing shortcut %s", display)
		}
	}
}
