package gui

import (
	"errors"
	"testing"

	"github.com/thiagokokada/gitgui-go/internal/git"
)

func TestTclListAndEscape(t *testing.T) {
	result := tclList("hello", "a{b}", `path\to`)
	expected := "{hello} {a\\{b\\}} {path\\\\to}"
	if result != expected {
		t.Fatalf("unexpected tcl list: %q", result)
	}
}

func TestParseTextIndex(t *testing.T) {
	tests := []struct {
		index     string
		line, col int
	}{
		{"3.14", 3, 14},
		{" 1.0\n", 1, 0},
		{"7", 7, 0},
		{"", 0, 0},
	}
	for _, tc := range tests {
		line, col := parseTextIndex(tc.index)
		if line != tc.line || col != tc.col {
			t.Fatalf("parseTextIndex(%q) = %d,%d, want %d,%d", tc.index, line, col, tc.line, tc.col)
		}
	}
}

func TestCursorPosition(t *testing.T) {
	row, col := cursorPosition(true, "17")
	if row != 1 || col != 17 {
		t.Fatalf("summary cursor = %d:%d, want 1:17", row, col)
	}
	row, col = cursorPosition(false, "1.4")
	if row != 2 || col != 4 {
		t.Fatalf("description cursor = %d:%d, want 2:4", row, col)
	}
	row, col = cursorPosition(false, "12.80")
	if row != 13 || col != 80 {
		t.Fatalf("description cursor = %d:%d, want 13:80", row, col)
	}
}

func TestToResult(t *testing.T) {
	boom := errors.New("boom")
	res := toResult(git.RunResult{Status: 1, Stdout: "out", Stderr: "err"}, boom)
	if res.Status != 1 || res.Stdout != "out" || res.Stderr != "err" || !errors.Is(res.Err, boom) {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !res.Failed() {
		t.Fatalf("expected failed result")
	}
	if toResult(git.RunResult{}, nil).Failed() {
		t.Fatalf("expected success")
	}
}
