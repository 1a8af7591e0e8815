package commitmsg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeParseRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		summary     string
		description string
	}{
		{"Fix bug", ""},
		{"Fix bug", "Single line body"},
		{"Fix bug", "First paragraph\n\nSecond paragraph"},
		{"Fix bug", "\nStarts with a blank line"},
		{"Add feature", "line one\nline two\nline three"},
		{"", "Only a body"},
		{"", ""},
	}
	for _, tt := range tests {
		got := Parse(Compose(tt.summary, tt.description))
		assert.Equal(t, Message{Summary: tt.summary, Description: tt.description}, got,
			"summary=%q description=%q", tt.summary, tt.description)
	}
}

func TestCompose(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", Compose("", ""))
	assert.Equal(t, "s", Compose("s", ""))
	assert.Equal(t, "s\n\nd", Compose("s", "d"))
	assert.Equal(t, "\n\nd", Compose("", "d"))
	assert.Equal(t, "s\n\nd", Message{Summary: "s", Description: "d"}.String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want Message
	}{
		{"empty", "", Message{}},
		{"summary only", "Fix bug", Message{Summary: "Fix bug"}},
		{"trailing newline", "Fix bug\n", Message{Summary: "Fix bug"}},
		{"two lines", "Fix bug\nbody", Message{Summary: "Fix bug", Description: "body"}},
		{"blank separator", "Fix bug\n\nbody\nmore", Message{Summary: "Fix bug", Description: "body\nmore"}},
		{"no separator", "Fix bug\nbody\nmore", Message{Summary: "Fix bug", Description: "body\nmore"}},
		{"only one blank skipped", "Fix bug\n\n\nbody", Message{Summary: "Fix bug", Description: "\nbody"}},
		{"crlf", "Fix bug\r\n\r\nbody\r\n", Message{Summary: "Fix bug", Description: "body"}},
		{"description only", "\n\nbody", Message{Description: "body"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Parse(tt.text))
		})
	}
}

func TestStateOf(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Empty, StateOf("", ""))
	assert.Equal(t, SummaryOnly, StateOf("s", ""))
	assert.Equal(t, SummaryAndDescription, StateOf("s", "d"))
	assert.Equal(t, DescriptionOnly, StateOf("", "d"))
	assert.Equal(t, "description-only", DescriptionOnly.String())
}

func TestSplitSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		summary     string
		description string
		wantSummary string
		wantDesc    string
		wantSplit   bool
	}{
		{"no newline", "Fix bug", "body", "Fix bug", "body", false},
		{"paste into empty description", "Fix bug\n\nDetails", "", "Fix bug", "Details", true},
		{"prepends to existing description", "Fix bug\nDetails", "existing", "Fix bug", "Details\nexisting", true},
		{"only first newline splits", "a\nb\nc", "", "a", "b\nc", true},
		{"trailing newline", "Fix bug\n", "existing", "Fix bug", "\nexisting", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, d, split := SplitSummary(tt.summary, tt.description)
			assert.Equal(t, tt.wantSummary, s)
			assert.Equal(t, tt.wantDesc, d)
			assert.Equal(t, tt.wantSplit, split)
			assert.NotContains(t, s, "\n")
		})
	}
}

func TestTrimCommentPrefix(t *testing.T) {
	t.Parallel()

	got, changed := TrimCommentPrefix("# Fix bug", "#")
	assert.True(t, changed)
	assert.Equal(t, "Fix bug", got)

	got, changed = TrimCommentPrefix("## Fix", "#")
	assert.True(t, changed)
	assert.Equal(t, "Fix", got)

	got, changed = TrimCommentPrefix("Fix #12", "#")
	assert.False(t, changed)
	assert.Equal(t, "Fix #12", got)

	got, changed = TrimCommentPrefix("; Fix", ";")
	assert.True(t, changed)
	assert.Equal(t, "Fix", got)

	got, changed = TrimCommentPrefix("# Fix", "")
	assert.False(t, changed)
	assert.Equal(t, "# Fix", got)
}

func TestStripComments(t *testing.T) {
	t.Parallel()

	msg := "Merge branch 'x'\n\n# Conflicts:\n#\tfile.go\nReal body"
	assert.Equal(t, "Merge branch 'x'\n\nReal body", StripComments(msg, "#"))
	assert.Equal(t, "Fix #1", StripComments("Fix #1", "#"))
}

func TestWrap(t *testing.T) {
	t.Parallel()

	opts := WrapOptions{Enabled: true, Width: 7, TabWidth: 8}
	assert.Equal(t, "aaa bbb\nccc", Wrap("aaa bbb ccc", opts))
	assert.Equal(t, "aaa\n\nbbb", Wrap("aaa\n\nbbb", opts))
	assert.Equal(t, "short", Wrap("short", opts))
	assert.Equal(t, "averyverylongword\nx", Wrap("averyverylongword x", opts))
	assert.Equal(t, "well-known\nfix", Wrap("well-known fix", opts), "hyphens are not break points")

	trailer := "Signed-off-by: Someone With A Long Name <someone@example.com>"
	assert.Equal(t, trailer, Wrap(trailer, opts))
	assert.Equal(t, "[1] https://example.com/a/very/long/link", Wrap("[1] https://example.com/a/very/long/link", opts))

	disabled := opts
	disabled.Enabled = false
	assert.Equal(t, "aaa bbb ccc", Wrap("aaa bbb ccc", disabled))
}

func TestWrapDefaultWidth(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("word ", 30)
	for _, line := range strings.Split(Wrap(strings.TrimSpace(long), DefaultWrapOptions()), "\n") {
		assert.LessOrEqual(t, len(line), DefaultTextWidth)
	}
}

func TestWrapCountsTabs(t *testing.T) {
	t.Parallel()

	opts := WrapOptions{Enabled: true, Width: 10, TabWidth: 4}
	// Fits in 10 columns with 4-column tabs; kept verbatim.
	assert.Equal(t, "\tab cd", Wrap("\tab cd", opts))
	assert.Equal(t, "    ab cd\nef", Wrap("\tab cd ef", opts))
}
