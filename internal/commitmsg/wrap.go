package commitmsg

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"
)

const (
	DefaultTextWidth = 72
	DefaultTabWidth  = 8
)

type WrapOptions struct {
	Enabled  bool
	Width    int
	TabWidth int
}

func DefaultWrapOptions() WrapOptions {
	return WrapOptions{Enabled: true, Width: DefaultTextWidth, TabWidth: DefaultTabWidth}
}

// Lines that must stay on one line: trailers and numbered link references.
var unwrappable = regexp.MustCompile(
	`^(((Acked|Co-authored|Helped|Reported|Reviewed|Signed-off|Suggested|Tested)-by|Cc|Cf\.|Closes|Fixes|Link|Refs|Resolves|See-also):|\[\d+\])`,
)

// Wrap word-wraps each line of text to opts.Width columns. Words longer than
// the width are not broken and hyphens are not break points.
func Wrap(text string, opts WrapOptions) string {
	if !opts.Enabled || opts.Width <= 0 || text == "" {
		return text
	}
	tab := opts.TabWidth
	if tab <= 0 {
		tab = DefaultTabWidth
	}
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" || unwrappable.MatchString(line) || displayWidth(line, tab) <= opts.Width {
			out = append(out, line)
			continue
		}
		out = append(out, wrapLine(expandTabs(line, tab), opts.Width))
	}
	return strings.Join(out, "\n")
}

func wrapLine(line string, width int) string {
	w := wordwrap.NewWriter(width)
	w.Breakpoints = nil
	_, _ = w.Write([]byte(line))
	_ = w.Close()
	wrapped := strings.Split(w.String(), "\n")
	for i, l := range wrapped {
		wrapped[i] = strings.TrimRight(l, " ")
	}
	return strings.Join(wrapped, "\n")
}

func displayWidth(line string, tab int) int {
	col := 0
	for _, r := range line {
		if r == '\t' {
			col += tab - col%tab
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}

func expandTabs(line string, tab int) string {
	if !strings.Contains(line, "\t") {
		return line
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		if r == '\t' {
			n := tab - col%tab
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteRune(r)
		col += runewidth.RuneWidth(r)
	}
	return b.String()
}
