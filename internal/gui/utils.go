package gui

import (
	"strings"

	"github.com/thiagokokada/gitgui-go/internal/gui/tkutil"
)

// tclList quotes each value as a Tcl list element.
func tclList(values ...string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = "{" + escapeTclString(v) + "}"
	}
	return strings.Join(parts, " ")
}

func escapeTclString(s string) string {
	r := strings.NewReplacer(`\`, `\\`, "{", `\{`, "}", `\}`)
	return r.Replace(s)
}

func tkSafeEval(format string, a ...any) (string, error) {
	return tkutil.Eval(format, a...)
}

// textIndex formats a Tk text index from a 1-based line and a 0-based
// character column.
func textIndex(line, col int) string {
	return tkutil.Index(line, col)
}

// parseTextIndex splits a "line.col" Tk text index.
func parseTextIndex(index string) (line, col int) {
	before, after, ok := strings.Cut(strings.TrimSpace(index), ".")
	if !ok {
		return tkutil.Atoi(before), 0
	}
	return tkutil.Atoi(before), tkutil.Atoi(after)
}
