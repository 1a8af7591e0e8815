// Package commitmsg holds the commit message editor model: the
// summary/description pair, the toggles that go with a commit, the checks
// made before committing, and the background commit runner.
package commitmsg

import (
	"strings"
)

// Message is a commit message split into its editable parts. Summary never
// contains a newline.
type Message struct {
	Summary     string
	Description string
}

// String joins the parts the way they are committed.
func (m Message) String() string {
	return Compose(m.Summary, m.Description)
}

// Compose joins a summary and description into a commit message.
func Compose(summary, description string) string {
	switch {
	case summary != "" && description != "":
		return summary + "\n\n" + description
	case summary != "":
		return summary
	case description != "":
		return "\n\n" + description
	default:
		return ""
	}
}

// Parse splits a commit message into summary and description. The first line
// is the summary. A single following line is the description as is; with more
// lines, one blank separator line is skipped.
func Parse(text string) Message {
	lines := splitLines(text)
	switch len(lines) {
	case 0:
		return Message{}
	case 1:
		return Message{Summary: lines[0]}
	case 2:
		return Message{Summary: lines[0], Description: lines[1]}
	}
	rest := lines[1:]
	if rest[0] == "" {
		rest = rest[1:]
	}
	return Message{Summary: lines[0], Description: strings.Join(rest, "\n")}
}

// splitLines splits on \n, \r\n and \r. A trailing line break does not start
// a new line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// State describes which parts of a message are filled in.
type State int

const (
	Empty State = iota
	SummaryOnly
	SummaryAndDescription
	DescriptionOnly
)

func (s State) String() string {
	switch s {
	case SummaryOnly:
		return "summary-only"
	case SummaryAndDescription:
		return "summary-and-description"
	case DescriptionOnly:
		return "description-only"
	default:
		return "empty"
	}
}

func StateOf(summary, description string) State {
	switch {
	case summary != "" && description != "":
		return SummaryAndDescription
	case summary != "":
		return SummaryOnly
	case description != "":
		return DescriptionOnly
	default:
		return Empty
	}
}

// SplitSummary moves everything after the first newline of summary into the
// description, ahead of the existing description. Blank lines right after
// the summary are dropped.
func SplitSummary(summary, description string) (string, string, bool) {
	head, rest, found := strings.Cut(summary, "\n")
	if !found {
		return summary, description, false
	}
	head = strings.TrimSuffix(head, "\r")
	rest = strings.TrimLeft(rest, "\r\n")
	if description != "" {
		rest = rest + "\n" + description
	}
	return head, rest, true
}

// TrimCommentPrefix strips a leading comment character, and the whitespace
// around it, from a summary.
func TrimCommentPrefix(summary, commentChar string) (string, bool) {
	if commentChar == "" || !strings.HasPrefix(summary, commentChar) {
		return summary, false
	}
	trimmed := strings.TrimLeft(summary, " \t")
	trimmed = strings.TrimLeft(trimmed, commentChar)
	trimmed = strings.TrimLeft(trimmed, " \t")
	return trimmed, true
}

// StripComments drops lines starting with commentChar.
func StripComments(message, commentChar string) string {
	if commentChar == "" || !strings.Contains(message, commentChar) {
		return message
	}
	lines := strings.Split(message, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(line, commentChar) {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}
