package commitmsg

import "fmt"

const (
	// RecentCommitCount is how many commits the previous-message menus show.
	RecentCommitCount = 6
	FixupPrefix       = "fixup! "
)

type RecentCommit struct {
	OID     string
	Summary string
}

type MenuItem struct {
	Label string
	OID   string
}

// RecentMenu lists recent commits oldest first so that HEAD sits at the
// bottom, next to the "More..." entry.
type RecentMenu struct {
	Items []MenuItem
	More  bool
}

// BuildRecentMenu takes commits newest first, as git log lists them. Pass
// one more commit than limit to learn whether "More..." is needed.
func BuildRecentMenu(commits []RecentCommit, limit int, prefix string) RecentMenu {
	shown := commits
	if len(shown) > limit {
		shown = shown[:limit]
	}
	items := make([]MenuItem, len(shown))
	for i, c := range shown {
		items[len(shown)-1-i] = MenuItem{Label: prefix + c.Summary, OID: c.OID}
	}
	return RecentMenu{Items: items, More: len(commits) > limit}
}

// FixupMessage is the message that marks a commit for autosquash.
func FixupMessage(summary string) string {
	return FixupPrefix + summary
}

// Cursor is the text and colour of the row:column indicator.
type Cursor struct {
	Text  string
	Color string
}

// CursorIndicator colours the column as it approaches and passes the usual
// commit message width.
func CursorIndicator(row, col int) Cursor {
	c := Cursor{Text: fmt.Sprintf("%02d:%02d", row, col)}
	switch {
	case col > 78:
		c.Color = "red"
	case col > 72:
		c.Color = "#ff8833"
	case col > 64:
		c.Color = "yellow"
	}
	return c
}
