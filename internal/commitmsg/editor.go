package commitmsg

import (
	"fmt"
	"strings"

	"github.com/thiagokokada/gitgui-go/internal/observable"
)

// Document is the joined commit message shared between the editor and the
// rest of the application. Edits made in the editor are stored quietly;
// Load notifies every subscriber, the editor included.
type Document struct {
	value *observable.Value[string]
}

func NewDocument() *Document {
	return &Document{value: observable.New("")}
}

func (d *Document) Text() string { return d.value.Get() }

// Load replaces the message, e.g. with a draft or a previous commit message.
func (d *Document) Load(text string) { d.value.Publish(text) }

// OnLoad registers fn for messages loaded from outside the editor.
func (d *Document) OnLoad(fn func(text string)) { d.value.Subscribe(fn) }

func (d *Document) update(text string) { d.value.SetQuiet(text) }

const DefaultCommentChar = "#"

// Editor owns the summary and description fields. It runs on the UI thread.
type Editor struct {
	summary     string
	description string

	Flags   Flags
	Session Session
	Wrap    WrapOptions

	CommentChar    string
	CheckPublished bool

	doc *Document

	canAmend bool
	draft    string
}

func NewEditor(doc *Document) *Editor {
	if doc == nil {
		doc = NewDocument()
	}
	e := &Editor{
		Wrap:           DefaultWrapOptions(),
		CommentChar:    DefaultCommentChar,
		CheckPublished: true,
		doc:            doc,
		canAmend:       true,
	}
	e.Flags.AutoWrap = e.Wrap.Enabled
	doc.OnLoad(e.apply)
	return e
}

func (e *Editor) Document() *Document { return e.doc }

func (e *Editor) Summary() string { return e.summary }

func (e *Editor) Description() string { return e.description }

func (e *Editor) State() State { return StateOf(e.summary, e.description) }

// CanCommit reports whether the commit action should be enabled.
func (e *Editor) CanCommit() bool { return e.summary != "" }

// SetSummary takes the summary field's text. Comment characters at the start
// are removed and pasted newlines move the rest into the description. When
// rewrite is true the fields must be redrawn from Summary and Description.
func (e *Editor) SetSummary(value string) (rewrite bool) {
	value, rewrite = TrimCommentPrefix(value, e.CommentChar)
	summary, description, split := SplitSummary(value, e.description)
	e.summary = summary
	e.description = description
	e.changed()
	return rewrite || split
}

func (e *Editor) SetDescription(value string) {
	e.description = value
	e.changed()
}

// SetMessage loads text into both fields and notifies document subscribers.
func (e *Editor) SetMessage(text string) {
	e.doc.Load(text)
}

// Clear empties both fields.
func (e *Editor) Clear() {
	e.doc.Load("")
}

func (e *Editor) apply(text string) {
	m := Parse(text)
	e.summary = m.Summary
	e.description = m.Description
}

func (e *Editor) changed() {
	e.doc.update(e.Message(true))
}

// Message joins the fields. Unless raw, the description is wrapped when
// auto-wrap is on.
func (e *Editor) Message(raw bool) string {
	if raw {
		return Compose(e.summary, e.description)
	}
	return Compose(e.summary, e.formattedDescription())
}

func (e *Editor) formattedDescription() string {
	opts := e.Wrap
	opts.Enabled = e.Flags.AutoWrap
	return Wrap(e.description, opts)
}

// CanAmend is false while a merge is in progress.
func (e *Editor) CanAmend() bool { return e.canAmend }

func (e *Editor) SetCanAmend(can bool) {
	e.canAmend = can
	if !can && e.Flags.Amend {
		e.leaveAmend()
	}
}

// SetAmend switches amend mode. Entering keeps the current text as a draft
// and loads the message of the commit being amended; leaving restores the
// draft.
func (e *Editor) SetAmend(on bool, previous func() (string, error)) error {
	if on == e.Flags.Amend {
		return nil
	}
	if !on {
		e.leaveAmend()
		return nil
	}
	if !e.canAmend {
		return fmt.Errorf("cannot amend while merging")
	}
	msg := ""
	if previous != nil {
		var err error
		msg, err = previous()
		if err != nil {
			return fmt.Errorf("load previous commit message: %w", err)
		}
	}
	e.draft = e.Message(true)
	e.Flags.Amend = true
	e.SetMessage(strings.TrimRight(msg, "\n"))
	return nil
}

func (e *Editor) leaveAmend() {
	e.Flags.Amend = false
	draft := e.draft
	e.draft = ""
	e.SetMessage(draft)
}

// SignOff appends a Signed-off-by trailer to the description unless it is
// already there. It reports whether the description changed.
func (e *Editor) SignOff(name, email string) bool {
	trailer := fmt.Sprintf("Signed-off-by: %s <%s>", name, email)
	lines := strings.Split(e.description, "\n")
	for _, line := range lines {
		if strings.TrimSpace(line) == trailer {
			return false
		}
	}
	desc := strings.TrimRight(e.description, "\n")
	switch {
	case desc == "":
		desc = trailer
	case unwrappable.MatchString(lines[lastNonEmpty(lines)]):
		desc += "\n" + trailer
	default:
		desc += "\n\n" + trailer
	}
	e.SetDescription(desc)
	return true
}

func lastNonEmpty(lines []string) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if strings.TrimSpace(lines[i]) != "" {
			return i
		}
	}
	return 0
}
