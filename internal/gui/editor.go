package gui

import (
	"log/slog"
	"strings"

	"github.com/thiagokokada/gitgui-go/internal/commitmsg"
	"github.com/thiagokokada/gitgui-go/internal/gui/tkutil"

	. "modernc.org/tk9.0"
)

func (a *Controller) buildEditor(parent *TFrameWidget) {
	GridColumnConfigure(parent.Window, 1, Weight(1))
	GridRowConfigure(parent.Window, 1, Weight(1))

	a.ui.actionsButton = parent.TButton(Txt("Actions"), Command(a.postActionsMenu))
	if img := a.photos.get(actionsIcon()); img != nil {
		a.ui.actionsButton.Configure(Image(img), Compound("left"))
	}
	Grid(a.ui.actionsButton, Row(0), Column(0), Sticky(W), Padx("0 4p"))

	a.ui.summary = parent.TEntry(Textvariable(""))
	Grid(a.ui.summary, Row(0), Column(1), Sticky(WE))
	Bind(a.ui.summary, "<KeyRelease>", Command(a.onSummaryChanged))
	Bind(a.ui.summary, "<ButtonRelease>", Command(a.updateCursorIndicator))
	Bind(a.ui.summary, "<FocusIn>", Command(a.updateCursorIndicator))
	Bind(a.ui.summary, "<KeyPress-Return>", Command(a.focusDescription))
	Bind(a.ui.summary, "<KeyPress-Down>", Command(a.focusDescription))

	a.ui.progress = parent.TProgressbar(Mode("indeterminate"))
	Grid(a.ui.progress, Row(0), Column(2), Sticky(WE), Padx("4p"))
	a.showProgress(false)

	a.ui.cursor = parent.TLabel(Txt(commitmsg.CursorIndicator(1, 0).Text), Width(6), Anchor(E))
	Grid(a.ui.cursor, Row(0), Column(3), Sticky(E), Padx("4p"))

	a.ui.commitButton = parent.TButton(Txt("Commit"), Command(a.commit))
	if img := a.photos.get(commitIcon()); img != nil {
		a.ui.commitButton.Configure(Image(img), Compound("left"))
	}
	Grid(a.ui.commitButton, Row(0), Column(4), Sticky(E))

	descFrame := parent.TFrame()
	Grid(descFrame, Row(1), Column(0), Columnspan(5), Sticky(NEWS), Pady("4p 0"))
	GridColumnConfigure(descFrame.Window, 0, Weight(1))
	GridRowConfigure(descFrame.Window, 0, Weight(1))
	descScroll := descFrame.TScrollbar(Command(func(e *Event) { e.Yview(a.ui.description) }))
	a.ui.description = descFrame.Text(Wrap(WORD), Undo(true), Height(8), Font(CourierFont(), 11))
	a.ui.description.Configure(Yscrollcommand(func(e *Event) { e.ScrollSet(descScroll) }))
	Grid(a.ui.description, Row(0), Column(0), Sticky(NEWS))
	Grid(descScroll, Row(0), Column(1), Sticky(NS))
	Bind(a.ui.description, "<KeyRelease>", Command(a.onDescriptionChanged))
	Bind(a.ui.description, "<ButtonRelease>", Command(a.updateCursorIndicator))
	Bind(a.ui.description, "<FocusIn>", Command(a.updateCursorIndicator))
	a.bindExpandTab()
	a.initSpellUI()

	a.editor.Document().OnLoad(func(string) { a.redrawEditor() })
}

// bindExpandTab makes Tab insert spaces in the description.
func (a *Controller) bindExpandTab() {
	if !a.settings.ExpandTab {
		return
	}
	spaces := strings.Repeat(" ", max(a.settings.TabWidth, 1))
	if _, err := tkSafeEval("bind %s <Tab> {%s insert insert %s; break}", a.ui.description, a.ui.description, tclList(spaces)); err != nil {
		slog.Error("bind expand tab", slog.Any("error", err))
	}
}

func (a *Controller) onSummaryChanged() {
	if a.editor.SetSummary(a.ui.summary.Textvariable()) {
		a.redrawEditor()
		if a.editor.Description() != "" {
			a.focusDescription()
		}
	}
	a.updateCursorIndicator()
	a.syncEditorWidgets()
}

func (a *Controller) onDescriptionChanged() {
	a.editor.SetDescription(tkutil.TextContent(a.ui.description))
	a.scheduleSpellcheck()
	a.updateCursorIndicator()
	a.syncEditorWidgets()
}

// redrawEditor copies the editor fields into the widgets.
func (a *Controller) redrawEditor() {
	if a.ui.summary == nil {
		return
	}
	a.ui.summary.Configure(Textvariable(a.editor.Summary()))
	a.ui.description.Delete("1.0", END)
	a.ui.description.Insert("1.0", a.editor.Description())
	a.scheduleSpellcheck()
	a.updateCursorIndicator()
	a.syncEditorWidgets()
}

func (a *Controller) focusSummary() {
	if _, err := tkSafeEval("focus %s", a.ui.summary); err != nil {
		slog.Debug("focus summary", slog.Any("error", err))
	}
}

func (a *Controller) focusDescription() {
	if _, err := tkSafeEval("focus %s", a.ui.description); err != nil {
		slog.Debug("focus description", slog.Any("error", err))
	}
}

func (a *Controller) updateCursorIndicator() {
	if a.ui.cursor == nil {
		return
	}
	var row, col int
	if Focus() == a.ui.description.String() {
		row, col = cursorPosition(false, tkutil.EvalOrEmpty("%s index insert", a.ui.description))
	} else {
		row, col = cursorPosition(true, tkutil.EvalOrEmpty("%s index insert", a.ui.summary))
	}
	c := commitmsg.CursorIndicator(row, col)
	if _, err := tkSafeEval("%s configure -text %s -foreground %s", a.ui.cursor, tclList(c.Text), tclList(c.Color)); err != nil {
		slog.Debug("cursor indicator", slog.Any("error", err))
	}
}

// cursorPosition maps an insert index to the row:column shown next to the
// summary. The summary is row 1; description line n is row n+1.
func cursorPosition(summary bool, index string) (row, col int) {
	if summary {
		return 1, tkutil.Atoi(index)
	}
	line, col := parseTextIndex(index)
	return line + 1, col
}

func (a *Controller) showProgress(on bool) {
	cmds := []string{"grid remove %s", "%s stop"}
	if on {
		cmds = []string{"grid %s", "%s start"}
	}
	for _, cmd := range cmds {
		if _, err := tkSafeEval(cmd, a.ui.progress); err != nil {
			slog.Debug("progress bar", slog.String("command", cmd), slog.Any("error", err))
		}
	}
}

// syncEditorWidgets enables the commit button only when a commit can start.
func (a *Controller) syncEditorWidgets() {
	if a.ui.commitButton == nil {
		return
	}
	state := "normal"
	if !a.editor.CanCommit() || a.runner.Busy() {
		state = "disabled"
	}
	a.ui.commitButton.Configure(State(state))
	a.updateBranchLabel()
}
