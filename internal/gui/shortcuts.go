package gui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/thiagokokada/gitgui-go/internal/buildinfo"

	. "modernc.org/tk9.0"
)

func (a *Controller) bindShortcuts() {
	for _, sc := range a.shortcutBindings() {
		if sc.handler == nil {
			continue
		}
		for _, seq := range sc.sequences {
			if seq == "" {
				continue
			}
			Bind(App, seq, Command(sc.handler))
		}
	}
}

type shortcutBinding struct {
	sequences   []string
	display     string
	description string
	category    string
	handler     func()
}

func (a *Controller) shortcutBindings() []shortcutBinding {
	return []shortcutBinding{
		{
			category:    "Commit",
			display:     "Ctrl+Return",
			description: "Commit staged changes",
			sequences:   []string{"<Control-Return>", "<Command-Return>"},
			handler:     a.commit,
		},
		{
			category:    "Commit",
			display:     "Ctrl+M",
			description: "Toggle amending the last commit",
			sequences:   []string{"<Control-KeyPress-m>"},
			handler:     a.toggleAmend,
		},
		{
			category:    "Commit",
			display:     "Ctrl+S",
			description: "Add a Signed-off-by trailer",
			sequences:   []string{"<Control-KeyPress-s>"},
			handler:     a.signOff,
		},
		{
			category:    "Staged diff",
			display:     "Ctrl+Page Up",
			description: "Scroll the diff up one page",
			sequences:   []string{"<Control-Prior>", "<Command-Prior>"},
			handler:     func() { a.scrollDetail(-1, "pages") },
		},
		{
			category:    "Staged diff",
			display:     "Ctrl+Page Down",
			description: "Scroll the diff down one page",
			sequences:   []string{"<Control-Next>", "<Command-Next>"},
			handler:     func() { a.scrollDetail(1, "pages") },
		},
		{
			category:    "General",
			display:     "F5",
			description: "Refresh status and staged diff",
			sequences:   []string{"<F5>"},
			handler:     a.refreshAsync,
		},
		{
			category:    "General",
			display:     "F1",
			description: "Show shortcut list",
			sequences:   []string{"<F1>"},
			handler:     a.showShortcutsDialog,
		},
		{
			category:    "General",
			display:     "Ctrl+Q",
			description: "Quit " + buildinfo.Name,
			sequences:   []string{"<Control-KeyPress-q>"},
			handler:     func() { Destroy(App) },
		},
	}
}

func (a *Controller) showShortcutsDialog() {
	if a.ui.shortcutsWindow != nil {
		Destroy(a.ui.shortcutsWindow.Window)
		a.ui.shortcutsWindow = nil
	}
	dialog := App.Toplevel()
	a.ui.shortcutsWindow = dialog
	dialog.WmTitle("Keyboard Shortcuts")
	WmTransient(dialog.Window, App)
	WmAttributes(dialog.Window, "-topmost", 1)

	frame := dialog.TFrame(Padding("12p"))
	Grid(frame, Row(0), Column(0), Sticky(NEWS))
	GridColumnConfigure(frame.Window, 0, Weight(1))
	GridRowConfigure(frame.Window, 1, Weight(1))

	header := frame.TLabel(Txt("Keyboard Shortcuts"), Anchor(W))
	Grid(header, Row(0), Column(0), Sticky(W), Pady("0 8p"))

	text := frame.Text(Width(56), Height(14), Wrap(WORD), Exportselection(false))
	text.Insert("1.0", formatShortcutsHelpText(a.shortcutBindings()))
	text.Configure(State("disabled"))
	Grid(text, Row(1), Column(0), Sticky(NEWS))

	closeBtn := frame.TButton(Txt("Close"), Command(func() { Destroy(dialog.Window) }))
	Grid(closeBtn, Row(2), Column(0), Sticky(E), Pady("8p 0"))

	Bind(dialog.Window, "<KeyPress-Escape>", Command(func() { Destroy(dialog.Window) }))
	Bind(dialog.Window, "<Destroy>", Command(func() {
		if a.ui.shortcutsWindow == dialog {
			a.ui.shortcutsWindow = nil
		}
	}))
	dialog.Center()
}

func (a *Controller) scrollDetail(delta int, unit string) {
	if a.ui.diffDetail == nil || delta == 0 {
		return
	}
	if _, err := tkSafeEval("%s yview scroll %d %s", a.ui.diffDetail, delta, unit); err != nil {
		slog.Error("detail scroll", slog.Any("error", err))
	}
}

func formatShortcutsHelpText(bindings []shortcutBinding) string {
	var b strings.Builder
	currentCategory := ""
	for _, sc := range bindings {
		if sc.category == "" || sc.display == "" || sc.description == "" {
			continue
		}
		if sc.category != currentCategory {
			if b.Len() > 0 {
				b.WriteString("\n")
			}
			currentCategory = sc.category
			b.WriteString(currentCategory)
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "  %-16s %s\n", sc.display, sc.description)
	}
	return strings.TrimRight(b.String(), "\n")
}
