package gui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/thiagokokada/gitgui-go/internal/git"

	. "modernc.org/tk9.0"
)

const selectCommitLimit = 500

type commitChoice struct {
	oid     string
	display string
	search  string
}

func buildCommitChoices(entries []git.Entry) []commitChoice {
	choices := make([]commitChoice, 0, len(entries))
	for _, e := range entries {
		display := e.Label
		if display == "" {
			display = e.Summary
		}
		choices = append(choices, commitChoice{
			oid:     e.Hash,
			display: display,
			search:  strings.ToLower(e.Hash + " " + e.Summary),
		})
	}
	return choices
}

// filterCommitChoices keeps the commits whose hash or summary contains every
// word of query.
func filterCommitChoices(choices []commitChoice, query string) []commitChoice {
	words := strings.Fields(strings.ToLower(query))
	if len(words) == 0 {
		return choices
	}
	out := make([]commitChoice, 0, len(choices))
	for _, c := range choices {
		matched := true
		for _, w := range words {
			if !strings.Contains(c.search, w) {
				matched = false
				break
			}
		}
		if matched {
			out = append(out, c)
		}
	}
	return out
}

func (a *Controller) showSelectCommitDialog(pick func(oid string)) {
	entries, err := a.svc.RecentCommits(selectCommitLimit)
	if err != nil {
		a.showError("Select Commit", err)
		return
	}
	if len(entries) == 0 {
		MessageBox(
			Parent(App),
			Title("Select Commit"),
			Icon("info"),
			Msg("This repository has no commits yet."),
			Type("ok"),
		)
		return
	}
	if a.ui.selectWindow != nil {
		Destroy(a.ui.selectWindow.Window)
		a.ui.selectWindow = nil
	}

	all := buildCommitChoices(entries)
	visible := all

	dialog := App.Toplevel()
	a.ui.selectWindow = dialog
	dialog.WmTitle("Select Commit")
	WmTransient(dialog.Window, App)
	WmAttributes(dialog.Window, "-topmost", 1)

	frame := dialog.TFrame(Padding("12p"))
	Grid(frame, Row(0), Column(0), Sticky(NEWS))
	GridColumnConfigure(dialog.Window, 0, Weight(1))
	GridRowConfigure(dialog.Window, 0, Weight(1))
	GridColumnConfigure(frame.Window, 0, Weight(1))
	GridRowConfigure(frame.Window, 2, Weight(1))

	header := frame.TLabel(Txt(fmt.Sprintf("Showing the latest %d commits on %s", len(all), a.headLabel())), Anchor(W))
	Grid(header, Row(0), Column(0), Sticky(WE), Pady("0 8p"))

	filter := frame.TEntry(Width(60), Textvariable(""))
	Grid(filter, Row(1), Column(0), Sticky(WE), Pady("0 8p"))

	listFrame := frame.TFrame()
	Grid(listFrame, Row(2), Column(0), Sticky(NEWS))
	GridColumnConfigure(listFrame.Window, 0, Weight(1))
	GridRowConfigure(listFrame.Window, 0, Weight(1))

	scroll := listFrame.TScrollbar()
	list := listFrame.Listbox(Exportselection(false), Height(16), Font(CourierFont(), 10))
	list.Configure(Yscrollcommand(func(e *Event) { e.ScrollSet(scroll) }))
	Grid(list, Row(0), Column(0), Sticky(NEWS))
	Grid(scroll, Row(0), Column(1), Sticky(NS))
	scroll.Configure(Command(func(e *Event) { e.Yview(list) }))

	choose := func() {
		selected := list.Curselection()
		if len(selected) == 0 {
			return
		}
		idx := selected[0]
		if idx < 0 || idx >= len(visible) {
			return
		}
		oid := visible[idx].oid
		Destroy(dialog.Window)
		pick(oid)
	}

	buttons := frame.TFrame()
	Grid(buttons, Row(3), Column(0), Sticky(E), Pady("8p 0"))
	cancelBtn := buttons.TButton(Txt("Cancel"), Command(func() { Destroy(dialog.Window) }))
	selectBtn := buttons.TButton(Txt("Select"), Command(choose))
	Grid(cancelBtn, Row(0), Column(0), Sticky(E), Padx("0 8p"))
	Grid(selectBtn, Row(0), Column(1), Sticky(E))

	render := func() {
		list.Delete(0, END)
		for _, c := range visible {
			list.Insert(END, c.display)
		}
		if len(visible) == 0 {
			return
		}
		list.SelectionClear(0, END)
		list.SelectionSet(0)
		list.Activate(0)
		list.See(0)
	}
	render()

	Bind(filter, "<KeyRelease>", Command(func() {
		visible = filterCommitChoices(all, filter.Textvariable())
		render()
	}))
	Bind(list, "<Double-Button-1>", Command(choose))
	Bind(dialog.Window, "<KeyPress-Escape>", Command(func() { Destroy(dialog.Window) }))
	Bind(dialog.Window, "<KeyPress-Return>", Command(choose))
	Bind(dialog.Window, "<Destroy>", Command(func() {
		if a.ui.selectWindow == dialog {
			a.ui.selectWindow = nil
		}
	}))

	if _, err := tkSafeEval("focus %s", filter); err != nil {
		slog.Debug("focus commit filter", slog.Any("error", err))
	}
	dialog.Center()
}

func (a *Controller) headLabel() string {
	if a.repo.headName == "" {
		return "HEAD"
	}
	return a.repo.headName
}
