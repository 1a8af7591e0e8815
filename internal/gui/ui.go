package gui

import (
	"fmt"
	"log/slog"

	. "modernc.org/tk9.0"
)

func (a *Controller) buildUI() {
	GridColumnConfigure(App, 0, Weight(1))
	GridRowConfigure(App, 1, Weight(1))

	controls := App.TFrame(Padding("8p"))
	Grid(controls, Row(0), Column(0), Sticky(WE))
	GridColumnConfigure(controls.Window, 1, Weight(1))

	a.ui.repoLabel = controls.TLabel(Txt(fmt.Sprintf("Repository: %s", a.repo.path)), Anchor(W))
	Grid(a.ui.repoLabel, Row(0), Column(0), Sticky(W))
	a.ui.branchLabel = controls.TLabel(Anchor(W))
	Grid(a.ui.branchLabel, Row(0), Column(1), Sticky(W), Padx("12p 0"))
	a.ui.reloadButton = controls.TButton(Txt("Reload"), Command(a.onReloadButton))
	if img := a.photos.get(syncIcon()); img != nil {
		a.ui.reloadButton.Configure(Image(img), Compound("left"))
	}
	Grid(a.ui.reloadButton, Row(0), Column(2), Sticky(E))

	pane := App.TPanedwindow(Orient(VERTICAL))
	Grid(pane, Row(1), Column(0), Sticky(NEWS), Padx("4p"), Pady("4p"))

	reviewArea := pane.TFrame()
	editorArea := pane.TFrame(Padding("4p"))
	pane.Add(reviewArea.Window)
	pane.Add(editorArea.Window)
	GridRowConfigure(reviewArea.Window, 0, Weight(1))
	GridColumnConfigure(reviewArea.Window, 0, Weight(1))

	reviewPane := reviewArea.TPanedwindow(Orient(HORIZONTAL))
	Grid(reviewPane, Row(0), Column(0), Sticky(NEWS))

	statusFrame := reviewPane.TFrame()
	textFrame := reviewPane.TFrame()
	fileFrame := reviewPane.TFrame()
	reviewPane.Add(statusFrame.Window)
	reviewPane.Add(textFrame.Window)
	reviewPane.Add(fileFrame.Window)
	configurePane := func(window *Window, options string) {
		if _, err := tkSafeEval("%s pane %s %s", reviewPane, window, options); err != nil {
			slog.Debug("configure pane", slog.String("options", options), slog.Any("error", err))
		}
	}
	configurePane(statusFrame.Window, "-weight 2")
	configurePane(textFrame.Window, "-weight 5")
	configurePane(fileFrame.Window, "-weight 1")

	for _, frame := range []*TFrameWidget{statusFrame, textFrame, fileFrame} {
		GridRowConfigure(frame.Window, 0, Weight(1))
		GridColumnConfigure(frame.Window, 0, Weight(1))
	}

	treeScroll := statusFrame.TScrollbar()
	a.ui.statusTree = statusFrame.TTreeview(
		Show("tree"),
		Selectmode("browse"),
		Height(16),
		Yscrollcommand(func(e *Event) { e.ScrollSet(treeScroll) }),
	)
	a.ui.statusTree.TagConfigure("group", Foreground(a.theme.palette.StatusGroup))
	Grid(a.ui.statusTree, Row(0), Column(0), Sticky(NEWS))
	Grid(treeScroll, Row(0), Column(1), Sticky(NS))
	treeScroll.Configure(Command(func(e *Event) { e.Yview(a.ui.statusTree) }))
	Bind(a.ui.statusTree, "<<TreeviewSelect>>", Command(a.onStatusSelectionChanged))

	detailYScroll := textFrame.TScrollbar(Command(func(e *Event) { e.Yview(a.ui.diffDetail) }))
	detailXScroll := textFrame.TScrollbar(Orient(HORIZONTAL), Command(func(e *Event) { e.Xview(a.ui.diffDetail) }))
	a.ui.diffDetail = textFrame.Text(Wrap(NONE), Font(CourierFont(), 11), Exportselection(false), Tabs("1c"))
	a.ui.diffDetail.Configure(Yscrollcommand(func(e *Event) {
		e.ScrollSet(detailYScroll)
		a.onDiffScrolled()
	}))
	a.ui.diffDetail.Configure(Xscrollcommand(func(e *Event) { e.ScrollSet(detailXScroll) }))
	palette := a.theme.palette
	a.ui.diffDetail.TagConfigure("diffAdd", Background(palette.DiffAdd))
	a.ui.diffDetail.TagConfigure("diffDel", Background(palette.DiffDel))
	a.ui.diffDetail.TagConfigure("diffHeader", Background(palette.DiffHeader))
	a.ui.diffDetail.TagConfigure("diffHunk", Background(palette.DiffHunk))
	Grid(a.ui.diffDetail, Row(0), Column(0), Sticky(NEWS))
	Grid(detailYScroll, Row(0), Column(1), Sticky(NS))
	Grid(detailXScroll, Row(1), Column(0), Sticky(WE))
	a.ui.diffDetail.Configure(State("disabled"))

	fileScroll := fileFrame.TScrollbar()
	a.ui.diffFileList = fileFrame.Listbox(Exportselection(false), Width(32))
	a.ui.diffFileList.Configure(Yscrollcommand(func(e *Event) { e.ScrollSet(fileScroll) }))
	Grid(a.ui.diffFileList, Row(0), Column(0), Sticky(NEWS))
	Grid(fileScroll, Row(0), Column(1), Sticky(NS))
	fileScroll.Configure(Command(func(e *Event) { e.Yview(a.ui.diffFileList) }))
	Bind(a.ui.diffFileList, "<<ListboxSelect>>", Command(a.onFileSelectionChanged))

	a.buildEditor(editorArea)

	a.ui.status = App.TLabel(Anchor(W), Relief(SUNKEN), Padding("4p"))
	Grid(a.ui.status, Row(2), Column(0), Sticky(WE))

	a.clearDetailText("Loading staged changes...")
}
