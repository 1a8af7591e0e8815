package gui

import (
	"fmt"
	"log/slog"

	"github.com/thiagokokada/gitgui-go/internal/buildinfo"
	"github.com/thiagokokada/gitgui-go/internal/git"

	. "modernc.org/tk9.0"
)

func (a *Controller) initMenubar() {
	menubar := Menu(Tearoff(false))

	fileMenu := menubar.Menu(Tearoff(false))
	fileMenu.AddCommand(Lbl("Refresh"), Accelerator("F5"), Command(a.refreshAsync))
	fileMenu.AddCommand(Lbl("Copy Diff Selection"), Command(func() { a.copyDetailSelection(false) }))
	fileMenu.AddCommand(Lbl("Copy Diff Selection Without Markers"), Command(func() { a.copyDetailSelection(true) }))
	fileMenu.AddSeparator()
	fileMenu.AddCommand(Lbl("Quit"), Accelerator("Ctrl+Q"), Command(func() { Destroy(App) }))
	menubar.AddCascade(Lbl("File"), Mnu(fileMenu))

	commitMenu := menubar.Menu(Tearoff(false))
	commitMenu.AddCommand(Lbl("Commit"), Accelerator("Ctrl+Return"), Command(a.commit))
	commitMenu.AddCommand(Lbl("Amend Last Commit"), Accelerator("Ctrl+M"), Command(a.toggleAmend))
	commitMenu.AddCommand(Lbl("Sign Off"), Accelerator("Ctrl+S"), Command(a.signOff))
	commitMenu.AddCommand(Lbl("Set Commit Date..."), Command(a.showDateDialog))
	commitMenu.AddSeparator()
	commitMenu.AddCommand(Lbl("Load Previous Commit Message..."), Command(func() {
		a.showSelectCommitDialog(a.loadPreviousMessage)
	}))
	commitMenu.AddCommand(Lbl("Fixup Previous Commit..."), Command(func() {
		a.showSelectCommitDialog(a.fixupCommit)
	}))
	commitMenu.AddSeparator()
	commitMenu.AddCommand(Lbl("Clear Commit Message"), Command(a.clearMessage))
	menubar.AddCascade(Lbl("Commit"), Mnu(commitMenu))

	helpMenu := menubar.Menu(Tearoff(false))
	helpMenu.AddCommand(Lbl("Keyboard Shortcuts"), Accelerator("F1"), Command(a.showShortcutsDialog))
	helpMenu.AddCommand(Lbl("About "+buildinfo.Name), Command(a.showAboutDialog))
	menubar.AddCascade(Lbl("Help"), Mnu(helpMenu))

	App.Configure(Mnu(menubar))
}

func (a *Controller) showAboutDialog() {
	gitVersion, err := git.GitVersion()
	if err != nil {
		slog.Error("git version", slog.Any("error", err))
	}
	MessageBox(
		Parent(App),
		Title("About "+buildinfo.Name),
		Icon("info"),
		Msg(buildinfo.About(gitVersion)),
		Detail(fmt.Sprintf("Requires git %s or newer.", git.MinGitVersion())),
		Type("ok"),
	)
}
