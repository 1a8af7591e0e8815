package gui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/commitdate"
	"github.com/thiagokokada/gitgui-go/internal/commitmsg"
	"github.com/thiagokokada/gitgui-go/internal/git"
	"github.com/thiagokokada/gitgui-go/internal/gui/tkutil"

	. "modernc.org/tk9.0"
)

func toggleLabel(on bool, label string) string {
	if on {
		return "[x] " + label
	}
	return "[ ] " + label
}

// dateMenuLabel names the date action after the armed override, if any.
func dateMenuLabel(armed string) string {
	if armed == "" {
		return "Set Commit Date..."
	}
	return fmt.Sprintf("Commit Date: %s...", armed)
}

func recentCommits(entries []git.Entry) []commitmsg.RecentCommit {
	out := make([]commitmsg.RecentCommit, len(entries))
	for i, e := range entries {
		out[i] = commitmsg.RecentCommit{OID: e.Hash, Summary: e.Summary}
	}
	return out
}

func (a *Controller) postActionsMenu() {
	if a.ui.actionsMenu == nil {
		a.ui.actionsMenu = App.Menu(Tearoff(false))
	}
	a.fillActionsMenu(a.ui.actionsMenu)
	button := a.ui.actionsButton
	x := tkutil.Atoi(tkutil.EvalOrEmpty("winfo rootx %s", button))
	y := tkutil.Atoi(tkutil.EvalOrEmpty("winfo rooty %s", button)) +
		tkutil.Atoi(tkutil.EvalOrEmpty("winfo height %s", button))
	Popup(a.ui.actionsMenu.Window, x, y, nil)
}

// fillActionsMenu rebuilds menu from the current editor state. It backs both
// the Actions button and the Commit menubar entry.
func (a *Controller) fillActionsMenu(menu *MenuWidget) {
	if _, err := tkSafeEval("%s delete 0 end; foreach sub [winfo children %s] {destroy $sub}", menu, menu); err != nil {
		slog.Error("clear actions menu", slog.Any("error", err))
	}
	flags := a.editor.Flags
	menu.AddCommand(Lbl(toggleLabel(flags.Spellcheck, "Spell Check")), Command(func() {
		a.setSpellcheck(!a.editor.Flags.Spellcheck)
	}))
	amend := menu.AddCommand(Lbl(toggleLabel(flags.Amend, "Amend Last Commit")), Accelerator("Ctrl+M"), Command(a.toggleAmend))
	if !a.canAmend() {
		a.disableMenuItem(menu, amend)
	}
	menu.AddCommand(Lbl(toggleLabel(flags.Sign, "Create Signed Commit")), Command(func() {
		a.editor.Flags.Sign = !a.editor.Flags.Sign
	}))
	menu.AddCommand(Lbl(toggleLabel(flags.NoVerify, "Bypass Commit Hooks")), Command(func() {
		a.editor.Flags.NoVerify = !a.editor.Flags.NoVerify
	}))
	menu.AddCommand(Lbl(toggleLabel(flags.AutoWrap, "Auto-Wrap Lines")), Command(func() {
		a.editor.Flags.AutoWrap = !a.editor.Flags.AutoWrap
	}))
	menu.AddSeparator()
	menu.AddCommand(Lbl(dateMenuLabel(a.editor.Session.PeekDate())), Command(a.showDateDialog))
	if a.editor.Session.HasDate() {
		menu.AddCommand(Lbl("Clear Commit Date"), Command(func() { a.editor.Session.SetDate("") }))
	}
	menu.AddCommand(Lbl("Sign Off"), Accelerator("Ctrl+S"), Command(a.signOff))
	menu.AddSeparator()

	commits, err := a.svc.RecentCommits(commitmsg.RecentCommitCount + 1)
	if err != nil {
		slog.Error("recent commits", slog.Any("error", err))
	}
	recent := recentCommits(commits)
	loadMenu := menu.Menu(Tearoff(false))
	a.fillRecentMenu(loadMenu, commitmsg.BuildRecentMenu(recent, commitmsg.RecentCommitCount, ""), a.loadPreviousMessage)
	menu.AddCascade(Lbl("Load Previous Commit Message"), Mnu(loadMenu))
	fixupMenu := menu.Menu(Tearoff(false))
	a.fillRecentMenu(fixupMenu, commitmsg.BuildRecentMenu(recent, commitmsg.RecentCommitCount, commitmsg.FixupPrefix), a.fixupCommit)
	menu.AddCascade(Lbl("Fixup Previous Commit"), Mnu(fixupMenu))
	menu.AddSeparator()
	menu.AddCommand(Lbl("Clear Commit Message"), Command(a.clearMessage))
}

func (a *Controller) fillRecentMenu(menu *MenuWidget, recent commitmsg.RecentMenu, pick func(oid string)) {
	if len(recent.Items) == 0 {
		item := menu.AddCommand(Lbl("(no commits)"))
		a.disableMenuItem(menu, item)
		return
	}
	for _, item := range recent.Items {
		menu.AddCommand(Lbl(item.Label), Command(func() { pick(item.OID) }))
	}
	if recent.More {
		menu.AddSeparator()
		menu.AddCommand(Lbl("More..."), Command(func() { a.showSelectCommitDialog(pick) }))
	}
}

func (a *Controller) disableMenuItem(menu *MenuWidget, item *MenuItem) {
	if _, err := tkSafeEval("%s entryconfigure %s -state disabled", menu, item); err != nil {
		slog.Debug("disable menu item", slog.Any("error", err))
	}
}

func (a *Controller) canAmend() bool {
	return a.editor.CanAmend() && !a.repo.status.Initial
}

func (a *Controller) toggleAmend() {
	on := !a.editor.Flags.Amend
	if on && !a.canAmend() {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := a.editor.SetAmend(on, func() (string, error) {
		return a.svc.CommitMessage(ctx, "HEAD")
	})
	if err != nil {
		a.showError("Amend Last Commit", err)
		return
	}
	if on {
		a.dates.EnterAmend(a.latestCommitTime(ctx))
		a.setStatus("Amending the last commit.")
	} else {
		a.dates.LeaveAmend()
		a.setStatus("")
	}
	a.updateBranchLabel()
}

func (a *Controller) latestCommitTime(ctx context.Context) time.Time {
	res, err := a.svc.LatestCommitTime(ctx)
	if err != nil {
		slog.Error("latest commit time", slog.Any("error", err))
		return time.Now()
	}
	return commitdate.LatestCommitTime(res.Status, res.Stdout, time.Now())
}

func (a *Controller) signOff() {
	name, email := a.settings.UserName, a.settings.UserEmail
	if name == "" || email == "" {
		MessageBox(
			Parent(App),
			Title("Sign Off"),
			Icon("error"),
			Msg("Set user.name and user.email in your git configuration to sign off commits."),
			Type("ok"),
		)
		return
	}
	if !a.editor.SignOff(name, email) {
		return
	}
	a.redrawEditor()
}

func (a *Controller) loadPreviousMessage(oid string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	msg, err := a.svc.CommitMessage(ctx, oid)
	if err != nil {
		a.showError("Load Previous Commit Message", err)
		return
	}
	a.editor.SetMessage(msg)
	a.focusDescription()
}

func (a *Controller) fixupCommit(oid string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	msg, err := a.svc.CommitMessage(ctx, oid)
	if err != nil {
		a.showError("Fixup Previous Commit", err)
		return
	}
	a.editor.SetMessage(commitmsg.FixupMessage(commitmsg.Parse(msg).Summary))
	a.focusSummary()
}

func (a *Controller) clearMessage() {
	a.editor.Clear()
	a.focusSummary()
}

func (a *Controller) showError(title string, err error) {
	slog.Error(title, slog.Any("error", err))
	MessageBox(
		Parent(App),
		Title(title),
		Icon("error"),
		Msg(err.Error()),
		Type("ok"),
	)
}
