package gui

import (
	"context"
	"log/slog"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/commitmsg"
	"github.com/thiagokokada/gitgui-go/internal/git"
	"github.com/thiagokokada/gitgui-go/internal/gui/tkutil"

	. "modernc.org/tk9.0"
)

const commitTimeout = 10 * time.Minute

// commitBackend runs commit requests through the git service.
type commitBackend struct {
	svc *git.Service
}

func (b commitBackend) StageModified(ctx context.Context) commitmsg.Result {
	res, err := b.svc.StageModified(ctx)
	return toResult(res, err)
}

func (b commitBackend) Commit(ctx context.Context, req commitmsg.Request) commitmsg.Result {
	res, err := b.svc.Commit(ctx, git.CommitOptions{
		Amend:    req.Amend,
		Message:  req.Message,
		Sign:     req.Sign,
		NoVerify: req.NoVerify,
		Date:     req.Date,
	})
	return toResult(res, err)
}

func toResult(res git.RunResult, err error) commitmsg.Result {
	return commitmsg.Result{Status: res.Status, Stdout: res.Stdout, Stderr: res.Stderr, Err: err}
}

// tkPrompter shows the commit checks as Tk message boxes. tk_messageBox has
// fixed button labels, so okLabel is not used.
type tkPrompter struct{}

func (tkPrompter) Information(title, text string) {
	MessageBox(
		Parent(App),
		Title(title),
		Icon("info"),
		Msg(text),
		Type("ok"),
	)
}

func (tkPrompter) Confirm(title, text, informative, okLabel string, defaultOK bool) bool {
	def := "cancel"
	if defaultOK {
		def = "ok"
	}
	answer := MessageBox(
		Parent(App),
		Title(title),
		Icon("question"),
		Msg(text),
		Detail(informative),
		Type("okcancel"),
		Default(def),
	)
	return answer == "ok"
}

func (a *Controller) repoState(ctx context.Context) commitmsg.RepoState {
	st := commitmsg.RepoState{
		Staged:   a.repo.status.HasStaged(),
		Modified: a.repo.status.HasModified(),
		Merging:  a.repo.status.Merging,
	}
	if a.editor.Flags.Amend && a.editor.CheckPublished {
		published, err := a.svc.HeadPublished(ctx)
		if err != nil {
			slog.Error("check published HEAD", slog.Any("error", err))
		}
		st.HeadPublished = published
	}
	return st
}

func (a *Controller) commit() {
	if a.runner.Busy() {
		return
	}
	// Pick up text typed since the last key release.
	a.editor.SetDescription(tkutil.TextContent(a.ui.description))
	if a.editor.SetSummary(a.ui.summary.Textvariable()) {
		a.redrawEditor()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st := a.repoState(ctx)
	cancel()

	req, ok := a.editor.Submit(tkPrompter{}, st)
	if !ok {
		return
	}
	runCtx, runCancel := context.WithTimeout(context.Background(), commitTimeout)
	started := a.runner.Start(runCtx, req, func(res commitmsg.Result) {
		runCancel()
		PostEvent(func() { a.onCommitFinished(res) }, false)
	})
	if !started {
		runCancel()
		return
	}
	a.setStatus("Committing...")
	a.showProgress(true)
	a.syncEditorWidgets()
}

func (a *Controller) onCommitFinished(res commitmsg.Result) {
	a.runner.Finish()
	a.showProgress(false)
	a.syncEditorWidgets()
	if res.Failed() {
		a.setStatus("Commit failed.")
		a.showResultDialog("Commit failed", res.Text())
	} else {
		a.setStatus(res.Output())
		if err := commitmsg.RemoveDraft(a.repo.gitDir); err != nil {
			slog.Error("remove draft", slog.Any("error", err))
		}
	}
	a.focusSummary()
	a.refreshAsync()
}

func (a *Controller) showResultDialog(title, text string) {
	dialog := App.Toplevel()
	dialog.WmTitle(title)
	WmTransient(dialog.Window, App)
	WmAttributes(dialog.Window, "-topmost", 1)

	frame := dialog.TFrame(Padding("12p"))
	Grid(frame, Row(0), Column(0), Sticky(NEWS))
	GridColumnConfigure(dialog.Window, 0, Weight(1))
	GridRowConfigure(dialog.Window, 0, Weight(1))
	GridColumnConfigure(frame.Window, 0, Weight(1))
	GridRowConfigure(frame.Window, 0, Weight(1))

	scroll := frame.TScrollbar()
	out := frame.Text(Width(80), Height(20), Wrap(WORD), Font(CourierFont(), 10))
	out.Configure(Yscrollcommand(func(e *Event) { e.ScrollSet(scroll) }))
	scroll.Configure(Command(func(e *Event) { e.Yview(out) }))
	out.Insert("1.0", text)
	out.Configure(State("disabled"))
	Grid(out, Row(0), Column(0), Sticky(NEWS))
	Grid(scroll, Row(0), Column(1), Sticky(NS))

	closeBtn := frame.TButton(Txt("Close"), Command(func() { Destroy(dialog.Window) }))
	if img := a.photos.get(closeIcon()); img != nil {
		closeBtn.Configure(Image(img), Compound("left"))
	}
	Grid(closeBtn, Row(1), Column(0), Columnspan(2), Sticky(E), Pady("8p 0"))
	Bind(dialog.Window, "<KeyPress-Escape>", Command(func() { Destroy(dialog.Window) }))
	dialog.Center()
}
