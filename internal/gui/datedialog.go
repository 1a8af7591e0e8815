package gui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/commitdate"
	"github.com/thiagokokada/gitgui-go/internal/gui/tkutil"

	. "modernc.org/tk9.0"
)

// initialCommitDate is where the date dialog opens: the last accepted date
// when there is one, otherwise the latest commit.
func (a *Controller) initialCommitDate() time.Time {
	if t, ok := a.dates.Last(); ok {
		return t
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.latestCommitTime(ctx)
}

// acceptCommitDate arms the picked date for the next commit and remembers
// it, one tick ahead, for the next time the dialog opens.
func (a *Controller) acceptCommitDate(picker *commitdate.Picker) string {
	date := picker.GitDate()
	a.editor.Session.SetDate(date)
	a.dates.Accepted(picker.DateTime())
	return date
}

func (a *Controller) showDateDialog() {
	if a.ui.dateWindow != nil {
		Destroy(a.ui.dateWindow.Window)
		a.ui.dateWindow = nil
	}
	picker := commitdate.NewPicker(a.initialCommitDate(), time.Local)

	dialog := App.Toplevel()
	a.ui.dateWindow = dialog
	dialog.WmTitle("Set Commit Date")
	WmTransient(dialog.Window, App)
	WmAttributes(dialog.Window, "-topmost", 1)

	frame := dialog.TFrame(Padding("12p"))
	Grid(frame, Row(0), Column(0), Sticky(NEWS))
	GridColumnConfigure(frame.Window, 1, Weight(1))

	Grid(frame.TLabel(Txt("Date:"), Anchor(E)), Row(0), Column(0), Sticky(E), Padx("0 4p"))
	dateEntry := frame.TEntry(Width(12), Textvariable(""))
	Grid(dateEntry, Row(0), Column(1), Sticky(W))

	Grid(frame.TLabel(Txt("Time:"), Anchor(E)), Row(1), Column(0), Sticky(E), Padx("0 4p"), Pady("4p 0"))
	timeEntry := frame.TEntry(Width(12), Textvariable(""))
	Grid(timeEntry, Row(1), Column(1), Sticky(W), Pady("4p 0"))

	sliderRow := frame.TFrame()
	Grid(sliderRow, Row(2), Column(0), Columnspan(2), Sticky(WE), Pady("8p 0"))
	GridColumnConfigure(sliderRow.Window, 1, Weight(1))

	syncing := false
	render := func() {
		syncing = true
		defer func() { syncing = false }()
		dateEntry.Configure(Textvariable(picker.Date().String()))
		timeEntry.Configure(Textvariable(commitdate.FormatTimeOfDay(picker.TimeOfDay())))
	}
	var slider *TScaleWidget
	renderSlider := func() {
		syncing = true
		defer func() { syncing = false }()
		if _, err := tkSafeEval("%s set %d", slider, picker.Slider()); err != nil {
			slog.Debug("set date slider", slog.Any("error", err))
		}
	}
	adjust := func(delta int) {
		picker.Adjust(delta)
		render()
		renderSlider()
	}

	minus := sliderRow.TButton(Txt("-"), Width(2), Command(func() { adjust(-1) }))
	Grid(minus, Row(0), Column(0), Sticky(W))
	slider = sliderRow.TScale(From(0), To(commitdate.SliderRange), Orient(HORIZONTAL), Command(func() {
		if syncing {
			return
		}
		picker.SetSlider(tkutil.Atoi(tkutil.EvalOrEmpty("%s get", slider)))
		render()
	}))
	Grid(slider, Row(0), Column(1), Sticky(WE), Padx("4p"))
	plus := sliderRow.TButton(Txt("+"), Width(2), Command(func() { adjust(1) }))
	Grid(plus, Row(0), Column(2), Sticky(E))

	readEntries := func() bool {
		d, err := commitdate.ParseDate(dateEntry.Textvariable())
		if err != nil {
			a.showError("Set Commit Date", err)
			return false
		}
		secs, err := commitdate.ParseTimeOfDay(timeEntry.Textvariable())
		if err != nil {
			a.showError("Set Commit Date", err)
			return false
		}
		picker.SetDate(d)
		picker.SetTimeOfDay(secs)
		return true
	}
	onTimeEdited := func() {
		if syncing {
			return
		}
		if secs, err := commitdate.ParseTimeOfDay(timeEntry.Textvariable()); err == nil {
			picker.SetTimeOfDay(secs)
			renderSlider()
		}
	}
	Bind(timeEntry, "<KeyRelease>", Command(onTimeEdited))
	Bind(timeEntry, "<FocusOut>", Command(func() {
		onTimeEdited()
		render()
	}))

	buttons := frame.TFrame()
	Grid(buttons, Row(3), Column(0), Columnspan(2), Sticky(E), Pady("12p 0"))
	reset := buttons.TButton(Txt("Reset"), Command(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		picker.Reset(a.latestCommitTime(ctx))
		render()
		renderSlider()
	}))
	if img := a.photos.get(syncIcon()); img != nil {
		reset.Configure(Image(img), Compound("left"))
	}
	cancelBtn := buttons.TButton(Txt("Cancel"), Command(func() { Destroy(dialog.Window) }))
	accept := func() {
		if !readEntries() {
			return
		}
		a.setStatus("Next commit date: " + a.acceptCommitDate(picker))
		Destroy(dialog.Window)
	}
	okBtn := buttons.TButton(Txt("OK"), Command(accept))
	if img := a.photos.get(okIcon()); img != nil {
		okBtn.Configure(Image(img), Compound("left"))
	}
	Grid(reset, Row(0), Column(0), Sticky(W), Padx("0 16p"))
	Grid(cancelBtn, Row(0), Column(1), Sticky(E), Padx("0 8p"))
	Grid(okBtn, Row(0), Column(2), Sticky(E))

	Bind(dialog.Window, "<KeyPress-Escape>", Command(func() { Destroy(dialog.Window) }))
	Bind(dialog.Window, "<KeyPress-Return>", Command(accept))
	// Grabbing needs a viewable window.
	Bind(dialog.Window, "<Map>", Command(func() { setGrab(dialog.Window, true) }))
	Bind(dialog.Window, "<Destroy>", Command(func() {
		if a.ui.dateWindow == dialog {
			a.ui.dateWindow = nil
			setGrab(dialog.Window, false)
		}
	}))

	render()
	renderSlider()
	dialog.Center()
}

// grabScript is the Tcl command that makes window modal, or releases it.
func grabScript(window string, on bool) string {
	if on {
		return "grab set " + tclList(window)
	}
	return "grab release " + tclList(window)
}

func setGrab(w *Window, on bool) {
	if _, err := tkSafeEval("%s", grabScript(fmt.Sprint(w), on)); err != nil {
		slog.Debug("dialog grab", slog.Bool("on", on), slog.Any("error", err))
	}
}
