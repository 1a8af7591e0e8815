package gui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/config"
	"github.com/thiagokokada/gitgui-go/internal/debounce"
	"github.com/thiagokokada/gitgui-go/internal/gui/tkutil"
	"github.com/thiagokokada/gitgui-go/internal/spellcheck"

	. "modernc.org/tk9.0"
)

const (
	spellDebounceDelay = 300 * time.Millisecond
	misspelledTag      = "misspelled"
	maxSuggestions     = 8
)

func (a *Controller) initSpellUI() {
	if _, err := tkSafeEval("%s tag configure %s -underline 1 -foreground {%s}",
		a.ui.description, misspelledTag, a.theme.palette.Misspelled); err != nil {
		slog.Error("configure spelling tag", slog.Any("error", err))
	}
	a.ui.spellMenu = App.Menu(Tearoff(false))
	handler := func(e *Event) { a.showSpellMenu(e) }
	Bind(a.ui.description, "<Button-2>", Command(handler))
	Bind(a.ui.description, "<Button-3>", Command(handler))
}

// setSpellcheck turns checking on or off and persists the choice.
func (a *Controller) setSpellcheck(on bool) {
	a.editor.Flags.Spellcheck = on
	if on {
		a.setStatus("Loading dictionary...")
		a.loadDictionaryAsync(func() { a.setStatus("Spell checking enabled.") })
	} else {
		a.syncSpellChecker()
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := config.SetBool(ctx, a.svc, config.KeySpellcheck, on); err != nil {
			slog.Error("save spellcheck setting", slog.Any("error", err))
		}
	}()
}

// loadDictionaryAsync loads the dictionary off the Tk thread. The toggle may
// have changed meanwhile, so the checker follows the current flag.
func (a *Controller) loadDictionaryAsync(enabled func()) {
	go func() {
		a.spell.Load()
		PostEvent(func() {
			if a.syncSpellChecker() && enabled != nil {
				enabled()
			}
		}, false)
	}()
}

// syncSpellChecker applies the spell check flag to the checker and the
// description. It reports whether checking is on.
func (a *Controller) syncSpellChecker() bool {
	on := a.editor.Flags.Spellcheck
	a.spell.Enable(on)
	if on {
		a.recheckSpelling()
	} else {
		a.clearMisspelled()
	}
	return on
}

func (a *Controller) scheduleSpellcheck() {
	if !a.editor.Flags.Spellcheck {
		a.clearMisspelled()
		return
	}
	a.state.spell.mu.Lock()
	deb := debounce.Ensure(&a.state.spell.debouncer, spellDebounceDelay, func() {
		PostEvent(a.recheckSpelling, false)
	})
	a.state.spell.mu.Unlock()
	deb.Trigger()
}

func (a *Controller) stopSpellcheck() {
	a.state.spell.mu.Lock()
	defer a.state.spell.mu.Unlock()
	if a.state.spell.debouncer != nil {
		a.state.spell.debouncer.Stop()
		a.state.spell.debouncer = nil
	}
}

func (a *Controller) recheckSpelling() {
	if a.ui.description == nil {
		return
	}
	ranges := a.spell.Misspelled(tkutil.TextContent(a.ui.description))
	a.clearMisspelled()
	a.state.spell.ranges = ranges
	for _, r := range ranges {
		a.ui.description.TagAdd(misspelledTag, textIndex(r.Line, r.Start), textIndex(r.Line, r.End))
	}
}

func (a *Controller) clearMisspelled() {
	a.state.spell.ranges = nil
	if a.ui.description != nil {
		a.ui.description.TagRemove(misspelledTag, "1.0", END)
	}
}

// misspelledAt returns the flagged word covering a text position.
func misspelledAt(ranges []spellcheck.Range, line, col int) (spellcheck.Range, bool) {
	for _, r := range ranges {
		if r.Line == line && col >= r.Start && col < r.End {
			return r, true
		}
	}
	return spellcheck.Range{}, false
}

func (a *Controller) showSpellMenu(e *Event) {
	if e == nil || !a.editor.Flags.Spellcheck {
		return
	}
	line, col := parseTextIndex(tkutil.EvalOrEmpty("%s index @%d,%d", a.ui.description, e.X, e.Y))
	word, ok := misspelledAt(a.state.spell.ranges, line, col)
	if !ok {
		return
	}
	menu := a.ui.spellMenu
	if _, err := tkSafeEval("%s delete 0 end", menu); err != nil {
		slog.Error("clear spelling menu", slog.Any("error", err))
	}
	suggestions := a.spell.Suggest(word.Word)
	if len(suggestions) > maxSuggestions {
		suggestions = suggestions[:maxSuggestions]
	}
	for _, s := range suggestions {
		menu.AddCommand(Lbl(s), Command(func() { a.replaceWord(word, s) }))
	}
	if len(suggestions) == 0 {
		menu.AddCommand(Lbl("(no suggestions)"), State("disabled"))
	}
	menu.AddSeparator()
	menu.AddCommand(Lbl(fmt.Sprintf("Add %q to dictionary", word.Word)), Command(func() {
		a.spell.AddWords(word.Word)
		a.recheckSpelling()
	}))
	Popup(menu.Window, e.XRoot, e.YRoot, nil)
}

func (a *Controller) replaceWord(r spellcheck.Range, replacement string) {
	start, end := textIndex(r.Line, r.Start), textIndex(r.Line, r.End)
	a.ui.description.Delete(start, end)
	a.ui.description.Insert(start, replacement)
	a.onDescriptionChanged()
}
