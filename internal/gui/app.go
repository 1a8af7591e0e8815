package gui

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/buildinfo"
	"github.com/thiagokokada/gitgui-go/internal/commitmsg"
	"github.com/thiagokokada/gitgui-go/internal/config"
	"github.com/thiagokokada/gitgui-go/internal/git"
	"github.com/thiagokokada/gitgui-go/internal/icons"
	"github.com/thiagokokada/gitgui-go/internal/spellcheck"

	. "modernc.org/tk9.0"
	_ "modernc.org/tk9.0/themes/azure" // load theme
)

// RunConfig describes the parameters that control the GUI runtime.
type RunConfig struct {
	RepoPath        string
	ThemePreference ThemePreference
	AutoReload      bool
	SyntaxHighlight bool
	NativeDiff      bool
	Amend           bool
	IconTheme       string
	Verbose         bool
}

func Run(cfg RunConfig) error {
	if cfg.RepoPath == "" {
		cfg.RepoPath = "."
	}
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	if err := InitializeExtension("eval"); err != nil && err != AlreadyInitialized {
		return fmt.Errorf("init eval extension: %v", err)
	}
	svc, err := git.Open(cfg.RepoPath)
	if err != nil {
		return err
	}
	return newController(svc, cfg).run()
}

func newController(svc *git.Service, cfg RunConfig) *Controller {
	pref := cfg.ThemePreference
	if pref < ThemeAuto || pref > ThemeDark {
		pref = ThemeAuto
	}
	settings := config.FromLayers(svc.ConfigLayers()...)

	editor := commitmsg.NewEditor(nil)
	editor.CommentChar = settings.CommentChar
	editor.CheckPublished = settings.CheckPublished
	editor.Wrap = commitmsg.WrapOptions{
		Enabled:  settings.LineBreak,
		Width:    settings.TextWidth,
		TabWidth: settings.TabWidth,
	}
	editor.Flags.AutoWrap = settings.LineBreak
	editor.Flags.Sign = settings.SignCommits
	editor.Flags.Spellcheck = settings.Spellcheck

	spell := spellcheck.New()
	spell.AddIdentity(settings.UserName, settings.UserEmail)
	if settings.Dictionary != "" {
		if err := spell.LoadDictionary(settings.Dictionary); err != nil {
			slog.Error("load dictionary", slog.String("path", settings.Dictionary), slog.Any("error", err))
		}
	}
	iconTheme := cfg.IconTheme
	if iconTheme == "" {
		iconTheme = settings.IconTheme
	}
	if iconTheme != "" {
		icons.Default().SetTheme(icons.NewXDGTheme(iconTheme))
	}

	app := &Controller{
		svc:      svc,
		settings: settings,
		editor:   editor,
		runner:   commitmsg.NewRunner(commitBackend{svc: svc}),
		spell:    spell,
		cfg: controllerConfig{
			autoReloadRequested: cfg.AutoReload,
			syntaxHighlight:     cfg.SyntaxHighlight,
			nativeDiff:          cfg.NativeDiff,
			startAmend:          cfg.Amend,
		},
		repo: controllerRepo{
			path:   svc.RepoPath(),
			gitDir: svc.GitDir(),
		},
		theme: controllerTheme{
			pref: pref,
		},
	}
	app.state.diff.syntaxTags = make(map[string]string)
	return app
}

func (a *Controller) run() error {
	defer a.shutdown()
	a.theme.palette = paletteForPreference(a.theme.pref)
	if a.theme.palette.ThemeName != "" {
		err := ActivateTheme(a.theme.palette.ThemeName)
		if err != nil {
			slog.Error(
				"activate theme",
				slog.String("theme", a.theme.palette.ThemeName),
				slog.Any("error", err),
			)
		}
	}
	applyAppIcon(&a.photos)
	a.buildUI()
	a.initMenubar()
	a.bindShortcuts()
	a.loadInitialMessage()
	if a.editor.Flags.Spellcheck {
		a.loadDictionaryAsync(nil)
	}
	if a.cfg.startAmend {
		a.toggleAmend()
	}
	a.initAutoReload(a.cfg.autoReloadRequested)
	a.setStatus("Loading status...")
	a.refreshAsync()
	a.focusSummary()
	App.WmTitle(buildinfo.Name)
	App.SetResizable(true, true)
	App.Center().Wait()
	return nil
}

// loadInitialMessage reads the status once up front so the draft (or
// MERGE_MSG) and the amend check see the real repository state.
func (a *Controller) loadInitialMessage() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	status, err := a.svc.Status(ctx)
	if err != nil {
		slog.Error("initial status", slog.Any("error", err))
		return
	}
	head, err := a.svc.HeadName(ctx)
	if err != nil {
		slog.Debug("head name", slog.Any("error", err))
	}
	a.applyStatus(status, head, buildStatusRows(a.repo.path, status))
	msg, err := commitmsg.LoadDraft(a.repo.gitDir, status.Merging)
	if err != nil {
		slog.Error("load draft", slog.Any("error", err))
		return
	}
	if msg != "" {
		a.editor.SetMessage(msg)
	}
}

func (a *Controller) setStatus(msg string) {
	PostEvent(func() {
		if a.ui.status != nil {
			a.ui.status.Configure(Txt(msg))
		}
	}, false)
}

// shutdown stops background work and keeps the unfinished message for the
// next session. An amend in progress is abandoned first so the saved draft
// is the user's own text.
func (a *Controller) shutdown() {
	a.disableAutoReload()
	// The widgets are gone once the main loop returns.
	a.ui = appWidgets{}
	defer a.stopSpellcheck()
	if a.editor == nil {
		return
	}
	if a.editor.Flags.Amend {
		if err := a.editor.SetAmend(false, nil); err != nil {
			slog.Error("leave amend", slog.Any("error", err))
		}
		a.dates.LeaveAmend()
	}
	if a.repo.gitDir == "" {
		return
	}
	if err := commitmsg.SaveDraft(a.repo.gitDir, a.editor.Message(true)); err != nil {
		slog.Error("save draft", slog.Any("error", err))
	}
}
