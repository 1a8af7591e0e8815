package gui

import (
	"github.com/thiagokokada/gitgui-go/internal/commitdate"
	"github.com/thiagokokada/gitgui-go/internal/commitmsg"
	"github.com/thiagokokada/gitgui-go/internal/config"
	"github.com/thiagokokada/gitgui-go/internal/git"
	"github.com/thiagokokada/gitgui-go/internal/spellcheck"
)

type Controller struct {
	svc *git.Service

	cfg      controllerConfig
	repo     controllerRepo
	theme    controllerTheme
	settings config.Settings

	editor *commitmsg.Editor
	runner *commitmsg.Runner
	dates  commitdate.Memory
	spell  *spellcheck.Checker
	photos photoCache

	ui appWidgets

	state controllerState
}

type controllerConfig struct {
	autoReloadRequested bool
	syntaxHighlight     bool
	nativeDiff          bool
	startAmend          bool
}

type controllerRepo struct {
	path     string
	gitDir   string
	headName string
	status   git.Status
}

type controllerTheme struct {
	pref    ThemePreference
	palette colorPalette
}

type controllerState struct {
	status statusState
	diff   diffState
	spell  spellState
	watch  autoReloadState
}
