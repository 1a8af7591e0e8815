// Package config reads and writes the commit tool settings kept in git
// config under the "gitgui" section.
package config

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
)

const section = "gitgui"

const (
	KeySpellcheck     = "spellcheck"
	KeyDictionary     = "dictionary"
	KeySignCommits    = "signcommits"
	KeyLineBreak      = "linebreak"
	KeyTextWidth      = "textwidth"
	KeyTabWidth       = "tabwidth"
	KeyExpandTab      = "expandtab"
	KeyCheckPublished = "checkpublishedcommits"
	KeyIconTheme      = "icontheme"
)

const (
	defaultTextWidth   = 72
	defaultTabWidth    = 8
	defaultCommentChar = "#"
)

type Settings struct {
	Spellcheck     bool
	Dictionary     string
	SignCommits    bool
	LineBreak      bool
	TextWidth      int
	TabWidth       int
	ExpandTab      bool
	CheckPublished bool
	IconTheme      string
	UserName       string
	UserEmail      string
	CommentChar    string
}

func Defaults() Settings {
	return Settings{
		LineBreak:      true,
		TextWidth:      defaultTextWidth,
		TabWidth:       defaultTabWidth,
		CheckPublished: true,
		CommentChar:    defaultCommentChar,
	}
}

// FromLayers resolves settings from git config layers ordered from lowest to
// highest precedence, e.g. system, global, repository.
func FromLayers(layers ...*format.Config) Settings {
	l := lookup(layers)
	s := Defaults()
	s.Spellcheck = l.bool(section, KeySpellcheck, s.Spellcheck)
	s.Dictionary = l.string(section, KeyDictionary, s.Dictionary)
	s.SignCommits = l.bool(section, KeySignCommits, s.SignCommits)
	s.LineBreak = l.bool(section, KeyLineBreak, s.LineBreak)
	s.TextWidth = l.int(section, KeyTextWidth, s.TextWidth)
	s.TabWidth = l.int(section, KeyTabWidth, s.TabWidth)
	s.ExpandTab = l.bool(section, KeyExpandTab, s.ExpandTab)
	s.CheckPublished = l.bool(section, KeyCheckPublished, s.CheckPublished)
	s.IconTheme = l.string(section, KeyIconTheme, s.IconTheme)
	s.UserName = l.string("user", "name", "")
	s.UserEmail = l.string("user", "email", "")
	if cc := l.string("core", "commentChar", ""); cc != "" && cc != "auto" {
		s.CommentChar = cc
	}
	return s
}

type lookup []*format.Config

func (l lookup) raw(sec, key string) (string, bool) {
	for i := len(l) - 1; i >= 0; i-- {
		cfg := l[i]
		if cfg == nil || !cfg.HasSection(sec) {
			continue
		}
		s := cfg.Section(sec)
		if s.HasOption(key) {
			return s.Option(key), true
		}
	}
	return "", false
}

func (l lookup) string(sec, key, def string) string {
	if v, ok := l.raw(sec, key); ok {
		return v
	}
	return def
}

func (l lookup) bool(sec, key string, def bool) bool {
	v, ok := l.raw(sec, key)
	if !ok {
		return def
	}
	b, err := ParseBool(v)
	if err != nil {
		slog.Warn("invalid boolean in git config", slog.String("key", sec+"."+key), slog.String("value", v))
		return def
	}
	return b
}

func (l lookup) int(sec, key string, def int) int {
	v, ok := l.raw(sec, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil || n <= 0 {
		slog.Warn("invalid number in git config", slog.String("key", sec+"."+key), slog.String("value", v))
		return def
	}
	return n
}

// ParseBool accepts the spellings git accepts for boolean values. A key
// present without a value counts as true.
func ParseBool(v string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, fmt.Errorf("invalid boolean %q", v)
}

// Writer persists a single global git config value.
type Writer interface {
	SetGlobalConfig(ctx context.Context, key, value string) error
}

// SetBool stores gitgui.<key> in the global git config.
func SetBool(ctx context.Context, w Writer, key string, value bool) error {
	return w.SetGlobalConfig(ctx, section+"."+key, strconv.FormatBool(value))
}
