package config

import (
	"context"
	"strings"
	"testing"

	format "github.com/go-git/go-git/v5/plumbing/format/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, text string) *format.Config {
	t.Helper()
	cfg := format.New()
	require.NoError(t, format.NewDecoder(strings.NewReader(text)).Decode(cfg))
	return cfg
}

func TestDefaults(t *testing.T) {
	s := FromLayers()
	assert.Equal(t, Defaults(), s)
	assert.True(t, s.LineBreak)
	assert.True(t, s.CheckPublished)
	assert.Equal(t, 72, s.TextWidth)
	assert.Equal(t, 8, s.TabWidth)
	assert.Equal(t, "#", s.CommentChar)
}

func TestFromLayersPrecedence(t *testing.T) {
	system := decode(t, `
[gitgui]
	textwidth = 80
	spellcheck = true
`)
	global := decode(t, `
[user]
	name = Alice Liddell
	email = alice@example.com
[gitgui]
	textwidth = 100
	icontheme = Adwaita
	dictionary = /usr/share/dict/words
`)
	local := decode(t, `
[gitgui]
	spellcheck = false
	linebreak = no
	signcommits
	tabwidth = 4
[core]
	commentChar = %
`)
	s := FromLayers(system, global, nil, local)

	assert.False(t, s.Spellcheck)
	assert.False(t, s.LineBreak)
	assert.True(t, s.SignCommits)
	assert.Equal(t, 100, s.TextWidth)
	assert.Equal(t, 4, s.TabWidth)
	assert.Equal(t, "Adwaita", s.IconTheme)
	assert.Equal(t, "/usr/share/dict/words", s.Dictionary)
	assert.Equal(t, "Alice Liddell", s.UserName)
	assert.Equal(t, "alice@example.com", s.UserEmail)
	assert.Equal(t, "%", s.CommentChar)
}

func TestFromLayersInvalidValuesKeepDefaults(t *testing.T) {
	cfg := decode(t, `
[gitgui]
	textwidth = wide
	tabwidth = -2
	checkpublishedcommits = maybe
[core]
	commentChar = auto
`)
	s := FromLayers(cfg)
	assert.Equal(t, 72, s.TextWidth)
	assert.Equal(t, 8, s.TabWidth)
	assert.True(t, s.CheckPublished)
	assert.Equal(t, "#", s.CommentChar)
}

func TestParseBool(t *testing.T) {
	for in, want := range map[string]bool{
		"":      true,
		"true":  true,
		"YES":   true,
		"on":    true,
		"1":     true,
		"false": false,
		"No":    false,
		"off":   false,
		"0":     false,
	} {
		got, err := ParseBool(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseBool("perhaps")
	assert.Error(t, err)
}

type recordingWriter struct {
	key, value string
}

func (w *recordingWriter) SetGlobalConfig(_ context.Context, key, value string) error {
	w.key, w.value = key, value
	return nil
}

func TestSetBool(t *testing.T) {
	w := &recordingWriter{}
	require.NoError(t, SetBool(context.Background(), w, KeySpellcheck, true))
	assert.Equal(t, "gitgui.spellcheck", w.key)
	assert.Equal(t, "true", w.value)
}
