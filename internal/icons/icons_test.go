package icons

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestResolver(guess func(string) string) *Resolver {
	r := NewResolver(nil)
	r.guess = guess
	return r
}

func noMime(string) string { return "" }

type fakeTheme map[string]string

func (f fakeTheme) Lookup(name string) (string, bool) {
	p, ok := f[name]
	return p, ok
}

func TestResolveReturnsSameInstance(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	a := r.Resolve("icons:staged.svg")
	b := r.Resolve("icons:staged.svg")
	require.Same(t, a, b)
	assert.NotSame(t, a, r.Resolve("icons:modified.svg"))
	assert.Equal(t, "icons:staged.svg", a.Name())
	assert.True(t, a.Bundled())
}

func TestResolveConcurrentCallersShareInstance(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	const n = 32
	got := make([]*Icon, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got[i] = r.Resolve("/usr/share/icons/x.svg")
		}()
	}
	wg.Wait()
	for i := 1; i < n; i++ {
		require.Same(t, got[0], got[i])
	}
}

func TestBasenameFromFilename(t *testing.T) {
	t.Parallel()

	r := newTestResolver(noMime)
	tests := []struct {
		filename string
		want     string
	}{
		{"main.py", "file-code.svg"},
		{"MAIN.PY", "file-code.svg"},
		{"lib/foo.Rs", "file-code.svg"},
		{"script.zsh", "file-code.svg"},
		{"README", "file-text.svg"},
		{"notes.unknownext", "file-text.svg"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, r.BasenameFromFilename(tt.filename), tt.filename)
	}
}

func TestMimeTypeWinsOverExtension(t *testing.T) {
	t.Parallel()

	r := newTestResolver(func(string) string { return "image/x-custom" })
	assert.Equal(t, "file-media.svg", r.BasenameFromFilename("looks-like-code.py"))

	r = newTestResolver(func(string) string { return "application/octet-stream" })
	assert.Equal(t, "file-binary.svg", r.BasenameFromFilename("blob.c"))

	// "text" is checked before "image".
	r = newTestResolver(func(string) string { return "text/image-ish" })
	assert.Equal(t, "file-code.svg", r.BasenameFromFilename("x"))
}

func TestUnmatchedMimeFallsBackToExtension(t *testing.T) {
	t.Parallel()

	r := newTestResolver(func(string) string { return "application/x-sh" })
	assert.Equal(t, "file-code.svg", r.BasenameFromFilename("build.sh"))
	assert.Equal(t, "file-text.svg", r.BasenameFromFilename("build.cfg"))
}

func TestGuessMimeTypeSniffsContent(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	png := filepath.Join(dir, "picture")
	// PNG signature followed by an IHDR chunk header.
	data := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0x0d, 'I', 'H', 'D', 'R'}
	require.NoError(t, os.WriteFile(png, data, 0o644))

	assert.Equal(t, "image/png", GuessMimeType(png))
	assert.Equal(t, "", GuessMimeType(filepath.Join(dir, "missing")))
	assert.Equal(t, "file-media.svg", NewResolver(nil).BasenameFromFilename(png))
}

func TestStatus(t *testing.T) {
	t.Parallel()

	r := newTestResolver(noMime)
	assert.Equal(t, "circle-slash-red.svg", r.Status("a.py", true, true, false))
	assert.Equal(t, "staged.svg", r.Status("a.py", false, true, false))
	assert.Equal(t, "question-plain.svg", r.Status("a.py", false, false, true))
	assert.Equal(t, "file-code.svg", r.Status("a.py", false, false, false))
}

func TestFromThemeFallsBack(t *testing.T) {
	t.Parallel()

	r := NewResolver(nil)
	assert.Equal(t, "icons:check.svg", r.FromTheme("checkmark", "check.svg").Name())
	assert.Equal(t, "icons:sync.svg", r.FromTheme("sync.svg", "").Name())

	r.SetTheme(fakeTheme{"checkmark": "/themes/checkmark.svg", "empty": ""})
	assert.Equal(t, "/themes/checkmark.svg", r.FromTheme("checkmark.png", "check.svg").Name())
	assert.Equal(t, "icons:trashcan.svg", r.FromTheme("empty", "trashcan.svg").Name())
	assert.False(t, r.FromTheme("checkmark", "check.svg").Bundled())
}

func TestXDGThemeLookup(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	write := func(rel string) string {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte("<svg/>"), 0o644))
		return p
	}
	write("Custom/48x48/actions/document-save.png")
	scalable := write("Custom/scalable/actions/document-save.svg")
	hicolor := write("hicolor/16x16/apps/git-gui.png")
	breeze := write("Custom/actions/22/checkmark.svg")

	theme := NewXDGTheme("Custom", root)

	p, ok := theme.Lookup("document-save")
	require.True(t, ok)
	assert.Equal(t, scalable, p)

	p, ok = theme.Lookup("git-gui")
	require.True(t, ok)
	assert.Equal(t, hicolor, p)

	p, ok = theme.Lookup("checkmark")
	require.True(t, ok)
	assert.Equal(t, breeze, p)

	_, ok = theme.Lookup("missing-icon")
	assert.False(t, ok)
	_, ok = theme.Lookup("")
	assert.False(t, ok)
}

func TestNamedIconsHaveBundledFallbacks(t *testing.T) {
	t.Parallel()

	bundled := map[string]bool{}
	for _, name := range Bundled() {
		bundled[name] = true
	}
	named := []*Icon{
		Modified(), App(), Branch(), Commit(), OK(), Close(), Sync(),
		Discard(), Save(), Edit(), Configure(), Question(), CommitMarker(),
	}
	for _, icon := range named {
		require.True(t, icon.Bundled(), icon.Name())
		data, err := ReadAll(icon)
		require.NoError(t, err, icon.Name())
		assert.NotEmpty(t, data)
		assert.True(t, bundled[icon.Name()[len(namespace):]], icon.Name())
	}
	for _, basename := range []string{defaultFileIcon, "circle-slash-red.svg", "staged.svg", "question-plain.svg"} {
		assert.True(t, bundled[basename], basename)
	}
	for _, known := range knownMimeTypes {
		assert.True(t, bundled[known.basename], known.basename)
	}
}

func TestOpenMissingBundledIcon(t *testing.T) {
	t.Parallel()

	_, err := Open(Resolve("icons:does-not-exist.svg"))
	require.Error(t, err)
}
