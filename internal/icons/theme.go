package icons

import (
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/adrg/xdg"
)

// ThemeLookup finds an icon by name (without extension) in a desktop theme.
type ThemeLookup interface {
	Lookup(name string) (path string, ok bool)
}

// FromTheme asks the theme for name and falls back to the bundled fallback,
// or to name itself when fallback is empty.
func (r *Resolver) FromTheme(name, fallback string) *Icon {
	if theme := r.currentTheme(); theme != nil {
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if p, ok := theme.Lookup(base); ok && p != "" {
			return r.Resolve(p)
		}
	}
	if fallback == "" {
		fallback = name
	}
	return r.FromBasename(fallback)
}

const fallbackTheme = "hicolor"

var iconExtensions = []string{".svg", ".png"}

// XDGTheme looks icons up in freedesktop icon theme directories.
type XDGTheme struct {
	name string
	dirs []string

	mu    sync.Mutex
	found map[string]string
}

// NewXDGTheme searches the named theme, then hicolor. Without explicit dirs
// the XDG data directories and ~/.icons are used.
func NewXDGTheme(name string, dirs ...string) *XDGTheme {
	if len(dirs) == 0 {
		dirs = append(dirs, filepath.Join(xdg.Home, ".icons"), filepath.Join(xdg.DataHome, "icons"))
		for _, d := range xdg.DataDirs {
			dirs = append(dirs, filepath.Join(d, "icons"))
		}
	}
	return &XDGTheme{name: name, dirs: dirs, found: make(map[string]string)}
}

func (t *XDGTheme) themes() []string {
	if t.name == "" || t.name == fallbackTheme {
		return []string{fallbackTheme}
	}
	return []string{t.name, fallbackTheme}
}

func (t *XDGTheme) Lookup(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if p, ok := t.found[name]; ok {
		return p, p != ""
	}
	p := t.search(name)
	t.found[name] = p
	return p, p != ""
}

func (t *XDGTheme) search(name string) string {
	for _, theme := range t.themes() {
		for _, dir := range t.dirs {
			for _, ext := range iconExtensions {
				// Themes use either <size>/<context> or <context>/<size>.
				matches, err := filepath.Glob(filepath.Join(dir, theme, "*", "*", name+ext))
				if err != nil || len(matches) == 0 {
					continue
				}
				sort.SliceStable(matches, func(i, j int) bool {
					return sizeRank(matches[i]) < sizeRank(matches[j])
				})
				return matches[0]
			}
		}
	}
	return ""
}

var preferredSizes = []string{"scalable", "symbolic", "16x16", "16", "22x22", "22", "24x24", "24", "32x32", "32", "48x48", "48"}

func sizeRank(p string) int {
	parts := strings.Split(filepath.ToSlash(p), "/")
	for i, size := range preferredSizes {
		for _, part := range parts {
			if part == size {
				return i
			}
		}
	}
	return len(preferredSizes)
}
