// Package icons maps semantic names, file names and mime types to icon
// resources. Bundled icons live under the "icons:" namespace; icons found in
// the desktop theme are addressed by absolute path.
package icons

import (
	"embed"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/patrickmn/go-cache"
)

const namespace = "icons:"

//go:embed assets/*.svg
var assets embed.FS

// Icon is an immutable handle for an icon resource.
type Icon struct {
	name string
}

// Name is either "icons:<basename>" or an absolute path.
func (i *Icon) Name() string { return i.name }

// Bundled reports whether the icon is served from the embedded set.
func (i *Icon) Bundled() bool { return strings.HasPrefix(i.name, namespace) }

func (i *Icon) String() string { return i.name }

// Resolver memoizes icon handles by name.
type Resolver struct {
	cache *cache.Cache
	guess func(filename string) string

	mu    sync.RWMutex
	theme ThemeLookup
}

func NewResolver(theme ThemeLookup) *Resolver {
	return &Resolver{
		cache: cache.New(cache.NoExpiration, 0),
		guess: GuessMimeType,
		theme: theme,
	}
}

var defaultResolver = NewResolver(nil)

// Default returns the process-wide resolver used by the package functions.
func Default() *Resolver { return defaultResolver }

// SetTheme replaces the theme consulted by FromTheme. A nil theme disables
// theme lookups.
func (r *Resolver) SetTheme(theme ThemeLookup) {
	r.mu.Lock()
	r.theme = theme
	r.mu.Unlock()
}

func (r *Resolver) currentTheme() ThemeLookup {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.theme
}

// Resolve returns the handle for name. The same name always yields the same
// handle, including under concurrent callers.
func (r *Resolver) Resolve(name string) *Icon {
	if v, ok := r.cache.Get(name); ok {
		return v.(*Icon)
	}
	icon := &Icon{name: name}
	if err := r.cache.Add(name, icon, cache.NoExpiration); err != nil {
		// Another goroutine stored it first.
		if v, ok := r.cache.Get(name); ok {
			return v.(*Icon)
		}
	}
	return icon
}

// FromBasename resolves a bundled icon such as "staged.svg".
func (r *Resolver) FromBasename(basename string) *Icon {
	return r.Resolve(NameFromBasename(basename))
}

// NameFromBasename returns the namespaced resource name for a bundled icon.
func NameFromBasename(basename string) string {
	return namespace + basename
}

func Resolve(name string) *Icon { return defaultResolver.Resolve(name) }

func FromBasename(basename string) *Icon { return defaultResolver.FromBasename(basename) }

func FromFilename(filename string) *Icon { return defaultResolver.FromFilename(filename) }

func FromTheme(name, fallback string) *Icon { return defaultResolver.FromTheme(name, fallback) }

// Open returns the icon's data. Bundled icons are read from the embedded set,
// theme icons from disk.
func Open(icon *Icon) (io.ReadCloser, error) {
	if icon.Bundled() {
		f, err := assets.Open(path.Join("assets", strings.TrimPrefix(icon.name, namespace)))
		if err != nil {
			return nil, fmt.Errorf("open bundled icon %q: %w", icon.name, err)
		}
		return f, nil
	}
	f, err := os.Open(icon.name)
	if err != nil {
		return nil, fmt.Errorf("open theme icon: %w", err)
	}
	return f, nil
}

// ReadAll is Open followed by reading the whole resource.
func ReadAll(icon *Icon) ([]byte, error) {
	rc, err := Open(icon)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Bundled lists the basenames of the embedded icons.
func Bundled() []string {
	entries, err := fs.ReadDir(assets, "assets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}
