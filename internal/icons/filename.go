package icons

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/h2non/filetype"
)

type mimeIcon struct {
	substring string
	basename  string
}

// Checked in order; the first substring found in the guessed mime type wins.
var knownMimeTypes = []mimeIcon{
	{"text", "file-code.svg"},
	{"image", "file-media.svg"},
	{"octet", "file-binary.svg"},
}

var knownExtensions = map[string]string{
	".bash": "file-code.svg",
	".c":    "file-code.svg",
	".cpp":  "file-code.svg",
	".css":  "file-code.svg",
	".cxx":  "file-code.svg",
	".h":    "file-code.svg",
	".hpp":  "file-code.svg",
	".hs":   "file-code.svg",
	".html": "file-code.svg",
	".java": "file-code.svg",
	".js":   "file-code.svg",
	".ksh":  "file-code.svg",
	".lisp": "file-code.svg",
	".perl": "file-code.svg",
	".pl":   "file-code.svg",
	".py":   "file-code.svg",
	".rb":   "file-code.svg",
	".rs":   "file-code.svg",
	".sh":   "file-code.svg",
	".zsh":  "file-code.svg",
}

const defaultFileIcon = "file-text.svg"

// GuessMimeType guesses from the extension first and sniffs the file content
// when the extension is unknown. It returns "" when nothing matches.
func GuessMimeType(filename string) string {
	if mt := mime.TypeByExtension(filepath.Ext(filename)); mt != "" {
		return mt
	}
	kind, err := filetype.MatchFile(filename)
	if err != nil || kind == filetype.Unknown {
		return ""
	}
	return kind.MIME.Value
}

// BasenameFromFilename returns the bundled icon basename for a file.
func (r *Resolver) BasenameFromFilename(filename string) string {
	if mt := r.guess(filename); mt != "" {
		for _, known := range knownMimeTypes {
			if strings.Contains(mt, known.substring) {
				return known.basename
			}
		}
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if basename, ok := knownExtensions[ext]; ok {
		return basename
	}
	return defaultFileIcon
}

// FromFilename returns the bundled icon for a file.
func (r *Resolver) FromFilename(filename string) *Icon {
	return r.FromBasename(r.BasenameFromFilename(filename))
}
