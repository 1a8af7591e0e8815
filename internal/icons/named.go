package icons

// Status returns the bundled icon basename for a file in the status list.
func (r *Resolver) Status(filename string, deleted, staged, untracked bool) string {
	switch {
	case deleted:
		return "circle-slash-red.svg"
	case staged:
		return "staged.svg"
	case untracked:
		return "question-plain.svg"
	default:
		return r.BasenameFromFilename(filename)
	}
}

func Status(filename string, deleted, staged, untracked bool) string {
	return defaultResolver.Status(filename, deleted, staged, untracked)
}

// Modified is shown for unstaged changes to tracked files.
func Modified() *Icon { return FromBasename("modified.svg") }

func App() *Icon { return FromBasename("gitgui.svg") }

func Branch() *Icon { return FromTheme("git-branch", "git-branch.svg") }

func Commit() *Icon { return FromTheme("vcs-commit", "document-save-symbolic.svg") }

func OK() *Icon { return FromTheme("checkmark", "check.svg") }

func Close() *Icon { return FromTheme("window-close", "window-close.svg") }

func Sync() *Icon { return FromTheme("view-refresh-symbolic", "sync.svg") }

func Discard() *Icon { return FromTheme("delete", "trashcan.svg") }

func Save() *Icon { return FromTheme("document-save", "desktop-download.svg") }

func Edit() *Icon { return FromTheme("document-edit", "pencil.svg") }

func Configure() *Icon { return FromTheme("configure-symbolic", "gear.svg") }

func Question() *Icon { return FromTheme("question", "question-plain.svg") }

func CommitMarker() *Icon { return FromBasename("git-commit.svg") }
