package backend

// RunResult is the exit status and captured output of a git command.
type RunResult struct {
	Status int
	Stdout string
	Stderr string
}

type CommitOptions struct {
	Amend    bool
	Message  string
	Sign     bool
	NoVerify bool
	// Date overrides the author date when not empty.
	Date string
}

// StatusEntry is one path from git status.
type StatusEntry struct {
	Path     string
	OrigPath string // rename or copy source

	Staged     bool
	Modified   bool
	Deleted    bool
	Untracked  bool
	Conflicted bool
}

type Status struct {
	Branch  string // "" when detached
	Initial bool   // no commits yet
	Merging bool
	Entries []StatusEntry
}

func (s Status) HasStaged() bool {
	for _, e := range s.Entries {
		if e.Staged {
			return true
		}
	}
	return false
}

// HasModified reports unstaged changes to tracked files.
func (s Status) HasModified() bool {
	for _, e := range s.Entries {
		if e.Modified && !e.Untracked {
			return true
		}
	}
	return false
}
