package git

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	gitindex "github.com/go-git/go-git/v5/plumbing/format/index"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/pmezard/go-difflib/difflib"
)

// ErrNoRepository is returned by reads that need go-git when the repository
// could only be opened through the git CLI.
var ErrNoRepository = errors.New("repository not opened with go-git")

type stagedChange struct {
	path string
	from *object.File
	to   *object.File
}

// NativeStagedDiff renders the diff between HEAD and the index from the blobs
// go-git reads, without running git.
func (s *Service) NativeStagedDiff() (string, []FileSection, error) {
	if s.repo == nil {
		return "", nil, ErrNoRepository
	}
	wt, err := s.repo.Worktree()
	if err != nil {
		return "", nil, err
	}
	status, err := wt.Status()
	if err != nil {
		return "", nil, err
	}
	var paths []string
	for path, st := range status {
		if st.Staging != gitlib.Unmodified && st.Staging != gitlib.Untracked {
			paths = append(paths, path)
		}
	}
	if len(paths) == 0 {
		return noStagedChanges, nil, nil
	}
	sort.Strings(paths)

	headTree, err := s.headTree()
	if err != nil {
		return "", nil, err
	}
	idx, err := s.repo.Storer.Index()
	if err != nil {
		return "", nil, err
	}
	changes := make([]stagedChange, 0, len(paths))
	for _, path := range paths {
		from, err := fileFromTree(headTree, path)
		if err != nil {
			return "", nil, err
		}
		to, err := fileFromIndex(idx, s.repo, path)
		if err != nil {
			return "", nil, err
		}
		if from == nil && to == nil {
			continue
		}
		changes = append(changes, stagedChange{path: path, from: from, to: to})
	}
	return renderStagedDiff(changes)
}

// headTree returns nil before the first commit.
func (s *Service) headTree() (*object.Tree, error) {
	ref, err := s.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	c, err := s.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, err
	}
	return c.Tree()
}

func fileFromTree(tree *object.Tree, path string) (*object.File, error) {
	if tree == nil {
		return nil, nil
	}
	f, err := tree.File(path)
	if errors.Is(err, object.ErrFileNotFound) {
		return nil, nil
	}
	return f, err
}

func fileFromIndex(idx *gitindex.Index, repo *gitlib.Repository, path string) (*object.File, error) {
	entry, err := idx.Entry(path)
	if errors.Is(err, gitindex.ErrEntryNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	blob, err := object.GetBlob(repo.Storer, entry.Hash)
	if err != nil {
		return nil, err
	}
	return object.NewFile(entry.Name, entry.Mode, blob), nil
}

func renderStagedDiff(changes []stagedChange) (string, []FileSection, error) {
	var b strings.Builder
	lineNo := 0
	var sections []FileSection
	for _, ch := range changes {
		fileHeader := fmt.Sprintf("diff --git a/%s b/%s\n", ch.path, ch.path)
		sections = append(sections, FileSection{Path: ch.path, Line: lineNo + 1})
		b.WriteString(fileHeader)
		lineNo++
		switch {
		case ch.from == nil:
			b.WriteString("new file\n")
			lineNo++
		case ch.to == nil:
			b.WriteString("deleted file\n")
			lineNo++
		}

		binary, err := binaryChange(ch)
		if err != nil {
			return "", nil, err
		}
		if binary {
			b.WriteString("Binary files differ\n")
			lineNo++
			continue
		}
		fromLines, err := fileLines(ch.from)
		if err != nil {
			return "", nil, err
		}
		toLines, err := fileLines(ch.to)
		if err != nil {
			return "", nil, err
		}
		fromName, toName := "a/"+ch.path, "b/"+ch.path
		if ch.from == nil {
			fromName = "/dev/null"
		}
		if ch.to == nil {
			toName = "/dev/null"
		}
		text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        fromLines,
			B:        toLines,
			FromFile: fromName,
			ToFile:   toName,
			Context:  3,
		})
		if err != nil {
			return "", nil, err
		}
		if text == "" {
			b.WriteString("(mode change only)\n")
			lineNo++
			continue
		}
		if !strings.HasSuffix(text, "\n") {
			text += "\n"
		}
		b.WriteString(text)
		lineNo += strings.Count(text, "\n")
	}
	return b.String(), sections, nil
}

func binaryChange(ch stagedChange) (bool, error) {
	for _, f := range []*object.File{ch.from, ch.to} {
		if f == nil {
			continue
		}
		bin, err := f.IsBinary()
		if err != nil || bin {
			return bin, err
		}
	}
	return false, nil
}

func fileLines(f *object.File) ([]string, error) {
	if f == nil {
		return []string{}, nil
	}
	content, err := f.Contents()
	if err != nil {
		return nil, err
	}
	return difflib.SplitLines(content), nil
}
