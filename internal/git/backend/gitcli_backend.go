package backend

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

func (g *gitCLI) HeadState(ctx context.Context) (hash string, headName string, ok bool, err error) {
	if g == nil || g.path == "" {
		return "", "", false, fmt.Errorf("repository root not set")
	}
	out, err := g.runGitCommand(ctx, []string{"rev-parse", "-q", "--verify", "HEAD"}, true, "git rev-parse")
	if err != nil {
		return "", "", false, err
	}
	hash = strings.TrimSpace(out)
	if hash == "" {
		return "", "", false, nil
	}
	ref, err := g.runGitCommand(ctx, []string{"symbolic-ref", "-q", "--short", "HEAD"}, true, "git symbolic-ref")
	if err != nil {
		return "", "", false, err
	}
	headName = strings.TrimSpace(ref)
	if headName == "" {
		headName = "HEAD"
	}
	return hash, headName, true, nil
}

func (g *gitCLI) Status(ctx context.Context) (Status, error) {
	out, err := g.runGitCommand(ctx, []string{"status", "--porcelain=v2", "--branch", "-z"}, false, "git status")
	if err != nil {
		return Status{}, err
	}
	st, err := parseStatusPorcelainV2(strings.NewReader(out))
	if err != nil {
		return Status{}, fmt.Errorf("parse git status: %w", err)
	}
	st.Merging, err = fileExists(filepath.Join(g.gitDir, "MERGE_HEAD"))
	if err != nil {
		return Status{}, err
	}
	return st, nil
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

func (g *gitCLI) StagedDiffText(ctx context.Context) (string, error) {
	return g.runGitCommand(ctx, []string{"diff", "--no-color", "--cached"}, true, "git diff")
}

func (g *gitCLI) CommitMessage(ctx context.Context, rev string) (string, error) {
	rev = strings.TrimSpace(rev)
	if rev == "" {
		return "", fmt.Errorf("commit not specified")
	}
	return g.runGitCommand(ctx, []string{"log", "-1", "--format=%B", rev, "--"}, false, "git log")
}

// HeadPublished reports whether HEAD is reachable from a remote branch.
func (g *gitCLI) HeadPublished(ctx context.Context) (bool, error) {
	out, err := g.runGitCommand(ctx, []string{"branch", "-r", "--contains", "HEAD"}, false, "git branch")
	if err != nil {
		return false, err
	}
	return strings.TrimSpace(out) != "", nil
}

func (g *gitCLI) LatestCommitTime(ctx context.Context) (RunResult, error) {
	return g.runForResult(ctx, []string{"log", "-1", "--format=%aI", "HEAD"}, "")
}

func (g *gitCLI) Commit(ctx context.Context, opts CommitOptions) (RunResult, error) {
	return g.runForResult(ctx, commitArgs(opts), opts.Message)
}

func commitArgs(opts CommitOptions) []string {
	args := []string{"commit"}
	if opts.Amend {
		args = append(args, "--amend")
	}
	if opts.Sign {
		args = append(args, "--gpg-sign")
	}
	if opts.NoVerify {
		args = append(args, "--no-verify")
	}
	if opts.Date != "" {
		args = append(args, "--date="+opts.Date)
	}
	if opts.Message == "" {
		return append(args, "--allow-empty-message", "-m", "")
	}
	return append(args, "--file=-")
}

func (g *gitCLI) StageModified(ctx context.Context) (RunResult, error) {
	return g.runForResult(ctx, []string{"add", "--update"}, "")
}

func (g *gitCLI) SetGlobalConfig(ctx context.Context, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("config key not specified")
	}
	_, err := g.runGitCommand(ctx, []string{"config", "--global", key, value}, false, "git config")
	return err
}

// parseStatusPorcelainV2 reads the NUL separated output of
// git status --porcelain=v2 --branch -z.
func parseStatusPorcelainV2(r io.Reader) (Status, error) {
	var st Status
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	scanner.Split(splitNUL)
	for scanner.Scan() {
		rec := scanner.Text()
		if len(rec) < 2 {
			continue
		}
		switch rec[0] {
		case '#':
			parseBranchHeader(&st, rec)
		case '1':
			if e, ok := parseChangedEntry(rec, 8); ok {
				st.Entries = append(st.Entries, e)
			}
		case '2':
			e, ok := parseChangedEntry(rec, 9)
			// The rename source follows as its own record.
			if scanner.Scan() && ok {
				e.OrigPath = scanner.Text()
			}
			if ok {
				st.Entries = append(st.Entries, e)
			}
		case 'u':
			if e, ok := parseChangedEntry(rec, 10); ok {
				e.Staged = false
				e.Modified = true
				e.Conflicted = true
				st.Entries = append(st.Entries, e)
			}
		case '?':
			st.Entries = append(st.Entries, StatusEntry{Path: rec[2:], Modified: true, Untracked: true})
		default:
			// '!' ignored
		}
	}
	return st, scanner.Err()
}

func parseBranchHeader(st *Status, rec string) {
	switch {
	case strings.HasPrefix(rec, "# branch.head "):
		head := strings.TrimPrefix(rec, "# branch.head ")
		if head != "(detached)" {
			st.Branch = head
		}
	case rec == "# branch.oid (initial)":
		st.Initial = true
	}
}

// parseChangedEntry splits off the fields that precede the path.
func parseChangedEntry(rec string, fields int) (StatusEntry, bool) {
	parts := strings.SplitN(rec, " ", fields+1)
	if len(parts) != fields+1 || len(parts[1]) != 2 {
		return StatusEntry{}, false
	}
	x, y := parts[1][0], parts[1][1]
	return StatusEntry{
		Path:     parts[fields],
		Staged:   x != '.',
		Modified: y != '.',
		Deleted:  x == 'D' || y == 'D',
	}, true
}

func splitNUL(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, 0); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
