package git

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	gitlib "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Entry is one commit offered by the previous-message menus and the commit
// selection dialog.
type Entry struct {
	Hash    string
	Summary string
	Label   string
	When    time.Time
}

// RecentCommits returns up to n commits reachable from HEAD, newest first.
// An unborn HEAD yields no commits.
func (s *Service) RecentCommits(n int) ([]Entry, error) {
	if n <= 0 || s.repo == nil {
		return nil, nil
	}
	ref, err := s.repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}
	iter, err := s.repo.Log(&gitlib.LogOptions{From: ref.Hash(), Order: gitlib.LogOrderCommitterTime})
	if err != nil {
		return nil, fmt.Errorf("read commits: %w", err)
	}
	defer iter.Close()

	entries := make([]Entry, 0, n)
	for len(entries) < n {
		c, err := iter.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("iterate commits: %w", err)
		}
		entries = append(entries, newEntry(c))
	}
	return entries, nil
}

// CommitMessage returns the full message of rev.
func (s *Service) CommitMessage(ctx context.Context, rev string) (string, error) {
	if s.repo != nil {
		if hash, err := s.repo.ResolveRevision(plumbing.Revision(rev)); err == nil {
			if c, err := s.repo.CommitObject(*hash); err == nil {
				return c.Message, nil
			}
		}
	}
	return s.backend.CommitMessage(ctx, rev)
}

func newEntry(c *object.Commit) Entry {
	return Entry{
		Hash:    c.Hash.String(),
		Summary: firstLine(c.Message),
		Label:   formatSummary(c),
		When:    c.Committer.When,
	}
}

func firstLine(message string) string {
	return strings.SplitN(strings.TrimSpace(message), "\n", 2)[0]
}

func formatSummary(c *object.Commit) string {
	line := firstLine(c.Message)
	if len(line) > 80 {
		line = line[:77] + "..."
	}
	timestamp := c.Committer.When.Format("2006-01-02 15:04")
	return fmt.Sprintf("%s  %s  %s", c.Hash.String()[:7], timestamp, line)
}
