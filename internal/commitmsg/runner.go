package commitmsg

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
)

const (
	StageCommand  = "git add --update"
	CommitCommand = "git commit"
)

// Result is the outcome of a git command whose output is shown to the user.
// Err is set only when the command could not be run at all. Command names
// the command that produced it.
type Result struct {
	Command string
	Status  int
	Stdout  string
	Stderr  string
	Err     error
}

func (r Result) Failed() bool { return r.Err != nil || r.Status != 0 }

// Output is stdout followed by stderr, trimmed.
func (r Result) Output() string {
	return strings.TrimSpace(strings.TrimSpace(r.Stdout) + "\n" + strings.TrimSpace(r.Stderr))
}

// Text describes a result for the failure dialog.
func (r Result) Text() string {
	command := r.Command
	if command == "" {
		command = CommitCommand
	}
	var b strings.Builder
	if r.Err != nil {
		fmt.Fprintf(&b, "%q failed to run: %v", command, r.Err)
	} else {
		fmt.Fprintf(&b, "%q returned exit status %d", command, r.Status)
	}
	if out := strings.TrimSpace(r.Stdout); out != "" {
		b.WriteString("\n\nOutput:\n")
		b.WriteString(out)
	}
	if errOut := strings.TrimSpace(r.Stderr); errOut != "" {
		b.WriteString("\n\nErrors:\n")
		b.WriteString(errOut)
	}
	return b.String()
}

// Backend runs the git commands behind a commit.
type Backend interface {
	StageModified(ctx context.Context) Result
	Commit(ctx context.Context, req Request) Result
}

// Run stages modified files when asked to and then commits.
func Run(ctx context.Context, b Backend, req Request) Result {
	if req.StageModified {
		if res := b.StageModified(ctx); res.Failed() {
			res.Command = StageCommand
			return res
		}
	}
	res := b.Commit(ctx, req)
	res.Command = CommitCommand
	return res
}

// Runner runs at most one commit at a time in the background.
type Runner struct {
	backend Backend
	busy    atomic.Bool
}

func NewRunner(b Backend) *Runner {
	return &Runner{backend: b}
}

func (r *Runner) Busy() bool { return r.busy.Load() }

// Start runs req in a new goroutine and calls done with the result, from
// that goroutine, exactly once. It returns false without doing anything when
// a commit is already running. The runner stays busy until Finish is called,
// so a result still on its way to the UI blocks the next commit.
func (r *Runner) Start(ctx context.Context, req Request, done func(Result)) bool {
	if !r.busy.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		res := Run(ctx, r.backend, req)
		if done != nil {
			done(res)
		}
	}()
	return true
}

// Finish marks the current commit as handled.
func (r *Runner) Finish() { r.busy.Store(false) }
