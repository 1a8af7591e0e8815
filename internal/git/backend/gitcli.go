package backend

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

type gitCLI struct {
	path   string
	gitDir string
}

func OpenCLI(repoPath string) (Backend, error) {
	if err := ensureMinGitVersion(); err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	tmp := &gitCLI{path: abs}
	out, err := tmp.runGitCommand(context.Background(), []string{"rev-parse", "--show-toplevel", "--absolute-git-dir"}, false, "git rev-parse")
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 || strings.TrimSpace(lines[0]) == "" {
		return nil, fmt.Errorf("open repository: git rev-parse returned %q", out)
	}
	return &gitCLI{path: strings.TrimSpace(lines[0]), gitDir: strings.TrimSpace(lines[1])}, nil
}

func (g *gitCLI) RepoPath() string {
	if g == nil {
		return ""
	}
	return g.path
}

func (g *gitCLI) GitDir() string {
	if g == nil {
		return ""
	}
	return g.gitDir
}

func (g *gitCLI) command(ctx context.Context, args []string) (*exec.Cmd, error) {
	if g == nil || g.path == "" {
		return nil, fmt.Errorf("repository root not set")
	}
	cmdArgs := append([]string{"-C", g.path}, args...)
	return exec.CommandContext(ctx, "git", cmdArgs...), nil
}

// runGitCommand returns stdout of a query. Non-zero exits are errors carrying
// stderr, except exit status 1 without output on stderr when allowExit1 is set.
func (g *gitCLI) runGitCommand(ctx context.Context, args []string, allowExit1 bool, label string) (string, error) {
	cmd, err := g.command(ctx, args)
	if err != nil {
		return "", err
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if allowExit1 && errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && stderr.Len() == 0 {
			return stdout.String(), nil
		}
		if stderr.Len() > 0 {
			return "", fmt.Errorf("%s: %v: %s", label, err, strings.TrimSpace(stderr.String()))
		}
		return "", fmt.Errorf("%s: %w", label, err)
	}
	return stdout.String(), nil
}

// runForResult runs a command whose outcome is reported to the user. A
// non-zero exit status is part of the result, not an error.
func (g *gitCLI) runForResult(ctx context.Context, args []string, stdin string) (RunResult, error) {
	cmd, err := g.command(ctx, args)
	if err != nil {
		return RunResult{}, err
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}
	err = cmd.Run()
	res := RunResult{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return res, fmt.Errorf("git %s: %w", args[0], err)
		}
		res.Status = exitErr.ExitCode()
	}
	return res, nil
}
