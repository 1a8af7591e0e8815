package git

import (
	"context"
	"errors"

	gitbackend "github.com/thiagokokada/gitgui-go/internal/git/backend"
)

type fakeBackend struct {
	repoPath string
	gitDir   string

	headStateFunc      func() (hash string, headName string, ok bool, err error)
	statusFunc         func() (gitbackend.Status, error)
	stagedDiffTextFunc func() (string, error)
	commitMessageFunc  func(rev string) (string, error)
	commitFunc         func(opts gitbackend.CommitOptions) (gitbackend.RunResult, error)

	lastCommit    *gitbackend.CommitOptions
	lastConfigKey string
	lastConfigVal string
}

func (f *fakeBackend) RepoPath() string { return f.repoPath }
func (f *fakeBackend) GitDir() string   { return f.gitDir }

func (f *fakeBackend) HeadState(context.Context) (string, string, bool, error) {
	if f.headStateFunc != nil {
		return f.headStateFunc()
	}
	return "", "", false, errors.New("unexpected HeadState call")
}

func (f *fakeBackend) Status(context.Context) (gitbackend.Status, error) {
	if f.statusFunc != nil {
		return f.statusFunc()
	}
	return gitbackend.Status{}, errors.New("unexpected Status call")
}

func (f *fakeBackend) StagedDiffText(context.Context) (string, error) {
	if f.stagedDiffTextFunc != nil {
		return f.stagedDiffTextFunc()
	}
	return "", errors.New("unexpected StagedDiffText call")
}

func (f *fakeBackend) CommitMessage(_ context.Context, rev string) (string, error) {
	if f.commitMessageFunc != nil {
		return f.commitMessageFunc(rev)
	}
	return "", errors.New("unexpected CommitMessage call")
}

func (f *fakeBackend) HeadPublished(context.Context) (bool, error) {
	return false, nil
}

func (f *fakeBackend) LatestCommitTime(context.Context) (gitbackend.RunResult, error) {
	return gitbackend.RunResult{Status: 128}, nil
}

func (f *fakeBackend) Commit(_ context.Context, opts gitbackend.CommitOptions) (gitbackend.RunResult, error) {
	f.lastCommit = &opts
	if f.commitFunc != nil {
		return f.commitFunc(opts)
	}
	return gitbackend.RunResult{}, errors.New("unexpected Commit call")
}

func (f *fakeBackend) StageModified(context.Context) (gitbackend.RunResult, error) {
	return gitbackend.RunResult{}, errors.New("unexpected StageModified call")
}

func (f *fakeBackend) SetGlobalConfig(_ context.Context, key, value string) error {
	f.lastConfigKey, f.lastConfigVal = key, value
	return nil
}
