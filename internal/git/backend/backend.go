package backend

import "context"

// Backend abstracts the git commands used to inspect the index and create
// commits.
//
// The default implementation shells out to the git executable. Commands whose
// output is shown to the user (commit, staging) return a RunResult; their
// error is reserved for failing to run git at all.
type Backend interface {
	RepoPath() string
	GitDir() string

	HeadState(ctx context.Context) (hash string, headName string, ok bool, err error)
	Status(ctx context.Context) (Status, error)
	StagedDiffText(ctx context.Context) (string, error)
	CommitMessage(ctx context.Context, rev string) (string, error)
	HeadPublished(ctx context.Context) (bool, error)
	LatestCommitTime(ctx context.Context) (RunResult, error)

	Commit(ctx context.Context, opts CommitOptions) (RunResult, error)
	StageModified(ctx context.Context) (RunResult, error)
	SetGlobalConfig(ctx context.Context, key, value string) error
}
