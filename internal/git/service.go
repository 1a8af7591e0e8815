package git

import (
	"context"
	"log/slog"
	"path/filepath"

	gitlib "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	format "github.com/go-git/go-git/v5/plumbing/format/config"

	gitbackend "github.com/thiagokokada/gitgui-go/internal/git/backend"
)

type (
	Status        = gitbackend.Status
	StatusEntry   = gitbackend.StatusEntry
	RunResult     = gitbackend.RunResult
	CommitOptions = gitbackend.CommitOptions
)

// Service answers the questions the commit tool asks about a repository.
// Commands whose results are shown to the user go through the git CLI;
// object reads use go-git when the repository can be opened with it.
type Service struct {
	backend gitbackend.Backend
	repo    *gitlib.Repository
}

func Open(repoPath string) (*Service, error) {
	abs, err := filepath.Abs(repoPath)
	if err != nil {
		return nil, err
	}
	backend, err := gitbackend.OpenCLI(abs)
	if err != nil {
		return nil, err
	}
	svc := &Service{backend: backend}
	repo, err := gitlib.PlainOpenWithOptions(backend.RepoPath(), &gitlib.PlainOpenOptions{DetectDotGit: true, EnableDotGitCommonDir: true})
	if err != nil {
		slog.Warn("go-git cannot open repository, using git CLI only",
			slog.String("path", backend.RepoPath()),
			slog.Any("error", err),
		)
		return svc, nil
	}
	svc.repo = repo
	return svc, nil
}

// NewWithBackend builds a Service around an existing backend and an optional
// go-git repository.
func NewWithBackend(backend gitbackend.Backend, repo *gitlib.Repository) *Service {
	return &Service{backend: backend, repo: repo}
}

func (s *Service) RepoPath() string {
	return s.backend.RepoPath()
}

func (s *Service) GitDir() string {
	return s.backend.GitDir()
}

func (s *Service) Status(ctx context.Context) (Status, error) {
	return s.backend.Status(ctx)
}

// HeadName returns the current branch, "HEAD" when detached, or "" before
// the first commit.
func (s *Service) HeadName(ctx context.Context) (string, error) {
	_, name, ok, err := s.backend.HeadState(ctx)
	if err != nil || !ok {
		return "", err
	}
	return name, nil
}

func (s *Service) HeadPublished(ctx context.Context) (bool, error) {
	return s.backend.HeadPublished(ctx)
}

func (s *Service) Commit(ctx context.Context, opts CommitOptions) (RunResult, error) {
	slog.Debug("commit",
		slog.Bool("amend", opts.Amend),
		slog.Bool("sign", opts.Sign),
		slog.Bool("no_verify", opts.NoVerify),
		slog.String("date", opts.Date),
	)
	return s.backend.Commit(ctx, opts)
}

func (s *Service) StageModified(ctx context.Context) (RunResult, error) {
	return s.backend.StageModified(ctx)
}

func (s *Service) LatestCommitTime(ctx context.Context) (RunResult, error) {
	return s.backend.LatestCommitTime(ctx)
}

func (s *Service) SetGlobalConfig(ctx context.Context, key, value string) error {
	return s.backend.SetGlobalConfig(ctx, key, value)
}

// ConfigLayers returns the system, global and repository configuration in
// increasing order of precedence. Layers that cannot be read are empty.
func (s *Service) ConfigLayers() []*format.Config {
	layers := make([]*format.Config, 0, 3)
	for _, scope := range []gitconfig.Scope{gitconfig.SystemScope, gitconfig.GlobalScope} {
		cfg, err := gitconfig.LoadConfig(scope)
		if err != nil {
			slog.Debug("load git config", slog.Int("scope", int(scope)), slog.Any("error", err))
			layers = append(layers, format.New())
			continue
		}
		layers = append(layers, rawConfig(cfg))
	}
	if s.repo == nil {
		return append(layers, format.New())
	}
	cfg, err := s.repo.Config()
	if err != nil {
		slog.Debug("load repository config", slog.Any("error", err))
		return append(layers, format.New())
	}
	return append(layers, rawConfig(cfg))
}

func rawConfig(cfg *gitconfig.Config) *format.Config {
	if cfg == nil || cfg.Raw == nil {
		return format.New()
	}
	return cfg.Raw
}
