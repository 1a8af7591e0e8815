package backend

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestParseStatusPorcelainV2(t *testing.T) {
	t.Parallel()

	const hash = "abcdef0abcdef0abcdef0abcdef0abcdef0abcd"
	records := []string{
		"# branch.oid " + hash,
		"# branch.head main",
		"# branch.upstream origin/main",
		"1 .M N... 100644 100644 100644 " + hash + " " + hash + " worktree only.txt",
		"1 M. N... 100644 100644 100644 " + hash + " " + hash + " staged.txt",
		"1 D. N... 100644 000000 000000 " + hash + " " + hash + " removed.txt",
		"2 R. N... 100644 100644 100644 " + hash + " " + hash + " R100 new name.go",
		"old name.go",
		"u UU N... 100644 100644 100644 100644 " + hash + " " + hash + " " + hash + " conflict.c",
		"? untracked.py",
		"! ignored.o",
	}
	got, err := parseStatusPorcelainV2(strings.NewReader(strings.Join(records, "\x00") + "\x00"))
	if err != nil {
		t.Fatalf("parseStatusPorcelainV2() error = %v", err)
	}
	want := Status{
		Branch: "main",
		Entries: []StatusEntry{
			{Path: "worktree only.txt", Modified: true},
			{Path: "staged.txt", Staged: true},
			{Path: "removed.txt", Staged: true, Deleted: true},
			{Path: "new name.go", OrigPath: "old name.go", Staged: true},
			{Path: "conflict.c", Modified: true, Conflicted: true},
			{Path: "untracked.py", Modified: true, Untracked: true},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("parseStatusPorcelainV2() =\n%+v\nwant\n%+v", got, want)
	}
	if !got.HasStaged() || !got.HasModified() {
		t.Fatalf("expected staged and modified changes: %+v", got)
	}
}

func TestParseStatusPorcelainV2_InitialDetached(t *testing.T) {
	t.Parallel()

	in := "# branch.oid (initial)\x00# branch.head (detached)\x00? new.txt\x00"
	got, err := parseStatusPorcelainV2(strings.NewReader(in))
	if err != nil {
		t.Fatalf("parseStatusPorcelainV2() error = %v", err)
	}
	if !got.Initial || got.Branch != "" {
		t.Fatalf("unexpected header parse: %+v", got)
	}
	if got.HasStaged() || got.HasModified() {
		t.Fatalf("untracked files are neither staged nor modified: %+v", got)
	}
}

func TestParseStatusPorcelainV2_ShortRecordsIgnored(t *testing.T) {
	t.Parallel()

	got, err := parseStatusPorcelainV2(strings.NewReader("1\x001 .\x001 .M\x00?\x00"))
	if err != nil {
		t.Fatalf("parseStatusPorcelainV2() error = %v", err)
	}
	if len(got.Entries) != 0 {
		t.Fatalf("expected no entries, got %+v", got.Entries)
	}
}

func TestParseStatusPorcelainV2_Error(t *testing.T) {
	t.Parallel()

	_, err := parseStatusPorcelainV2(failingReader{})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestCommitArgs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts CommitOptions
		want []string
	}{
		{"plain", CommitOptions{Message: "m"}, []string{"commit", "--file=-"}},
		{
			"everything",
			CommitOptions{Amend: true, Sign: true, NoVerify: true, Date: "Mon Jan 02 15:04:05 2006 -0700", Message: "m"},
			[]string{"commit", "--amend", "--gpg-sign", "--no-verify", "--date=Mon Jan 02 15:04:05 2006 -0700", "--file=-"},
		},
		{"empty message", CommitOptions{}, []string{"commit", "--allow-empty-message", "-m", ""}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := commitArgs(tt.opts); !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("commitArgs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCLICommitRoundTrip(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
	dir := t.TempDir()
	gitEnv(t, dir)
	runGit(t, dir, "init", "-q", "-b", "main")

	b, err := OpenCLI(dir)
	if err != nil {
		t.Skipf("OpenCLI: %v", err)
	}
	ctx := context.Background()
	if filepath.Base(b.GitDir()) != ".git" {
		t.Fatalf("unexpected git dir %q", b.GitDir())
	}

	res, err := b.LatestCommitTime(ctx)
	if err != nil {
		t.Fatalf("LatestCommitTime: %v", err)
	}
	if res.Status == 0 {
		t.Fatalf("expected failure on an empty repository, got %+v", res)
	}

	writeFile(t, filepath.Join(dir, "a.txt"), "one\n")
	runGit(t, dir, "add", "a.txt")
	st, err := b.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !st.Initial || !st.HasStaged() || st.Merging {
		t.Fatalf("unexpected status %+v", st)
	}

	res, err = b.Commit(ctx, CommitOptions{Message: "First commit\n\nBody text\n", Date: "Mon Jan 02 15:04:05 2006 -0700"})
	if err != nil || res.Status != 0 {
		t.Fatalf("Commit: %v %+v", err, res)
	}
	msg, err := b.CommitMessage(ctx, "HEAD")
	if err != nil {
		t.Fatalf("CommitMessage: %v", err)
	}
	if strings.TrimSpace(msg) != "First commit\n\nBody text" {
		t.Fatalf("unexpected message %q", msg)
	}
	res, err = b.LatestCommitTime(ctx)
	if err != nil || res.Status != 0 || !strings.HasPrefix(res.Stdout, "2006-01-02T15:04:05-07:00") {
		t.Fatalf("LatestCommitTime: %v %+v", err, res)
	}

	res, err = b.Commit(ctx, CommitOptions{Message: "Nothing staged"})
	if err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if res.Status == 0 {
		t.Fatalf("expected commit without changes to fail, got %+v", res)
	}

	writeFile(t, filepath.Join(dir, "a.txt"), "two\n")
	res, err = b.StageModified(ctx)
	if err != nil || res.Status != 0 {
		t.Fatalf("StageModified: %v %+v", err, res)
	}
	diff, err := b.StagedDiffText(ctx)
	if err != nil || !strings.Contains(diff, "+two") {
		t.Fatalf("StagedDiffText: %v %q", err, diff)
	}
	published, err := b.HeadPublished(ctx)
	if err != nil || published {
		t.Fatalf("HeadPublished = %v, %v", published, err)
	}
}

func gitEnv(t *testing.T, home string) {
	t.Helper()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	t.Setenv("GIT_CONFIG_NOSYSTEM", "1")
	t.Setenv("GIT_AUTHOR_NAME", "Test")
	t.Setenv("GIT_AUTHOR_EMAIL", "test@example.com")
	t.Setenv("GIT_COMMITTER_NAME", "Test")
	t.Setenv("GIT_COMMITTER_EMAIL", "test@example.com")
}

func runGit(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	if out, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("git %v: %v: %s", args, err, out)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("boom")
}
