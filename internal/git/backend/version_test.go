package backend

import "testing"

func TestParseGitVersionOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want gitVersion
		ok   bool
	}{
		{name: "empty", in: "", ok: false},
		{name: "plain", in: "git version 2.44.0\n", want: gitVersion{major: 2, minor: 44, patch: 0}, ok: true},
		{name: "apple_git", in: "git version 2.39.3 (Apple Git-146)\n", want: gitVersion{major: 2, minor: 39, patch: 3}, ok: true},
		{name: "windows_suffix", in: "git version 2.39.3.windows.1\n", want: gitVersion{major: 2, minor: 39, patch: 3}, ok: true},
		{name: "no_prefix", in: "2.42.1\n", want: gitVersion{major: 2, minor: 42, patch: 1}, ok: true},
		{name: "no_patch", in: "git version 2.42\n", want: gitVersion{major: 2, minor: 42, patch: 0}, ok: true},
		{name: "rc", in: "git version 2.45.0-rc1\n", want: gitVersion{major: 2, minor: 45, patch: 0}, ok: true},
		{name: "invalid", in: "git version not-a-version\n", ok: false},
		{name: "major_only", in: "git version 2\n", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := parseGitVersionOutput(tt.in)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v (got=%+v)", ok, tt.ok, got)
			}
			if !ok {
				return
			}
			if got != tt.want {
				t.Fatalf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestCheckGitVersion(t *testing.T) {
	t.Parallel()

	if _, err := checkGitVersion("git version " + MinGitVersion() + "\n"); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if _, err := checkGitVersion("git version 2.22.9\n"); err == nil {
		t.Fatal("expected error for old git")
	}
	if _, err := checkGitVersion("garbage"); err == nil {
		t.Fatal("expected error for unparsable output")
	}
}
