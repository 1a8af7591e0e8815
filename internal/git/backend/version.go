package backend

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"sync"
)

// Oldest git providing everything the CLI backend runs, e.g.
// "git rev-parse --absolute-git-dir" and "git status --porcelain=v2 -z".
var minGitVersion = gitVersion{major: 2, minor: 23, patch: 0}

type gitVersion struct {
	major int
	minor int
	patch int
}

func MinGitVersion() string {
	return minGitVersion.String()
}

func (v gitVersion) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

func (v gitVersion) less(other gitVersion) bool {
	if v.major != other.major {
		return v.major < other.major
	}
	if v.minor != other.minor {
		return v.minor < other.minor
	}
	return v.patch < other.patch
}

// parseGitVersionOutput understands "git version 2.44.0", vendor suffixes
// such as "2.39.3 (Apple Git-146)" or "2.39.3.windows.1", and bare numbers.
func parseGitVersionOutput(out string) (gitVersion, bool) {
	s := strings.TrimSpace(out)
	s = strings.TrimSpace(strings.TrimPrefix(s, "git version"))
	start := strings.IndexFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	if start < 0 {
		return gitVersion{}, false
	}
	s = s[start:]
	end := strings.IndexFunc(s, func(r rune) bool { return (r < '0' || r > '9') && r != '.' })
	if end >= 0 {
		s = s[:end]
	}
	parts := strings.Split(strings.Trim(s, "."), ".")
	if len(parts) < 2 {
		return gitVersion{}, false
	}
	nums := [3]int{}
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			if i < 2 {
				return gitVersion{}, false
			}
			break
		}
		nums[i] = n
	}
	return gitVersion{major: nums[0], minor: nums[1], patch: nums[2]}, true
}

func checkGitVersion(out string) (gitVersion, error) {
	got, ok := parseGitVersionOutput(out)
	if !ok {
		return gitVersion{}, fmt.Errorf("unable to parse git version output: %q", strings.TrimSpace(out))
	}
	if got.less(minGitVersion) {
		return got, fmt.Errorf("git %s is too old; gitgui-go requires git >= %s", got, minGitVersion)
	}
	return got, nil
}

var gitVersionProbe = sync.OnceValues(func() (string, error) {
	outBytes, err := exec.Command("git", "--version").CombinedOutput()
	out := strings.TrimSpace(string(outBytes))
	if err != nil {
		if out != "" {
			return out, fmt.Errorf("git --version: %v: %s", err, out)
		}
		return out, fmt.Errorf("git --version: %w", err)
	}
	return out, nil
})

// GitVersion returns the output of git --version.
func GitVersion() (string, error) {
	return gitVersionProbe()
}

func ensureMinGitVersion() error {
	out, err := gitVersionProbe()
	if err != nil {
		return err
	}
	_, err = checkGitVersion(out)
	return err
}
