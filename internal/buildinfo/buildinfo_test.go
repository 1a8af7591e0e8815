package buildinfo

import (
	"runtime/debug"
	"testing"
)

func stubBuildInfo(t *testing.T, info *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	t.Cleanup(func() { readBuildInfo = orig })
	readBuildInfo = func() (*debug.BuildInfo, bool) { return info, info != nil }
}

func TestVersionWithTags(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{
		Main:     debug.Module{Version: "v1.2.3"},
		Settings: []debug.BuildSetting{{Key: "-tags", Value: "nosyntaxhighlight"}},
	})
	if got := VersionWithTags(); got != "v1.2.3 (tags: nosyntaxhighlight)" {
		t.Fatalf("VersionWithTags() = %q", got)
	}
}

func TestVersionDevel(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	if got := Version(); got != "dev" {
		t.Fatalf("Version() = %q, want dev", got)
	}
	stubBuildInfo(t, nil)
	if got := Version(); got != "dev" {
		t.Fatalf("Version() without build info = %q, want dev", got)
	}
}

func TestAbout(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Main: debug.Module{Version: "v0.1.0"}})
	if got := About("git version 2.47.1\n"); got != "gitgui-go v0.1.0\ngit version 2.47.1" {
		t.Fatalf("About() = %q", got)
	}
	if got := About(""); got != "gitgui-go v0.1.0" {
		t.Fatalf("About(\"\") = %q", got)
	}
}
