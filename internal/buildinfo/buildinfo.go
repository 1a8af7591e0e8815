// Package buildinfo reports the program name and version.
package buildinfo

import (
	"fmt"
	"runtime/debug"
	"strings"
)

const Name = "gitgui-go"

var readBuildInfo = debug.ReadBuildInfo

// Version returns the module version or "dev" when unset.
func Version() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return "dev"
	}
	version := info.Main.Version
	if version == "" || version == "(devel)" {
		return "dev"
	}
	return version
}

// Tags returns the build tags recorded at compile time, e.g.
// "nosyntaxhighlight".
func Tags() string {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "-tags" {
			return setting.Value
		}
	}
	return ""
}

// VersionWithTags returns the version string and tags if present.
func VersionWithTags() string {
	version := Version()
	tags := Tags()
	if tags == "" {
		return version
	}
	return fmt.Sprintf("%s (tags: %s)", version, tags)
}

// About is the text of the About dialog. gitVersion may be empty when git
// could not be queried.
func About(gitVersion string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", Name, VersionWithTags())
	if gitVersion != "" {
		fmt.Fprintf(&b, "\n%s", strings.TrimSpace(gitVersion))
	}
	return b.String()
}
