package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/thiagokokada/gitgui-go/internal/buildinfo"
	"github.com/thiagokokada/gitgui-go/internal/gui"
)

func Run() error {
	return run(os.Args[1:], gui.Run)
}

func run(args []string, start func(gui.RunConfig) error) error {
	fs := flag.NewFlagSet(buildinfo.Name, flag.ContinueOnError)
	mode := fs.String("mode", gui.ThemeAuto.String(), "color mode: auto, light, or dark")
	noWatch := fs.Bool("nowatch", false, "disable automatic reload when repository changes")
	noSyntax := fs.Bool("nosyntax", false, "disable syntax highlighting in the diff viewer")
	nativeDiff := fs.Bool("nativediff", false, "compute the staged diff in-process instead of running git diff")
	amend := fs.Bool("amend", false, "start by amending the last commit")
	iconTheme := fs.String("icon-theme", "", "XDG icon theme used for file icons (overrides gitgui.icontheme)")
	verbose := fs.Bool("verbose", false, "enable verbose logging")
	showVersion := fs.Bool("version", false, "print version information and exit")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return err
	}
	if *showVersion {
		fmt.Println(buildinfo.VersionWithTags())
		return nil
	}
	repoPath := "."
	remaining := fs.Args()
	if len(remaining) > 0 {
		repoPath = remaining[len(remaining)-1]
	}
	return start(gui.RunConfig{
		RepoPath:        repoPath,
		ThemePreference: gui.ThemePreferenceFromString(*mode),
		AutoReload:      !*noWatch,
		SyntaxHighlight: !*noSyntax,
		NativeDiff:      *nativeDiff,
		Amend:           *amend,
		IconTheme:       *iconTheme,
		Verbose:         *verbose,
	})
}
