package gui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/git"

	. "modernc.org/tk9.0"
)

const diffHeaderRow = "Staged changes"

var diffTags = []string{"diffAdd", "diffDel", "diffHeader", "diffHunk"}

func (a *Controller) loadDiffAsync() {
	gen, started := a.state.diff.load.start()
	if !started {
		return
	}
	go a.computeDiff(gen)
}

func (a *Controller) computeDiff(gen int) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	diff, sections, err := a.stagedDiff(ctx)
	if err != nil {
		slog.Error("staged diff", slog.Any("error", err))
		diff = fmt.Sprintf("Unable to compute diff: %v", err)
		sections = nil
	}
	diff, sections = prepareDiffDisplay(diff, sections)
	PostEvent(func() {
		current, again := a.state.diff.load.finish(gen)
		if !current {
			return
		}
		if err == nil && strings.TrimSpace(diff) == "" {
			a.clearDetailText("No staged changes.")
		} else {
			a.writeDetailText(diff, len(sections) > 0)
			a.setFileSections(sections)
		}
		if again {
			a.loadDiffAsync()
		}
	}, false)
}

func (a *Controller) stagedDiff(ctx context.Context) (string, []git.FileSection, error) {
	if a.cfg.nativeDiff {
		diff, sections, err := a.svc.NativeStagedDiff()
		if !errors.Is(err, git.ErrNoRepository) {
			return diff, sections, err
		}
		slog.Debug("native diff unavailable, using git diff")
	}
	return a.svc.StagedDiff(ctx)
}

func (a *Controller) clearDetailText(msg string) {
	a.writeDetailText(msg, false)
	a.setFileSections(nil)
}

func (a *Controller) writeDetailText(content string, highlightDiff bool) {
	a.ui.diffDetail.Configure(State(NORMAL))
	a.ui.diffDetail.Delete("1.0", END)
	a.ui.diffDetail.Insert("1.0", content)
	if highlightDiff {
		a.highlightDiffLines(content)
	} else {
		a.clearDiffTags()
	}
	if a.cfg.syntaxHighlight && highlightDiff {
		a.applySyntaxHighlight(content)
	} else {
		a.clearSyntaxHighlight()
	}
	a.ui.diffDetail.Configure(State("disabled"))
}

func (a *Controller) clearDiffTags() {
	for _, tag := range diffTags {
		a.ui.diffDetail.TagRemove(tag, "1.0", END)
	}
}

func (a *Controller) highlightDiffLines(content string) {
	a.clearDiffTags()
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		tag := diffLineTag(line)
		if tag == "" {
			continue
		}
		lineNo := i + 1
		end := textIndex(lineNo+1, 0)
		if lineNo == len(lines) {
			end = fmt.Sprintf("%d.end", lineNo)
		}
		a.ui.diffDetail.TagAdd(tag, textIndex(lineNo, 0), end)
	}
}

func (a *Controller) copyDetailSelection(stripMarkers bool) {
	text, err := tkSafeEval("%s get sel.first sel.last", a.ui.diffDetail)
	if err != nil || text == "" {
		return
	}
	if stripMarkers {
		lines := strings.Split(text, "\n")
		for i, line := range lines {
			if len(line) > 0 && (line[0] == '+' || line[0] == '-') {
				lines[i] = line[1:]
			}
		}
		text = strings.Join(lines, "\n")
	}
	if text == "" {
		return
	}
	ClipboardClear()
	ClipboardAppend(text)
	if stripMarkers {
		a.setStatus("Copied selection without +/- markers.")
	} else {
		a.setStatus("Copied selection.")
	}
}

func (a *Controller) setFileSections(sections []git.FileSection) {
	// A leading row jumps back to the top of the diff.
	augmented := make([]git.FileSection, 0, len(sections)+1)
	augmented = append(augmented, git.FileSection{Path: diffHeaderRow, Line: 1})
	augmented = append(augmented, sections...)
	a.state.diff.fileSections = augmented
	a.ui.diffFileList.Configure(State("normal"))
	a.ui.diffFileList.Delete(0, END)
	for _, sec := range augmented {
		a.ui.diffFileList.Insert(END, sec.Path)
	}
	a.ui.diffFileList.SelectionClear(0, END)
	a.ui.diffFileList.Activate(0)
	a.syncFileSelectionToDiff()
}

func (a *Controller) onFileSelectionChanged() {
	if a.state.diff.suppressFileSelection || len(a.state.diff.fileSections) == 0 {
		return
	}
	selection := a.ui.diffFileList.Curselection()
	if len(selection) == 0 {
		return
	}
	idx := selection[0]
	if idx < 0 || idx >= len(a.state.diff.fileSections) {
		return
	}
	a.state.diff.skipNextSync = true
	a.scrollDiffToLine(a.state.diff.fileSections[idx].Line)
}

// scrollDiffToPath shows the diff of path, if it has one.
func (a *Controller) scrollDiffToPath(path string) {
	for i, sec := range a.state.diff.fileSections {
		if i > 0 && sec.Path == path {
			a.state.diff.skipNextSync = true
			a.scrollDiffToLine(sec.Line)
			a.setFileListSelection(i)
			return
		}
	}
}

func (a *Controller) scrollDiffToLine(line int) {
	if line <= 0 {
		return
	}
	totalLines := a.textLineCount()
	if totalLines <= 1 {
		a.ui.diffDetail.Yviewmoveto(0)
		return
	}
	fraction := float64(line-1) / float64(totalLines-1)
	a.ui.diffDetail.Yviewmoveto(min(max(fraction, 0), 1))
}

func (a *Controller) textLineCount() int {
	lines, _ := parseTextIndex(a.ui.diffDetail.Index(END))
	if lines > 0 {
		lines--
	}
	return lines
}

func (a *Controller) syncFileSelectionToDiff() {
	if len(a.state.diff.fileSections) == 0 || a.state.diff.skipNextSync {
		return
	}
	line, _ := parseTextIndex(a.ui.diffDetail.Index("@0,0"))
	if line <= 0 {
		return
	}
	a.setFileListSelection(fileSectionIndexForLine(a.state.diff.fileSections, line))
}

func (a *Controller) setFileListSelection(idx int) {
	if idx < 0 || idx >= len(a.state.diff.fileSections) {
		return
	}
	current := a.ui.diffFileList.Curselection()
	if len(current) > 0 && current[0] == idx {
		return
	}
	a.state.diff.suppressFileSelection = true
	a.ui.diffFileList.SelectionClear(0, END)
	a.ui.diffFileList.SelectionSet(idx)
	a.ui.diffFileList.Activate(idx)
	a.ui.diffFileList.See(idx)
	PostEvent(func() {
		a.state.diff.suppressFileSelection = false
	}, false)
}

func (a *Controller) onDiffScrolled() {
	if a.state.diff.skipNextSync {
		a.state.diff.skipNextSync = false
		return
	}
	a.syncFileSelectionToDiff()
}
