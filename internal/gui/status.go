package gui

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/thiagokokada/gitgui-go/internal/git"
	"github.com/thiagokokada/gitgui-go/internal/icons"

	. "modernc.org/tk9.0"
)

const (
	groupUnmerged  = "unmerged"
	groupStaged    = "staged"
	groupModified  = "modified"
	groupUntracked = "untracked"
)

var statusGroups = []struct {
	id    string
	label string
}{
	{groupUnmerged, "Unmerged"},
	{groupStaged, "Staged"},
	{groupModified, "Modified"},
	{groupUntracked, "Untracked"},
}

// statusRow is one line of the status tree. Group rows have an empty parent.
type statusRow struct {
	id     string
	parent string
	label  string
	path   string
	icon   string
}

func (r statusRow) isGroup() bool { return r.parent == "" }

func statusRowID(group, path string) string {
	return group + ":" + path
}

// buildStatusRows lays out the status entries under their groups. Empty
// groups are left out. A path that is staged and also modified again shows
// up in both groups. Entry paths are relative to root, which is where file
// contents are sniffed for icons.
func buildStatusRows(root string, status git.Status) []statusRow {
	grouped := make(map[string][]statusRow, len(statusGroups))
	for _, e := range status.Entries {
		label := e.Path
		if e.OrigPath != "" {
			label = fmt.Sprintf("%s -> %s", e.OrigPath, e.Path)
		}
		abs := filepath.Join(root, e.Path)
		add := func(group string, icon string) {
			grouped[group] = append(grouped[group], statusRow{
				id:     statusRowID(group, e.Path),
				parent: group,
				label:  label,
				path:   e.Path,
				icon:   icon,
			})
		}
		switch {
		case e.Conflicted:
			add(groupUnmerged, "modified.svg")
			continue
		case e.Untracked:
			add(groupUntracked, icons.Status(abs, false, false, true))
			continue
		}
		// Deleted covers both sides; a staged deletion leaves nothing to modify.
		if e.Staged {
			add(groupStaged, icons.Status(abs, e.Deleted && !e.Modified, true, false))
		}
		if e.Modified {
			add(groupModified, icons.Status(abs, e.Deleted, false, false))
		}
	}
	var rows []statusRow
	for _, g := range statusGroups {
		children := grouped[g.id]
		if len(children) == 0 {
			continue
		}
		rows = append(rows, statusRow{id: g.id, label: fmt.Sprintf("%s (%d)", g.label, len(children))})
		rows = append(rows, children...)
	}
	return rows
}

func (a *Controller) refreshAsync() {
	a.loadStatusAsync()
	a.loadDiffAsync()
}

func (a *Controller) loadStatusAsync() {
	gen, started := a.state.status.load.start()
	if !started {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		status, err := a.svc.Status(ctx)
		var (
			head string
			rows []statusRow
		)
		if err == nil {
			head, err = a.svc.HeadName(ctx)
			rows = buildStatusRows(a.repo.path, status)
		}
		PostEvent(func() {
			current, again := a.state.status.load.finish(gen)
			if !current {
				return
			}
			if err != nil {
				slog.Error("status", slog.Any("error", err))
				a.setStatus(fmt.Sprintf("Unable to read status: %v", err))
			} else {
				a.applyStatus(status, head, rows)
			}
			if again {
				a.loadStatusAsync()
			}
		}, false)
	}()
}

// applyStatus runs on the Tk thread with rows built by buildStatusRows.
func (a *Controller) applyStatus(status git.Status, head string, rows []statusRow) {
	a.repo.status = status
	a.repo.headName = head
	a.editor.SetCanAmend(!status.Merging)
	a.updateBranchLabel()
	a.renderStatusRows(rows)
	a.syncEditorWidgets()
}

func (a *Controller) updateBranchLabel() {
	if a.ui.branchLabel == nil {
		return
	}
	label := a.repo.headName
	switch {
	case a.repo.status.Initial:
		label = "Initial commit"
	case label == "":
		label = "detached HEAD"
	}
	if a.repo.status.Merging {
		label += " (merging)"
	}
	if a.editor.Flags.Amend {
		label += " (amending)"
	}
	a.ui.branchLabel.Configure(Txt(label))
}

func (a *Controller) renderStatusRows(rows []statusRow) {
	tree := a.ui.statusTree
	if tree == nil {
		return
	}
	if _, err := tkSafeEval("%s delete [%s children {}]", tree, tree); err != nil {
		slog.Error("clear status tree", slog.Any("error", err))
	}
	a.state.status.rows = rows
	for _, row := range rows {
		if row.isGroup() {
			tree.Insert("", "end", Id(row.id), Txt(row.label), Tags("group"))
			if _, err := tkSafeEval("%s item %s -open 1", tree, row.id); err != nil {
				slog.Debug("open status group", slog.Any("error", err))
			}
			continue
		}
		opts := []Opt{Id(row.id), Txt(row.label)}
		if img := a.photos.get(icons.FromBasename(row.icon)); img != nil {
			opts = append(opts, Image(img))
		}
		tree.Insert(row.parent, "end", opts...)
	}
}

func (a *Controller) onStatusSelectionChanged() {
	if a.ui.statusTree == nil {
		return
	}
	sel := a.ui.statusTree.Selection("")
	if len(sel) == 0 {
		return
	}
	for _, row := range a.state.status.rows {
		if row.id == sel[0] && !row.isGroup() {
			a.scrollDiffToPath(row.path)
			return
		}
	}
}
