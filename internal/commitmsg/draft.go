package commitmsg

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	DraftFile = "GITGUI_MSG"
	MergeFile = "MERGE_MSG"
)

// LoadDraft returns the message to start with: MERGE_MSG while merging,
// otherwise the draft saved by a previous session. Missing files yield "".
func LoadDraft(gitDir string, merging bool) (string, error) {
	name := DraftFile
	if merging {
		name = MergeFile
	}
	data, err := os.ReadFile(filepath.Join(gitDir, name))
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	text := string(data)
	if merging {
		text = StripComments(text, DefaultCommentChar)
	}
	return strings.TrimRight(text, "\n"), nil
}

// SaveDraft stores text for the next session. An empty text removes the
// draft.
func SaveDraft(gitDir, text string) error {
	if strings.TrimSpace(text) == "" {
		return RemoveDraft(gitDir)
	}
	if err := os.WriteFile(filepath.Join(gitDir, DraftFile), []byte(text+"\n"), 0o644); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func RemoveDraft(gitDir string) error {
	err := os.Remove(filepath.Join(gitDir, DraftFile))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove draft: %w", err)
	}
	return nil
}
