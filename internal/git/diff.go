package git

import (
	"context"
	"strings"
)

// FileSection marks the line where the diff of Path starts.
type FileSection struct {
	Path string
	Line int
}

const noStagedChanges = "No staged changes."

// StagedDiff returns the diff between HEAD and the index as produced by git.
func (s *Service) StagedDiff(ctx context.Context) (string, []FileSection, error) {
	text, err := s.backend.StagedDiffText(ctx)
	if err != nil {
		return "", nil, err
	}
	if strings.TrimSpace(text) == "" {
		return noStagedChanges, nil, nil
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return text, parseGitDiffSections(text, 0), nil
}

func parseGitDiffSections(diffText string, lineOffset int) []FileSection {
	lines := strings.Split(diffText, "\n")
	var sections []FileSection
	for i, line := range lines {
		if path := parseGitDiffPath(line); path != "" {
			sections = append(sections, FileSection{Path: path, Line: lineOffset + i + 1})
		}
	}
	return sections
}

// DiffHeaderPath reports whether line starts the diff of one file and
// returns that file's path.
func DiffHeaderPath(line string) (string, bool) {
	if !strings.HasPrefix(line, "diff --git ") && !strings.HasPrefix(line, "diff --cc ") {
		return "", false
	}
	return parseGitDiffPath(line), true
}

// parseGitDiffPath understands "diff --git a/x b/x" and the combined
// "diff --cc x" headers git writes for unresolved merges.
func parseGitDiffPath(line string) string {
	const (
		gitPrefix = "diff --git "
		ccPrefix  = "diff --cc "
	)
	switch {
	case strings.HasPrefix(line, gitPrefix):
		tokens := diffLineTokens(strings.TrimSpace(line[len(gitPrefix):]))
		if len(tokens) < 2 {
			return ""
		}
		return normalizeDiffPath(tokens[1])
	case strings.HasPrefix(line, ccPrefix):
		tokens := diffLineTokens(strings.TrimSpace(line[len(ccPrefix):]))
		if len(tokens) == 0 {
			return ""
		}
		return tokens[0]
	}
	return ""
}

func diffLineTokens(s string) []string {
	var tokens []string
	for {
		s = strings.TrimLeft(s, " \t")
		if s == "" {
			break
		}
		if s[0] == '"' {
			var buf strings.Builder
			escaped := false
			i := 1
			for i < len(s) {
				ch := s[i]
				if escaped {
					buf.WriteByte(ch)
					escaped = false
					i++
					continue
				}
				if ch == '\\' {
					escaped = true
					i++
					continue
				}
				if ch == '"' {
					i++
					break
				}
				buf.WriteByte(ch)
				i++
			}
			tokens = append(tokens, buf.String())
			s = s[i:]
			continue
		}
		j := 0
		for j < len(s) && s[j] != ' ' && s[j] != '\t' {
			j++
		}
		tokens = append(tokens, s[:j])
		s = s[j:]
	}
	return tokens
}

func normalizeDiffPath(token string) string {
	token = strings.TrimPrefix(token, "a/")
	token = strings.TrimPrefix(token, "b/")
	return token
}
