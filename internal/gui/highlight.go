//go:build !nosyntaxhighlight

package gui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/thiagokokada/gitgui-go/internal/git"

	. "modernc.org/tk9.0"
)

func (a *Controller) applySyntaxHighlight(content string) {
	if a.ui.diffDetail == nil || content == "" {
		return
	}
	a.clearSyntaxHighlight()
	style := styleForPalette(a.theme.palette)
	if style == nil {
		return
	}
	lexersByPath := make(map[string]chroma.Lexer)
	var currentLexer chroma.Lexer
	for i, line := range strings.Split(content, "\n") {
		if path, ok := git.DiffHeaderPath(line); ok {
			currentLexer = nil
			// Combined diffs carry one marker column per parent.
			if path != "" && !strings.HasPrefix(line, "diff --cc") {
				if _, seen := lexersByPath[path]; !seen {
					lexersByPath[path] = lexerForPath(path)
				}
				currentLexer = lexersByPath[path]
			}
			continue
		}
		if currentLexer == nil || strings.HasPrefix(line, "@@") {
			continue
		}
		code, offset, ok := diffLineCode(line)
		if !ok {
			continue
		}
		a.highlightCodeLine(currentLexer, style, code, i+1, offset)
	}
}

func (a *Controller) clearSyntaxHighlight() {
	if a.ui.diffDetail == nil {
		return
	}
	for _, tag := range a.state.diff.syntaxTags {
		a.ui.diffDetail.TagRemove(tag, "1.0", END)
	}
}

func (a *Controller) syntaxTagForColor(color string) string {
	if color == "" || a.ui.diffDetail == nil {
		return ""
	}
	if a.state.diff.syntaxTags == nil {
		a.state.diff.syntaxTags = make(map[string]string)
	}
	if tag, ok := a.state.diff.syntaxTags[color]; ok {
		return tag
	}
	tag := fmt.Sprintf("syntax_%d", len(a.state.diff.syntaxTags))
	a.ui.diffDetail.TagConfigure(tag, Foreground(color))
	a.state.diff.syntaxTags[color] = tag
	return tag
}

func (a *Controller) highlightCodeLine(lexer chroma.Lexer, style *chroma.Style, code string, lineNo, offset int) {
	if a.ui.diffDetail == nil || lexer == nil || style == nil || code == "" {
		return
	}
	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return
	}
	col := offset
	for _, token := range iterator.Tokens() {
		value := token.Value
		if value == "" {
			continue
		}
		length := utf8.RuneCountInString(value)
		entry := style.Get(token.Type)
		color := colorFromEntry(entry)
		if color != "" {
			tag := a.syntaxTagForColor(color)
			if tag != "" {
				a.ui.diffDetail.TagAdd(tag, textIndex(lineNo, col), textIndex(lineNo, col+length))
			}
		}
		col += length
	}
}

func styleForPalette(p colorPalette) *chroma.Style {
	if p.isDark() {
		if st := styles.Get("github-dark"); st != nil {
			return st
		}
	} else {
		if st := styles.Get("github"); st != nil {
			return st
		}
	}
	return styles.Fallback
}

func colorFromEntry(entry chroma.StyleEntry) string {
	if entry.Colour.IsSet() {
		col := entry.Colour.String()
		col = strings.TrimPrefix(strings.ToLower(col), "#")
		return "#" + col
	}
	return ""
}

func lexerForPath(path string) chroma.Lexer {
	if path == "" {
		return nil
	}
	lexer := lexers.Match(path)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}
