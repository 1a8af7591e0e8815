// Package spellcheck flags unknown words in the commit description.
package spellcheck

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"sync"
	"unicode"

	"cogentcore.org/core/text/spell"
)

// Jargon that is always accepted in commit messages.
var commitWords = []string{"Acked", "Signed", "Closes", "Fixes"}

// Checker wraps the en_US dictionary with words added for this session.
// The dictionary is loaded on first use.
type Checker struct {
	once sync.Once
	mu   sync.Mutex
	data *spell.SpellData

	enabled bool
	pending []string
}

func New() *Checker {
	return &Checker{}
}

// Load reads the embedded dictionary. It is slow and may be called from a
// background goroutine ahead of Enable.
func (c *Checker) Load() {
	c.once.Do(func() {
		data := spell.NewSpell("")
		if data == nil {
			slog.Error("Failed to load spelling dictionary")
		}
		c.mu.Lock()
		c.data = data
		pending := c.pending
		c.pending = nil
		c.mu.Unlock()
		c.ignore(pending)
	})
}

func (c *Checker) Enable(on bool) {
	if on {
		c.Load()
	}
	c.mu.Lock()
	c.enabled = on
	c.mu.Unlock()
}

func (c *Checker) Enabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled
}

// AddWords accepts words for the rest of the session.
func (c *Checker) AddWords(words ...string) {
	c.mu.Lock()
	if c.data == nil {
		c.pending = append(c.pending, words...)
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()
	c.ignore(words)
}

func (c *Checker) ignore(words []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return
	}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			c.data.IgnoreWord(w)
		}
	}
}

// AddIdentity accepts the parts of the user's name and email address along
// with common trailer words.
func (c *Checker) AddIdentity(name, email string) {
	c.AddWords(IdentityWords(name, email)...)
}

func IdentityWords(name, email string) []string {
	words := strings.Fields(name)
	for _, part := range strings.Split(email, "@") {
		for _, elt := range strings.Split(part, ".") {
			if elt != "" {
				words = append(words, elt)
			}
		}
	}
	return append(words, commitWords...)
}

// LoadDictionary adds every word of a word list file, one per line.
func (c *Checker) LoadDictionary(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		words = append(words, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read dictionary %s: %w", path, err)
	}
	c.AddWords(words...)
	return nil
}

// Known reports whether word is spelled correctly. Everything is accepted
// until the dictionary has been loaded.
func (c *Checker) Known(word string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return true
	}
	_, known := c.data.CheckWord(word)
	return known
}

// Suggest returns replacements for an unknown word.
func (c *Checker) Suggest(word string) []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		return nil
	}
	suggestions, known := c.data.CheckWord(word)
	if known {
		return nil
	}
	return suggestions
}

// Range is a word position: 1-based line, 0-based rune columns, End
// exclusive. This matches Tk text indices.
type Range struct {
	Line  int
	Start int
	End   int
	Word  string
}

// Misspelled returns the unknown words of text. It returns nothing while the
// checker is disabled.
func (c *Checker) Misspelled(text string) []Range {
	if !c.Enabled() {
		return nil
	}
	var bad []Range
	for _, r := range Words(text) {
		if !c.Known(r.Word) {
			bad = append(bad, r)
		}
	}
	return bad
}

// Words splits text into checkable words. URLs, email addresses and
// anything containing digits are skipped, as are single letters.
func Words(text string) []Range {
	var out []Range
	for i, line := range strings.Split(text, "\n") {
		out = appendLineWords(out, i+1, []rune(line))
	}
	return out
}

func appendLineWords(out []Range, lineNo int, line []rune) []Range {
	col := 0
	for col < len(line) {
		if unicode.IsSpace(line[col]) {
			col++
			continue
		}
		end := col
		for end < len(line) && !unicode.IsSpace(line[end]) {
			end++
		}
		field := string(line[col:end])
		if !isAddress(field) {
			out = appendFieldWords(out, lineNo, line, col, end)
		}
		col = end
	}
	return out
}

func appendFieldWords(out []Range, lineNo int, line []rune, start, end int) []Range {
	i := start
	for i < end {
		if !isWordRune(line[i]) && !unicode.IsDigit(line[i]) {
			i++
			continue
		}
		j := i
		digits := false
		for j < end && (isWordRune(line[j]) || unicode.IsDigit(line[j])) {
			if unicode.IsDigit(line[j]) {
				digits = true
			}
			j++
		}
		ws, we := i, j
		for ws < we && line[ws] == '\'' {
			ws++
		}
		for we > ws && line[we-1] == '\'' {
			we--
		}
		if !digits && we-ws >= 2 {
			out = append(out, Range{Line: lineNo, Start: ws, End: we, Word: string(line[ws:we])})
		}
		i = j
	}
	return out
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || r == '\''
}

func isAddress(field string) bool {
	return strings.Contains(field, "://") ||
		strings.HasPrefix(field, "www.") ||
		strings.Contains(field, "@")
}
