package gui

import (
	"sync"

	"github.com/thiagokokada/gitgui-go/internal/debounce"
	"github.com/thiagokokada/gitgui-go/internal/git"
	"github.com/thiagokokada/gitgui-go/internal/spellcheck"
)

type diffState struct {
	fileSections          []git.FileSection
	syntaxTags            map[string]string
	suppressFileSelection bool
	skipNextSync          bool

	load loadState
}

type statusState struct {
	rows []statusRow
	load loadState
}

type spellState struct {
	mu        sync.Mutex
	debouncer *debounce.Debouncer

	ranges []spellcheck.Range
}

// loadState tracks one kind of background load. A request made while a load
// runs is remembered and replayed once; results of superseded loads are
// dropped.
type loadState struct {
	sync.Mutex
	loading    bool
	pending    bool
	generation int
}

func (s *loadState) start() (int, bool) {
	s.Lock()
	defer s.Unlock()
	if s.loading {
		s.pending = true
		return 0, false
	}
	s.loading = true
	s.generation++
	return s.generation, true
}

// finish reports whether gen is still current and whether another load was
// requested while it ran.
func (s *loadState) finish(gen int) (current bool, again bool) {
	s.Lock()
	defer s.Unlock()
	if gen != s.generation {
		return false, false
	}
	s.loading = false
	again = s.pending
	s.pending = false
	return true, again
}

func (s *loadState) reset() {
	s.Lock()
	defer s.Unlock()
	s.loading = false
	s.pending = false
	s.generation++
}
