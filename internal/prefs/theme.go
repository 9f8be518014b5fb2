// Package prefs holds the two user preference stores: theme and
// language. Both are plain reactive stores, explicitly constructed
// and injected where needed, never global.
package prefs

import "sync"

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// ThemeStore keeps the active theme for the process lifetime. It is
// not persisted across runs; the default is dark.
type ThemeStore struct {
	mu     sync.Mutex
	theme  Theme
	nextID int
	subs   map[int]func(Theme)
}

func NewThemeStore() *ThemeStore {
	return &ThemeStore{theme: ThemeDark, subs: make(map[int]func(Theme))}
}

func (s *ThemeStore) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// Toggle flips dark and light and returns the new theme.
func (s *ThemeStore) Toggle() Theme {
	s.mu.Lock()
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	t := s.theme
	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
	return t
}

// Set forces a specific theme. Unknown values are ignored.
func (s *ThemeStore) Set(t Theme) {
	if t != ThemeLight && t != ThemeDark {
		return
	}
	s.mu.Lock()
	if s.theme == t {
		s.mu.Unlock()
		return
	}
	s.theme = t
	subs := s.snapshot()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(t)
	}
}

// Subscribe registers fn to run after every theme change and returns
// an unsubscribe function.
func (s *ThemeStore) Subscribe(fn func(Theme)) func() {
	s.mu.Lock()
	s.nextID++
	id := s.nextID
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *ThemeStore) snapshot() []func(Theme) {
	out := make([]func(Theme), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}
