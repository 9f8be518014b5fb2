package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"github.com/amal-dz/amal/internal/i18n"
	"github.com/amal-dz/amal/internal/localstore"
)

// LanguageKey is the fixed durable-storage key for the selected
// language, stored as a JSON string.
const LanguageKey = "amal_language"

var ErrUnsupportedLanguage = errors.New("prefs: unsupported language")

// LanguageStore holds the one active language. Selecting a language
// persists the choice first, so subscribers always observe a selection
// that is already durable.
type LanguageStore struct {
	mu     sync.Mutex
	lang   i18n.Language
	local  *localstore.Store
	nextID int
	subs   map[int]func(i18n.Language)
}

// NewLanguageStore restores the persisted selection from local, or
// falls back to fallback (then to Arabic if fallback itself is not a
// supported language).
func NewLanguageStore(ctx context.Context, local *localstore.Store, fallback i18n.Language) (*LanguageStore, error) {
	if !i18n.Valid(fallback) {
		fallback = i18n.Arabic
	}

	lang := fallback
	if local != nil {
		raw, ok, err := local.Get(ctx, LanguageKey)
		if err != nil {
			return nil, err
		}
		if ok {
			var stored i18n.Language
			if json.Unmarshal([]byte(raw), &stored) == nil && i18n.Valid(stored) {
				lang = stored
			}
		}
	}

	return &LanguageStore{
		lang:  lang,
		local: local,
		subs:  make(map[int]func(i18n.Language)),
	}, nil
}

// Language implements i18n.LanguageSource.
func (s *LanguageStore) Language() i18n.Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// IsRTL reports the text direction of the active language.
func (s *LanguageStore) IsRTL() bool {
	return i18n.IsRTL(s.Language())
}

// Direction returns the active language's text direction.
func (s *LanguageStore) Direction() i18n.Direction {
	return i18n.Languages[s.Language()].Direction
}

// Set selects lang: rejects unsupported values, persists the choice,
// then commits the in-memory state and notifies subscribers.
func (s *LanguageStore) Set(ctx context.Context, lang i18n.Language) error {
	if !i18n.Valid(lang) {
		return ErrUnsupportedLanguage
	}

	if s.local != nil {
		raw, err := json.Marshal(lang)
		if err != nil {
			return err
		}
		if err := s.local.Set(ctx, LanguageKey, string(raw)); err != nil {
			return err
		}
	}

	s.mu.Lock()
	if s.lang == lang {
		s.mu.Unlock()
		return nil
	}
	s.lang = lang
	subs := make([]func(i18n.Language), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(lang)
	}
	return nil
}

// Subscribe registers fn to run after every language change and
// returns an unsubscribe function.
func (s *LanguageStore) Subscribe(fn func(i18n.Language)) func() {
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
