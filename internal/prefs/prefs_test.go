package prefs

import (
	"context"
	"testing"

	"github.com/amal-dz/amal/internal/i18n"
	"github.com/amal-dz/amal/internal/localstore"
)

func openLocal(t *testing.T) *localstore.Store {
	t.Helper()
	s, err := localstore.Open(":memory:")
	if err != nil {
		t.Fatalf("open localstore: %v", err)
	}
	return s
}

func TestThemeDefaultsToDark(t *testing.T) {
	s := NewThemeStore()
	if s.Theme() != ThemeDark {
		t.Fatalf("default theme = %s, want dark", s.Theme())
	}
}

func TestThemeToggleFlips(t *testing.T) {
	s := NewThemeStore()

	var seen []Theme
	unsub := s.Subscribe(func(th Theme) { seen = append(seen, th) })
	defer unsub()

	if got := s.Toggle(); got != ThemeLight {
		t.Fatalf("first toggle = %s, want light", got)
	}
	if got := s.Toggle(); got != ThemeDark {
		t.Fatalf("second toggle = %s, want dark", got)
	}
	if len(seen) != 2 || seen[0] != ThemeLight || seen[1] != ThemeDark {
		t.Fatalf("subscriber saw %v", seen)
	}
}

func TestThemeSetIgnoresUnknownValues(t *testing.T) {
	s := NewThemeStore()
	s.Set("sepia")
	if s.Theme() != ThemeDark {
		t.Fatalf("unknown theme mutated store: %s", s.Theme())
	}
}

func TestLanguageDefault(t *testing.T) {
	ctx := context.Background()

	s, err := NewLanguageStore(ctx, openLocal(t), i18n.Arabic)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if s.Language() != i18n.Arabic {
		t.Fatalf("default language = %s, want ar", s.Language())
	}
	if !s.IsRTL() {
		t.Fatal("ar default must be RTL")
	}
}

func TestLanguageInvalidFallbackBecomesArabic(t *testing.T) {
	s, err := NewLanguageStore(context.Background(), openLocal(t), "xx")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if s.Language() != i18n.Arabic {
		t.Fatalf("language = %s, want ar", s.Language())
	}
}

func TestLanguageSetPersistsAndRestores(t *testing.T) {
	ctx := context.Background()
	local := openLocal(t)

	s, err := NewLanguageStore(ctx, local, i18n.Arabic)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := s.Set(ctx, i18n.French); err != nil {
		t.Fatalf("set fr: %v", err)
	}

	raw, ok, err := local.Get(ctx, LanguageKey)
	if err != nil || !ok {
		t.Fatalf("persisted value missing: ok=%v err=%v", ok, err)
	}
	if raw != `"fr"` {
		t.Fatalf("persisted %q, want %q", raw, `"fr"`)
	}

	// A fresh store over the same backing storage restores the choice.
	restored, err := NewLanguageStore(ctx, local, i18n.Arabic)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored.Language() != i18n.French {
		t.Fatalf("restored %s, want fr", restored.Language())
	}
	if restored.IsRTL() {
		t.Fatal("fr must be LTR")
	}
}

func TestLanguageSetRejectsUnsupported(t *testing.T) {
	ctx := context.Background()
	s, err := NewLanguageStore(ctx, openLocal(t), i18n.English)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if err := s.Set(ctx, "es"); err != ErrUnsupportedLanguage {
		t.Fatalf("err = %v, want ErrUnsupportedLanguage", err)
	}
	if s.Language() != i18n.English {
		t.Fatalf("rejected set mutated store: %s", s.Language())
	}
}

func TestLanguageSubscriberSeesPersistedState(t *testing.T) {
	ctx := context.Background()
	local := openLocal(t)
	s, err := NewLanguageStore(ctx, local, i18n.English)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	var persistedAtNotify string
	s.Subscribe(func(lang i18n.Language) {
		raw, _, _ := local.Get(ctx, LanguageKey)
		persistedAtNotify = raw
	})

	if err := s.Set(ctx, i18n.Darija); err != nil {
		t.Fatalf("set dz: %v", err)
	}
	if persistedAtNotify != `"dz"` {
		t.Fatalf("subscriber observed persisted %q, want %q", persistedAtNotify, `"dz"`)
	}
}

func TestLanguageCorruptPersistedValueFallsBack(t *testing.T) {
	ctx := context.Background()
	local := openLocal(t)
	if err := local.Set(ctx, LanguageKey, `"klingon"`); err != nil {
		t.Fatalf("seed: %v", err)
	}

	s, err := NewLanguageStore(ctx, local, i18n.English)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	if s.Language() != i18n.English {
		t.Fatalf("language = %s, want en fallback", s.Language())
	}
}
