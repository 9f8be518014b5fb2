package i18n

import (
	"sort"
	"strings"
)

// LanguageSource reports the currently active language. The resolver
// reads it on every lookup, so a language switch takes effect on the
// next call with no cache to invalidate.
type LanguageSource interface {
	Language() Language
}

// Resolver maps "namespace.key" strings to localized text for the
// active language.
type Resolver struct {
	source LanguageSource
}

func NewResolver(source LanguageSource) *Resolver {
	return &Resolver{source: source}
}

// T resolves key ("namespace.item") in the active language. A key
// whose namespace or item is missing comes back unchanged, so missing
// translations surface as raw keys in the UI instead of blanks.
func (r *Resolver) T(key string) string {
	return Lookup(r.source.Language(), key)
}

// Lookup resolves key in an explicit language with the same fallback
// behavior as T.
func Lookup(lang Language, key string) string {
	ns, item, ok := strings.Cut(key, ".")
	if !ok {
		return key
	}
	table, ok := translations[lang]
	if !ok {
		return key
	}
	entries, ok := table[ns]
	if !ok {
		return key
	}
	s, ok := entries[item]
	if !ok {
		return key
	}
	return s
}

// MissingKeys returns every "lang:namespace.item" triple that exists
// in at least one language but not in lang itself. An empty result
// means the table is total.
func MissingKeys() []string {
	type ref struct{ ns, item string }
	seen := map[ref]struct{}{}
	for _, table := range translations {
		for ns, entries := range table {
			for item := range entries {
				seen[ref{ns, item}] = struct{}{}
			}
		}
	}

	var missing []string
	for _, lang := range All() {
		table := translations[lang]
		for k := range seen {
			if _, ok := table[k.ns][k.item]; !ok {
				missing = append(missing, string(lang)+":"+k.ns+"."+k.item)
			}
		}
	}
	sort.Strings(missing)
	return missing
}
