package loader

import (
	"fmt"
	"sort"

	"go.dot.industries/gvx/internal/literal"
	"go.dot.industries/gvx/internal/profile"
	"go.dot.industries/gvx/internal/registry"
)

// Loader applies execution profiles to the global variable registry: it
// resolves profile names to documents, evaluates each entry's literal
// expression, and writes the result into the registry.
type Loader struct {
	repo *profile.Repository
	reg  *registry.Registry
}

// New creates a Loader over the given repository and registry.
func New(repo *profile.Repository, reg *registry.Registry) *Loader {
	return &Loader{repo: repo, reg: reg}
}

// LoadProfile loads a single profile and returns the number of entries
// written.
func (l *Loader) LoadProfile(name string) (int, error) {
	return l.LoadProfiles([]string{name})
}

// LoadProfiles loads several profiles in order. Documents are resolved up
// front; entries are then applied profile by profile in the given order, so
// a later profile's value for a name overrides an earlier one's
// (last-applied-wins). The returned count is the total number of entries
// written across all profiles, duplicates included.
//
// Any resolution, evaluation, or registry failure aborts the call. Entries
// already written stay committed; there is no rollback.
func (l *Loader) LoadProfiles(names []string) (int, error) {
	docs, err := l.repo.ResolveAll(names)
	if err != nil {
		return 0, err
	}

	total := 0
	for i, doc := range docs {
		n, err := l.apply(names[i], doc)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

// apply evaluates and writes every entry of one document, in document
// order. Duplicate names within a document are last-wins.
func (l *Loader) apply(name string, doc *profile.Document) (int, error) {
	written := 0

	for _, entry := range doc.Entries {
		value, err := literal.Eval(entry.InitValue)
		if err != nil {
			return written, fmt.Errorf("profile %q, entry %q: %w", name, entry.Name, err)
		}

		if _, err := l.reg.Set(entry.Name, value); err != nil {
			return written, fmt.Errorf("profile %q: %w", name, err)
		}
		written++
	}

	return written, nil
}

// LoadEntries writes already-typed values directly into the registry,
// bypassing document parsing and literal evaluation. Pairs are applied in
// sorted-key order so repeated calls behave deterministically. Returns the
// number of pairs written before any failure.
func (l *Loader) LoadEntries(pairs map[string]any) (int, error) {
	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]registry.Entry, 0, len(names))
	for _, name := range names {
		entries = append(entries, registry.Entry{Name: name, Value: pairs[name]})
	}

	return l.reg.SetMany(entries)
}

// Clear empties the registry's dynamic tier.
func (l *Loader) Clear() {
	l.reg.Clear()
}
