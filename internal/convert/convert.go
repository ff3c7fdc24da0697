// Package convert builds profile documents from foreign configuration
// formats, so existing flat configs can be migrated into profiles.
package convert

import (
	"encoding/json"
	"fmt"
	"sort"

	"go.dot.industries/gvx/internal/literal"
	"go.dot.industries/gvx/internal/profile"
)

// Options describe the document-level fields of a converted profile.
type Options struct {
	Name        string
	Description string
	Tag         string
	Default     bool
}

// FromJSON converts a JSON object of name/value pairs into a profile
// document. The input must be a single top-level object.
func FromJSON(data []byte, opts Options) (*profile.Document, error) {
	var pairs map[string]any
	if err := json.Unmarshal(data, &pairs); err != nil {
		return nil, fmt.Errorf("parsing JSON input: %w", err)
	}

	return FromPairs(pairs, opts)
}

// FromPairs converts name/value pairs into a profile document, rendering
// each value back into a literal expression. Entries are emitted in sorted
// name order so converting the same input twice yields the same document.
// The input map is never mutated.
func FromPairs(pairs map[string]any, opts Options) (*profile.Document, error) {
	doc := &profile.Document{
		Description: opts.Description,
		Name:        opts.Name,
		Tag:         opts.Tag,
		Default:     opts.Default,
	}

	names := make([]string, 0, len(pairs))
	for name := range pairs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if name == "" {
			return nil, fmt.Errorf("input contains an entry with an empty name")
		}

		expr, err := literal.Quote(pairs[name])
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", name, err)
		}

		doc.Entries = append(doc.Entries, profile.Entry{
			Name:      name,
			InitValue: expr,
		})
	}

	return doc, nil
}
