package registry

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// ExportJSON serializes a snapshot of the registry as a JSON object with
// lexicographically sorted keys. Pretty mode indents; compact mode differs
// from it only in whitespace. String values are not HTML-escaped.
//
// The snapshot is taken up front, so concurrent writes during serialization
// cannot tear the export.
func (r *Registry) ExportJSON(pretty bool) (string, error) {
	snap := r.Snapshot()

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(snap); err != nil {
		return "", fmt.Errorf("exporting registry as JSON: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
