package registry

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func exportFixture(t *testing.T) *Registry {
	t.Helper()

	r := New([]StaticVar{
		{Name: "browser", Value: "firefox", HasValue: true},
		{Name: "reportDir", HasValue: false},
	})

	entries := []Entry{
		{Name: "zone", Value: "eu"},
		{Name: "attempts", Value: int64(3)},
		{Name: "endpoints", Value: []any{"http://a", "http://b"}},
		{Name: "flags", Value: map[string]any{"dryRun": false}},
		{Name: "token", Value: nil},
	}
	if _, err := r.SetMany(entries); err != nil {
		t.Fatalf("SetMany() error = %v", err)
	}

	return r
}

func TestExportJSON_Compact(t *testing.T) {
	r := exportFixture(t)

	out, err := r.ExportJSON(false)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	want := `{"attempts":3,"browser":"firefox","endpoints":["http://a","http://b"],"flags":{"dryRun":false},"token":null,"zone":"eu"}`
	if out != want {
		t.Errorf("ExportJSON(false) = %s, want %s", out, want)
	}
}

func TestExportJSON_PrettyMatchesCompact(t *testing.T) {
	r := exportFixture(t)

	compact, err := r.ExportJSON(false)
	if err != nil {
		t.Fatalf("ExportJSON(false) error = %v", err)
	}

	pretty, err := r.ExportJSON(true)
	if err != nil {
		t.Fatalf("ExportJSON(true) error = %v", err)
	}

	if pretty == compact {
		t.Fatal("pretty output should differ from compact output in whitespace")
	}
	if !strings.Contains(pretty, "\n") {
		t.Error("pretty output contains no newlines")
	}

	var fromCompact, fromPretty map[string]any
	if err := json.Unmarshal([]byte(compact), &fromCompact); err != nil {
		t.Fatalf("compact output is not valid JSON: %v", err)
	}
	if err := json.Unmarshal([]byte(pretty), &fromPretty); err != nil {
		t.Fatalf("pretty output is not valid JSON: %v", err)
	}
	if diff := cmp.Diff(fromCompact, fromPretty); diff != "" {
		t.Errorf("pretty and compact decode differently (-compact +pretty):\n%s", diff)
	}
}

func TestExportJSON_NoHTMLEscaping(t *testing.T) {
	r := New(nil)
	if _, err := r.Set("snippet", "<b>&amp;</b>"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	out, err := r.ExportJSON(false)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	if !strings.Contains(out, "<b>&amp;</b>") {
		t.Errorf("ExportJSON() = %s, want literal angle brackets and ampersand", out)
	}
}

func TestExportJSON_EmptyRegistry(t *testing.T) {
	out, err := New(nil).ExportJSON(false)
	if err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}
	if out != "{}" {
		t.Errorf("ExportJSON() = %s, want {}", out)
	}
}
