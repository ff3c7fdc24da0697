package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.dot.industries/gvx/internal/literal"
	"go.dot.industries/gvx/internal/profile"
)

func TestFromJSON(t *testing.T) {
	input := []byte(`{
		"suiteName": "smoke",
		"retries": 3,
		"hosts": ["db1", "db2"],
		"flags": {"headless": true},
		"token": null
	}`)

	doc, err := FromJSON(input, Options{
		Name:        "imported",
		Description: "Imported from runner.json",
		Tag:         "migration",
	})
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	if doc.Name != "imported" || doc.Tag != "migration" {
		t.Errorf("document fields = (%q, %q), want (imported, migration)", doc.Name, doc.Tag)
	}
	if doc.Default {
		t.Error("Default = true, want false")
	}

	wantNames := []string{"flags", "hosts", "retries", "suiteName", "token"}
	gotNames := make([]string, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		gotNames = append(gotNames, e.Name)
	}
	if diff := cmp.Diff(wantNames, gotNames); diff != "" {
		t.Errorf("entry order mismatch (-want +got):\n%s", diff)
	}
}

func TestFromJSON_LiteralsEvaluateBack(t *testing.T) {
	input := []byte(`{"retries": 3, "ratio": 0.5, "hosts": ["a"], "on": true, "none": null, "msg": "hi"}`)

	doc, err := FromJSON(input, Options{Name: "roundtrip"})
	if err != nil {
		t.Fatalf("FromJSON() error = %v", err)
	}

	want := map[string]any{
		"retries": int64(3),
		"ratio":   0.5,
		"hosts":   []any{"a"},
		"on":      true,
		"none":    nil,
		"msg":     "hi",
	}

	got := make(map[string]any, len(doc.Entries))
	for _, e := range doc.Entries {
		v, err := literal.Eval(e.InitValue)
		if err != nil {
			t.Fatalf("entry %q produced unevaluable literal %q: %v", e.Name, e.InitValue, err)
		}
		got[e.Name] = v
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("evaluated entries mismatch (-want +got):\n%s", diff)
	}
}

func TestFromJSON_NotAnObject(t *testing.T) {
	if _, err := FromJSON([]byte(`[1, 2, 3]`), Options{}); err == nil {
		t.Fatal("FromJSON() expected an error for a non-object input")
	}
}

func TestFromPairs_SerializeRoundTrip(t *testing.T) {
	doc, err := FromPairs(map[string]any{"zone": "eu", "retries": int64(2)}, Options{Name: "rt"})
	if err != nil {
		t.Fatalf("FromPairs() error = %v", err)
	}

	data, err := doc.Serialize()
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}

	reparsed, err := profile.Parse(data)
	if err != nil {
		t.Fatalf("Parse(Serialize()) error = %v", err)
	}

	if !reparsed.Contains("zone") || !reparsed.Contains("retries") {
		t.Errorf("reparsed document entries = %+v, want zone and retries", reparsed.Entries)
	}
}
