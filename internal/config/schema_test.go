package config

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"go.dot.industries/gvx/internal/literal"
	"go.dot.industries/gvx/internal/registry"
)

func TestStaticSchema(t *testing.T) {
	s := &Settings{
		Static: []StaticSetting{
			{Name: "browser", Value: strPtr(`"firefox"`)},
			{Name: "timeout", Value: strPtr("30")},
			{Name: "flags", Value: strPtr("[headless: true]")},
			{Name: "reportDir"},
		},
	}

	schema, err := StaticSchema(s)
	if err != nil {
		t.Fatalf("StaticSchema() error = %v", err)
	}

	want := []registry.StaticVar{
		{Name: "browser", Value: "firefox", HasValue: true},
		{Name: "timeout", Value: int64(30), HasValue: true},
		{Name: "flags", Value: map[string]any{"headless": true}, HasValue: true},
		{Name: "reportDir"},
	}
	if diff := cmp.Diff(want, schema); diff != "" {
		t.Errorf("StaticSchema() mismatch (-want +got):\n%s", diff)
	}
}

func TestStaticSchema_InvalidLiteral(t *testing.T) {
	s := &Settings{
		Static: []StaticSetting{{Name: "broken", Value: strPtr("not a literal")}},
	}

	_, err := StaticSchema(s)
	if err == nil {
		t.Fatal("StaticSchema() expected an error")
	}

	var invalid *literal.InvalidLiteralError
	if !errors.As(err, &invalid) {
		t.Fatalf("StaticSchema() error = %T, want *literal.InvalidLiteralError", err)
	}
}
