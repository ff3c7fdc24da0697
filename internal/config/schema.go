package config

import (
	"fmt"

	"go.dot.industries/gvx/internal/literal"
	"go.dot.industries/gvx/internal/registry"
)

// StaticSchema evaluates the static settings into the registry's static
// variable schema. Each configured value is a literal expression; a static
// entry without a value becomes a declared-but-unresolved key.
func StaticSchema(s *Settings) ([]registry.StaticVar, error) {
	schema := make([]registry.StaticVar, 0, len(s.Static))

	for _, sv := range s.Static {
		entry := registry.StaticVar{Name: sv.Name}

		if sv.Value != nil {
			v, err := literal.Eval(*sv.Value)
			if err != nil {
				return nil, fmt.Errorf("static variable %q: %w", sv.Name, err)
			}
			entry.Value = v
			entry.HasValue = true
		}

		schema = append(schema, entry)
	}

	return schema, nil
}
