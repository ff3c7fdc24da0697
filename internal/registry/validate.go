package registry

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// InvalidNameError reports a dynamic variable name that violates the
// identifier rules, naming the rule it broke.
type InvalidNameError struct {
	Name string
	Rule string
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid variable name %q: %s", e.Name, e.Rule)
}

// ValidateName checks a would-be dynamic variable name against the
// identifier rules. Dynamic variables become member-style bindings in the
// consuming environment, so names must stay safe as host identifiers:
// no leading digit, no leading '$' or '_', and no PascalCase-looking prefix
// that would collide with conventional type-name casing.
func ValidateName(name string) error {
	if name == "" {
		return &InvalidNameError{Name: name, Rule: "name must not be empty"}
	}

	first, size := utf8.DecodeRuneInString(name)

	switch {
	case unicode.IsDigit(first):
		return &InvalidNameError{Name: name, Rule: "name must not start with a digit"}
	case first == '$' || first == '_':
		return &InvalidNameError{Name: name, Rule: "name must not start with '$' or '_'"}
	case unicode.IsUpper(first):
		if second, _ := utf8.DecodeRuneInString(name[size:]); unicode.IsLower(second) {
			return &InvalidNameError{
				Name: name,
				Rule: "name must not start with an uppercase letter followed by a lowercase letter",
			}
		}
	}

	return nil
}
