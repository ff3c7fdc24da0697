package literal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Quote renders a value back into literal text such that Eval(Quote(v))
// reproduces v. Mapping keys are emitted in sorted order so output is
// deterministic.
func Quote(v any) (string, error) {
	var b strings.Builder
	if err := quoteValue(&b, v); err != nil {
		return "", err
	}
	return b.String(), nil
}

func quoteValue(b *strings.Builder, v any) error {
	switch val := v.(type) {
	case nil:
		b.WriteString("null")
	case bool:
		b.WriteString(strconv.FormatBool(val))
	case string:
		quoteString(b, val)
	case int:
		b.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		b.WriteString(strconv.FormatInt(val, 10))
	case float64:
		b.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case []any:
		return quoteList(b, val)
	case map[string]any:
		return quoteMapping(b, val)
	default:
		return fmt.Errorf("value of type %T cannot be rendered as a literal", v)
	}

	return nil
}

// quoteString writes a double-quoted string with the escapes the evaluator
// understands.
func quoteString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\t':
			b.WriteString(`\t`)
		case '\r':
			b.WriteString(`\r`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
}

func quoteList(b *strings.Builder, list []any) error {
	b.WriteByte('[')
	for i, item := range list {
		if i > 0 {
			b.WriteString(", ")
		}
		if err := quoteValue(b, item); err != nil {
			return err
		}
	}
	b.WriteByte(']')

	return nil
}

func quoteMapping(b *strings.Builder, m map[string]any) error {
	if len(m) == 0 {
		b.WriteString("[:]")
		return nil
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			b.WriteString(", ")
		}
		quoteString(b, k)
		b.WriteString(": ")
		if err := quoteValue(b, m[k]); err != nil {
			return err
		}
	}
	b.WriteByte('}')

	return nil
}
