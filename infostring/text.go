package infostring

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultKeyColumn is the column values are aligned to in the text form.
	// Purely cosmetic; the parser ignores the padding.
	DefaultKeyColumn = 28
)

// ToText renders one `key "value"` line per key in insertion order,
// padding keys to keyColumn characters.
func (r *InfoString) ToText(keyColumn int) string {
	sb := strings.Builder{}
	for _, key := range r.Keys() {
		value, _ := r.ValueForKey(key)
		sb.WriteString(key)
		for i := len(key); i < keyColumn; i++ {
			sb.WriteByte(' ')
		}
		sb.WriteString(`"` + value + `"`)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FromText parses the line-oriented `key "value"` form. Values may also be
// bare tokens. A duplicated key keeps the last occurrence.
func FromText(text string) (*InfoString, error) {
	info := New()
	lines := strings.Split(text, "\n")
	for lineNumber, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}

		key, rest, err := splitKeyValue(line)
		if err != nil {
			err := errors.Wrapf(err, "FromText error at line %d", lineNumber+1)
			return nil, err
		}
		info.SetValueForKey(key, rest)
	}
	return info, nil
}

func splitKeyValue(line string) (string, string, error) {
	separatorIndex := strings.IndexAny(line, " \t")
	if separatorIndex < 0 {
		// a key with no value stands for the empty string
		return line, "", nil
	}

	key := line[:separatorIndex]
	value := strings.TrimLeft(line[separatorIndex:], " \t")
	if strings.HasPrefix(value, `"`) {
		closingIndex := strings.LastIndex(value[1:], `"`)
		if closingIndex < 0 {
			return "", "", fmt.Errorf(`unterminated quoted value for key "%s"`, key)
		}
		return key, value[1 : closingIndex+1], nil
	}
	return key, value, nil
}
