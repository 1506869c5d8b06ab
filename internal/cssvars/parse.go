package cssvars

import (
	"fmt"
	"io"
	"regexp"
)

// Pattern matches "--name: #hex" where hex is a run of 3 to 6 hex digits.
var Pattern = regexp.MustCompile(`--([a-zA-Z0-9-]+):\s*(#[0-9a-fA-F]{3,6})`)

// Parse returns every declaration in r in occurrence order.
func Parse(r io.Reader, source string) ([]Variable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read stylesheet %s: %w", source, err)
	}
	return ParseString(string(data), source), nil
}

// ParseString is Parse over in-memory text.
func ParseString(text, source string) []Variable {
	matches := Pattern.FindAllStringSubmatch(text, -1)
	vars := make([]Variable, 0, len(matches))
	for _, m := range matches {
		vars = append(vars, Variable{
			Name:   m[1],
			Value:  m[2],
			Source: source,
		})
	}
	return vars
}
