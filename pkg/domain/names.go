package domain

import (
	"fmt"
	"strings"
)

// Small helpers shared by the int-backed enums so they serialize by name
// in JSON and YAML.

func nameOf(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("Unknown(%d)", i)
	}
	return names[i]
}

func marshalName(names []string, i int, kind string) ([]byte, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("invalid %s %d", kind, i)
	}
	return []byte(names[i]), nil
}

func unmarshalName(names []string, text []byte, kind string, out *int) error {
	s := strings.TrimSpace(string(text))
	for i, n := range names {
		if strings.EqualFold(n, s) {
			*out = i
			return nil
		}
	}
	return fmt.Errorf("unknown %s %q", kind, s)
}
