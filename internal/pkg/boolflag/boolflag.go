// Package boolflag is the single place request-level boolean flags are
// parsed. Mock/flag inputs arrive as JSON booleans, numbers, or strings
// depending on the caller; every boundary uses the same truth table.
package boolflag

import "strings"

// Parse truth table:
//
//	true        <- true, 1, float64(1), "1", "true", "yes", "y", "on" (any case, trimmed)
//	false       <- false, 0, nil, any other string, any other type
func Parse(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case int:
		return x == 1
	case float64:
		// JSON numbers decode as float64
		return x == 1
	case string:
		switch strings.ToLower(strings.TrimSpace(x)) {
		case "1", "true", "yes", "y", "on":
			return true
		}
		return false
	default:
		return false
	}
}
