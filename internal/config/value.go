package config

import (
	"strconv"
	"strings"
)

// parseValue converts the textual form used by rc files and environment
// variables into a typed value: booleans, null, integers, floats, and
// finally plain strings.
func parseValue(s string) any {
	s = strings.TrimSpace(s)
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null", "undefined":
		return nil
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// formatValue renders a typed value back into rc-file text form.
// Inverse of parseValue for the types it produces.
func formatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case bool:
		return strconv.FormatBool(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case int:
		return strconv.Itoa(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case []string:
		return strings.Join(t, ", ")
	case string:
		return t
	default:
		return ""
	}
}

// isTrue reports whether a raw value represents boolean true. Only the
// bool true and the string "true" qualify.
func isTrue(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	default:
		return false
	}
}

// splitList normalizes a list-typed value into a string slice. String
// values split on commas and whitespace; empty elements are dropped.
func splitList(v any) []string {
	switch t := v.(type) {
	case []string:
		return t
	case string:
		return strings.FieldsFunc(t, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
	case nil:
		return nil
	default:
		return nil
	}
}

// camelCase converts a kebab-case key to the camel-cased derived name,
// e.g. "save-prefix" becomes "savePrefix".
func camelCase(key string) string {
	parts := strings.Split(key, "-")
	if len(parts) == 1 {
		return key
	}
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
