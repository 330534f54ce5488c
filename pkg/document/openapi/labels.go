package openapi

import (
	"regexp"
	"strings"
	"unicode"
)

var separators = regexp.MustCompile(`[_\-\s./{}]+`)

// words splits a property name on separators and camelCase or digit
// boundaries: "accountName2" becomes ["account", "Name", "2"].
func words(name string) []string {
	var out []string
	for _, chunk := range separators.Split(name, -1) {
		if chunk == "" {
			continue
		}
		runes := []rune(chunk)
		start := 0
		for i := 1; i < len(runes); i++ {
			if boundary(runes[i-1], runes[i]) {
				out = append(out, string(runes[start:i]))
				start = i
			}
		}
		out = append(out, string(runes[start:]))
	}
	return out
}

func boundary(prev, cur rune) bool {
	switch {
	case unicode.IsLower(prev) && unicode.IsUpper(cur):
		return true
	case unicode.IsLetter(prev) && unicode.IsDigit(cur):
		return true
	case unicode.IsDigit(prev) && unicode.IsLetter(cur):
		return true
	}
	return false
}

// Label turns a property name into a human label ("accountName" -> "Account Name").
func Label(name string) string {
	parts := words(name)
	for i, w := range parts {
		lower := strings.ToLower(w)
		r := []rune(lower)
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// FieldID builds a host field id from a prefix and a property name
// ("custpage_", "accountName" -> "custpage_account_name").
func FieldID(prefix, name string) string {
	parts := words(name)
	for i, w := range parts {
		parts[i] = strings.ToLower(w)
	}
	return prefix + strings.Join(parts, "_")
}
