// Package strcase provides string case conversion helpers.
package strcase

import (
	"strings"
	"unicode"
)

// ToSnake converts a CamelCase or mixedCase string to snake_case.
func ToSnake(s string) string {
	if s == "" {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 4)

	runes := []rune(s)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 && (unicode.IsLower(runes[i-1]) || (i+1 < len(runes) && unicode.IsLower(runes[i+1]))) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}

	return b.String()
}

// ToCamel converts a snake_case string to lowerCamelCase.
func ToCamel(s string) string {
	if s == "" {
		return s
	}

	parts := strings.Split(s, "_")
	var b strings.Builder
	b.Grow(len(s))

	for i, p := range parts {
		if p == "" {
			continue
		}
		if i == 0 {
			b.WriteString(strings.ToLower(p[:1]) + p[1:])
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]) + p[1:])
	}

	return b.String()
}
