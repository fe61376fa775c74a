// Package stringkit changes the style of strings between formats like snake_case or PascalCase.
package stringkit

import (
	"strings"
	"unicode"
)

// ToPascal converts the input into PascalCase.
// Without separators, only the first character is changed, so acronyms like "ID" or "userID" are kept as they are.
func ToPascal(s string) string {
	words := splitBySeparator(s)
	screaming := len(words) > 1 && s == strings.ToUpper(s)
	var b strings.Builder
	for _, word := range words {
		if screaming {
			word = strings.ToLower(word)
		}
		b.WriteString(upperFirst(word))
	}
	return b.String()
}

// ToCamel converts the input into camelCase.
// A leading acronym is lowered as a whole: "HTTPServer" becomes "httpServer".
func ToCamel(s string) string {
	chars := []rune(ToPascal(s))
	for i := range chars {
		if !unicode.IsUpper(chars[i]) {
			break
		}
		if 0 < i {
			if next, ok := lookupChar(chars, i+1); ok && unicode.IsLower(next) {
				break
			}
		}
		chars[i] = unicode.ToLower(chars[i])
	}
	return string(chars)
}

// ToSnake converts the input into snake_case.
func ToSnake(s string) string { return toSnakeKebab(s, '_') }

// ToKebab converts the input into kebab-case.
func ToKebab(s string) string { return toSnakeKebab(s, '-') }

func toSnakeKebab(s string, separator rune) string {
	var words []string
	for _, word := range splitBySeparator(s) {
		words = append(words, splitByCase(word)...)
	}
	for i, word := range words {
		words[i] = strings.ToLower(word)
	}
	return strings.Join(words, string(separator))
}

func splitBySeparator(s string) []string {
	return strings.FieldsFunc(s, isSeparatorSymbol)
}

// splitByCase splits a word at its case boundaries: "HTTPServer" -> "HTTP", "Server".
func splitByCase(word string) []string {
	var (
		chars = []rune(word)
		out   []string
		start int
	)
	for i, r := range chars {
		if i == 0 || !unicode.IsUpper(r) {
			continue
		}
		prev := chars[i-1]
		next, hasNext := lookupChar(chars, i+1)
		if unicode.IsLower(prev) || unicode.IsDigit(prev) ||
			(unicode.IsUpper(prev) && hasNext && unicode.IsLower(next)) {
			out = append(out, string(chars[start:i]))
			start = i
		}
	}
	return append(out, string(chars[start:]))
}

func upperFirst(s string) string {
	chars := []rune(s)
	if len(chars) == 0 {
		return s
	}
	chars[0] = unicode.ToUpper(chars[0])
	return string(chars)
}

func isSeparatorSymbol(r rune) bool {
	return r == '-' || r == ' ' || r == '.' || r == '_'
}

func lookupChar(str []rune, index int) (rune, bool) {
	if index < 0 || len(str) <= index {
		return 0, false
	}
	return str[index], true
}
