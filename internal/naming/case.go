package naming

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// LowerFirst lower-cases the first rune of s and leaves the rest verbatim.
func LowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst upper-cases the first rune of s and leaves the rest verbatim.
func UpperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}

	return string(unicode.ToUpper(r)) + s[size:]
}

// Canonical converts a human-readable description into the canonical join
// name:
//  1. split on spaces
//  2. upper-case the first letter of each token, keep the rest
//  3. concatenate
//  4. strip hyphens
//  5. replace dots with underscores
//  6. drop anything that is not an ASCII letter, digit or underscore
func Canonical(description string) string {
	var sb strings.Builder

	for _, token := range strings.Split(description, " ") {
		sb.WriteString(UpperFirst(token))
	}

	joined := strings.ReplaceAll(sb.String(), "-", "")
	joined = strings.ReplaceAll(joined, ".", "_")

	var out strings.Builder

	out.Grow(len(joined))

	for _, r := range joined {
		if IsIdentRune(r) {
			out.WriteRune(r)
		}
	}

	return out.String()
}

// IsIdentRune reports whether r is an ASCII letter, digit or underscore.
func IsIdentRune(r rune) bool {
	return r == '_' ||
		(r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9')
}

// SanitizeIdent replaces every rune that is not an identifier rune with an
// underscore.
func SanitizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if IsIdentRune(r) {
			return r
		}

		return '_'
	}, s)
}

// SnakeCase converts a CamelCase identifier to lower snake case, keeping
// acronyms together ("PM10Density" -> "pm10_density").
func SnakeCase(s string) string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return strings.Join(tokens, "_")
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "PowerState" -> ["Power", "State"]
//   - "PM10Density" -> ["PM10", "Density"]
//   - "PM2_5Density" -> ["PM2", "5", "Density"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prev)

	// "powerState" -> split before 'S'; digits count as part of the
	// preceding token so "PM10Density" splits before 'D'.
	if isUpper && !isPrevUpper && !isSeparator(prev) {
		return true
	}

	// End of acronym: "HTTPServer" -> "HTTP" + "Server".
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
