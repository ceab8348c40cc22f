package common

import (
	"go/token"
	"path/filepath"
	"strings"
	"unicode"
)

// UnknownStr is the fallback label for out-of-range enum values.
const UnknownStr = "unknown"

// PackageName derives a Go package name from an output directory: the last
// path element, lower-cased, with every non-letter/digit dropped. Returns
// fallback when nothing usable remains or the result would start with a
// digit or is a Go keyword.
func PackageName(dir, fallback string) string {
	if dir == "" {
		return fallback
	}

	base := strings.ToLower(filepath.Base(filepath.Clean(dir)))

	var sb strings.Builder

	for _, r := range base {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			sb.WriteRune(r)
		}
	}

	name := sb.String()
	if name == "" || unicode.IsDigit(rune(name[0])) || token.IsKeyword(name) {
		return fallback
	}

	return name
}
