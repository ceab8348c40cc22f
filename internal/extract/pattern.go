package extract

import (
	"regexp"
	"strings"
)

// Pattern describes one declaration idiom: the export macro and the
// identifier prefix the captured name follows.
type Pattern struct {
	Macro  string
	Prefix string
}

// Default patterns for the two HomeKit headers.
var (
	ServicePattern        = Pattern{Macro: "HM_EXTERN", Prefix: "HMServiceType"}
	CharacteristicPattern = Pattern{Macro: "HM_EXTERN", Prefix: "HMCharacteristicType"}
)

// Declaration is one matched line.
type Declaration struct {
	// Identifier is Prefix+Name.
	Identifier string
	// Name is the captured suffix.
	Name string
	// Annotations is the raw text between the name and the terminating ';'.
	Annotations string
	// Documentation is the joined preceding line comments, or "".
	Documentation string
	// Line is the 1-based source line.
	Line int
}

// Deprecated reports whether the trailing annotations mark the declaration
// as deprecated.
func (d Declaration) Deprecated() bool {
	return strings.Contains(strings.ToUpper(d.Annotations), "DEPRECATED")
}

func (p Pattern) compile() *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(p.Macro) +
		`\s+[A-Za-z_]\w*(?:\s*\*)*\s*(?:const\s+)?` +
		`(` + regexp.QuoteMeta(p.Prefix) + `(\w+))` +
		`([^;]*)`)
}

// Scan returns every declaration matching p in text, in source order.
// Repeated identifiers keep their first occurrence.
func (p Pattern) Scan(text string) []Declaration {
	re := p.compile()
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	seen := make(map[string]struct{})

	var decls []Declaration

	for i, line := range lines {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		if _, dup := seen[m[1]]; dup {
			continue
		}

		seen[m[1]] = struct{}{}

		decls = append(decls, Declaration{
			Identifier:    m[1],
			Name:          m[2],
			Annotations:   strings.TrimSpace(m[3]),
			Documentation: precedingComments(lines, i),
			Line:          i + 1,
		})
	}

	return decls
}

// precedingComments walks backward from lines[at] collecting "//" comments.
// Blank lines are skipped; a block-comment marker or any other line ends
// the walk.
func precedingComments(lines []string, at int) string {
	var collected []string

walk:
	for j := at - 1; j >= 0; j-- {
		trimmed := strings.TrimSpace(lines[j])

		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "//"):
			if text := commentText(trimmed); text != "" {
				collected = append(collected, text)
			}
		default:
			break walk
		}
	}

	if len(collected) == 0 {
		return ""
	}

	for l, r := 0, len(collected)-1; l < r; l, r = l+1, r-1 {
		collected[l], collected[r] = collected[r], collected[l]
	}

	return strings.Join(collected, " ")
}

func commentText(line string) string {
	text := strings.TrimLeft(line, "/")
	text = strings.TrimPrefix(text, "!")
	text = strings.TrimPrefix(text, "<")

	return strings.TrimSpace(text)
}
