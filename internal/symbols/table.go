package symbols

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"hap-catalog-generator/internal/diagnostic"
)

// ErrNoTable is returned when no stub is available; callers skip validation.
var ErrNoTable = errors.New("no symbol table")

// CodeSymbolMissing marks an identifier with no exported symbol.
const CodeSymbolMissing = "symbol_missing"

// Table is the set of bare exported symbol names.
type Table map[string]struct{}

// Has reports whether sym is exported.
func (t Table) Has(sym string) bool {
	_, ok := t[sym]
	return ok
}

// Load reads the stub at path. An empty path or missing file yields
// ErrNoTable.
func Load(path string) (Table, error) {
	if path == "" {
		return nil, ErrNoTable
	}

	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNoTable, path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open symbol stub %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

type section int

const (
	sectionNone section = iota
	sectionExports
	sectionSymbols
)

var keyRe = regexp.MustCompile(`^([A-Za-z][\w-]*):(?:\s+(.*))?$`)

// Parse scans a stub. Only symbols listed under exports[].symbols are
// collected; weak symbols, objc classes and re-exports are ignored.
func Parse(r io.Reader) (Table, error) {
	table := Table{}
	state := sectionNone

	var flow strings.Builder

	inFlow := false

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()
		trimmed := strings.TrimSpace(line)

		if inFlow {
			flow.WriteString(" ")
			flow.WriteString(trimmed)

			if flowClosed(flow.String()) {
				table.addAll(flowEntries(flow.String()))
				inFlow = false
			}

			continue
		}

		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "---") {
			continue
		}

		if trimmed == "..." {
			state = sectionNone
			continue
		}

		if line[0] != ' ' && line[0] != '\t' {
			if trimmed == "exports:" {
				state = sectionExports
			} else {
				state = sectionNone
			}

			continue
		}

		if state == sectionNone {
			continue
		}

		body := trimmed
		if strings.HasPrefix(body, "- ") || body == "-" {
			body = strings.TrimSpace(strings.TrimPrefix(body, "-"))

			if state == sectionSymbols && keyRe.FindStringSubmatch(body) == nil {
				table.add(body)
				continue
			}

			state = sectionExports
		}

		m := keyRe.FindStringSubmatch(body)
		if m == nil {
			continue
		}

		if m[1] != "symbols" {
			state = sectionExports
			continue
		}

		state = sectionSymbols
		value := strings.TrimSpace(m[2])

		switch {
		case strings.HasPrefix(value, "["):
			if flowClosed(value) {
				table.addAll(flowEntries(value))
			} else {
				flow.Reset()
				flow.WriteString(value)

				inFlow = true
			}
		case value != "":
			table.add(value)
		}
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan symbol stub: %w", err)
	}

	return table, nil
}

func (t Table) add(entry string) {
	if sym := bareSymbol(entry); sym != "" {
		t[sym] = struct{}{}
	}
}

func (t Table) addAll(entries []string) {
	for _, e := range entries {
		t.add(e)
	}
}

// bareSymbol strips quotes and architecture qualifiers:
// "arm64:_sym", "(x86_64) _sym" and "[arm64e] _sym" all become "_sym".
func bareSymbol(entry string) string {
	entry = strings.TrimSpace(entry)
	entry = strings.Trim(entry, `'"`)

	if i := strings.LastIndexAny(entry, ":)]"); i >= 0 {
		entry = entry[i+1:]
	}

	return strings.TrimSpace(entry)
}

// flowClosed reports whether s holds a complete "[ ... ]" flow sequence.
func flowClosed(s string) bool {
	depth := 0

	var quote rune

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r
		case r == '[':
			depth++
		case r == ']':
			depth--
			if depth == 0 {
				return true
			}
		}
	}

	return false
}

// flowEntries splits a "[ a, 'b', [arch] c ]" sequence into raw entries.
func flowEntries(s string) []string {
	var (
		entries []string
		cur     strings.Builder
		quote   rune
		depth   int
	)

	flush := func() {
		if e := strings.TrimSpace(cur.String()); e != "" {
			entries = append(entries, e)
		}

		cur.Reset()
	}

	for _, r := range s {
		switch {
		case quote != 0:
			cur.WriteRune(r)

			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"':
			quote = r

			cur.WriteRune(r)
		case r == '[':
			depth++
			if depth > 1 {
				cur.WriteRune(r)
			}
		case r == ']':
			depth--
			if depth == 0 {
				flush()
				return entries
			}

			cur.WriteRune(r)
		case r == ',' && depth == 1:
			flush()
		case depth >= 1:
			cur.WriteRune(r)
		}
	}

	flush()

	return entries
}

// MangledName is the linker name of an exported C constant.
func MangledName(identifier string) string {
	return "_" + identifier
}

// Validate checks every identifier against the table. An empty table skips
// validation entirely.
func Validate(table Table, identifiers []string) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics
	if len(table) == 0 {
		return diags
	}

	for _, id := range identifiers {
		if !table.Has(MangledName(id)) {
			diags.AddWarning(CodeSymbolMissing,
				fmt.Sprintf("%s is not exported by the symbol stub", MangledName(id)), id)
		}
	}

	return diags
}
