package catalogfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"hap-catalog-generator/internal/catalog"
)

// ErrIncompleteRecord is returned by Encode for a record without an
// identifier or name.
var ErrIncompleteRecord = errors.New("record is missing identifier or name")

// Encode writes c to w. c itself is not reordered.
func Encode(w io.Writer, c *catalog.Catalog) error {
	data, err := Marshal(c)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}

// Marshal returns the encoded form of c.
func Marshal(c *catalog.Catalog) ([]byte, error) {
	sorted := c.Clone()
	sorted.Sort()

	var buf bytes.Buffer

	buf.WriteString(Header)
	buf.WriteString(sectionServices + ":\n")

	for _, s := range sorted.Services {
		if err := checkRecord("service", s.Identifier, s.Name); err != nil {
			return nil, err
		}

		writeCommon(&buf, s.Identifier, s.Name, s.GeneratedName, s.Documentation, s.Deprecated)
		writeList(&buf, keyRequired, s.Required)
		writeList(&buf, keyOptional, s.Optional)
	}

	buf.WriteString(sectionCharacteristics + ":\n")

	for _, ch := range sorted.Characteristics {
		if err := checkRecord("characteristic", ch.Identifier, ch.Name); err != nil {
			return nil, err
		}

		writeCommon(&buf, ch.Identifier, ch.Name, ch.GeneratedName, ch.Documentation, ch.Deprecated)
		writeScalar(&buf, keyValueType, ch.Kind.String())
	}

	return buf.Bytes(), nil
}

func checkRecord(role, identifier, name string) error {
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: %s identifier=%q name=%q", ErrIncompleteRecord, role, identifier, name)
	}

	return nil
}

func writeCommon(buf *bytes.Buffer, identifier, name, generated, doc string, deprecated bool) {
	buf.WriteString("  - " + keyIdentifier + ": " + quote(identifier) + "\n")
	writeScalar(buf, keyName, name)
	writeScalar(buf, keyGeneratedName, generated)

	if doc != "" {
		writeScalar(buf, keyDocumentation, doc)
	}

	if deprecated {
		buf.WriteString("    " + keyDeprecated + ": true\n")
	}
}

func writeScalar(buf *bytes.Buffer, key, value string) {
	buf.WriteString("    " + key + ": " + quote(value) + "\n")
}

func writeList(buf *bytes.Buffer, key string, items []string) {
	if len(items) == 0 {
		return
	}

	buf.WriteString("    " + key + ":\n")

	for _, item := range items {
		buf.WriteString("      - " + quote(item) + "\n")
	}
}

// quote returns s as a plain scalar when YAML would read it back verbatim,
// and as a double-quoted scalar otherwise.
func quote(s string) string {
	if needsQuotes(s) {
		return strconv.Quote(s)
	}

	return s
}

var reservedScalars = map[string]struct{}{
	"~": {}, "null": {}, "true": {}, "false": {},
	"yes": {}, "no": {}, "on": {}, "off": {}, "y": {}, "n": {},
}

func needsQuotes(s string) bool {
	if s == "" || s != strings.TrimSpace(s) {
		return true
	}

	if _, ok := reservedScalars[strings.ToLower(s)]; ok {
		return true
	}

	if strings.ContainsAny(s[:1], "-?:,[]{}#&*!|>'\"%@`.+0123456789") {
		return true
	}

	if strings.Contains(s, ": ") || strings.Contains(s, " #") || strings.HasSuffix(s, ":") {
		return true
	}

	for _, r := range s {
		if !unicode.IsPrint(r) {
			return true
		}
	}

	return false
}
