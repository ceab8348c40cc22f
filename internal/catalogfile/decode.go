package catalogfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hap-catalog-generator/internal/catalog"
)

// Decoder reads a catalog file.
type Decoder struct {
	r io.Reader

	// Dropped counts records skipped for lacking an identifier or name.
	Dropped int
}

// NewDecoder returns a decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode parses a catalog from r, discarding the drop count.
func Decode(r io.Reader) (*catalog.Catalog, error) {
	return NewDecoder(r).Decode()
}

// Unmarshal parses a catalog from data.
func Unmarshal(data []byte) (*catalog.Catalog, error) {
	return Decode(bytes.NewReader(data))
}

type listTarget int

const (
	listNone listTarget = iota
	listRequired
	listOptional
)

// record accumulates the fields of one list item.
type record struct {
	open     bool
	fields   map[string]string
	required []string
	optional []string
}

func (r *record) reset() {
	*r = record{open: true, fields: make(map[string]string)}
}

type decodeState struct {
	dec     *Decoder
	out     *catalog.Catalog
	section string
	rec     record
	list    listTarget
}

// Decode parses the whole input.
func (d *Decoder) Decode() (*catalog.Catalog, error) {
	st := &decodeState{dec: d, out: &catalog.Catalog{}}

	scanner := bufio.NewScanner(d.r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		st.line(strings.TrimRight(scanner.Text(), " \t\r"))
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	st.flush()

	return st.out, nil
}

func (st *decodeState) line(raw string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return
	}

	if raw[0] != ' ' && raw[0] != '-' {
		st.flush()
		st.list = listNone

		key, _, _ := splitKey(trimmed)
		switch key {
		case sectionServices, sectionCharacteristics:
			st.section = key
		default:
			st.section = ""
		}

		return
	}

	if st.section == "" {
		return
	}

	if item, ok := strings.CutPrefix(trimmed, "-"); ok && (item == "" || item[0] == ' ') {
		st.item(strings.TrimSpace(item))
		return
	}

	st.field(trimmed)
}

func (st *decodeState) item(content string) {
	if key, value, ok := splitKey(content); ok && isRecordKey(key) {
		st.flush()
		st.rec.reset()
		st.list = listNone
		st.set(key, value)

		return
	}

	if !st.rec.open {
		return
	}

	value := unquote(content)

	switch st.list {
	case listRequired:
		st.rec.required = append(st.rec.required, value)
	case listOptional:
		st.rec.optional = append(st.rec.optional, value)
	case listNone:
	}
}

func (st *decodeState) field(content string) {
	if !st.rec.open {
		return
	}

	key, value, ok := splitKey(content)
	if !ok {
		return
	}

	st.set(key, value)
}

func (st *decodeState) set(key, value string) {
	st.list = listNone

	switch key {
	case keyRequired, keyOptional:
		if value != "" && value != "[]" {
			return
		}

		if key == keyRequired {
			st.list = listRequired
		} else {
			st.list = listOptional
		}
	default:
		st.rec.fields[key] = unquote(value)
	}
}

func (st *decodeState) flush() {
	rec := st.rec
	st.rec = record{}

	if !rec.open {
		return
	}

	id := strings.TrimSpace(rec.fields[keyIdentifier])
	name := strings.TrimSpace(rec.fields[keyName])

	if id == "" || name == "" {
		st.dec.Dropped++
		return
	}

	doc := rec.fields[keyDocumentation]
	deprecated := rec.fields[keyDeprecated] == "true"

	switch st.section {
	case sectionServices:
		st.out.Services = append(st.out.Services, catalog.Service{
			Identifier:    id,
			Name:          name,
			GeneratedName: rec.fields[keyGeneratedName],
			Documentation: doc,
			Deprecated:    deprecated,
			Required:      rec.required,
			Optional:      rec.optional,
		})
	case sectionCharacteristics:
		kind, ok := catalog.ParseValueKind(rec.fields[keyValueType])
		if !ok {
			kind = catalog.KindText
		}

		st.out.Characteristics = append(st.out.Characteristics, catalog.Characteristic{
			Identifier:    id,
			Name:          name,
			GeneratedName: rec.fields[keyGeneratedName],
			Kind:          kind,
			Documentation: doc,
			Deprecated:    deprecated,
		})
	}
}

// splitKey splits "key: value" or "key:". Quoted values may contain colons.
func splitKey(s string) (key, value string, ok bool) {
	i := strings.Index(s, ":")
	if i <= 0 {
		return "", "", false
	}

	key = s[:i]
	if strings.ContainsAny(key, " \"'") {
		return "", "", false
	}

	rest := s[i+1:]
	if rest != "" && rest[0] != ' ' {
		return "", "", false
	}

	return key, strings.TrimSpace(rest), true
}

func unquote(v string) string {
	switch {
	case len(v) >= 2 && v[0] == '"' && v[len(v)-1] == '"':
		if s, err := strconv.Unquote(v); err == nil {
			return s
		}

		return v[1 : len(v)-1]
	case len(v) >= 2 && v[0] == '\'' && v[len(v)-1] == '\'':
		return strings.ReplaceAll(v[1:len(v)-1], "''", "'")
	}

	if i := strings.Index(v, " #"); i >= 0 {
		v = strings.TrimSpace(v[:i])
	}

	return v
}
