package golang

import (
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"comment": docComment,
}

// docComment renders text as // lines, each terminated by a newline.
func docComment(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			sb.WriteString("//\n")
			continue
		}

		sb.WriteString("// " + line + "\n")
	}

	return sb.String()
}

var runtimeTemplate = template.Must(template.New("runtime").Funcs(funcs).Parse(`{{.Header}}
// Package {{.Package}} holds typed HomeKit service and characteristic bindings.
package {{.Package}}

// ServiceType identifies a service by its framework identifier.
type ServiceType string

// CharacteristicType identifies a characteristic by its framework identifier.
type CharacteristicType string

// Characteristic holds the current value of one characteristic.
type Characteristic struct {
	Type  CharacteristicType
	Value any
}

// Service is one service instance and the characteristics it carries.
type Service struct {
	Type            ServiceType
	Characteristics map[CharacteristicType]*Characteristic
}

// NewService returns an empty service of type t.
func NewService(t ServiceType) *Service {
	return &Service{Type: t, Characteristics: make(map[CharacteristicType]*Characteristic)}
}

// Characteristic returns the characteristic of type t, if present.
func (s *Service) Characteristic(t CharacteristicType) (*Characteristic, bool) {
	if s == nil {
		return nil, false
	}

	c, ok := s.Characteristics[t]
	return c, ok
}

// Ensure returns the characteristic of type t, adding it when absent.
// A nil service yields nil.
func (s *Service) Ensure(t CharacteristicType) *Characteristic {
	if s == nil {
		return nil
	}

	if s.Characteristics == nil {
		s.Characteristics = make(map[CharacteristicType]*Characteristic)
	}

	c, ok := s.Characteristics[t]
	if !ok {
		c = &Characteristic{Type: t}
		s.Characteristics[t] = c
	}

	return c
}
`))

var typesTemplate = template.Must(template.New("types").Funcs(funcs).Parse(`{{.Header}}
package {{.Package}}

const (
{{- range .Entries}}
	{{comment .Doc}}{{if .Deprecated}}{{if .Doc}}//
{{end}}// Deprecated: {{.Name}} is no longer part of the protocol.
{{end}}{{.Const}} {{$.Kind}}Type = {{printf "%q" .Identifier}}
{{- end}}
)

// {{.Kind}}Types lists every known {{.Kind}}Type in catalog order.
var {{.Kind}}Types = []{{.Kind}}Type{
{{- range .Entries}}
	{{.Const}},
{{- end}}
}

var {{.Table}} = []struct {
	typ  {{.Kind}}Type
	name string
}{
{{- range .Entries}}
	{ {{- .Const}}, {{printf "%q" .Name -}} },
{{- end}}
}

// Name returns the display name of t, or "" if t is unknown.
func (t {{.Kind}}Type) Name() string {
	for _, e := range {{.Table}} {
		if e.typ == t {
			return e.name
		}
	}

	return ""
}

// Lookup{{.Kind}}Type finds a {{.Kind}}Type by display name.
func Lookup{{.Kind}}Type(name string) ({{.Kind}}Type, bool) {
	for _, e := range {{.Table}} {
		if e.name == name {
			return e.typ, true
		}
	}

	return "", false
}
`))

var characteristicTemplate = template.Must(template.New("characteristic").Funcs(funcs).Parse(`{{.Header}}
package {{.Package}}

{{comment .Doc}}{{if .Doc}}//
{{end}}// {{.Ident}} wraps a {{.Name}} characteristic holding {{.GoType}} values.
{{- if .Deprecated}}
//
// Deprecated: {{.Name}} is no longer part of the protocol.
{{- end}}
type {{.Ident}} struct {
	raw *Characteristic
}

// Type returns {{.Const}}.
func ({{.Ident}}) Type() CharacteristicType {
	return {{.Const}}
}

// Raw returns the underlying value holder, which may be nil.
func (c {{.Ident}}) Raw() *Characteristic {
	return c.raw
}

// Value returns the current value and whether one of the expected type is set.
func (c {{.Ident}}) Value() ({{.GoType}}, bool) {
	if c.raw == nil {
		var zero {{.GoType}}
		return zero, false
	}

	v, ok := c.raw.Value.({{.GoType}})

	return v, ok
}

// SetValue stores v. It is a no-op on a zero {{.Ident}}.
func (c {{.Ident}}) SetValue(v {{.GoType}}) {
	if c.raw != nil {
		c.raw.Value = v
	}
}
`))

var serviceTemplate = template.Must(template.New("service").Funcs(funcs).Parse(`{{.Header}}
package {{.Package}}

{{comment .Doc}}{{if .Doc}}//
{{end}}// {{.Ident}} wraps a {{.Name}} service.
{{- if .Deprecated}}
//
// Deprecated: {{.Name}} is no longer part of the protocol.
{{- end}}
type {{.Ident}} struct {
	raw *Service
}

// New{{.Ident}} returns a {{.Name}} service with its required characteristics present.
func New{{.Ident}}() {{.Ident}} {
	raw := NewService({{.Const}})
	for _, t := range {{.Ident}}RequiredCharacteristics {
		raw.Ensure(t)
	}

	return {{.Ident}}{raw: raw}
}

// As{{.Ident}} wraps raw if it is a {{.Name}} service.
func As{{.Ident}}(raw *Service) ({{.Ident}}, bool) {
	if raw == nil || raw.Type != {{.Const}} {
		return {{.Ident}}{}, false
	}

	return {{.Ident}}{raw: raw}, true
}

// Type returns {{.Const}}.
func ({{.Ident}}) Type() ServiceType {
	return {{.Const}}
}

// Raw returns the underlying service.
func (s {{.Ident}}) Raw() *Service {
	return s.raw
}
{{range .Required}}
// {{.Method}} returns the required {{.Name}} characteristic.
func (s {{$.Ident}}) {{.Method}}() {{.Type}} {
	return {{.Type}}{raw: s.raw.Ensure({{.Const}})}
}
{{end}}
{{- range .Optional}}
// {{.Method}} returns the optional {{.Name}} characteristic, if present.
func (s {{$.Ident}}) {{.Method}}() ({{.Type}}, bool) {
	raw, ok := s.raw.Characteristic({{.Const}})
	return {{.Type}}{raw: raw}, ok
}
{{end}}
// {{.Ident}}RequiredCharacteristics lists the characteristics every {{.Name}} carries.
var {{.Ident}}RequiredCharacteristics = []CharacteristicType{
{{- range .Required}}
	{{.Const}},
{{- end}}
}

// {{.Ident}}OptionalCharacteristics lists the characteristics a {{.Name}} may carry.
var {{.Ident}}OptionalCharacteristics = []CharacteristicType{
{{- range .Optional}}
	{{.Const}},
{{- end}}
}
`))
