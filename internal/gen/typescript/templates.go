package typescript

import (
	"bytes"
	"encoding/json"
	"strings"
	"text/template"
)

var funcs = template.FuncMap{
	"jsdoc":  jsdoc,
	"string": tsString,
}

// tsString renders s as a double-quoted TypeScript string literal. JSON
// string syntax is a subset of it.
func tsString(s string) string {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(s); err != nil {
		return `""`
	}

	return strings.TrimSuffix(buf.String(), "\n")
}

// jsdoc renders a /** */ block at the given indent, or nothing when there
// is no text and the entry is not deprecated.
func jsdoc(indent, text string, deprecated bool, name string) string {
	var lines []string

	if text = strings.TrimSpace(text); text != "" {
		for _, l := range strings.Split(text, "\n") {
			lines = append(lines, strings.TrimSpace(strings.ReplaceAll(l, "*/", `*\/`)))
		}
	}

	if deprecated {
		lines = append(lines, "@deprecated "+name+" is no longer part of the protocol.")
	}

	switch len(lines) {
	case 0:
		return ""
	case 1:
		return indent + "/** " + lines[0] + " */\n"
	}

	var sb strings.Builder

	sb.WriteString(indent + "/**\n")

	for _, l := range lines {
		if l == "" {
			sb.WriteString(indent + " *\n")
			continue
		}

		sb.WriteString(indent + " * " + l + "\n")
	}

	sb.WriteString(indent + " */\n")

	return sb.String()
}

var enumTemplate = template.Must(template.New("enum").Funcs(funcs).Parse(`{{.Header}}
/** {{.Kind}} identifiers keyed by generated name. */
export enum {{.Kind}}Type {
{{- range .Entries}}
{{jsdoc "  " .Doc .Deprecated .Name}}  {{.Ident}} = {{string .Identifier}},
{{- end}}
}

/** Display names for every {{.Kind}}Type, in catalog order. */
export const {{.Table}}: ReadonlyArray<readonly [{{.Kind}}Type, string]> = [
{{- range .Entries}}
  [{{$.Kind}}Type.{{.Ident}}, {{string .Name}}],
{{- end}}
];

/** Finds a {{.Kind}}Type by display name. */
export function lookup{{.Kind}}Type(name: string): {{.Kind}}Type | undefined {
  return {{.Table}}.find(([, n]) => n === name)?.[0];
}
`))

var characteristicTemplate = template.Must(template.New("characteristic").Funcs(funcs).Parse(`{{.Header}}
import { CharacteristicType } from "../characteristicTypes";

{{jsdoc "" .ValueDoc false ""}}export type {{.Ident}}Value = {{.TSType}};

{{jsdoc "" .Doc .Deprecated .Name}}export interface {{.Ident}} {
  readonly type: CharacteristicType.{{.Ident}};
  value: {{.Ident}}Value;
}
`))

var serviceTemplate = template.Must(template.New("service").Funcs(funcs).Parse(`{{.Header}}
import { CharacteristicType } from "../characteristicTypes";
import { ServiceType } from "../serviceTypes";
{{- range .Imports}}
import type { {{.}} } from "../characteristics/{{.}}";
{{- end}}

{{jsdoc "" .Doc .Deprecated .Name}}export interface {{.Ident}} {
  readonly type: ServiceType.{{.Ident}};
  characteristics: {
{{- range .Required}}
    {{.Field}}: {{.Type}};
{{- end}}
{{- range .Optional}}
    {{.Field}}?: {{.Type}};
{{- end}}
  };
}

/** Characteristics every {{.Name}} carries. */
export const {{.Ident}}RequiredCharacteristics: readonly CharacteristicType[] = [
{{- range .Required}}
  CharacteristicType.{{.Type}},
{{- end}}
];

/** Characteristics a {{.Name}} may carry. */
export const {{.Ident}}OptionalCharacteristics: readonly CharacteristicType[] = [
{{- range .Optional}}
  CharacteristicType.{{.Type}},
{{- end}}
];
`))

var indexTemplate = template.Must(template.New("index").Parse(`{{.Header}}
{{- range .Modules}}
export * from "./{{.}}";
{{- end}}
`))
