package typescript

import (
	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/gen"
	"hap-catalog-generator/internal/naming"
)

var tsReserved = []string{
	"break", "case", "catch", "class", "const", "continue", "debugger", "default",
	"delete", "do", "else", "enum", "export", "extends", "false", "finally", "for",
	"function", "if", "import", "in", "instanceof", "new", "null", "return",
	"super", "switch", "this", "throw", "true", "try", "typeof", "var", "void",
	"while", "with", "as", "implements", "interface", "let", "package", "private",
	"protected", "public", "static", "yield", "any", "boolean", "number", "string",
	"symbol", "type", "unknown", "never", "object", "undefined", "Object", "Array",
	"Record", "Readonly", "ReadonlyArray", "Partial", "Required", "Date", "Error",
	"ServiceType", "CharacteristicType",
}

func typeRules() gen.Rules {
	return gen.Rules{
		Case:     naming.UpperFirst,
		Reserved: gen.WordSet(tsReserved...),
	}
}

// fieldRules name properties of a service's characteristics map. Property
// names may be keywords, so nothing is reserved.
func fieldRules() gen.Rules {
	return gen.Rules{Case: naming.LowerFirst}
}

// TSType maps a value kind to the TypeScript type its alias resolves to.
// Data is carried as base64 text.
func TSType(k catalog.ValueKind) string {
	switch k {
	case catalog.KindBoolean:
		return "boolean"
	case catalog.KindInteger, catalog.KindFloating:
		return "number"
	case catalog.KindText, catalog.KindBytes:
		return "string"
	case catalog.KindUnknown:
		return "boolean | number | string"
	}

	return "boolean | number | string"
}
