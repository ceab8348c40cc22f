package reconcile

import (
	"strings"

	"hap-catalog-generator/internal/catalog"
)

var formatKinds = map[string]catalog.ValueKind{
	"bool": catalog.KindBoolean,

	"int":     catalog.KindInteger,
	"integer": catalog.KindInteger,
	"int8":    catalog.KindInteger,
	"int16":   catalog.KindInteger,
	"int32":   catalog.KindInteger,
	"int64":   catalog.KindInteger,
	"uint8":   catalog.KindInteger,
	"uint16":  catalog.KindInteger,
	"uint32":  catalog.KindInteger,
	"uint64":  catalog.KindInteger,

	"float":       catalog.KindFloating,
	"double":      catalog.KindFloating,
	"percent":     catalog.KindFloating,
	"percentage":  catalog.KindFloating,
	"temperature": catalog.KindFloating,
	"pressure":    catalog.KindFloating,

	"data": catalog.KindBytes,
	"tlv8": catalog.KindBytes,
}

// KindForFormat maps a metadata format token to a value kind. Unknown
// tokens map to text.
func KindForFormat(token string) catalog.ValueKind {
	if k, ok := formatKinds[strings.ToLower(strings.TrimSpace(token))]; ok {
		return k
	}

	return catalog.KindText
}
