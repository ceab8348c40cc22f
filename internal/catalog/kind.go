package catalog

import "strings"

//go:generate go tool stringer -type=ValueKind -linecomment -output=kind_string.go

// ValueKind is the primitive category a characteristic value is typed as.
type ValueKind int

const (
	KindUnknown  ValueKind = iota // unknown
	KindBoolean                   // bool
	KindInteger                   // int
	KindFloating                  // float
	KindText                      // string
	KindBytes                     // data

	// KindTotal is the number of value kinds defined.
	KindTotal = int(iota)
)

// ParseValueKind maps a serialized token back to its kind. Unrecognized
// tokens report false.
func ParseValueKind(token string) (ValueKind, bool) {
	token = strings.TrimSpace(token)
	for k := ValueKind(0); int(k) < KindTotal; k++ {
		if k.String() == token {
			return k, true
		}
	}

	return KindUnknown, false
}
