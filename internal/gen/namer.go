package gen

import (
	"strconv"

	"hap-catalog-generator/internal/naming"
)

// Rules describe how one target language spells identifiers.
type Rules struct {
	// Case is applied first, e.g. naming.UpperFirst for exported Go types.
	Case func(string) string
	// Reserved holds words that may not be emitted verbatim.
	Reserved map[string]struct{}
	// ValidStart reports whether r may begin an identifier. Nil accepts
	// anything but a digit.
	ValidStart func(r rune) bool
}

// Namer hands out unique identifiers within one namespace. It is not safe
// for concurrent use; names are resolved serially before rendering starts.
type Namer struct {
	rules Rules
	used  map[string]struct{}
}

// NewNamer returns an empty namespace governed by rules.
func NewNamer(rules Rules) *Namer {
	return &Namer{rules: rules, used: make(map[string]struct{})}
}

// Reserve marks names as taken without emitting them.
func (n *Namer) Reserve(names ...string) {
	for _, name := range names {
		n.used[name] = struct{}{}
	}
}

// Taken reports whether name has been handed out or reserved.
func (n *Namer) Taken(name string) bool {
	_, ok := n.used[name]
	return ok
}

// Name resolves an identifier for an entry. generated is preferred; when it
// is empty the display name is used. role is appended to reserved words.
func (n *Namer) Name(generated, display, role string) string {
	base := generated
	if base == "" {
		base = naming.LowerFirst(display)
	}

	if n.rules.Case != nil {
		base = n.rules.Case(base)
	}

	base = naming.SanitizeIdent(base)
	if base == "" {
		base = "_"
	}

	if _, reserved := n.rules.Reserved[base]; reserved {
		base += role
	}

	if !n.validStart([]rune(base)[0]) {
		base = "_" + base
	}

	name := base
	for i := 2; n.Taken(name); i++ {
		name = base + strconv.Itoa(i)
	}

	n.used[name] = struct{}{}

	return name
}

func (n *Namer) validStart(r rune) bool {
	if n.rules.ValidStart != nil {
		return n.rules.ValidStart(r)
	}

	return r < '0' || r > '9'
}

// WordSet builds a reserved-word set.
func WordSet(words ...string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}

	return set
}
