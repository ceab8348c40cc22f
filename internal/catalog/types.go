package catalog

import (
	"cmp"
	"slices"
)

// Service is a named capability definition.
type Service struct {
	// Identifier is the stable source identifier (e.g. "HMServiceTypeLightbulb").
	Identifier string
	// Name is the display name (e.g. "Lightbulb"). It is also the join key
	// used by the reconciler.
	Name string
	// GeneratedName is the identifier-safe name (e.g. "lightbulb").
	GeneratedName string
	// Documentation is empty when the source had none.
	Documentation string
	Deprecated    bool
	// Required and Optional hold characteristic display names in
	// reconciler order.
	Required []string
	Optional []string
}

// Characteristic is a named property definition.
type Characteristic struct {
	Identifier    string
	Name          string
	GeneratedName string
	Kind          ValueKind
	Documentation string
	Deprecated    bool
}

// Catalog is the ordered set of services and characteristics.
type Catalog struct {
	Services        []Service
	Characteristics []Characteristic
}

// Service returns a pointer to the service with the given display name, or
// nil.
func (c *Catalog) Service(name string) *Service {
	for i := range c.Services {
		if c.Services[i].Name == name {
			return &c.Services[i]
		}
	}

	return nil
}

// Characteristic returns a pointer to the characteristic with the given
// display name, or nil.
func (c *Catalog) Characteristic(name string) *Characteristic {
	for i := range c.Characteristics {
		if c.Characteristics[i].Name == name {
			return &c.Characteristics[i]
		}
	}

	return nil
}

// CharacteristicNames returns the set of characteristic display names.
func (c *Catalog) CharacteristicNames() map[string]struct{} {
	names := make(map[string]struct{}, len(c.Characteristics))
	for _, ch := range c.Characteristics {
		names[ch.Name] = struct{}{}
	}

	return names
}

// Identifiers returns every service and characteristic identifier, services
// first, in catalog order.
func (c *Catalog) Identifiers() []string {
	ids := make([]string, 0, len(c.Services)+len(c.Characteristics))
	for _, s := range c.Services {
		ids = append(ids, s.Identifier)
	}

	for _, ch := range c.Characteristics {
		ids = append(ids, ch.Identifier)
	}

	return ids
}

// Sort orders services and characteristics by display name, breaking ties by
// identifier. Nested required/optional lists are left untouched.
func (c *Catalog) Sort() {
	slices.SortStableFunc(c.Services, func(a, b Service) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Identifier, b.Identifier))
	})
	slices.SortStableFunc(c.Characteristics, func(a, b Characteristic) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.Identifier, b.Identifier))
	})
}

// Clone returns a deep copy.
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Services:        make([]Service, len(c.Services)),
		Characteristics: slices.Clone(c.Characteristics),
	}

	for i, s := range c.Services {
		s.Required = slices.Clone(s.Required)
		s.Optional = slices.Clone(s.Optional)
		out.Services[i] = s
	}

	return out
}
