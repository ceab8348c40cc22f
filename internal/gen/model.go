package gen

import (
	"fmt"

	"go.uber.org/zap"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/diagnostic"
)

// CodeUnknownReference marks a service list entry that names no catalog
// characteristic.
const CodeUnknownReference = "unknown_reference"

// CharacteristicModel is a characteristic with its emitted identifier.
type CharacteristicModel struct {
	catalog.Characteristic

	Ident string
}

// ServiceModel is a service with its emitted identifier and resolved links.
type ServiceModel struct {
	catalog.Service

	Ident    string
	Required []*CharacteristicModel
	Optional []*CharacteristicModel
}

// Links returns required links followed by optional ones.
func (s *ServiceModel) Links() []*CharacteristicModel {
	out := make([]*CharacteristicModel, 0, len(s.Required)+len(s.Optional))
	out = append(out, s.Required...)

	return append(out, s.Optional...)
}

// Model is a catalog projected into one target language's namespace.
type Model struct {
	Services        []*ServiceModel
	Characteristics []*CharacteristicModel
	Diagnostics     diagnostic.Diagnostics
}

// BuildModel resolves identifiers for every entry in c, characteristics
// first, all in one namespace. c is not modified. Unknown references are
// dropped from service links and reported.
func BuildModel(c *catalog.Catalog, namer *Namer, logger *zap.Logger) *Model {
	if logger == nil {
		logger = zap.NewNop()
	}

	sorted := c.Clone()
	sorted.Sort()

	m := &Model{
		Services:        make([]*ServiceModel, 0, len(sorted.Services)),
		Characteristics: make([]*CharacteristicModel, 0, len(sorted.Characteristics)),
	}

	byName := make(map[string]*CharacteristicModel, len(sorted.Characteristics))

	for _, ch := range sorted.Characteristics {
		cm := &CharacteristicModel{
			Characteristic: ch,
			Ident:          namer.Name(ch.GeneratedName, ch.Name, "Characteristic"),
		}
		m.Characteristics = append(m.Characteristics, cm)

		if _, dup := byName[ch.Name]; !dup {
			byName[ch.Name] = cm
		}
	}

	for _, svc := range sorted.Services {
		sm := &ServiceModel{
			Service: svc,
			Ident:   namer.Name(svc.GeneratedName, svc.Name, "Service"),
		}

		seen := make(map[string]struct{})
		resolve := func(names []string) []*CharacteristicModel {
			var out []*CharacteristicModel

			for _, name := range names {
				cm, ok := byName[name]
				if !ok {
					m.Diagnostics.AddWarning(CodeUnknownReference,
						fmt.Sprintf("characteristic %q is not in the catalog, skipped", name), svc.Name)
					logger.Warn("skipping unknown characteristic reference",
						zap.String("service", svc.Name),
						zap.String("characteristic", name))

					continue
				}

				if _, dup := seen[name]; dup {
					continue
				}

				seen[name] = struct{}{}
				out = append(out, cm)
			}

			return out
		}

		sm.Required = resolve(svc.Required)
		sm.Optional = resolve(svc.Optional)
		m.Services = append(m.Services, sm)
	}

	return m
}
