package relations

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"hap-catalog-generator/internal/naming"
)

// SectionPath is the fixed key path to the record collections.
var SectionPath = []string{"PlistDictionary", "HAP", "Base"}

const (
	servicesKey        = "Services"
	characteristicsKey = "Characteristics"
)

// ServiceLinks is one service's relationship entry.
type ServiceLinks struct {
	// Key is the record key in the document.
	Key string
	// Name is the canonical service name.
	Name     string
	Required []string
	Optional []string
}

// HasLinks reports whether either list is non-empty.
func (s ServiceLinks) HasLinks() bool {
	return len(s.Required) > 0 || len(s.Optional) > 0
}

// Result is the transient relationship data consumed by the reconciler.
type Result struct {
	// Aliases maps every characteristic id variant to its canonical name.
	Aliases map[string]string
	// Services holds relationship entries in document order.
	Services []ServiceLinks
	// Formats maps canonical characteristic names to format tokens.
	Formats map[string]string
}

// HasLinks reports whether at least one service carries a non-empty list.
func (r *Result) HasLinks() bool {
	if r == nil {
		return false
	}

	return slices.ContainsFunc(r.Services, ServiceLinks.HasLinks)
}

// Resolve translates a characteristic id through the alias map. Unknown ids
// are returned unchanged.
func (r *Result) Resolve(id string) string {
	id = strings.TrimSpace(id)
	if name, ok := r.Aliases[id]; ok {
		return name
	}

	if name, ok := r.Aliases[strings.ToUpper(id)]; ok {
		return name
	}

	return id
}

type characteristicRecord struct {
	DefaultDescription string `yaml:"DefaultDescription"`
	ShortUUID          string `yaml:"ShortUUID"`
	UUID               string `yaml:"UUID"`
	Format             string `yaml:"Format"`
}

type serviceRecord struct {
	DefaultDescription string `yaml:"DefaultDescription"`
	Characteristics    struct {
		Required []string `yaml:"Required"`
		Optional []string `yaml:"Optional"`
	} `yaml:"Characteristics"`
}

// LoadFile reads and parses the metadata document at path.
func LoadFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read metadata %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses a metadata document.
func Parse(data []byte) (*Result, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}

		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: root is not a mapping", ErrInvalidDocument)
	}

	base := root
	for i, key := range SectionPath {
		base = mappingValue(base, key)
		if base == nil || base.Kind != yaml.MappingNode {
			return nil, &SectionError{Path: slices.Clone(SectionPath[:i+1])}
		}
	}

	charsNode := mappingValue(base, characteristicsKey)
	if charsNode == nil || charsNode.Kind != yaml.MappingNode {
		return nil, &SectionError{Path: append(slices.Clone(SectionPath), characteristicsKey)}
	}

	servicesNode := mappingValue(base, servicesKey)
	if servicesNode == nil || servicesNode.Kind != yaml.MappingNode {
		return nil, &SectionError{Path: append(slices.Clone(SectionPath), servicesKey)}
	}

	res := &Result{
		Aliases: make(map[string]string),
		Formats: make(map[string]string),
	}

	forEachRecord(charsNode, func(key string, value *yaml.Node) {
		var rec characteristicRecord
		if err := value.Decode(&rec); err != nil || strings.TrimSpace(rec.DefaultDescription) == "" {
			return
		}

		res.addCharacteristic(key, rec)
	})

	forEachRecord(servicesNode, func(key string, value *yaml.Node) {
		var rec serviceRecord
		if err := value.Decode(&rec); err != nil || strings.TrimSpace(rec.DefaultDescription) == "" {
			return
		}

		res.Services = append(res.Services, ServiceLinks{
			Key:      key,
			Name:     naming.Canonical(rec.DefaultDescription),
			Required: res.resolveAll(rec.Characteristics.Required),
			Optional: res.resolveAll(rec.Characteristics.Optional),
		})
	})

	return res, nil
}

func (r *Result) addCharacteristic(key string, rec characteristicRecord) {
	name := naming.Canonical(rec.DefaultDescription)

	for _, alias := range []string{key, rec.ShortUUID, rec.UUID, name} {
		alias = strings.TrimSpace(alias)
		if alias == "" {
			continue
		}

		r.Aliases[alias] = name
		r.Aliases[strings.ToUpper(alias)] = name
	}

	if f := strings.TrimSpace(rec.Format); f != "" {
		r.Formats[name] = f
	}
}

func (r *Result) resolveAll(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}

	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, r.Resolve(id))
	}

	return out
}

// mappingValue returns the value node for key in a mapping node, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node == nil || node.Kind != yaml.MappingNode {
		return nil
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}

// forEachRecord visits mapping entries in document order. Non-mapping
// values are skipped.
func forEachRecord(node *yaml.Node, fn func(key string, value *yaml.Node)) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		value := node.Content[i+1]
		if value.Kind == yaml.AliasNode {
			value = value.Alias
		}

		if value == nil || value.Kind != yaml.MappingNode {
			continue
		}

		fn(node.Content[i].Value, value)
	}
}
