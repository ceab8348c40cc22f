package extract

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/naming"
)

// ErrSourceNotFound is returned when a required header does not exist.
var ErrSourceNotFound = errors.New("source document not found")

// ExtractServices returns the services declared in text, in declaration
// order. Required and optional lists are left empty for the reconciler.
func ExtractServices(text string) []catalog.Service {
	decls := ServicePattern.Scan(text)
	services := make([]catalog.Service, 0, len(decls))

	for _, d := range decls {
		services = append(services, catalog.Service{
			Identifier:    d.Identifier,
			Name:          d.Name,
			GeneratedName: naming.LowerFirst(d.Name),
			Documentation: d.Documentation,
			Deprecated:    d.Deprecated(),
		})
	}

	return services
}

// ExtractCharacteristics returns the characteristics declared in text, in
// declaration order, with a heuristic value kind.
func ExtractCharacteristics(text string) []catalog.Characteristic {
	decls := CharacteristicPattern.Scan(text)
	chars := make([]catalog.Characteristic, 0, len(decls))

	for _, d := range decls {
		chars = append(chars, catalog.Characteristic{
			Identifier:    d.Identifier,
			Name:          d.Name,
			GeneratedName: naming.LowerFirst(d.Name),
			Kind:          GuessKind(d.Name),
			Documentation: d.Documentation,
			Deprecated:    d.Deprecated(),
		})
	}

	return chars
}

// LoadServices reads and extracts the services header at path.
func LoadServices(path string) ([]catalog.Service, error) {
	text, err := readSource(path)
	if err != nil {
		return nil, err
	}

	return ExtractServices(text), nil
}

// LoadCharacteristics reads and extracts the characteristics header at path.
func LoadCharacteristics(path string) ([]catalog.Characteristic, error) {
	text, err := readSource(path)
	if err != nil {
		return nil, err
	}

	return ExtractCharacteristics(text), nil
}

func readSource(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	if err != nil {
		return "", fmt.Errorf("failed to read source %s: %w", path, err)
	}

	return string(data), nil
}

// kindHints are checked in order against the lower-cased display name; the
// first substring hit decides.
var kindHints = []struct {
	kind       catalog.ValueKind
	substrings []string
}{
	{catalog.KindFloating, []string{"temperature", "humidity", "pressure"}},
	{catalog.KindInteger, []string{"brightness", "hue", "saturation", "level"}},
	{catalog.KindBoolean, []string{"on", "active", "enabled", "detected", "muted"}},
}

// GuessKind infers a value kind from a characteristic display name. The
// result is a placeholder that authoritative format hints overwrite.
func GuessKind(name string) catalog.ValueKind {
	lower := strings.ToLower(name)

	for _, hint := range kindHints {
		for _, sub := range hint.substrings {
			if strings.Contains(lower, sub) {
				return hint.kind
			}
		}
	}

	return catalog.KindText
}
