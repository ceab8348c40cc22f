package catalogfile

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"hap-catalog-generator/internal/catalog"
)

func sampleCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Services: []catalog.Service{
			{
				Identifier:    "HMServiceTypeSwitch",
				Name:          "Switch",
				GeneratedName: "switch",
				Documentation: "Service type for switch.",
				Required:      []string{"PowerState"},
				Optional:      []string{"Name"},
			},
			{
				Identifier:    "HMServiceTypeLightbulb",
				Name:          "Lightbulb",
				GeneratedName: "lightbulb",
				Required:      []string{"PowerState"},
				Optional:      []string{"Saturation", "Brightness", "Hue"},
			},
			{
				Identifier:    "HMServiceTypeLabel",
				Name:          "Label",
				GeneratedName: "label",
				Documentation: `Tricky: "quoted" text # not a comment`,
				Deprecated:    true,
			},
		},
		Characteristics: []catalog.Characteristic{
			{Identifier: "HMCharacteristicTypePowerState", Name: "PowerState", GeneratedName: "powerState", Kind: catalog.KindBoolean},
			{Identifier: "HMCharacteristicTypePM2_5Density", Name: "PM2_5Density", GeneratedName: "pM2_5Density", Kind: catalog.KindFloating},
			{Identifier: "HMCharacteristicTypeBrightness", Name: "Brightness", GeneratedName: "brightness", Kind: catalog.KindInteger},
			{
				Identifier:    "HMCharacteristicTypeName",
				Name:          "Name",
				GeneratedName: "name",
				Kind:          catalog.KindText,
				Documentation: "Line one\nline two",
			},
			{Identifier: "HMCharacteristicTypeSetupData", Name: "SetupData", GeneratedName: "setupData", Kind: catalog.KindBytes},
			{Identifier: "HMCharacteristicTypeOn", Name: "On", GeneratedName: "on", Kind: catalog.KindUnknown},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	original := sampleCatalog()

	data, err := Marshal(original)
	require.NoError(t, err)

	dec := NewDecoder(bytes.NewReader(data))
	decoded, err := dec.Decode()
	require.NoError(t, err)
	assert.Zero(t, dec.Dropped)

	want := original.Clone()
	want.Sort()

	if diff := cmp.Diff(want, decoded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s\nencoded:\n%s", diff, data)
	}
}

func TestMarshal_DoesNotReorderInput(t *testing.T) {
	c := sampleCatalog()

	_, err := Marshal(c)
	require.NoError(t, err)
	assert.Equal(t, "Switch", c.Services[0].Name)
}

func TestMarshal_Deterministic(t *testing.T) {
	a, err := Marshal(sampleCatalog())
	require.NoError(t, err)

	b, err := Marshal(sampleCatalog())
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMarshal_EmptyRequiredOmitsKey(t *testing.T) {
	c := &catalog.Catalog{
		Services: []catalog.Service{{
			Identifier: "HMServiceTypeFan",
			Name:       "Fan",
			Required:   []string{},
			Optional:   []string{"RotationSpeed"},
		}},
		Characteristics: []catalog.Characteristic{
			{Identifier: "HMCharacteristicTypeRotationSpeed", Name: "RotationSpeed", Kind: catalog.KindFloating},
		},
	}

	data, err := Marshal(c)
	require.NoError(t, err)

	text := string(data)
	assert.NotContains(t, text, keyRequired)
	assert.Contains(t, text, "    optionalCharacteristics:\n      - RotationSpeed\n")

	decoded, err := Unmarshal(data)
	require.NoError(t, err)
	require.Len(t, decoded.Services, 1)
	assert.Empty(t, decoded.Services[0].Required)
	assert.Equal(t, []string{"RotationSpeed"}, decoded.Services[0].Optional)
}

func TestMarshal_Layout(t *testing.T) {
	data, err := Marshal(&catalog.Catalog{
		Services: []catalog.Service{{
			Identifier:    "HMServiceTypeLightbulb",
			Name:          "Lightbulb",
			GeneratedName: "lightbulb",
			Required:      []string{"PowerState"},
		}},
		Characteristics: []catalog.Characteristic{{
			Identifier:    "HMCharacteristicTypePowerState",
			Name:          "PowerState",
			GeneratedName: "powerState",
			Kind:          catalog.KindBoolean,
			Deprecated:    true,
		}},
	})
	require.NoError(t, err)

	want := Header + `services:
  - identifier: HMServiceTypeLightbulb
    name: Lightbulb
    generatedName: lightbulb
    requiredCharacteristics:
      - PowerState
characteristics:
  - identifier: HMCharacteristicTypePowerState
    name: PowerState
    generatedName: powerState
    deprecated: true
    valueType: bool
`
	assert.Equal(t, want, string(data))
}

func TestMarshal_StrictOnIncompleteRecords(t *testing.T) {
	_, err := Marshal(&catalog.Catalog{
		Characteristics: []catalog.Characteristic{{Identifier: "HMCharacteristicTypeX"}},
	})
	require.ErrorIs(t, err, ErrIncompleteRecord)

	_, err = Marshal(&catalog.Catalog{
		Services: []catalog.Service{{Name: "Orphan"}},
	})
	require.ErrorIs(t, err, ErrIncompleteRecord)
}

// The encoded form must stay readable by a general YAML parser.
func TestMarshal_IsValidYAML(t *testing.T) {
	data, err := Marshal(sampleCatalog())
	require.NoError(t, err)

	var doc struct {
		Services []struct {
			Identifier    string   `yaml:"identifier"`
			Name          string   `yaml:"name"`
			Documentation string   `yaml:"documentation"`
			Deprecated    bool     `yaml:"deprecated"`
			Required      []string `yaml:"requiredCharacteristics"`
			Optional      []string `yaml:"optionalCharacteristics"`
		} `yaml:"services"`
		Characteristics []struct {
			Name          string `yaml:"name"`
			ValueType     string `yaml:"valueType"`
			Documentation string `yaml:"documentation"`
		} `yaml:"characteristics"`
	}

	require.NoError(t, yaml.Unmarshal(data, &doc), spew.Sdump(string(data)))

	require.Len(t, doc.Services, 3)
	assert.Equal(t, "Label", doc.Services[0].Name)
	assert.True(t, doc.Services[0].Deprecated)
	assert.Equal(t, `Tricky: "quoted" text # not a comment`, doc.Services[0].Documentation)
	assert.Equal(t, []string{"Saturation", "Brightness", "Hue"}, doc.Services[1].Optional)

	require.Len(t, doc.Characteristics, 6)
	assert.Equal(t, "Brightness", doc.Characteristics[0].Name)
	assert.Equal(t, "int", doc.Characteristics[0].ValueType)
	assert.Equal(t, "Line one\nline two", doc.Characteristics[1].Documentation)
}

func TestDecode_DropsIncompleteRecords(t *testing.T) {
	text := `# hand edited
services:

  - identifier: HMServiceTypeFan
    # name went missing
    generatedName: fan
    requiredCharacteristics:
      - Active
  - identifier: HMServiceTypeSwitch
    name: Switch
    requiredCharacteristics:
      - PowerState
      - "Name"
characteristics:
  - name: Nameless
    valueType: int
  - identifier: HMCharacteristicTypePowerState
    name: PowerState   # trailing comment
  - identifier: 'HMCharacteristicTypeIt''s'
    name: Its
    valueType: nonsense
`

	dec := NewDecoder(strings.NewReader(text))
	c, err := dec.Decode()
	require.NoError(t, err)

	assert.Equal(t, 2, dec.Dropped)

	require.Len(t, c.Services, 1)
	assert.Equal(t, "Switch", c.Services[0].Name)
	assert.Equal(t, []string{"PowerState", "Name"}, c.Services[0].Required)

	require.Len(t, c.Characteristics, 2)
	assert.Equal(t, "PowerState", c.Characteristics[0].Name)
	assert.Equal(t, catalog.KindText, c.Characteristics[0].Kind, "missing valueType decodes as string")
	assert.Equal(t, "HMCharacteristicTypeIt's", c.Characteristics[1].Identifier)
	assert.Equal(t, catalog.KindText, c.Characteristics[1].Kind)
}

func TestDecode_IgnoresUnknownSections(t *testing.T) {
	text := `version: 2
extras:
  - identifier: X
    name: X
services:
  - identifier: HMServiceTypeFan
    name: Fan
`

	c, err := Unmarshal([]byte(text))
	require.NoError(t, err)
	assert.Empty(t, c.Characteristics)
	require.Len(t, c.Services, 1)
	assert.Equal(t, "Fan", c.Services[0].Name)
}

func TestWriteFileAndLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	require.NoError(t, WriteFile(path, sampleCatalog()))

	c, dropped, err := LoadFile(path)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Len(t, c.Services, 3)

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestWriteFile_KeepsOldFileOnEncodeError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0o644))

	err := WriteFile(path, &catalog.Catalog{Services: []catalog.Service{{Name: "NoID"}}})
	require.ErrorIs(t, err, ErrIncompleteRecord)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestLoadFile_Missing(t *testing.T) {
	_, _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestNeedsQuotes(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Lightbulb", false},
		{"PM2_5Density", false},
		{"Service type for switch.", false},
		{"", true},
		{"true", true},
		{"No", true},
		{"2Fast", true},
		{"a: b", true},
		{"a #b", true},
		{"-dash", true},
		{" padded", true},
		{"tab\there", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, needsQuotes(tt.in))
		})
	}
}
