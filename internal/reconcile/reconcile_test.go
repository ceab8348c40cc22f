package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/relations"
)

func char(name string, kind catalog.ValueKind) catalog.Characteristic {
	return catalog.Characteristic{
		Identifier: "HMCharacteristicType" + name,
		Name:       name,
		Kind:       kind,
	}
}

func svc(name string) catalog.Service {
	return catalog.Service{Identifier: "HMServiceType" + name, Name: name}
}

func lightingCatalog() *catalog.Catalog {
	return &catalog.Catalog{
		Services: []catalog.Service{svc("Lightbulb"), svc("Switch"), svc("Doorbell")},
		Characteristics: []catalog.Characteristic{
			char("PowerState", catalog.KindBoolean),
			char("Brightness", catalog.KindInteger),
			char("Hue", catalog.KindInteger),
			char("Saturation", catalog.KindInteger),
			char("Name", catalog.KindText),
			char("PM2_5Density", catalog.KindText),
		},
	}
}

func TestReconcile_FallbackLightbulb(t *testing.T) {
	c := lightingCatalog()

	summary := Reconcile(c, nil)

	assert.Equal(t, StrategyFallback, summary.Strategy)

	bulb := c.Service("Lightbulb")
	require.NotNil(t, bulb)
	assert.Equal(t, []string{"PowerState"}, bulb.Required)
	assert.Equal(t, []string{"Brightness", "Hue", "Saturation", "ColorTemperature", "Name"}, bulb.Optional)

	// ColorTemperature is absent from the catalog but fallback lists are literal.
	assert.Contains(t, summary.MissingCharacteristics, "ColorTemperature")

	doorbell := c.Service("Doorbell")
	require.NotNil(t, doorbell)
	assert.NotEmpty(t, doorbell.Required)
}

func TestReconcile_FallbackUnknownServiceKeepsEmptyLists(t *testing.T) {
	c := &catalog.Catalog{Services: []catalog.Service{svc("Teapot")}}

	summary := Reconcile(c, &relations.Result{})

	assert.Equal(t, StrategyFallback, summary.Strategy)
	assert.Empty(t, c.Services[0].Required)
	assert.Empty(t, c.Services[0].Optional)
	assert.Zero(t, summary.Populated)
}

func TestReconcile_EveryFallbackServiceGetsTableLists(t *testing.T) {
	c := &catalog.Catalog{}
	for _, name := range FallbackServices() {
		c.Services = append(c.Services, svc(name))
	}

	Reconcile(c, nil)

	for _, s := range c.Services {
		want, ok := Fallback(s.Name)
		require.True(t, ok)
		assert.Equal(t, want.Required, s.Required, s.Name)
		assert.Equal(t, want.Optional, s.Optional, s.Name)
	}
}

func TestReconcile_MetadataTakesPrecedence(t *testing.T) {
	c := lightingCatalog()
	rel := &relations.Result{
		Services: []relations.ServiceLinks{
			{
				Key:      "lightbulb",
				Name:     "Lightbulb",
				Required: []string{"PowerState", "PowerState", "Brightnes"},
				Optional: []string{"Hue", "PowerState", "Hue", "Name"},
			},
			{Key: "ghost", Name: "Ghost", Required: []string{"Name"}},
		},
	}

	summary := Reconcile(c, rel)

	assert.Equal(t, StrategyMetadata, summary.Strategy)
	assert.Equal(t, 1, summary.Populated)

	bulb := c.Service("Lightbulb")
	assert.Equal(t, []string{"PowerState"}, bulb.Required)
	assert.Equal(t, []string{"Hue", "Name"}, bulb.Optional)

	// Services without metadata do not fall back.
	assert.Empty(t, c.Service("Switch").Required)
	assert.Empty(t, c.Service("Doorbell").Required)

	assert.Equal(t, []string{"Ghost"}, summary.UnmatchedServices)
	assert.Equal(t, []string{"Brightnes"}, summary.MissingCharacteristics)

	missing := summary.Diagnostics.WithCode(CodeMissingCharacteristic)
	require.Len(t, missing, 1)
	assert.Equal(t, []string{"Brightness"}, missing[0].Suggestions)
	assert.Len(t, summary.Diagnostics.WithCode(CodeUnmatchedService), 1)
}

func TestReconcile_EmptyLinksFallThrough(t *testing.T) {
	c := lightingCatalog()
	rel := &relations.Result{
		Services: []relations.ServiceLinks{{Key: "lightbulb", Name: "Lightbulb"}},
	}

	summary := Reconcile(c, rel)

	assert.Equal(t, StrategyFallback, summary.Strategy)
	assert.Equal(t, []string{"PowerState"}, c.Service("Lightbulb").Required)
}

func TestReconcile_NonMatchingMetadataFallsBack(t *testing.T) {
	c := lightingCatalog()
	rel := &relations.Result{
		Services: []relations.ServiceLinks{
			{Key: "something", Name: "SomethingElse", Required: []string{"PowerState"}},
		},
	}

	summary := Reconcile(c, rel)

	assert.Equal(t, StrategyFallback, summary.Strategy)

	bulb := c.Service("Lightbulb")
	require.NotNil(t, bulb)
	assert.Equal(t, []string{"PowerState"}, bulb.Required)
	assert.Equal(t, []string{"Brightness", "Hue", "Saturation", "ColorTemperature", "Name"}, bulb.Optional)

	assert.Equal(t, []string{"SomethingElse"}, summary.UnmatchedServices)
	assert.Len(t, summary.Diagnostics.WithCode(CodeUnmatchedService), 1)
}

func TestReconcile_FormatHintUpgradesKind(t *testing.T) {
	c := lightingCatalog()
	require.Equal(t, catalog.KindText, c.Characteristic("PM2_5Density").Kind)

	summary := Reconcile(c, &relations.Result{
		Formats: map[string]string{
			"PM2_5Density": "float",
			"Brightness":   "int",
			"Unknown":      "bool",
		},
	})

	assert.Equal(t, catalog.KindFloating, c.Characteristic("PM2_5Density").Kind)
	assert.Equal(t, catalog.KindInteger, c.Characteristic("Brightness").Kind)

	require.Len(t, summary.UpgradedKinds, 1)
	assert.Equal(t, KindUpgrade{
		Characteristic: "PM2_5Density",
		From:           catalog.KindText,
		To:             catalog.KindFloating,
	}, summary.UpgradedKinds[0])
}

func TestReconcile_FormatHintsApplyWithMetadata(t *testing.T) {
	c := lightingCatalog()

	Reconcile(c, &relations.Result{
		Services: []relations.ServiceLinks{{Name: "Lightbulb", Required: []string{"PowerState"}}},
		Formats:  map[string]string{"Hue": "float"},
	})

	assert.Equal(t, catalog.KindFloating, c.Characteristic("Hue").Kind)
}

func TestKindForFormat(t *testing.T) {
	tests := []struct {
		token string
		want  catalog.ValueKind
	}{
		{"bool", catalog.KindBoolean},
		{"uint8", catalog.KindInteger},
		{"int32", catalog.KindInteger},
		{"integer", catalog.KindInteger},
		{"float", catalog.KindFloating},
		{"percentage", catalog.KindFloating},
		{"Temperature", catalog.KindFloating},
		{"tlv8", catalog.KindBytes},
		{"data", catalog.KindBytes},
		{"string", catalog.KindText},
		{"", catalog.KindText},
		{"mystery", catalog.KindText},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, KindForFormat(tt.token))
		})
	}
}

func TestFallback_ReturnsCopies(t *testing.T) {
	e, ok := Fallback("Lightbulb")
	require.True(t, ok)

	e.Required[0] = "Mutated"

	again, _ := Fallback("Lightbulb")
	assert.Equal(t, "PowerState", again.Required[0])

	_, ok = Fallback("lightbulb")
	assert.False(t, ok)
}
