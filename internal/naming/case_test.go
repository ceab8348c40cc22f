package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLowerFirst(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Lightbulb", "lightbulb"},
		{"PM10Density", "pM10Density"},
		{"PM2_5Density", "pM2_5Density"},
		{"CO2Level", "cO2Level"},
		{"already", "already"},
		{"A", "a"},
		{"", ""},
		{"_Private", "_Private"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, LowerFirst(tt.input))
		})
	}
}

func TestUpperFirst(t *testing.T) {
	assert.Equal(t, "PM10Density", UpperFirst("pM10Density"))
	assert.Equal(t, "Lightbulb", UpperFirst("lightbulb"))
	assert.Equal(t, "", UpperFirst(""))
}

func TestCanonical(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Power State", "PowerState"},
		{"Lightbulb", "Lightbulb"},
		{"PM2.5 Density", "PM2_5Density"},
		{"PM10 Density", "PM10Density"},
		{"Wi-Fi Satellite", "WiFiSatellite"},
		{"current heating cooling state", "CurrentHeatingCoolingState"},
		{"Carbon dioxide (CO2) Level", "CarbonDioxideCO2Level"},
		{"Lock Management Auto-Security Timeout", "LockManagementAutoSecurityTimeout"},
		{"double  space", "DoubleSpace"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Canonical(tt.input))
		})
	}
}

func TestSanitizeIdent(t *testing.T) {
	assert.Equal(t, "PM2_5_Density", SanitizeIdent("PM2.5 Density"))
	assert.Equal(t, "ok_name", SanitizeIdent("ok_name"))
}

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"PowerState", "power_state"},
		{"Lightbulb", "lightbulb"},
		{"PM10Density", "pm10_density"},
		{"PM2_5Density", "pm2_5_density"},
		{"CO2Level", "co2_level"},
		{"HTTPServer", "http_server"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	assert.Equal(t, []string{"Current", "Heating", "Cooling"}, tokenizeCamelCase("CurrentHeatingCooling"))
	assert.Equal(t, []string{"PM10", "Density"}, tokenizeCamelCase("PM10Density"))
	assert.Nil(t, tokenizeCamelCase(""))
}
