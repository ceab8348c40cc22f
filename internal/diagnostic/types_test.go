package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDiagnostics_AddAndMerge(t *testing.T) {
	var d Diagnostics

	d.AddWarning("missing_characteristic", "characteristic not in catalog", "Lightbulb", "Brightness")
	d.AddInfo("strategy", "using fallback table", "")

	assert.False(t, d.HasErrors())
	require.NoError(t, d.Error())
	assert.Equal(t, 2, d.Len())

	var other Diagnostics
	other.AddError("io", "cannot write", "Fan")
	d.Merge(other)

	assert.True(t, d.HasErrors())
	require.EqualError(t, d.Error(), "Fan: [io] cannot write")
	assert.Len(t, d.WithCode("missing_characteristic"), 1)
}

func TestDiagnostic_String(t *testing.T) {
	d := Diagnostic{
		Code:        "missing_characteristic",
		Message:     "Brightnes not in catalog",
		Entity:      "Lightbulb",
		Suggestions: []string{"Brightness"},
	}

	assert.Equal(t,
		"Lightbulb: [missing_characteristic] Brightnes not in catalog (did you mean Brightness?)",
		d.String())
	assert.Equal(t, "plain", Diagnostic{Message: "plain"}.String())
}

func TestSeverity_String(t *testing.T) {
	assert.Equal(t, "info", SeverityInfo.String())
	assert.Equal(t, "warning", SeverityWarning.String())
	assert.Equal(t, "error", SeverityError.String())
	assert.Equal(t, "unknown", Severity(9).String())
}

func TestDiagnostics_Log(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	var d Diagnostics
	d.AddWarning("symbol_missing", "symbol not exported", "HMServiceTypeFan")
	d.AddInfo("note", "fyi", "")
	d.Log(logger)
	d.Log(nil)

	require.Equal(t, 2, logs.Len())
	warn := logs.FilterLevelExact(zapcore.WarnLevel).All()
	require.Len(t, warn, 1)
	assert.Equal(t, "symbol not exported", warn[0].Message)
	assert.Equal(t, "HMServiceTypeFan", warn[0].ContextMap()["entity"])
}
