package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/catalogfile"
)

func writeCatalog(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, catalogfile.WriteFile(path, &catalog.Catalog{
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
		}},
	}))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()

	return stdout.String(), stderr.String(), err
}

func TestRoot_AllTargets(t *testing.T) {
	out := filepath.Join(t.TempDir(), "generated")

	stdout, stderr, err := execute(t, writeCatalog(t), "--output", out, "--log-level", "off")
	require.NoError(t, err)

	assert.Contains(t, stderr, "warning: "+filepath.Join(out, "go")+" will be replaced")
	assert.Contains(t, stdout, "go: wrote 5 files")
	assert.Contains(t, stdout, "typescript: wrote 5 files")

	runtime, err := os.ReadFile(filepath.Join(out, "go", "runtime.go"))
	require.NoError(t, err)
	assert.Contains(t, string(runtime), "package hap\n")

	assert.FileExists(t, filepath.Join(out, "go", "service_lightbulb.go"))
	assert.FileExists(t, filepath.Join(out, "typescript", "index.ts"))
	assert.FileExists(t, filepath.Join(out, "typescript", "services", "Lightbulb.ts"))
}

func TestRoot_GoPackageFromDirectory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "homekit")

	_, _, err := execute(t, writeCatalog(t), "-o", out, "-t", "go", "--log-level", "off")
	require.NoError(t, err)

	runtime, err := os.ReadFile(filepath.Join(out, "runtime.go"))
	require.NoError(t, err)
	assert.Contains(t, string(runtime), "package homekit\n")
	assert.NoDirExists(t, filepath.Join(out, "go"))
}

func TestRoot_ExplicitPackage(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out")

	_, _, err := execute(t, writeCatalog(t), "-o", out, "-t", "go", "-p", "bindings", "--log-level", "off")
	require.NoError(t, err)

	runtime, err := os.ReadFile(filepath.Join(out, "runtime.go"))
	require.NoError(t, err)
	assert.Contains(t, string(runtime), "package bindings\n")
}

func TestRoot_Errors(t *testing.T) {
	stdout, stderr, err := execute(t)
	require.ErrorIs(t, err, errNoCatalog)
	assert.Contains(t, stderr, "a catalog file is required")
	assert.Contains(t, stdout, "Usage:")

	stdout, stderr, err = execute(t, "a.yaml", "b.yaml")
	require.Error(t, err)
	assert.Contains(t, stderr, "accepts at most 1 arg(s)")
	assert.Contains(t, stdout, "Usage:")

	_, _, err = execute(t, writeCatalog(t), "-t", "cobol", "-o", t.TempDir())
	require.Error(t, err)

	_, _, err = execute(t, filepath.Join(t.TempDir(), "missing.yaml"), "-o", t.TempDir(), "--log-level", "off")
	require.Error(t, err)
}

func TestRoot_CatalogFromConfig(t *testing.T) {
	catalogPath := writeCatalog(t)
	dir := filepath.Dir(catalogPath)
	configPath := filepath.Join(dir, "hap.toml")

	require.NoError(t, os.WriteFile(configPath, []byte(`
log_level = "off"

[generate]
catalog = "catalog.yaml"
output = "bindings"
target = "typescript"
`), 0o644))

	stdout, _, err := execute(t, "--config", configPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "typescript: wrote 5 files")
	assert.FileExists(t, filepath.Join(dir, "bindings", "index.ts"))

	// A positional catalog wins over the file.
	other := writeCatalog(t)
	require.NoError(t, os.Remove(catalogPath))

	_, _, err = execute(t, other, "--config", configPath)
	require.NoError(t, err)
}
