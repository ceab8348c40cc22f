// Package config loads the optional TOML file shared by hapcatalog and
// hapgen. Command line flags override whatever the file sets.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Generation targets.
const (
	TargetGo         = "go"
	TargetTypeScript = "typescript"
	TargetAll        = "all"
)

// ErrUnknownTarget is returned for a target other than go, typescript or all.
var ErrUnknownTarget = errors.New("unknown target")

// Config is the whole file.
type Config struct {
	// LogLevel is empty unless set, leaving HAPGEN_LOG_LEVEL in charge.
	LogLevel string   `toml:"log_level"`
	Sources  Sources  `toml:"sources"`
	Catalog  Catalog  `toml:"catalog"`
	Generate Generate `toml:"generate"`
}

// Sources are the extraction inputs.
type Sources struct {
	Services        string `toml:"services"`
	Characteristics string `toml:"characteristics"`
	Symbols         string `toml:"symbols"`
	Metadata        string `toml:"metadata"`
}

// Catalog configures the extraction output.
type Catalog struct {
	Output string `toml:"output"`
}

// Generate configures hapgen.
type Generate struct {
	Catalog string `toml:"catalog"`
	Output  string `toml:"output"`
	Target  string `toml:"target"`
	Package string `toml:"package"`
	Workers int    `toml:"workers"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Catalog: Catalog{Output: "catalog.yaml"},
		Generate: Generate{
			Output: "generated",
			Target: TargetAll,
		},
	}
}

// Load reads path over the defaults. Relative paths in the file are taken
// relative to the file's directory. Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return Config{}, fmt.Errorf("load config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	dir := filepath.Dir(path)
	for _, p := range []*string{
		&cfg.Sources.Services, &cfg.Sources.Characteristics, &cfg.Sources.Symbols, &cfg.Sources.Metadata,
	} {
		*p = resolve(dir, *p)
	}

	for _, key := range []struct {
		name string
		p    *string
	}{
		{"catalog.output", &cfg.Catalog.Output},
		{"generate.catalog", &cfg.Generate.Catalog},
		{"generate.output", &cfg.Generate.Output},
	} {
		if meta.IsDefined(strings.Split(key.name, ".")...) {
			*key.p = resolve(dir, *key.p)
		}
	}

	if _, err := cfg.Generate.Targets(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}

	return cfg, nil
}

func resolve(dir, p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}

	return filepath.Join(dir, p)
}

// Targets expands Target into the backends to run.
func (g Generate) Targets() ([]string, error) {
	switch t := strings.ToLower(strings.TrimSpace(g.Target)); t {
	case "", TargetAll:
		return []string{TargetGo, TargetTypeScript}, nil
	case TargetGo, TargetTypeScript:
		return []string{t}, nil
	case "ts":
		return []string{TargetTypeScript}, nil
	default:
		return nil, fmt.Errorf("%w %q (want go, typescript or all)", ErrUnknownTarget, g.Target)
	}
}
