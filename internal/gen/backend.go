package gen

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/diagnostic"
)

// Generator is the tool name written into file headers.
const Generator = "hapgen"

// File is one generated file. Path is slash separated and relative to the
// tree root.
type File struct {
	Path    string
	Content []byte
}

// Tree is the rendered output of one backend.
type Tree struct {
	Files       []File
	Diagnostics diagnostic.Diagnostics
}

// Backend renders a catalog into a source tree for one language.
type Backend interface {
	// Language names the target, e.g. "go".
	Language() string
	// Render must not modify c.
	Render(c *catalog.Catalog, opts Options) (*Tree, error)
}

// Options control a generation run.
type Options struct {
	// PackageName is used by backends that need one.
	PackageName string
	// Now stamps file headers. Defaults to time.Now.
	Now func() time.Time
	// Logger receives skip warnings. Defaults to a no-op logger.
	Logger *zap.Logger
	// Workers bounds parallel rendering. Zero means GOMAXPROCS.
	Workers int
	// DebugDir receives unformatted sources when formatting fails.
	DebugDir string
}

// WithDefaults fills unset fields.
func (o Options) WithDefaults() Options {
	if o.Now == nil {
		o.Now = time.Now
	}

	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}

	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// Header returns the generated-code banner using the given line comment
// prefix. The timestamp line is the only non-deterministic output.
func Header(comment string, now time.Time) string {
	var sb strings.Builder

	sb.WriteString(comment + " Code generated by " + Generator + ". DO NOT EDIT.\n")
	sb.WriteString(comment + " Generated at " + now.UTC().Format(time.RFC3339) + "\n")

	return sb.String()
}

// IsTimestampLine reports whether line is the header timestamp.
func IsTimestampLine(line string) bool {
	return strings.Contains(line, " Generated at ")
}

// Run renders c with b and replaces outDir with the result.
func Run(b Backend, c *catalog.Catalog, outDir string, opts Options) (*Tree, error) {
	opts = opts.WithDefaults()

	tree, err := b.Render(c, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", b.Language(), err)
	}

	if err := WriteTree(tree, outDir); err != nil {
		return tree, err
	}

	opts.Logger.Info("generated sources",
		zap.String("language", b.Language()),
		zap.String("dir", outDir),
		zap.Int("files", len(tree.Files)),
		zap.Int("warnings", len(tree.Diagnostics.Warnings)))

	return tree, nil
}
