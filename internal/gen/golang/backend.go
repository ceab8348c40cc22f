package golang

import (
	"bytes"
	"fmt"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/tools/imports"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/gen"
)

// DefaultPackage is used when no package name is configured.
const DefaultPackage = "hap"

const (
	serviceTypesFile        = "service_types.go"
	characteristicTypesFile = "characteristic_types.go"
	runtimeFile             = "runtime.go"
)

// Backend renders Go sources.
type Backend struct{}

// New returns the Go backend.
func New() *Backend {
	return &Backend{}
}

// Language implements gen.Backend.
func (*Backend) Language() string {
	return "go"
}

type typeEntry struct {
	Const      string
	Identifier string
	Name       string
	Doc        string
	Deprecated bool
}

type typesData struct {
	Header  string
	Package string
	Kind    string
	Table   string
	Entries []typeEntry
}

type characteristicData struct {
	Header     string
	Package    string
	Ident      string
	Const      string
	Name       string
	Doc        string
	Deprecated bool
	GoType     string
}

type linkData struct {
	Method string
	Name   string
	Type   string
	Const  string
}

type serviceData struct {
	Header     string
	Package    string
	Ident      string
	Const      string
	Name       string
	Doc        string
	Deprecated bool
	Required   []linkData
	Optional   []linkData
}

// Render implements gen.Backend.
func (b *Backend) Render(c *catalog.Catalog, opts gen.Options) (*gen.Tree, error) {
	opts = opts.WithDefaults()

	pkg := opts.PackageName
	if pkg == "" {
		pkg = DefaultPackage
	}

	header := gen.Header("//", opts.Now())
	model := gen.BuildModel(c, gen.NewNamer(typeRules()), opts.Logger.Named("go"))

	charFiles := fileNames(model.Characteristics, "characteristic_", func(cm *gen.CharacteristicModel) string { return cm.Ident })
	svcFiles := fileNames(model.Services, "service_", func(sm *gen.ServiceModel) string { return sm.Ident })

	r := &renderer{pkg: pkg, header: header, debugDir: opts.DebugDir, logger: opts.Logger}

	fixed := []func() (gen.File, error){
		func() (gen.File, error) {
			return r.execute(runtimeFile, runtimeTemplate, struct{ Header, Package string }{header, pkg})
		},
		func() (gen.File, error) {
			return r.execute(serviceTypesFile, typesTemplate, r.serviceTypes(model))
		},
		func() (gen.File, error) {
			return r.execute(characteristicTypesFile, typesTemplate, r.characteristicTypes(model))
		},
	}

	nChars := len(model.Characteristics)
	total := len(fixed) + nChars + len(model.Services)

	files, err := gen.RenderEach(total, opts.Workers, func(i int) (gen.File, error) {
		switch {
		case i < len(fixed):
			return fixed[i]()
		case i < len(fixed)+nChars:
			cm := model.Characteristics[i-len(fixed)]
			return r.execute(charFiles[i-len(fixed)], characteristicTemplate, r.characteristic(cm))
		default:
			k := i - len(fixed) - nChars
			return r.execute(svcFiles[k], serviceTemplate, r.service(model.Services[k]))
		}
	})
	if err != nil {
		return nil, err
	}

	return &gen.Tree{Files: files, Diagnostics: model.Diagnostics}, nil
}

func fileNames[T any](items []T, prefix string, ident func(T) string) []string {
	namer := gen.NewNamer(fileRules())
	// service_types.go and characteristic_types.go are fixed.
	namer.Reserve("types")

	out := make([]string, len(items))

	for i, item := range items {
		out[i] = prefix + namer.Name(ident(item), "", "") + ".go"
	}

	return out
}

type renderer struct {
	pkg      string
	header   string
	debugDir string
	logger   *zap.Logger
}

func serviceConst(ident string) string        { return "ServiceType" + ident }
func characteristicConst(ident string) string { return "CharacteristicType" + ident }

func (r *renderer) serviceTypes(m *gen.Model) typesData {
	d := typesData{Header: r.header, Package: r.pkg, Kind: "Service", Table: "serviceTypeTable"}
	for _, sm := range m.Services {
		d.Entries = append(d.Entries, typeEntry{
			Const:      serviceConst(sm.Ident),
			Identifier: sm.Identifier,
			Name:       sm.Name,
			Doc:        sm.Documentation,
			Deprecated: sm.Deprecated,
		})
	}

	return d
}

func (r *renderer) characteristicTypes(m *gen.Model) typesData {
	d := typesData{Header: r.header, Package: r.pkg, Kind: "Characteristic", Table: "characteristicTypeTable"}
	for _, cm := range m.Characteristics {
		d.Entries = append(d.Entries, typeEntry{
			Const:      characteristicConst(cm.Ident),
			Identifier: cm.Identifier,
			Name:       cm.Name,
			Doc:        cm.Documentation,
			Deprecated: cm.Deprecated,
		})
	}

	return d
}

func (r *renderer) characteristic(cm *gen.CharacteristicModel) characteristicData {
	return characteristicData{
		Header:     r.header,
		Package:    r.pkg,
		Ident:      cm.Ident,
		Const:      characteristicConst(cm.Ident),
		Name:       cm.Name,
		Doc:        cm.Documentation,
		Deprecated: cm.Deprecated,
		GoType:     GoType(cm.Kind),
	}
}

func (r *renderer) service(sm *gen.ServiceModel) serviceData {
	methods := gen.NewNamer(accessorRules())
	link := func(cm *gen.CharacteristicModel) linkData {
		return linkData{
			Method: methods.Name(cm.Ident, cm.Name, "Characteristic"),
			Name:   cm.Name,
			Type:   cm.Ident,
			Const:  characteristicConst(cm.Ident),
		}
	}

	d := serviceData{
		Header:     r.header,
		Package:    r.pkg,
		Ident:      sm.Ident,
		Const:      serviceConst(sm.Ident),
		Name:       sm.Name,
		Doc:        sm.Documentation,
		Deprecated: sm.Deprecated,
	}

	for _, cm := range sm.Required {
		d.Required = append(d.Required, link(cm))
	}

	for _, cm := range sm.Optional {
		d.Optional = append(d.Optional, link(cm))
	}

	return d
}

// execute renders one file and formats it.
func (r *renderer) execute(name string, tmpl *template.Template, data any) (gen.File, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return gen.File{}, fmt.Errorf("executing template for %s: %w", name, err)
	}

	formatted, err := imports.Process(name, buf.Bytes(), nil)
	if err != nil {
		if derr := gen.WriteDebugUnformatted(r.debugDir, name, buf.Bytes()); derr != nil {
			r.logger.Debug("failed to write unformatted source", zap.String("file", name), zap.Error(derr))
		}

		return gen.File{}, fmt.Errorf("formatting %s: %w", name, err)
	}

	return gen.File{Path: name, Content: formatted}, nil
}

// GoType maps a value kind to the Go type its wrapper exposes.
func GoType(k catalog.ValueKind) string {
	switch k {
	case catalog.KindBoolean:
		return "bool"
	case catalog.KindInteger:
		return "int"
	case catalog.KindFloating:
		return "float64"
	case catalog.KindText:
		return "string"
	case catalog.KindBytes:
		return "[]byte"
	case catalog.KindUnknown:
		return "any"
	}

	return "any"
}
