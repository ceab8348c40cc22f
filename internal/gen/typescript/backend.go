package typescript

import (
	"bytes"
	"fmt"
	"path"
	"slices"
	"text/template"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/gen"
)

const (
	serviceTypesModule        = "serviceTypes"
	characteristicTypesModule = "characteristicTypes"
	characteristicsDir        = "characteristics"
	servicesDir               = "services"
	indexFile                 = "index.ts"
)

// Backend renders TypeScript sources.
type Backend struct{}

// New returns the TypeScript backend.
func New() *Backend {
	return &Backend{}
}

// Language implements gen.Backend.
func (*Backend) Language() string {
	return "typescript"
}

type enumEntry struct {
	Ident      string
	Identifier string
	Name       string
	Doc        string
	Deprecated bool
}

type enumData struct {
	Header  string
	Kind    string
	Table   string
	Entries []enumEntry
}

type characteristicData struct {
	Header     string
	Ident      string
	Name       string
	Doc        string
	Deprecated bool
	TSType     string
	ValueDoc   string
}

type fieldData struct {
	Field string
	Type  string
}

type serviceData struct {
	Header     string
	Ident      string
	Name       string
	Doc        string
	Deprecated bool
	Imports    []string
	Required   []fieldData
	Optional   []fieldData
}

// Render implements gen.Backend.
func (b *Backend) Render(c *catalog.Catalog, opts gen.Options) (*gen.Tree, error) {
	opts = opts.WithDefaults()

	header := gen.Header("//", opts.Now())
	model := gen.BuildModel(c, gen.NewNamer(typeRules()), opts.Logger.Named("typescript"))

	jobs := []func() (gen.File, error){
		func() (gen.File, error) {
			return execute(serviceTypesModule+".ts", enumTemplate, serviceEnum(header, model))
		},
		func() (gen.File, error) {
			return execute(characteristicTypesModule+".ts", enumTemplate, characteristicEnum(header, model))
		},
	}

	modules := []string{serviceTypesModule, characteristicTypesModule}

	for _, cm := range model.Characteristics {
		module := path.Join(characteristicsDir, cm.Ident)
		modules = append(modules, module)
		jobs = append(jobs, func() (gen.File, error) {
			return execute(module+".ts", characteristicTemplate, characteristic(header, cm))
		})
	}

	for _, sm := range model.Services {
		module := path.Join(servicesDir, sm.Ident)
		modules = append(modules, module)
		jobs = append(jobs, func() (gen.File, error) {
			return execute(module+".ts", serviceTemplate, service(header, sm))
		})
	}

	jobs = append(jobs, func() (gen.File, error) {
		return execute(indexFile, indexTemplate, struct {
			Header  string
			Modules []string
		}{header, modules})
	})

	files, err := gen.RenderEach(len(jobs), opts.Workers, func(i int) (gen.File, error) {
		return jobs[i]()
	})
	if err != nil {
		return nil, err
	}

	return &gen.Tree{Files: files, Diagnostics: model.Diagnostics}, nil
}

func serviceEnum(header string, m *gen.Model) enumData {
	d := enumData{Header: header, Kind: "Service", Table: "serviceTypeNames"}
	for _, sm := range m.Services {
		d.Entries = append(d.Entries, enumEntry{
			Ident:      sm.Ident,
			Identifier: sm.Identifier,
			Name:       sm.Name,
			Doc:        sm.Documentation,
			Deprecated: sm.Deprecated,
		})
	}

	return d
}

func characteristicEnum(header string, m *gen.Model) enumData {
	d := enumData{Header: header, Kind: "Characteristic", Table: "characteristicTypeNames"}
	for _, cm := range m.Characteristics {
		d.Entries = append(d.Entries, enumEntry{
			Ident:      cm.Ident,
			Identifier: cm.Identifier,
			Name:       cm.Name,
			Doc:        cm.Documentation,
			Deprecated: cm.Deprecated,
		})
	}

	return d
}

func characteristic(header string, cm *gen.CharacteristicModel) characteristicData {
	d := characteristicData{
		Header:     header,
		Ident:      cm.Ident,
		Name:       cm.Name,
		Doc:        cm.Documentation,
		Deprecated: cm.Deprecated,
		TSType:     TSType(cm.Kind),
	}

	if cm.Kind == catalog.KindBytes {
		d.ValueDoc = "Base64-encoded data."
	}

	return d
}

func service(header string, sm *gen.ServiceModel) serviceData {
	fields := gen.NewNamer(fieldRules())
	d := serviceData{
		Header:     header,
		Ident:      sm.Ident,
		Name:       sm.Name,
		Doc:        sm.Documentation,
		Deprecated: sm.Deprecated,
	}

	for _, cm := range sm.Required {
		d.Required = append(d.Required, fieldData{Field: fields.Name(cm.Ident, cm.Name, "Characteristic"), Type: cm.Ident})
	}

	for _, cm := range sm.Optional {
		d.Optional = append(d.Optional, fieldData{Field: fields.Name(cm.Ident, cm.Name, "Characteristic"), Type: cm.Ident})
	}

	for _, cm := range sm.Links() {
		d.Imports = append(d.Imports, cm.Ident)
	}

	slices.Sort(d.Imports)
	d.Imports = slices.Compact(d.Imports)

	return d
}

func execute(name string, tmpl *template.Template, data any) (gen.File, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return gen.File{}, fmt.Errorf("executing template for %s: %w", name, err)
	}

	return gen.File{Path: name, Content: buf.Bytes()}, nil
}
