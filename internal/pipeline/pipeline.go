package pipeline

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/common"
	"hap-catalog-generator/internal/diagnostic"
	"hap-catalog-generator/internal/extract"
	"hap-catalog-generator/internal/reconcile"
	"hap-catalog-generator/internal/relations"
	"hap-catalog-generator/internal/symbols"
)

const sampleSize = 5

// CodeStageSkipped marks an optional input that was requested but unusable.
const CodeStageSkipped = "stage_skipped"

// Sources names the input documents of one run.
type Sources struct {
	ServicesHeader        string
	CharacteristicsHeader string
	// SymbolStub is optional.
	SymbolStub string
	// Metadata is optional.
	Metadata string
}

// Report describes how a run went. It never affects the catalog.
type Report struct {
	Services        int
	Characteristics int
	// SymbolsChecked is false when no symbol stub was available.
	SymbolsChecked bool
	// RelationsErr holds the downgraded relationship load failure, if any.
	RelationsErr error
	Reconcile    *reconcile.Summary
	Diagnostics  diagnostic.Diagnostics
}

// Extractor runs the catalog pipeline.
type Extractor struct {
	Logger *zap.Logger
}

// NewExtractor returns an Extractor that logs to logger. A nil logger is
// replaced by a no-op one.
func NewExtractor(logger *zap.Logger) *Extractor {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Extractor{Logger: logger}
}

func (e *Extractor) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}

	return e.Logger
}

// Run builds a catalog from src.
func (e *Extractor) Run(src Sources) (*catalog.Catalog, *Report, error) {
	log := e.logger()

	services, err := extract.LoadServices(src.ServicesHeader)
	if err != nil {
		return nil, nil, fmt.Errorf("extracting services: %w", err)
	}

	chars, err := extract.LoadCharacteristics(src.CharacteristicsHeader)
	if err != nil {
		return nil, nil, fmt.Errorf("extracting characteristics: %w", err)
	}

	c := &catalog.Catalog{Services: services, Characteristics: chars}
	report := &Report{Services: len(services), Characteristics: len(chars)}

	log.Info("extracted declarations",
		zap.Int("services", report.Services),
		zap.Int("characteristics", report.Characteristics))

	e.validateSymbols(c, src.SymbolStub, report)

	rel, err := loadRelations(src.Metadata)
	if err != nil {
		report.RelationsErr = err
		if src.Metadata != "" {
			report.Diagnostics.AddError(CodeStageSkipped, err.Error(), src.Metadata)
		}

		log.Warn("relationship metadata unavailable, using fallback table", zap.Error(err))
	}

	report.Reconcile = reconcile.Reconcile(c, rel)
	report.Diagnostics.Merge(report.Reconcile.Diagnostics)

	e.logSummary(report.Reconcile)

	return c, report, nil
}

func (e *Extractor) validateSymbols(c *catalog.Catalog, path string, report *Report) {
	log := e.logger()

	table, err := symbols.Load(path)
	if err != nil {
		if !errors.Is(err, symbols.ErrNoTable) {
			report.Diagnostics.AddError(CodeStageSkipped, err.Error(), path)
			log.Warn("symbol stub unreadable, skipping validation", zap.Error(err))
		} else if path != "" {
			log.Info("symbol stub not found, skipping validation", zap.String("path", path))
		}

		return
	}

	report.SymbolsChecked = len(table) > 0

	diags := symbols.Validate(table, c.Identifiers())
	if n := len(diags.Warnings); n > 0 {
		missing := make([]string, 0, n)
		for _, w := range diags.Warnings {
			missing = append(missing, w.Entity)
		}

		log.Warn("identifiers missing from symbol stub",
			zap.Int("count", n),
			zap.Strings("sample", common.Sample(missing, sampleSize)))
	}

	report.Diagnostics.Merge(diags)
}

func loadRelations(path string) (*relations.Result, error) {
	if path == "" {
		return nil, relations.ErrNotFound
	}

	return relations.LoadFile(path)
}

func (e *Extractor) logSummary(s *reconcile.Summary) {
	log := e.logger()

	log.Info("reconciled catalog",
		zap.String("strategy", string(s.Strategy)),
		zap.Int("populated", s.Populated),
		zap.Int("upgraded_kinds", len(s.UpgradedKinds)))

	if n := len(s.UnmatchedServices); n > 0 {
		log.Warn("relationship services not in catalog",
			zap.Int("count", n),
			zap.Strings("sample", common.Sample(s.UnmatchedServices, sampleSize)))
	}

	if n := len(s.MissingCharacteristics); n > 0 {
		log.Warn("declared characteristics not in catalog",
			zap.Int("count", n),
			zap.Strings("sample", common.Sample(s.MissingCharacteristics, sampleSize)))
	}

	s.Diagnostics.Log(log.Named("reconcile"))
}
