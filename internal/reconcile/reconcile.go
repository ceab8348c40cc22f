package reconcile

import (
	"fmt"

	"hap-catalog-generator/internal/catalog"
	"hap-catalog-generator/internal/common"
	"hap-catalog-generator/internal/diagnostic"
	"hap-catalog-generator/internal/naming"
	"hap-catalog-generator/internal/relations"
)

// Strategy names the branch that populated service lists.
type Strategy string

const (
	StrategyMetadata Strategy = "metadata"
	StrategyFallback Strategy = "fallback"
)

// Diagnostic codes.
const (
	CodeUnmatchedService      = "unmatched_service"
	CodeMissingCharacteristic = "missing_characteristic"
	CodeKindUpgraded          = "kind_upgraded"
)

const (
	suggestionThreshold = 0.75
	suggestionLimit     = 3
)

// KindUpgrade records a value kind overwritten by a format hint.
type KindUpgrade struct {
	Characteristic string
	From           catalog.ValueKind
	To             catalog.ValueKind
}

// Summary describes what reconciliation did. It is diagnostic only.
type Summary struct {
	Strategy Strategy
	// Populated counts services whose lists were set.
	Populated int
	// UnmatchedServices are relationship services absent from the catalog.
	UnmatchedServices []string
	// MissingCharacteristics are declared names absent from the catalog,
	// de-duplicated in first-seen order.
	MissingCharacteristics []string
	UpgradedKinds          []KindUpgrade
	Diagnostics            diagnostic.Diagnostics
}

// Reconcile populates every service's required/optional lists and applies
// format hints. rel may be nil. c is modified in place.
func Reconcile(c *catalog.Catalog, rel *relations.Result) *Summary {
	r := &reconciler{
		catalog: c,
		names:   c.CharacteristicNames(),
		missing: make(map[string]struct{}),
		summary: &Summary{},
	}

	if rel.HasLinks() {
		r.applyMetadata(rel)
	}

	// A metadata pass that matched no catalog service has not succeeded.
	// Its unmatched diagnostics are kept.
	if r.summary.Populated == 0 {
		r.applyFallback()
	}

	if rel != nil && len(rel.Formats) > 0 {
		r.applyFormats(rel.Formats)
	}

	return r.summary
}

type reconciler struct {
	catalog *catalog.Catalog
	names   map[string]struct{}
	missing map[string]struct{}
	summary *Summary
}

func (r *reconciler) known(name string) bool {
	_, ok := r.names[name]
	return ok
}

func (r *reconciler) applyMetadata(rel *relations.Result) {
	r.summary.Strategy = StrategyMetadata

	for _, links := range rel.Services {
		svc := r.catalog.Service(links.Name)
		if svc == nil {
			r.summary.UnmatchedServices = append(r.summary.UnmatchedServices, links.Name)
			r.summary.Diagnostics.AddWarning(CodeUnmatchedService,
				fmt.Sprintf("relationship service %q (%s) is not in the catalog", links.Name, links.Key),
				links.Name)

			continue
		}

		r.noteMissing(svc.Name, links.Required)
		r.noteMissing(svc.Name, links.Optional)

		required := common.Dedupe(links.Required, r.known)
		requiredSet := make(map[string]struct{}, len(required))

		for _, n := range required {
			requiredSet[n] = struct{}{}
		}

		svc.Required = required
		svc.Optional = common.Dedupe(links.Optional, func(n string) bool {
			_, dup := requiredSet[n]
			return !dup && r.known(n)
		})
		r.summary.Populated++
	}
}

func (r *reconciler) applyFallback() {
	r.summary.Strategy = StrategyFallback

	for i := range r.catalog.Services {
		svc := &r.catalog.Services[i]

		entry, ok := Fallback(svc.Name)
		if !ok {
			continue
		}

		r.noteMissing(svc.Name, entry.Required)
		r.noteMissing(svc.Name, entry.Optional)

		svc.Required = entry.Required
		svc.Optional = entry.Optional
		r.summary.Populated++
	}
}

func (r *reconciler) applyFormats(formats map[string]string) {
	for i := range r.catalog.Characteristics {
		ch := &r.catalog.Characteristics[i]

		token, ok := formats[ch.Name]
		if !ok {
			continue
		}

		kind := KindForFormat(token)
		if kind == ch.Kind {
			continue
		}

		r.summary.UpgradedKinds = append(r.summary.UpgradedKinds, KindUpgrade{
			Characteristic: ch.Name,
			From:           ch.Kind,
			To:             kind,
		})
		r.summary.Diagnostics.AddInfo(CodeKindUpgraded,
			fmt.Sprintf("value kind %s -> %s from format %q", ch.Kind, kind, token), ch.Name)
		ch.Kind = kind
	}
}

func (r *reconciler) noteMissing(service string, declared []string) {
	for _, name := range declared {
		if r.known(name) {
			continue
		}

		if _, seen := r.missing[name]; !seen {
			r.missing[name] = struct{}{}
			r.summary.MissingCharacteristics = append(r.summary.MissingCharacteristics, name)
		}

		r.summary.Diagnostics.AddWarning(CodeMissingCharacteristic,
			fmt.Sprintf("%s references %q which is not in the catalog", service, name),
			service, r.suggest(name)...)
	}
}

func (r *reconciler) suggest(name string) []string {
	candidates := make([]string, 0, len(r.catalog.Characteristics))
	for _, ch := range r.catalog.Characteristics {
		candidates = append(candidates, ch.Name)
	}

	return naming.Nearest(name, candidates, suggestionThreshold, suggestionLimit)
}
