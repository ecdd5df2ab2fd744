package retention

import (
	"fmt"
	"time"

	"archivum/internal/catalog"
	"archivum/internal/hotspot"
)

// DefaultFallbackYears is the temporary retention applied when no schedule
// entry exists for a record's category and decision type. The fallback is
// deliberately temporary: an unknown tuple must never silently become
// permanent.
const DefaultFallbackYears = 10

// Resolver combines the retention catalog with the hotspot register to
// produce resolved retentions. It is safe for concurrent use: the catalog is
// read-only and resolution touches no other shared state.
type Resolver struct {
	catalog       *catalog.Catalog
	fallbackYears int
}

// NewResolver builds a resolver over the given catalog. fallbackYears
// configures the default temporary retention for tuples without a schedule
// entry; zero selects DefaultFallbackYears.
func NewResolver(c *catalog.Catalog, fallbackYears int) *Resolver {
	if fallbackYears <= 0 {
		fallbackYears = DefaultFallbackYears
	}
	return &Resolver{catalog: c, fallbackYears: fallbackYears}
}

// Resolve computes the retention lifecycle for a record. reg may be nil when
// no hotspot register is in play. Resolution never fails: missing schedule
// entries degrade to the fallback policy with a rationale note.
func (r *Resolver) Resolve(
	cat catalog.ProcessCategory,
	decision catalog.DecisionType,
	body catalog.BodyKind,
	created time.Time,
	reg *hotspot.Register,
) Resolved {
	era := catalog.EraForYear(created.Year())

	resolved := Resolved{Era: era}

	rule, found := r.catalog.Lookup(cat, decision, body, era)
	if !found {
		rule = catalog.Temporary(r.fallbackYears, fmt.Sprintf("default-%s", era))
		resolved.FallbackApplied = true
		resolved.Rationale = append(resolved.Rationale, fmt.Sprintf(
			"no schedule entry for %s/%s (%s, era %s); applying default temporary retention of %d years",
			cat, decision, body, era, r.fallbackYears))
	} else {
		resolved.Rationale = append(resolved.Rationale, fmt.Sprintf(
			"retention per schedule entry %s: %s", rule.Reference, describeRule(rule)))
	}
	resolved.BasePolicy = rule
	resolved.CatalogReference = rule.Reference
	resolved.FinalValue = rule.Value

	if reg != nil {
		if hs, ok := reg.Matching(cat, created); ok {
			// Monotonic override: a hotspot can only upgrade to permanent,
			// never downgrade. The base policy stays in the output for audit.
			resolved.AppliedHotspot = &hs
			resolved.FinalValue = catalog.ValuePermanent
			resolved.Rationale = append(resolved.Rationale, fmt.Sprintf(
				"upgraded by hotspot %q: permanent retention", hs.Name))
		}
	}

	switch resolved.FinalValue {
	case catalog.ValueTemporary:
		d := created.AddDate(*rule.Years, 0, 0)
		resolved.DestructionDate = &d
	case catalog.ValuePermanent:
		t := created.AddDate(transferHorizonYears, 0, 0)
		resolved.TransferDate = &t
	}

	return resolved
}

func describeRule(rule catalog.RetentionRule) string {
	if rule.IsPermanent() {
		return "permanent"
	}
	return fmt.Sprintf("%d years (temporary)", *rule.Years)
}
