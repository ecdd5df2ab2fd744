package catalog

import (
	"fmt"
)

// ruleKey identifies one schedule entry.
type ruleKey struct {
	category ProcessCategory
	decision DecisionType
}

// Schedule is one versioned retention schedule: the full rule table for one
// body kind during one era. Populated at startup, read-only afterwards.
type Schedule struct {
	Era   Era
	Body  BodyKind
	Name  string
	rules map[ruleKey]RetentionRule
}

// NewSchedule creates an empty schedule for the given era and body kind.
func NewSchedule(era Era, body BodyKind, name string) *Schedule {
	return &Schedule{
		Era:   era,
		Body:  body,
		Name:  name,
		rules: make(map[ruleKey]RetentionRule),
	}
}

// Add registers a rule for a category and decision type. Later adds overwrite
// earlier ones, which lets the builders lay down blanket rules first and
// specific exceptions after.
func (s *Schedule) Add(category ProcessCategory, decision DecisionType, rule RetentionRule) {
	s.rules[ruleKey{category, decision}] = rule
}

// Find returns the rule for a category and decision type, if one exists.
func (s *Schedule) Find(category ProcessCategory, decision DecisionType) (RetentionRule, bool) {
	rule, ok := s.rules[ruleKey{category, decision}]
	return rule, ok
}

// Len returns the number of rules in the schedule.
func (s *Schedule) Len() int {
	return len(s.rules)
}

// Catalog holds every retention schedule the engine knows about. It is an
// explicitly constructed, injected configuration object: resolvers receive a
// *Catalog so tests can substitute alternate rule sets.
type Catalog struct {
	schedules []*Schedule
}

// New builds a catalog from the given schedules.
func New(schedules ...*Schedule) *Catalog {
	return &Catalog{schedules: schedules}
}

// Lookup returns the retention rule for the tuple, or ok=false when no
// explicit rule exists. Callers must apply their own fallback; the catalog
// never invents a default.
func (c *Catalog) Lookup(category ProcessCategory, decision DecisionType, body BodyKind, era Era) (RetentionRule, bool) {
	for _, s := range c.schedules {
		if s.Era != era || s.Body != body {
			continue
		}
		return s.Find(category, decision)
	}
	return RetentionRule{}, false
}

// ScheduleFor returns the schedule for a body kind and era, if present.
func (c *Catalog) ScheduleFor(body BodyKind, era Era) (*Schedule, bool) {
	for _, s := range c.schedules {
		if s.Era == era && s.Body == body {
			return s, true
		}
	}
	return nil, false
}

// Validate checks the catalog for configuration errors. It is fatal at
// startup: a zero-year temporary rule would make a record destructible on its
// creation date, and overlapping eras would make era resolution ambiguous.
func (c *Catalog) Validate() error {
	if err := validateEras(); err != nil {
		return err
	}
	for _, s := range c.schedules {
		for key, rule := range s.rules {
			if rule.Value == ValueTemporary {
				if rule.Years == nil {
					return fmt.Errorf("catalog: %s: temporary rule %q (%s/%s) has no duration",
						s.Name, rule.Reference, key.category, key.decision)
				}
				if *rule.Years <= 0 {
					return fmt.Errorf("catalog: %s: temporary rule %q (%s/%s) has non-positive duration %d",
						s.Name, rule.Reference, key.category, key.decision, *rule.Years)
				}
			}
			if rule.Value == ValuePermanent && rule.Years != nil {
				return fmt.Errorf("catalog: %s: permanent rule %q (%s/%s) carries a duration",
					s.Name, rule.Reference, key.category, key.decision)
			}
		}
	}
	return nil
}

// validateEras checks that era year ranges do not overlap and that exactly
// one era is open-ended.
func validateEras() error {
	open := 0
	eras := Eras()
	for i, era := range eras {
		start, end, isOpen := era.Bounds()
		if isOpen {
			open++
			continue
		}
		if end < start {
			return fmt.Errorf("catalog: era %s ends (%d) before it starts (%d)", era, end, start)
		}
		for _, other := range eras[i+1:] {
			oStart, oEnd, oOpen := other.Bounds()
			if oOpen {
				if oStart <= end {
					return fmt.Errorf("catalog: era %s overlaps open era %s", era, other)
				}
				continue
			}
			if start <= oEnd && oStart <= end {
				return fmt.Errorf("catalog: eras %s and %s overlap", era, other)
			}
		}
	}
	if open != 1 {
		return fmt.Errorf("catalog: expected exactly one open era, found %d", open)
	}
	return nil
}
