package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/

import (
	"github.com/pagesmith/pagesmith/ident"
)

// Property is one property/value entry of a rule.
type Property struct {
	ID       string
	Property string // camel-cased name from the catalog vocabulary
	Value    string
}

// Rule is a selector-scoped, ordered list of properties.
type Rule struct {
	ID         string
	Selector   string
	Properties []Property
}

// Store is the ordered collection of CSS rules of one editing session.
// It is not safe for concurrent use; the session owner applies edits
// strictly sequentially.
type Store struct {
	ids   ident.Generator
	rules []Rule
}

// NewStore creates an empty rule store drawing identities from gen.
func NewStore(gen ident.Generator) *Store {
	if gen == nil {
		gen = ident.Source()
	}
	return &Store{ids: gen}
}

// AddRule appends a rule with an empty property list and returns its
// identity. An empty selector, or a selector for which a rule already
// exists, is rejected with ok=false; the CSS editor keeps one rule per
// selector.
func (s *Store) AddRule(selector string) (string, bool) {
	if selector == "" {
		return "", false
	}
	for _, r := range s.rules {
		if r.Selector == selector {
			tracer().Debugf("addRule: duplicate selector %q rejected", selector)
			return "", false
		}
	}
	id := s.ids.NewID()
	s.rules = append(s.rules, Rule{ID: id, Selector: selector})
	return id, true
}

// AddProperty appends a catalog-instantiated property with its default
// value to a rule. Duplicate property names within the rule are allowed
// and kept in insertion order. Unknown rule or property kind reports
// ok=false.
func (s *Store) AddProperty(ruleID string, kind string) (string, bool) {
	d, ok := Lookup(kind)
	if !ok {
		tracer().Debugf("addProperty: unknown property kind %q", kind)
		return "", false
	}
	for i := range s.rules {
		if s.rules[i].ID == ruleID {
			id := s.ids.NewID()
			s.rules[i].Properties = append(s.rules[i].Properties, Property{
				ID:       id,
				Property: d.Property,
				Value:    d.Default,
			})
			return id, true
		}
	}
	tracer().Debugf("addProperty: rule %s not in store, no-op", ruleID)
	return "", false
}

// UpdateValue replaces the value of one property entry in place.
func (s *Store) UpdateValue(ruleID string, propertyID string, value string) bool {
	for i := range s.rules {
		if s.rules[i].ID != ruleID {
			continue
		}
		for j := range s.rules[i].Properties {
			if s.rules[i].Properties[j].ID == propertyID {
				s.rules[i].Properties[j].Value = value
				return true
			}
		}
	}
	tracer().Debugf("updateValue: rule %s / property %s not in store, no-op", ruleID, propertyID)
	return false
}

// Rules returns the rules in store order. The slice is a copy; the
// property lists are shared and must be treated as read-only.
func (s *Store) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}
