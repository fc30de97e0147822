/*
Package script holds the JavaScript side of the builder: the closed set
of DOM events a rule can bind, the catalog of action blocks the JS
palette offers, and the ordered store of selector-scoped event rules.

Unlike CSS rules, JS rules have no uniqueness constraint: several rules
may target the same selector, with the same or different events, and each
fires independently.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2026 The Pagesmith Authors

*/
package script

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/pagesmith/pagesmith/ident"
	"github.com/pagesmith/pagesmith/omap"
)

// tracer traces to 'pagesmith.script'.
func tracer() tracing.Trace {
	return tracing.Select("pagesmith.script")
}

// Event is a DOM event kind a rule may bind.
type Event string

// The closed set of bindable events.
const (
	Click     Event = "click"
	Mouseover Event = "mouseover"
	Change    Event = "change"
)

// Valid reports whether e is in the closed event set.
func (e Event) Valid() bool {
	switch e {
	case Click, Mouseover, Change:
		return true
	}
	return false
}

// Category groups action kinds for palette display.
type Category string

// Palette categories.
const (
	Events  Category = "Events"
	Actions Category = "Actions"
	Logic   Category = "Logic"
)

// Descriptor describes one action block kind and the parameters a fresh
// instance starts with.
type Descriptor struct {
	Kind     string
	Name     string
	Category Category
	params   []string
}

var catalog = []Descriptor{
	{Kind: "alert", Name: "Show Alert", Category: Actions,
		params: []string{"message", "Hello!"}},
	{Kind: "console.log", Name: "Log to Console", Category: Actions,
		params: []string{"message", "Log data"}},
}

var byKind = func() map[string]Descriptor {
	m := make(map[string]Descriptor, len(catalog))
	for _, d := range catalog {
		m[d.Kind] = d
	}
	return m
}()

// Lookup returns the descriptor for an action kind.
func Lookup(kind string) (Descriptor, bool) {
	d, ok := byKind[kind]
	return d, ok
}

// Kinds lists all action kind identifiers in catalog order.
func Kinds() []string {
	kinds := make([]string, len(catalog))
	for i, d := range catalog {
		kinds[i] = d.Kind
	}
	return kinds
}

// Action is one action instance inside a rule. Params is an ordered map;
// today every catalog kind carries a single "message" parameter.
type Action struct {
	ID     string
	Kind   string
	Params *omap.Map
}

// Rule binds an event on a selector to an ordered list of actions.
type Rule struct {
	ID       string
	Selector string
	Event    Event
	Actions  []Action
}

// Store is the ordered collection of JS rules of one editing session.
// Not safe for concurrent use; the session owner applies edits strictly
// sequentially.
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

// AddRule appends a rule with an empty action list and returns its
// identity. An empty selector or an event outside the closed set is
// rejected with ok=false.
func (s *Store) AddRule(selector string, event Event) (string, bool) {
	if selector == "" || !event.Valid() {
		tracer().Debugf("addRule: rejected selector=%q event=%q", selector, event)
		return "", false
	}
	id := s.ids.NewID()
	s.rules = append(s.rules, Rule{ID: id, Selector: selector, Event: event})
	return id, true
}

// AddAction appends a catalog-instantiated action with its default
// parameters to a rule. Unknown rule or action kind reports ok=false.
func (s *Store) AddAction(ruleID string, kind string) (string, bool) {
	d, ok := Lookup(kind)
	if !ok {
		tracer().Debugf("addAction: unknown action kind %q", kind)
		return "", false
	}
	for i := range s.rules {
		if s.rules[i].ID == ruleID {
			id := s.ids.NewID()
			s.rules[i].Actions = append(s.rules[i].Actions, Action{
				ID:     id,
				Kind:   d.Kind,
				Params: omap.From(d.params...),
			})
			return id, true
		}
	}
	tracer().Debugf("addAction: rule %s not in store, no-op", ruleID)
	return "", false
}

// UpdateParam sets one parameter of one action in place. The action's
// parameter map is replaced, not mutated, so previously returned rule
// snapshots stay valid.
func (s *Store) UpdateParam(ruleID string, actionID string, key string, value string) bool {
	if key == "" {
		return false
	}
	for i := range s.rules {
		if s.rules[i].ID != ruleID {
			continue
		}
		for j := range s.rules[i].Actions {
			if s.rules[i].Actions[j].ID == actionID {
				params := s.rules[i].Actions[j].Params.Clone()
				params.Set(key, value)
				s.rules[i].Actions[j].Params = params
				return true
			}
		}
	}
	tracer().Debugf("updateParam: rule %s / action %s not in store, no-op", ruleID, actionID)
	return false
}

// Rules returns the rules in store order. The slice is a copy; action
// lists are shared and must be treated as read-only.
func (s *Store) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}
