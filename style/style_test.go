package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pagesmith/pagesmith/ident"
)

func TestHyphenate(t *testing.T) {
	cases := [][2]string{
		{"color", "color"},
		{"backgroundColor", "background-color"},
		{"borderRadius", "border-radius"},
		{"justifyContent", "justify-content"},
	}
	for _, c := range cases {
		if got := Hyphenate(c[0]); got != c[1] {
			t.Errorf("Hyphenate(%q) = %q, expected %q", c[0], got, c[1])
		}
	}
}

func TestAddRuleRejectsDuplicateSelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.style")
	defer teardown()
	//
	s := NewStore(ident.Sequence("r"))
	id, ok := s.AddRule(".a")
	if !ok || id != "r-1" {
		t.Fatalf("expected first rule to be accepted as r-1, got %q ok=%v", id, ok)
	}
	if _, ok := s.AddRule(".a"); ok {
		t.Error("expected duplicate selector to be rejected")
	}
	if _, ok := s.AddRule(""); ok {
		t.Error("expected empty selector to be rejected")
	}
	if _, ok := s.AddRule(".b"); !ok {
		t.Error("expected a different selector to be accepted")
	}
	if len(s.Rules()) != 2 {
		t.Errorf("expected 2 rules in the store, got %d", len(s.Rules()))
	}
}

func TestAddPropertyInstantiatesDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.style")
	defer teardown()
	//
	s := NewStore(ident.Sequence("r"))
	ruleID, _ := s.AddRule(".a")
	if _, ok := s.AddProperty(ruleID, "color"); !ok {
		t.Fatal("expected catalog property to be accepted")
	}
	if _, ok := s.AddProperty(ruleID, "zIndex"); ok {
		t.Error("expected unknown property kind to be rejected")
	}
	if _, ok := s.AddProperty("r-99", "color"); ok {
		t.Error("expected unknown rule to be rejected")
	}
	// duplicate property names within a rule are allowed
	if _, ok := s.AddProperty(ruleID, "color"); !ok {
		t.Error("expected duplicate property name to be allowed")
	}
	props := s.Rules()[0].Properties
	if len(props) != 2 || props[0].Property != "color" || props[0].Value != "#000000" {
		t.Errorf("unexpected property list %v", props)
	}
}

func TestUpdateValue(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.style")
	defer teardown()
	//
	s := NewStore(ident.Sequence("r"))
	ruleID, _ := s.AddRule(".a")
	propID, _ := s.AddProperty(ruleID, "color")
	if !s.UpdateValue(ruleID, propID, "#ff0000") {
		t.Fatal("expected value update to succeed")
	}
	if v := s.Rules()[0].Properties[0].Value; v != "#ff0000" {
		t.Errorf("expected updated value #ff0000, got %q", v)
	}
	if s.UpdateValue(ruleID, "p-99", "x") {
		t.Error("expected update of unknown property to report false")
	}
}
