package script

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pagesmith/pagesmith/ident"
)

func TestEventValidation(t *testing.T) {
	for _, e := range []Event{Click, Mouseover, Change} {
		if !e.Valid() {
			t.Errorf("expected event %q to be valid", e)
		}
	}
	for _, e := range []Event{"", "hover", "submit", "Click"} {
		if e.Valid() {
			t.Errorf("expected event %q to be invalid", e)
		}
	}
}

func TestAddRuleAllowsDuplicateSelectors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.script")
	defer teardown()
	//
	s := NewStore(ident.Sequence("r"))
	if _, ok := s.AddRule("#btn1", Click); !ok {
		t.Fatal("expected rule to be accepted")
	}
	if _, ok := s.AddRule("#btn1", Click); !ok {
		t.Error("expected a second rule on the same selector and event")
	}
	if _, ok := s.AddRule("#btn1", Mouseover); !ok {
		t.Error("expected a rule on the same selector with another event")
	}
	if len(s.Rules()) != 3 {
		t.Errorf("expected 3 rules, got %d", len(s.Rules()))
	}
}

func TestAddRuleRejectsInvalidInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.script")
	defer teardown()
	//
	s := NewStore(ident.Sequence("r"))
	if _, ok := s.AddRule("", Click); ok {
		t.Error("expected empty selector to be rejected")
	}
	if _, ok := s.AddRule("#btn1", "hover"); ok {
		t.Error("expected event outside the closed set to be rejected")
	}
	if len(s.Rules()) != 0 {
		t.Error("expected rejected rules to leave the store empty")
	}
}

func TestAddActionAndUpdateParam(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.script")
	defer teardown()
	//
	s := NewStore(ident.Sequence("r"))
	ruleID, _ := s.AddRule("#btn1", Click)
	actionID, ok := s.AddAction(ruleID, "alert")
	if !ok {
		t.Fatal("expected catalog action to be accepted")
	}
	if _, ok := s.AddAction(ruleID, "fetch"); ok {
		t.Error("expected unknown action kind to be rejected")
	}
	a := s.Rules()[0].Actions[0]
	if v, _ := a.Params.Get("message"); v != "Hello!" {
		t.Errorf("expected default message param, got %q", v)
	}
	if !s.UpdateParam(ruleID, actionID, "message", "hi") {
		t.Fatal("expected param update to succeed")
	}
	if v, _ := s.Rules()[0].Actions[0].Params.Get("message"); v != "hi" {
		t.Errorf("expected updated param, got %q", v)
	}
	// the earlier snapshot is unaffected by the update
	if v, _ := a.Params.Get("message"); v != "Hello!" {
		t.Error("param update mutated a previously returned snapshot")
	}
	if s.UpdateParam(ruleID, actionID, "", "x") {
		t.Error("expected empty param key to be rejected")
	}
}
