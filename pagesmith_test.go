package pagesmith

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/pagesmith/pagesmith/forest"
	"github.com/pagesmith/pagesmith/forest/forestdbg"
	"github.com/pagesmith/pagesmith/ident"
	"github.com/pagesmith/pagesmith/omap"
	"github.com/pagesmith/pagesmith/script"
	"github.com/stretchr/testify/require"
)

func newTestSession() *Session {
	return NewSession(ident.Sequence("n"))
}

func TestBootstrapDocument(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	t.Logf("bootstrap forest:\n%s", forestdbg.Print(s.Forest()))
	doc := s.Document()
	require.True(t, strings.HasPrefix(doc, "<!DOCTYPE html>\n<html lang=\"en\">"))
	require.Contains(t, doc, "<title>My Web Page</title>")
	require.Contains(t, doc, "<style></style>", "fresh session has an empty stylesheet")
	require.Contains(t, doc, "<script>document.addEventListener('DOMContentLoaded', () => {\n});</script>",
		"fresh session carries the inert listener shell")
	sels := s.Selectors()
	require.Equal(t, []string{"html", "head", "title", "style", "body", "script"}, sels)
}

func TestDropNewBlockDefaultsIntoBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	s.Drop(DropRequest{Kind: "h1"})
	body, ok := findByKind(s.Forest(), "body")
	require.True(t, ok)
	last := body.Children[len(body.Children)-1]
	require.Equal(t, "h1", last.Kind, "new block must land as last child of body")
	require.Contains(t, s.Document(), ">Main heading</h1>")
}

func TestDropUnknownKindIsNoop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	before := s.Document()
	s.Drop(DropRequest{Kind: "blink"})
	if s.Document() != before {
		t.Error("expected unknown kind to leave the document unchanged")
	}
}

func TestDropMovesExistingNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	s.Drop(DropRequest{Kind: "div"})
	s.Drop(DropRequest{Kind: "p"})
	body, _ := findByKind(s.Forest(), "body")
	div := body.Children[1]
	p := body.Children[2]
	s.Drop(DropRequest{NodeID: p.ID, TargetID: div.ID, Position: forest.Inside})
	moved, ok := forest.FindByID(s.Forest(), p.ID)
	require.True(t, ok, "moved node keeps its identity")
	div2, _ := forest.FindByID(s.Forest(), div.ID)
	require.Len(t, div2.Children, 1)
	require.Equal(t, moved, div2.Children[0])
}

func TestUpdateRemoveDuplicate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	s.Drop(DropRequest{Kind: "p"})
	body, _ := findByKind(s.Forest(), "body")
	p := body.Children[1]

	s.UpdateNode(p.ID, forest.Patch{Content: forest.StringPtr("hello & goodbye")})
	require.Contains(t, s.Document(), "hello &amp; goodbye")

	s.DuplicateNode(p.ID)
	body, _ = findByKind(s.Forest(), "body")
	require.Len(t, body.Children, 3)
	clone := body.Children[2]
	require.NotEqual(t, p.ID, clone.ID)
	require.Equal(t, "hello & goodbye", clone.Content)

	s.RemoveNode(p.ID)
	_, ok := forest.FindByID(s.Forest(), p.ID)
	require.False(t, ok)
	require.Contains(t, s.Document(), "hello &amp; goodbye", "the clone survives")
}

func TestStyleClipboard(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	s.Drop(DropRequest{Kind: "h1"})
	s.Drop(DropRequest{Kind: "h2"})
	body, _ := findByKind(s.Forest(), "body")
	h1, h2 := body.Children[1], body.Children[2]

	s.UpdateNode(h1.ID, forest.Patch{Styles: omap.From("color", "red", "padding", "4px")})
	copied, ok := s.NodeStyles(h1.ID)
	require.True(t, ok)

	s.PasteStyles(h2.ID, copied)
	pasted, _ := forest.FindByID(s.Forest(), h2.ID)
	v, _ := pasted.Styles.Get("color")
	require.Equal(t, "red", v)

	// the clipboard copy is detached from later edits of the source
	s.UpdateNode(h1.ID, forest.Patch{Styles: omap.From("color", "blue")})
	v, _ = copied.Get("color")
	require.Equal(t, "red", v)

	if _, ok := s.NodeStyles("nope"); ok {
		t.Error("expected clipboard read of unknown node to miss")
	}
}

func TestCSSEditingFlow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	ruleID, ok := s.AddCSSRule(".a")
	require.True(t, ok)
	_, ok = s.AddCSSRule(".a")
	require.False(t, ok, "duplicate selector must be rejected")

	propID, ok := s.AddCSSProperty(ruleID, "color")
	require.True(t, ok)
	require.True(t, s.UpdateCSSValue(ruleID, propID, "#ff0000"))

	want := ".a {\n  color: #ff0000;\n}"
	require.Equal(t, want, s.StyleSheet())
	require.Contains(t, s.Document(), "<style>"+want+"</style>",
		"style carrier content equals the synthesized stylesheet")
}

func TestJSEditingFlow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	ruleID, ok := s.AddJSRule("#btn1", script.Click)
	require.True(t, ok)
	actionID, ok := s.AddJSAction(ruleID, "alert")
	require.True(t, ok)
	require.True(t, s.UpdateJSParam(ruleID, actionID, "message", "hi"))

	js := s.Script()
	require.Contains(t, js, "document.querySelectorAll('#btn1').forEach(el => {")
	require.Contains(t, js, "el.addEventListener('click', () => {")
	require.Contains(t, js, "alert('hi');")
	require.Contains(t, s.Document(), "<script>"+js+"</script>",
		"script carrier content equals the synthesized script")
}

func TestSelectorsFollowTheTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := newTestSession()
	s.Drop(DropRequest{Kind: "button"})
	body, _ := findByKind(s.Forest(), "body")
	btn := body.Children[1]
	s.UpdateNode(btn.ID, forest.Patch{Attributes: omap.From("id", "btn1")})
	require.Contains(t, s.Selectors(), "#btn1")
	require.Contains(t, s.Selectors(), "button")

	s.RemoveNode(btn.ID)
	require.NotContains(t, s.Selectors(), "#btn1")

	// rules referencing vanished selectors are inert but still render
	ruleID, _ := s.AddJSRule("#btn1", script.Click)
	s.AddJSAction(ruleID, "alert")
	require.Contains(t, s.Script(), "#btn1")
}

func TestNilGeneratorDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pagesmith.session")
	defer teardown()
	//
	s := NewSession(nil)
	if len(s.Forest()) != 1 {
		t.Fatal("expected bootstrap forest with one root")
	}
	root := s.Forest()[0]
	if root.ID == "" {
		t.Error("expected the default generator to issue identities")
	}
}
