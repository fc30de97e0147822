package forestdbg

import (
	"strings"
	"testing"

	"github.com/pagesmith/pagesmith/forest"
	"github.com/pagesmith/pagesmith/omap"
)

func TestPrint(t *testing.T) {
	f := forest.Forest{
		{ID: "1", Kind: "div", Attributes: omap.From("id", "hero", "class", "a b"),
			Children: []*forest.Node{
				{ID: "2", Kind: "p"},
				{ID: "3", Kind: "style", Dynamic: true},
			}},
	}
	out := Print(f)
	t.Logf("\n%s", out)
	for _, want := range []string{"div #1", "id=hero", `class="a b"`, "p #2", "style #3 (dynamic)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected diagram to contain %q, got\n%s", want, out)
		}
	}
}
