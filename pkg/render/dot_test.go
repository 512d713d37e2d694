package render

import (
	"strings"
	"testing"

	"patternbook/pkg/graph"
)

func buildChain(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.DecoratorChain("coffee order", []string{"Vanilla", "Milk", "Espresso"})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestToDOTStructure(t *testing.T) {
	dot := ToDOT(buildChain(t))

	if !strings.HasPrefix(dot, "digraph G {") {
		t.Errorf("DOT should start with digraph header, got:\n%s", dot)
	}
	if !strings.Contains(dot, `label="coffee order";`) {
		t.Errorf("DOT missing graph label, got:\n%s", dot)
	}
	for _, label := range []string{`"Vanilla"`, `"Milk"`, `"Espresso"`} {
		if !strings.Contains(dot, "label="+label) {
			t.Errorf("DOT missing node label %s, got:\n%s", label, dot)
		}
	}
	if !strings.Contains(dot, `"n0" -> "n1" [label="wraps"];`) {
		t.Errorf("DOT missing labeled edge, got:\n%s", dot)
	}
	if !strings.HasSuffix(strings.TrimSpace(dot), "}") {
		t.Errorf("DOT should be closed, got:\n%s", dot)
	}
}

func TestToDOTRoleStyling(t *testing.T) {
	g, err := graph.Hierarchy("shapes", "Shape", []string{"Circle"})
	if err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(g)

	if !strings.Contains(dot, `"rounded,dashed"`) {
		t.Errorf("interface node should be dashed, got:\n%s", dot)
	}

	chainDot := ToDOT(buildChain(t))
	if !strings.Contains(chainDot, "fillcolor=lightgrey") {
		t.Errorf("base node should be grey-filled, got:\n%s", chainDot)
	}
}

func TestToDOTDeterministic(t *testing.T) {
	a := ToDOT(buildChain(t))
	b := ToDOT(buildChain(t))
	if a != b {
		t.Error("ToDOT should be deterministic for the same graph")
	}
}
