package graph

import "fmt"

// DecoratorChain builds the structure diagram of a decorator chain:
// the outermost wrapper points at what it wraps, down to the base.
// Layers are listed outermost first.
func DecoratorChain(name string, layers []string) (*Graph, error) {
	g := New(name)
	for i, layer := range layers {
		role := "wrapper"
		if i == len(layers)-1 {
			role = "base"
		}
		id := fmt.Sprintf("n%d", i)
		if err := g.AddNode(Node{ID: id, Label: layer, Role: role}); err != nil {
			return nil, err
		}
		if i > 0 {
			if err := g.AddEdge(Edge{From: fmt.Sprintf("n%d", i-1), To: id, Label: "wraps"}); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// Hierarchy builds an implements-diagram: one interface node with each
// implementation pointing at it.
func Hierarchy(name, iface string, impls []string) (*Graph, error) {
	g := New(name)
	if err := g.AddNode(Node{ID: iface, Role: "interface"}); err != nil {
		return nil, err
	}
	for _, impl := range impls {
		if err := g.AddNode(Node{ID: impl, Role: "impl"}); err != nil {
			return nil, err
		}
		if err := g.AddEdge(Edge{From: impl, To: iface, Label: "implements"}); err != nil {
			return nil, err
		}
	}
	return g, nil
}
