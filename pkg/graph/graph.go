// Package graph provides the small directed graph used to diagram pattern
// structure: which wrapper holds which, which concrete type implements
// which interface.
//
// Insertion order is preserved so diagrams and DOT output are
// deterministic.
package graph

import "patternbook/pkg/errors"

// Node is one box in a structure diagram.
type Node struct {
	// ID is the unique node identifier.
	ID string
	// Label is the display text; ID is used when empty.
	Label string
	// Role tags the node for styling ("interface", "base", "wrapper", ...).
	Role string
}

// Edge is a directed connection between two nodes.
type Edge struct {
	From  string
	To    string
	Label string
}

// Graph is an ordered directed graph. Use New to create one.
type Graph struct {
	name  string
	nodes []Node
	index map[string]int
	edges []Edge
}

// New creates an empty graph with a display name.
func New(name string) *Graph {
	return &Graph{name: name, index: make(map[string]int)}
}

// Name returns the graph's display name.
func (g *Graph) Name() string { return g.name }

// AddNode appends a node. Duplicate IDs return INVALID_INPUT.
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return errors.New(errors.ErrCodeInvalidInput, "node ID cannot be empty")
	}
	if _, ok := g.index[n.ID]; ok {
		return errors.New(errors.ErrCodeInvalidInput, "duplicate node ID %q", n.ID)
	}
	g.index[n.ID] = len(g.nodes)
	g.nodes = append(g.nodes, n)
	return nil
}

// AddEdge appends an edge. Both endpoints must exist.
func (g *Graph) AddEdge(e Edge) error {
	if _, ok := g.index[e.From]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "edge from unknown node %q", e.From)
	}
	if _, ok := g.index[e.To]; !ok {
		return errors.New(errors.ErrCodeInvalidInput, "edge to unknown node %q", e.To)
	}
	g.edges = append(g.edges, e)
	return nil
}

// Node returns the node with the given ID.
func (g *Graph) Node(id string) (Node, bool) {
	i, ok := g.index[id]
	if !ok {
		return Node{}, false
	}
	return g.nodes[i], true
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Node { return g.nodes }

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }
