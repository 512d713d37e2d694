// Package demo provides the catalog of teaching demonstrations and the
// runner that executes them.
//
// Each demo is a self-contained narrative: it builds a few objects from the
// library packages, exercises them, and writes what happened to a writer.
// Demos never share state; running one has no effect on another.
package demo

import (
	"context"
	"io"
	"strings"

	"patternbook/pkg/errors"
)

// Topic groups demos for listing and filtering.
type Topic string

// Demo topics.
const (
	TopicBasics   Topic = "basics"
	TopicPatterns Topic = "patterns"
	TopicConcepts Topic = "concepts"
)

// Demo is one runnable teaching example.
type Demo struct {
	// Name is the unique demo identifier used on the command line.
	Name string
	// Topic groups the demo for listing.
	Topic Topic
	// Summary is a one-line description.
	Summary string
	// Run executes the demo, writing its narrative to w.
	Run func(ctx context.Context, w io.Writer) error
}

// Registry holds demos in registration order.
type Registry struct {
	demos []Demo
	index map[string]int
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register adds a demo. Registering a duplicate name panics: the catalog is
// assembled at startup and a collision is a programming error.
func (r *Registry) Register(d Demo) {
	if d.Name == "" || d.Run == nil {
		panic("demo: registered demo needs a name and a run function")
	}
	if _, ok := r.index[d.Name]; ok {
		panic("demo: duplicate demo name " + d.Name)
	}
	r.index[d.Name] = len(r.demos)
	r.demos = append(r.demos, d)
}

// Lookup returns the demo with the given name.
// Returns DEMO_NOT_FOUND with the list of valid names on a miss.
func (r *Registry) Lookup(name string) (Demo, error) {
	i, ok := r.index[name]
	if !ok {
		return Demo{}, errors.New(errors.ErrCodeDemoNotFound,
			"unknown demo %q (available: %s)", name, strings.Join(r.Names(), ", "))
	}
	return r.demos[i], nil
}

// All returns every demo in registration order.
func (r *Registry) All() []Demo {
	return r.demos
}

// ByTopic returns the demos with the given topic, in registration order.
func (r *Registry) ByTopic(topic Topic) []Demo {
	var out []Demo
	for _, d := range r.demos {
		if d.Topic == topic {
			out = append(out, d)
		}
	}
	return out
}

// Names returns every demo name in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.demos))
	for i, d := range r.demos {
		names[i] = d.Name
	}
	return names
}

// Len returns the number of registered demos.
func (r *Registry) Len() int {
	return len(r.demos)
}
