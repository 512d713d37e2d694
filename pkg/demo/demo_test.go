package demo

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"patternbook/pkg/errors"
)

func noop(ctx context.Context, w io.Writer) error { return nil }

func TestRegistryOrderPreserved(t *testing.T) {
	r := NewRegistry()
	r.Register(Demo{Name: "b", Topic: TopicBasics, Run: noop})
	r.Register(Demo{Name: "a", Topic: TopicPatterns, Run: noop})
	r.Register(Demo{Name: "c", Topic: TopicBasics, Run: noop})

	if diff := cmp.Diff([]string{"b", "a", "c"}, r.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryLookup(t *testing.T) {
	r := NewRegistry()
	r.Register(Demo{Name: "shapes", Topic: TopicBasics, Run: noop})

	d, err := r.Lookup("shapes")
	if err != nil {
		t.Fatal(err)
	}
	if d.Name != "shapes" {
		t.Errorf("Lookup returned %q, want shapes", d.Name)
	}

	_, err = r.Lookup("nope")
	if !errors.Is(err, errors.ErrCodeDemoNotFound) {
		t.Errorf("Lookup(nope) error = %v, want DEMO_NOT_FOUND", err)
	}
	if !strings.Contains(err.Error(), "shapes") {
		t.Errorf("miss error should list valid names, got %v", err)
	}
}

func TestRegistryByTopic(t *testing.T) {
	r := NewRegistry()
	r.Register(Demo{Name: "a", Topic: TopicBasics, Run: noop})
	r.Register(Demo{Name: "b", Topic: TopicPatterns, Run: noop})
	r.Register(Demo{Name: "c", Topic: TopicPatterns, Run: noop})

	got := r.ByTopic(TopicPatterns)
	if len(got) != 2 || got[0].Name != "b" || got[1].Name != "c" {
		t.Errorf("ByTopic(patterns) = %v, want [b c]", got)
	}
	if r.ByTopic(TopicConcepts) != nil {
		t.Error("ByTopic with no matches should return nil")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("registering a duplicate name should panic")
		}
	}()
	r := NewRegistry()
	r.Register(Demo{Name: "x", Run: noop})
	r.Register(Demo{Name: "x", Run: noop})
}
