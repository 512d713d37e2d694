package decorator

import (
	"strings"
	"testing"

	"patternbook/pkg/errors"
)

func TestParseChainCoffee(t *testing.T) {
	spec, err := ParseChain([]byte(`
kind: coffee
base: espresso
steps:
  - milk
  - whipped-cream
`))
	if err != nil {
		t.Fatal(err)
	}

	b, err := spec.BuildBeverage()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := b.Description(), "Espresso + Milk + Whipped Cream"; got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
	if got, want := b.Cost(), 4.50; got != want {
		t.Errorf("Cost() = %.2f, want %.2f", got, want)
	}
}

func TestParseChainTextWithOptions(t *testing.T) {
	spec, err := ParseChain([]byte(`
kind: text
input: "Hello World"
steps:
  - uppercase
  - name: caesar
    shift: 5
`))
	if err != nil {
		t.Fatal(err)
	}

	p, err := spec.BuildProcessor()
	if err != nil {
		t.Fatal(err)
	}
	if got, want := p.Process(spec.Input), "MJQQT BTWQI"; got != want {
		t.Errorf("Process(%q) = %q, want %q", spec.Input, got, want)
	}
	if got, want := p.Info(), "plain -> uppercase -> caesar"; got != want {
		t.Errorf("Info() = %q, want %q", got, want)
	}
}

func TestParseChainErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing kind", "steps: [milk]"},
		{"unknown kind", "kind: tea"},
		{"malformed", "kind: [oops"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseChain([]byte(tt.yaml))
			if !errors.Is(err, errors.ErrCodeInvalidChain) {
				t.Errorf("ParseChain error = %v, want INVALID_CHAIN", err)
			}
		})
	}
}

func TestBuildRejectsUnknownStep(t *testing.T) {
	spec := ChainSpec{Kind: "coffee", Steps: []Step{{Name: "oat-milk"}}}
	if _, err := spec.BuildBeverage(); !errors.Is(err, errors.ErrCodeInvalidChain) {
		t.Errorf("BuildBeverage error = %v, want INVALID_CHAIN", err)
	}

	spec = ChainSpec{Kind: "text", Steps: []Step{{Name: "reverse"}}}
	if _, err := spec.BuildProcessor(); !errors.Is(err, errors.ErrCodeInvalidChain) {
		t.Errorf("BuildProcessor error = %v, want INVALID_CHAIN", err)
	}
}

func TestBuildRejectsKindMismatch(t *testing.T) {
	spec := ChainSpec{Kind: "text"}
	if _, err := spec.BuildBeverage(); !errors.Is(err, errors.ErrCodeInvalidChain) {
		t.Errorf("BuildBeverage on text chain = %v, want INVALID_CHAIN", err)
	}
}

func TestChainLayersOutermostFirst(t *testing.T) {
	spec := ChainSpec{Kind: "coffee", Steps: []Step{{Name: "milk"}, {Name: "sugar"}}}
	got := strings.Join(spec.Layers(), ",")
	if want := "sugar,milk,simple"; got != want {
		t.Errorf("Layers() = %s, want %s", got, want)
	}
}
