package decorator

import (
	"gopkg.in/yaml.v3"

	"patternbook/pkg/errors"
)

// Step is one wrapper in a chain spec file. In YAML a step is either a bare
// name ("uppercase") or a mapping with options ({name: caesar, shift: 5}).
type Step struct {
	Name  string `yaml:"name"`
	Shift int    `yaml:"shift"`
}

// UnmarshalYAML accepts both the scalar and the mapping form.
func (s *Step) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		s.Name = node.Value
		return nil
	}
	type raw Step
	return node.Decode((*raw)(s))
}

// ChainSpec is a decorator chain described in a YAML file, built bottom-up:
// the base first, then each step wrapping everything before it.
type ChainSpec struct {
	// Kind selects the chain family: "coffee" or "text".
	Kind string `yaml:"kind"`
	// Base names the innermost capability. Coffee: "simple" or "espresso";
	// text: "plain" (the default).
	Base string `yaml:"base"`
	// Input is the text run through a text chain.
	Input string `yaml:"input"`
	// Steps wrap the base in order, first step innermost.
	Steps []Step `yaml:"steps"`
}

// ParseChain decodes a YAML chain spec and validates its kind.
func ParseChain(data []byte) (ChainSpec, error) {
	var spec ChainSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return ChainSpec{}, errors.Wrap(errors.ErrCodeInvalidChain, err, "malformed chain file")
	}
	switch spec.Kind {
	case "coffee", "text":
	case "":
		return ChainSpec{}, errors.New(errors.ErrCodeInvalidChain, "chain file missing kind (coffee or text)")
	default:
		return ChainSpec{}, errors.New(errors.ErrCodeInvalidChain, "unknown chain kind %q", spec.Kind)
	}
	return spec, nil
}

// BuildBeverage assembles a coffee chain from the spec.
func (c ChainSpec) BuildBeverage() (Beverage, error) {
	if c.Kind != "coffee" {
		return nil, errors.New(errors.ErrCodeInvalidChain, "chain kind %q is not a coffee chain", c.Kind)
	}

	var b Beverage
	switch c.Base {
	case "", "simple":
		b = SimpleCoffee{}
	case "espresso":
		b = Espresso{}
	default:
		return nil, errors.New(errors.ErrCodeInvalidChain, "unknown coffee base %q", c.Base)
	}

	for _, s := range c.Steps {
		switch s.Name {
		case "milk":
			b = WithMilk(b)
		case "sugar":
			b = WithSugar(b)
		case "vanilla":
			b = WithVanilla(b)
		case "whipped-cream":
			b = WithWhippedCream(b)
		default:
			return nil, errors.New(errors.ErrCodeInvalidChain, "unknown coffee step %q", s.Name)
		}
	}
	return b, nil
}

// BuildProcessor assembles a text chain from the spec.
func (c ChainSpec) BuildProcessor() (Processor, error) {
	if c.Kind != "text" {
		return nil, errors.New(errors.ErrCodeInvalidChain, "chain kind %q is not a text chain", c.Kind)
	}
	if c.Base != "" && c.Base != "plain" {
		return nil, errors.New(errors.ErrCodeInvalidChain, "unknown text base %q", c.Base)
	}

	var p Processor = Plain{}
	for _, s := range c.Steps {
		switch s.Name {
		case "uppercase":
			p = Uppercase(p)
		case "caesar":
			p = Caesar(p, s.Shift)
		case "squeeze":
			p = Squeeze(p)
		default:
			return nil, errors.New(errors.ErrCodeInvalidChain, "unknown text step %q", s.Name)
		}
	}
	return p, nil
}

// Layers returns the chain layers outermost first, base last, for diagrams.
func (c ChainSpec) Layers() []string {
	layers := make([]string, 0, len(c.Steps)+1)
	for i := len(c.Steps) - 1; i >= 0; i-- {
		layers = append(layers, c.Steps[i].Name)
	}
	base := c.Base
	if base == "" {
		if c.Kind == "coffee" {
			base = "simple"
		} else {
			base = "plain"
		}
	}
	return append(layers, base)
}
