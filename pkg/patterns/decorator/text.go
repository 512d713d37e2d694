package decorator

// Processor is the capability decorated by the text pipeline wrappers.
type Processor interface {
	// Process runs the accumulated transforms over s, innermost first.
	Process(s string) string
	// Info returns the transform chain description, innermost first.
	Info() string
}

// Plain is the identity base of every text pipeline.
type Plain struct{}

func (Plain) Process(s string) string { return s }
func (Plain) Info() string            { return "plain" }

// transform is the shared text wrapper: one owned inner processor plus this
// wrapper's transform and label.
type transform struct {
	inner Processor
	label string
	apply func(string) string
}

func newTransform(inner Processor, label string, apply func(string) string) *transform {
	if inner == nil {
		panic("decorator: nil inner processor")
	}
	return &transform{inner: inner, label: label, apply: apply}
}

func (t *transform) Process(s string) string { return t.apply(t.inner.Process(s)) }
func (t *transform) Info() string            { return t.inner.Info() + " -> " + t.label }

// Uppercase wraps inner with ASCII upper-casing.
func Uppercase(inner Processor) Processor {
	return newTransform(inner, "uppercase", func(s string) string {
		b := []byte(s)
		for i, c := range b {
			if c >= 'a' && c <= 'z' {
				b[i] = c - 'a' + 'A'
			}
		}
		return string(b)
	})
}

// Caesar wraps inner with a Caesar cipher over ASCII letters.
// The shift is normalized, so negative values rotate backwards.
func Caesar(inner Processor, shift int) Processor {
	n := byte(((shift % 26) + 26) % 26)
	label := "caesar"
	return newTransform(inner, label, func(s string) string {
		b := []byte(s)
		for i, c := range b {
			switch {
			case c >= 'a' && c <= 'z':
				b[i] = (c-'a'+n)%26 + 'a'
			case c >= 'A' && c <= 'Z':
				b[i] = (c-'A'+n)%26 + 'A'
			}
		}
		return string(b)
	})
}

// Squeeze wraps inner with run-of-spaces collapsing, the corpus's stand-in
// for compression.
func Squeeze(inner Processor) Processor {
	return newTransform(inner, "squeeze", func(s string) string {
		out := make([]byte, 0, len(s))
		prevSpace := false
		for i := 0; i < len(s); i++ {
			if s[i] == ' ' {
				if !prevSpace {
					out = append(out, ' ')
				}
				prevSpace = true
				continue
			}
			out = append(out, s[i])
			prevSpace = false
		}
		return string(out)
	})
}
