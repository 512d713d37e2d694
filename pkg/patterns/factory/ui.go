package factory

import (
	"fmt"
	"io"

	"patternbook/pkg/errors"
)

// Button is one member of the UI component family.
type Button interface {
	Render(w io.Writer)
	Click(w io.Writer)
}

// Checkbox is the other member of the UI component family.
type Checkbox interface {
	Render(w io.Writer)
	Toggle(w io.Writer)
}

// UIFactory is the abstract factory: one implementation per platform,
// producing components that are guaranteed to match.
type UIFactory interface {
	Platform() string
	NewButton(label string) Button
	NewCheckbox(label string) Checkbox
}

type windowsButton struct{ label string }

func (b windowsButton) Render(w io.Writer) {
	fmt.Fprintf(w, "[windows] button %q with square corners\n", b.label)
}

func (b windowsButton) Click(w io.Writer) {
	fmt.Fprintf(w, "[windows] button %q clicked\n", b.label)
}

type windowsCheckbox struct{ label string }

func (c windowsCheckbox) Render(w io.Writer) {
	fmt.Fprintf(w, "[windows] checkbox %q\n", c.label)
}

func (c windowsCheckbox) Toggle(w io.Writer) {
	fmt.Fprintf(w, "[windows] checkbox %q toggled\n", c.label)
}

type macButton struct{ label string }

func (b macButton) Render(w io.Writer) {
	fmt.Fprintf(w, "[mac] button %q with rounded corners\n", b.label)
}

func (b macButton) Click(w io.Writer) {
	fmt.Fprintf(w, "[mac] button %q clicked\n", b.label)
}

type macCheckbox struct{ label string }

func (c macCheckbox) Render(w io.Writer) {
	fmt.Fprintf(w, "[mac] checkbox %q\n", c.label)
}

func (c macCheckbox) Toggle(w io.Writer) {
	fmt.Fprintf(w, "[mac] checkbox %q toggled\n", c.label)
}

// WindowsFactory produces the windows component family.
type WindowsFactory struct{}

func (WindowsFactory) Platform() string { return "windows" }

func (WindowsFactory) NewButton(label string) Button     { return windowsButton{label: label} }
func (WindowsFactory) NewCheckbox(label string) Checkbox { return windowsCheckbox{label: label} }

// MacFactory produces the mac component family.
type MacFactory struct{}

func (MacFactory) Platform() string { return "mac" }

func (MacFactory) NewButton(label string) Button     { return macButton{label: label} }
func (MacFactory) NewCheckbox(label string) Checkbox { return macCheckbox{label: label} }

// UIFactoryFor returns the factory for a platform name.
func UIFactoryFor(platform string) (UIFactory, error) {
	switch platform {
	case "windows":
		return WindowsFactory{}, nil
	case "mac":
		return MacFactory{}, nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unknown platform %q (available: windows, mac)", platform)
	}
}
