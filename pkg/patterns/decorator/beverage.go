// Package decorator implements the decorator teaching examples: a coffee
// order built from an ordered chain of add-on wrappers, and a text pipeline
// built from an ordered chain of transform wrappers.
//
// # Chain contract
//
// A wrapper holds exactly one inner capability, transferred at construction;
// the wrapper is its sole owner for its lifetime. Description and cost are
// accumulated inner-to-outer, and Prepare always runs the innermost step
// first. Wrapping order is caller-determined and observable: two chains with
// the same wrappers in different orders produce different descriptions, and
// for order-sensitive transforms (Caesar before vs. after case-folding)
// different outputs. A chain is immutable once constructed.
//
// Constructing a wrapper around a nil inner capability is a programming
// error and panics.
package decorator

import (
	"fmt"
	"io"
)

// Beverage is the capability decorated by the coffee wrappers.
type Beverage interface {
	// Description returns the accumulated order description.
	Description() string
	// Cost returns the accumulated price in dollars.
	Cost() float64
	// Prepare writes the preparation steps to w, innermost first.
	Prepare(w io.Writer)
}

// SimpleCoffee is a plain black coffee base.
type SimpleCoffee struct{}

func (SimpleCoffee) Description() string { return "Simple Coffee" }
func (SimpleCoffee) Cost() float64       { return 2.0 }

func (SimpleCoffee) Prepare(w io.Writer) {
	fmt.Fprintln(w, "Brewing simple black coffee")
}

// Espresso is a single espresso shot base.
type Espresso struct{}

func (Espresso) Description() string { return "Espresso" }
func (Espresso) Cost() float64       { return 3.0 }

func (Espresso) Prepare(w io.Writer) {
	fmt.Fprintln(w, "Pulling espresso shot")
}

// addon is the shared wrapper: one owned inner beverage plus this wrapper's
// contribution to description, cost and preparation.
type addon struct {
	inner  Beverage
	suffix string
	delta  float64
	step   string
}

func newAddon(inner Beverage, suffix string, delta float64, step string) *addon {
	if inner == nil {
		panic("decorator: nil inner beverage")
	}
	return &addon{inner: inner, suffix: suffix, delta: delta, step: step}
}

func (a *addon) Description() string { return a.inner.Description() + " + " + a.suffix }
func (a *addon) Cost() float64       { return a.inner.Cost() + a.delta }

func (a *addon) Prepare(w io.Writer) {
	a.inner.Prepare(w)
	fmt.Fprintln(w, a.step)
}

// WithMilk wraps inner with steamed milk (+$0.50).
func WithMilk(inner Beverage) Beverage {
	return newAddon(inner, "Milk", 0.50, "Adding steamed milk")
}

// WithSugar wraps inner with sugar (+$0.20).
func WithSugar(inner Beverage) Beverage {
	return newAddon(inner, "Sugar", 0.20, "Stirring in sugar")
}

// WithVanilla wraps inner with vanilla syrup (+$0.70).
func WithVanilla(inner Beverage) Beverage {
	return newAddon(inner, "Vanilla", 0.70, "Adding vanilla syrup")
}

// WithWhippedCream wraps inner with whipped cream (+$1.00).
func WithWhippedCream(inner Beverage) Beverage {
	return newAddon(inner, "Whipped Cream", 1.00, "Topping with whipped cream")
}
