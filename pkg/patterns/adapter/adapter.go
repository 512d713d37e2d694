// Package adapter implements the adapter teaching example: a legacy payment
// gateway with a fixed call shape, wrapped so that clients written against
// the modern gateway interface can drive it unchanged.
//
// Gateways only narrate what a real integration would do; no money moves.
package adapter

import (
	"fmt"
	"io"
)

// Gateway is the modern payment interface expected by client code.
type Gateway interface {
	// ProcessPayment charges amount via the given method.
	ProcessPayment(amount float64, method string) error
	// TransactionStatus returns the status string for a transaction ID.
	TransactionStatus(id string) string
	// Kind identifies the gateway implementation.
	Kind() string
}

// LegacyGateway is the old system with its fixed, incompatible call shape.
// It knows currencies, not payment methods, and reports status as a bool.
type LegacyGateway struct {
	Out io.Writer
}

// MakePayment processes amount in the given currency through the old system.
func (g *LegacyGateway) MakePayment(amount float64, currency string) {
	fmt.Fprintf(g.Out, "legacy gateway: processing %s %.2f through old system\n", currency, amount)
}

// CheckStatus reports whether the given transaction settled.
func (g *LegacyGateway) CheckStatus(id string) bool {
	fmt.Fprintf(g.Out, "legacy gateway: checking status for %s\n", id)
	return true
}

// LegacyAdapter translates modern Gateway calls onto a LegacyGateway.
// It owns the wrapped gateway for its lifetime.
type LegacyAdapter struct {
	legacy   *LegacyGateway
	currency string
	out      io.Writer
}

// NewLegacyAdapter wraps legacy, converting methods to the given currency.
func NewLegacyAdapter(legacy *LegacyGateway, currency string, out io.Writer) *LegacyAdapter {
	if legacy == nil {
		panic("adapter: nil legacy gateway")
	}
	return &LegacyAdapter{legacy: legacy, currency: currency, out: out}
}

// ProcessPayment converts the modern call into the legacy call shape.
func (a *LegacyAdapter) ProcessPayment(amount float64, method string) error {
	fmt.Fprintf(a.out, "adapter: converting %s payment to %s legacy call\n", method, a.currency)
	a.legacy.MakePayment(amount, a.currency)
	return nil
}

// TransactionStatus converts the legacy bool status into a status string.
func (a *LegacyAdapter) TransactionStatus(id string) string {
	if a.legacy.CheckStatus(id) {
		return "SUCCESS"
	}
	return "FAILED"
}

// Kind identifies the adapted gateway.
func (a *LegacyAdapter) Kind() string { return "legacy (adapted)" }

// ModernGateway speaks the modern interface natively.
type ModernGateway struct {
	Out io.Writer
}

// ProcessPayment charges amount via the given method.
func (g *ModernGateway) ProcessPayment(amount float64, method string) error {
	fmt.Fprintf(g.Out, "modern gateway: processing $%.2f via %s\n", amount, method)
	return nil
}

// TransactionStatus returns the real-time status for a transaction ID.
func (g *ModernGateway) TransactionStatus(id string) string {
	fmt.Fprintf(g.Out, "modern gateway: real-time status for %s\n", id)
	return "COMPLETED"
}

// Kind identifies the gateway.
func (g *ModernGateway) Kind() string { return "modern" }
