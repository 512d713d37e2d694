// Package strategy implements the strategy teaching examples: swappable
// payment methods behind a shopping cart, interchangeable sorting
// algorithms, and tag-wrapping compression stand-ins.
package strategy

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"patternbook/pkg/errors"
)

// Payment is a swappable payment algorithm.
type Payment interface {
	// Pay charges amount, narrating to w, and returns a receipt ID.
	Pay(w io.Writer, amount float64) (string, error)
	// Method returns the payment method name.
	Method() string
	// Details returns a safe one-line summary (no secrets).
	Details() string
}

// CreditCard pays with a card; only the last four digits are ever shown.
type CreditCard struct {
	Number string
	Holder string
	Expiry string
}

func (c CreditCard) Method() string { return "credit card" }

func (c CreditCard) Details() string {
	return fmt.Sprintf("credit card ending in %s (expires %s)", lastFour(c.Number), c.Expiry)
}

// Pay implements Payment.
func (c CreditCard) Pay(w io.Writer, amount float64) (string, error) {
	id := uuid.NewString()
	fmt.Fprintf(w, "charging $%.2f to card ****%s held by %s\n", amount, lastFour(c.Number), c.Holder)
	return id, nil
}

// PayPal pays through a PayPal account.
type PayPal struct {
	Email string
}

func (p PayPal) Method() string  { return "paypal" }
func (p PayPal) Details() string { return "paypal account " + p.Email }

// Pay implements Payment.
func (p PayPal) Pay(w io.Writer, amount float64) (string, error) {
	id := uuid.NewString()
	fmt.Fprintf(w, "authorizing $%.2f via paypal account %s\n", amount, p.Email)
	return id, nil
}

// BankTransfer pays by wiring from a bank account.
type BankTransfer struct {
	Account string
	Routing string
	Bank    string
}

func (b BankTransfer) Method() string { return "bank transfer" }

func (b BankTransfer) Details() string {
	return fmt.Sprintf("bank transfer from %s (account ****%s)", b.Bank, lastFour(b.Account))
}

// Pay implements Payment.
func (b BankTransfer) Pay(w io.Writer, amount float64) (string, error) {
	id := uuid.NewString()
	fmt.Fprintf(w, "scheduling $%.2f transfer from %s ****%s\n", amount, b.Bank, lastFour(b.Account))
	return id, nil
}

func lastFour(s string) string {
	if len(s) <= 4 {
		return s
	}
	return s[len(s)-4:]
}

// Item is one cart line.
type Item struct {
	Name  string
	Price float64
}

// Cart accumulates items and checks out with the configured strategy.
// The zero value is ready to use.
type Cart struct {
	items   []Item
	payment Payment
}

// Add puts an item in the cart.
func (c *Cart) Add(name string, price float64) {
	c.items = append(c.items, Item{Name: name, Price: price})
}

// Items returns the cart contents in insertion order.
func (c *Cart) Items() []Item {
	return c.items
}

// Total returns the sum of all item prices.
func (c *Cart) Total() float64 {
	var total float64
	for _, it := range c.items {
		total += it.Price
	}
	return total
}

// SetPayment swaps the payment strategy. The cart itself never changes.
func (c *Cart) SetPayment(p Payment) {
	c.payment = p
}

// Checkout pays the total with the configured strategy and returns the
// receipt ID. Returns INVALID_INPUT when no strategy is set.
func (c *Cart) Checkout(w io.Writer) (string, error) {
	if c.payment == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "no payment method selected")
	}
	fmt.Fprintf(w, "checking out %d items, total $%.2f\n", len(c.items), c.Total())
	fmt.Fprintln(w, c.payment.Details())
	return c.payment.Pay(w, c.Total())
}
