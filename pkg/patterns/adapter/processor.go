package adapter

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"patternbook/pkg/errors"
)

// Processor is client code written only against the modern Gateway
// interface. Swapping the gateway (native or adapted) never changes it.
type Processor struct {
	gateway Gateway
	out     io.Writer
}

// NewProcessor creates a processor writing its narration to out.
func NewProcessor(out io.Writer) *Processor {
	return &Processor{out: out}
}

// SetGateway replaces the active gateway.
func (p *Processor) SetGateway(g Gateway) {
	p.gateway = g
	fmt.Fprintf(p.out, "processor: using %s gateway\n", g.Kind())
}

// Transaction runs a payment end to end and returns the transaction ID.
// Returns INVALID_INPUT when no gateway is configured.
func (p *Processor) Transaction(amount float64, method string) (string, error) {
	if p.gateway == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "no payment gateway configured")
	}

	id := uuid.NewString()
	fmt.Fprintf(p.out, "processor: transaction %s\n", id)

	if err := p.gateway.ProcessPayment(amount, method); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "process payment %s", id)
	}

	status := p.gateway.TransactionStatus(id)
	fmt.Fprintf(p.out, "processor: transaction %s status %s\n", id, status)
	return id, nil
}
