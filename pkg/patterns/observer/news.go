package observer

import (
	"fmt"
	"io"
)

// NewsAgency publishes headlines to its subscribed channels.
type NewsAgency struct {
	Subject
	name string
}

// NewNewsAgency creates a named agency with no subscribers.
func NewNewsAgency(name string) *NewsAgency {
	return &NewsAgency{name: name}
}

// Publish broadcasts a headline to all subscribed channels.
func (a *NewsAgency) Publish(headline string) {
	a.Broadcast(fmt.Sprintf("[%s] %s", a.name, headline))
}

// Channel is a news channel printing received headlines.
type Channel struct {
	Name string
	Out  io.Writer

	received []string
}

// Notify implements Observer.
func (c *Channel) Notify(event string) {
	c.received = append(c.received, event)
	fmt.Fprintf(c.Out, "%s airs: %s\n", c.Name, event)
}

// Received returns the headlines seen so far, in delivery order.
func (c *Channel) Received() []string {
	return c.received
}
