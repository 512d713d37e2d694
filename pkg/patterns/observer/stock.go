package observer

import (
	"fmt"
	"io"
)

// Tick is one stock price update.
type Tick struct {
	Symbol string
	Price  float64
}

// TickObserver receives typed price updates.
type TickObserver interface {
	OnTick(t Tick)
}

// StockMarket pushes price ticks to registered displays.
// It keeps the last price per symbol so late subscribers can query it.
type StockMarket struct {
	observers []TickObserver
	last      map[string]float64
}

// NewStockMarket creates an empty market.
func NewStockMarket() *StockMarket {
	return &StockMarket{last: make(map[string]float64)}
}

// Subscribe registers a display for all future ticks.
func (m *StockMarket) Subscribe(o TickObserver) {
	m.observers = append(m.observers, o)
}

// Unsubscribe removes a display by identity.
func (m *StockMarket) Unsubscribe(o TickObserver) {
	for i, cur := range m.observers {
		if cur == o {
			m.observers = append(m.observers[:i], m.observers[i+1:]...)
			return
		}
	}
}

// Update records a new price and pushes the tick to every display.
func (m *StockMarket) Update(symbol string, price float64) {
	m.last[symbol] = price
	t := Tick{Symbol: symbol, Price: price}
	for _, o := range m.observers {
		o.OnTick(t)
	}
}

// LastPrice returns the most recent price for symbol, if any.
func (m *StockMarket) LastPrice(symbol string) (float64, bool) {
	p, ok := m.last[symbol]
	return p, ok
}

// Display renders ticks to a writer and remembers the ticks it saw.
type Display struct {
	Name string
	Out  io.Writer

	ticks []Tick
}

// OnTick implements TickObserver.
func (d *Display) OnTick(t Tick) {
	d.ticks = append(d.ticks, t)
	fmt.Fprintf(d.Out, "%s: %s at %.2f\n", d.Name, t.Symbol, t.Price)
}

// Ticks returns the updates seen so far, in delivery order.
func (d *Display) Ticks() []Tick {
	return d.ticks
}
