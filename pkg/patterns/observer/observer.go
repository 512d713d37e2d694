// Package observer implements the observer teaching examples: a classic
// subject/observer pair, a news agency broadcasting headlines, a stock
// market pushing price ticks, and a callback event bus.
//
// Everything is single-threaded; notification order is attach order.
package observer

// Observer receives events broadcast by a Subject.
type Observer interface {
	// Notify delivers one event to the observer.
	Notify(event string)
}

// Subject keeps an ordered set of observers and broadcasts events to them.
// The zero value is ready to use. Embed it to make a type observable.
type Subject struct {
	observers []Observer
}

// Attach registers an observer. Observers are notified in attach order.
func (s *Subject) Attach(o Observer) {
	s.observers = append(s.observers, o)
}

// Detach removes a previously attached observer by identity.
// Detaching an unknown observer is a no-op.
func (s *Subject) Detach(o Observer) {
	for i, cur := range s.observers {
		if cur == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return
		}
	}
}

// ObserverCount returns the number of attached observers.
func (s *Subject) ObserverCount() int {
	return len(s.observers)
}

// Broadcast delivers event to every attached observer in order.
func (s *Subject) Broadcast(event string) {
	for _, o := range s.observers {
		o.Notify(event)
	}
}
