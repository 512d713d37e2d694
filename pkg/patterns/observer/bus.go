package observer

// Bus is the callback flavor of the pattern: handlers subscribe to topics
// and Emit fans a payload out to every handler of that topic in
// subscription order.
type Bus struct {
	handlers map[string][]func(payload string)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[string][]func(string))}
}

// On registers fn for the given topic.
func (b *Bus) On(topic string, fn func(payload string)) {
	b.handlers[topic] = append(b.handlers[topic], fn)
}

// Emit calls every handler registered for topic and returns how many ran.
func (b *Bus) Emit(topic, payload string) int {
	hs := b.handlers[topic]
	for _, fn := range hs {
		fn(payload)
	}
	return len(hs)
}

// Topics returns the number of topics with at least one handler.
func (b *Bus) Topics() int {
	return len(b.handlers)
}
