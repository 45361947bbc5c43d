package input

// Dispatcher is a per-kind listener registry with synchronous FIFO delivery.
// Surface implementations embed or hold one and forward their host events
// through Dispatch. The zero value is not usable; create with NewDispatcher.
//
// Dispatcher is not internally synchronized: surfaces deliver events from a
// single host loop, and listener registration happens from that same callback
// context, so there is no concurrent access to serialize.
type Dispatcher struct {
	listeners map[EventKind][]*Listener
}

// NewDispatcher creates an empty Dispatcher.
//
// Returns:
//   - *Dispatcher: the newly created dispatcher
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventKind][]*Listener),
	}
}

// Add registers a listener for the given event kind.
// Adding the same listener twice for the same kind is a no-op.
//
// Parameters:
//   - kind: the event kind to listen for
//   - l: the listener to register
func (d *Dispatcher) Add(kind EventKind, l *Listener) {
	if l == nil {
		return
	}
	for _, existing := range d.listeners[kind] {
		if existing == l {
			return
		}
	}
	d.listeners[kind] = append(d.listeners[kind], l)
}

// Remove unregisters a listener for the given event kind.
// Removing a listener that is not registered is a no-op.
//
// Parameters:
//   - kind: the event kind the listener was registered for
//   - l: the listener to remove
func (d *Dispatcher) Remove(kind EventKind, l *Listener) {
	ls := d.listeners[kind]
	for i, existing := range ls {
		if existing == l {
			d.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers an event to all listeners registered for its kind, in
// registration order, synchronously on the calling goroutine.
//
// Parameters:
//   - ev: the event to deliver
func (d *Dispatcher) Dispatch(ev Event) {
	// Remove allocates a fresh slice, so a listener unregistering itself
	// mid-dispatch does not shift entries under this loop.
	for _, l := range d.listeners[ev.Kind] {
		if l.Handle != nil {
			l.Handle(ev)
		}
	}
}
