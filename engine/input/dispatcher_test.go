package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversInRegistrationOrder(t *testing.T) {
	d := NewDispatcher()

	var order []int
	first := &Listener{Handle: func(Event) { order = append(order, 1) }}
	second := &Listener{Handle: func(Event) { order = append(order, 2) }}
	d.Add(Move, first)
	d.Add(Move, second)

	d.Dispatch(Event{Kind: Move})
	assert.Equal(t, []int{1, 2}, order)
}

func TestDispatcherKindIsolation(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	l := &Listener{Handle: func(ev Event) {
		calls++
		assert.Equal(t, Wheel, ev.Kind)
	}}
	d.Add(Wheel, l)

	d.Dispatch(Event{Kind: Move})
	d.Dispatch(Event{Kind: Wheel})
	assert.Equal(t, 1, calls)
}

func TestDispatcherDuplicateAddIsNoOp(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	l := &Listener{Handle: func(Event) { calls++ }}
	d.Add(Press, l)
	d.Add(Press, l)

	d.Dispatch(Event{Kind: Press})
	assert.Equal(t, 1, calls)
}

func TestDispatcherRemove(t *testing.T) {
	d := NewDispatcher()

	calls := 0
	l := &Listener{Handle: func(Event) { calls++ }}
	d.Add(Press, l)
	d.Remove(Press, l)
	d.Dispatch(Event{Kind: Press})
	assert.Equal(t, 0, calls)

	// Double removal and removal of an unregistered listener are no-ops.
	d.Remove(Press, l)
	d.Remove(Release, &Listener{Handle: func(Event) {}})
}

func TestDispatcherSelfRemovalMidDispatch(t *testing.T) {
	d := NewDispatcher()

	var selfRemoving *Listener
	firstCalls, secondCalls := 0, 0
	selfRemoving = &Listener{Handle: func(Event) {
		firstCalls++
		d.Remove(Move, selfRemoving)
	}}
	after := &Listener{Handle: func(Event) { secondCalls++ }}
	d.Add(Move, selfRemoving)
	d.Add(Move, after)

	d.Dispatch(Event{Kind: Move})
	assert.Equal(t, 1, firstCalls)
	assert.Equal(t, 1, secondCalls, "later listeners still run after a self-removal")

	d.Dispatch(Event{Kind: Move})
	assert.Equal(t, 1, firstCalls, "removed listener no longer fires")
	assert.Equal(t, 2, secondCalls)
}
