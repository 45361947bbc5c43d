// Package input defines the event protocol between an input surface (a window,
// a canvas, a poll-based game loop) and the consumers that react to pointer,
// touch, and wheel input. Surfaces deliver events synchronously, in the order
// the host produces them; consumers register listeners per event kind.
package input

// EventKind identifies the type of an input event.
type EventKind int

const (
	// Press is a mouse button press carrying the button identity and cursor position.
	Press EventKind = iota
	// Move is a cursor movement carrying the new cursor position.
	Move
	// Release is a mouse button release.
	Release
	// Leave fires when the cursor leaves the surface.
	Leave
	// TouchStart fires when a finger goes down; Touches carries the count after the change.
	TouchStart
	// TouchMove fires when the tracked (first) finger moves.
	TouchMove
	// TouchEnd fires when a finger lifts; Touches carries the count after the change.
	TouchEnd
	// Wheel is a scroll event carrying a signed delta.
	Wheel
)

// String returns the lowercase name of the event kind.
func (k EventKind) String() string {
	switch k {
	case Press:
		return "press"
	case Move:
		return "move"
	case Release:
		return "release"
	case Leave:
		return "leave"
	case TouchStart:
		return "touchstart"
	case TouchMove:
		return "touchmove"
	case TouchEnd:
		return "touchend"
	case Wheel:
		return "wheel"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button on press/release events.
// Values match GLFW mouse button constants.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
type MouseButton int

const (
	MouseButtonLeft   MouseButton = 0
	MouseButtonRight  MouseButton = 1
	MouseButtonMiddle MouseButton = 2
)

// Event is a single input event delivered to listeners.
// X and Y carry the surface-local coordinate for press/move/release/touch
// kinds; Delta carries the scroll amount for wheel events; Button carries the
// button identity for press/release; Touches carries the number of active
// touch points after the change for touch kinds.
type Event struct {
	Kind    EventKind
	X, Y    float32
	Delta   float32
	Button  MouseButton
	Touches int
}

// Listener is a registered handler with a stable identity. Registration and
// removal are keyed by the *Listener pointer, so a handler created once can be
// removed later without relying on func value comparison (which Go does not
// support). Consumers should create their listeners once and reuse them across
// attach/detach cycles.
type Listener struct {
	// Handle is invoked synchronously for each delivered event.
	Handle func(Event)
}

// Surface is the capability an input event producer exposes to consumers.
// Implementations deliver events synchronously from their host loop; listener
// registration and removal are safe to call from the delivering callback
// context.
type Surface interface {
	// AddListener registers a listener for the given event kind.
	// Registering the same listener twice for the same kind is a no-op.
	//
	// Parameters:
	//   - kind: the event kind to listen for
	//   - l: the listener to register
	AddListener(kind EventKind, l *Listener)

	// RemoveListener unregisters a listener previously added for the given
	// kind. Removing a listener that is not registered is a no-op.
	//
	// Parameters:
	//   - kind: the event kind the listener was registered for
	//   - l: the listener to remove
	RemoveListener(kind EventKind, l *Listener)

	// SetNativeGestures enables or disables the surface's built-in gesture and
	// scroll handling. Consumers that take over pointer handling disable native
	// gestures while attached and restore them on detach. Surfaces without any
	// built-in handling track the flag and otherwise ignore it.
	//
	// Parameters:
	//   - enabled: true to restore native handling, false to suppress it
	SetNativeGestures(enabled bool)
}
