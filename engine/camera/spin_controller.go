package camera

import (
	"github.com/shota-hamamatsu/camera360controls/engine/input"
)

// Action is the control behavior bound to a mouse button or touch input.
// Only ActionRotate is meaningful to the SpinController; binding any other
// value makes that input inert (a documented no-op, not an error).
type Action int

const (
	// ActionNone disables the bound input.
	ActionNone Action = iota
	// ActionRotate makes the bound input drive free-look rotation.
	ActionRotate
)

// Notification identifies a SpinController lifecycle notification.
type Notification int

const (
	// NotificationStart fires when a drag gesture opens.
	NotificationStart Notification = iota
	// NotificationChange fires after each orientation update during a drag.
	NotificationChange
	// NotificationEnd fires when a drag gesture closes. See the SpinController
	// release handling note: end is emitted even when no gesture was open.
	NotificationEnd
)

// String returns the lowercase name of the notification kind.
func (n Notification) String() string {
	switch n {
	case NotificationStart:
		return "start"
	case NotificationChange:
		return "change"
	case NotificationEnd:
		return "end"
	default:
		return "unknown"
	}
}

// NotificationListener is a registered notification handler with a stable
// identity, keyed by pointer the same way input.Listener is.
type NotificationListener struct {
	// Handle is invoked synchronously for each emitted notification.
	Handle func(Notification)
}

// SpinController is a first-person free-look controller for a Camera. It
// translates pointer/touch drag input into yaw/pitch rotation about the
// camera's own position (no orbit target) and wheel input into field-of-view
// zoom.
//
// Yaw accumulates freely and is never clamped; pitch is clamped to
// [-π/2, π/2] after every update. At the start of each drag gesture both
// angles are re-derived from the camera's current facing direction, so
// orientation changes applied outside the controller are picked up without a
// visible snap.
//
// The controller is callback-driven and single-threaded: all state mutation
// happens synchronously inside surface event callbacks, delivered in host
// order. It holds no locks of its own; the Camera carries its own
// synchronization for readers on other goroutines.
type SpinController interface {
	// Attach registers the controller's input listeners on the given surface
	// and suppresses the surface's native gesture handling. If the controller
	// is already attached to a surface it detaches from it first.
	//
	// Parameters:
	//   - surface: the input surface to take pointer handling over from
	Attach(surface input.Surface)

	// Detach removes all listeners registered by Attach and restores the
	// surface's native gesture handling. Safe to call repeatedly; a no-op when
	// not attached.
	Detach()

	// Dispose releases the controller. Equivalent to Detach; the controller
	// holds no other resources.
	Dispose()

	// Attached reports whether the controller is currently bound to a surface.
	//
	// Returns:
	//   - bool: true while attached
	Attached() bool

	// Yaw returns the current horizontal angle in radians. Unbounded; free
	// rotation may accumulate past ±2π.
	//
	// Returns:
	//   - float32: yaw in radians
	Yaw() float32

	// Pitch returns the current vertical angle in radians, always within
	// [-π/2, π/2].
	//
	// Returns:
	//   - float32: pitch in radians
	Pitch() float32

	// Dragging reports whether a drag gesture is currently open.
	//
	// Returns:
	//   - bool: true between a qualifying press/touch-start and its release
	Dragging() bool

	// RotateSensitivity returns the rotation sensitivity in radians per input
	// unit of pointer movement.
	//
	// Returns:
	//   - float32: radians per input unit
	RotateSensitivity() float32

	// SetRotateSensitivity sets the rotation sensitivity.
	//
	// Parameters:
	//   - sensitivity: radians per input unit of pointer movement
	SetRotateSensitivity(sensitivity float32)

	// ZoomEnabled reports whether wheel zoom is active.
	//
	// Returns:
	//   - bool: true if wheel events adjust the field of view
	ZoomEnabled() bool

	// SetZoomEnabled enables or disables wheel zoom.
	//
	// Parameters:
	//   - enabled: true to let wheel events adjust the field of view
	SetZoomEnabled(enabled bool)

	// ZoomSensitivity returns the field-of-view change per unit of wheel delta.
	//
	// Returns:
	//   - float32: fov units per wheel delta unit
	ZoomSensitivity() float32

	// SetZoomSensitivity sets the field-of-view change per unit of wheel delta.
	//
	// Parameters:
	//   - sensitivity: fov units per wheel delta unit
	SetZoomSensitivity(sensitivity float32)

	// FovRange returns the clamp range applied to the camera's field of view
	// during zoom.
	//
	// Returns:
	//   - min, max: inclusive field-of-view bounds
	FovRange() (min, max float32)

	// SetFovRange sets the clamp range applied during zoom.
	//
	// Parameters:
	//   - min, max: inclusive field-of-view bounds
	SetFovRange(min, max float32)

	// MouseButtonAction returns the action bound to the given mouse button.
	//
	// Parameters:
	//   - button: the mouse button identity
	//
	// Returns:
	//   - Action: the bound action (ActionNone when unbound)
	MouseButtonAction(button input.MouseButton) Action

	// SetMouseButtonAction binds an action to a mouse button. Only
	// ActionRotate has an effect; any other action leaves the button inert.
	//
	// Parameters:
	//   - button: the mouse button identity
	//   - action: the action to bind
	SetMouseButtonAction(button input.MouseButton, action Action)

	// TouchAction returns the action bound to single-finger touch.
	//
	// Returns:
	//   - Action: the bound action
	TouchAction() Action

	// SetTouchAction binds an action to single-finger touch. Only ActionRotate
	// has an effect; any other action leaves touch input inert.
	//
	// Parameters:
	//   - action: the action to bind
	SetTouchAction(action Action)

	// On registers a listener for the given notification kind. Multiple
	// listeners are delivered in registration order, synchronously within the
	// triggering input callback.
	//
	// Parameters:
	//   - kind: the notification kind to listen for
	//   - l: the listener to register
	On(kind Notification, l *NotificationListener)

	// Off unregisters a listener previously added for the given kind. A no-op
	// when the listener is not registered.
	//
	// Parameters:
	//   - kind: the notification kind the listener was registered for
	//   - l: the listener to remove
	Off(kind Notification, l *NotificationListener)
}
