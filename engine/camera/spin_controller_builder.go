package camera

import (
	"github.com/shota-hamamatsu/camera360controls/engine/input"
)

// SpinControllerOption is a functional option for configuring a SpinController.
type SpinControllerOption func(*spinControllerImpl)

// WithSurface attaches the controller to the given surface immediately after
// construction.
//
// Parameters:
//   - surface: the input surface to attach to
//
// Returns:
//   - SpinControllerOption: functional option to attach at construction
func WithSurface(surface input.Surface) SpinControllerOption {
	return func(sc *spinControllerImpl) {
		sc.initialSurface = surface
	}
}

// WithRotateSensitivity sets the rotation sensitivity.
//
// Parameters:
//   - sensitivity: radians per input unit of pointer movement
//
// Returns:
//   - SpinControllerOption: functional option to set the rotation sensitivity
func WithRotateSensitivity(sensitivity float32) SpinControllerOption {
	return func(sc *spinControllerImpl) {
		sc.rotateSensitivity = sensitivity
	}
}

// WithZoomEnabled enables or disables wheel zoom.
//
// Parameters:
//   - enabled: true to let wheel events adjust the field of view
//
// Returns:
//   - SpinControllerOption: functional option to set zoom availability
func WithZoomEnabled(enabled bool) SpinControllerOption {
	return func(sc *spinControllerImpl) {
		sc.zoomEnabled = enabled
	}
}

// WithZoomSensitivity sets the field-of-view change per unit of wheel delta.
//
// Parameters:
//   - sensitivity: fov units per wheel delta unit
//
// Returns:
//   - SpinControllerOption: functional option to set the zoom sensitivity
func WithZoomSensitivity(sensitivity float32) SpinControllerOption {
	return func(sc *spinControllerImpl) {
		sc.zoomSensitivity = sensitivity
	}
}

// WithFovRange sets the clamp range applied to the camera's field of view
// during zoom.
//
// Parameters:
//   - min: minimum field of view (inclusive)
//   - max: maximum field of view (inclusive)
//
// Returns:
//   - SpinControllerOption: functional option to set the fov bounds
func WithFovRange(min, max float32) SpinControllerOption {
	return func(sc *spinControllerImpl) {
		sc.fovMin = min
		sc.fovMax = max
	}
}

// WithMouseButtonAction binds an action to a mouse button. Only ActionRotate
// has an effect; any other action leaves the button inert.
//
// Parameters:
//   - button: the mouse button identity
//   - action: the action to bind
//
// Returns:
//   - SpinControllerOption: functional option to set the button binding
func WithMouseButtonAction(button input.MouseButton, action Action) SpinControllerOption {
	return func(sc *spinControllerImpl) {
		sc.mouseButtonActions[button] = action
	}
}

// WithTouchAction binds an action to single-finger touch. Only ActionRotate
// has an effect; any other action leaves touch input inert.
//
// Parameters:
//   - action: the action to bind
//
// Returns:
//   - SpinControllerOption: functional option to set the touch binding
func WithTouchAction(action Action) SpinControllerOption {
	return func(sc *spinControllerImpl) {
		sc.touchAction = action
	}
}
