package camera

import (
	"math"

	"github.com/shota-hamamatsu/camera360controls/common"
	"github.com/shota-hamamatsu/camera360controls/engine/input"
)

// spinControllerImpl is the single implementation of SpinController.
//
// Unlike the Camera it carries no mutex: per the concurrency model every state
// mutation happens synchronously inside surface callbacks delivered by one
// host loop, so there is no concurrent access to serialize.
type spinControllerImpl struct {
	cam     Camera
	surface input.Surface

	// Orientation state. Yaw is never clamped; pitch is re-clamped into
	// [-π/2, π/2] after every update.
	yaw   float32
	pitch float32

	// Drag session. lastX/lastY hold the last observed pointer coordinate and
	// only carry meaning while dragging is true.
	dragging     bool
	lastX, lastY float32

	rotateSensitivity float32
	zoomEnabled       bool
	zoomSensitivity   float32
	fovMin            float32
	fovMax            float32

	mouseButtonActions map[input.MouseButton]Action
	touchAction        Action

	notificationListeners map[Notification][]*NotificationListener

	// Surface listeners are created once at construction so Detach removes
	// exactly the values Attach registered.
	onPress      *input.Listener
	onMove       *input.Listener
	onRelease    *input.Listener
	onLeave      *input.Listener
	onTouchStart *input.Listener
	onTouchMove  *input.Listener
	onTouchEnd   *input.Listener
	onWheel      *input.Listener

	// initialSurface is only set by WithSurface and consumed by the constructor.
	initialSurface input.Surface
}

var _ SpinController = &spinControllerImpl{}

// NewSpinController creates a new free-look controller for the given camera.
// By default the left mouse button and single-finger touch rotate, zoom is
// enabled, and the field of view is clamped to [π/6, π/2]. If a surface is
// supplied via WithSurface the controller attaches to it immediately.
//
// Parameters:
//   - cam: the camera to control
//   - options: functional options to configure the controller
//
// Returns:
//   - SpinController: the newly created controller
func NewSpinController(cam Camera, options ...SpinControllerOption) SpinController {
	sc := &spinControllerImpl{
		cam: cam,

		rotateSensitivity: 0.005,
		zoomEnabled:       true,
		zoomSensitivity:   0.001,
		fovMin:            float32(math.Pi / 6),
		fovMax:            float32(math.Pi / 2),

		mouseButtonActions: map[input.MouseButton]Action{
			input.MouseButtonLeft: ActionRotate,
		},
		touchAction: ActionRotate,

		notificationListeners: make(map[Notification][]*NotificationListener),
	}

	sc.onPress = &input.Listener{Handle: sc.handlePress}
	sc.onMove = &input.Listener{Handle: sc.handleMove}
	sc.onRelease = &input.Listener{Handle: sc.handleRelease}
	sc.onLeave = &input.Listener{Handle: sc.handleRelease}
	sc.onTouchStart = &input.Listener{Handle: sc.handleTouchStart}
	sc.onTouchMove = &input.Listener{Handle: sc.handleMove}
	sc.onTouchEnd = &input.Listener{Handle: sc.handleTouchEnd}
	sc.onWheel = &input.Listener{Handle: sc.handleWheel}

	for _, option := range options {
		option(sc)
	}

	if sc.initialSurface != nil {
		s := sc.initialSurface
		sc.initialSurface = nil
		sc.Attach(s)
	}

	return sc
}

func (sc *spinControllerImpl) Attach(surface input.Surface) {
	if surface == nil {
		return
	}
	if sc.surface != nil {
		sc.Detach()
	}
	sc.surface = surface

	surface.AddListener(input.Press, sc.onPress)
	surface.AddListener(input.Move, sc.onMove)
	surface.AddListener(input.Release, sc.onRelease)
	surface.AddListener(input.Leave, sc.onLeave)
	surface.AddListener(input.TouchStart, sc.onTouchStart)
	surface.AddListener(input.TouchMove, sc.onTouchMove)
	surface.AddListener(input.TouchEnd, sc.onTouchEnd)
	surface.AddListener(input.Wheel, sc.onWheel)

	surface.SetNativeGestures(false)
}

func (sc *spinControllerImpl) Detach() {
	if sc.surface == nil {
		return
	}

	sc.surface.RemoveListener(input.Press, sc.onPress)
	sc.surface.RemoveListener(input.Move, sc.onMove)
	sc.surface.RemoveListener(input.Release, sc.onRelease)
	sc.surface.RemoveListener(input.Leave, sc.onLeave)
	sc.surface.RemoveListener(input.TouchStart, sc.onTouchStart)
	sc.surface.RemoveListener(input.TouchMove, sc.onTouchMove)
	sc.surface.RemoveListener(input.TouchEnd, sc.onTouchEnd)
	sc.surface.RemoveListener(input.Wheel, sc.onWheel)

	sc.surface.SetNativeGestures(true)
	sc.surface = nil
}

func (sc *spinControllerImpl) Dispose() {
	sc.Detach()
}

func (sc *spinControllerImpl) Attached() bool {
	return sc.surface != nil
}

func (sc *spinControllerImpl) Yaw() float32 {
	return sc.yaw
}

func (sc *spinControllerImpl) Pitch() float32 {
	return sc.pitch
}

func (sc *spinControllerImpl) Dragging() bool {
	return sc.dragging
}

func (sc *spinControllerImpl) RotateSensitivity() float32 {
	return sc.rotateSensitivity
}

func (sc *spinControllerImpl) SetRotateSensitivity(sensitivity float32) {
	sc.rotateSensitivity = sensitivity
}

func (sc *spinControllerImpl) ZoomEnabled() bool {
	return sc.zoomEnabled
}

func (sc *spinControllerImpl) SetZoomEnabled(enabled bool) {
	sc.zoomEnabled = enabled
}

func (sc *spinControllerImpl) ZoomSensitivity() float32 {
	return sc.zoomSensitivity
}

func (sc *spinControllerImpl) SetZoomSensitivity(sensitivity float32) {
	sc.zoomSensitivity = sensitivity
}

func (sc *spinControllerImpl) FovRange() (min, max float32) {
	return sc.fovMin, sc.fovMax
}

func (sc *spinControllerImpl) SetFovRange(min, max float32) {
	sc.fovMin = min
	sc.fovMax = max
}

func (sc *spinControllerImpl) MouseButtonAction(button input.MouseButton) Action {
	return sc.mouseButtonActions[button]
}

func (sc *spinControllerImpl) SetMouseButtonAction(button input.MouseButton, action Action) {
	sc.mouseButtonActions[button] = action
}

func (sc *spinControllerImpl) TouchAction() Action {
	return sc.touchAction
}

func (sc *spinControllerImpl) SetTouchAction(action Action) {
	sc.touchAction = action
}

func (sc *spinControllerImpl) On(kind Notification, l *NotificationListener) {
	if l == nil {
		return
	}
	for _, existing := range sc.notificationListeners[kind] {
		if existing == l {
			return
		}
	}
	sc.notificationListeners[kind] = append(sc.notificationListeners[kind], l)
}

func (sc *spinControllerImpl) Off(kind Notification, l *NotificationListener) {
	ls := sc.notificationListeners[kind]
	for i, existing := range ls {
		if existing == l {
			sc.notificationListeners[kind] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// --- input handlers ---

func (sc *spinControllerImpl) handlePress(ev input.Event) {
	if sc.mouseButtonActions[ev.Button] != ActionRotate {
		return
	}
	sc.beginDrag(ev.X, ev.Y)
}

func (sc *spinControllerImpl) handleTouchStart(ev input.Event) {
	if sc.touchAction != ActionRotate {
		return
	}
	// A second simultaneous finger neither breaks nor extends the gesture.
	if ev.Touches > 1 {
		return
	}
	sc.beginDrag(ev.X, ev.Y)
}

func (sc *spinControllerImpl) handleMove(ev input.Event) {
	if !sc.dragging {
		return
	}

	dx := ev.X - sc.lastX
	dy := ev.Y - sc.lastY

	sc.yaw -= dx * sc.rotateSensitivity
	sc.pitch = common.Clamp(sc.pitch-dy*sc.rotateSensitivity, -math.Pi/2, math.Pi/2)

	sc.orientCamera()
	sc.emit(NotificationChange)

	sc.lastX, sc.lastY = ev.X, ev.Y
}

// handleRelease closes the drag session. The end notification is emitted even
// when no session was open: release is treated as an idempotent "end of
// possible gesture" signal. Callers that need filtering can consult Dragging
// before the event fires.
func (sc *spinControllerImpl) handleRelease(input.Event) {
	sc.dragging = false
	sc.emit(NotificationEnd)
}

func (sc *spinControllerImpl) handleTouchEnd(ev input.Event) {
	if ev.Touches > 0 {
		// A finger lifted but at least one remains; the surface has re-anchored
		// the tracked pointer at ev.X/ev.Y. Follow it so the next move does not
		// see a spurious jump.
		if sc.dragging {
			sc.lastX, sc.lastY = ev.X, ev.Y
		}
		return
	}
	sc.dragging = false
	sc.emit(NotificationEnd)
}

func (sc *spinControllerImpl) handleWheel(ev input.Event) {
	if !sc.zoomEnabled {
		return
	}
	fov := common.Clamp(sc.cam.Fov()+ev.Delta*sc.zoomSensitivity, sc.fovMin, sc.fovMax)
	// SetFov recomputes the projection; zoom deliberately emits no change
	// notification because it does not alter orientation.
	sc.cam.SetFov(fov)
}

// --- internal helpers ---

// beginDrag opens a drag session at the given pointer coordinate. Yaw and
// pitch are re-derived from the camera's current facing direction first, so a
// gesture starting after an external orientation change continues from where
// the camera actually points instead of snapping back.
func (sc *spinControllerImpl) beginDrag(x, y float32) {
	sc.yaw, sc.pitch = common.DirectionToAngles(sc.cam.WorldDirection())
	sc.dragging = true
	sc.lastX, sc.lastY = x, y
	sc.emit(NotificationStart)
}

// orientCamera rebuilds the camera look target from the current yaw/pitch
// pair. Pitch is kept inside [-π/2, π/2] by handleMove, so the direction only
// degenerates exactly at the poles, where yaw no longer matters.
func (sc *spinControllerImpl) orientCamera() {
	px, py, pz := sc.cam.Position()
	dx, dy, dz := common.AnglesToDirection(sc.yaw, sc.pitch)
	sc.cam.LookAt(px+dx, py+dy, pz+dz)
}

// emit delivers a notification to its listeners in registration order,
// synchronously within the triggering input callback.
func (sc *spinControllerImpl) emit(kind Notification) {
	for _, l := range sc.notificationListeners[kind] {
		if l.Handle != nil {
			l.Handle(kind)
		}
	}
}
