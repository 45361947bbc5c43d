package camera

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shota-hamamatsu/camera360controls/engine/input"
)

// fakeSurface is an input.Surface driven directly by tests. It records every
// SetNativeGestures call so attach/detach behavior can be verified.
type fakeSurface struct {
	dispatcher  *input.Dispatcher
	gestureLog  []bool
	listenCount int
}

var _ input.Surface = &fakeSurface{}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{dispatcher: input.NewDispatcher()}
}

func (s *fakeSurface) AddListener(kind input.EventKind, l *input.Listener) {
	s.dispatcher.Add(kind, l)
	s.listenCount++
}

func (s *fakeSurface) RemoveListener(kind input.EventKind, l *input.Listener) {
	s.dispatcher.Remove(kind, l)
	s.listenCount--
}

func (s *fakeSurface) SetNativeGestures(enabled bool) {
	s.gestureLog = append(s.gestureLog, enabled)
}

func (s *fakeSurface) press(x, y float32, button input.MouseButton) {
	s.dispatcher.Dispatch(input.Event{Kind: input.Press, X: x, Y: y, Button: button})
}

func (s *fakeSurface) move(x, y float32) {
	s.dispatcher.Dispatch(input.Event{Kind: input.Move, X: x, Y: y})
}

func (s *fakeSurface) release() {
	s.dispatcher.Dispatch(input.Event{Kind: input.Release})
}

func (s *fakeSurface) leave() {
	s.dispatcher.Dispatch(input.Event{Kind: input.Leave})
}

func (s *fakeSurface) touchStart(x, y float32, touches int) {
	s.dispatcher.Dispatch(input.Event{Kind: input.TouchStart, X: x, Y: y, Touches: touches})
}

func (s *fakeSurface) touchMove(x, y float32, touches int) {
	s.dispatcher.Dispatch(input.Event{Kind: input.TouchMove, X: x, Y: y, Touches: touches})
}

func (s *fakeSurface) touchEnd(x, y float32, touches int) {
	s.dispatcher.Dispatch(input.Event{Kind: input.TouchEnd, X: x, Y: y, Touches: touches})
}

func (s *fakeSurface) wheel(delta float32) {
	s.dispatcher.Dispatch(input.Event{Kind: input.Wheel, Delta: delta})
}

// record subscribes to all three notification kinds and appends each delivery
// to a shared sequence.
func record(sc SpinController) *[]Notification {
	var seq []Notification
	for _, kind := range []Notification{NotificationStart, NotificationChange, NotificationEnd} {
		k := kind
		sc.On(k, &NotificationListener{Handle: func(n Notification) {
			seq = append(seq, n)
		}})
	}
	return &seq
}

func TestPitchStaysClampedUnderAnyMoveSequence(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithSurface(surface))

	surface.press(0, 0, input.MouseButtonLeft)

	deltas := [][2]float32{
		{0, 1000}, {0, -5000}, {300, 200}, {-50, 9999},
		{0, -0.25}, {10000, -10000}, {0, 3},
	}
	x, y := float32(0), float32(0)
	for _, d := range deltas {
		x += d[0]
		y += d[1]
		surface.move(x, y)
		pitch := sc.Pitch()
		assert.GreaterOrEqual(t, pitch, float32(-math.Pi/2))
		assert.LessOrEqual(t, pitch, float32(math.Pi/2))
	}
}

func TestMoveWithoutSessionIsNoOp(t *testing.T) {
	surface := newFakeSurface()
	cam := NewCamera()
	sc := NewSpinController(cam, WithSurface(surface))
	seq := record(sc)

	tx, ty, tz := cam.Target()
	surface.move(120, 80)

	assert.Zero(t, sc.Yaw())
	assert.Zero(t, sc.Pitch())
	assert.False(t, sc.Dragging())
	x, y, z := cam.Target()
	assert.Equal(t, [3]float32{tx, ty, tz}, [3]float32{x, y, z})
	assert.Empty(t, *seq)
}

func TestPressResyncsAnglesFromCameraDirection(t *testing.T) {
	surface := newFakeSurface()
	// Camera pre-oriented to face -Z before the gesture begins.
	cam := NewCamera(WithTarget(0, 0, -1))
	sc := NewSpinController(cam, WithSurface(surface))

	surface.press(10, 10, input.MouseButtonLeft)

	assert.InDelta(t, math.Pi, float64(sc.Yaw()), 1.0e-6)
	assert.InDelta(t, 0, float64(sc.Pitch()), 1.0e-6)
}

func TestPressResyncPreventsSnapAfterExternalOrientation(t *testing.T) {
	surface := newFakeSurface()
	cam := NewCamera()
	sc := NewSpinController(cam, WithSurface(surface))

	// First gesture rotates the camera somewhere.
	surface.press(0, 0, input.MouseButtonLeft)
	surface.move(200, 50)
	surface.release()

	// The host reorients the camera behind the controller's back.
	px, py, pz := cam.Position()
	cam.LookAt(px+1, py, pz)

	// The next gesture must continue from the external orientation.
	surface.press(0, 0, input.MouseButtonLeft)
	assert.InDelta(t, math.Pi/2, float64(sc.Yaw()), 1.0e-6)
	assert.InDelta(t, 0, float64(sc.Pitch()), 1.0e-6)
}

func TestDragMath(t *testing.T) {
	surface := newFakeSurface()
	cam := NewCamera()
	sc := NewSpinController(cam,
		WithSurface(surface),
		WithRotateSensitivity(0.005),
	)

	surface.press(0, 0, input.MouseButtonLeft)
	surface.move(100, 0)

	assert.InDelta(t, -0.5, float64(sc.Yaw()), 1.0e-6)
	assert.InDelta(t, 0, float64(sc.Pitch()), 1.0e-6)

	// The camera target must sit one unit from the position along the
	// direction implied by the angle pair.
	px, py, pz := cam.Position()
	tx, ty, tz := cam.Target()
	dx, dy, dz := tx-px, ty-py, tz-pz
	assert.InDelta(t, 1, float64(dx*dx+dy*dy+dz*dz), 1.0e-5)
	assert.InDelta(t, float64(-math.Sin(0.5)), float64(dx), 1.0e-6)
	assert.InDelta(t, 0, float64(dy), 1.0e-6)
	assert.InDelta(t, math.Cos(0.5), float64(dz), 1.0e-6)
}

func TestZoomClampsFov(t *testing.T) {
	surface := newFakeSurface()
	cam := NewCamera(WithFov(60))
	NewSpinController(cam,
		WithSurface(surface),
		WithFovRange(30, 90),
		WithZoomSensitivity(0.01),
	)

	surface.wheel(10000)
	assert.Equal(t, float32(90), cam.Fov())

	surface.wheel(-1e9)
	assert.Equal(t, float32(30), cam.Fov())
}

func TestZoomDisabledLeavesFovAlone(t *testing.T) {
	surface := newFakeSurface()
	cam := NewCamera(WithFov(60))
	sc := NewSpinController(cam,
		WithSurface(surface),
		WithZoomEnabled(false),
		WithFovRange(30, 90),
	)

	surface.wheel(500)
	assert.Equal(t, float32(60), cam.Fov())

	sc.SetZoomEnabled(true)
	surface.wheel(500)
	assert.NotEqual(t, float32(60), cam.Fov())
}

func TestLifecycleEmissionOrder(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithSurface(surface))
	seq := record(sc)

	surface.press(0, 0, input.MouseButtonLeft)
	surface.move(10, 0)
	surface.move(20, 5)
	surface.wheel(100) // zoom must not interleave a change notification
	surface.release()

	assert.Equal(t, []Notification{
		NotificationStart,
		NotificationChange,
		NotificationChange,
		NotificationEnd,
	}, *seq)
}

func TestReleaseWithoutSessionStillEmitsEnd(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithSurface(surface))
	seq := record(sc)

	surface.release()
	assert.Equal(t, []Notification{NotificationEnd}, *seq)
	assert.False(t, sc.Dragging())
}

func TestLeaveEndsGesture(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithSurface(surface))
	seq := record(sc)

	surface.press(0, 0, input.MouseButtonLeft)
	assert.True(t, sc.Dragging())
	surface.leave()
	assert.False(t, sc.Dragging())
	assert.Equal(t, []Notification{NotificationStart, NotificationEnd}, *seq)
}

func TestDetachIsIdempotent(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithSurface(surface))

	assert.True(t, sc.Attached())
	assert.Equal(t, 8, surface.listenCount)

	sc.Detach()
	sc.Detach()

	assert.False(t, sc.Attached())
	assert.Equal(t, 0, surface.listenCount)
	// Native gestures: suppressed once on attach, restored exactly once
	// across both detach calls.
	assert.Equal(t, []bool{false, true}, surface.gestureLog)
}

func TestDetachWithoutAttachIsNoOp(t *testing.T) {
	sc := NewSpinController(NewCamera())
	sc.Detach()
	sc.Dispose()
	assert.False(t, sc.Attached())
}

func TestDetachStopsEventDelivery(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithSurface(surface))
	seq := record(sc)

	sc.Detach()
	surface.press(0, 0, input.MouseButtonLeft)
	surface.move(50, 50)
	surface.release()

	assert.Empty(t, *seq)
	assert.False(t, sc.Dragging())
}

func TestReattachAfterDetach(t *testing.T) {
	first := newFakeSurface()
	second := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithSurface(first))

	// Attaching elsewhere detaches from the first surface.
	sc.Attach(second)
	assert.Equal(t, 0, first.listenCount)
	assert.Equal(t, 8, second.listenCount)
	assert.Equal(t, []bool{false, true}, first.gestureLog)
	assert.Equal(t, []bool{false}, second.gestureLog)

	second.press(0, 0, input.MouseButtonLeft)
	assert.True(t, sc.Dragging())
}

func TestSecondTouchIsIgnored(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithRotateSensitivity(0.005), WithSurface(surface))
	seq := record(sc)

	surface.touchStart(0, 0, 1)
	assert.True(t, sc.Dragging())

	// A second simultaneous finger must not reset lastPointer nor restart the
	// gesture.
	surface.touchStart(500, 500, 2)
	assert.Equal(t, []Notification{NotificationStart}, *seq)

	surface.touchMove(10, 0, 2)
	assert.InDelta(t, -0.05, float64(sc.Yaw()), 1.0e-6)

	// First finger lifts, the second remains: the session survives and the
	// pointer re-anchors without a positional jump.
	surface.touchEnd(500, 500, 1)
	assert.True(t, sc.Dragging())
	surface.touchMove(510, 500, 1)
	assert.InDelta(t, -0.1, float64(sc.Yaw()), 1.0e-6)

	// Last finger lifts: the session ends.
	surface.touchEnd(510, 500, 0)
	assert.False(t, sc.Dragging())
	assert.Equal(t, NotificationEnd, (*seq)[len(*seq)-1])
}

func TestNonRotateBindingsAreInert(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(),
		WithSurface(surface),
		WithMouseButtonAction(input.MouseButtonRight, ActionNone),
		WithTouchAction(ActionNone),
	)
	seq := record(sc)

	surface.press(0, 0, input.MouseButtonRight)
	assert.False(t, sc.Dragging())

	surface.press(0, 0, input.MouseButtonMiddle) // never bound
	assert.False(t, sc.Dragging())

	surface.touchStart(0, 0, 1)
	assert.False(t, sc.Dragging())

	assert.Empty(t, *seq)

	sc.SetMouseButtonAction(input.MouseButtonRight, ActionRotate)
	surface.press(0, 0, input.MouseButtonRight)
	assert.True(t, sc.Dragging())
}

func TestOffRemovesNotificationListener(t *testing.T) {
	surface := newFakeSurface()
	sc := NewSpinController(NewCamera(), WithSurface(surface))

	calls := 0
	l := &NotificationListener{Handle: func(Notification) { calls++ }}
	sc.On(NotificationStart, l)
	sc.On(NotificationStart, l) // duplicate registration is a no-op

	surface.press(0, 0, input.MouseButtonLeft)
	assert.Equal(t, 1, calls)

	surface.release()
	sc.Off(NotificationStart, l)
	sc.Off(NotificationStart, l) // double removal is a no-op

	surface.press(0, 0, input.MouseButtonLeft)
	assert.Equal(t, 1, calls)
}

func TestPoleBoundaryIsAccepted(t *testing.T) {
	surface := newFakeSurface()
	// Camera facing straight up: asin input at the +1 boundary.
	cam := NewCamera(WithTarget(0, 1, 0))
	sc := NewSpinController(cam, WithSurface(surface))

	surface.press(0, 0, input.MouseButtonLeft)
	assert.InDelta(t, math.Pi/2, float64(sc.Pitch()), 1.0e-6)

	// The next move recomputes from deltas; pitch stays in range.
	surface.move(0, 100)
	assert.LessOrEqual(t, sc.Pitch(), float32(math.Pi/2))
	assert.False(t, math.IsNaN(float64(sc.Yaw())))
}
