package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSurface adapts Ebitengine's poll-based input model to the Surface
// event protocol. Ebitengine exposes input as per-frame state queries rather
// than callbacks, so the host game calls Poll once per Update and the surface
// synthesizes press/move/release, wheel, and touch events from the state
// deltas since the previous frame.
//
// This is the touch-capable surface: on mobile and browser targets Ebitengine
// reports real touch points, which Poll tracks with a single-finger model (the
// first finger down is the tracked pointer; additional fingers only adjust the
// reported touch count).
//
// Reference: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2#CursorPosition
// Reference: https://pkg.go.dev/github.com/hajimehoshi/ebiten/v2/inpututil
type EbitenSurface struct {
	dispatcher *Dispatcher

	nativeGestures bool

	prevCursorX, prevCursorY int
	cursorSeen               bool

	touchIDs     []ebiten.TouchID
	tracked      ebiten.TouchID
	trackedAlive bool
	prevTouchX   int
	prevTouchY   int
}

var _ Surface = &EbitenSurface{}

// ebitenButtons maps Ebitengine mouse buttons to the protocol's GLFW-valued
// button identities. The two libraries disagree on the middle/right ordering.
var ebitenButtons = [...]struct {
	src ebiten.MouseButton
	dst MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// NewEbitenSurface creates an EbitenSurface. The host game must call Poll once
// per Ebitengine Update for events to flow.
//
// Returns:
//   - *EbitenSurface: the newly created surface
func NewEbitenSurface() *EbitenSurface {
	return &EbitenSurface{
		dispatcher:     NewDispatcher(),
		nativeGestures: true,
	}
}

func (s *EbitenSurface) AddListener(kind EventKind, l *Listener) {
	s.dispatcher.Add(kind, l)
}

func (s *EbitenSurface) RemoveListener(kind EventKind, l *Listener) {
	s.dispatcher.Remove(kind, l)
}

// SetNativeGestures records the requested state. Ebitengine has no built-in
// gesture or scroll handling to suppress, so the flag is tracked but otherwise
// inert.
func (s *EbitenSurface) SetNativeGestures(enabled bool) {
	s.nativeGestures = enabled
}

// NativeGestures reports the last requested native gesture state.
//
// Returns:
//   - bool: true unless a consumer has suppressed native gestures
func (s *EbitenSurface) NativeGestures() bool {
	return s.nativeGestures
}

// Poll reads Ebitengine's input state and dispatches the events implied by the
// changes since the previous call. Call once per Update, from the game loop
// goroutine. Event order within one poll: presses, cursor move, releases,
// wheel, then touch transitions.
func (s *EbitenSurface) Poll() {
	cx, cy := ebiten.CursorPosition()

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.src) {
			s.dispatcher.Dispatch(Event{
				Kind:   Press,
				X:      float32(cx),
				Y:      float32(cy),
				Button: b.dst,
			})
		}
	}

	if s.cursorSeen && (cx != s.prevCursorX || cy != s.prevCursorY) {
		s.dispatcher.Dispatch(Event{
			Kind: Move,
			X:    float32(cx),
			Y:    float32(cy),
		})
	}
	s.prevCursorX, s.prevCursorY = cx, cy
	s.cursorSeen = true

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustReleased(b.src) {
			s.dispatcher.Dispatch(Event{
				Kind:   Release,
				X:      float32(cx),
				Y:      float32(cy),
				Button: b.dst,
			})
		}
	}

	if _, yoff := ebiten.Wheel(); yoff != 0 {
		// Positive delta means scroll toward the user (zoom out), matching the
		// DOM wheel convention; Ebitengine reports the opposite sign.
		s.dispatcher.Dispatch(Event{
			Kind:  Wheel,
			Delta: float32(-yoff),
		})
	}

	s.pollTouches()
}

// pollTouches tracks the first active touch as the pointer and dispatches
// touchStart/touchMove/touchEnd transitions.
func (s *EbitenSurface) pollTouches() {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	count := len(s.touchIDs)

	if s.trackedAlive {
		alive := false
		for _, id := range s.touchIDs {
			if id == s.tracked {
				alive = true
				break
			}
		}
		if !alive {
			// The tracked finger lifted. If another finger remains, hand
			// tracking to it and carry its position so consumers can re-anchor
			// without a positional jump.
			ex, ey := s.prevTouchX, s.prevTouchY
			s.trackedAlive = false
			if count > 0 {
				s.tracked = s.touchIDs[0]
				s.trackedAlive = true
				ex, ey = ebiten.TouchPosition(s.tracked)
				s.prevTouchX, s.prevTouchY = ex, ey
			}
			s.dispatcher.Dispatch(Event{
				Kind:    TouchEnd,
				X:       float32(ex),
				Y:       float32(ey),
				Touches: count,
			})
			return
		}
	}

	if !s.trackedAlive {
		if count == 0 {
			return
		}
		s.tracked = s.touchIDs[0]
		s.trackedAlive = true
		s.prevTouchX, s.prevTouchY = ebiten.TouchPosition(s.tracked)
		s.dispatcher.Dispatch(Event{
			Kind:    TouchStart,
			X:       float32(s.prevTouchX),
			Y:       float32(s.prevTouchY),
			Touches: count,
		})
		return
	}

	// Additional fingers arriving do not move the tracked pointer, but their
	// touchStart is still reported with the updated count.
	for _, id := range inpututil.AppendJustPressedTouchIDs(nil) {
		if id != s.tracked {
			tx, ty := ebiten.TouchPosition(id)
			s.dispatcher.Dispatch(Event{
				Kind:    TouchStart,
				X:       float32(tx),
				Y:       float32(ty),
				Touches: count,
			})
		}
	}

	tx, ty := ebiten.TouchPosition(s.tracked)
	if tx != s.prevTouchX || ty != s.prevTouchY {
		s.prevTouchX, s.prevTouchY = tx, ty
		s.dispatcher.Dispatch(Event{
			Kind:    TouchMove,
			X:       float32(tx),
			Y:       float32(ty),
			Touches: count,
		})
	}
}
