package attr

import (
	"time"

	"github.com/go-drift/fluent/pkg/graphics"
)

// SourceType is the input device that produced an event.
type SourceType int

const (
	SourceUnknown SourceType = iota
	SourceMouse
	SourceTouchScreen
)

// ClickEvent is delivered to OnClick handlers by the host runtime.
type ClickEvent struct {
	// X and Y are relative to the component.
	X, Y float64
	// WindowX and WindowY are relative to the window.
	WindowX, WindowY float64
	Timestamp        time.Duration
	Source           SourceType
}

// TouchType is the phase of a touch point.
type TouchType int

const (
	TouchDown TouchType = iota
	TouchUp
	TouchMove
	TouchCancel
)

// TouchObject is a single touch point.
type TouchObject struct {
	ID   int
	Type TouchType
	X, Y float64
}

// TouchEvent is delivered to OnTouch handlers by the host runtime.
type TouchEvent struct {
	Type      TouchType
	Touches   []TouchObject
	Timestamp time.Duration
}

// Area is a component's laid-out rectangle.
type Area struct {
	Width, Height  graphics.Length
	Position       graphics.Position
	GlobalPosition graphics.Position
}
