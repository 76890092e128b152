package ui

import "image"

// EventKind is the type of an input event. Only quit and click drive the game.
type EventKind int

const (
	EventNone EventKind = iota
	EventQuit
	EventClick
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventClick:
		return "click"
	default:
		return "none"
	}
}

// Event is one input event. Pos is set for clicks.
type Event struct {
	Kind EventKind
	Pos  image.Point
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// Click returns a pointer press at pt.
func Click(pt image.Point) Event { return Event{Kind: EventClick, Pos: pt} }

// EventSource yields the input events gathered since the previous call.
// The window backend polls once per presented frame.
type EventSource interface {
	PollEvents() []Event
}
