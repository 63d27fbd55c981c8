package game

import "fmt"

// EventKind identifies something the engine tells its collaborators about.
type EventKind int

const (
	// EventMusicStart fires every time a game (re)starts.
	EventMusicStart EventKind = iota
	// EventLinesCleared fires after a lock completed at least one row, before
	// the rows are collapsed.
	EventLinesCleared
	EventGameOver
	EventWin
)

func (k EventKind) String() string {
	switch k {
	case EventMusicStart:
		return "music-start"
	case EventLinesCleared:
		return "lines-cleared"
	case EventGameOver:
		return "game-over"
	case EventWin:
		return "win"
	}
	return fmt.Sprintf("EventKind(%d)", int(k))
}

// Event is a notification emitted by the engine. Lines is set for EventLinesCleared.
type Event struct {
	Kind  EventKind
	Lines int
}

func (e Event) String() string {
	if e.Kind == EventLinesCleared {
		return fmt.Sprintf("%s(%d)", e.Kind, e.Lines)
	}
	return e.Kind.String()
}

// Notifier receives engine events. Notify is called synchronously from the
// tick that produced the event and must not call back into the Game.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to a Notifier.
type NotifierFunc func(Event)

func (f NotifierFunc) Notify(e Event) { f(e) }

// Notifiers fans an event out to several notifiers in order.
type Notifiers []Notifier

func (ns Notifiers) Notify(e Event) {
	for _, n := range ns {
		if n != nil {
			n.Notify(e)
		}
	}
}
