package bombtris

import "time"

type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventResumed
	EventPieceLocked
	EventBombDetonated
	EventLinesCleared
	EventFlashStart
	EventFlashEnd
	EventScoreChanged
	EventLevelChanged
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventPieceLocked:
		return "piece_locked"
	case EventBombDetonated:
		return "bomb_detonated"
	case EventLinesCleared:
		return "lines_cleared"
	case EventFlashStart:
		return "flash_start"
	case EventFlashEnd:
		return "flash_end"
	case EventScoreChanged:
		return "score_changed"
	case EventLevelChanged:
		return "level_changed"
	case EventGameOver:
		return "game_over"
	}
	return "unknown"
}

// Event describes a transition a renderer may want to react to. Rows is set for line
// clears and flashes; the remaining fields are the values after the transition.
type Event struct {
	SessionID string
	Kind      EventKind
	Rows      []int
	Score     int
	Level     int
	Interval  time.Duration
}

type EventHandler interface {
	OnEvent(e Event)
}

type EventHandlerFunc func(e Event)

func (f EventHandlerFunc) OnEvent(e Event) {
	f(e)
}
