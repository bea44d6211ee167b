package bombtris

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

const (
	DefaultCols          = 10
	DefaultRows          = 20
	DefaultFlashDuration = 500 * time.Millisecond
)

type Option func(*Game)

func WithSize(width, height int) Option {
	if width < 4 || height < 4 {
		panic(fmt.Errorf("minimal width x height is 4x4"))
	}
	return func(game *Game) {
		game.cols = width
		game.rows = height
	}
}

func WithGetter(getter PieceGetter) Option {
	return func(game *Game) {
		game.getter = getter
	}
}

func WithEventHandler(handler EventHandler) Option {
	return func(game *Game) {
		game.handler = handler
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(game *Game) {
		game.logger = logger
	}
}

// WithBaseInterval sets the level 1 fall interval.
func WithBaseInterval(interval time.Duration) Option {
	if interval <= 0 {
		panic(fmt.Errorf("base interval must be positive, got %s", interval))
	}
	return func(game *Game) {
		game.baseInterval = interval
	}
}

func WithFlashDuration(duration time.Duration) Option {
	if duration < 0 {
		panic(fmt.Errorf("flash duration cannot be negative, got %s", duration))
	}
	return func(game *Game) {
		game.flashDuration = duration
	}
}

func WithSessionID(id uuid.UUID) Option {
	return func(game *Game) {
		game.id = id
	}
}
