package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/JoelOtter/termloop"
	"github.com/jauhararifin/bombtris"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "piece generator seed")
	logPath := flag.String("log", "", "write debug logs to this file")
	width := flag.Int("cols", bombtris.DefaultCols, "board width")
	height := flag.Int("rows", bombtris.DefaultRows, "board height")
	flag.Parse()

	logger := slog.New(slog.DiscardHandler)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			log.Fatalf("cannot open log file: %v", err)
		}
		defer f.Close()
		logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	game := termloop.NewGame()
	level := termloop.NewBaseLevel(termloop.Cell{})
	level.AddEntity(NewBoardPlayer(0, 0, *width, *height, *seed, logger))
	game.Screen().SetLevel(level)
	game.Start()
}

var tileColors = []termloop.Attr{
	termloop.ColorDefault,
	termloop.ColorRed,
	termloop.ColorCyan,
	termloop.ColorGreen,
	termloop.ColorMagenta,
	termloop.ColorYellow,
	termloop.ColorBlue,
	termloop.ColorWhite,
	termloop.ColorBlack,
}

type boardPlayer struct {
	game                *bombtris.Game
	x, y, width, height int
	message             string

	scoreText   *termloop.Text
	levelText   *termloop.Text
	messageText *termloop.Text
}

func NewBoardPlayer(x, y, width, height int, seed int64, logger *slog.Logger) *boardPlayer {
	b := &boardPlayer{
		width:   width,
		height:  height,
		x:       x,
		y:       y,
		message: "Enter: start",

		scoreText:   termloop.NewText(x+width+3, y+8, "", termloop.ColorWhite, termloop.ColorDefault),
		levelText:   termloop.NewText(x+width+3, y+9, "", termloop.ColorWhite, termloop.ColorDefault),
		messageText: termloop.NewText(x+width+3, y+11, "", termloop.ColorYellow, termloop.ColorDefault),
	}

	b.game = bombtris.NewGame(
		bombtris.WithSize(width, height),
		bombtris.WithGetter(bombtris.NewRandomGetter(seed)),
		bombtris.WithLogger(logger),
		bombtris.WithEventHandler(bombtris.EventHandlerFunc(b.onEvent)),
	)

	return b
}

func (b *boardPlayer) onEvent(e bombtris.Event) {
	switch e.Kind {
	case bombtris.EventStarted, bombtris.EventResumed:
		b.message = ""
	case bombtris.EventPaused:
		b.message = "Paused"
	case bombtris.EventLevelChanged:
		b.message = fmt.Sprintf("Level %d!", e.Level)
	case bombtris.EventBombDetonated:
		b.message = "Boom!"
	case bombtris.EventGameOver:
		b.message = "Game over, Enter: restart"
	}
}

func (b *boardPlayer) Tick(ev termloop.Event) {
	if ev.Type != termloop.EventKey {
		return
	}

	switch ev.Key {
	case termloop.KeyArrowLeft:
		b.game.Apply(bombtris.ActionMoveLeft)
	case termloop.KeyArrowRight:
		b.game.Apply(bombtris.ActionMoveRight)
	case termloop.KeyArrowUp:
		b.game.Apply(bombtris.ActionRotate)
	case termloop.KeyArrowDown:
		b.game.Apply(bombtris.ActionSoftDrop)
	case termloop.KeySpace:
		b.game.Apply(bombtris.ActionHardDrop)
	case termloop.KeyEnter:
		b.game.Apply(bombtris.ActionStartPause)
	}
	if ev.Ch == 'p' {
		b.game.Apply(bombtris.ActionTogglePause)
	}
}

func (b *boardPlayer) Draw(s *termloop.Screen) {
	b.game.Tick(time.Now())
	state := b.game.GetState()

	b.drawFrame(s)

	b.scoreText.SetText(fmt.Sprintf("Score: %d", state.Score))
	b.scoreText.Draw(s)
	b.levelText.SetText(fmt.Sprintf("Level: %d", state.Level))
	b.levelText.Draw(s)
	b.messageText.SetText(b.message)
	b.messageText.Draw(s)

	if b.game.NextVisible() {
		b.drawNext(s, state.Next)
	}

	flashing := make(map[int]bool, len(state.FlashRows))
	flashOn := math.Abs(math.Sin(state.FlashProgress*math.Pi*4)) > 0.5
	for _, row := range state.FlashRows {
		flashing[row] = flashOn
	}

	tiles := b.game.Render()
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack}
			if tile := tiles[y][x]; tile != 0 {
				cell.Fg = tileColors[tile]
				cell.Ch = '#'
				if bombtris.PieceType(tile) == bombtris.TypeBomb {
					cell.Fg = termloop.ColorWhite
					cell.Ch = '*'
				}
			}
			if flashing[y] {
				cell.Bg = termloop.ColorWhite
			}
			s.RenderCell(b.x+1+x, b.y+1+y, cell)
		}
	}
}

func (b *boardPlayer) drawFrame(s *termloop.Screen) {
	border := &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack, Ch: '+'}
	for i := 0; i < b.width+2; i++ {
		s.RenderCell(b.x+i, b.y, border)
		s.RenderCell(b.x+i, b.y+b.height+1, border)
	}
	for i := 0; i < b.height+2; i++ {
		s.RenderCell(b.x, b.y+i, border)
		s.RenderCell(b.x+b.width+1, b.y+i, border)
	}

	for i := 0; i < 6; i++ {
		s.RenderCell(b.x+b.width+3+i, b.y, border)
		s.RenderCell(b.x+b.width+3+i, b.y+5, border)
		s.RenderCell(b.x+b.width+3, b.y+i, border)
		s.RenderCell(b.x+b.width+8, b.y+i, border)
	}
}

func (b *boardPlayer) drawNext(s *termloop.Screen, next bombtris.Piece) {
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			cell := &termloop.Cell{Fg: termloop.ColorWhite, Bg: termloop.ColorBlack}
			if y < len(next.Shape) && x < len(next.Shape[y]) && next.Shape[y][x] != 0 {
				cell.Fg = tileColors[next.Type]
				cell.Ch = '@'
			}
			s.RenderCell(b.x+b.width+4+x, b.y+1+y, cell)
		}
	}
}
