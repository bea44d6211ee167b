package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jauhararifin/bombtris"
)

const (
	blockSize     = 30
	previewBlocks = 4
	sidebarWidth  = 160
)

var (
	borderColor = color.RGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xFF}
	bombColor   = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xFF}
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "piece generator seed")
	logPath := flag.String("log", "", "write debug logs to this file")
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

	w := newWindow(*seed, logger)
	ebiten.SetWindowSize(w.screenWidth(), w.screenHeight())
	ebiten.SetWindowTitle("bombtris")
	if err := ebiten.RunGame(w); err != nil {
		log.Fatal(err)
	}
}

type window struct {
	game    *bombtris.Game
	message string
}

func newWindow(seed int64, logger *slog.Logger) *window {
	w := &window{message: "Enter: start"}
	w.game = bombtris.NewGame(
		bombtris.WithGetter(bombtris.NewRandomGetter(seed)),
		bombtris.WithLogger(logger),
		bombtris.WithEventHandler(bombtris.EventHandlerFunc(w.onEvent)),
	)
	return w
}

func (w *window) screenWidth() int  { return bombtris.DefaultCols*blockSize + sidebarWidth }
func (w *window) screenHeight() int { return bombtris.DefaultRows * blockSize }

func (w *window) onEvent(e bombtris.Event) {
	switch e.Kind {
	case bombtris.EventStarted:
		w.message = "Enter: pause"
	case bombtris.EventPaused:
		w.message = "Enter: resume"
	case bombtris.EventResumed:
		w.message = "Enter: pause"
	case bombtris.EventGameOver:
		w.message = "GAME OVER\nEnter: restart"
	}
}

var keyActions = []struct {
	key    ebiten.Key
	action bombtris.Action
}{
	{ebiten.KeyArrowLeft, bombtris.ActionMoveLeft},
	{ebiten.KeyArrowRight, bombtris.ActionMoveRight},
	{ebiten.KeyArrowDown, bombtris.ActionSoftDrop},
	{ebiten.KeyArrowUp, bombtris.ActionRotate},
	{ebiten.KeySpace, bombtris.ActionHardDrop},
	{ebiten.KeyEnter, bombtris.ActionStartPause},
}

func (w *window) Update() error {
	for _, ka := range keyActions {
		if inpututil.IsKeyJustPressed(ka.key) {
			w.game.Apply(ka.action)
		}
	}
	w.game.Tick(time.Now())
	return nil
}

func (w *window) Draw(screen *ebiten.Image) {
	state := w.game.GetState()

	tiles := w.game.Render()
	for y, row := range tiles {
		for x, tile := range row {
			if tile != 0 {
				drawBlock(screen, float32(x*blockSize), float32(y*blockSize), blockSize, tileColor(tile))
			}
		}
	}

	flashAlpha := uint8(255 * math.Abs(math.Sin(state.FlashProgress*math.Pi*4)))
	for _, row := range state.FlashRows {
		vector.DrawFilledRect(screen, 0, float32(row*blockSize), bombtris.DefaultCols*blockSize, blockSize,
			color.RGBA{R: flashAlpha, G: flashAlpha, B: flashAlpha, A: flashAlpha}, false)
	}

	boardWidth := float32(bombtris.DefaultCols * blockSize)
	vector.StrokeLine(screen, boardWidth, 0, boardWidth, float32(w.screenHeight()), 2, borderColor, false)

	left := bombtris.DefaultCols*blockSize + 16
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("SCORE %d", state.Score), left, 16)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL %d", state.Level), left, 36)
	ebitenutil.DebugPrintAt(screen, w.message, left, 260)

	if w.game.NextVisible() {
		ebitenutil.DebugPrintAt(screen, "NEXT", left, 70)
		w.drawNext(screen, state.Next, float32(left), 90)
	}
}

func (w *window) drawNext(screen *ebiten.Image, next bombtris.Piece, left, top float32) {
	size := float32(sidebarWidth-32) / previewBlocks
	startX := float32(previewBlocks-len(next.Shape[0])) / 2
	startY := float32(previewBlocks-len(next.Shape)) / 2
	for dy, row := range next.Shape {
		for dx, value := range row {
			if value != 0 {
				drawBlock(screen, left+(startX+float32(dx))*size, top+(startY+float32(dy))*size, size, tileColor(value))
			}
		}
	}
}

func (w *window) Layout(outsideWidth, outsideHeight int) (int, int) {
	return w.screenWidth(), w.screenHeight()
}

func tileColor(tile int) color.RGBA {
	if bombtris.PieceType(tile) == bombtris.TypeBomb {
		return bombColor
	}
	return bombtris.Colors[tile]
}

func drawBlock(screen *ebiten.Image, x, y, size float32, clr color.RGBA) {
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
	vector.StrokeRect(screen, x, y, size, size, 1, color.Black, false)
}
