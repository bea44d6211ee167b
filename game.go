package bombtris

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionStart
	ActionTogglePause
	// ActionStartPause is the single start/pause button: it starts a session that is
	// idle or over and toggles pause otherwise.
	ActionStartPause
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "move_left"
	case ActionMoveRight:
		return "move_right"
	case ActionRotate:
		return "rotate"
	case ActionSoftDrop:
		return "soft_drop"
	case ActionHardDrop:
		return "hard_drop"
	case ActionStart:
		return "start"
	case ActionTogglePause:
		return "toggle_pause"
	case ActionStartPause:
		return "start_pause"
	}
	return "unknown"
}

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	// PhaseAnimating is the line clear flash. Only the flash clock advances.
	PhaseAnimating
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseAnimating:
		return "animating"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// State is a snapshot of a session for renderers. It shares nothing with the game.
type State struct {
	SessionID     string
	Phase         Phase
	Grid          *Grid
	Current, Next Piece
	Score, Level  int
	Interval      time.Duration
	FlashRows     []int
	FlashProgress float64
}

// Game is one play session. It is driven by Apply for input and Tick for frames.
type Game struct {
	id            uuid.UUID
	getter        PieceGetter
	handler       EventHandler
	logger        *slog.Logger
	rows, cols    int
	baseInterval  time.Duration
	flashDuration time.Duration

	grid          *Grid
	current, next Piece
	scoring       *Scoring
	phase         Phase
	pausePending  bool
	fallTimer     time.Duration
	flashTimer    time.Duration
	flashRows     []int
	lastTick      time.Time
	anchored      bool

	events []Event
	m      sync.Mutex
}

func NewGame(options ...Option) *Game {
	game := &Game{
		id:            uuid.New(),
		getter:        NewRandomGetter(time.Now().UnixNano()),
		logger:        slog.New(slog.DiscardHandler),
		rows:          DefaultRows,
		cols:          DefaultCols,
		baseInterval:  BaseDropInterval,
		flashDuration: DefaultFlashDuration,
	}
	for _, opt := range options {
		opt(game)
	}

	game.logger = game.logger.With("session", game.id.String())
	game.grid = NewGrid(game.rows, game.cols)
	game.scoring = NewScoring(game.baseInterval)
	game.phase = PhaseIdle
	return game
}

func (g *Game) ID() uuid.UUID {
	return g.id
}

func (g *Game) Phase() Phase {
	g.m.Lock()
	defer g.m.Unlock()
	return g.phase
}

func (g *Game) GetState() State {
	g.m.Lock()
	defer g.m.Unlock()

	progress := 0.0
	if g.phase == PhaseAnimating {
		progress = 1
		if g.flashDuration > 0 {
			progress = min(1, float64(g.flashTimer)/float64(g.flashDuration))
		}
	}

	return State{
		SessionID:     g.id.String(),
		Phase:         g.phase,
		Grid:          g.grid.Clone(),
		Current:       g.current.clone(),
		Next:          g.next.clone(),
		Score:         g.scoring.Score(),
		Level:         g.scoring.Level(),
		Interval:      g.scoring.Interval(),
		FlashRows:     append([]int(nil), g.flashRows...),
		FlashProgress: progress,
	}
}

// SetGrid replaces the settled blocks. The grid must match the board size.
func (g *Game) SetGrid(grid *Grid) error {
	g.m.Lock()
	defer g.m.Unlock()

	if grid.Rows() != g.rows || grid.Cols() != g.cols {
		return fmt.Errorf("grid is %dx%d, board is %dx%d", grid.Cols(), grid.Rows(), g.cols, g.rows)
	}
	g.grid = grid.Clone()
	return nil
}

// NextVisible reports whether the next piece preview should be shown. The preview is
// withdrawn at the top level.
func (g *Game) NextVisible() bool {
	g.m.Lock()
	defer g.m.Unlock()
	return g.phase != PhaseIdle && g.scoring.Level() < MaxLevel
}

func (g *Game) Apply(action Action) {
	g.m.Lock()
	switch action {
	case ActionStart:
		g.start()
	case ActionTogglePause:
		g.togglePause()
	case ActionStartPause:
		if g.phase == PhaseIdle || g.phase == PhaseGameOver {
			g.start()
		} else {
			g.togglePause()
		}
	default:
		if g.phase == PhaseRunning {
			g.applyPieceAction(action)
		}
	}
	events := g.takeEvents()
	g.m.Unlock()

	g.dispatch(events)
}

// Tick advances the session to now. The host calls it once per frame.
func (g *Game) Tick(now time.Time) {
	g.m.Lock()
	g.tick(now)
	events := g.takeEvents()
	g.m.Unlock()

	g.dispatch(events)
}

// Run ticks the game every interval until the context is cancelled.
func (g *Game) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			g.Tick(now)
		}
	}
}

// Render returns the grid with the active piece drawn over it.
func (g *Game) Render() [][]int {
	g.m.Lock()
	defer g.m.Unlock()

	frame := make([][]int, g.rows)
	for y := 0; y < g.rows; y++ {
		frame[y] = make([]int, g.cols)
		for x := 0; x < g.cols; x++ {
			frame[y][x] = g.grid.At(y, x)
		}
	}

	if g.phase == PhaseIdle {
		return frame
	}
	for r, row := range g.current.Shape {
		for c, value := range row {
			frameX, frameY := g.current.X+c, g.current.Y+r
			if value != 0 && frameX >= 0 && frameX < g.cols && frameY >= 0 && frameY < g.rows {
				frame[frameY][frameX] = value
			}
		}
	}
	return frame
}

func (g *Game) start() {
	g.grid = NewGrid(g.rows, g.cols)
	g.scoring = NewScoring(g.baseInterval)
	g.current = NewPiece(g.getter.Next(), g.cols)
	g.next = NewPiece(g.getter.Next(), g.cols)
	g.phase = PhaseRunning
	g.pausePending = false
	g.fallTimer = 0
	g.flashTimer = 0
	g.flashRows = nil
	g.anchored = false

	g.logger.Info("game started", "current", g.current.Type.String(), "next", g.next.Type.String())
	g.emit(Event{Kind: EventStarted})
}

func (g *Game) togglePause() {
	switch g.phase {
	case PhaseRunning:
		g.phase = PhasePaused
		g.logger.Info("game paused")
		g.emit(Event{Kind: EventPaused})
	case PhasePaused:
		g.phase = PhaseRunning
		g.anchored = false
		g.logger.Info("game resumed")
		g.emit(Event{Kind: EventResumed})
	case PhaseAnimating:
		g.pausePending = !g.pausePending
	}
}

func (g *Game) applyPieceAction(action Action) {
	switch action {
	case ActionMoveLeft:
		g.moveBy(-1)
	case ActionMoveRight:
		g.moveBy(1)
	case ActionRotate:
		g.rotate()
	case ActionSoftDrop:
		g.softDrop()
	case ActionHardDrop:
		g.hardDrop()
	}
}

func (g *Game) tick(now time.Time) {
	if g.phase != PhaseRunning && g.phase != PhaseAnimating {
		return
	}
	if !g.anchored {
		g.lastTick = now
		g.anchored = true
		return
	}

	elapsed := now.Sub(g.lastTick)
	g.lastTick = now
	if elapsed < 0 {
		elapsed = 0
	}

	if g.phase == PhaseAnimating {
		g.flashTimer += elapsed
		if g.flashTimer >= g.flashDuration {
			g.finishFlash()
		}
		return
	}

	g.fallTimer += elapsed
	if g.fallTimer > g.scoring.Interval() {
		g.softDrop()
	}
}

func (g *Game) moveBy(dx int) {
	if g.grid.IsValidMove(g.current.Shape, g.current.X+dx, g.current.Y) {
		g.current.X += dx
	}
}

func (g *Game) rotate() {
	rotated := g.current.Shape.Rotate()
	if g.grid.IsValidMove(rotated, g.current.X, g.current.Y) {
		g.current.Shape = rotated
	}
}

func (g *Game) softDrop() {
	if g.grid.IsValidMove(g.current.Shape, g.current.X, g.current.Y+1) {
		g.current.Y++
		g.fallTimer = 0
		return
	}
	g.land()
}

func (g *Game) hardDrop() {
	for g.grid.IsValidMove(g.current.Shape, g.current.X, g.current.Y+1) {
		g.current.Y++
	}
	g.land()
}

func (g *Game) land() {
	if g.current.IsBomb() {
		g.grid.Detonate(g.current.X, g.current.Y)
		g.addScore(BombBonus)
		g.logger.Debug("bomb detonated", "x", g.current.X, "y", g.current.Y)
		g.emit(Event{Kind: EventBombDetonated})
	} else {
		g.grid.Settle(g.current)
		g.logger.Debug("piece locked", "type", g.current.Type.String(), "x", g.current.X, "y", g.current.Y)
		g.emit(Event{Kind: EventPieceLocked})
	}

	rows := g.grid.FullRows()
	if len(rows) >= FlashThreshold {
		g.phase = PhaseAnimating
		g.flashRows = rows
		g.flashTimer = 0
		g.anchored = false
		g.emit(Event{Kind: EventFlashStart, Rows: append([]int(nil), rows...)})
		return
	}

	g.clearRows(rows)
	g.spawnNext()
}

func (g *Game) finishFlash() {
	rows := g.flashRows
	g.flashRows = nil
	g.flashTimer = 0
	g.phase = PhaseRunning
	g.emit(Event{Kind: EventFlashEnd, Rows: append([]int(nil), rows...)})

	g.clearRows(rows)
	g.spawnNext()

	if g.pausePending {
		g.pausePending = false
		if g.phase == PhaseRunning {
			g.phase = PhasePaused
			g.logger.Info("game paused")
			g.emit(Event{Kind: EventPaused})
		}
	}
}

func (g *Game) clearRows(rows []int) {
	if len(rows) == 0 {
		return
	}
	g.grid.RemoveRows(rows)
	g.logger.Debug("lines cleared", "count", len(rows))
	g.emit(Event{Kind: EventLinesCleared, Rows: append([]int(nil), rows...)})
	g.addScore(LineClearScore(len(rows)))
}

func (g *Game) addScore(points int) {
	levelUp := g.scoring.Add(points)
	g.emit(Event{Kind: EventScoreChanged})
	if levelUp {
		g.logger.Debug("level up", "level", g.scoring.Level(), "interval", g.scoring.Interval())
		g.emit(Event{Kind: EventLevelChanged})
	}
}

func (g *Game) spawnNext() {
	g.current = g.next
	g.next = NewPiece(g.getter.Next(), g.cols)
	if !g.grid.IsValidMove(g.current.Shape, g.current.X, g.current.Y) {
		g.phase = PhaseGameOver
		g.logger.Info("game over", "score", g.scoring.Score(), "level", g.scoring.Level())
		g.emit(Event{Kind: EventGameOver})
	}
	g.fallTimer = 0
}

func (g *Game) emit(e Event) {
	e.SessionID = g.id.String()
	e.Score = g.scoring.Score()
	e.Level = g.scoring.Level()
	e.Interval = g.scoring.Interval()
	g.events = append(g.events, e)
}

func (g *Game) takeEvents() []Event {
	events := g.events
	g.events = nil
	return events
}

func (g *Game) dispatch(events []Event) {
	if g.handler == nil {
		return
	}
	for _, e := range events {
		g.handler.OnEvent(e)
	}
}
