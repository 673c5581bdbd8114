package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// newTestGame creates a game on a w x h board with a screen large enough to play.
func newTestGame(t *testing.T, w, h int, seed int64) *Game {
	t.Helper()
	settings := DefaultSettings()
	settings.Width = w
	settings.Height = h

	g := New(settings)
	g.Reset(core.RuntimeConfig{
		Seed:    seed,
		ScreenW: 200,
		ScreenH: 100,
	})
	return g
}

func input(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 32, 24, 12345)
	g2 := newTestGame(t, 32, 24, 12345)

	for i := 0; i < 300; i++ {
		var in core.InputFrame
		switch i % 40 {
		case 10:
			in = input(core.ActionDown)
		case 20:
			in = input(core.ActionLeft)
		case 30:
			in = input(core.ActionUp)
		default:
			in = input()
		}
		g1.Step(in)
		g2.Step(in)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("Snapshots differ:\n%+v\n%+v", snap1, snap2)
	}
}

func TestResetState(t *testing.T) {
	g := newTestGame(t, 32, 24, 42)

	snap := g.Snapshot()
	if snap.Length != 1 || snap.Target != 1 {
		t.Errorf("length/target = %d/%d, expected 1/1", snap.Length, snap.Target)
	}
	if snap.HeadPX != 320 || snap.HeadPY != 240 {
		t.Errorf("head at pixel (%d, %d), expected (320, 240)", snap.HeadPX, snap.HeadPY)
	}
	if g.Status() != StatusPlaying {
		t.Errorf("Status() = %v, expected playing", g.Status())
	}
	if g.Snake().Contains(g.Food()) {
		t.Errorf("food %v placed on the snake", g.Food())
	}
	if !g.Grid().Contains(g.Food()) {
		t.Errorf("food %v outside the board", g.Food())
	}
	if g.Speed() != 15 {
		t.Errorf("Speed() = %d, expected 15", g.Speed())
	}
}

func TestResetTickRateOverride(t *testing.T) {
	g := New(DefaultSettings())

	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 30})
	if g.Speed() != 30 {
		t.Errorf("Speed() = %d, expected 30", g.Speed())
	}

	g.Reset(core.RuntimeConfig{Seed: 1, TickRate: 500})
	if g.Speed() != 60 {
		t.Errorf("Speed() = %d, expected clamp to 60", g.Speed())
	}
}

func TestEatingGrowsAndRelocatesFood(t *testing.T) {
	g := newTestGame(t, 32, 24, 7)
	s := g.Snake()
	g.food = g.grid.Wrap(s.Head().Add(s.Direction()))

	result := g.Step(input())

	if !result.Has(core.EventAte) {
		t.Fatalf("expected an ate event, got %+v", result.Events)
	}
	if s.Target() != 2 {
		t.Errorf("Target() = %d, expected 2", s.Target())
	}
	if result.State.Score != 1 {
		t.Errorf("Score = %d, expected 1", result.State.Score)
	}
	if s.Contains(g.Food()) {
		t.Errorf("new food %v placed on the snake", g.Food())
	}
	if !g.Grid().Contains(g.Food()) {
		t.Errorf("new food %v outside the board", g.Food())
	}

	// Growth shows up on the next tick
	if s.Len() != 1 {
		t.Errorf("len = %d right after eating, expected 1", s.Len())
	}
	g.Step(input())
	if s.Len() != 2 {
		t.Errorf("len = %d one tick after eating, expected 2", s.Len())
	}
}

func TestSelfCollisionResetsSnakeAndFood(t *testing.T) {
	g := newTestGame(t, 10, 10, 3)
	s := g.Snake()
	place(s, []Cell{{5, 5}, {6, 5}, {6, 6}, {5, 6}, {4, 6}}, DirLeft, 5)
	g.food = Cell{0, 0}
	g.score = 4

	result := g.Step(input(core.ActionDown))

	if !result.Has(core.EventCollided) {
		t.Fatalf("expected a collided event, got %+v", result.Events)
	}
	if s.Len() != 1 || s.Target() != 1 || s.Head() != g.Grid().Center() {
		t.Errorf("snake not reset: body=%v target=%d", s.Body(), s.Target())
	}
	if s.Contains(g.Food()) {
		t.Errorf("food %v placed on the reset snake", g.Food())
	}
	snap := g.Snapshot()
	if snap.Score != 0 || snap.Resets != 1 {
		t.Errorf("score/resets = %d/%d, expected 0/1", snap.Score, snap.Resets)
	}
	if snap.Best != 5 {
		t.Errorf("Best = %d, expected 5", snap.Best)
	}
	if g.Status() != StatusPlaying {
		t.Error("collision should not end the session")
	}
}

func TestWinStopsTicks(t *testing.T) {
	g := newTestGame(t, 2, 1, 5)
	s := g.Snake()
	place(s, []Cell{{1, 0}}, DirRight, 1)
	g.food = Cell{0, 0}

	// Eat the only free cell's food
	result := g.Step(input())
	if !result.Has(core.EventAte) {
		t.Fatalf("expected ate event, got %+v", result.Events)
	}
	if g.Food() != (Cell{1, 0}) {
		t.Fatalf("food = %v, expected the last free cell (1, 0)", g.Food())
	}

	// Next tick fills the board
	result = g.Step(input())
	if !result.Has(core.EventWon) {
		t.Fatalf("expected won event, got %+v", result.Events)
	}
	if g.Status() != StatusWon || !result.State.GameOver {
		t.Fatalf("Status() = %v, expected won", g.Status())
	}
	if s.Len() != g.Grid().Area() {
		t.Errorf("len = %d, expected the whole board (%d)", s.Len(), g.Grid().Area())
	}

	before := g.Snapshot()
	for i := 0; i < 5; i++ {
		r := g.Step(input(core.ActionUp, core.ActionSpeedUp, core.ActionPause))
		if len(r.Events) != 0 {
			t.Errorf("won game emitted events: %+v", r.Events)
		}
	}
	if after := g.Snapshot(); after != before {
		t.Errorf("won game kept ticking:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := newTestGame(t, 32, 24, 42)
	s := g.Snake()
	place(s, []Cell{{10, 10}}, DirRight, 1)
	g.food = Cell{0, 0}

	g.Step(input(core.ActionLeft))
	if s.Direction() != DirRight || s.Head() != (Cell{11, 10}) {
		t.Errorf("reversal applied: dir=%v head=%v", s.Direction(), s.Head())
	}

	// Last valid key of a frame wins
	g.Step(input(core.ActionUp, core.ActionDown))
	if s.Direction() != DirDown {
		t.Errorf("Direction() = %v, expected down", s.Direction())
	}
}

func TestSpeedControl(t *testing.T) {
	g := newTestGame(t, 32, 24, 1)

	result := g.Step(input(core.ActionSpeedUp))
	if g.Speed() != 16 || g.TickRate() != 16 {
		t.Errorf("Speed() = %d, expected 16", g.Speed())
	}
	if !result.Has(core.EventSpeedChanged) {
		t.Error("expected a speed_changed event")
	}

	for i := 0; i < 100; i++ {
		g.Step(input(core.ActionSpeedDown))
	}
	if g.Speed() != 1 {
		t.Errorf("Speed() = %d, expected floor of 1", g.Speed())
	}
	if r := g.Step(input(core.ActionSpeedDown)); r.Has(core.EventSpeedChanged) {
		t.Error("no event expected when speed is already at the floor")
	}

	for i := 0; i < 100; i++ {
		g.Step(input(core.ActionSpeedUp))
	}
	if g.Speed() != 60 {
		t.Errorf("Speed() = %d, expected ceiling of 60", g.Speed())
	}

	g.SetSpeed(-5)
	if g.Speed() != 1 {
		t.Errorf("SetSpeed(-5) gave %d, expected 1", g.Speed())
	}
}

func TestSpeedFloorWithZeroMin(t *testing.T) {
	settings := DefaultSettings()
	settings.MinSpeed = 0
	g := New(settings)

	g.SetSpeed(0)
	if g.Speed() != 1 {
		t.Errorf("Speed() = %d, expected 1 even with min 0", g.Speed())
	}
}

func TestPauseToggle(t *testing.T) {
	g := newTestGame(t, 32, 24, 9)
	g.food = Cell{0, 0}
	head := g.Snake().Head()

	g.Step(input(core.ActionPause))
	g.Step(input())
	if !g.Paused() || g.Snake().Head() != head {
		t.Error("paused game should not move the snake")
	}

	// Speed can still be changed while paused
	g.Step(input(core.ActionSpeedUp))
	if g.Speed() != 16 {
		t.Errorf("Speed() = %d while paused, expected 16", g.Speed())
	}

	g.Step(input(core.ActionPause))
	if g.Paused() || g.Snake().Head() == head {
		t.Error("unpausing should resume movement on the same step")
	}
}

func TestTooSmallScreenHoldsGame(t *testing.T) {
	g := newTestGame(t, 32, 24, 11)
	g.food = Cell{0, 0}
	head := g.Snake().Head()

	g.Resize(20, 10)
	g.Step(input())
	if g.Snake().Head() != head {
		t.Error("snake moved while the screen was too small")
	}

	w, h := g.RequiredSize()
	g.Resize(w, h)
	g.Step(input())
	if g.Snake().Head() == head {
		t.Error("snake should move once the screen is large enough")
	}
}

func TestTickCountsSimulatedSteps(t *testing.T) {
	g := newTestGame(t, 32, 24, 3)

	g.Step(core.InputFrame{})
	g.Step(input(core.ActionPause))
	g.Step(core.InputFrame{})
	if got := g.Snapshot().Tick; got != 1 {
		t.Errorf("Tick after one move and two paused frames = %d, expected 1", got)
	}

	g.Step(input(core.ActionPause))
	g.Resize(10, 5)
	g.Step(core.InputFrame{})
	if got := g.Snapshot().Tick; got != 2 {
		t.Errorf("Tick after resuming and a too-small frame = %d, expected 2", got)
	}
}

func TestColors(t *testing.T) {
	g := newTestGame(t, 10, 10, 1)

	want := []core.Color{core.ColorGreen, core.ColorBrightGreen, core.ColorRed, core.ColorCyan}
	got := g.Colors()
	if len(got) != len(want) {
		t.Fatalf("Colors() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Colors()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	g := newTestGame(t, 12, 8, 2024)
	actions := []core.Action{core.ActionUp, core.ActionLeft, core.ActionDown, core.ActionRight}

	for i := 0; i < 3000 && g.Status() == StatusPlaying; i++ {
		var in core.InputFrame
		if i%3 == 0 {
			in = input(actions[(i*7/3)%len(actions)])
		} else {
			in = input()
		}
		g.Step(in)

		s := g.Snake()
		if s.Len() > s.Target() {
			t.Fatalf("step %d: len %d exceeds target %d", i, s.Len(), s.Target())
		}
		if g.Status() == StatusPlaying && s.Contains(g.Food()) {
			t.Fatalf("step %d: food %v on the snake", i, g.Food())
		}
		seen := make(map[Cell]bool, s.Len())
		for _, c := range s.Body() {
			if seen[c] {
				t.Fatalf("step %d: duplicate segment %v in %v", i, c, s.Body())
			}
			seen[c] = true
		}
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 32, 24, 42)
	g.food = Cell{0, 0}

	screen := core.NewScreen(80, 30)
	g.Render(screen)

	if hud := screen.Row(0); !strings.HasPrefix(hud, " Snake") || !strings.Contains(hud, "Length: 1") || !strings.Contains(hud, "Speed: 15/s") {
		t.Errorf("HUD = %q", hud)
	}

	// Board box is 66 wide, centered: x = (80-66)/2 = 7, y = 1
	if screen.GetCell(7, 1).Rune != '┌' {
		t.Errorf("board corner = %q, expected '┌'", screen.GetCell(7, 1).Rune)
	}

	// Centre cell (16,12) -> column 7+1+32, row 1+1+12
	head := screen.GetCell(40, 14)
	if head.Rune != segmentChar || head.Color != core.ColorBrightGreen {
		t.Errorf("head cell = %+v, expected bright green segment", head)
	}

	// Food fills both columns of its cell, like the snake
	for _, x := range []int{8, 9} {
		food := screen.GetCell(x, 2)
		if food.Rune != foodChar || food.Color != core.ColorRed {
			t.Errorf("food cell at column %d = %+v, expected red food", x, food)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 32, 24, 42)

	small := core.NewScreen(30, 10)
	g.Resize(30, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "Window too small") {
		t.Errorf("expected too-small overlay:\n%s", small.String())
	}

	screen := core.NewScreen(80, 30)
	g.Resize(80, 30)
	g.Step(input(core.ActionPause))
	g.Render(screen)
	if !strings.Contains(screen.String(), "Paused") {
		t.Errorf("expected pause overlay:\n%s", screen.String())
	}
}

func TestSettingsFromConfig(t *testing.T) {
	s, err := SettingsFromConfig(config.DefaultSnakeConfig())
	if err != nil {
		t.Fatalf("SettingsFromConfig() failed: %v", err)
	}
	if s.Width != 32 || s.Height != 24 || s.CellSize != 20 {
		t.Errorf("board = %dx%d @%d", s.Width, s.Height, s.CellSize)
	}
	if s.SnakeColor != core.ColorGreen || s.FoodColor != core.ColorRed || s.BorderColor != core.ColorCyan {
		t.Errorf("colors = %+v", s)
	}

	bad := config.DefaultSnakeConfig()
	bad.Speed.Initial = 0
	if _, err := SettingsFromConfig(bad); err == nil {
		t.Error("expected error for invalid config")
	}
}
