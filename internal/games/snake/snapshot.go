package snake

// Snapshot captures the game state for determinism testing and debugging.
type Snapshot struct {
	Tick   uint64
	Status Status
	Paused bool
	Length int
	Target int
	HeadX  int
	HeadY  int
	HeadPX int // Head position in pixels
	HeadPY int
	Dir    Direction
	FoodX  int
	FoodY  int
	Speed  int
	Score  int
	Best   int
	Resets int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	head := g.snake.Head()
	px, py := g.grid.ToPixel(head)

	return Snapshot{
		Tick:   g.tick,
		Status: g.status,
		Paused: g.paused,
		Length: g.snake.Len(),
		Target: g.snake.Target(),
		HeadX:  head.X,
		HeadY:  head.Y,
		HeadPX: px,
		HeadPY: py,
		Dir:    g.snake.Direction(),
		FoodX:  g.food.X,
		FoodY:  g.food.Y,
		Speed:  g.speed,
		Score:  g.score,
		Best:   g.best,
		Resets: g.resets,
	}
}
