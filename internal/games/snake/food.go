package snake

import "math/rand"

// Spawner picks food positions on a grid.
type Spawner struct {
	grid Grid
	rng  *rand.Rand
}

// NewSpawner creates a spawner drawing from rng.
func NewSpawner(grid Grid, rng *rand.Rand) *Spawner {
	return &Spawner{grid: grid, rng: rng}
}

// Spawn samples uniformly random cells until it finds one not in occupied.
// It reports false only when occupied covers the whole board, in which case
// no cell can be returned.
func (s *Spawner) Spawn(occupied map[Cell]struct{}) (Cell, bool) {
	if s.full(occupied) {
		return Cell{}, false
	}
	for {
		c := Cell{
			X: s.rng.Intn(s.grid.Width()),
			Y: s.rng.Intn(s.grid.Height()),
		}
		if _, taken := occupied[c]; !taken {
			return c, true
		}
	}
}

// full reports whether every board cell is in occupied.
// Entries outside the board do not count.
func (s *Spawner) full(occupied map[Cell]struct{}) bool {
	if len(occupied) < s.grid.Area() {
		return false
	}
	inside := 0
	for c := range occupied {
		if s.grid.Contains(c) {
			inside++
		}
	}
	return inside >= s.grid.Area()
}
