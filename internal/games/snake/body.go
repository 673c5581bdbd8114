package snake

// Snake is the player-controlled body. Segments are stored head first.
//
// The pending direction is kept apart from the applied one so that a turn
// requested between ticks is validated against the direction actually in
// effect, and at most one turn is applied per tick.
type Snake struct {
	grid       Grid
	body       []Cell
	dir        Direction
	pending    Direction
	hasPending bool
	target     int
	last       Cell
	hasLast    bool
}

// NewSnake creates a snake on grid, reset to a single centre segment
// heading in dir.
func NewSnake(grid Grid, dir Direction) *Snake {
	s := &Snake{grid: grid}
	s.Reset(dir)
	return s
}

// Reset puts the snake back to one segment at the board centre with a
// target length of 1.
func (s *Snake) Reset(dir Direction) {
	s.body = []Cell{s.grid.Center()}
	s.dir = dir
	s.hasPending = false
	s.target = 1
	s.hasLast = false
}

// RequestTurn buffers dir for the next tick unless it would reverse the
// snake onto itself. Rejected requests are ignored.
func (s *Snake) RequestTurn(dir Direction) {
	if dir == s.dir.Opposite() {
		return
	}
	s.pending = dir
	s.hasPending = true
}

// Grow raises the target length by one. The extra segment appears on the
// next tick, when the tail is kept instead of dropped.
func (s *Snake) Grow() {
	s.target++
}

// tick advances the snake one cell and reports whether the new head landed
// on another segment.
func (s *Snake) tick() bool {
	if s.hasPending {
		s.dir = s.pending
		s.hasPending = false
	}

	head := s.grid.Wrap(s.body[0].Add(s.dir))

	s.body = append(s.body, Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	s.hasLast = false
	if len(s.body) > s.target {
		s.last = s.body[len(s.body)-1]
		s.hasLast = true
		s.body = s.body[:len(s.body)-1]
	}

	for _, seg := range s.body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}

// Head returns the first segment.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the current number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Target returns the length the snake is growing towards.
func (s *Snake) Target() int {
	return s.target
}

// Direction returns the direction applied on the next move.
func (s *Snake) Direction() Direction {
	return s.dir
}

// Pending returns the buffered turn, if any.
func (s *Snake) Pending() (Direction, bool) {
	return s.pending, s.hasPending
}

// Last returns the tail cell dropped by the most recent tick. It reports
// false if the previous tick grew the snake or no tick has run since reset.
func (s *Snake) Last() (Cell, bool) {
	return s.last, s.hasLast
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() map[Cell]struct{} {
	set := make(map[Cell]struct{}, len(s.body))
	for _, c := range s.body {
		set[c] = struct{}{}
	}
	return set
}

// Contains reports whether any segment is at c.
func (s *Snake) Contains(c Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}
