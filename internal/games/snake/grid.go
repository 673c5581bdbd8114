package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Cell is a position on the board, addressed by column and row.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by the given direction's unit vector.
func (c Cell) Add(d Direction) Cell {
	dx, dy := d.Vector()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Grid is the fixed-size toroidal board the snake moves on.
// Dimensions are set at construction and never change.
type Grid struct {
	width    int
	height   int
	cellSize int // pixels per cell, used only for pixel conversion
}

// NewGrid creates a board of width x height cells. Non-positive dimensions
// are raised to 1 so that wrapping is always defined.
func NewGrid(width, height, cellSize int) Grid {
	return Grid{
		width:    max(width, 1),
		height:   max(height, 1),
		cellSize: max(cellSize, 1),
	}
}

// Width returns the board width in cells.
func (g Grid) Width() int { return g.width }

// Height returns the board height in cells.
func (g Grid) Height() int { return g.height }

// CellSize returns the pixel size of one cell.
func (g Grid) CellSize() int { return g.cellSize }

// Area returns the total number of cells on the board.
func (g Grid) Area() int {
	return g.width * g.height
}

// Contains reports whether c lies inside the board.
func (g Grid) Contains(c Cell) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Wrap maps any cell onto the board: leaving one edge re-enters on the
// opposite edge.
func (g Grid) Wrap(c Cell) Cell {
	return Cell{X: core.Mod(c.X, g.width), Y: core.Mod(c.Y, g.height)}
}

// Center returns the middle cell of the board.
func (g Grid) Center() Cell {
	return Cell{X: g.width / 2, Y: g.height / 2}
}

// ToPixel returns the top-left pixel coordinate of a cell.
func (g Grid) ToPixel(c Cell) (px, py int) {
	return c.X * g.cellSize, c.Y * g.cellSize
}

// FromPixel returns the cell containing the given pixel, wrapped onto the board.
func (g Grid) FromPixel(px, py int) Cell {
	return g.Wrap(Cell{X: floorDiv(px, g.cellSize), Y: floorDiv(py, g.cellSize)})
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
