// Package grid models a rectangular Boggle board.
//
// Cells are stored row-major and each one carries a neighbor list computed
// once at construction, so the search never bounds-checks. The transient
// in-use flag on a cell is a path lock: Claim it when a word path enters the
// cell and Release it on the way out.
package grid

import (
	"fmt"
	"strings"
	"unicode"
)

// Cell is one square of the board.
type Cell struct {
	Letter rune
	Row    int
	Col    int

	neighbors []int
	inUse     bool
}

// Neighbors returns the indices of the cells touching this one.
func (c *Cell) Neighbors() []int {
	return c.neighbors
}

// InUse reports whether the cell is on the current word path.
func (c *Cell) InUse() bool {
	return c.inUse
}

// Grid is a rectangular arrangement of cells.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
}

// offsets lists neighbor directions as (row, col) deltas: left, up-left,
// down-left, up, down, right, up-right, down-right.
var offsets = [8][2]int{
	{0, -1}, {-1, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{0, 1}, {-1, 1}, {1, 1},
}

// New builds a grid from rows of letters.
//
// Every row must have the same, non-zero length. On error nothing is built.
// Letters are stored lower-cased, matching the dictionary's case folding.
func New(rows [][]rune) (*Grid, error) {
	if len(rows) == 0 {
		return nil, &MalformedGridError{Reason: ReasonEmpty, Row: -1, Col: -1}
	}
	cols := len(rows[0])
	for r, row := range rows {
		if len(row) == 0 {
			return nil, &MalformedGridError{Reason: ReasonEmptyRow, Row: r, Col: -1}
		}
		if len(row) != cols {
			return nil, &MalformedGridError{
				Reason: ReasonRaggedRow,
				Row:    r,
				Col:    -1,
				Detail: fmt.Sprintf("row has %d letters, expected %d", len(row), cols),
			}
		}
	}

	g := &Grid{
		rows:  len(rows),
		cols:  cols,
		cells: make([]Cell, 0, len(rows)*cols),
	}
	for r, row := range rows {
		for c, letter := range row {
			g.cells = append(g.cells, Cell{Letter: unicode.ToLower(letter), Row: r, Col: c})
		}
	}
	for i := range g.cells {
		cell := &g.cells[i]
		for _, off := range offsets {
			nr, nc := cell.Row+off[0], cell.Col+off[1]
			if nr < 0 || nr >= g.rows || nc < 0 || nc >= g.cols {
				continue
			}
			cell.neighbors = append(cell.neighbors, g.index(nr, nc))
		}
	}
	return g, nil
}

// FromString builds a grid from a flat, row-major letter string.
func FromString(letters string, cols int) (*Grid, error) {
	runes := []rune(letters)
	if cols <= 0 || len(runes) == 0 {
		return nil, &MalformedGridError{Reason: ReasonEmpty, Row: -1, Col: -1}
	}
	if len(runes)%cols != 0 {
		return nil, &MalformedGridError{
			Reason: ReasonRaggedRow,
			Row:    len(runes) / cols,
			Col:    -1,
			Detail: fmt.Sprintf("%d letters do not fill rows of %d", len(runes), cols),
		}
	}
	rows := make([][]rune, 0, len(runes)/cols)
	for i := 0; i < len(runes); i += cols {
		rows = append(rows, runes[i:i+cols])
	}
	return New(rows)
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Cell returns the cell at index i.
func (g *Grid) Cell(i int) *Cell {
	return &g.cells[i]
}

// Cells returns every cell in row-major order. The slice is shared with
// the grid.
func (g *Grid) Cells() []Cell {
	return g.cells
}

// Neighbors returns the neighbor indices of cell i.
func (g *Grid) Neighbors(i int) []int {
	return g.cells[i].neighbors
}

// InUse reports whether cell i is on the current word path.
func (g *Grid) InUse(i int) bool {
	return g.cells[i].inUse
}

// Claim puts cell i on the current word path. Claiming a cell that is
// already in use is a traversal bug and panics.
func (g *Grid) Claim(i int) {
	if g.cells[i].inUse {
		panic(fmt.Sprintf("grid: cell %d (%d,%d) claimed twice", i, g.cells[i].Row, g.cells[i].Col))
	}
	g.cells[i].inUse = true
}

// Release takes cell i off the current word path.
func (g *Grid) Release(i int) {
	g.cells[i].inUse = false
}

// ResetUsage releases every cell.
func (g *Grid) ResetUsage() {
	for i := range g.cells {
		g.cells[i].inUse = false
	}
}

// Letters returns a copy of the board as rows of letters.
func (g *Grid) Letters() [][]rune {
	rows := make([][]rune, g.rows)
	for r := range rows {
		rows[r] = make([]rune, g.cols)
		for c := range rows[r] {
			rows[r][c] = g.cells[g.index(r, c)].Letter
		}
	}
	return rows
}

// Flat returns the board letters in row-major order.
func (g *Grid) Flat() string {
	var sb strings.Builder
	for _, cell := range g.cells {
		sb.WriteRune(cell.Letter)
	}
	return sb.String()
}

// String renders the board in the CSV form accepted by Parse.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, cell := range g.cells {
		sb.WriteRune(cell.Letter)
		if (i+1)%g.cols == 0 {
			sb.WriteByte('\n')
		} else {
			sb.WriteByte(',')
		}
	}
	return sb.String()
}
