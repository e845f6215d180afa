package surface

import "strings"

// Cell is a single character cell in a Buffer.
type Cell struct {
	Rune rune
	FG   Color
	BG   Color
}

// Buffer is an in-memory Surface. It is the backing store for the terminal
// simulator and the test double for the menu engine.
type Buffer struct {
	cols  int
	rows  int
	cells [][]Cell
}

// NewBuffer creates a cols x rows buffer filled with black-on-black spaces.
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{cols: cols, rows: rows}
	b.cells = make([][]Cell, rows)
	for y := range b.cells {
		b.cells[y] = make([]Cell, cols)
	}
	b.Clear()
	return b
}

// Cols returns the buffer width in cells.
func (b *Buffer) Cols() int { return b.cols }

// Rows returns the buffer height in cells.
func (b *Buffer) Rows() int { return b.rows }

// Clear implements Surface.
func (b *Buffer) Clear() bool {
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			b.cells[y][x] = Cell{Rune: ' ', FG: White, BG: Black}
		}
	}
	return true
}

// DrawText implements Surface. Writes outside the grid are clipped.
func (b *Buffer) DrawText(col, row int, text string, clean bool, fg, bg Color, pad int) bool {
	if row < 0 || row >= b.rows {
		return true
	}
	runes := []rune(text)
	if clean {
		for i := 0; i < pad+len(runes); i++ {
			b.set(col+i, row, Cell{Rune: ' ', FG: fg, BG: bg})
		}
	}
	for i := 0; i < pad; i++ {
		b.set(col+i, row, Cell{Rune: ' ', FG: fg, BG: bg})
	}
	for i, r := range runes {
		b.set(col+pad+i, row, Cell{Rune: r, FG: fg, BG: bg})
	}
	return true
}

func (b *Buffer) set(col, row int, c Cell) {
	if col < 0 || col >= b.cols {
		return
	}
	b.cells[row][col] = c
}

// CellAt returns the cell at (col, row). Out-of-range positions return a
// blank cell.
func (b *Buffer) CellAt(col, row int) Cell {
	if col < 0 || col >= b.cols || row < 0 || row >= b.rows {
		return Cell{Rune: ' ', FG: White, BG: Black}
	}
	return b.cells[row][col]
}

// Line returns row as a plain string, one rune per cell.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= b.rows {
		return ""
	}
	var sb strings.Builder
	for x := 0; x < b.cols; x++ {
		sb.WriteRune(b.cells[row][x].Rune)
	}
	return sb.String()
}
