// Package grid models the untyped 2-D cell structure produced by the file
// parsers, plus the amount and date normalization applied to single cells.
package grid

import (
	"fmt"
	"strings"
)

// Kind tags the cell union.
type Kind int

const (
	// KindEmpty marks a missing or blank cell.
	KindEmpty Kind = iota
	// KindText marks a string cell.
	KindText
	// KindNumeric marks a native numeric cell (e.g. an xlsx number,
	// including spreadsheet date serials).
	KindNumeric
)

// Cell is one untyped scalar value from a statement export. Mixed columns
// (numbers, text, blanks) are modeled explicitly rather than coerced.
type Cell struct {
	kind Kind
	num  float64
	text string
}

// Empty returns the empty cell.
func Empty() Cell {
	return Cell{kind: KindEmpty}
}

// Text returns a text cell.
func Text(s string) Cell {
	return Cell{kind: KindText, text: s}
}

// Numeric returns a numeric cell.
func Numeric(f float64) Cell {
	return Cell{kind: KindNumeric, num: f}
}

// Kind returns the cell's tag.
func (c Cell) Kind() Kind {
	return c.kind
}

// IsEmpty reports whether the cell is empty, treating whitespace-only text
// as empty as well.
func (c Cell) IsEmpty() bool {
	if c.kind == KindEmpty {
		return true
	}
	return c.kind == KindText && strings.TrimSpace(c.text) == ""
}

// Number returns the numeric value. Zero for non-numeric cells.
func (c Cell) Number() float64 {
	if c.kind != KindNumeric {
		return 0
	}
	return c.num
}

// String renders the cell as display text. Numeric cells use the shortest
// representation that round-trips, empty cells render as "".
func (c Cell) String() string {
	switch c.kind {
	case KindText:
		return c.text
	case KindNumeric:
		return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", c.num), "0"), ".")
	default:
		return ""
	}
}

// Row is one ordered sequence of cells.
type Row []Cell

// Grid is the full cell grid of a parsed statement file. Immutable input to
// the detection and extraction stages.
type Grid []Row

// Cell returns the cell at (row, col), or the empty cell when the position
// is out of range. Ragged rows are common in statement exports.
func (g Grid) Cell(row, col int) Cell {
	if row < 0 || row >= len(g) || col < 0 {
		return Empty()
	}
	r := g[row]
	if col >= len(r) {
		return Empty()
	}
	return r[col]
}
