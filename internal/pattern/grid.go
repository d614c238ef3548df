// Package pattern models contribution-calendar glyphs as 7-row character
// grids and compiles named patterns from a built-in font.
package pattern

import (
	"fmt"
	"strings"
)

// Grid cell markers. Rows use a fixed two-character alphabet.
const (
	LitCell   = '#'
	BlankCell = '.'
)

// GridRows is the fixed row count: one row per weekday, Sunday through
// Saturday, matching the contribution calendar's vertical axis.
const GridRows = 7

// Grid is a validated 7-row pattern of lit and blank cells. Columns are
// sequential weeks. The zero Grid is empty and unusable; construct via New
// or Combine.
type Grid struct {
	rows []string
}

// New validates and builds a Grid from raw rows. It rejects anything other
// than exactly 7 equal-length, non-empty rows over the {'#','.'} alphabet;
// misshaped literals fail here rather than misrendering later.
func New(rows []string) (Grid, error) {
	if len(rows) != GridRows {
		return Grid{}, fmt.Errorf("grid must have exactly %d rows, got %d", GridRows, len(rows))
	}

	width := len(rows[0])
	if width == 0 {
		return Grid{}, fmt.Errorf("grid rows must not be empty")
	}

	for i, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("grid rows must be equal length: row %d has %d cells, row 0 has %d",
				i, len(row), width)
		}
		for j, cell := range row {
			if cell != LitCell && cell != BlankCell {
				return Grid{}, fmt.Errorf("grid row %d column %d: invalid cell %q (want %q or %q)",
					i, j, cell, LitCell, BlankCell)
			}
		}
	}

	copied := make([]string, GridRows)
	copy(copied, rows)
	return Grid{rows: copied}, nil
}

// Combine concatenates grids row-wise, left to right, inserting one
// fully-blank column between consecutive inputs. Requires at least one
// input; all inputs are already 7 rows by construction.
func Combine(grids ...Grid) (Grid, error) {
	if len(grids) == 0 {
		return Grid{}, fmt.Errorf("combine requires at least one grid")
	}

	rows := make([]string, GridRows)
	for i := range rows {
		var row strings.Builder
		for n, grid := range grids {
			if n > 0 {
				row.WriteByte(BlankCell)
			}
			row.WriteString(grid.rows[i])
		}
		rows[i] = row.String()
	}
	return New(rows)
}

// Width returns the number of week columns.
func (g Grid) Width() int {
	if len(g.rows) == 0 {
		return 0
	}
	return len(g.rows[0])
}

// Row returns the given weekday row (0 = Sunday).
func (g Grid) Row(i int) string {
	return g.rows[i]
}

// IsLit reports whether the cell at (week column, weekday row) is lit.
func (g Grid) IsLit(week, weekday int) bool {
	return g.rows[weekday][week] == LitCell
}

// Lit returns the total number of lit cells.
func (g Grid) Lit() int {
	count := 0
	for _, row := range g.rows {
		count += strings.Count(row, string(rune(LitCell)))
	}
	return count
}
