package cmd

import (
	"fmt"

	"github.com/arl/hpaexplore/grid"
)

// gridFile is the YAML-on-disk representation of a *grid.Grid: one string
// per row, '#' for WALL, '.' for WALKABLE, and a blank space for UNKNOWN
// (only ever produced by a known-map snapshot, never by a maze file).
type gridFile struct {
	Size       int      `yaml:"size"`
	RegionSize int      `yaml:"regionSize"`
	Rows       []string `yaml:"rows"`
}

func toGridFile(g *grid.Grid, regionSize int) gridFile {
	rows := make([]string, g.Size())
	for r := 0; r < g.Size(); r++ {
		b := make([]byte, g.Size())
		for c := 0; c < g.Size(); c++ {
			b[c] = cellGlyph(g.At(r, c))
		}
		rows[r] = string(b)
	}
	return gridFile{Size: g.Size(), RegionSize: regionSize, Rows: rows}
}

func fromGridFile(gf gridFile) (*grid.Grid, error) {
	if len(gf.Rows) != gf.Size {
		return nil, fmt.Errorf("gridfile: %d rows, want %d", len(gf.Rows), gf.Size)
	}
	rows := make([][]grid.CellState, gf.Size)
	for r, line := range gf.Rows {
		if len(line) != gf.Size {
			return nil, fmt.Errorf("gridfile: row %d has length %d, want %d", r, len(line), gf.Size)
		}
		row := make([]grid.CellState, gf.Size)
		for c, ch := range line {
			row[c] = glyphCell(byte(ch))
		}
		rows[r] = row
	}
	return grid.FromRows(rows)
}

func cellGlyph(s grid.CellState) byte {
	switch s {
	case grid.Walkable:
		return '.'
	case grid.Wall:
		return '#'
	default:
		return ' '
	}
}

func glyphCell(b byte) grid.CellState {
	switch b {
	case '#':
		return grid.Wall
	case '.':
		return grid.Walkable
	default:
		return grid.Unknown
	}
}
