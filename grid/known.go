package grid

// Reveal is one UNKNOWN→X transition produced by UpdateKnown: cell (Row,
// Col) transitioned to State.
type Reveal struct {
	Row, Col int
	State    CellState
}

// UpdateKnown copies the ground-truth state of every visible cell that is
// still Unknown in known into known, in place, and returns the list of
// transitions it performed. Cells already known (Walkable or Wall) are
// left untouched: the operation is idempotent in the absence of new
// observations, and known map cells never regress out of their discovered
// state (monotone discovery, §8).
//
// UpdateKnown never fails: an out-of-bounds or already-visible cell is
// simply skipped.
func UpdateKnown(known, truth *Grid, visible []Cell) []Reveal {
	var revealed []Reveal
	for _, c := range visible {
		if !known.InBounds(c.Row, c.Col) {
			continue
		}
		if known.At(c.Row, c.Col) != Unknown {
			continue
		}
		state := truth.At(c.Row, c.Col)
		known.Set(c.Row, c.Col, state)
		revealed = append(revealed, Reveal{Row: c.Row, Col: c.Col, State: state})
	}
	return revealed
}

// Coverage returns the fraction, in [0,1], of ground-truth Walkable cells
// that are Walkable in known. If truth has no Walkable cells at all,
// Coverage returns 1 (vacuously fully covered).
func Coverage(known, truth *Grid) float64 {
	var total, covered int
	size := truth.Size()
	for r := 0; r < size; r++ {
		for c := 0; c < size; c++ {
			if truth.At(r, c) == Walkable {
				total++
				if known.At(r, c) == Walkable {
					covered++
				}
			}
		}
	}
	if total == 0 {
		return 1
	}
	return float64(covered) / float64(total)
}

// NewWalkable returns only the Walkable reveals among revs — the subset
// that triggers abstract-graph repair (§9(b): "base repair triggers on
// WALKABLE reveals only", while UpdateKnown itself still reports every
// UNKNOWN→X transition).
func NewWalkable(revs []Reveal) []Cell {
	var cells []Cell
	for _, rv := range revs {
		if rv.State == Walkable {
			cells = append(cells, Cell{Row: rv.Row, Col: rv.Col})
		}
	}
	return cells
}
