package explorer

import "github.com/arl/hpaexplore/grid"

// rotationPath computes the shorter of the clockwise/counter-clockwise
// arcs between two headings (§4.10), ties going to clockwise, and returns
// the inclusive sequence of headings from `from` to `to`.
func rotationPath(from, to grid.Heading) []grid.Heading {
	cw := (int(to) - int(from) + 8) % 8
	ccw := (int(from) - int(to) + 8) % 8

	path := []grid.Heading{from}
	if cw <= ccw {
		h := from
		for i := 0; i < cw; i++ {
			h = grid.Heading((int(h) + 1) % 8)
			path = append(path, h)
		}
		return path
	}

	h := from
	for i := 0; i < ccw; i++ {
		h = grid.Heading((int(h) + 7) % 8)
		path = append(path, h)
	}
	return path
}

// headingFromDelta returns the heading whose unit step matches (dr, dc),
// clamped to one of the eight axial/diagonal directions. Used to derive
// the target heading from a step between two adjacent cells (§4.8 step 9).
func headingFromDelta(dr, dc int) grid.Heading {
	sign := func(v int) int {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	}
	sr, sc := sign(dr), sign(dc)
	switch {
	case sr == -1 && sc == 0:
		return grid.N
	case sr == -1 && sc == 1:
		return grid.NE
	case sr == 0 && sc == 1:
		return grid.E
	case sr == 1 && sc == 1:
		return grid.SE
	case sr == 1 && sc == 0:
		return grid.S
	case sr == 1 && sc == -1:
		return grid.SW
	case sr == 0 && sc == -1:
		return grid.W
	case sr == -1 && sc == -1:
		return grid.NW
	default:
		return grid.N
	}
}
