package game

// baseShape is the upright L: a vertical bar of three with a foot to the right.
var baseShape = [4]Cell{{0, 0}, {1, 0}, {2, 0}, {2, 1}}

// orientations holds the four rotations of baseShape followed by the four
// rotations of its mirror image, each shifted so its minimum row and column
// are zero. The L-tetromino has no symmetry, so all eight are distinct.
var orientations = buildOrientations()

func buildOrientations() [8][4]Cell {
	var out [8][4]Cell
	n := 0
	for _, shape := range [2][4]Cell{baseShape, mirror(baseShape)} {
		for rot := 0; rot < 4; rot++ {
			out[n] = normalize(shape)
			n++
			shape = rotate(shape)
		}
	}
	return out
}

// rotate turns a shape a quarter turn clockwise.
func rotate(shape [4]Cell) [4]Cell {
	var out [4]Cell
	for i, c := range shape {
		out[i] = Cell{Row: c.Col, Col: -c.Row}
	}
	return out
}

func mirror(shape [4]Cell) [4]Cell {
	var out [4]Cell
	for i, c := range shape {
		out[i] = Cell{Row: c.Row, Col: -c.Col}
	}
	return out
}

func normalize(shape [4]Cell) [4]Cell {
	minR, minC := shape[0].Row, shape[0].Col
	for _, c := range shape[1:] {
		minR = min(minR, c.Row)
		minC = min(minC, c.Col)
	}
	var out [4]Cell
	for i, c := range shape {
		out[i] = Cell{Row: c.Row - minR, Col: c.Col - minC}
	}
	return [4]Cell(NewPlacement(out))
}

// Orientation reports which of the eight L orientations p is a translation
// of, or false if p is not an L at all.
func (p Placement) Orientation() (int, bool) {
	shape := normalize([4]Cell(p))
	for i, o := range orientations {
		if o == shape {
			return i, true
		}
	}
	return -1, false
}
