package heightmap

// appendNeighbors appends the Moore neighbours of (x, y) to dst in scan
// order: the row above, the two sides, then the row below. Coordinates below
// zero are clamped to zero rather than wrapped, so cells on the x=0 or y=0
// edge list column or row 0 more than once, themselves included. Coordinates
// past the far edge are dropped.
func (h *HeightField) appendNeighbors(dst []Coord, x, y int) []Coord {
	if x < 0 || y < 0 {
		return dst
	}
	x0, y0 := max(x-1, 0), max(y-1, 0)
	for _, c := range [8]Coord{
		{x0, y0}, {x, y0}, {x + 1, y0},
		{x0, y}, {x + 1, y},
		{x0, y + 1}, {x, y + 1}, {x + 1, y + 1},
	} {
		if h.InBounds(c.X, c.Y) {
			dst = append(dst, c)
		}
	}
	return dst
}

// Neighbors returns the Moore neighbours of (x, y), clamped at zero. The
// result may repeat a coordinate on the low edges.
func (h *HeightField) Neighbors(x, y int) []Coord {
	return h.appendNeighbors(make([]Coord, 0, 8), x, y)
}

// NeighborRaise applies PointRaise to every neighbour of (x, y).
func (h *HeightField) NeighborRaise(x, y int, delta float32) {
	var buf [8]Coord
	for _, c := range h.appendNeighbors(buf[:0], x, y) {
		h.PointRaise(c.X, c.Y, delta)
	}
}

// CompareToNeighbors scans the neighbours of (x, y) starting from the value at
// (x, y) itself. A neighbour becomes the running best when better(value, best)
// holds. It returns the last neighbour that did, or false when none did.
//
// With better = greater-than this finds the steepest ascent.
func (h *HeightField) CompareToNeighbors(x, y int, better func(candidate, best float32) bool) (Coord, bool) {
	best, err := h.Get(x, y)
	if err != nil {
		return Coord{}, false
	}

	var (
		buf   [8]Coord
		found Coord
		ok    bool
	)
	for _, c := range h.appendNeighbors(buf[:0], x, y) {
		v := h.data[h.index(c.X, c.Y)]
		if better(v, best) {
			best = v
			found = c
			ok = true
		}
	}
	return found, ok
}

// ReduceNeighbors folds fold over the neighbour values of (x, y).
func (h *HeightField) ReduceNeighbors(x, y int, initial float32, fold func(acc, value float32) float32) float32 {
	var buf [8]Coord
	acc := initial
	for _, c := range h.appendNeighbors(buf[:0], x, y) {
		acc = fold(acc, h.data[h.index(c.X, c.Y)])
	}
	return acc
}

// NeighborCount returns how many entries Neighbors(x, y) would hold.
func (h *HeightField) NeighborCount(x, y int) int {
	var buf [8]Coord
	return len(h.appendNeighbors(buf[:0], x, y))
}

// Greater is the steepest-ascent predicate for CompareToNeighbors.
func Greater(candidate, best float32) bool { return candidate > best }

// Less is the steepest-descent predicate for CompareToNeighbors.
func Less(candidate, best float32) bool { return candidate < best }
