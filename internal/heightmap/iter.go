package heightmap

import "iter"

// Values yields every sample in row-major order.
func (h *HeightField) Values() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, v := range h.data {
			if !yield(v) {
				return
			}
		}
	}
}

// Normalized yields every sample mapped into [0, 1], in row-major order.
func (h *HeightField) Normalized() iter.Seq[float32] {
	return func(yield func(float32) bool) {
		for _, v := range h.data {
			if !yield(h.normalize(v)) {
				return
			}
		}
	}
}

// All yields each coordinate with its value, in row-major order.
func (h *HeightField) All() iter.Seq2[Coord, float32] {
	return func(yield func(Coord, float32) bool) {
		for i, v := range h.data {
			if !yield(Coord{X: i % h.edge, Y: i / h.edge}, v) {
				return
			}
		}
	}
}
