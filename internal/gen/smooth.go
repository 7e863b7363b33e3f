package gen

import "github.com/Faultbox/terragen/internal/heightmap"

// Smooth replaces every sample in region with the mean of its Moore
// neighbours as listed by Neighbors. Interior samples exclude themselves;
// on the x=0 and y=0 edges the clamped entries weigh row and column 0 in.
// Reads come from a snapshot taken before the pass so the result does not
// depend on scan direction.
func Smooth(hf *heightmap.HeightField, region Rect) error {
	if err := region.check(hf); err != nil {
		return err
	}

	src := hf.Snapshot()
	sum := func(acc, v float32) float32 { return acc + v }
	for y := region.Top; y <= region.Bottom; y++ {
		for x := region.Left; x <= region.Right; x++ {
			n := src.NeighborCount(x, y)
			if n == 0 {
				continue
			}
			mean := src.ReduceNeighbors(x, y, 0, sum) / float32(n)
			if err := hf.PointSet(x, y, mean); err != nil {
				return err
			}
		}
	}
	return nil
}
