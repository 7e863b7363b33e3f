package gen

import "github.com/Faultbox/terragen/internal/heightmap"

// Fractal is an incremental diamond-square subdivision. Each Step pops
// regions from a LIFO stack, writes the four edge midpoints and the jittered
// centre, and pushes the child quadrants that still have an interior point.
type Fractal struct {
	hf        *heightmap.HeightField
	rng       *Rand
	roughness float32

	stack     []Rect
	processed int
	expected  int
}

// NewFractal seeds the four region corners from rng and queues the region.
func NewFractal(hf *heightmap.HeightField, rng *Rand, region Rect, roughness float32) (*Fractal, error) {
	if err := region.check(hf); err != nil {
		return nil, err
	}

	for _, c := range [4]heightmap.Coord{
		{X: region.Left, Y: region.Top},
		{X: region.Right, Y: region.Top},
		{X: region.Left, Y: region.Bottom},
		{X: region.Right, Y: region.Bottom},
	} {
		if err := hf.PointSet(c.X, c.Y, rng.Float32()); err != nil {
			return nil, err
		}
	}

	f := &Fractal{
		hf:        hf,
		rng:       rng,
		roughness: roughness,
	}
	if subdivides(region) {
		f.stack = append(f.stack, region)
		f.expected = countRegions(region.Width(), region.Height(), map[[2]int]int{})
	}
	return f, nil
}

// subdivides reports whether r has a midpoint distinct from its corners.
func subdivides(r Rect) bool {
	return r.Width() >= 2 && r.Height() >= 2
}

func countRegions(w, h int, memo map[[2]int]int) int {
	if w < 2 || h < 2 {
		return 0
	}
	key := [2]int{w, h}
	if n, ok := memo[key]; ok {
		return n
	}
	lw, rw := w/2, w-w/2
	th, bh := h/2, h-h/2
	n := 1 + countRegions(lw, th, memo) + countRegions(rw, th, memo) +
		countRegions(lw, bh, memo) + countRegions(rw, bh, memo)
	memo[key] = n
	return n
}

// Step processes up to budget regions and returns how many it processed.
func (f *Fractal) Step(budget int) (int, error) {
	n := 0
	for n < budget && len(f.stack) > 0 {
		r := f.stack[len(f.stack)-1]
		f.stack = f.stack[:len(f.stack)-1]
		if err := f.subdivide(r); err != nil {
			return n, err
		}
		f.processed++
		n++
	}
	return n, nil
}

func (f *Fractal) subdivide(r Rect) error {
	tl := f.hf.GetIgnore(r.Left, r.Top)
	tr := f.hf.GetIgnore(r.Right, r.Top)
	bl := f.hf.GetIgnore(r.Left, r.Bottom)
	br := f.hf.GetIgnore(r.Right, r.Bottom)

	mx := r.Left + r.Width()/2
	my := r.Top + r.Height()/2

	spread := f.roughness * float32(r.Width()) / float32(f.hf.Edge())
	centre := (tl+tr+bl+br)/4 + (f.rng.Float32()-0.5)*spread

	writes := [5]struct {
		x, y int
		v    float32
	}{
		{mx, r.Top, (tl + tr) / 2},
		{r.Right, my, (tr + br) / 2},
		{mx, r.Bottom, (bl + br) / 2},
		{r.Left, my, (tl + bl) / 2},
		{mx, my, centre},
	}
	for _, w := range writes {
		if err := f.hf.PointSet(w.x, w.y, w.v); err != nil {
			return err
		}
	}

	for _, child := range [4]Rect{
		{r.Left, r.Top, mx, my},
		{mx, r.Top, r.Right, my},
		{r.Left, my, mx, r.Bottom},
		{mx, my, r.Right, r.Bottom},
	} {
		if subdivides(child) {
			f.stack = append(f.stack, child)
		}
	}
	return nil
}

// Done reports whether the stack is empty.
func (f *Fractal) Done() bool { return len(f.stack) == 0 }

// Pending returns the number of queued regions.
func (f *Fractal) Pending() int { return len(f.stack) }

// Progress returns the processed share of all regions the subdivision will
// visit, in [0, 1].
func (f *Fractal) Progress() float32 {
	if f.expected == 0 {
		return 1
	}
	return float32(f.processed) / float32(f.expected)
}
