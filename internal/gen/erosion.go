package gen

import "github.com/Faultbox/terragen/internal/heightmap"

// drop is a reverse-rain agent. It climbs to its steepest ascending
// neighbour each tick, depositing as it goes.
type drop struct {
	pos      heightmap.Coord
	next     heightmap.Coord
	moving   bool
	strength float32
}

// Erosion runs reverse rain: agents spawned at random cells climb uphill,
// raising the cell they land on by their strength and its neighbours by half
// of it, until they reach a local peak and retire.
type Erosion struct {
	hf       *heightmap.HeightField
	drops    []drop
	spawned  int
	retired  int
	ticks    int
	maxTicks int
}

// NewErosion spawns count agents at uniformly random cells of region. Once
// maxTicks ticks have run, any agent still climbing is retired.
func NewErosion(hf *heightmap.HeightField, rng *Rand, region Rect, count int, strength float32, maxTicks int) (*Erosion, error) {
	if err := region.check(hf); err != nil {
		return nil, err
	}

	e := &Erosion{
		hf:       hf,
		drops:    make([]drop, 0, count),
		spawned:  count,
		maxTicks: maxTicks,
	}
	for range count {
		p := heightmap.Coord{
			X: region.Left + rng.IntN(region.Width()+1),
			Y: region.Top + rng.IntN(region.Height()+1),
		}
		e.drops = append(e.drops, drop{pos: p, next: p, moving: true, strength: strength})
	}
	return e, nil
}

// Tick advances every agent once. All agents pick their next cell against
// the field as it stood at the start of the tick; deposits land afterwards.
// Agents that end the tick on the same cell merge, pooling their strength.
func (e *Erosion) Tick() {
	if e.Done() {
		return
	}

	for i := range e.drops {
		d := &e.drops[i]
		d.next, d.moving = e.hf.CompareToNeighbors(d.pos.X, d.pos.Y, heightmap.Greater)
	}

	live := e.drops[:0]
	for _, d := range e.drops {
		if !d.moving {
			e.retired++
			continue
		}
		d.pos = d.next
		e.hf.PointRaise(d.pos.X, d.pos.Y, d.strength)
		e.hf.NeighborRaise(d.pos.X, d.pos.Y, d.strength/2)
		live = append(live, d)
	}
	e.drops = e.merge(live)

	e.ticks++
	if e.maxTicks > 0 && e.ticks >= e.maxTicks {
		e.retired += len(e.drops)
		e.drops = e.drops[:0]
	}
}

func (e *Erosion) merge(drops []drop) []drop {
	seen := make(map[heightmap.Coord]int, len(drops))
	out := drops[:0]
	for _, d := range drops {
		if i, ok := seen[d.pos]; ok {
			out[i].strength += d.strength
			e.retired++
			continue
		}
		seen[d.pos] = len(out)
		out = append(out, d)
	}
	return out
}

// Live returns the number of climbing agents.
func (e *Erosion) Live() int { return len(e.drops) }

// Ticks returns how many ticks have run.
func (e *Erosion) Ticks() int { return e.ticks }

// Done reports whether every agent has retired.
func (e *Erosion) Done() bool { return len(e.drops) == 0 }

// Progress returns the retired share of spawned agents, in [0, 1].
func (e *Erosion) Progress() float32 {
	if e.spawned == 0 {
		return 1
	}
	return float32(e.retired) / float32(e.spawned)
}
