package spawn

import (
	"math"
	"math/rand/v2"

	"github.com/lixenwraith/gold-miner/collectible"
	"github.com/lixenwraith/gold-miner/field"
	"github.com/lixenwraith/gold-miner/geom"
	"github.com/lixenwraith/gold-miner/parameter"
)

// Area is the spawn rectangle below the miner
type Area struct {
	Width      float64
	Height     float64
	YOffset    float64 // center of the area
	MinSpacing float64
	Attempts   int
}

// DefaultArea returns the stock spawn rectangle
func DefaultArea() Area {
	return Area{
		Width:      parameter.SpawnAreaWidth,
		Height:     parameter.SpawnAreaHeight,
		YOffset:    parameter.SpawnAreaYOffset,
		MinSpacing: parameter.SpawnMinSpacing,
		Attempts:   parameter.SpawnMaxAttempts,
	}
}

// Rect returns the area as world bounds
func (a Area) Rect() geom.Rect {
	return geom.Rect{
		Min: geom.V(-a.Width/2, a.YOffset-a.Height/2),
		Max: geom.V(a.Width/2, a.YOffset+a.Height/2),
	}
}

// Spawner draws objects and zones with a seeded RNG
type Spawner struct {
	table *Table
	area  Area
	rng   *rand.Rand
}

// NewSpawner creates a deterministic spawner for seed
func NewSpawner(table *Table, area Area, seed uint64) *Spawner {
	return &Spawner{table: table, area: area, rng: rand.New(rand.NewPCG(seed, 0))}
}

// RNG exposes the spawner's generator for systems sharing the level seed
func (s *Spawner) RNG() *rand.Rand { return s.rng }

// Populate fills f for level; returns placed objects and zones
// Placement gives up on an object after Attempts positions closer than MinSpacing
func (s *Spawner) Populate(f *field.Field, level int) (objects, zones int) {
	if level < 1 {
		level = 1
	}
	var taken []geom.Vec2

	want := s.table.Objects + s.table.PerLevel*(level-1)
	for i := 0; i < want; i++ {
		e := s.pickEntry(level)
		if e == nil {
			break
		}
		pos, ok := s.place(taken)
		if !ok {
			continue
		}
		obj := collectible.New(e.kind, s.pickTier(e.Tiers), level, pos)
		if obj == nil {
			continue
		}
		f.Add(obj)
		taken = append(taken, pos)
		objects++
	}

	zt := s.table.Zones
	wantZones := zt.Count + int(math.Floor(zt.PerLevel*float64(level-1)))
	for i := 0; i < wantZones; i++ {
		pos, ok := s.place(taken)
		if !ok {
			continue
		}
		zw := s.pickZone()
		if zw == nil {
			break
		}
		f.AddZone(&field.Zone{Type: zw.stressType, Pos: pos, Radius: zt.Radius, Impact: zt.Impact})
		taken = append(taken, pos)
		zones++
	}
	return objects, zones
}

func (s *Spawner) place(taken []geom.Vec2) (geom.Vec2, bool) {
	r := s.area.Rect()
	for attempt := 0; attempt < max(s.area.Attempts, 1); attempt++ {
		p := geom.V(
			r.Min.X+s.rng.Float64()*s.area.Width,
			r.Min.Y+s.rng.Float64()*s.area.Height,
		)
		free := true
		for _, q := range taken {
			if p.Dist(q) < s.area.MinSpacing {
				free = false
				break
			}
		}
		if free {
			return p, true
		}
	}
	return geom.Vec2{}, false
}

func (s *Spawner) pickEntry(level int) *Entry {
	total := 0.0
	for i := range s.table.Entries {
		if e := &s.table.Entries[i]; e.MinLevel <= level {
			total += e.Weight
		}
	}
	if total <= 0 {
		return nil
	}
	roll := s.rng.Float64() * total
	var last *Entry
	for i := range s.table.Entries {
		e := &s.table.Entries[i]
		if e.MinLevel > level || e.Weight <= 0 {
			continue
		}
		last = e
		if roll < e.Weight {
			return e
		}
		roll -= e.Weight
	}
	return last
}

func (s *Spawner) pickTier(weights []float64) int {
	return weightedIndex(s.rng, weights)
}

func (s *Spawner) pickZone() *ZoneWeight {
	ws := make([]float64, len(s.table.Zones.Types))
	for i, z := range s.table.Zones.Types {
		ws[i] = z.Weight
	}
	if len(ws) == 0 {
		return nil
	}
	return &s.table.Zones.Types[weightedIndex(s.rng, ws)]
}

// weightedIndex draws an index proportional to weights, 0 when all are zero
func weightedIndex(rng *rand.Rand, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return 0
	}
	roll := rng.Float64() * total
	for i, w := range weights {
		if roll < w {
			return i
		}
		roll -= w
	}
	return len(weights) - 1
}
