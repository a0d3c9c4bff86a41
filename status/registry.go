// Package status keeps run counters readable from the renderer and the simulator report
package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counter keys written by the simulation
const (
	RopeBreaks       = "rope.breaks"
	RopeRepairs      = "rope.repairs"
	RopeFreeGrants   = "rope.free_grants"
	HookCasts        = "hook.casts"
	HookDeliveries   = "hook.deliveries"
	HookEscapes      = "hook.escapes"
	HazardExplosions = "hazard.explosions"
	PenaltyRejected  = "penalty.rejected"
	EngineTicks      = "engine.ticks"
	StoreSales       = "store.sales"
)

// Gauge keys written by the simulation
const (
	RopePeakStress = "rope.peak_stress"
)

// Registry holds the counters and gauges of one run
// Systems resolve their pointers once at construction and write atomics every tick;
// the mutex only guards registration and reads of the whole set
type Registry struct {
	mu       sync.RWMutex
	counters map[string]*atomic.Int64
	gauges   map[string]*AtomicFloat
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		counters: make(map[string]*atomic.Int64),
		gauges:   make(map[string]*AtomicFloat),
	}
}

// Counter returns the counter for key, registering it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return resolve(&r.mu, r.counters, key)
}

// Gauge returns the gauge for key, registering it on first use
func (r *Registry) Gauge(key string) *AtomicFloat {
	return resolve(&r.mu, r.gauges, key)
}

func resolve[T any](mu *sync.RWMutex, m map[string]*T, key string) *T {
	mu.RLock()
	ptr, ok := m[key]
	mu.RUnlock()
	if ok {
		return ptr
	}

	mu.Lock()
	defer mu.Unlock()
	if ptr, ok := m[key]; ok {
		return ptr
	}
	ptr = new(T)
	m[key] = ptr
	return ptr
}

// Inc adds one to the named counter, nil registry is a no-op
func (r *Registry) Inc(key string) {
	if r == nil {
		return
	}
	r.Counter(key).Add(1)
}

// Int returns the counter value without registering it
func (r *Registry) Int(key string) int64 {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if c, ok := r.counters[key]; ok {
		return c.Load()
	}
	return 0
}

// Has reports whether a counter or gauge is registered under key
func (r *Registry) Has(key string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, counter := r.counters[key]
	_, gauge := r.gauges[key]
	return counter || gauge
}

// Sample is a point-in-time metric value
type Sample struct {
	Key   string
	Value float64
}

// Snapshot copies every counter and gauge, keys sorted
func (r *Registry) Snapshot() []Sample {
	r.mu.RLock()
	out := make([]Sample, 0, len(r.counters)+len(r.gauges))
	for k, c := range r.counters {
		out = append(out, Sample{Key: k, Value: float64(c.Load())})
	}
	for k, g := range r.gauges {
		out = append(out, Sample{Key: k, Value: g.Load()})
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out
}
