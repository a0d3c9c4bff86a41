package status

import (
	"sync"
	"testing"
)

func TestRegistryCounters(t *testing.T) {
	r := NewRegistry()
	r.Inc(RopeBreaks)
	r.Inc(RopeBreaks)
	r.Inc(HookDeliveries)

	if got := r.Int(RopeBreaks); got != 2 {
		t.Errorf("Expected 2 breaks, got %d", got)
	}
	if got := r.Int(HazardExplosions); got != 0 {
		t.Errorf("Expected unknown counter 0, got %d", got)
	}
	if r.Has(HazardExplosions) {
		t.Error("Reading a counter should not register it")
	}
}

func TestRegistryNilSafe(t *testing.T) {
	var r *Registry
	r.Inc(RopeBreaks)
	if r.Int(RopeBreaks) != 0 {
		t.Error("Nil registry should read zero")
	}
}

func TestSnapshotSorted(t *testing.T) {
	r := NewRegistry()
	r.Inc(RopeRepairs)
	r.Inc(EngineTicks)
	r.Gauge(RopePeakStress).Max(412.5)
	r.Gauge(RopePeakStress).Max(100)

	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("Expected 3 samples, got %d", len(snap))
	}
	for i := 1; i < len(snap); i++ {
		if snap[i-1].Key > snap[i].Key {
			t.Errorf("Snapshot not sorted: %v", snap)
		}
	}
	for _, s := range snap {
		if s.Key == RopePeakStress && s.Value != 412.5 {
			t.Errorf("Max should keep 412.5, got %v", s.Value)
		}
	}
}

func TestConcurrentInc(t *testing.T) {
	r := NewRegistry()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r.Inc(EngineTicks)
			}
		}()
	}
	wg.Wait()
	if got := r.Int(EngineTicks); got != 800 {
		t.Errorf("Expected 800, got %d", got)
	}
}

func TestCachedPointersShareState(t *testing.T) {
	r := NewRegistry()
	casts := r.Counter(HookCasts)
	casts.Add(2)
	r.Inc(HookCasts)

	if r.Counter(HookCasts) != casts {
		t.Error("Counter should return the cached pointer")
	}
	if got := r.Int(HookCasts); got != 3 {
		t.Errorf("Expected 3 casts, got %d", got)
	}
	if !r.Has(HookCasts) || r.Has(RopePeakStress) {
		t.Error("Only the used key should be registered")
	}
	r.Gauge(RopePeakStress).Store(12)
	if !r.Has(RopePeakStress) {
		t.Error("Gauge should register its key")
	}
}
