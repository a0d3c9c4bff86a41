package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat provides atomic float64 operations via bit conversion
type AtomicFloat struct {
	bits atomic.Uint64
}

// Load returns the current value
func (f *AtomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Store sets the value
func (f *AtomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Max stores v when it exceeds the current value
func (f *AtomicFloat) Max(v float64) {
	for {
		old := f.bits.Load()
		if math.Float64frombits(old) >= v {
			return
		}
		if f.bits.CompareAndSwap(old, math.Float64bits(v)) {
			return
		}
	}
}
