package rope

import (
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/event"
)

// Inventory is the rope stock of a level
// At zero ropes a single drought timer grants one free rope unless ropes arrive first
type Inventory struct {
	count   int
	delay   time.Duration
	drought *clock.Timer

	sched Scheduler
	local localClock
	sink  Sink
}

// NewInventory creates a stock of count ropes; nil sched uses a private clock advanced by Update
func NewInventory(count int, freeRopeDelay time.Duration, sched Scheduler, sink Sink) *Inventory {
	inv := &Inventory{count: max(count, 0), delay: freeRopeDelay, sink: sink}
	inv.sched, inv.local = resolveScheduler(sched)
	return inv
}

// Count returns the ropes left
func (inv *Inventory) Count() int { return inv.count }

// DroughtActive reports whether a free rope is pending
func (inv *Inventory) DroughtActive() bool { return inv.drought.Active() }

// DroughtRemaining returns the countdown to the free rope, zero when none is pending
func (inv *Inventory) DroughtRemaining() time.Duration { return inv.drought.Remaining() }

// OnBreak consumes a rope and starts the drought when the stock runs out
func (inv *Inventory) OnBreak() {
	if inv.count > 0 {
		inv.count--
		inv.changed(-1, event.RopeCountBreak)
	}
	if inv.count <= 0 && !inv.drought.Active() {
		inv.drought = inv.sched.After(inv.delay, inv.grantFree)
		emit(inv.sink, event.EventDroughtStarted, &event.DroughtPayload{Duration: inv.delay})
	}
}

func (inv *Inventory) grantFree() {
	inv.drought = nil
	if inv.count > 0 {
		return
	}
	inv.count = 1
	inv.changed(1, event.RopeCountGrant)
}

// AddRopes adds n ropes and cancels a pending drought
func (inv *Inventory) AddRopes(n int) {
	if n <= 0 {
		return
	}
	inv.count += n
	inv.drought.Cancel()
	inv.drought = nil
	inv.changed(n, event.RopeCountPurchase)
}

// Reset restores the stock for a new level
func (inv *Inventory) Reset(count int) {
	inv.drought.Cancel()
	inv.drought = nil
	delta := max(count, 0) - inv.count
	inv.count = max(count, 0)
	inv.changed(delta, event.RopeCountReset)
}

// Update advances the private clock when no scheduler was injected
func (inv *Inventory) Update(dt time.Duration) {
	inv.local.advance(dt)
}

func (inv *Inventory) changed(delta int, reason event.RopeCountReason) {
	emit(inv.sink, event.EventRopeCountChanged, &event.RopeCountPayload{Count: inv.count, Delta: delta, Reason: reason})
}
