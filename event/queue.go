package event

import (
	"log"
	"sync"

	"github.com/lixenwraith/gold-miner/parameter"
)

// EventQueue buffers events between dispatches
// The simulation pushes from the game loop only; the mutex keeps Push safe for other goroutines
// Nothing is ever dropped: rope signals must reach the hook, so a backlog past
// parameter.EventQueueBacklog is logged instead of truncated
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
	spare   []GameEvent
	warned  bool
}

// NewEventQueue creates an empty queue
func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]GameEvent, 0, parameter.EventQueueBacklog)}
}

// Push appends an event for the next dispatch pass
func (eq *EventQueue) Push(ev GameEvent) {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	eq.pending = append(eq.pending, ev)
	if len(eq.pending) > parameter.EventQueueBacklog && !eq.warned {
		eq.warned = true
		log.Printf("event: backlog of %d events, last %s", len(eq.pending), ev.Type)
	}
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}

// Consume returns every pending event in FIFO order
// The returned slice is valid until the next Consume; events pushed while it is
// being handled land in the next batch
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	if len(eq.pending) == 0 {
		return nil
	}
	batch := eq.pending
	eq.pending = eq.spare[:0]
	eq.spare = batch
	eq.warned = false
	return batch
}
