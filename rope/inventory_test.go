package rope

import (
	"testing"
	"time"

	"github.com/lixenwraith/gold-miner/clock"
	"github.com/lixenwraith/gold-miner/event"
)

func TestInventoryDroughtCancelledByPurchase(t *testing.T) {
	sched := clock.NewScheduler()
	q := event.NewEventQueue()
	inv := NewInventory(1, 3*time.Second, sched, q)

	inv.OnBreak()
	if inv.Count() != 0 {
		t.Fatalf("Expected 0 ropes, got %d", inv.Count())
	}
	if !inv.DroughtActive() {
		t.Fatal("Drought should start at zero ropes")
	}
	if countType(q.Consume(), event.EventDroughtStarted) != 1 {
		t.Error("Expected a drought started event")
	}

	inv.AddRopes(1)
	if inv.DroughtActive() {
		t.Error("AddRopes must cancel the drought")
	}
	sched.Advance(5 * time.Second)
	if inv.Count() != 1 {
		t.Errorf("Expected exactly 1 rope, got %d", inv.Count())
	}
}

func TestInventoryFreeGrant(t *testing.T) {
	sched := clock.NewScheduler()
	q := event.NewEventQueue()
	inv := NewInventory(1, 3*time.Second, sched, q)

	inv.OnBreak()
	inv.OnBreak() // Second break during drought: no new timer, count stays 0
	if inv.Count() != 0 {
		t.Errorf("Count must not go negative, got %d", inv.Count())
	}
	if sched.Pending() != 1 {
		t.Errorf("Expected a single drought timer, got %d", sched.Pending())
	}

	sched.Advance(2 * time.Second)
	if r := inv.DroughtRemaining(); r != time.Second {
		t.Errorf("Expected 1s remaining, got %v", r)
	}
	q.Consume()

	sched.Advance(time.Second)
	if inv.Count() != 1 || inv.DroughtActive() {
		t.Errorf("Expected free rope granted, count %d", inv.Count())
	}
	events := q.Consume()
	if len(events) != 1 {
		t.Fatalf("Expected one count change, got %d", len(events))
	}
	p := events[0].Payload.(*event.RopeCountPayload)
	if p.Reason != event.RopeCountGrant || p.Count != 1 || p.Delta != 1 {
		t.Errorf("Unexpected grant payload %+v", p)
	}
}

func TestInventoryBreakWithRopesLeft(t *testing.T) {
	inv := NewInventory(3, 3*time.Second, nil, nil)
	inv.OnBreak()
	if inv.Count() != 2 || inv.DroughtActive() {
		t.Errorf("Expected 2 ropes and no drought, got %d", inv.Count())
	}
}

func TestInventoryPrivateClockAndReset(t *testing.T) {
	inv := NewInventory(0, time.Second, nil, nil)
	inv.OnBreak()
	inv.Update(time.Second)
	if inv.Count() != 1 {
		t.Errorf("Private clock should grant, got %d", inv.Count())
	}

	inv.OnBreak()
	inv.Reset(3)
	inv.Update(5 * time.Second)
	if inv.Count() != 3 || inv.DroughtActive() {
		t.Errorf("Reset should restore 3 and cancel drought, got %d", inv.Count())
	}

	inv.AddRopes(0)
	inv.AddRopes(-2)
	if inv.Count() != 3 {
		t.Error("Non-positive AddRopes must be ignored")
	}
}
