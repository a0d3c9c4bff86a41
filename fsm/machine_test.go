package fsm

import (
	"testing"
	"time"

	"github.com/lixenwraith/gold-miner/event"
)

const (
	stateOn StateID = iota + 2
	stateIdle
	stateBusy
	stateOff
)

type probe struct {
	log   []string
	ready bool
	ticks int
}

func (p *probe) add(s string) ActionFunc[*probe] {
	return func(ctx *probe, _ any) { ctx.log = append(ctx.log, s) }
}

func buildMachine(t *testing.T, p *probe) *Machine[*probe] {
	t.Helper()
	m := NewMachine[*probe]()
	m.AddState(StateRoot, "Root", StateNone)
	m.AddState(stateOn, "On", StateRoot).
		Enter(p.add("enter On")).
		Exit(p.add("exit On")).
		On(event.EventRopeBreak, stateOff, nil)
	m.AddState(stateIdle, "Idle", stateOn).
		Enter(p.add("enter Idle")).
		Exit(p.add("exit Idle")).
		On(event.EventActivate, stateBusy, func(ctx *probe) bool { return ctx.ready })
	m.AddState(stateBusy, "Busy", stateOn).
		Enter(p.add("enter Busy")).
		Update(func(ctx *probe, _ any) { ctx.ticks++ }).
		On(event.EventNone, stateIdle, func(ctx *probe) bool { return ctx.ticks >= 3 })
	m.AddState(stateOff, "Off", StateRoot).
		Enter(p.add("enter Off")).
		On(event.EventRopeRepaired, stateIdle, nil)

	if err := m.Init(p, stateIdle); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	return m
}

func TestInitEntersPath(t *testing.T) {
	p := &probe{}
	m := buildMachine(t, p)

	want := []string{"enter On", "enter Idle"}
	if len(p.log) != 2 || p.log[0] != want[0] || p.log[1] != want[1] {
		t.Errorf("Expected %v, got %v", want, p.log)
	}
	if m.CurrentName() != "Idle" || !m.IsIn(stateOn) || !m.IsIn(StateRoot) {
		t.Errorf("Unexpected active path, leaf %s", m.CurrentName())
	}
}

func TestGuardedEvent(t *testing.T) {
	p := &probe{}
	m := buildMachine(t, p)

	if m.HandleEvent(p, event.EventActivate) {
		t.Error("Guard false should block transition")
	}
	p.ready = true
	if !m.HandleEvent(p, event.EventActivate) {
		t.Fatal("Guard true should allow transition")
	}
	if m.Current() != stateBusy {
		t.Errorf("Expected Busy, got %s", m.CurrentName())
	}
}

func TestTickTransitionAndTimeInState(t *testing.T) {
	p := &probe{ready: true}
	m := buildMachine(t, p)
	m.HandleEvent(p, event.EventActivate)

	m.Update(p, 10*time.Millisecond)
	m.Update(p, 10*time.Millisecond)
	if m.TimeInState() != 20*time.Millisecond {
		t.Errorf("Expected 20ms in state, got %v", m.TimeInState())
	}
	m.Update(p, 10*time.Millisecond)
	if m.Current() != stateIdle {
		t.Errorf("Expected tick transition back to Idle, got %s", m.CurrentName())
	}
	if m.TimeInState() != 0 {
		t.Errorf("TimeInState should reset on transition, got %v", m.TimeInState())
	}
}

func TestEventBubblesToParent(t *testing.T) {
	p := &probe{}
	m := buildMachine(t, p)
	p.log = nil

	var from, to StateID
	m.OnTransition(func(f, tt StateID) { from, to = f, tt })

	if !m.HandleEvent(p, event.EventRopeBreak) {
		t.Fatal("Parent transition not taken")
	}
	want := []string{"exit Idle", "exit On", "enter Off"}
	if len(p.log) != len(want) {
		t.Fatalf("Expected %v, got %v", want, p.log)
	}
	for i := range want {
		if p.log[i] != want[i] {
			t.Errorf("Step %d: expected %s, got %s", i, want[i], p.log[i])
		}
	}
	if from != stateIdle || to != stateOff {
		t.Errorf("Observer saw %d -> %d", from, to)
	}

	// Unhandled in Off
	if m.HandleEvent(p, event.EventActivate) {
		t.Error("Off should ignore Activate")
	}
}

func TestCompileRejectsMissingTarget(t *testing.T) {
	m := NewMachine[*probe]()
	m.AddState(StateRoot, "Root", StateNone).On(event.EventActivate, 42, nil)
	if err := m.CompilePaths(); err == nil {
		t.Error("Expected error for unknown transition target")
	}
}

func TestReset(t *testing.T) {
	p := &probe{ready: true}
	m := buildMachine(t, p)
	m.HandleEvent(p, event.EventRopeBreak)
	if err := m.Reset(p); err != nil {
		t.Fatalf("Reset failed: %v", err)
	}
	if m.Current() != stateIdle {
		t.Errorf("Expected Idle after reset, got %s", m.CurrentName())
	}
}
