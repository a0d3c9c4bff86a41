package system

import (
	"time"

	"github.com/lixenwraith/gold-miner/audio"
	"github.com/lixenwraith/gold-miner/engine"
	"github.com/lixenwraith/gold-miner/event"
	"github.com/lixenwraith/gold-miner/parameter"
)

// Player plays a sound cue, satisfied by *audio.SoundManager
type Player interface {
	Play(s audio.Sound)
}

// AudioSystem maps game events to sound cues
type AudioSystem struct {
	player Player
}

// NewAudioSystem creates the system; a nil player silences it
func NewAudioSystem(player Player) *AudioSystem {
	return &AudioSystem{player: player}
}

func (s *AudioSystem) Priority() int { return parameter.PriorityAudio }

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventCaught,
		event.EventDelivered,
		event.EventRopeBreak,
		event.EventRopeRepaired,
		event.EventExplosion,
		event.EventPurchase,
	}
}

func (s *AudioSystem) HandleEvent(w *engine.World, ev event.GameEvent) {
	if s.player == nil {
		return
	}
	switch ev.Type {
	case event.EventCaught:
		if p, ok := ev.Payload.(*event.CaughtPayload); ok && p.Escape {
			s.player.Play(audio.SoundError)
			return
		}
		s.player.Play(audio.SoundCatch)
	case event.EventDelivered:
		p, ok := ev.Payload.(*event.DeliveredPayload)
		if !ok {
			return
		}
		switch {
		case p.Value > 0:
			s.player.Play(audio.SoundCoin)
		case p.Value < 0:
			s.player.Play(audio.SoundError)
		}
	case event.EventRopeBreak:
		s.player.Play(audio.SoundBreak)
	case event.EventRopeRepaired:
		s.player.Play(audio.SoundRepair)
	case event.EventExplosion:
		s.player.Play(audio.SoundExplosion)
	case event.EventPurchase:
		if p, ok := ev.Payload.(*event.PurchasePayload); ok && p.OK {
			s.player.Play(audio.SoundCoin)
			return
		}
		s.player.Play(audio.SoundError)
	}
}

func (s *AudioSystem) Update(*engine.World, time.Duration) {}
