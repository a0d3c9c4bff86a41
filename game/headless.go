package game

import (
	"context"
	"log"

	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/session"
	"github.com/lixenwraith/gold-miner/status"
)

// Report summarizes a headless run
type Report struct {
	Seed     uint64
	Levels   int // levels passed
	Level    int // level reached
	Money    int
	Ticks    int64
	Purchase int
	Outcome  string
	Counters []status.Sample
}

// RunHeadless plays g with the autopilot until game over, maxLevels passed or ctx is done
func RunHeadless(ctx context.Context, g *Game, pilot Autopilot, maxLevels int) Report {
	rep := Report{Seed: g.Seed()}
	sess := g.Session()
	w := g.World

loop:
	for {
		select {
		case <-ctx.Done():
			rep.Outcome = "cancelled"
			break loop
		default:
		}

		switch sess.State() {
		case session.Running:
			if pilot.ShouldFire(w) {
				g.Activate()
			}
			g.Tick(parameter.GameUpdateInterval)
		case session.Paused:
			g.TogglePause()
		case session.Store:
			rep.Levels++
			if maxLevels > 0 && rep.Levels >= maxLevels {
				rep.Outcome = "level cap"
				break loop
			}
			rep.Purchase += len(pilot.Shop(g))
			if err := g.NextLevel(); err != nil {
				log.Printf("headless: %v", err)
				rep.Outcome = "error"
				break loop
			}
		case session.GameOver:
			rep.Outcome = "game over"
			break loop
		}
	}

	rep.Level = sess.Level()
	rep.Money = sess.Money()
	rep.Ticks = w.Tick()
	rep.Counters = w.Status.Snapshot()
	return rep
}
