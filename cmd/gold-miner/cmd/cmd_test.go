package cmd

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gold-miner/config"
	"github.com/lixenwraith/gold-miner/game"
	"github.com/lixenwraith/gold-miner/session"
	"github.com/lixenwraith/gold-miner/status"
)

func TestSubcommandsRegistered(t *testing.T) {
	want := map[string]bool{"play": false, "sim": false, "tunables": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Subcommand %q not registered", name)
		}
	}
	for _, flag := range []string{"config", "debug", "seed", "spawn-table"} {
		if rootCmd.PersistentFlags().Lookup(flag) == nil {
			t.Errorf("Missing persistent flag --%s", flag)
		}
	}
}

func TestKeyAction(t *testing.T) {
	runeKey := func(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }
	key := func(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

	tests := []struct {
		name  string
		state session.State
		ev    *tcell.EventKey
		want  action
		index int
	}{
		{"space fires", session.Running, runeKey(' '), actFire, 0},
		{"j fires while running", session.Running, runeKey('j'), actFire, 0},
		{"down fires", session.Running, key(tcell.KeyDown), actFire, 0},
		{"pause", session.Running, runeKey('p'), actPause, 0},
		{"unpause", session.Paused, runeKey('p'), actPause, 0},
		{"mute", session.Running, runeKey('m'), actMute, 0},
		{"escape quits", session.Running, key(tcell.KeyEscape), actQuit, 0},
		{"q quits in store", session.Store, runeKey('q'), actQuit, 0},
		{"j moves in store", session.Store, runeKey('j'), actDown, 0},
		{"up in store", session.Store, key(tcell.KeyUp), actUp, 0},
		{"enter buys", session.Store, key(tcell.KeyEnter), actBuy, 0},
		{"digit buys index", session.Store, runeKey('3'), actBuyIndex, 2},
		{"next level", session.Store, runeKey('n'), actNext, 0},
		{"restart", session.GameOver, runeKey('r'), actRestart, 0},
		{"fire ignored on game over", session.GameOver, runeKey(' '), actNone, 0},
		{"restart ignored while running", session.Running, runeKey('r'), actNone, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, index := keyAction(tt.state, tt.ev)
			if got != tt.want || index != tt.index {
				t.Errorf("keyAction = (%d, %d), want (%d, %d)", got, index, tt.want, tt.index)
			}
		})
	}
}

func TestFormatReport(t *testing.T) {
	out := formatReport(game.Report{
		Seed:     42,
		Levels:   2,
		Level:    3,
		Money:    1250,
		Outcome:  "game over",
		Counters: []status.Sample{{Key: status.HookCasts, Value: 17}},
	})
	for _, want := range []string{"42", "game over", "$1250", status.HookCasts, "17"} {
		if !strings.Contains(out, want) {
			t.Errorf("Report missing %q:\n%s", want, out)
		}
	}
}

func TestFormatSettings(t *testing.T) {
	out := formatSettings(config.Settings(config.New()))
	for _, want := range []string{"[stress]", "stress.max_stress", "[audio]"} {
		if !strings.Contains(out, want) {
			t.Errorf("Settings missing %q", want)
		}
	}
}
