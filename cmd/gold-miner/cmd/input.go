package cmd

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gold-miner/session"
)

// action is a key press resolved for the current screen
type action int

const (
	actNone action = iota
	actQuit
	actFire
	actPause
	actMute
	actUp
	actDown
	actBuy
	actBuyIndex
	actNext
	actRestart
)

// keyAction maps a key to an action for the session state
// actBuyIndex carries the zero-based item index
func keyAction(state session.State, ev *tcell.EventKey) (action, int) {
	switch ev.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return actQuit, 0
	}
	r := ev.Rune()
	if ev.Key() == tcell.KeyRune && r == 'q' {
		return actQuit, 0
	}

	switch state {
	case session.Running, session.Paused:
		switch ev.Key() {
		case tcell.KeyDown, tcell.KeyEnter:
			return actFire, 0
		case tcell.KeyRune:
			switch r {
			case ' ', 'j':
				return actFire, 0
			case 'p':
				return actPause, 0
			case 'm':
				return actMute, 0
			}
		}
	case session.Store:
		switch ev.Key() {
		case tcell.KeyUp:
			return actUp, 0
		case tcell.KeyDown:
			return actDown, 0
		case tcell.KeyEnter:
			return actBuy, 0
		case tcell.KeyRune:
			switch {
			case r == 'k':
				return actUp, 0
			case r == 'j':
				return actDown, 0
			case r == 'n':
				return actNext, 0
			case r >= '1' && r <= '9':
				return actBuyIndex, int(r - '1')
			}
		}
	case session.GameOver:
		if ev.Key() == tcell.KeyRune && r == 'r' {
			return actRestart, 0
		}
	}
	return actNone, 0
}
