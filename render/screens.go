package render

import (
	"fmt"

	"github.com/lixenwraith/gold-miner/session"
	"github.com/lixenwraith/gold-miner/status"
	"github.com/lixenwraith/gold-miner/store"
)

const storeHelp = "up/down select  enter buy  1-6 quick buy  n next level  q quit"

// DrawStore renders the between-level store with the selected row highlighted
func (r *Renderer) DrawStore(st *store.Store, sess *session.Session, selected int, message string) {
	r.clear()
	y := 1
	r.centered(y, fmt.Sprintf("STORE  level %d complete", sess.Level()), r.base.Bold(true).Foreground(RgbGold))
	y += 2
	r.centered(y, fmt.Sprintf("Money $%d", sess.Money()), r.base)
	y++
	if d := sess.Discount(); d != nil {
		r.centered(y, fmt.Sprintf("Card: %d%% off next purchase, %d%% debt", int(d.Rate*100+0.5), int(d.Debt*100+0.5)), r.base.Foreground(RgbCard))
		y++
	}
	if b := sess.BonusTime(); b > 0 {
		r.centered(y, "Next level "+store.FormatDuration(b), r.base.Foreground(RgbStressLow))
		y++
	}
	y++

	for i, it := range st.Items() {
		price, pay, err := st.Quote(it.ID)
		if err != nil {
			continue
		}
		cost := fmt.Sprintf("$%d", pay)
		if pay != price {
			cost = fmt.Sprintf("$%d (was $%d)", pay, price)
		}
		line := fmt.Sprintf(" %d. %-20s %-18s %s ", i+1, it.Name, it.Description, cost)
		style := r.base
		if i == selected {
			style = style.Background(RgbSelected).Bold(true)
		}
		if pay > sess.Money() {
			style = style.Foreground(RgbDimText)
		}
		r.text(2, y, line, style)
		y++
	}

	if message != "" {
		r.centered(y+1, message, r.base.Foreground(RgbStressMedium))
	}
	r.drawHelp(storeHelp)
	r.screen.Show()
}

// DrawGameOver renders the final summary with run counters
func (r *Renderer) DrawGameOver(sess *session.Session, reg *status.Registry) {
	r.clear()
	y := 2
	r.centered(y, "GAME OVER", r.base.Bold(true).Foreground(RgbStressHigh))
	y += 2
	r.centered(y, fmt.Sprintf("Level %d  money $%d  goal $%d", sess.Level(), sess.Money(), sess.Goal()), r.base)
	y += 2
	for _, s := range reg.Snapshot() {
		if y >= r.view.Height-2 {
			break
		}
		r.centered(y, fmt.Sprintf("%-20s %8.0f", s.Key, s.Value), r.base.Foreground(RgbDimText))
		y++
	}
	r.drawHelp("r restart  q quit")
	r.screen.Show()
}
