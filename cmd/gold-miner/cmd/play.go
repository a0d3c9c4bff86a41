package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"
	runtimedebug "runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gold-miner/audio"
	"github.com/lixenwraith/gold-miner/game"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/render"
	"github.com/lixenwraith/gold-miner/session"
	"github.com/lixenwraith/gold-miner/store"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal (default)",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	sound := audio.NewSoundManager(cfg.Audio.Volume)
	if cfg.Audio.Enabled {
		if err := sound.Initialize(); err != nil {
			log.Printf("audio disabled: %v", err)
		}
		defer sound.Cleanup()
	}

	g, err := game.New(cfg, game.Options{Player: sound})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mGOLD-MINER CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", runtimedebug.Stack())
			os.Exit(1)
		}
	}()

	p := &player{game: g, sound: sound, renderer: render.NewRenderer(screen)}
	return p.loop(screen)
}

// player owns the interactive loop state
type player struct {
	game     *game.Game
	sound    *audio.SoundManager
	renderer *render.Renderer
	selected int
	message  string
}

func (p *player) loop(screen tcell.Screen) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.FrameUpdateInterval)
	defer ticker.Stop()
	last := time.Now()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				p.renderer.Resize()
			case *tcell.EventKey:
				done, err := p.handleKey(ev)
				if err != nil || done {
					return err
				}
			}
		case now := <-ticker.C:
			p.game.Tick(now.Sub(last))
			last = now
			p.draw()
		}
	}
}

func (p *player) handleKey(ev *tcell.EventKey) (bool, error) {
	sess := p.game.Session()
	act, index := keyAction(sess.State(), ev)
	switch act {
	case actQuit:
		return true, nil
	case actFire:
		p.game.Activate()
	case actPause:
		p.game.TogglePause()
	case actMute:
		p.sound.ToggleMute()
	case actUp:
		p.selected = (p.selected + len(store.Catalog) - 1) % len(store.Catalog)
	case actDown:
		p.selected = (p.selected + 1) % len(store.Catalog)
	case actBuy:
		p.buy(p.selected)
	case actBuyIndex:
		if index < len(store.Catalog) {
			p.selected = index
			p.buy(index)
		}
	case actNext:
		if err := p.game.NextLevel(); err != nil {
			return false, err
		}
		p.message = ""
	case actRestart:
		g, err := p.game.Restart()
		if err != nil {
			return false, err
		}
		p.game = g
		p.message = ""
	}
	return false, nil
}

func (p *player) buy(index int) {
	item := store.Catalog[index]
	r, err := p.game.Buy(item.ID)
	switch {
	case errors.Is(err, store.ErrInsufficientFunds):
		p.message = "Not enough money for " + item.Name
	case err != nil:
		p.message = err.Error()
	case r.Debt > 0:
		p.message = fmt.Sprintf("Bought %s for $%d, card debt $%d", item.Name, r.Paid, r.Debt)
	default:
		p.message = fmt.Sprintf("Bought %s for $%d", item.Name, r.Paid)
	}
}

func (p *player) draw() {
	w := p.game.World
	switch w.Session.State() {
	case session.Store:
		p.renderer.DrawStore(w.Store, w.Session, p.selected, p.message)
	case session.GameOver:
		p.renderer.DrawGameOver(w.Session, w.Status)
	default:
		p.renderer.Draw(w)
	}
}
