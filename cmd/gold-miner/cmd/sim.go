package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/gold-miner/game"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffe66d"))
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#4ecdc4")).Width(22)
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888888"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#888888")).
			Padding(0, 1)
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a seeded headless game with an auto-fire policy",
	Long: `sim plays without a terminal: the autopilot fires whenever the swing lines
up with a wanted object and shops greedily between levels. The same seed
and config always produce the same report.`,
	RunE: runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)
	simCmd.Flags().Int("levels", 5, "stop after passing this many levels, 0 plays until game over")
	simCmd.Flags().Int("min-value", 1, "autopilot ignores objects worth less")
}

func runSim(cmd *cobra.Command, args []string) error {
	levels, _ := cmd.Flags().GetInt("levels")
	minValue, _ := cmd.Flags().GetInt("min-value")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	cfg.Audio.Enabled = false

	g, err := game.New(cfg, game.Options{})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rep := game.RunHeadless(ctx, g, game.Autopilot{MinValue: minValue}, levels)
	fmt.Fprintln(cmd.OutOrStdout(), formatReport(rep))
	return nil
}

func formatReport(rep game.Report) string {
	row := func(label string, value any) string {
		return labelStyle.Render(label) + valueStyle.Render(fmt.Sprint(value))
	}
	lines := []string{
		titleStyle.Render("Gold Miner simulation"),
		"",
		row("seed", rep.Seed),
		row("outcome", rep.Outcome),
		row("levels passed", rep.Levels),
		row("level reached", rep.Level),
		row("money", fmt.Sprintf("$%d", rep.Money)),
		row("ticks", rep.Ticks),
		row("purchases", rep.Purchase),
	}
	if len(rep.Counters) > 0 {
		lines = append(lines, "", dimStyle.Render("counters"))
		for _, c := range rep.Counters {
			lines = append(lines, row(c.Key, int64(c.Value)))
		}
	}
	return boxStyle.Render(strings.Join(lines, "\n"))
}
