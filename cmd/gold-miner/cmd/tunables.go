package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/gold-miner/config"
)

var tunablesCmd = &cobra.Command{
	Use:   "tunables",
	Short: "List every tunable with its resolved value",
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := loadConfig(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), formatSettings(config.Settings(v)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tunablesCmd)
}

func formatSettings(settings []config.Setting) string {
	width := 0
	for _, s := range settings {
		width = max(width, len(s.Key))
	}
	label := labelStyle.Width(width + 2)

	var b strings.Builder
	b.WriteString(titleStyle.Render("Tunables"))
	b.WriteString("\n")
	section := ""
	for _, s := range settings {
		if head, _, ok := strings.Cut(s.Key, "."); ok && head != section {
			section = head
			b.WriteString("\n" + dimStyle.Render("["+section+"]") + "\n")
		}
		b.WriteString(label.Render(s.Key) + valueStyle.Render(s.Value) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
