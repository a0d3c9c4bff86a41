// Package cmd contains the gold-miner CLI commands
package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/lixenwraith/gold-miner/config"
)

var (
	cfgFile string
	debug   bool
	logFile *os.File

	v = config.New()
)

// rootCmd plays the game when called without a subcommand
var rootCmd = &cobra.Command{
	Use:   "gold-miner",
	Short: "Terminal Gold Miner with rope stress",
	Long: `gold-miner is a terminal take on the Gold Miner arcade game.

A hook swings under the miner; fire it to catch gold and rocks, watch the
rope stress while pulling heavy loads, and spend earnings in the store
between levels.

Tunables come from defaults, an optional --config file (TOML or YAML)
and GOLDMINER_* environment variables, e.g. GOLDMINER_STRESS_MAX_STRESS.`,
	SilenceUsage: true,
	RunE:         runPlay,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (toml or yaml)")
	flags.BoolVar(&debug, "debug", false, "write logs to "+logDir+"/"+logFileName)
	flags.Uint64("seed", 0, "spawn seed, 0 picks one from the clock")
	flags.String("spawn-table", "", "spawn table yaml, empty uses the built-in table")

	bindFlag(v, "spawn.seed", "seed")
	bindFlag(v, "spawn.table", "spawn-table")
}

func bindFlag(v *viper.Viper, key, flag string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(fmt.Sprintf("binding %s: %v", flag, err))
	}
}

func initLogging() {
	logFile = setupLogging(debug)
}

// loadConfig resolves the tunables for a command
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(v, cfgFile)
	if err != nil {
		return nil, err
	}
	log.Printf("config: file %q seed %d table %q", cfgFile, cfg.Spawn.Seed, cfg.Spawn.Table)
	return cfg, nil
}
