// Package config loads game tunables from defaults, an optional file and GOLDMINER_* environment variables
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/gold-miner/hook"
	"github.com/lixenwraith/gold-miner/parameter"
	"github.com/lixenwraith/gold-miner/rope"
	"github.com/lixenwraith/gold-miner/session"
)

// EnvPrefix prefixes environment overrides, e.g. GOLDMINER_STRESS_MAX_STRESS
const EnvPrefix = "GOLDMINER"

// ErrInvalid reports a tunable outside its accepted range
var ErrInvalid = errors.New("invalid config")

// Config groups every tunable section
type Config struct {
	Stress StressSection `mapstructure:"stress"`
	Hook   HookSection   `mapstructure:"hook"`
	Ropes  RopeSection   `mapstructure:"ropes"`
	Level  LevelSection  `mapstructure:"level"`
	Spawn  SpawnSection  `mapstructure:"spawn"`
	Audio  AudioSection  `mapstructure:"audio"`
}

type StressSection struct {
	MaxStress           float64       `mapstructure:"max_stress"`
	DecayRate           float64       `mapstructure:"decay_rate"`
	StressPerPull       float64       `mapstructure:"stress_per_pull"`
	StressPerWeightUnit float64       `mapstructure:"stress_per_weight_unit"`
	BreakThreshold      float64       `mapstructure:"break_threshold"`
	RepairTime          time.Duration `mapstructure:"repair_time"`
	PenaltyDecayRate    float64       `mapstructure:"penalty_decay_rate"`
}

type HookSection struct {
	SwingSpeed    float64 `mapstructure:"swing_speed"`
	MaxSwingAngle float64 `mapstructure:"max_swing_angle"`
	Speed         float64 `mapstructure:"speed"`
	MaxDistance   float64 `mapstructure:"max_distance"`
	PullSpeed     float64 `mapstructure:"pull_speed"`
}

type RopeSection struct {
	Starting      int           `mapstructure:"starting"`
	FreeRopeDelay time.Duration `mapstructure:"free_rope_delay"`
}

type LevelSection struct {
	Duration time.Duration `mapstructure:"duration"`
	GoalBase int           `mapstructure:"goal_base"`
	GoalStep int           `mapstructure:"goal_step"`
}

type SpawnSection struct {
	Table string `mapstructure:"table"` // empty uses the embedded table
	Seed  uint64 `mapstructure:"seed"`  // zero picks a time-based seed
}

type AudioSection struct {
	Enabled bool    `mapstructure:"enabled"`
	Volume  float64 `mapstructure:"volume"` // beep volume offset, base 2
}

// SetDefaults registers every key with its stock value
func SetDefaults(v *viper.Viper) {
	v.SetDefault("stress.max_stress", parameter.MaxStress)
	v.SetDefault("stress.decay_rate", parameter.StressDecayRate)
	v.SetDefault("stress.stress_per_pull", parameter.StressPerPull)
	v.SetDefault("stress.stress_per_weight_unit", parameter.StressPerWeightUnit)
	v.SetDefault("stress.break_threshold", parameter.BreakThreshold)
	v.SetDefault("stress.repair_time", parameter.RepairTime)
	v.SetDefault("stress.penalty_decay_rate", parameter.PenaltyDecayRate)

	v.SetDefault("hook.swing_speed", parameter.SwingSpeed)
	v.SetDefault("hook.max_swing_angle", parameter.MaxSwingAngle)
	v.SetDefault("hook.speed", parameter.HookSpeed)
	v.SetDefault("hook.max_distance", parameter.MaxHookDistance)
	v.SetDefault("hook.pull_speed", parameter.BasePullSpeed)

	v.SetDefault("ropes.starting", parameter.StartingRopes)
	v.SetDefault("ropes.free_rope_delay", parameter.FreeRopeDelay)

	v.SetDefault("level.duration", parameter.LevelDuration)
	v.SetDefault("level.goal_base", parameter.LevelGoalBase)
	v.SetDefault("level.goal_step", parameter.LevelGoalStep)

	v.SetDefault("spawn.table", "")
	v.SetDefault("spawn.seed", 0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.volume", 0.0)
}

// New returns a viper instance with defaults and environment binding
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional file at path into v and decodes the result
// Format follows the file extension (toml, yaml, json)
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Default returns the stock configuration
func Default() *Config {
	c, err := Load(New(), "")
	if err != nil {
		// Stock defaults always validate
		panic(err)
	}
	return c
}

// Validate rejects values that would stall or break the simulation
func (c *Config) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Stress.MaxStress > 0, "stress.max_stress must be positive"},
		{c.Stress.DecayRate >= 0, "stress.decay_rate must not be negative"},
		{c.Stress.StressPerPull >= 0, "stress.stress_per_pull must not be negative"},
		{c.Stress.StressPerWeightUnit >= 0, "stress.stress_per_weight_unit must not be negative"},
		{c.Stress.BreakThreshold >= 1, "stress.break_threshold must be at least 1"},
		{c.Stress.RepairTime > 0, "stress.repair_time must be positive"},
		{c.Stress.PenaltyDecayRate >= 0, "stress.penalty_decay_rate must not be negative"},
		{c.Hook.SwingSpeed > 0, "hook.swing_speed must be positive"},
		{c.Hook.MaxSwingAngle > 0 && c.Hook.MaxSwingAngle < 90, "hook.max_swing_angle must be in (0, 90)"},
		{c.Hook.Speed > 0, "hook.speed must be positive"},
		{c.Hook.MaxDistance > parameter.SwingRadius, "hook.max_distance must exceed the swing radius"},
		{c.Hook.PullSpeed > 0, "hook.pull_speed must be positive"},
		{c.Ropes.Starting >= 0, "ropes.starting must not be negative"},
		{c.Ropes.FreeRopeDelay > 0, "ropes.free_rope_delay must be positive"},
		{c.Level.Duration > 0, "level.duration must be positive"},
		{c.Level.GoalBase >= 0 && c.Level.GoalStep >= 0, "level goals must not be negative"},
	}
	for _, chk := range checks {
		if !chk.ok {
			return fmt.Errorf("%w: %s", ErrInvalid, chk.msg)
		}
	}
	return nil
}

// StressConfig maps the stress section onto the accumulator tunables
func (c *Config) StressConfig() rope.StressConfig {
	sc := rope.DefaultStressConfig()
	sc.MaxStress = c.Stress.MaxStress
	sc.DecayRate = c.Stress.DecayRate
	sc.StressPerPull = c.Stress.StressPerPull
	sc.StressPerWeightUnit = c.Stress.StressPerWeightUnit
	sc.BreakThreshold = c.Stress.BreakThreshold
	sc.RepairTime = c.Stress.RepairTime
	return sc
}

// HookConfig maps the hook section onto hook geometry
func (c *Config) HookConfig() hook.Config {
	hc := hook.DefaultConfig()
	hc.SwingSpeed = c.Hook.SwingSpeed
	hc.MaxSwingAngle = c.Hook.MaxSwingAngle
	hc.HookSpeed = c.Hook.Speed
	hc.MaxDistance = c.Hook.MaxDistance
	hc.BasePullSpeed = c.Hook.PullSpeed
	return hc
}

// SessionConfig maps the level section onto session pacing
func (c *Config) SessionConfig() session.Config {
	return session.Config{
		LevelDuration: c.Level.Duration,
		GoalBase:      c.Level.GoalBase,
		GoalStep:      c.Level.GoalStep,
	}
}

// Setting is a resolved key and its value
type Setting struct {
	Key   string
	Value string
}

// Settings lists every key of v in sorted order
func Settings(v *viper.Viper) []Setting {
	keys := v.AllKeys()
	sort.Strings(keys)
	out := make([]Setting, 0, len(keys))
	for _, k := range keys {
		out = append(out, Setting{Key: k, Value: fmt.Sprint(v.Get(k))})
	}
	return out
}
