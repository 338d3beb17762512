// Package config loads the YAML configuration of the bot process.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/ballchaser/internal/bot"
	"github.com/zeusync/ballchaser/internal/core/actuation"
	"github.com/zeusync/ballchaser/internal/core/observability/log"
	"github.com/zeusync/ballchaser/internal/core/strategy"
)

type Config struct {
	Log  LogConfig  `yaml:"log"`
	Host HostConfig `yaml:"host"`
	Bot  BotConfig  `yaml:"bot"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type HostConfig struct {
	ListenAddr     string        `yaml:"listen_addr"`
	Path           string        `yaml:"path"`
	ReadTimeout    time.Duration `yaml:"read_timeout"`
	WriteTimeout   time.Duration `yaml:"write_timeout"`
	MaxMessageSize int64         `yaml:"max_message_size"`
	// Overlay echoes recorded debug primitives in every tick reply.
	Overlay bool `yaml:"overlay"`
}

type BotConfig struct {
	Name                     string     `yaml:"name"`
	Profile                  string     `yaml:"profile"`
	BallRadius               float64    `yaml:"ball_radius"`
	GoalDistance             float64    `yaml:"goal_distance"`
	SteeringGain             float64    `yaml:"steering_gain"`
	CatchUpDistance          float64    `yaml:"catch_up_distance"`
	CatchUpHeadingTolerance  float64    `yaml:"catch_up_heading_tolerance"`
	KickoffPositionTolerance float64    `yaml:"kickoff_position_tolerance"`
	KickoffSpeedTolerance    float64    `yaml:"kickoff_speed_tolerance"`
	ModeHoldTicks            int        `yaml:"mode_hold_ticks"`
	Flip                     FlipConfig `yaml:"flip"`
	Lead                     LeadConfig `yaml:"lead"`
}

type FlipConfig struct {
	Enabled  bool    `yaml:"enabled"`
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
}

type LeadConfig struct {
	Enabled        bool    `yaml:"enabled"`
	MinDistance    float64 `yaml:"min_distance"`
	HorizonSeconds float64 `yaml:"horizon_seconds"`
}

// Default returns the configuration used for every key a file leaves out.
func Default() *Config {
	opts := bot.DefaultOptions()
	return &Config{
		Log: LogConfig{Level: "info"},
		Host: HostConfig{
			ListenAddr:     "127.0.0.1:8085",
			Path:           "/agent",
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   5 * time.Second,
			MaxMessageSize: 1 << 20,
		},
		Bot: BotConfig{
			Name:                     "ballchaser",
			Profile:                  string(opts.Strategy.Profile),
			BallRadius:               opts.Strategy.BallRadius,
			GoalDistance:             opts.Strategy.GoalDistance,
			SteeringGain:             opts.Actuation.SteeringGain,
			CatchUpDistance:          opts.Actuation.CatchUpDistance,
			CatchUpHeadingTolerance:  opts.Actuation.CatchUpHeadingTolerance,
			KickoffPositionTolerance: opts.Strategy.KickoffPositionTolerance,
			KickoffSpeedTolerance:    opts.Strategy.KickoffSpeedTolerance,
			ModeHoldTicks:            opts.Strategy.ModeHoldTicks,
			Flip: FlipConfig{
				Enabled:  opts.Flip.Enabled,
				MinSpeed: opts.Flip.MinSpeed,
				MaxSpeed: opts.Flip.MaxSpeed,
			},
			Lead: LeadConfig{
				Enabled:        opts.Lead.Enabled,
				MinDistance:    opts.Lead.MinDistance,
				HorizonSeconds: opts.Lead.HorizonSeconds,
			},
		},
	}
}

// Load decodes YAML from r over the defaults and validates the result.
// An empty document yields the defaults.
func Load(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate reports every problem found, each wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs []error
	invalid := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		invalid("log.level: %v", err)
	}

	if c.Host.ListenAddr == "" {
		invalid("host.listen_addr is empty")
	}
	if len(c.Host.Path) == 0 || c.Host.Path[0] != '/' {
		invalid("host.path %q must start with /", c.Host.Path)
	}
	if c.Host.ReadTimeout < 0 || c.Host.WriteTimeout < 0 {
		invalid("host timeouts must not be negative")
	}
	if c.Host.MaxMessageSize <= 0 {
		invalid("host.max_message_size must be positive")
	}

	b := c.Bot
	if _, err := strategy.ParseProfile(b.Profile); err != nil {
		invalid("bot.profile: %v", err)
	}
	if b.BallRadius <= 0 {
		invalid("bot.ball_radius must be positive")
	}
	if b.GoalDistance <= 0 {
		invalid("bot.goal_distance must be positive")
	}
	if b.SteeringGain <= 0 {
		invalid("bot.steering_gain must be positive")
	}
	if b.CatchUpDistance < 0 {
		invalid("bot.catch_up_distance must not be negative")
	}
	if b.CatchUpHeadingTolerance < 0 || b.CatchUpHeadingTolerance > 180 {
		invalid("bot.catch_up_heading_tolerance must be within [0, 180]")
	}
	if b.KickoffPositionTolerance < 0 || b.KickoffSpeedTolerance < 0 {
		invalid("bot kickoff tolerances must not be negative")
	}
	if b.ModeHoldTicks < 0 {
		invalid("bot.mode_hold_ticks must not be negative")
	}
	if b.Flip.MinSpeed >= b.Flip.MaxSpeed {
		invalid("bot.flip.min_speed %v must be below max_speed %v", b.Flip.MinSpeed, b.Flip.MaxSpeed)
	}
	if b.Lead.MinDistance < 0 || b.Lead.HorizonSeconds < 0 {
		invalid("bot.lead values must not be negative")
	}

	return errors.Join(errs...)
}

// LogLevel is the parsed log level. Validate has already rejected bad values.
func (c *Config) LogLevel() log.Level {
	level, _ := log.ParseLevel(c.Log.Level)
	return level
}

// BotOptions converts the bot section into agent options.
func (c *Config) BotOptions() bot.Options {
	b := c.Bot
	profile, _ := strategy.ParseProfile(b.Profile)
	return bot.Options{
		Strategy: strategy.Options{
			Profile:                  profile,
			BallRadius:               b.BallRadius,
			GoalDistance:             b.GoalDistance,
			KickoffPositionTolerance: b.KickoffPositionTolerance,
			KickoffSpeedTolerance:    b.KickoffSpeedTolerance,
			ModeHoldTicks:            b.ModeHoldTicks,
		},
		Actuation: actuation.Options{
			BallRadius:              b.BallRadius,
			SteeringGain:            b.SteeringGain,
			CatchUpDistance:         b.CatchUpDistance,
			CatchUpHeadingTolerance: b.CatchUpHeadingTolerance,
		},
		Flip: bot.FlipOptions{
			Enabled:  b.Flip.Enabled,
			MinSpeed: b.Flip.MinSpeed,
			MaxSpeed: b.Flip.MaxSpeed,
		},
		Lead: bot.LeadOptions{
			Enabled:        b.Lead.Enabled,
			MinDistance:    b.Lead.MinDistance,
			HorizonSeconds: b.Lead.HorizonSeconds,
		},
	}
}
