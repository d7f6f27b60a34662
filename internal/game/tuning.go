package game

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of a session. Zero-valued sections in a tuning
// file keep their defaults because LoadConfig decodes on top of DefaultConfig.
type Config struct {
	Seed           uint64        `yaml:"seed"`
	Lives          int           `yaml:"lives"`
	SymmetricBlast bool          `yaml:"symmetric_blast"`
	Grid           GridConfig    `yaml:"grid"`
	Ball           BallConfig    `yaml:"ball"`
	Paddle         PaddleConfig  `yaml:"paddle"`
	Stages         []StageConfig `yaml:"stages"`
}

type GridConfig struct {
	Cols        int     `yaml:"cols"`
	Rows        int     `yaml:"rows"`
	BrickHeight float64 `yaml:"brick_height"`
	Padding     float64 `yaml:"padding"`
	OffsetTop   float64 `yaml:"offset_top"`
	OffsetLeft  float64 `yaml:"offset_left"`
}

type BallConfig struct {
	Radius       float64 `yaml:"radius"`
	BaseSpeed    float64 `yaml:"base_speed"`
	SpeedRange   float64 `yaml:"speed_range"`
	LaunchSpread float64 `yaml:"launch_spread"`
}

type PaddleConfig struct {
	Height      float64 `yaml:"height"`
	BottomGap   float64 `yaml:"bottom_gap"`
	KeySpeed    float64 `yaml:"key_speed"`
	Curve       float64 `yaml:"curve"`
	MaxAngle    float64 `yaml:"max_angle"`
	MinBounceDY float64 `yaml:"min_bounce_dy"`
}

var ErrInvalidConfig = errors.New("invalid config")

func DefaultConfig() Config {
	return Config{
		Lives: MaxLives,
		Grid: GridConfig{
			Cols:        BrickCols,
			Rows:        BrickRows,
			BrickHeight: BrickHeight,
			Padding:     BrickPadding,
			OffsetTop:   BrickOffsetTop,
			OffsetLeft:  BrickOffsetLeft,
		},
		Ball: BallConfig{
			Radius:       BallRadius,
			BaseSpeed:    BaseSpeed,
			SpeedRange:   SpeedRange,
			LaunchSpread: LaunchSpread,
		},
		Paddle: PaddleConfig{
			Height:      PaddleHeight,
			BottomGap:   PaddleBottomGap,
			KeySpeed:    PaddleKeySpeed,
			Curve:       PaddleCurve,
			MaxAngle:    PaddleMaxAngle,
			MinBounceDY: MinBounceDY,
		},
		Stages: DefaultStages(),
	}
}

// LoadConfig reads a YAML tuning file over the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML tuning data over the defaults. Unknown keys are
// rejected so typos don't silently fall back to defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch {
	case c.Lives <= 0:
		return fmt.Errorf("%w: lives must be positive, got %d", ErrInvalidConfig, c.Lives)
	case c.Grid.Cols <= 0 || c.Grid.Rows <= 0:
		return fmt.Errorf("%w: grid must have at least one cell, got %dx%d", ErrInvalidConfig, c.Grid.Cols, c.Grid.Rows)
	case c.Grid.BrickHeight <= 0:
		return fmt.Errorf("%w: brick_height must be positive", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.BaseSpeed <= 0 || c.Ball.SpeedRange < 0:
		return fmt.Errorf("%w: ball speeds must be positive", ErrInvalidConfig)
	case c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle height must be positive", ErrInvalidConfig)
	case c.Paddle.MaxAngle <= 0 || c.Paddle.MaxAngle >= 90:
		return fmt.Errorf("%w: paddle max_angle must be in (0, 90), got %g", ErrInvalidConfig, c.Paddle.MaxAngle)
	case len(c.Stages) == 0:
		return fmt.Errorf("%w: at least one stage is required", ErrInvalidConfig)
	}
	for i, st := range c.Stages {
		if st.PaddleWidth <= 0 {
			return fmt.Errorf("%w: stage %d paddle_width must be positive", ErrInvalidConfig, i+1)
		}
		if st.Bombs < 0 {
			return fmt.Errorf("%w: stage %d bombs must not be negative", ErrInvalidConfig, i+1)
		}
	}
	return nil
}

// Blast returns the bomb footprint reach on the near (negative) and far
// (positive) side.
func (c Config) Blast() (near, far int) {
	if c.SymmetricBlast {
		return BlastNear, BlastNear
	}
	return BlastNear, BlastFar
}
