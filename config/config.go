// Package config loads and validates runtime settings.
package config

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/float-bubble/animation"
	"github.com/lixenwraith/float-bubble/parameter"
	"github.com/lixenwraith/float-bubble/physics"
	"github.com/lixenwraith/float-bubble/vmath"
)

// EnvPrefix prefixes environment overrides, e.g. FLOAT_BUBBLE_SOUND_ENABLED=true
const EnvPrefix = "FLOAT_BUBBLE"

// Config is the root configuration struct
type Config struct {
	Physics   PhysicsConfig   `mapstructure:"physics" yaml:"physics"`
	Animation AnimationConfig `mapstructure:"animation" yaml:"animation"`
	Layout    LayoutConfig    `mapstructure:"layout" yaml:"layout"`
	Bubble    BubbleConfig    `mapstructure:"bubble" yaml:"bubble"`
	Sound     SoundConfig     `mapstructure:"sound" yaml:"sound"`
}

// PhysicsConfig holds release projection settings
type PhysicsConfig struct {
	VelocityLimit float64 `mapstructure:"velocity_limit" yaml:"velocity_limit" validate:"gt=0"`
	Deceleration  string  `mapstructure:"deceleration" yaml:"deceleration" validate:"oneof=normal fast"`
}

// AnimationConfig holds settle curve settings
type AnimationConfig struct {
	Duration     time.Duration `mapstructure:"duration" yaml:"duration" validate:"gte=0"`
	DampingRatio float64       `mapstructure:"damping_ratio" yaml:"damping_ratio" validate:"gt=0,lte=1"`
	FrameRate    int           `mapstructure:"frame_rate" yaml:"frame_rate" validate:"gte=1,lte=240"`
}

// InsetsConfig is a per-side inset in points
type InsetsConfig struct {
	Top    float64 `mapstructure:"top" yaml:"top" validate:"gte=0"`
	Left   float64 `mapstructure:"left" yaml:"left" validate:"gte=0"`
	Bottom float64 `mapstructure:"bottom" yaml:"bottom" validate:"gte=0"`
	Right  float64 `mapstructure:"right" yaml:"right" validate:"gte=0"`
}

// LayoutConfig holds container geometry settings
type LayoutConfig struct {
	HorizontalPadding float64      `mapstructure:"horizontal_padding" yaml:"horizontal_padding" validate:"gte=0"`
	VerticalPadding   float64      `mapstructure:"vertical_padding" yaml:"vertical_padding" validate:"gte=0"`
	SafeArea          InsetsConfig `mapstructure:"safe_area" yaml:"safe_area"`
	CellWidth         float64      `mapstructure:"cell_width" yaml:"cell_width" validate:"gt=0"`
	CellHeight        float64      `mapstructure:"cell_height" yaml:"cell_height" validate:"gt=0"`
}

// BubbleConfig holds the floating element geometry
type BubbleConfig struct {
	Width  float64 `mapstructure:"width" yaml:"width" validate:"gt=0"`
	Height float64 `mapstructure:"height" yaml:"height" validate:"gt=0"`
	Label  string  `mapstructure:"label" yaml:"label" validate:"max=16"`
}

// SoundConfig holds the settle cue settings
type SoundConfig struct {
	Enabled bool    `mapstructure:"enabled" yaml:"enabled"`
	Volume  float64 `mapstructure:"volume" yaml:"volume" validate:"gte=0,lte=1"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("physics.velocity_limit", parameter.VelocityLimit)
	v.SetDefault("physics.deceleration", parameter.DecelerationNormal)
	v.SetDefault("animation.duration", parameter.SettleDuration)
	v.SetDefault("animation.damping_ratio", parameter.SpringDampingRatio)
	v.SetDefault("animation.frame_rate", parameter.FrameRate)
	v.SetDefault("layout.horizontal_padding", parameter.HorizontalPadding)
	v.SetDefault("layout.vertical_padding", parameter.VerticalPadding)
	v.SetDefault("layout.safe_area.top", parameter.SafeAreaTop)
	v.SetDefault("layout.safe_area.left", parameter.SafeAreaLeft)
	v.SetDefault("layout.safe_area.bottom", parameter.SafeAreaBottom)
	v.SetDefault("layout.safe_area.right", parameter.SafeAreaRight)
	v.SetDefault("layout.cell_width", parameter.CellWidth)
	v.SetDefault("layout.cell_height", parameter.CellHeight)
	v.SetDefault("bubble.width", parameter.BubbleWidth)
	v.SetDefault("bubble.height", parameter.BubbleHeight)
	v.SetDefault("bubble.label", parameter.BubbleLabel)
	v.SetDefault("sound.enabled", false)
	v.SetDefault("sound.volume", parameter.DefaultVolume)
}

// Default returns the built-in configuration
func Default() *Config {
	cfg, err := decode(newViper())
	if err != nil {
		// Defaults are compile-time constants
		panic(fmt.Sprintf("config: invalid defaults: %v", err))
	}
	return cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads configuration from cfgFile, or from ./configs/config.yaml or ./config.yaml when empty
// A missing default file is not an error, a missing explicit file is
func Load(cfgFile string) (*Config, error) {
	v := newViper()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./configs")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return decode(v)
}

func decode(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints, all violations are reported together
func Validate(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate config: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

// Dump writes cfg as YAML
func Dump(w io.Writer, cfg *Config) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return enc.Close()
}

// Padding returns the travel bounds inset from the safe area
func (c *Config) Padding() vmath.Insets {
	return vmath.Insets{
		Top:    c.Layout.VerticalPadding,
		Left:   c.Layout.HorizontalPadding,
		Bottom: c.Layout.VerticalPadding,
		Right:  c.Layout.HorizontalPadding,
	}
}

// SafeAreaInsets returns the container safe area inset
func (c *Config) SafeAreaInsets() vmath.Insets {
	s := c.Layout.SafeArea
	return vmath.Insets{Top: s.Top, Left: s.Left, Bottom: s.Bottom, Right: s.Right}
}

func (c *Config) CellSize() vmath.Size {
	return vmath.Size{W: c.Layout.CellWidth, H: c.Layout.CellHeight}
}

func (c *Config) BubbleSize() vmath.Size {
	return vmath.Size{W: c.Bubble.Width, H: c.Bubble.Height}
}

func (c *Config) Projector() physics.Projector {
	return physics.Projector{
		VelocityLimit:    c.Physics.VelocityLimit,
		DecelerationRate: parameter.DecelerationRate(c.Physics.Deceleration),
	}
}

func (c *Config) AnimationConfig() animation.Config {
	return animation.Config{
		Duration:     c.Animation.Duration,
		DampingRatio: c.Animation.DampingRatio,
		FrameRate:    c.Animation.FrameRate,
	}
}

// FrameInterval is the render ticker period
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Animation.FrameRate)
}
