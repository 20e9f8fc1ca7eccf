// Package theme loads the optional widgetkit.yaml appearance
// configuration and resolves it into concrete widget defaults.
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/widgetkit/pkg/graphics"
)

// Config represents the optional widgetkit.yaml configuration.
type Config struct {
	Carousel CarouselConfig `yaml:"carousel"`
	Blur     BlurConfig     `yaml:"blur"`
	Corner   CornerConfig   `yaml:"corner"`
	Text     TextConfig     `yaml:"text"`
}

// CarouselConfig contains carousel settings.
type CarouselConfig struct {
	// Interval is the auto-advance interval as a Go duration string,
	// for example "3s" or "1500ms".
	Interval string `yaml:"interval,omitempty"`
}

// BlurConfig contains blur settings.
type BlurConfig struct {
	Sigma float64 `yaml:"sigma,omitempty"`
}

// CornerConfig contains rounded-corner settings.
type CornerConfig struct {
	Radius float64 `yaml:"radius,omitempty"`
}

// TextConfig contains text settings.
type TextConfig struct {
	// PlaceholderColor is a hex color like "#999999" or "#80999999".
	PlaceholderColor string `yaml:"placeholder_color,omitempty"`
}

// Theme contains resolved appearance values ready for widget use.
type Theme struct {
	CarouselInterval time.Duration
	BlurSigma        float64
	CornerRadius     float64
	PlaceholderColor graphics.Color
}

// Default returns the built-in theme used when no widgetkit.yaml is
// present.
func Default() Theme {
	return Theme{
		CarouselInterval: 3 * time.Second,
		BlurSigma:        10,
		CornerRadius:     8,
		PlaceholderColor: graphics.RGB(0x99, 0x99, 0x99),
	}
}

// LoadOptional reads widgetkit.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, "widgetkit.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read widgetkit.yaml: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse widgetkit.yaml: %w", err)
	}

	return &cfg, nil
}

// Resolve loads widgetkit.yaml from dir (if present) and resolves it
// against the default theme.
func Resolve(dir string) (Theme, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return Theme{}, err
	}
	return cfg.Resolve()
}

// Resolve validates the configuration and fills unset fields from the
// default theme.
func (c *Config) Resolve() (Theme, error) {
	t := Default()

	if interval := strings.TrimSpace(c.Carousel.Interval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Theme{}, fmt.Errorf("carousel.interval: %w", err)
		}
		if d <= 0 {
			return Theme{}, fmt.Errorf("carousel.interval must be positive (got %q)", interval)
		}
		t.CarouselInterval = d
	}

	if c.Blur.Sigma != 0 {
		if c.Blur.Sigma < 0 {
			return Theme{}, fmt.Errorf("blur.sigma must not be negative (got %v)", c.Blur.Sigma)
		}
		t.BlurSigma = c.Blur.Sigma
	}

	if c.Corner.Radius != 0 {
		if c.Corner.Radius < 0 {
			return Theme{}, fmt.Errorf("corner.radius must not be negative (got %v)", c.Corner.Radius)
		}
		t.CornerRadius = c.Corner.Radius
	}

	if color := strings.TrimSpace(c.Text.PlaceholderColor); color != "" {
		parsed, err := ParseColor(color)
		if err != nil {
			return Theme{}, fmt.Errorf("text.placeholder_color: %w", err)
		}
		t.PlaceholderColor = parsed
	}

	return t, nil
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" into a color. A six-digit
// value is fully opaque.
func ParseColor(s string) (graphics.Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return graphics.Color{}, fmt.Errorf("color must start with '#' (got %q)", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return graphics.Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	switch len(hex) {
	case 6:
		return graphics.RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
	case 8:
		return graphics.ARGB(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
	default:
		return graphics.Color{}, fmt.Errorf("color must have 6 or 8 hex digits (got %q)", s)
	}
}
