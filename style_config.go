package gui

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// StyleConfig is the on-disk form of a Style. Every field is optional;
// unset fields keep the value of the base theme.
//
// Colors are written as "#rrggbb" or "#rrggbbaa".
//
//	theme = "light"
//	text_edit_width = 320.0
//	cursor_blink_hz = 0.0
//	text_cursor_color = "#ff8800"
type StyleConfig struct {
	Theme         string `toml:"theme" yaml:"theme"`
	BodyTextStyle string `toml:"body_text_style" yaml:"body_text_style"`

	ItemSpacing   *float32 `toml:"item_spacing" yaml:"item_spacing"`
	TextEditWidth *float32 `toml:"text_edit_width" yaml:"text_edit_width"`

	DarkBgColor       string   `toml:"dark_bg_color" yaml:"dark_bg_color"`
	OverrideTextColor string   `toml:"text_color" yaml:"text_color"`
	CornerRadius      *float32 `toml:"corner_radius" yaml:"corner_radius"`

	CursorBlinkHz   *float32 `toml:"cursor_blink_hz" yaml:"cursor_blink_hz"`
	TextCursorWidth *float32 `toml:"text_cursor_width" yaml:"text_cursor_width"`
	TextCursorColor string   `toml:"text_cursor_color" yaml:"text_cursor_color"`
}

// LoadStyle reads a style from a .toml, .yaml or .yml file.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	style, err := ParseStyle(data, strings.TrimPrefix(filepath.Ext(path), "."))
	if err != nil {
		return Style{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return style, nil
}

// ParseStyle decodes a style in the given format ("toml", "yaml" or "yml").
// Unknown keys are rejected.
func ParseStyle(data []byte, format string) (Style, error) {
	var cfg StyleConfig
	switch strings.ToLower(format) {
	case "toml":
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return Style{}, err
		}
	case "yaml", "yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		// An empty document decodes to the zero config.
		if err := dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(data)) > 0 {
			return Style{}, err
		}
	default:
		return Style{}, fmt.Errorf("unsupported style format %q", format)
	}
	return cfg.Apply()
}

// Apply resolves the config on top of its base theme.
func (c StyleConfig) Apply() (Style, error) {
	var s Style
	switch strings.ToLower(c.Theme) {
	case "", "dark":
		s = DefaultStyle()
	case "light":
		s = LightStyle()
	default:
		return Style{}, fmt.Errorf("unknown theme %q", c.Theme)
	}

	if c.BodyTextStyle != "" {
		ts, err := ParseTextStyle(c.BodyTextStyle)
		if err != nil {
			return Style{}, err
		}
		s.BodyTextStyle = ts
	}
	if c.ItemSpacing != nil {
		s.Spacing.ItemSpacing = *c.ItemSpacing
	}
	if c.TextEditWidth != nil {
		s.Spacing.TextEditWidth = *c.TextEditWidth
	}
	if c.CornerRadius != nil {
		s.Visuals.Widgets.Inactive.CornerRadius = *c.CornerRadius
		s.Visuals.Widgets.Hovered.CornerRadius = *c.CornerRadius
		s.Visuals.Widgets.Active.CornerRadius = *c.CornerRadius
	}
	if c.CursorBlinkHz != nil {
		if *c.CursorBlinkHz < 0 {
			return Style{}, fmt.Errorf("cursor_blink_hz must not be negative, got %v", *c.CursorBlinkHz)
		}
		s.Visuals.CursorBlinkHz = *c.CursorBlinkHz
	}
	if c.TextCursorWidth != nil {
		s.Visuals.TextCursorWidth = *c.TextCursorWidth
	}

	colors := []struct {
		name string
		src  string
		dst  *uint32
	}{
		{"dark_bg_color", c.DarkBgColor, &s.Visuals.DarkBgColor},
		{"text_color", c.OverrideTextColor, &s.Visuals.OverrideTextColor},
		{"text_cursor_color", c.TextCursorColor, &s.Visuals.TextCursorColor},
	}
	for _, col := range colors {
		if col.src == "" {
			continue
		}
		v, err := ParseColor(col.src)
		if err != nil {
			return Style{}, fmt.Errorf("%s: %w", col.name, err)
		}
		*col.dst = v
	}
	return s, nil
}

// ParseColor parses "#rrggbb" or "#rrggbbaa" into a packed color.
func ParseColor(s string) (uint32, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	return RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
}
