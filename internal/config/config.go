// Package config holds the demo application's TOML configuration:
// colors, separator appearance and key bindings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

type Config struct {
	UI   UIConfig   `toml:"ui"`
	Keys KeysConfig `toml:"keys"`
}

type UIConfig struct {
	Colors    map[string]Color `toml:"colors"`
	Separator Separator        `toml:"separator"`
}

// Separator selects how rules between entries are drawn. Style is one of
// "line", "dots" or "gradient"; the gradient endpoints apply only to the
// latter.
type Separator struct {
	Style        string `toml:"style"`
	GradientFrom string `toml:"gradient_from"`
	GradientTo   string `toml:"gradient_to"`
}

type KeysConfig struct {
	Up               []string `toml:"up"`
	Down             []string `toml:"down"`
	PageUp           []string `toml:"page_up"`
	PageDown         []string `toml:"page_down"`
	Top              []string `toml:"top"`
	Bottom           []string `toml:"bottom"`
	Star             []string `toml:"star"`
	ToggleSeparators []string `toml:"toggle_separators"`
	Jump             []string `toml:"jump"`
	Accept           []string `toml:"accept"`
	Cancel           []string `toml:"cancel"`
	Quit             []string `toml:"quit"`
}

// Color is a style described in configuration, either as a bare color
// string or as a table with fg, bg and bold.
type Color struct {
	Fg   string
	Bg   string
	Bold bool
}

// UnmarshalTOML accepts "cyan" as shorthand for { fg = "cyan" }.
func (c *Color) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		c.Fg = v
	case map[string]any:
		if fg, ok := v["fg"].(string); ok {
			c.Fg = fg
		}
		if bg, ok := v["bg"].(string); ok {
			c.Bg = bg
		}
		if bold, ok := v["bold"].(bool); ok {
			c.Bold = bold
		}
	default:
		return fmt.Errorf("config: unsupported color value %v", value)
	}
	return nil
}

// Style converts the color to a lipgloss style.
func (c Color) Style() lipgloss.Style {
	s := lipgloss.NewStyle()
	if c.Fg != "" {
		s = s.Foreground(lipgloss.Color(c.Fg))
	}
	if c.Bg != "" {
		s = s.Background(lipgloss.Color(c.Bg))
	}
	if c.Bold {
		s = s.Bold(true)
	}
	return s
}

// Color returns the named color, falling back to the zero value so
// callers can chain Style on unknown names.
func (u UIConfig) Color(name string) Color {
	return u.Colors[name]
}

func Default() Config {
	return Config{
		UI: UIConfig{
			Colors: map[string]Color{
				"title":    {Fg: "#00E6B8", Bold: true},
				"subtle":   {Fg: "#999999"},
				"accent":   {Fg: "#AD8CFF"},
				"error":    {Fg: "#FF5C5C", Bold: true},
				"starred":  {Fg: "#3DDC97"},
				"footer":   {Fg: "#777777"},
				"selected": {Fg: "#00E6B8", Bg: "#333333"},
			},
			Separator: Separator{
				Style:        "line",
				GradientFrom: "#AD8CFF",
				GradientTo:   "#00E6B8",
			},
		},
		Keys: KeysConfig{
			Up:               []string{"up", "k"},
			Down:             []string{"down", "j"},
			PageUp:           []string{"pgup"},
			PageDown:         []string{"pgdown"},
			Top:              []string{"home", "g"},
			Bottom:           []string{"end", "G"},
			Star:             []string{"*"},
			ToggleSeparators: []string{"s"},
			Jump:             []string{"/"},
			Accept:           []string{"enter"},
			Cancel:           []string{"esc"},
			Quit:             []string{"q", "ctrl+c"},
		},
	}
}

// Load decodes TOML content over the receiver, so values not present in
// the content keep whatever the receiver already holds.
func (c *Config) Load(content string) error {
	_, err := toml.Decode(content, c)
	return err
}

// LoadFile reads the configuration file at path over the receiver. A
// missing file is not an error; the receiver is left untouched.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}
	return c.Load(string(data))
}

// Path returns the configuration file location: $LACE_CONFIG when set,
// otherwise lace/config.toml under the user configuration directory.
func Path() string {
	if p := os.Getenv("LACE_CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lace", "config.toml")
}
