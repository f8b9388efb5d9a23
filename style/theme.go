package style

import (
	"fmt"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// Theme is a named palette plus shared lengths, referenced from sheet
// text as $name. Color entries shadow length entries with the same
// name.
type Theme struct {
	name    string
	colors  map[string]Color
	lengths map[string]Length
}

// NewTheme returns an empty named theme.
func NewTheme(name string) *Theme {
	return &Theme{
		name:    name,
		colors:  make(map[string]Color),
		lengths: make(map[string]Length),
	}
}

// Name returns the theme name.
func (t *Theme) Name() string {
	return t.name
}

// SetColor adds or replaces a palette color.
func (t *Theme) SetColor(name string, c Color) {
	t.colors[name] = c
}

// SetLength adds or replaces a shared length.
func (t *Theme) SetLength(name string, l Length) {
	t.lengths[name] = l
}

// Lookup resolves a $name reference to a value.
func (t *Theme) Lookup(name string) (Value, bool) {
	if t == nil {
		return Value{}, false
	}
	if c, ok := t.colors[name]; ok {
		return Col(c), true
	}
	if l, ok := t.lengths[name]; ok {
		return Len(l), true
	}
	return Value{}, false
}

// Colors returns the palette color names in sorted order.
func (t *Theme) Colors() []string {
	names := make([]string, 0, len(t.colors))
	for name := range t.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lengths returns the shared length names in sorted order.
func (t *Theme) Lengths() []string {
	names := make([]string, 0, len(t.lengths))
	for name := range t.lengths {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// themeFile is the on-disk TOML shape:
//
//	name = "day"
//	[colors]
//	primary = "#1c71d8"
//	[lengths]
//	padding = "8px"
type themeFile struct {
	Name    string            `toml:"name"`
	Colors  map[string]string `toml:"colors"`
	Lengths map[string]string `toml:"lengths"`
}

// LoadTheme reads a theme from a TOML file.
func LoadTheme(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ParseTheme(data)
}

// ParseTheme parses TOML theme data.
func ParseTheme(data []byte) (*Theme, error) {
	var file themeFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	t := NewTheme(file.Name)
	for name, raw := range file.Colors {
		c, ok := ParseColor(raw)
		if !ok {
			return nil, fmt.Errorf("theme color %s: invalid color %q", name, raw)
		}
		t.colors[name] = c
	}
	for name, raw := range file.Lengths {
		v, err := parseDimension(name, raw)
		if err != nil {
			return nil, fmt.Errorf("theme length %s: %w", name, err)
		}
		t.lengths[name], _ = v.AsLength()
	}
	return t, nil
}

// Day is the built-in light theme.
func Day() *Theme {
	t := NewTheme("day")
	t.colors["background"] = RGB(0.98, 0.98, 0.98)
	t.colors["surface"] = White
	t.colors["text"] = RGB(0.12, 0.12, 0.13)
	t.colors["primary"] = RGB(0.11, 0.44, 0.85)
	t.colors["accent"] = RGB(0.90, 0.38, 0.14)
	t.colors["outline"] = RGB(0.80, 0.80, 0.82)
	return t
}

// Night is the built-in dark theme.
func Night() *Theme {
	t := NewTheme("night")
	t.colors["background"] = RGB(0.10, 0.10, 0.11)
	t.colors["surface"] = RGB(0.16, 0.16, 0.18)
	t.colors["text"] = RGB(0.92, 0.92, 0.93)
	t.colors["primary"] = RGB(0.38, 0.62, 0.94)
	t.colors["accent"] = RGB(0.96, 0.55, 0.33)
	t.colors["outline"] = RGB(0.33, 0.33, 0.36)
	return t
}
