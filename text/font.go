// Package text measures and shapes text for layout: given a string,
// typed font attributes, and an available width it returns laid-out
// line metrics. Shaping goes through HarfBuzz via go-text/typesetting.
package text

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
)

// Font is a typed font request resolved against the registered
// sources.
type Font struct {
	Family string
	Size   float32
}

// DefaultFont is used when a view declares no font attributes.
var DefaultFont = Font{Family: "default", Size: 14}

// Fonts maps family names to parsed fonts. font.Font is read-only and
// safe to share; the per-call font.Face wrappers are not, so Fonts
// hands out the Font and shapers wrap it themselves.
type Fonts struct {
	mu       sync.RWMutex
	families map[string]*font.Font
	fallback string
}

// NewFonts creates an empty registry.
func NewFonts() *Fonts {
	return &Fonts{families: make(map[string]*font.Font)}
}

// Register parses TTF/OTF data under a family name. The first family
// registered becomes the fallback.
func (f *Fonts) Register(family string, data []byte) error {
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse font %s: %w", family, err)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.families[family] = face.Font
	if f.fallback == "" {
		f.fallback = family
	}
	return nil
}

// RegisterFile loads and registers a font file.
func (f *Fonts) RegisterFile(family, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read font %s: %w", path, err)
	}
	return f.Register(family, data)
}

// Lookup resolves a family name, falling back to the first registered
// family for unknown names.
func (f *Fonts) Lookup(family string) (*font.Font, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if ft, ok := f.families[family]; ok {
		return ft, true
	}
	if ft, ok := f.families[f.fallback]; ok {
		return ft, true
	}
	return nil, false
}

// Families returns the registered family names.
func (f *Fonts) Families() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.families))
	for name := range f.families {
		out = append(out, name)
	}
	return out
}
