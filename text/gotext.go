package text

import (
	"fmt"
	"math"
	"sync"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// HarfbuzzShaper has internal buffer state, so instances are pooled
// rather than shared.
type gotextShaper struct {
	fonts *Fonts
	pool  sync.Pool
}

// NewShaper creates a Shaper over the registered fonts.
func NewShaper(fonts *Fonts) Shaper {
	return &gotextShaper{
		fonts: fonts,
		pool: sync.Pool{
			New: func() any {
				return &shaping.HarfbuzzShaper{}
			},
		},
	}
}

func (s *gotextShaper) Layout(text string, ft Font, maxWidth float32) (Layout, error) {
	var out Layout
	if text == "" {
		return out, nil
	}
	parsed, ok := s.fonts.Lookup(ft.Family)
	if !ok {
		return out, fmt.Errorf("no font registered for family %q", ft.Family)
	}
	// font.Face is not safe for concurrent use; wrap per call.
	face := font.NewFace(parsed)

	measure := func(run string) float32 {
		o := s.shapeRun(run, face, ft.Size)
		return fixedToFloat(o.Advance)
	}

	for _, line := range breakLines(text, maxWidth, measure) {
		out.Lines = append(out.Lines, s.layoutLine(line, face, ft.Size))
	}
	for _, l := range out.Lines {
		if l.Width > out.Size.Width {
			out.Size.Width = l.Width
		}
		out.Size.Height += l.Height()
	}
	return out, nil
}

func (s *gotextShaper) layoutLine(line string, face *font.Face, size float32) Line {
	o := s.shapeRun(line, face, size)

	l := Line{
		Text:    line,
		Width:   fixedToFloat(o.Advance),
		Ascent:  fixedToFloat(o.LineBounds.Ascent),
		Descent: fixedToFloat(-o.LineBounds.Descent),
	}
	var x float32
	for _, g := range o.Glyphs {
		l.Glyphs = append(l.Glyphs, Glyph{
			ID:      uint32(g.GlyphID),
			Cluster: g.TextIndex(),
			X:       x + fixedToFloat(g.XOffset),
			Y:       -fixedToFloat(g.YOffset),
			Advance: fixedToFloat(g.XAdvance),
		})
		x += fixedToFloat(g.XAdvance)
	}
	return l
}

func (s *gotextShaper) shapeRun(run string, face *font.Face, size float32) shaping.Output {
	runes := []rune(run)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      floatToFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}
	sh := s.pool.Get().(*shaping.HarfbuzzShaper)
	out := sh.Shape(input)
	s.pool.Put(sh)
	return out
}

func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		switch r {
		case ' ', '\t', '\n', '\r':
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func floatToFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedToFloat(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

// FixedShaper measures every rune at a constant advance. It backs
// tests and headless layout where no font files are available.
type FixedShaper struct {
	Advance float32
	Ascent  float32
	Descent float32
}

func (f FixedShaper) Layout(text string, ft Font, maxWidth float32) (Layout, error) {
	adv := f.Advance
	if adv == 0 {
		adv = ft.Size / 2
	}
	ascent, descent := f.Ascent, f.Descent
	if ascent == 0 {
		ascent = ft.Size * 0.8
	}
	if descent == 0 {
		descent = ft.Size * 0.2
	}

	var out Layout
	if text == "" {
		return out, nil
	}
	measure := func(run string) float32 {
		return float32(len([]rune(run))) * adv
	}
	for _, line := range breakLines(text, maxWidth, measure) {
		l := Line{Text: line, Width: measure(line), Ascent: ascent, Descent: descent}
		var x float32
		for i, r := range []rune(line) {
			l.Glyphs = append(l.Glyphs, Glyph{ID: uint32(r), Cluster: i, X: x, Advance: adv})
			x += adv
		}
		out.Lines = append(out.Lines, l)
		if l.Width > out.Size.Width {
			out.Size.Width = l.Width
		}
		out.Size.Height += l.Height()
	}
	return out, nil
}

// MaxLineWidth is the maxWidth that disables wrapping.
func MaxLineWidth() float32 {
	return float32(math.Inf(1))
}
