package text

import "github.com/loomui/loom/layout"

// Glyph is one positioned glyph within a line, in pixels relative to
// the line origin on the baseline.
type Glyph struct {
	ID      uint32
	Cluster int
	X, Y    float32
	Advance float32
}

// Line is one laid-out line of text.
type Line struct {
	Text    string
	Glyphs  []Glyph
	Width   float32
	Ascent  float32
	Descent float32
}

// Height returns the line's vertical extent.
func (l Line) Height() float32 {
	return l.Ascent + l.Descent
}

// Layout is the result of measuring text against an available width.
type Layout struct {
	Lines []Line
	Size  layout.Size
}

// Shaper turns text plus font attributes into line metrics. Layout is
// a pure query; implementations may cache internally but must not
// retain the returned value. maxWidth of +Inf disables wrapping.
type Shaper interface {
	Layout(text string, font Font, maxWidth float32) (Layout, error)
}

// breakLines splits text into wrapped line spans using a measure
// function, greedy first-fit on word boundaries. Explicit newlines
// always break; a single word wider than maxWidth gets its own line
// rather than being split.
func breakLines(text string, maxWidth float32, measure func(s string) float32) []string {
	var out []string
	for _, para := range splitKeepEmpty(text, '\n') {
		if para == "" {
			out = append(out, "")
			continue
		}
		out = append(out, wrapParagraph(para, maxWidth, measure)...)
	}
	return out
}

func wrapParagraph(para string, maxWidth float32, measure func(s string) float32) []string {
	if measure(para) <= maxWidth {
		return []string{para}
	}
	var (
		out       []string
		start     = 0
		lastBreak = -1
	)
	for i := 0; i <= len(para); i++ {
		if i < len(para) && para[i] != ' ' {
			continue
		}
		// A word just ended. If the line up to here overflows, break
		// at the previous space and carry this word to the next line.
		if measure(para[start:i]) > maxWidth && lastBreak > start {
			out = append(out, para[start:lastBreak])
			start = lastBreak + 1
		}
		lastBreak = i
	}
	return append(out, para[start:])
}

func splitKeepEmpty(s string, sep byte) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == sep {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
