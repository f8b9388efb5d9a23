package text

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBreakLines(t *testing.T) {
	// One unit per byte keeps the expected breaks easy to read.
	measure := func(s string) float32 { return float32(len(s)) }

	tests := []struct {
		name     string
		text     string
		maxWidth float32
		want     []string
	}{
		{
			name:     "fits on one line",
			text:     "hello world",
			maxWidth: 20,
			want:     []string{"hello world"},
		},
		{
			name:     "greedy wrap at spaces",
			text:     "aa bb cc",
			maxWidth: 5,
			want:     []string{"aa bb", "cc"},
		},
		{
			name:     "every word on its own line",
			text:     "a b c",
			maxWidth: 1,
			want:     []string{"a", "b", "c"},
		},
		{
			name:     "oversized word is not split",
			text:     "tiny enormousword tiny",
			maxWidth: 6,
			want:     []string{"tiny", "enormousword", "tiny"},
		},
		{
			name:     "explicit newlines always break",
			text:     "one\ntwo three",
			maxWidth: 100,
			want:     []string{"one", "two three"},
		},
		{
			name:     "blank line preserved",
			text:     "a\n\nb",
			maxWidth: 100,
			want:     []string{"a", "", "b"},
		},
		{
			name:     "unbounded width never wraps",
			text:     "a b c d e f g",
			maxWidth: float32(math.Inf(1)),
			want:     []string{"a b c d e f g"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := breakLines(tt.text, tt.maxWidth, measure)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("lines mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFixedShaperLayout(t *testing.T) {
	sh := FixedShaper{Advance: 10, Ascent: 8, Descent: 2}

	lay, err := sh.Layout("ab cd", DefaultFont, 25)
	if err != nil {
		t.Fatal(err)
	}
	if len(lay.Lines) != 2 {
		t.Fatalf("lines = %d, want 2 (%v)", len(lay.Lines), lay.Lines)
	}
	if lay.Lines[0].Text != "ab" || lay.Lines[1].Text != "cd" {
		t.Errorf("lines = %q, %q", lay.Lines[0].Text, lay.Lines[1].Text)
	}
	if lay.Size.Width != 20 {
		t.Errorf("width = %g, want 20", lay.Size.Width)
	}
	if lay.Size.Height != 20 {
		t.Errorf("height = %g, want two 10-unit lines", lay.Size.Height)
	}

	g := lay.Lines[0].Glyphs
	if len(g) != 2 || g[0].X != 0 || g[1].X != 10 {
		t.Errorf("glyph positions = %+v", g)
	}
}

func TestFixedShaperEmptyText(t *testing.T) {
	lay, err := FixedShaper{}.Layout("", DefaultFont, 100)
	if err != nil {
		t.Fatal(err)
	}
	if len(lay.Lines) != 0 {
		t.Errorf("layout = %+v, want empty", lay)
	}
	if lay.Size.Width != 0 || lay.Size.Height != 0 {
		t.Errorf("size = %+v, want zero", lay.Size)
	}
}

func TestFontsFallback(t *testing.T) {
	f := NewFonts()
	if _, ok := f.Lookup("anything"); ok {
		t.Error("empty registry resolved a family")
	}
}
