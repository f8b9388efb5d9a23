package style

import "testing"

func mustSelector(t *testing.T, s string) Selector {
	t.Helper()
	sel, ok := ParseSelector(s)
	if !ok {
		t.Fatalf("ParseSelector(%q) failed", s)
	}
	return sel
}

func pathOf(t *testing.T, s string) Path {
	t.Helper()
	return Path(mustSelector(t, s))
}

func TestSelectorMatching(t *testing.T) {
	tests := []struct {
		name     string
		selector string
		path     string
		want     bool
	}{
		{
			name:     "exact chain",
			selector: "window .panel button",
			path:     "window .panel button",
			want:     true,
		},
		{
			name:     "subsequence with intervening level",
			selector: "a .b .c",
			path:     "a .b .x .c",
			want:     true,
		},
		{
			name:     "selector longer than path",
			selector: "a .b .c .d",
			path:     "a .b .c",
			want:     false,
		},
		{
			name:     "not anchored at tail",
			selector: "a .b",
			path:     "a .b .c",
			want:     true,
		},
		{
			name:     "order matters",
			selector: ".c .b",
			path:     "a .b .c",
			want:     false,
		},
		{
			name:     "class subset within a level",
			selector: ".panel",
			path:     "window div.panel.wide",
			want:     true,
		},
		{
			name:     "state must be present",
			selector: "button:hover",
			path:     "window button",
			want:     false,
		},
		{
			name:     "state present",
			selector: "button:hover",
			path:     "window button:hover:active",
			want:     true,
		},
		{
			name:     "element mismatch",
			selector: "label .x",
			path:     "button .x",
			want:     false,
		},
		{
			name:     "wildcard level",
			selector: "* button",
			path:     "window button",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := mustSelector(t, tt.selector)
			path := pathOf(t, tt.path)
			if got := sel.Matches(path); got != tt.want {
				t.Errorf("Matches(%q, %q) = %v, want %v", tt.selector, tt.path, got, tt.want)
			}
		})
	}
}

func TestSpecificityOrdering(t *testing.T) {
	// A tag plus two classes outranks two classes alone.
	a := mustSelector(t, "button.x.y")
	b := mustSelector(t, ".x .y")

	sa := a.Specificity()
	sb := b.Specificity()
	if sa.Class != 2 || sa.Tag != 1 {
		t.Fatalf("specificity of %q = %+v", a, sa)
	}
	if sb.Class != 2 || sb.Tag != 0 {
		t.Fatalf("specificity of %q = %+v", b, sb)
	}
	if sa.Compare(sb) <= 0 {
		t.Errorf("expected %q to outrank %q", a, b)
	}

	// Class count dominates tag count.
	c := mustSelector(t, "window button")
	if c.Specificity().Compare(sb) >= 0 {
		t.Errorf("expected two classes to outrank two tags")
	}

	// Inline outranks any declared selector.
	if Inline.Compare(sa) <= 0 {
		t.Error("inline must outrank declared selectors")
	}
}

func TestParseSelectorRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "  ", "a.", "a:", "a..b"} {
		if sel, ok := ParseSelector(s); ok {
			t.Errorf("ParseSelector(%q) = %v, want failure", s, sel)
		}
	}
}

func TestLevelStateToggling(t *testing.T) {
	var l Level
	l.SetState("hover", true)
	l.SetState("hover", true)
	if len(l.States) != 1 {
		t.Fatalf("expected one state, got %v", l.States)
	}
	l.SetState("hover", false)
	if len(l.States) != 0 {
		t.Fatalf("expected no states, got %v", l.States)
	}
}

func TestPathPushDoesNotAliasSiblings(t *testing.T) {
	base := make(Path, 0, 8)
	base = base.Push(Level{Element: "root"})

	a := base.Push(Level{Element: "a"})
	b := base.Push(Level{Element: "b"})
	if a[1].Element != "a" || b[1].Element != "b" {
		t.Errorf("sibling paths alias: a=%v b=%v", a, b)
	}
}
