package style

import (
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func TestParseSheet(t *testing.T) {
	theme := Day()
	theme.SetLength("pad", Length{Value: 8, Unit: UnitPx})

	src := `
window .panel {
	background: #202028;
	padding: 12px;
	gap: 50%;
	align-items: center;
	font-family: "Inter";
}

button.primary:hover {
	background: $primary transition(0.2s);
	width: 4em;
}
`
	p := NewParser(nil)
	sheet, err := p.Parse([]byte(src), theme)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sheet.Len() != 2 {
		t.Fatalf("rule count = %d, want 2", sheet.Len())
	}

	tests := []struct {
		name     string
		path     string
		key      string
		validate func(*testing.T, Attribute)
	}{
		{
			name: "color value",
			path: "window div.panel",
			key:  "background",
			validate: func(t *testing.T, at Attribute) {
				want, _ := ParseColor("#202028")
				if at.Value.Color != want {
					t.Errorf("background = %v", at.Value)
				}
			},
		},
		{
			name: "pixel length",
			path: "window div.panel",
			key:  "padding",
			validate: func(t *testing.T, at Attribute) {
				l, ok := at.Value.AsLength()
				if !ok || l.Value != 12 || l.Unit != UnitPx {
					t.Errorf("padding = %v", at.Value)
				}
			},
		},
		{
			name: "percent length",
			path: "window div.panel",
			key:  "gap",
			validate: func(t *testing.T, at Attribute) {
				l, ok := at.Value.AsLength()
				if !ok || l.Value != 50 || l.Unit != UnitPc {
					t.Errorf("gap = %v", at.Value)
				}
			},
		},
		{
			name: "enum token",
			path: "window div.panel",
			key:  "align-items",
			validate: func(t *testing.T, at Attribute) {
				if e, ok := at.Value.AsEnum(); !ok || e != "center" {
					t.Errorf("align-items = %v", at.Value)
				}
			},
		},
		{
			name: "quoted string",
			path: "window div.panel",
			key:  "font-family",
			validate: func(t *testing.T, at Attribute) {
				if s, ok := at.Value.AsString(); !ok || s != "Inter" {
					t.Errorf("font-family = %v", at.Value)
				}
			},
		},
		{
			name: "theme reference with transition",
			path: "window button.primary:hover",
			key:  "background",
			validate: func(t *testing.T, at Attribute) {
				want, _ := theme.Lookup("primary")
				if at.Value != want {
					t.Errorf("background = %v, want theme primary", at.Value)
				}
				if at.Transition == nil || at.Transition.Duration != 0.2 {
					t.Errorf("transition = %+v, want 0.2s", at.Transition)
				}
			},
		},
		{
			name: "em length",
			path: "window button.primary:hover",
			key:  "width",
			validate: func(t *testing.T, at Attribute) {
				l, ok := at.Value.AsLength()
				if !ok || l.Value != 4 || l.Unit != UnitEm {
					t.Errorf("width = %v", at.Value)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			at, _, ok := sheet.Resolve(pathOf(t, tt.path), tt.key)
			if !ok {
				t.Fatalf("no match for %s on %s", tt.key, tt.path)
			}
			tt.validate(t, at)
		})
	}
}

func TestParseSheetCollectsErrorsAndKeepsValidRules(t *testing.T) {
	src := `
.good { gap: 4px; color: $missing; }
.also-good { gap: 8px; }
`
	p := NewParser(nil)
	sheet, err := p.Parse([]byte(src), NewTheme("empty"))
	if err == nil {
		t.Fatal("expected an error for the unknown theme entry")
	}

	if at, _, ok := sheet.Resolve(pathOf(t, "div.good"), "gap"); !ok || at.Value.Length.Value != 4 {
		t.Errorf("valid declaration before the bad one was lost: %v %v", at, ok)
	}
	if at, _, ok := sheet.Resolve(pathOf(t, "div.also-good"), "gap"); !ok || at.Value.Length.Value != 8 {
		t.Errorf("rule after the bad declaration was lost: %v %v", at, ok)
	}
	if _, _, ok := sheet.Resolve(pathOf(t, "div.good"), "color"); ok {
		t.Error("bad declaration should not produce an attribute")
	}

	// The bad declaration sits on line 2; the error must say so.
	found := false
	for _, e := range multierr.Errors(err) {
		if strings.HasPrefix(e.Error(), "2:") {
			found = true
		}
	}
	if !found {
		t.Errorf("error does not name the offending line: %v", err)
	}
}

func TestParseSheetOneBlockOneRule(t *testing.T) {
	src := `.a { gap: 1px; pad: 2px; } .a { gap: 3px; }`
	p := NewParser(nil)
	sheet, err := p.Parse([]byte(src), nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sheet.Len() != 2 {
		t.Fatalf("rule count = %d, want one rule per block", sheet.Len())
	}
	// Both blocks match with equal specificity; the later declaration wins.
	at, _, ok := sheet.Resolve(pathOf(t, "div.a"), "gap")
	if !ok || at.Value.Length.Value != 3 {
		t.Errorf("gap = %v, want the later block to win", at.Value)
	}
}
