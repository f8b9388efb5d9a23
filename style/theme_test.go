package style

import "testing"

func TestParseTheme(t *testing.T) {
	data := []byte(`
name = "ocean"

[colors]
primary = "#1c71d8"
accent = "steelblue"

[lengths]
padding = "8px"
gutter = "1.5em"
`)
	th, err := ParseTheme(data)
	if err != nil {
		t.Fatalf("ParseTheme: %v", err)
	}
	if th.Name() != "ocean" {
		t.Errorf("Name = %q", th.Name())
	}

	v, ok := th.Lookup("primary")
	if !ok {
		t.Fatal("primary missing")
	}
	want, _ := ParseColor("#1c71d8")
	if c, _ := v.AsColor(); c != want {
		t.Errorf("primary = %v", v)
	}

	v, ok = th.Lookup("accent")
	if !ok {
		t.Fatal("named color entry missing")
	}
	want, _ = ParseColor("steelblue")
	if c, _ := v.AsColor(); c != want {
		t.Errorf("accent = %v, want steelblue", v)
	}

	v, ok = th.Lookup("gutter")
	if !ok {
		t.Fatal("gutter missing")
	}
	if l, _ := v.AsLength(); l.Value != 1.5 || l.Unit != UnitEm {
		t.Errorf("gutter = %v", v)
	}

	if _, ok := th.Lookup("nope"); ok {
		t.Error("unknown entry resolved")
	}
}

func TestParseThemeRejectsBadColor(t *testing.T) {
	if _, err := ParseTheme([]byte("[colors]\nbad = \"#zzz\"\n")); err == nil {
		t.Error("expected an error for an invalid color")
	}
}

func TestBuiltinThemes(t *testing.T) {
	for _, th := range []*Theme{Day(), Night()} {
		for _, key := range []string{"background", "surface", "text", "primary", "accent", "outline"} {
			if _, ok := th.Lookup(key); !ok {
				t.Errorf("theme %s missing %s", th.Name(), key)
			}
		}
	}
	day, _ := Day().Lookup("background")
	night, _ := Night().Lookup("background")
	if day == night {
		t.Error("day and night backgrounds should differ")
	}
}

func TestColorParsing(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{"#fff", White, true},
		{"#000000", Black, true},
		{"#ff000080", Color{R: 1, A: float32(0x80) / 255}, true},
		{"black", Black, true},
		{"#12345", Color{}, false},
		{"notacolor", Color{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseColor(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("ParseColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLengthPixels(t *testing.T) {
	cx := LengthContext{Parent: 200, ViewW: 1000, ViewH: 500, FontSize: 16}
	tests := []struct {
		l    Length
		want float32
	}{
		{Length{Value: 12, Unit: UnitPx}, 12},
		{Length{Value: 72, Unit: UnitPt}, 96},
		{Length{Value: 50, Unit: UnitPc}, 100},
		{Length{Value: 10, Unit: UnitVw}, 100},
		{Length{Value: 10, Unit: UnitVh}, 50},
		{Length{Value: 2, Unit: UnitEm}, 32},
	}
	for _, tt := range tests {
		if got := tt.l.Pixels(cx); got != tt.want {
			t.Errorf("%v.Pixels = %g, want %g", tt.l, got, tt.want)
		}
	}
}
