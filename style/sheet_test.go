package style

import "testing"

func TestSheetResolve(t *testing.T) {
	sheet := NewSheet()
	sheet.AddRule("button", Attribute{Key: "color", Value: Col(Black)})
	sheet.AddRule(".primary", Attribute{Key: "color", Value: Col(RGB(0, 0, 1))})
	sheet.AddRule("button.primary", Attribute{Key: "color", Value: Col(White)})

	path := pathOf(t, "window button.primary")

	at, sp, ok := sheet.Resolve(path, "color")
	if !ok {
		t.Fatal("expected a match")
	}
	if at.Value.Color != White {
		t.Errorf("resolved %v, want white from the most specific rule", at.Value)
	}
	if sp.Class != 1 || sp.Tag != 1 {
		t.Errorf("winning specificity = %+v", sp)
	}

	if _, _, ok := sheet.Resolve(path, "padding"); ok {
		t.Error("expected no match for an undeclared key")
	}
}

func TestSheetLaterRuleWinsTies(t *testing.T) {
	sheet := NewSheet()
	sheet.AddRule(".a", Attribute{Key: "gap", Value: Px(4)})
	sheet.AddRule(".b", Attribute{Key: "gap", Value: Px(8)})

	path := pathOf(t, "window div.a.b")

	at, _, ok := sheet.Resolve(path, "gap")
	if !ok {
		t.Fatal("expected a match")
	}
	if at.Value.Length.Value != 8 {
		t.Errorf("resolved %v, want the later-declared rule to win the tie", at.Value)
	}
}

func TestSheetExtendOrdering(t *testing.T) {
	base := NewSheet()
	base.AddRule(".a", Attribute{Key: "gap", Value: Px(4)})

	user := NewSheet()
	user.AddRule(".a", Attribute{Key: "gap", Value: Px(12)})

	base.Extend(user)

	at, _, ok := base.Resolve(pathOf(t, "div.a"), "gap")
	if !ok {
		t.Fatal("expected a match")
	}
	if at.Value.Length.Value != 12 {
		t.Errorf("resolved %v, want the extending sheet to win", at.Value)
	}
}

func TestAttributesLastWriteWins(t *testing.T) {
	var a Attributes
	a = append(a, Attribute{Key: "color", Value: Col(Black)})
	a = append(a, Attribute{Key: "color", Value: Col(White)})

	at, ok := a.Get("color")
	if !ok || at.Value.Color != White {
		t.Errorf("Get = %v, %v; want the later write", at, ok)
	}

	a.Set(Attribute{Key: "color", Value: Col(Black)})
	if len(a) != 2 {
		t.Errorf("Set should replace in place, len = %d", len(a))
	}
}
