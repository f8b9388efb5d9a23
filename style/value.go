// Package style implements the attribute cascade: typed values, selector
// paths with CSS-like specificity, an ordered rule sheet, a per-frame
// resolution cache, and animated transitions between resolved values.
package style

import (
	"fmt"
	"strconv"
)

// ValueKind discriminates the typed attribute values.
type ValueKind int

const (
	KindString ValueKind = iota // quoted string, e.g. "Inter"
	KindEnum                    // bare token, e.g. space-between
	KindLength                  // dimension, e.g. 12px
	KindColor                   // color, e.g. #ff0040
)

// Value is a typed style attribute value.
type Value struct {
	Kind   ValueKind
	Str    string // KindString and KindEnum
	Length Length // KindLength
	Color  Color  // KindColor
}

// String builds a string value.
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// Enum builds an enumerated token value.
func Enum(s string) Value {
	return Value{Kind: KindEnum, Str: s}
}

// Px builds a pixel length value.
func Px(v float32) Value {
	return Value{Kind: KindLength, Length: Length{Value: v, Unit: UnitPx}}
}

// Len builds a length value.
func Len(l Length) Value {
	return Value{Kind: KindLength, Length: l}
}

// Col builds a color value.
func Col(c Color) Value {
	return Value{Kind: KindColor, Color: c}
}

// IsNone reports whether the value is the `none` token.
func (v Value) IsNone() bool {
	return v.Kind == KindEnum && v.Str == "none"
}

// AsString returns the string payload of a string value.
func (v Value) AsString() (string, bool) {
	if v.Kind == KindString {
		return v.Str, true
	}
	return "", false
}

// AsEnum returns the token of an enum value.
func (v Value) AsEnum() (string, bool) {
	if v.Kind == KindEnum {
		return v.Str, true
	}
	return "", false
}

// AsLength returns the length payload of a length value.
func (v Value) AsLength() (Length, bool) {
	if v.Kind == KindLength {
		return v.Length, true
	}
	return Length{}, false
}

// AsColor returns the color payload of a color value.
func (v Value) AsColor() (Color, bool) {
	if v.Kind == KindColor {
		return v.Color, true
	}
	return Color{}, false
}

func (v Value) String() string {
	switch v.Kind {
	case KindString:
		return strconv.Quote(v.Str)
	case KindEnum:
		return v.Str
	case KindLength:
		return v.Length.String()
	case KindColor:
		return v.Color.String()
	}
	return "<invalid>"
}

// Unit is a length unit.
type Unit int

const (
	UnitPx Unit = iota
	UnitPt
	UnitPc // percent of the parent extent
	UnitVw // percent of the viewport width
	UnitVh // percent of the viewport height
	UnitEm // multiple of the font size
)

func (u Unit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitPt:
		return "pt"
	case UnitPc:
		return "%"
	case UnitVw:
		return "vw"
	case UnitVh:
		return "vh"
	case UnitEm:
		return "em"
	}
	return "px"
}

// Length is a dimension with a unit.
type Length struct {
	Value float32
	Unit  Unit
}

// LengthContext carries the reference extents needed to resolve relative
// units to pixels.
type LengthContext struct {
	Parent   float32 // parent extent along the resolved dimension
	ViewW    float32
	ViewH    float32
	FontSize float32
}

// Pixels resolves the length against the context. Pt assumes 96 dpi.
func (l Length) Pixels(cx LengthContext) float32 {
	switch l.Unit {
	case UnitPt:
		return l.Value * 96.0 / 72.0
	case UnitPc:
		return l.Value / 100 * cx.Parent
	case UnitVw:
		return l.Value / 100 * cx.ViewW
	case UnitVh:
		return l.Value / 100 * cx.ViewH
	case UnitEm:
		return l.Value * cx.FontSize
	default:
		return l.Value
	}
}

func (l Length) String() string {
	return fmt.Sprintf("%g%s", l.Value, l.Unit)
}
