package style

import (
	"slices"
	"strings"
)

// Level is one step of a selector or of a node's live path: an optional
// element name plus class and pseudo-state sets.
type Level struct {
	Element string
	Classes []string
	States  []string
}

// HasClass reports whether the level carries the class.
func (l *Level) HasClass(name string) bool {
	return slices.Contains(l.Classes, name)
}

// AddClass adds a class if not already present.
func (l *Level) AddClass(name string) {
	if !l.HasClass(name) {
		l.Classes = append(l.Classes, name)
	}
}

// SetState adds or removes a pseudo-state.
func (l *Level) SetState(name string, on bool) {
	i := slices.Index(l.States, name)
	switch {
	case on && i < 0:
		l.States = append(l.States, name)
	case !on && i >= 0:
		l.States = slices.Delete(l.States, i, i+1)
	}
}

// Matches reports whether the stored selector level matches a live path
// level. The element must be equal when set, and the stored classes and
// states must each be a subset of the path level's.
func (l *Level) Matches(path *Level) bool {
	if l.Element != "" && l.Element != path.Element {
		return false
	}
	for _, c := range l.Classes {
		if !slices.Contains(path.Classes, c) {
			return false
		}
	}
	for _, s := range l.States {
		if !slices.Contains(path.States, s) {
			return false
		}
	}
	return true
}

func (l *Level) String() string {
	var b strings.Builder
	b.WriteString(l.Element)
	for _, c := range l.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, s := range l.States {
		b.WriteByte(':')
		b.WriteString(s)
	}
	if b.Len() == 0 {
		return "*"
	}
	return b.String()
}

// Specificity ranks selector matches. Class counts classes and
// pseudo-states; Tag counts element names. Compared lexicographically
// with Class dominant.
type Specificity struct {
	Class uint16
	Tag   uint16
}

// Inline is the specificity of a node-local attribute. It outranks any
// selector a sheet can declare.
var Inline = Specificity{Class: ^uint16(0), Tag: ^uint16(0)}

// Compare orders specificities: negative if s < o, zero if equal,
// positive if s > o.
func (s Specificity) Compare(o Specificity) int {
	if s.Class != o.Class {
		if s.Class < o.Class {
			return -1
		}
		return 1
	}
	if s.Tag != o.Tag {
		if s.Tag < o.Tag {
			return -1
		}
		return 1
	}
	return 0
}

// Selector is an ordered list of levels, outermost first.
type Selector []Level

// String renders the selector in sheet syntax.
func (s Selector) String() string {
	parts := make([]string, len(s))
	for i := range s {
		parts[i] = s[i].String()
	}
	return strings.Join(parts, " ")
}

// Specificity sums class/state and element-name counts over all levels.
func (s Selector) Specificity() Specificity {
	var sp Specificity
	for i := range s {
		sp.Class += uint16(len(s[i].Classes) + len(s[i].States))
		if s[i].Element != "" {
			sp.Tag++
		}
	}
	return sp
}

// Matches reports whether the selector matches the live path. The
// selector's levels must appear, in order, as a subsequence of the
// path's levels; a selector longer than the path never matches. The
// match is not anchored at either end.
func (s Selector) Matches(path Path) bool {
	if len(s) > len(path) {
		return false
	}
	i := 0
	for p := range path {
		if i == len(s) {
			break
		}
		if s[i].Matches(&path[p]) {
			i++
		}
	}
	return i == len(s)
}

// Path is a node's live selector path from the root down to the node.
type Path []Level

// Push appends a level, returning the extended path. The extension
// shares the backing array only when capacity allows; callers walking a
// tree should treat the returned path as valid for the child call only.
func (p Path) Push(l Level) Path {
	return append(p[:len(p):len(p)], l)
}

// ParseSelector parses a space-separated selector like
// "window .panel:hover button". Returns false on an empty or malformed
// input.
func ParseSelector(s string) (Selector, bool) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, false
	}
	sel := make(Selector, 0, len(fields))
	for _, f := range fields {
		l, ok := parseLevel(f)
		if !ok {
			return nil, false
		}
		sel = append(sel, l)
	}
	return sel, true
}

func parseLevel(s string) (Level, bool) {
	var l Level
	if s == "*" {
		return l, true
	}
	for s != "" {
		kind := byte(0)
		if s[0] == '.' || s[0] == ':' {
			kind = s[0]
			s = s[1:]
		}
		end := strings.IndexAny(s, ".:")
		if end < 0 {
			end = len(s)
		}
		name := s[:end]
		if name == "" {
			return Level{}, false
		}
		switch kind {
		case '.':
			l.Classes = append(l.Classes, name)
		case ':':
			l.States = append(l.States, name)
		default:
			if l.Element != "" {
				return Level{}, false
			}
			l.Element = name
		}
		s = s[end:]
	}
	return l, true
}
