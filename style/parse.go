package style

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Parser parses the CSS-like sheet syntax into a rule table.
//
// The grammar is plain rulesets: a space-separated selector path
// followed by a `{ key: value; ... }` block. Values are strings,
// tokens, lengths, or colors; `$name` references a theme entry and a
// trailing `transition(0.2s)` marks the attribute animated.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a sheet parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("style-parser")}
}

// Parse parses sheet text into rules, resolving $name references
// against theme. Rules that fail to parse are skipped; all their
// errors are combined into the returned error while the valid rules
// still populate the sheet.
func (p *Parser) Parse(data []byte, theme *Theme) (*Sheet, error) {
	sheet := NewSheet()
	input := parse.NewInput(bytes.NewReader(data))
	parser := css.NewParser(input, false)

	var (
		errs     error
		selector Selector
		selOK    bool
		ruleIdx  = -1 // rule opened for the current block, lazily
	)
	for {
		offset := parser.Offset()
		gt, _, tok := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err.Error() != "EOF" {
				errs = multierr.Append(errs, positioned(data, offset, err))
			}
			return sheet, errs

		case css.BeginRulesetGrammar, css.QualifiedRuleGrammar:
			sel, err := p.parseSelector(tok, parser.Values())
			if err != nil {
				errs = multierr.Append(errs, positioned(data, offset, err))
				selOK = false
				continue
			}
			selector, selOK, ruleIdx = sel, true, -1

		case css.DeclarationGrammar:
			if !selOK {
				continue
			}
			attr, err := p.parseDeclaration(string(tok), parser.Values(), theme)
			if err != nil {
				errs = multierr.Append(errs, positioned(data, offset, err))
				continue
			}
			if ruleIdx < 0 {
				sheet.Add(Rule{Selector: selector})
				ruleIdx = sheet.Len() - 1
			}
			sheet.rules[ruleIdx].Attributes.Set(attr)

		case css.EndRulesetGrammar:
			selOK, ruleIdx = false, -1

		case css.BeginAtRuleGrammar:
			p.log.Debug("skipping at-rule", zap.String("rule", string(tok)))
			p.skipBlock(parser)
		}
	}
}

// positioned prefixes err with the line and column of the construct
// that failed, resolved from its byte offset into the sheet text.
func positioned(data []byte, offset int, err error) error {
	line, col, _ := parse.Position(bytes.NewReader(data), offset)
	return fmt.Errorf("%d:%d: %w", line, col, err)
}

func (p *Parser) parseSelector(data []byte, values []css.Token) (Selector, error) {
	var b strings.Builder
	b.Write(data)
	for _, t := range values {
		b.Write(t.Data)
	}
	text := strings.TrimSpace(b.String())
	sel, ok := ParseSelector(text)
	if !ok {
		return nil, fmt.Errorf("invalid selector %q", text)
	}
	return sel, nil
}

func (p *Parser) parseDeclaration(key string, tokens []css.Token, theme *Theme) (Attribute, error) {
	attr := Attribute{Key: key}
	haveValue := false

	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.TokenType {
		case css.WhitespaceToken, css.CommentToken:
			continue

		case css.FunctionToken:
			name := strings.TrimSuffix(string(t.Data), "(")
			if name != "transition" {
				return attr, fmt.Errorf("%s: unknown function %q", key, name)
			}
			tr, consumed, err := parseTransitionArgs(key, tokens[i+1:])
			if err != nil {
				return attr, err
			}
			attr.Transition = &tr
			i += consumed
			continue

		case css.DelimToken:
			if string(t.Data) != "$" {
				return attr, fmt.Errorf("%s: unexpected %q", key, t.Data)
			}
			if i+1 >= len(tokens) || tokens[i+1].TokenType != css.IdentToken {
				return attr, fmt.Errorf("%s: dangling $ reference", key)
			}
			name := string(tokens[i+1].Data)
			v, ok := theme.Lookup(name)
			if !ok {
				return attr, fmt.Errorf("%s: unknown theme entry $%s", key, name)
			}
			attr.Value, haveValue = v, true
			i++
			continue
		}

		if haveValue {
			return attr, fmt.Errorf("%s: trailing token %q", key, t.Data)
		}
		v, err := parseValueToken(key, t)
		if err != nil {
			return attr, err
		}
		attr.Value, haveValue = v, true
	}
	if !haveValue {
		return attr, fmt.Errorf("%s: empty value", key)
	}
	return attr, nil
}

func parseValueToken(key string, t css.Token) (Value, error) {
	switch t.TokenType {
	case css.HashToken:
		c, ok := ParseColor(string(t.Data))
		if !ok {
			return Value{}, fmt.Errorf("%s: invalid color %q", key, t.Data)
		}
		return Col(c), nil

	case css.StringToken:
		s := string(t.Data)
		if len(s) >= 2 {
			s = s[1 : len(s)-1]
		}
		return String(s), nil

	case css.NumberToken:
		f, err := strconv.ParseFloat(string(t.Data), 32)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", key, err)
		}
		return Px(float32(f)), nil

	case css.PercentageToken:
		f, err := strconv.ParseFloat(strings.TrimSuffix(string(t.Data), "%"), 32)
		if err != nil {
			return Value{}, fmt.Errorf("%s: %w", key, err)
		}
		return Len(Length{Value: float32(f), Unit: UnitPc}), nil

	case css.DimensionToken:
		return parseDimension(key, string(t.Data))

	case css.IdentToken:
		word := string(t.Data)
		if word == "transparent" {
			return Col(Transparent), nil
		}
		if c, ok := ParseColor(word); ok {
			return Col(c), nil
		}
		return Enum(word), nil
	}
	return Value{}, fmt.Errorf("%s: unexpected token %q", key, t.Data)
}

func parseDimension(key, s string) (Value, error) {
	i := len(s)
	for i > 0 {
		c := s[i-1]
		if c >= '0' && c <= '9' || c == '.' {
			break
		}
		i--
	}
	f, err := strconv.ParseFloat(s[:i], 32)
	if err != nil {
		return Value{}, fmt.Errorf("%s: invalid dimension %q", key, s)
	}
	var unit Unit
	switch s[i:] {
	case "px", "":
		unit = UnitPx
	case "pt":
		unit = UnitPt
	case "vw":
		unit = UnitVw
	case "vh":
		unit = UnitVh
	case "em":
		unit = UnitEm
	default:
		return Value{}, fmt.Errorf("%s: unknown unit %q", key, s[i:])
	}
	return Len(Length{Value: float32(f), Unit: unit}), nil
}

// parseTransitionArgs parses the tokens after `transition(` up to the
// closing parenthesis and returns how many were consumed.
func parseTransitionArgs(key string, tokens []css.Token) (Transition, int, error) {
	var (
		tr      Transition
		haveDur bool
	)
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		switch t.TokenType {
		case css.WhitespaceToken:
			continue
		case css.RightParenthesisToken:
			if !haveDur {
				return tr, i + 1, fmt.Errorf("%s: transition() needs a duration", key)
			}
			return tr, i + 1, nil
		case css.DimensionToken:
			s := string(t.Data)
			var scale float32 = 1
			switch {
			case strings.HasSuffix(s, "ms"):
				s, scale = strings.TrimSuffix(s, "ms"), 1.0/1000
			case strings.HasSuffix(s, "s"):
				s = strings.TrimSuffix(s, "s")
			default:
				return tr, i, fmt.Errorf("%s: transition duration %q needs s or ms", key, t.Data)
			}
			f, err := strconv.ParseFloat(s, 32)
			if err != nil {
				return tr, i, fmt.Errorf("%s: %w", key, err)
			}
			tr.Duration = float32(f) * scale
			haveDur = true
		case css.NumberToken:
			f, err := strconv.ParseFloat(string(t.Data), 32)
			if err != nil {
				return tr, i, fmt.Errorf("%s: %w", key, err)
			}
			tr.Duration = float32(f)
			haveDur = true
		default:
			return tr, i, fmt.Errorf("%s: unexpected token %q in transition()", key, t.Data)
		}
	}
	return tr, len(tokens), fmt.Errorf("%s: unterminated transition()", key)
}

func (p *Parser) skipBlock(parser *css.Parser) {
	depth := 1
	for depth > 0 {
		gt, _, _ := parser.Next()
		switch gt {
		case css.ErrorGrammar:
			return
		case css.BeginAtRuleGrammar, css.BeginRulesetGrammar:
			depth++
		case css.EndAtRuleGrammar, css.EndRulesetGrammar:
			depth--
		}
	}
}
