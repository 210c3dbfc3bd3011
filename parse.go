package tint

import (
	"errors"
	"strconv"
	"strings"

	"github.com/chewxy/math32"
)

// Parse errors. Each failure mode maps to exactly one sentinel so callers
// can switch on errors.Is without string matching.
var (
	// ErrEmpty is returned when the input is empty or whitespace only.
	ErrEmpty = errors.New("empty color string")

	// ErrInvalidLength is returned when a hex literal is not 3, 4, 6, or 8
	// digits long.
	ErrInvalidLength = errors.New("invalid hex length")

	// ErrInvalidHex is returned when a hex literal contains a non-hex digit.
	ErrInvalidHex = errors.New("invalid hex digits")

	// ErrInvalidFunc is returned for an unknown function name or a malformed
	// argument structure (wrong component count, tokens after alpha).
	ErrInvalidFunc = errors.New("invalid function name")

	// ErrOutOfRange is returned when a numeric component parses but falls
	// outside its allowed range.
	ErrOutOfRange = errors.New("component out of range")

	// ErrInvalidToken is returned when the function arguments contain a
	// character or lexeme that is not a number, comma, or slash.
	ErrInvalidToken = errors.New("invalid token found in function")
)

// Parse reads a color from its text form. Supported syntaxes:
//
//	#RGB, #RGBA, #RRGGBB, #RRGGBBAA
//	rgb(r, g, b)         legacy comma form
//	rgb(r g b)           modern space form
//	rgb(r% g% b%)        percentage components
//	rgb(r g b / a)       slash alpha
//	rgba(...)            same grammar as rgb(...)
//
// Components are integers 0-255, percentages 0%-100%, or floats that round
// to the nearest integer. Alpha additionally accepts a fraction in [0,1].
// Function names are case-insensitive. Named colors are not recognized.
func Parse(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Color{}, ErrEmpty
	}

	if rest, ok := strings.CutPrefix(s, "#"); ok {
		return parseHex(strings.TrimSpace(rest))
	}

	lower := strings.ToLower(s)
	if args, ok := cutFunc(lower, "rgb("); ok {
		return parseRGBFunc(args)
	}
	if args, ok := cutFunc(lower, "rgba("); ok {
		return parseRGBFunc(args)
	}

	return Color{}, ErrInvalidFunc
}

// MustParse is Parse for compile-time-known literals; it panics on error.
func MustParse(s string) Color {
	c, err := Parse(s)
	if err != nil {
		panic("tint: MustParse(" + strconv.Quote(s) + "): " + err.Error())
	}
	return c
}

// cutFunc strips a "name(" prefix and the trailing ")", returning the raw
// argument text.
func cutFunc(s, prefix string) (string, bool) {
	rest, ok := strings.CutPrefix(s, prefix)
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}

// parseHex reads a 3, 4, 6, or 8 digit hex literal (no leading #).
// Short forms expand each nibble by repetition (f -> ff).
func parseHex(hex string) (Color, error) {
	switch len(hex) {
	case 3, 4:
		var ch [4]uint8
		ch[3] = 255
		for i := 0; i < len(hex); i++ {
			n, ok := nibble(hex[i])
			if !ok {
				return Color{}, ErrInvalidHex
			}
			ch[i] = n * 17
		}
		return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil

	case 6, 8:
		var ch [4]uint8
		ch[3] = 255
		for i := 0; i < len(hex); i += 2 {
			hi, ok1 := nibble(hex[i])
			lo, ok2 := nibble(hex[i+1])
			if !ok1 || !ok2 {
				return Color{}, ErrInvalidHex
			}
			ch[i/2] = hi<<4 | lo
		}
		return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil

	default:
		return Color{}, ErrInvalidLength
	}
}

func nibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// token is one lexeme of a color function's argument list.
type token struct {
	kind tokenKind
	text string // set for tokNumber
}

type tokenKind uint8

const (
	tokNumber tokenKind = iota // [+-]? digits? ("." digits)? "%"?
	tokSlash
	tokComma
)

// tokenize splits the argument text into number, slash, and comma tokens.
// Whitespace separates tokens and is otherwise ignored.
func tokenize(input string) ([]token, error) {
	var tokens []token
	for i := 0; i < len(input); {
		switch c := input[i]; {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++

		case c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9'):
			start := i
			if input[i] == '+' || input[i] == '-' {
				i++
			}
			for i < len(input) && isDigit(input[i]) {
				i++
			}
			if i < len(input) && input[i] == '.' {
				i++
				for i < len(input) && isDigit(input[i]) {
					i++
				}
			}
			if i < len(input) && input[i] == '%' {
				i++
			}
			tokens = append(tokens, token{kind: tokNumber, text: input[start:i]})

		case c == '/':
			tokens = append(tokens, token{kind: tokSlash})
			i++
		case c == ',':
			tokens = append(tokens, token{kind: tokComma})
			i++

		default:
			return nil, ErrInvalidToken
		}
	}
	return tokens, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// parseRGBFunc parses the argument list of rgb()/rgba(). The presence of a
// comma selects the legacy grammar; otherwise the modern space-separated
// grammar applies. Both accept a trailing "/ alpha".
func parseRGBFunc(args string) (Color, error) {
	tokens, err := tokenize(args)
	if err != nil {
		return Color{}, err
	}
	if len(tokens) == 0 {
		return Color{}, ErrInvalidFunc
	}

	hasComma := false
	for _, t := range tokens {
		if t.kind == tokComma {
			hasComma = true
			break
		}
	}

	var comps []string
	var alpha string
	hasAlpha := false

	if hasComma {
		// legacy: rgb(r, g, b), rgba(r, g, b, a), or a non-standard "/ a"
		// tail accepted for leniency
		for i := 0; i < len(tokens); {
			if tokens[i].kind != tokNumber {
				return Color{}, ErrInvalidFunc
			}
			comps = append(comps, tokens[i].text)
			i++

			if i == len(tokens) {
				break
			}
			switch tokens[i].kind {
			case tokComma:
				i++
			case tokSlash:
				i++
				if i == len(tokens) || tokens[i].kind != tokNumber {
					return Color{}, ErrInvalidToken
				}
				alpha, hasAlpha = tokens[i].text, true
				i++
				if i != len(tokens) {
					return Color{}, ErrInvalidFunc
				}
			default:
				return Color{}, ErrInvalidToken
			}
		}

		// a fourth comma-separated component is the legacy alpha
		if len(comps) == 4 && !hasAlpha {
			alpha, hasAlpha = comps[3], true
			comps = comps[:3]
		}
	} else {
		// modern: rgb(r g b / a?)
		for i := 0; i < len(tokens); i++ {
			switch tokens[i].kind {
			case tokNumber:
				if hasAlpha {
					return Color{}, ErrInvalidFunc
				}
				comps = append(comps, tokens[i].text)
			case tokSlash:
				if hasAlpha {
					return Color{}, ErrInvalidFunc
				}
				i++
				if i == len(tokens) || tokens[i].kind != tokNumber {
					return Color{}, ErrInvalidToken
				}
				alpha, hasAlpha = tokens[i].text, true
			case tokComma:
				return Color{}, ErrInvalidToken
			}
		}
	}

	if len(comps) != 3 {
		return Color{}, ErrInvalidFunc
	}

	r, err := parseRGBComponent(comps[0])
	if err != nil {
		return Color{}, err
	}
	g, err := parseRGBComponent(comps[1])
	if err != nil {
		return Color{}, err
	}
	b, err := parseRGBComponent(comps[2])
	if err != nil {
		return Color{}, err
	}

	a := uint8(255)
	if hasAlpha {
		a, err = parseAlphaComponent(alpha)
		if err != nil {
			return Color{}, err
		}
	}

	return Color{R: r, G: g, B: b, A: a}, nil
}

// parseRGBComponent reads one color channel: a percentage in [0,100], an
// integer in [0,255], or a float in [0,255] rounded to the nearest integer.
func parseRGBComponent(num string) (uint8, error) {
	core, isPercent := strings.CutSuffix(num, "%")

	if isPercent {
		v, err := strconv.ParseFloat(core, 32)
		if err != nil {
			return 0, ErrInvalidToken
		}
		if v < 0 || v > 100 {
			return 0, ErrOutOfRange
		}
		return roundToByte(float32(v) / 100.0 * 255.0), nil
	}

	if v, ok := parseUint16(core); ok {
		if v > 255 {
			return 0, ErrOutOfRange
		}
		return uint8(v), nil
	}

	v, err := strconv.ParseFloat(core, 32)
	if err != nil {
		return 0, ErrInvalidToken
	}
	if v < 0 || v > 255 {
		return 0, ErrOutOfRange
	}
	return roundToByte(float32(v)), nil
}

// parseAlphaComponent reads an alpha channel: a percentage in [0,100], a
// fraction in [0,1] scaled to 255, or an integer in [0,255]. The fraction
// reading wins when both apply, so "1" is full opacity, not 1/255.
func parseAlphaComponent(num string) (uint8, error) {
	core, isPercent := strings.CutSuffix(num, "%")

	if isPercent {
		v, err := strconv.ParseFloat(core, 32)
		if err != nil {
			return 0, ErrInvalidToken
		}
		if v < 0 || v > 100 {
			return 0, ErrOutOfRange
		}
		return roundToByte(float32(v) / 100.0 * 255.0), nil
	}

	if v, err := strconv.ParseFloat(core, 32); err == nil && v >= 0 && v <= 1 {
		return roundToByte(float32(v) * 255.0), nil
	}

	v, ok := parseUint16(core)
	if !ok {
		return 0, ErrInvalidToken
	}
	if v > 255 {
		return 0, ErrOutOfRange
	}
	return uint8(v), nil
}

// parseUint16 parses a non-negative decimal integer with an optional
// leading plus sign.
func parseUint16(s string) (uint16, bool) {
	s = strings.TrimPrefix(s, "+")
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(v), true
}

// roundToByte rounds half away from zero and clamps to [0,255].
func roundToByte(v float32) uint8 {
	return uint8(clampRange(math32.Round(v), 0, 255))
}
