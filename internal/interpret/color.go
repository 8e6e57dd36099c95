package interpret

import (
	"fmt"
	"strconv"
	"strings"
)

// Color decodes CSS-style color codes: #RRGGBB, #RGB, #RRGGBBAA and
// rgb(R, G, B) with decimal channels. Out-of-range channels decline rather
// than clamp.
type Color struct{}

func (Color) Name() string { return "Color Code" }

func (Color) Interpret(content string) *Result {
	c, ok := parseColor(strings.TrimSpace(content))
	if !ok {
		return nil
	}

	hex6 := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	h, s, l := rgbToHSL(c.R, c.G, c.B)

	return &Result{Items: []Item{
		swatchItem("Preview", hex6, c),
		textItem("Hex", hex6),
		textItem("R", strconv.Itoa(int(c.R))),
		textItem("G", strconv.Itoa(int(c.G))),
		textItem("B", strconv.Itoa(int(c.B))),
		textItem("A", strconv.Itoa(int(c.A))),
		textItem("HSL", fmt.Sprintf("hsl(%.0f, %.1f%%, %.1f%%)", h, s*100, l*100)),
	}}
}

func parseColor(s string) (RGBA, bool) {
	if hexDigits, ok := strings.CutPrefix(s, "#"); ok {
		return parseHexColor(hexDigits)
	}
	lower := strings.ToLower(s)
	if inner, ok := strings.CutPrefix(lower, "rgb("); ok {
		if inner, ok = strings.CutSuffix(inner, ")"); ok {
			return parseRGBFunc(inner)
		}
	}
	return RGBA{}, false
}

func parseHexColor(digits string) (RGBA, bool) {
	switch len(digits) {
	case 3:
		// Each nibble duplicates to form a byte: f → ff.
		r, okR := nibble(digits[0])
		g, okG := nibble(digits[1])
		b, okB := nibble(digits[2])
		if !okR || !okG || !okB {
			return RGBA{}, false
		}
		return RGBA{R: r * 17, G: g * 17, B: b * 17, A: 255}, true
	case 6, 8:
		var ch [4]uint8
		ch[3] = 255
		for i := 0; i*2 < len(digits); i++ {
			v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
			if err != nil {
				return RGBA{}, false
			}
			ch[i] = uint8(v)
		}
		return RGBA{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, true
	default:
		return RGBA{}, false
	}
}

func nibble(c byte) (uint8, bool) {
	v, err := strconv.ParseUint(string(c), 16, 8)
	if err != nil {
		return 0, false
	}
	return uint8(v), true
}

func parseRGBFunc(inner string) (RGBA, bool) {
	parts := strings.Split(inner, ",")
	if len(parts) != 3 {
		return RGBA{}, false
	}
	var ch [3]uint8
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v > 255 {
			return RGBA{}, false
		}
		ch[i] = uint8(v)
	}
	return RGBA{R: ch[0], G: ch[1], B: ch[2], A: 255}, true
}

// rgbToHSL converts 8-bit RGB to hue (0–360) and saturation/lightness (0–1).
func rgbToHSL(r8, g8, b8 uint8) (h, s, l float64) {
	r := float64(r8) / 255
	g := float64(g8) / 255
	b := float64(b8) / 255

	mx := max(r, g, b)
	mn := min(r, g, b)
	l = (mx + mn) / 2

	d := mx - mn
	if d < 1e-9 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = d / (2 - mx - mn)
	} else {
		s = d / (mx + mn)
	}

	switch mx {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60, s, l
}
