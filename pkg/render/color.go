// pkg/render/color.go
package render

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// ErrUnknownColor is returned for strings ParseColor cannot read.
var ErrUnknownColor = errors.New("unknown color")

// ParseColor reads a CSS colour: a named colour, #rgb, #rrggbb, #rrggbbaa,
// rgb()/rgba() or hsl()/hsla(). An empty string is no colour and returns nil.
func ParseColor(s string) (color.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch {
	case s == "":
		return nil, nil
	case s == "transparent":
		return color.Transparent, nil
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "hsl"):
		return parseFunc(s, "hsl", hslColor)
	case strings.HasPrefix(s, "rgb"):
		return parseFunc(s, "rgb", rgbColor)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
}

// MustParseColor is ParseColor for compile-time constants.
func MustParseColor(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func parseHex(s string) (color.Color, error) {
	alpha := uint8(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
	}
	return withAlpha(c, alpha), nil
}

// parseFunc splits "name(a, b, c[, alpha])" or "namea(...)" and hands the
// three channels to build.
func parseFunc(s, name string, build func(args []string) (colorful.Color, error)) (color.Color, error) {
	body := strings.TrimPrefix(s, name)
	body = strings.TrimPrefix(body, "a")
	if !strings.HasPrefix(body, "(") || !strings.HasSuffix(body, ")") {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}
	body = strings.NewReplacer(",", " ", "/", " ").Replace(body[1 : len(body)-1])
	args := strings.Fields(body)
	if len(args) != 3 && len(args) != 4 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColor, s)
	}

	c, err := build(args[:3])
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
	}
	alpha := uint8(0xff)
	if len(args) == 4 {
		a, err := parseUnit(args[3], 1)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrUnknownColor, s, err)
		}
		alpha = uint8(clamp01(a)*255 + 0.5)
	}
	return withAlpha(c, alpha), nil
}

func hslColor(args []string) (colorful.Color, error) {
	h, err := strconv.ParseFloat(strings.TrimSuffix(args[0], "deg"), 64)
	if err != nil {
		return colorful.Color{}, err
	}
	sat, err := parseUnit(args[1], 1)
	if err != nil {
		return colorful.Color{}, err
	}
	light, err := parseUnit(args[2], 1)
	if err != nil {
		return colorful.Color{}, err
	}
	return colorful.Hsl(h, clamp01(sat), clamp01(light)), nil
}

func rgbColor(args []string) (colorful.Color, error) {
	var ch [3]float64
	for i, a := range args {
		v, err := parseUnit(a, 255)
		if err != nil {
			return colorful.Color{}, err
		}
		ch[i] = clamp01(v)
	}
	return colorful.Color{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// parseUnit reads "50%" as 0.5 and a bare number as n/scale.
func parseUnit(s string, scale float64) (float64, error) {
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		return v / 100, err
	}
	v, err := strconv.ParseFloat(s, 64)
	return v / scale, err
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}

func withAlpha(c colorful.Color, alpha uint8) color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

// Darken scales the colour channels of c by k, keeping alpha.
func Darken(c color.Color, k float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.NRGBA{
		R: uint8(float64(n.R) * k),
		G: uint8(float64(n.G) * k),
		B: uint8(float64(n.B) * k),
		A: n.A,
	}
}
