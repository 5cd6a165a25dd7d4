package palette

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette blends between a base and an active colour/alpha pair.
type Palette struct {
	Base        colorful.Color
	Active      colorful.Color
	BaseAlpha   float64
	ActiveAlpha float64
}

// New parses the hex colours of a palette. Malformed colours resolve to black.
func New(baseHex, activeHex string, baseAlpha, activeAlpha float64) Palette {
	return Palette{
		Base:        ParseHex(baseHex),
		Active:      ParseHex(activeHex),
		BaseAlpha:   baseAlpha,
		ActiveAlpha: activeAlpha,
	}
}

// ParseHex parses "#rrggbb", "rrggbb" or "#rgb". Invalid input yields black.
func ParseHex(s string) colorful.Color {
	c, err := parseHex(s)
	if err != nil {
		log.Printf("Warning: %v, using black", err)
		return colorful.Color{}
	}
	return c
}

func parseHex(s string) (colorful.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	return c, nil
}

// BaseColor returns the resting colour.
func (p Palette) BaseColor() color.NRGBA {
	return p.At(0)
}

// At returns the colour for a highlight boost in [0, 1]. Values outside
// the range are clamped so the result never leaves [base, active].
func (p Palette) At(boost float64) color.NRGBA {
	boost = math.Max(0, math.Min(1, boost))
	var r, g, b uint8
	switch boost {
	case 0:
		r, g, b = p.Base.RGB255()
	case 1:
		r, g, b = p.Active.RGB255()
	default:
		r, g, b = p.Base.BlendRgb(p.Active, boost).Clamped().RGB255()
	}
	alpha := p.BaseAlpha + (p.ActiveAlpha-p.BaseAlpha)*boost
	return color.NRGBA{R: r, G: g, B: b, A: alphaByte(alpha)}
}

func alphaByte(a float64) uint8 {
	a = math.Max(0, math.Min(1, a))
	return uint8(math.Round(a * 255))
}
