package gridmath

import "math"

const (
	// HoverInfluence scales the away-from-pointer term of a hover push.
	HoverInfluence = 0.18
	// VelocityInfluence scales the pointer velocity term of a hover push.
	VelocityInfluence = 0.0008
	// ShockUnit is the push in pixels for a shock of strength 1 at the click point.
	ShockUnit = 4.0
	// HighlightExponent biases the colour falloff toward the pointer.
	HighlightExponent = 1.15
)

// Point is a position or displacement in canvas pixels.
type Point struct {
	X, Y float64
}

// Add returns p + q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Len returns the magnitude of p.
func (p Point) Len() float64 {
	return math.Hypot(p.X, p.Y)
}

// Layout describes an evenly spaced, centered grid of dots.
type Layout struct {
	Cols, Rows     int
	Cell           float64 // dot size + gap
	StartX, StartY float64 // center of the first dot
}

// Build computes the grid layout for a container. Zero or negative space
// yields an empty layout.
func Build(width, height, dotSize, gap float64) Layout {
	cell := dotSize + gap
	if cell <= 0 {
		return Layout{}
	}
	cols := int(math.Floor((width + gap) / cell))
	rows := int(math.Floor((height + gap) / cell))
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}

	gridW := cell*float64(cols) - gap
	gridH := cell*float64(rows) - gap

	return Layout{
		Cols:   cols,
		Rows:   rows,
		Cell:   cell,
		StartX: (width-gridW)/2 + dotSize/2,
		StartY: (height-gridH)/2 + dotSize/2,
	}
}

// Count returns the number of dots in the layout.
func (l Layout) Count() int {
	return l.Cols * l.Rows
}

// Anchor returns the rest position of the dot at col, row.
func (l Layout) Anchor(col, row int) Point {
	return Point{
		X: l.StartX + float64(col)*l.Cell,
		Y: l.StartY + float64(row)*l.Cell,
	}
}

// Anchors returns every rest position in build order (row by row).
func (l Layout) Anchors() []Point {
	points := make([]Point, 0, l.Count())
	for y := 0; y < l.Rows; y++ {
		for x := 0; x < l.Cols; x++ {
			points = append(points, l.Anchor(x, y))
		}
	}
	return points
}

// ClampMagnitude scales v down to max when it is longer.
func ClampMagnitude(v Point, max float64) Point {
	mag := v.Len()
	if mag > max && mag > 0 {
		s := max / mag
		return Point{X: v.X * s, Y: v.Y * s}
	}
	return v
}

// HoverMaxOffset is the largest hover displacement for a grid.
func HoverMaxOffset(gap, dotSize float64) float64 {
	return math.Min(gap*0.35, dotSize*0.9)
}

// ShockMaxOffset is the largest click displacement for a grid.
func ShockMaxOffset(gap, dotSize float64) float64 {
	return math.Min(gap*0.6, dotSize*1.2)
}

// HoverPush returns the displacement of a dot pushed by a moving pointer.
func HoverPush(dot, pointer, velocity Point, proximity, maxOffset float64) Point {
	away := dot.Sub(pointer)
	closeness := 0.0
	if proximity > 0 {
		closeness = math.Max(0, 1-away.Len()/proximity)
	}
	influence := closeness * HoverInfluence
	push := Point{
		X: away.X*influence + velocity.X*VelocityInfluence,
		Y: away.Y*influence + velocity.Y*VelocityInfluence,
	}
	return ClampMagnitude(push, maxOffset)
}

// ShockPush returns the displacement of a dot hit by a click impulse.
// A dot exactly at the click point has no outward direction and is not pushed.
func ShockPush(dot, click Point, radius, strength, maxOffset float64) Point {
	away := dot.Sub(click)
	dist := away.Len()
	if dist == 0 || radius <= 0 {
		return Point{}
	}
	falloff := math.Max(0, 1-dist/radius)
	scale := strength * falloff * ShockUnit / dist
	return ClampMagnitude(Point{X: away.X * scale, Y: away.Y * scale}, maxOffset)
}

// Highlight reports how strongly a dot at squared distance distSq from the
// pointer is highlighted, in [0, 1]. ok is false outside the proximity.
func Highlight(distSq, proximity float64) (boost float64, ok bool) {
	if proximity <= 0 || distSq > proximity*proximity {
		return 0, false
	}
	t := 1 - math.Sqrt(distSq)/proximity
	if t < 0 {
		t = 0
	}
	return math.Pow(t, HighlightExponent), true
}
