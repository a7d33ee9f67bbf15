// Planar helpers shared by the court and the match engine
package geom

import "math"

// Point is a location on the court plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by dx, dy.
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Slope returns the slope of the line through a and b. ok is false for a
// vertical line.
func Slope(a, b Point) (slope float64, ok bool) {
	if b.X-a.X == 0 {
		return 0, false
	}
	return (b.Y - a.Y) / (b.X - a.X), true
}

// Angle returns the heading from one point to another in radians.
func Angle(from, to Point) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}

// Polar returns the point dist away from origin along angle.
func Polar(origin Point, angle, dist float64) Point {
	return Point{X: origin.X + dist*math.Cos(angle), Y: origin.Y + dist*math.Sin(angle)}
}

// LawOfCosines returns the angle opposite the side of length opposite in a
// triangle with the two other sides adj1 and adj2. Degenerate triangles and
// arguments outside the acos domain yield 0.
func LawOfCosines(opposite, adj1, adj2 float64) float64 {
	denom := -2 * adj1 * adj2
	if denom == 0 {
		return 0
	}
	arg := (opposite*opposite - adj1*adj1 - adj2*adj2) / denom
	if math.IsNaN(arg) || arg < -1 || arg > 1 {
		return 0
	}
	return math.Acos(arg)
}

// PointLineDistance returns the perpendicular distance from p to the line
// through a and b. When a and b coincide the distance to a is returned.
func PointLineDistance(p, a, b Point) float64 {
	// general form: A*x + B*y + C = 0
	A := a.Y - b.Y
	B := b.X - a.X
	C := (a.X-b.X)*a.Y + (b.Y-a.Y)*a.X
	norm := math.Hypot(A, B)
	if norm == 0 {
		return Distance(p, a)
	}
	return math.Abs(A*p.X+B*p.Y+C) / norm
}

// InCircle reports whether p lies strictly inside the circle at c with radius r.
func InCircle(p, c Point, r float64) bool {
	return Distance(p, c) < r
}

// AlmostEqual reports whether a and b differ by at most eps.
func AlmostEqual(a, b, eps float64) bool {
	return math.Abs(b-a) <= eps
}
