// Court dimensions in court units (feet times scale)
package court

import (
	"math"

	"courtsim/internal/geom"
)

// Regulation measurements in feet.
const (
	MarginFt        = 5.0
	WidthFt         = 94.0
	HeightFt        = 50.0
	CircleRadiusFt  = 6.0
	HoopDistanceFt  = 4.0
	HoopRadiusFt    = 9.0 / 12.0
	HoopToCorner3Ft = 22.0
	Corner3LengthFt = 13.7
	HoopToTop3Ft    = 23.75
	BallRadiusFt    = 4.7 / 12.0

	gridCols = 10
	gridRows = 5
)

// Side identifies which half of the court a team attacks.
type Side int

const (
	// Left is the half containing hoop one.
	Left Side = iota
	// Right is the half containing hoop two.
	Right
)

// Bounds is an inclusive coordinate range.
type Bounds struct {
	Min float64
	Max float64
}

// Court holds the scaled geometry of a full court.
type Court struct {
	Scale         float64
	Margin        float64
	Width         float64
	Height        float64
	CircleR       float64
	HoopRadius    float64
	HoopToCorner3 float64
	Corner3Length float64
	HoopToTop3    float64
	BallRadius    float64
	HoopOne       geom.Point
	HoopTwo       geom.Point
}

// New derives court geometry from scale (court units per foot).
func New(scale float64) *Court {
	c := &Court{
		Scale:         scale,
		Margin:        MarginFt * scale,
		Width:         WidthFt * scale,
		Height:        HeightFt * scale,
		CircleR:       CircleRadiusFt * scale,
		HoopRadius:    HoopRadiusFt * scale,
		HoopToCorner3: HoopToCorner3Ft * scale,
		Corner3Length: Corner3LengthFt * scale,
		HoopToTop3:    HoopToTop3Ft * scale,
		BallRadius:    BallRadiusFt * scale,
	}
	midY := c.Margin + c.Height/2
	c.HoopOne = geom.Point{X: c.Margin + HoopDistanceFt*scale + c.HoopRadius, Y: midY}
	c.HoopTwo = geom.Point{X: c.TotalWidth() - c.HoopOne.X, Y: midY}
	return c
}

// TotalWidth is the playing surface plus both margins.
func (c *Court) TotalWidth() float64 { return c.Width + 2*c.Margin }

// TotalHeight is the playing surface plus both margins.
func (c *Court) TotalHeight() float64 { return c.Height + 2*c.Margin }

// Centre returns the centre of the half-court circle.
func (c *Court) Centre() geom.Point {
	return geom.Point{X: c.Margin + c.Width/2, Y: c.Margin + c.Height/2}
}

// HalfCourtX returns the x coordinate of the half-court line.
func (c *Court) HalfCourtX() float64 { return c.Margin + c.Width/2 }

// Feet converts court units to feet.
func (c *Court) Feet(units float64) float64 { return units / c.Scale }

// XSpots returns the five territory columns of one half, ordered from the
// left sideline to the right.
func (c *Court) XSpots(side Side) []Bounds {
	colWidth := c.Width / gridCols
	var one, two []Bounds
	left := c.Margin
	for col := 0; col < gridCols; col++ {
		right := left + colWidth
		b := Bounds{Min: math.Ceil(left), Max: math.Floor(right)}
		if col < gridCols/2 {
			one = append(one, b)
		} else {
			two = append(two, b)
		}
		left = right
	}
	if side == Left {
		return one
	}
	return two
}

// YSpots returns the five territory rows ordered from the top sideline.
func (c *Court) YSpots() []Bounds {
	rowHeight := c.Height / gridRows
	rows := make([]Bounds, 0, gridRows)
	top := c.Margin
	for row := 0; row < gridRows; row++ {
		bot := top + rowHeight
		rows = append(rows, Bounds{Min: top + 1, Max: bot})
		top = bot
	}
	return rows
}
