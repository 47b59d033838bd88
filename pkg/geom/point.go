// Package geom provides the small amount of plane geometry the link checker
// needs: points in canvas coordinates, vector addition and distances.
package geom

import (
	"fmt"
	"math"
)

// Point is a position in the block canvas coordinate space.
// The zero value is the origin.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns the vector sum p+q.
func (p Point) Add(q Point) Point { return Point{X: p.X + q.X, Y: p.Y + q.Y} }

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

func (p Point) String() string { return fmt.Sprintf("(%g,%g)", p.X, p.Y) }
