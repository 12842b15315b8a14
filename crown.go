/*
Copyright © 2017 the frame authors.
This file is part of frame.

frame is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

frame is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with frame.  If not, see <http://www.gnu.org/licenses/>.
*/

package frame

import (
	"math"
	"sort"
)

// CrownPoly is the closed hexagonal silhouette of a plant crown in the
// vertical (wind-direction, height) plane. It is built from five scalars:
//
//	hc - height of the crown's lower apex, on the centerline
//	he - height of the crown's lower shoulder, at the edges (x = ±w/2)
//	ht - height of the crown's upper shoulder, at the edges
//	hp - height of the crown's upper apex, on the centerline
//	w  - overall crown width
//
// which trace out, for x >= 0, the polygon (0,hc) -> (w/2,he) -> (w/2,ht)
// -> (0,hp), mirrored for x < 0. Invariants: hp > hc, ht >= he, w > 0.
type CrownPoly struct {
	hc, he, ht, hp, w float64
	verts             []Coord // the hexagon, in order, closed (first == last)
}

// NewCrownPoly validates and constructs a crown polygon.
func NewCrownPoly(hc, he, ht, hp, w float64) (CrownPoly, error) {
	if w <= 0 {
		return CrownPoly{}, invalidInput("CrownPoly", "width must be positive, got %v", w)
	}
	if !(hp > hc) {
		return CrownPoly{}, invalidInput("CrownPoly", "hp (%v) must exceed hc (%v)", hp, hc)
	}
	if ht < he {
		return CrownPoly{}, invalidInput("CrownPoly", "ht (%v) must be >= he (%v)", ht, he)
	}
	r := w / 2
	c := CrownPoly{hc: hc, he: he, ht: ht, hp: hp, w: w}
	c.verts = []Coord{
		NewCoord(0, hc),
		NewCoord(r, he),
		NewCoord(r, ht),
		NewCoord(0, hp),
		NewCoord(-r, ht),
		NewCoord(-r, he),
		NewCoord(0, hc),
	}
	return c, nil
}

// Width returns w.
func (c CrownPoly) Width() float64 { return c.w }

// Height returns the overall vertical extent of the crown.
func (c CrownPoly) Height() float64 {
	return maxFloat(c.ht, c.hp) - minFloat(c.hc, c.he)
}

// Left returns the leftmost x coordinate, -w/2.
func (c CrownPoly) Left() float64 { return -c.w / 2 }

// Right returns the rightmost x coordinate, w/2.
func (c CrownPoly) Right() float64 { return c.w / 2 }

// Top returns the highest y coordinate of the crown.
func (c CrownPoly) Top() float64 { return maxFloat(c.ht, c.hp) }

// Bottom returns the lowest y coordinate of the crown.
func (c CrownPoly) Bottom() float64 { return minFloat(c.hc, c.he) }

// Centroid returns the polygon's area centroid.
func (c CrownPoly) Centroid() Coord {
	var a, cx, cy float64
	v := c.verts
	for i := 0; i < len(v)-1; i++ {
		cross := v[i].X*v[i+1].Y - v[i+1].X*v[i].Y
		a += cross
		cx += (v[i].X + v[i+1].X) * cross
		cy += (v[i].Y + v[i+1].Y) * cross
	}
	a /= 2
	if almostZero(a) {
		return NewCoord(0, (c.Top()+c.Bottom())/2)
	}
	return NewCoord(cx/(6*a), cy/(6*a))
}

// Area returns the 2-D cross-sectional area of the crown silhouette.
func (c CrownPoly) Area() float64 {
	var a float64
	v := c.verts
	for i := 0; i < len(v)-1; i++ {
		a += v[i].X*v[i+1].Y - v[i+1].X*v[i].Y
	}
	return math.Abs(a) / 2
}

// Volume returns the volume of the solid formed by revolving the crown
// about its vertical centerline: a cone from hc to he, a cylinder from he
// to ht, and a cone from ht to hp, all of radius w/2.
func (c CrownPoly) Volume() float64 {
	r := c.w / 2
	bottomCone := math.Abs(c.he-c.hc) / 3
	cyl := math.Abs(c.ht - c.he)
	topCone := math.Abs(c.hp-c.ht) / 3
	return math.Pi * r * r * (bottomCone + cyl + topCone)
}

// pointInBase returns the point on the crown's lower hull at horizontal
// offset x (clamped to [Left(), Right()]).
func (c CrownPoly) pointInBase(x float64) Coord {
	r := c.w / 2
	if x > r {
		x = r
	}
	if x < -r {
		x = -r
	}
	frac := math.Abs(x) / r
	return NewCoord(x, c.hc+(c.he-c.hc)*frac)
}

// contains reports whether p lies within the crown polygon, by a
// horizontal ray-casting parity test.
func (c CrownPoly) contains(p Coord) bool {
	v := c.verts
	inside := false
	for i := 0; i < len(v)-1; i++ {
		a, b := v[i], v[i+1]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			xCross := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
			if p.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// intersection returns the segment of r that lies inside the crown, if the
// ray enters the polygon at all. When r's origin is already inside the
// crown (the common case once ignition is under way), the returned
// segment runs from the origin to the single forward exit crossing.
func (c CrownPoly) intersection(r Ray) (Segment, bool) {
	var ts []float64
	v := c.verts
	for i := 0; i < len(v)-1; i++ {
		if t, ok := rayIntersectsSegment(r, NewSegment(v[i], v[i+1])); ok {
			ts = append(ts, t)
		}
	}
	if len(ts) == 0 {
		return Segment{}, false
	}
	sort.Float64s(ts)
	if c.contains(r.Origin) {
		return NewSegment(r.Origin, r.At(ts[0])), true
	}
	if len(ts) < 2 {
		return Segment{}, false
	}
	tMin, tMax := ts[0], ts[len(ts)-1]
	if !distinctFrom(tMin, tMax) {
		return Segment{}, false
	}
	return NewSegment(r.At(tMin), r.At(tMax)), true
}
