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

// Package frame implements a deterministic forest-flammability engine: a
// per-species ignition-path simulator and a stratum orchestrator that
// together predict whether, where and how intensely fire propagates
// through a vertically layered plant community.
package frame

import (
	"math"

	"github.com/ctessum/geom"
)

// Coord is a point in the vertical plane along the wind direction; X is
// horizontal distance, Y is height above the surface at X=0. It is a type
// alias over geom.Point so the kernel can reuse geom's bounds/equality
// machinery without re-deriving it.
type Coord = geom.Point

// NewCoord returns the coordinate (x, y).
func NewCoord(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

func coordEquals(a, b Coord) bool {
	return !distinctFrom(a.X, b.X) && !distinctFrom(a.Y, b.Y)
}

// Line is defined by a point on the line and a slope expressed as an angle
// in radians.
type Line struct {
	Point Coord
	Angle float64
}

// NewLine returns the line through p at the given angle (radians).
func NewLine(p Coord, angle float64) Line {
	return Line{Point: p, Angle: angle}
}

// y returns the line's height at horizontal offset x, valid only for
// non-vertical lines.
func (l Line) y(x float64) float64 {
	return l.Point.Y + math.Tan(l.Angle)*(x-l.Point.X)
}

// originOnLine returns the point o on l such that a ray from o at the given
// angle passes through target. It fails (GeometryFailureError) when angle
// is parallel to l, since then every point on l would qualify (or none
// would, if target is not on the ray's line).
func (l Line) originOnLine(target Coord, angle float64) (Coord, error) {
	if !distinctFrom(math.Mod(angle, math.Pi), math.Mod(l.Angle, math.Pi)) {
		return Coord{}, geometryFailure("originOnLine", "ray angle %.6f is parallel to the line (slope %.6f)", angle, l.Angle)
	}
	// Solve for the intersection of l (through l.Point with slope
	// tan(l.Angle)) and the ray's line (through target with slope
	// tan(angle)).
	tl, ta := math.Tan(l.Angle), math.Tan(angle)
	// l.Point.Y + tl*(x-l.Point.X) = target.Y + ta*(x-target.X)
	x := (target.Y - l.Point.Y + tl*l.Point.X - ta*target.X) / (tl - ta)
	y := l.Point.Y + tl*(x-l.Point.X)
	return Coord{X: x, Y: y}, nil
}

// intersectRay returns the point where r first crosses l, clamped to r's
// forward direction (t >= 0): a crossing behind r's origin yields the origin
// itself. It fails if r is parallel to l.
func (l Line) intersectRay(r Ray) (Coord, bool) {
	dx1, dy1 := math.Cos(l.Angle), math.Sin(l.Angle)
	dx2, dy2 := math.Cos(r.Angle), math.Sin(r.Angle)
	denom := dx1*dy2 - dy1*dx2
	if almostZero(denom) {
		return Coord{}, false
	}
	ex, ey := r.Origin.X-l.Point.X, r.Origin.Y-l.Point.Y
	t2 := (ex*dy1 - ey*dx1) / denom
	if t2 < 0 {
		t2 = 0
	}
	return r.At(t2), true
}

// Ray is a half-line starting at Origin, pointing in direction Angle
// (radians, measured from the positive X axis).
type Ray struct {
	Origin Coord
	Angle  float64
}

// NewRay returns a ray from origin at the given angle.
func NewRay(origin Coord, angle float64) Ray {
	return Ray{Origin: origin, Angle: angle}
}

// At returns the point at distance d along the ray.
func (r Ray) At(d float64) Coord {
	return Coord{X: r.Origin.X + d*math.Cos(r.Angle), Y: r.Origin.Y + d*math.Sin(r.Angle)}
}

// Segment is a straight line between Start and End.
type Segment struct {
	Start, End Coord
}

// NewSegment returns the segment from start to end.
func NewSegment(start, end Coord) Segment {
	return Segment{Start: start, End: end}
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
}

// Angle returns the angle (radians) from Start to End.
func (s Segment) Angle() float64 {
	return math.Atan2(s.End.Y-s.Start.Y, s.End.X-s.Start.X)
}

// at returns the point on the segment fraction t (0..1) of the way
// from Start to End.
func (s Segment) at(t float64) Coord {
	return Coord{X: s.Start.X + t*(s.End.X-s.Start.X), Y: s.Start.Y + t*(s.End.Y-s.Start.Y)}
}

// rayIntersectsSegment returns the distance along r at which it crosses
// segment seg, if any.
func rayIntersectsSegment(r Ray, seg Segment) (float64, bool) {
	// Ray: P = r.Origin + t*(cos, sin), t >= 0.
	// Segment: Q = seg.Start + u*(seg.End-seg.Start), 0 <= u <= 1.
	dx, dy := math.Cos(r.Angle), math.Sin(r.Angle)
	ex, ey := seg.End.X-seg.Start.X, seg.End.Y-seg.Start.Y
	denom := dx*ey - dy*ex
	if almostZero(denom) {
		return 0, false
	}
	fx, fy := seg.Start.X-r.Origin.X, seg.Start.Y-r.Origin.Y
	t := (fx*ey - fy*ex) / denom
	u := (fx*dy - fy*dx) / denom
	if t < -epsilon || u < -epsilon || u > 1+epsilon {
		return 0, false
	}
	if t < 0 {
		t = 0
	}
	return t, true
}
